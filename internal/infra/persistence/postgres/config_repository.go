package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

func (repo *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	var settingModels []*model.SettingModel

	if err := repo.db.WithContext(ctx).Order("key ASC").Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	settings := make([]*entity.Setting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, &entity.Setting{
			Key:       settingM.Key,
			Value:     settingM.Value,
			UpdatedAt: settingM.UpdatedAt,
		})
	}

	return settings, nil
}

// Upsert inserts the setting or overwrites the value stored under its key.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingM := &model.SettingModel{
		Key:   setting.Key,
		Value: setting.Value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return errors.Wrapf(err, "failed to upsert setting %q", setting.Key)
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// agenciaRepository implements the repository.AgenciaRepository interface.
type agenciaRepository struct {
	db *gorm.DB
}

// NewAgenciaRepository is the constructor for agenciaRepository.
func NewAgenciaRepository(db *gorm.DB) repository.AgenciaRepository {
	return &agenciaRepository{
		db: db,
	}
}

func (repo *agenciaRepository) FindFirst(ctx context.Context) (*entity.Agencia, error) {
	return repo.findFirst(repo.db.WithContext(ctx))
}

func (repo *agenciaRepository) findFirst(db *gorm.DB) (*entity.Agencia, error) {
	var agenciaM model.AgenciaModel

	if err := db.Order("id ASC").First(&agenciaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find agencia")
	}

	return toAgenciaDomain(&agenciaM), nil
}

// EnsureDefault is safe under concurrent first reads: the row has a fixed id
// and losers of the insert race read the winner's row.
func (repo *agenciaRepository) EnsureDefault(ctx context.Context, agencia *entity.Agencia) (*entity.Agencia, error) {
	db := repo.db.WithContext(ctx)

	agenciaM := fromAgenciaDomain(agencia)
	agenciaM.ID = model.SingletonID
	if err := insertSingleton(db, agenciaM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create agencia")
	}

	return repo.findFirst(db.Clauses(dbresolver.Write))
}

func (repo *agenciaRepository) Update(ctx context.Context, agencia *entity.Agencia) error {
	agenciaM := fromAgenciaDomain(agencia)

	result := repo.db.WithContext(ctx).
		Model(agenciaM).
		Select("agencias", "minimo_delivery", "maximo_delivery", "costo_envio").
		Updates(agenciaM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update agencia")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	agencia.UpdatedAt = agenciaM.UpdatedAt

	return nil
}

// fotosRepository implements the repository.FotosRepository interface.
type fotosRepository struct {
	db *gorm.DB
}

// NewFotosRepository is the constructor for fotosRepository.
func NewFotosRepository(db *gorm.DB) repository.FotosRepository {
	return &fotosRepository{
		db: db,
	}
}

func (repo *fotosRepository) FindFirst(ctx context.Context) (*entity.Fotos, error) {
	return repo.findFirst(repo.db.WithContext(ctx))
}

func (repo *fotosRepository) findFirst(db *gorm.DB) (*entity.Fotos, error) {
	var fotosM model.FotosModel

	if err := db.Order("id ASC").First(&fotosM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find fotos")
	}

	return toFotosDomain(&fotosM), nil
}

func (repo *fotosRepository) EnsureDefault(ctx context.Context, fotos *entity.Fotos) (*entity.Fotos, error) {
	db := repo.db.WithContext(ctx)

	fotosM := fromFotosDomain(fotos)
	fotosM.ID = model.SingletonID
	if err := insertSingleton(db, fotosM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create fotos")
	}

	return repo.findFirst(db.Clauses(dbresolver.Write))
}

func (repo *fotosRepository) Update(ctx context.Context, fotos *entity.Fotos) error {
	fotosM := fromFotosDomain(fotos)

	result := repo.db.WithContext(ctx).
		Model(fotosM).
		Select("portada", "nosotros", "banners").
		Updates(fotosM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update fotos")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	fotos.UpdatedAt = fotosM.UpdatedAt

	return nil
}

// insertSingleton inserts value and does nothing when its id is taken.
func insertSingleton(db *gorm.DB, value any) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(value)
}

// --- Mapper Functions ---

func stringList(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](values)
}

func fromStringList(values datatypes.JSONSlice[string]) []string {
	if values == nil {
		return []string{}
	}

	return []string(values)
}

func toAgenciaDomain(data *model.AgenciaModel) *entity.Agencia {
	return &entity.Agencia{
		ID:             data.ID,
		Agencias:       fromStringList(data.Agencias),
		MinimoDelivery: data.MinimoDelivery,
		MaximoDelivery: data.MaximoDelivery,
		CostoEnvio:     data.CostoEnvio,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAgenciaDomain(data *entity.Agencia) *model.AgenciaModel {
	return &model.AgenciaModel{
		ID:             data.ID,
		Agencias:       stringList(data.Agencias),
		MinimoDelivery: data.MinimoDelivery,
		MaximoDelivery: data.MaximoDelivery,
		CostoEnvio:     data.CostoEnvio,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toFotosDomain(data *model.FotosModel) *entity.Fotos {
	return &entity.Fotos{
		ID:        data.ID,
		Portada:   data.Portada,
		Nosotros:  data.Nosotros,
		Banners:   fromStringList(data.Banners),
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFotosDomain(data *entity.Fotos) *model.FotosModel {
	return &model.FotosModel{
		ID:        data.ID,
		Portada:   data.Portada,
		Nosotros:  data.Nosotros,
		Banners:   stringList(data.Banners),
		UpdatedAt: data.UpdatedAt,
	}
}
