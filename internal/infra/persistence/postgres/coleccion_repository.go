package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var coleccionSortColumns = map[string]string{
	"nombre":    "nombre",
	"createdAt": "created_at",
}

type coleccionRepository struct {
	db *gorm.DB
}

// NewColeccionRepository is the constructor for coleccionRepository.
func NewColeccionRepository(db *gorm.DB) repository.ColeccionRepository {
	return &coleccionRepository{
		db: db,
	}
}

func (repo *coleccionRepository) Create(ctx context.Context, coleccion *entity.Coleccion) error {
	coleccionM := fromColeccionDomain(coleccion)

	if err := repo.db.WithContext(ctx).Create(coleccionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrColeccionAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coleccion")
	}

	coleccion.ID = coleccionM.ID
	coleccion.CreatedAt = coleccionM.CreatedAt
	coleccion.UpdatedAt = coleccionM.UpdatedAt

	return nil
}

func (repo *coleccionRepository) FindByID(ctx context.Context, id uint) (*entity.Coleccion, error) {
	var coleccionM model.ColeccionModel

	if err := repo.db.WithContext(ctx).First(&coleccionM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrColeccionNotFound
		}

		return nil, errors.Wrap(err, "failed to find coleccion by ID")
	}

	return toColeccionDomain(&coleccionM), nil
}

func (repo *coleccionRepository) FindByNombre(ctx context.Context, nombre string) (*entity.Coleccion, error) {
	var coleccionM model.ColeccionModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(nombre) = LOWER(?)", nombre).
		First(&coleccionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrColeccionNotFound
		}

		return nil, errors.Wrap(err, "failed to find coleccion by nombre")
	}

	return toColeccionDomain(&coleccionM), nil
}

func (repo *coleccionRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Coleccion, int64, error) {
	q := searchAny(repo.db.WithContext(ctx).Model(&model.ColeccionModel{}), params.Search, "nombre", "descripcion").
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count colecciones")
	}

	var coleccionModels []*model.ColeccionModel
	if err := sortAndPage(q, params, coleccionSortColumns, "created_at").Find(&coleccionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list colecciones")
	}

	colecciones := make([]*entity.Coleccion, 0, len(coleccionModels))
	for _, coleccionM := range coleccionModels {
		colecciones = append(colecciones, toColeccionDomain(coleccionM))
	}

	return colecciones, total, nil
}

// Count returns how many collections exist.
func (repo *coleccionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ColeccionModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count colecciones")
	}

	return total, nil
}

func (repo *coleccionRepository) Update(ctx context.Context, coleccion *entity.Coleccion) error {
	coleccionM := fromColeccionDomain(coleccion)

	result := repo.db.WithContext(ctx).
		Model(coleccionM).
		Select("nombre", "descripcion", "imagen").
		Updates(coleccionM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrColeccionAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update coleccion")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrColeccionNotFound
	}

	coleccion.UpdatedAt = coleccionM.UpdatedAt

	return nil
}

func (repo *coleccionRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ColeccionModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coleccion")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrColeccionNotFound
	}

	return nil
}

func toColeccionDomain(data *model.ColeccionModel) *entity.Coleccion {
	if data == nil {
		return nil
	}

	return &entity.Coleccion{
		ID:          data.ID,
		Nombre:      data.Nombre,
		Descripcion: data.Descripcion,
		Imagen:      data.Imagen,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromColeccionDomain(data *entity.Coleccion) *model.ColeccionModel {
	if data == nil {
		return nil
	}

	return &model.ColeccionModel{
		ID:          data.ID,
		Nombre:      data.Nombre,
		Descripcion: data.Descripcion,
		Imagen:      data.Imagen,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
