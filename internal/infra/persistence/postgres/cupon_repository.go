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

var cuponSortColumns = map[string]string{
	"codigoCupon": "codigo_cupon",
	"descuento":   "descuento",
	"expiraEn":    "expira_en",
	"createdAt":   "created_at",
}

// cuponRepository implements the repository.CuponRepository interface.
type cuponRepository struct {
	db *gorm.DB
}

// NewCuponRepository is the constructor for cuponRepository.
func NewCuponRepository(db *gorm.DB) repository.CuponRepository {
	return &cuponRepository{
		db: db,
	}
}

// Create persists a new coupon. The code is stored in its canonical form.
func (repo *cuponRepository) Create(ctx context.Context, cupon *entity.Cupon) error {
	cuponM := fromCuponDomain(cupon)

	if err := repo.db.WithContext(ctx).Create(cuponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCuponAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("descuento must be between 1 and 100")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cupon")
	}

	cupon.ID = cuponM.ID
	cupon.CodigoCupon = cuponM.CodigoCupon
	cupon.CreatedAt = cuponM.CreatedAt
	cupon.UpdatedAt = cuponM.UpdatedAt

	return nil
}

func (repo *cuponRepository) FindByID(ctx context.Context, id uint) (*entity.Cupon, error) {
	var cuponM model.CuponModel

	if err := repo.db.WithContext(ctx).First(&cuponM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCuponNotFound
		}

		return nil, errors.Wrap(err, "failed to find cupon by ID")
	}

	return toCuponDomain(&cuponM), nil
}

// FindByCode retrieves a coupon by code, ignoring case and surrounding spaces.
func (repo *cuponRepository) FindByCode(ctx context.Context, code string) (*entity.Cupon, error) {
	var cuponM model.CuponModel

	if err := repo.db.WithContext(ctx).
		Where("UPPER(codigo_cupon) = ?", entity.NormalizeCuponCode(code)).
		First(&cuponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCuponNotFound
		}

		return nil, errors.Wrap(err, "failed to find cupon by code")
	}

	return toCuponDomain(&cuponM), nil
}

func (repo *cuponRepository) List(ctx context.Context, filter repository.CuponFilter) ([]*entity.Cupon, int64, error) {
	q := searchAny(repo.db.WithContext(ctx).Model(&model.CuponModel{}), filter.Search, "codigo_cupon", "descripcion")
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cupones")
	}

	var cuponModels []*model.CuponModel
	if err := sortAndPage(q, filter.ListParams, cuponSortColumns, "created_at").Find(&cuponModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cupones")
	}

	cupones := make([]*entity.Cupon, 0, len(cuponModels))
	for _, cuponM := range cuponModels {
		cupones = append(cupones, toCuponDomain(cuponM))
	}

	return cupones, total, nil
}

func (repo *cuponRepository) Update(ctx context.Context, cupon *entity.Cupon) error {
	cuponM := fromCuponDomain(cupon)

	result := repo.db.WithContext(ctx).
		Model(cuponM).
		Select("codigo_cupon", "descuento", "activo", "expira_en", "descripcion").
		Updates(cuponM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCuponAlreadyExists
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("descuento must be between 1 and 100")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cupon")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCuponNotFound
	}

	cupon.CodigoCupon = cuponM.CodigoCupon
	cupon.UpdatedAt = cuponM.UpdatedAt

	return nil
}

func (repo *cuponRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CuponModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cupon")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCuponNotFound
	}

	return nil
}

func toCuponDomain(data *model.CuponModel) *entity.Cupon {
	if data == nil {
		return nil
	}

	return &entity.Cupon{
		ID:          data.ID,
		CodigoCupon: data.CodigoCupon,
		Descuento:   data.Descuento,
		Activo:      data.Activo,
		ExpiraEn:    data.ExpiraEn,
		Descripcion: data.Descripcion,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCuponDomain(data *entity.Cupon) *model.CuponModel {
	if data == nil {
		return nil
	}

	return &model.CuponModel{
		ID:          data.ID,
		CodigoCupon: entity.NormalizeCuponCode(data.CodigoCupon),
		Descuento:   data.Descuento,
		Activo:      data.Activo,
		ExpiraEn:    data.ExpiraEn,
		Descripcion: data.Descripcion,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
