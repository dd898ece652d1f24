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

type featuredRepository struct {
	db *gorm.DB
}

// NewFeaturedRepository is the constructor for featuredRepository.
func NewFeaturedRepository(db *gorm.DB) repository.FeaturedRepository {
	return &featuredRepository{
		db: db,
	}
}

// List returns the featured entries ordered by position with their products preloaded.
func (repo *featuredRepository) List(ctx context.Context) ([]*entity.FeaturedProduct, error) {
	var featuredModels []*model.FeaturedProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Order("position ASC").
		Order("id ASC").
		Find(&featuredModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	featured := make([]*entity.FeaturedProduct, 0, len(featuredModels))
	for _, featuredM := range featuredModels {
		featured = append(featured, toFeaturedDomain(featuredM))
	}

	return featured, nil
}

func (repo *featuredRepository) FindByProductID(ctx context.Context, productID uint) (*entity.FeaturedProduct, error) {
	var featuredM model.FeaturedProductModel

	if err := repo.db.WithContext(ctx).
		Where("producto_id = ?", productID).
		First(&featuredM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFeaturedNotFound
		}

		return nil, errors.Wrap(err, "failed to find featured product")
	}

	return toFeaturedDomain(&featuredM), nil
}

func (repo *featuredRepository) Create(ctx context.Context, featured *entity.FeaturedProduct) error {
	featuredM := &model.FeaturedProductModel{
		ProductID: featured.ProductID,
		Position:  featured.Position,
	}

	if err := repo.db.WithContext(ctx).Omit("Product").Create(featuredM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFeaturedAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create featured product")
	}

	featured.ID = featuredM.ID
	featured.CreatedAt = featuredM.CreatedAt

	return nil
}

func (repo *featuredRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.FeaturedProductModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete featured product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrFeaturedNotFound
	}

	return nil
}

func toFeaturedDomain(data *model.FeaturedProductModel) *entity.FeaturedProduct {
	if data == nil {
		return nil
	}

	return &entity.FeaturedProduct{
		ID:        data.ID,
		ProductID: data.ProductID,
		Position:  data.Position,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
	}
}
