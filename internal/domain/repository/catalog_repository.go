package repository

import (
	"context"

	"tienda/internal/domain/entity"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindByName retrieves a category by name, ignoring case.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List returns a page of categories and the total match count.
	List(ctx context.Context, params ListParams) ([]*entity.Category, int64, error)

	// Update saves the mutable fields of a category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id uint) error
}

// ColeccionRepository defines persistence operations for collections.
type ColeccionRepository interface {
	Create(ctx context.Context, coleccion *entity.Coleccion) error
	FindByID(ctx context.Context, id uint) (*entity.Coleccion, error)
	FindByNombre(ctx context.Context, nombre string) (*entity.Coleccion, error)
	List(ctx context.Context, params ListParams) ([]*entity.Coleccion, int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, coleccion *entity.Coleccion) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindByIDs retrieves every product whose ID is in ids. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Product, error)

	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}

// FeaturedRepository defines persistence operations for featured products.
type FeaturedRepository interface {
	// List returns featured entries ordered by position with their product loaded.
	List(ctx context.Context) ([]*entity.FeaturedProduct, error)
	FindByProductID(ctx context.Context, productID uint) (*entity.FeaturedProduct, error)
	Create(ctx context.Context, featured *entity.FeaturedProduct) error
	Delete(ctx context.Context, id uint) error
}
