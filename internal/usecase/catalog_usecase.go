// Package usecase defines the application's use cases and their inputs.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
)

// CategoryInput carries the fields of a new category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryUpdateInput carries the category fields to change; nil fields are kept.
type CategoryUpdateInput struct {
	Name        *string
	Description *string
}

// CategoryUsecase defines category management
type CategoryUsecase interface {
	ListCategories(ctx context.Context, params repository.ListParams) (*entity.Page[*entity.Category], error)
	GetCategory(ctx context.Context, id uint) (*entity.Category, error)

	// CreateCategory rejects names already in use, ignoring case.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	UpdateCategory(ctx context.Context, id uint, input *CategoryUpdateInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// ColeccionInput carries the fields of a new collection.
type ColeccionInput struct {
	Nombre      string
	Descripcion string
	Imagen      string
}

// ColeccionUpdateInput carries the collection fields to change; nil fields are kept.
type ColeccionUpdateInput struct {
	Nombre      *string
	Descripcion *string
	Imagen      *string
}

// ColeccionUsecase defines collection management
type ColeccionUsecase interface {
	ListColecciones(ctx context.Context, params repository.ListParams) (*entity.Page[*entity.Coleccion], error)

	// EnsureCapacity fails with ErrColeccionLimitReached once the cap is reached.
	EnsureCapacity(ctx context.Context) error

	CreateColeccion(ctx context.Context, input *ColeccionInput) (*entity.Coleccion, error)
	UpdateColeccion(ctx context.Context, id uint, input *ColeccionUpdateInput) (*entity.Coleccion, error)
	DeleteColeccion(ctx context.Context, id uint) error
}

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	Size        string
	Estado      entity.ProductEstado
	Images      []string
}

// ProductUpdateInput carries the product fields to change; nil fields are kept.
type ProductUpdateInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
	Size        *string
	Estado      *entity.ProductEstado
	Images      *[]string
}

// ProductUsecase defines product catalog management
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) (*entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, input *ProductUpdateInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// FeaturedInput pins a product at a position of the home page.
type FeaturedInput struct {
	ProductID uint
	Position  int
}

// FeaturedUsecase defines featured product management
type FeaturedUsecase interface {
	// ListFeatured returns the featured products ordered by position.
	ListFeatured(ctx context.Context) ([]*entity.FeaturedProduct, error)

	// AddFeatured fails when the product does not exist or is already featured.
	AddFeatured(ctx context.Context, input *FeaturedInput) (*entity.FeaturedProduct, error)

	RemoveFeatured(ctx context.Context, id uint) error
}
