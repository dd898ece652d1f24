package impl

import (
	"context"
	"log/slog"
	"strings"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	config      *config.Config
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		config:      params.Config,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*entity.Page[*entity.Product], error) {
	normalizeListParams(srv.config, &filter.ListParams)
	if filter.Estado != "" && !entity.ProductEstado(filter.Estado).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("estado", "oneof", "estado must be activo or inactivo"))
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MaxPrice < *filter.MinPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("maxPrice", "gtefield", "maxPrice must not be lower than minPrice"))
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return newPage(products, total, filter.ListParams), nil
}

func (srv *productService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	estado := input.Estado
	if estado == "" {
		estado = entity.ProductEstadoActivo
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Price:       entity.RoundMoney(input.Price),
		Stock:       input.Stock,
		Size:        strings.TrimSpace(input.Size),
		Estado:      estado,
		Images:      cleanList(input.Images),
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, id uint, input *usecase.ProductUpdateInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	product.Name = trimmedOr(input.Name, product.Name)
	product.Description = trimmedOr(input.Description, product.Description)
	product.Category = trimmedOr(input.Category, product.Category)
	product.Size = trimmedOr(input.Size, product.Size)
	if input.Price != nil {
		product.Price = entity.RoundMoney(*input.Price)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Estado != nil {
		product.Estado = *input.Estado
	}
	if input.Images != nil {
		product.Images = cleanList(*input.Images)
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uint) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func validateProduct(product *entity.Product) error {
	switch {
	case product.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("name", "required", "name is required"))
	case product.Price < 0:
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("price", "gte", "price must not be negative"))
	case product.Stock < 0:
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("stock", "gte", "stock must not be negative"))
	case !product.Estado.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("estado", "oneof", "estado must be activo or inactivo"))
	}

	return nil
}
