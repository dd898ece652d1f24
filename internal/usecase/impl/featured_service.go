package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type featuredService struct {
	featuredRepo repository.FeaturedRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// FeaturedServiceParams holds dependencies for FeaturedService, injected by Fx.
type FeaturedServiceParams struct {
	fx.In

	FeaturedRepo repository.FeaturedRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewFeaturedService creates a new featured product service instance
func NewFeaturedService(params FeaturedServiceParams) usecase.FeaturedUsecase {
	return &featuredService{
		featuredRepo: params.FeaturedRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *featuredService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *featuredService) ListFeatured(ctx context.Context) ([]*entity.FeaturedProduct, error) {
	featured, err := srv.featuredRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}
	if featured == nil {
		featured = []*entity.FeaturedProduct{}
	}

	return featured, nil
}

func (srv *featuredService) AddFeatured(ctx context.Context, input *usecase.FeaturedInput) (*entity.FeaturedProduct, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	_, err = srv.featuredRepo.FindByProductID(ctx, input.ProductID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrFeaturedAlreadyExists
	case !errors.Is(err, domainerrors.ErrFeaturedNotFound):
		return nil, errors.Wrap(err, "failed to check featured product")
	}

	featured := &entity.FeaturedProduct{
		ProductID: input.ProductID,
		Position:  input.Position,
	}
	if err := srv.featuredRepo.Create(ctx, featured); err != nil {
		return nil, errors.Wrap(err, "failed to create featured product")
	}
	featured.Product = product

	srv.log(ctx).Info("Product featured", slog.Any("productID", input.ProductID), slog.Int("position", input.Position))

	return featured, nil
}

func (srv *featuredService) RemoveFeatured(ctx context.Context, id uint) error {
	if err := srv.featuredRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete featured product")
	}

	return nil
}
