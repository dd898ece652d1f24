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

type categoryService struct {
	categoryRepo repository.CategoryRepository
	config       *config.Config
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListCategories(ctx context.Context, params repository.ListParams) (*entity.Page[*entity.Category], error) {
	normalizeListParams(srv.config, &params)

	categories, total, err := srv.categoryRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return newPage(categories, total, params), nil
}

func (srv *categoryService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// CreateCategory checks the name first, then inserts. Concurrent identical
// requests can both pass the check; the unique index still maps to 409.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}

	if err := srv.ensureNameAvailable(ctx, category.Name, 0); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, id uint, input *usecase.CategoryUpdateInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	name := trimmedOr(input.Name, category.Name)
	if !strings.EqualFold(name, category.Name) {
		if err := srv.ensureNameAvailable(ctx, name, category.ID); err != nil {
			return nil, err
		}
	}
	category.Name = name
	category.Description = trimmedOr(input.Description, category.Description)

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}

// ensureNameAvailable fails when another category already uses name.
func (srv *categoryService) ensureNameAvailable(ctx context.Context, name string, exceptID uint) error {
	existing, err := srv.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCategoryNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check category name")
	}
	if existing.ID != exceptID {
		srv.log(ctx).Warn("Category name already in use", slog.String("name", name), slog.Any("existingID", existing.ID))

		return domainerrors.ErrCategoryAlreadyExists
	}

	return nil
}
