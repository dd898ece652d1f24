package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_ListCategories_ClampsLimit(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	expected := repository.ListParams{Page: 1, Limit: 100, Search: "polo", Order: repository.SortDesc}

	fx.categoryRepo.EXPECT().
		List(ctx, expected).
		Return(nil, 0, nil)

	page, err := fx.service.ListCategories(ctx, repository.ListParams{Limit: 500, Search: "  polo "})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, entity.Pagination{Total: 0, Page: 1, Limit: 100}, page.Pagination)
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Polos").
		Return(nil, domainerrors.ErrCategoryNotFound)

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = 7
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: " Polos ", Description: "Algodón"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), category.ID)
	assert.Equal(t, "Polos", category.Name)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "polos").
		Return(&entity.Category{ID: 3, Name: "Polos"}, nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "polos"})
	assert.Nil(t, category)
	require.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	fx.categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory_SameNameDifferentCase(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	existing := &entity.Category{ID: 3, Name: "Polos", Description: "old"}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(existing, nil)

	fx.categoryRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	category, err := fx.service.UpdateCategory(ctx, 3, &usecase.CategoryUpdateInput{Name: ptr("POLOS")})
	require.NoError(t, err)
	assert.Equal(t, "POLOS", category.Name)
	assert.Equal(t, "old", category.Description)
	fx.categoryRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory_NameTakenByAnother(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Category{ID: 3, Name: "Polos"}, nil)

	fx.categoryRepo.EXPECT().
		FindByName(ctx, "Casacas").
		Return(&entity.Category{ID: 4, Name: "Casacas"}, nil)

	_, err := fx.service.UpdateCategory(ctx, 3, &usecase.CategoryUpdateInput{Name: ptr("Casacas")})
	require.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, domainerrors.ErrCategoryNotFound)

	_, err := fx.service.GetCategory(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
