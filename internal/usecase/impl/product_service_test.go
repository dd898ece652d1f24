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

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Defaults(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = 11
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:   "Polo básico",
		Price:  39.999,
		Stock:  12,
		Images: []string{" https://cdn/a.jpg ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), product.ID)
	assert.Equal(t, entity.ProductEstadoActivo, product.Estado)
	assert.InDelta(t, 40.0, product.Price, 0.0001)
	assert.Equal(t, []string{"https://cdn/a.jpg"}, product.Images)
}

func TestProductService_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ProductInput
		field string
	}{
		{name: "missing name", input: usecase.ProductInput{Price: 10}, field: "name"},
		{name: "negative price", input: usecase.ProductInput{Name: "Polo", Price: -1}, field: "price"},
		{name: "negative stock", input: usecase.ProductInput{Name: "Polo", Stock: -2}, field: "stock"},
		{name: "unknown estado", input: usecase.ProductInput{Name: "Polo", Estado: "agotado"}, field: "estado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.CreateProduct(context.Background(), &tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr *domainerrors.BaseError
			require.ErrorAs(t, err, &appErr)
			details, ok := appErr.Details().([]domainerrors.FieldError)
			require.True(t, ok)
			assert.Equal(t, tt.field, details[0].Field)
		})
	}
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := &entity.Product{
		ID:     5,
		Name:   "Casaca",
		Price:  120,
		Stock:  3,
		Estado: entity.ProductEstadoActivo,
		Images: []string{"https://cdn/old.jpg"},
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, uint(5)).
		Return(existing, nil)

	fx.productRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, 5, &usecase.ProductUpdateInput{
		Stock:  ptr(0),
		Estado: ptr(entity.ProductEstadoInactivo),
	})
	require.NoError(t, err)
	assert.Equal(t, "Casaca", product.Name)
	assert.Equal(t, 0, product.Stock)
	assert.Equal(t, entity.ProductEstadoInactivo, product.Estado)
	assert.Equal(t, []string{"https://cdn/old.jpg"}, product.Images)
}

func TestProductService_ListProducts_RejectsInvertedPriceRange(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.ListProducts(context.Background(), repository.ProductFilter{
		MinPrice: ptr(50.0),
		MaxPrice: ptr(10.0),
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductService_ListProducts_PassesFilter(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: 1, Name: "Polo"}, {ID: 2, Name: "Pantalón"}}

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.ProductFilter) bool {
			return filter.Category == "Polos" && filter.Estado == "activo" && filter.Page == 2 && filter.Limit == 2
		})).
		Return(products, int64(5), nil)

	page, err := fx.service.ListProducts(ctx, repository.ProductFilter{
		ListParams: repository.ListParams{Page: 2, Limit: 2},
		Category:   "Polos",
		Estado:     "activo",
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}
