package impl

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixtures struct {
	service     usecase.InventoryUsecase
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	now         time.Time
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	service := NewInventoryService(InventoryServiceParams{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	service.(*inventoryService).now = func() time.Time { return now }

	return inventoryServiceFixtures{
		service:     service,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		now:         now,
	}
}

func inventoryProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "Polo", Stock: 0},
		{ID: 2, Name: "Jean", Stock: 3},
		{ID: 3, Name: "Casaca", Stock: 40},
		{ID: 4, Name: "Gorra", Stock: 20},
	}
}

func TestInventoryService_Report_DerivesRows(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.ProductFilter) bool {
			return filter.Limit == 0 && filter.MinStock == nil && filter.MaxStock == nil
		})).
		Return(inventoryProducts(), int64(4), nil)

	// 30 Gorras sold in 30 days: 1/day, 20 days of runway. 60 Casacas: 20 days too.
	fx.orderRepo.EXPECT().
		SoldQuantitiesSince(ctx, fx.now.AddDate(0, 0, -30), []uint{1, 2, 3, 4}).
		Return(map[uint]int64{3: 60, 4: 30}, nil)

	report, err := fx.service.Report(ctx, repository.InventoryFilter{})
	require.NoError(t, err)
	require.Len(t, report.Items, 4)

	// default sort is stock ascending
	assert.Equal(t, []uint{1, 2, 4, 3}, inventoryIDs(report.Items))

	outOfStock := report.Items[0]
	assert.Equal(t, entity.StockStatusOutOfStock, outOfStock.StockStatus)
	assert.True(t, outOfStock.NeedsRestock)
	assert.Nil(t, outOfStock.DaysUntilStockout)

	casaca := report.Items[3]
	require.NotNil(t, casaca.DaysUntilStockout)
	assert.Equal(t, int64(20), *casaca.DaysUntilStockout)
	assert.InDelta(t, 2.0, casaca.SalesVelocity, 0.001)
	assert.False(t, casaca.NeedsRestock)

	assert.Equal(t, entity.InventoryTotals{Products: 4, OutOfStock: 1, Low: 1, Normal: 2, NeedsRestock: 2}, report.Totals)
	assert.Equal(t, int64(4), report.Pagination.Total)
}

func TestInventoryService_Report_SortsAndPages(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.Anything).
		Return(inventoryProducts(), int64(4), nil)

	fx.orderRepo.EXPECT().
		SoldQuantitiesSince(ctx, mock.Anything, mock.Anything).
		Return(map[uint]int64{3: 60, 4: 30, 2: 1}, nil)

	report, err := fx.service.Report(ctx, repository.InventoryFilter{
		ListParams: repository.ListParams{Page: 1, Limit: 2, SortBy: "daysUntilStockout", Order: repository.SortDesc},
	})
	require.NoError(t, err)

	// unsold products have an infinite runway and sort last ascending, first descending
	assert.Equal(t, []uint{1, 2}, inventoryIDs(report.Items))
	assert.Equal(t, 2, report.Pagination.TotalPages)
}

func TestInventoryService_Report_StockStatusFilter(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.ProductFilter) bool {
			return *filter.MinStock == 1 && *filter.MaxStock == 5
		})).
		Return(nil, int64(0), nil)

	report, err := fx.service.Report(ctx, repository.InventoryFilter{StockStatus: "low"})
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	fx.orderRepo.AssertNotCalled(t, "SoldQuantitiesSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryService_Report_UnknownStockStatus(t *testing.T) {
	fx := createTestInventoryService(t)

	_, err := fx.service.Report(context.Background(), repository.InventoryFilter{StockStatus: "agotado"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func inventoryIDs(items []entity.InventoryItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	return ids
}
