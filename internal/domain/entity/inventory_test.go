package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryItem(t *testing.T) {
	thresholds := InventoryThresholds{LowStock: 10, RestockRunwayDays: 7, SalesWindowDays: 30}

	tests := []struct {
		name         string
		stock        int
		sold         int64
		wantStatus   StockStatus
		wantDays     *int64
		wantVelocity float64
		wantRestock  bool
	}{
		{name: "out of stock", stock: 0, wantStatus: StockStatusOutOfStock, wantRestock: true},
		{name: "out of stock with recent sales", stock: 0, sold: 90, wantStatus: StockStatusOutOfStock, wantDays: ptrInt64(0), wantVelocity: 3, wantRestock: true},
		{name: "oversold counts as out of stock", stock: -2, sold: 15, wantStatus: StockStatusOutOfStock, wantDays: ptrInt64(0), wantVelocity: 0.5, wantRestock: true},
		{name: "low without sales", stock: 4, wantStatus: StockStatusLow, wantRestock: true},
		{name: "normal without sales", stock: 50, wantStatus: StockStatusNormal},
		{name: "normal with short runway", stock: 12, sold: 90, wantStatus: StockStatusNormal, wantDays: ptrInt64(4), wantVelocity: 3, wantRestock: true},
		{name: "normal with long runway", stock: 100, sold: 30, wantStatus: StockStatusNormal, wantDays: ptrInt64(100), wantVelocity: 1},
		{name: "runway floors", stock: 11, sold: 45, wantStatus: StockStatusNormal, wantDays: ptrInt64(7), wantVelocity: 1.5, wantRestock: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewInventoryItem(&Product{ID: 1, Stock: tt.stock}, tt.sold, thresholds)

			assert.Equal(t, tt.wantStatus, item.StockStatus)
			assert.Equal(t, tt.wantRestock, item.NeedsRestock)
			assert.InDelta(t, tt.wantVelocity, item.SalesVelocity, 0.001)
			if tt.wantDays == nil {
				assert.Nil(t, item.DaysUntilStockout)

				return
			}
			require.NotNil(t, item.DaysUntilStockout)
			assert.Equal(t, *tt.wantDays, *item.DaysUntilStockout)
		})
	}
}

func TestBuildInventory_Totals(t *testing.T) {
	products := []*Product{{ID: 1, Stock: 0}, {ID: 2, Stock: 5}, {ID: 3, Stock: 50}}

	items, totals := BuildInventory(products, map[uint]int64{3: 300}, DefaultInventoryThresholds())

	require.Len(t, items, 3)
	assert.Equal(t, InventoryTotals{Products: 3, OutOfStock: 1, Low: 1, Normal: 1, NeedsRestock: 3}, totals)
}

func ptrInt64(v int64) *int64 {
	return &v
}
