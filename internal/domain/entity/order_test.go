package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderSummary_ListsEveryStatus(t *testing.T) {
	summary := NewOrderSummary([]OrderStatusSummary{
		{Status: OrderStatusEntregado, Count: 3, Revenue: 300.333},
		{Status: OrderStatusCancelado, Count: 2, Revenue: 80},
	})

	require.Len(t, summary.ByStatus, len(OrderStatuses))
	for i, row := range summary.ByStatus {
		assert.Equal(t, OrderStatuses[i], row.Status)
	}
	assert.Equal(t, int64(5), summary.TotalOrders)
	assert.InDelta(t, 300.33, summary.TotalRevenue, 0.0001)
	assert.Zero(t, summary.ByStatus[4].Revenue)
	assert.Equal(t, int64(2), summary.ByStatus[4].Count)
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPagado.IsValid())
	assert.False(t, OrderStatus("pagado").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Total: 21, Page: 2, Limit: 10, TotalPages: 3}, NewPagination(21, 2, 10))
	assert.Equal(t, Pagination{Total: 0, Page: 1, Limit: 10, TotalPages: 0}, NewPagination(0, 1, 10))
}
