package repository

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
)

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// Create persists an order together with its items in one statement.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// Update saves status, address and agencia.
	Update(ctx context.Context, order *entity.Order) error

	// SummarizeByStatus returns order count and revenue grouped by status.
	SummarizeByStatus(ctx context.Context) ([]entity.OrderStatusSummary, error)

	// SoldQuantitiesSince sums item quantities created at or after since, keyed by product.
	// An empty productIDs slice means every product.
	SoldQuantitiesSince(ctx context.Context, since time.Time, productIDs []uint) (map[uint]int64, error)
}
