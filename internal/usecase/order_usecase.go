package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
)

// OrderItemInput is one requested product line.
type OrderItemInput struct {
	ProductoID uint
	Quantity   int
}

// CreateOrderInput is a checkout request.
type CreateOrderInput struct {
	Address     string
	Agencia     string
	CodigoCupon string
	Items       []OrderItemInput
}

// UpdateOrderInput carries the order fields to change; nil fields are kept.
type UpdateOrderInput struct {
	Status  *entity.OrderStatus
	Address *string
	Agencia *string
}

// OrderUsecase defines order placement and back-office order management
type OrderUsecase interface {
	// ListOrders returns every order to admins and only their own to customers.
	ListOrders(ctx context.Context, actor *entity.User, filter repository.OrderFilter) (*entity.Page[*entity.Order], error)

	// CreateOrder prices the items from the catalog, applies the coupon and stores the order.
	CreateOrder(ctx context.Context, actor *entity.User, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder returns the order when actor owns it or is an admin.
	GetOrder(ctx context.Context, actor *entity.User, id uint) (*entity.Order, error)

	UpdateOrder(ctx context.Context, id uint, input *UpdateOrderInput) (*entity.Order, error)

	// Summary returns order counts and revenue per status.
	Summary(ctx context.Context) (*entity.OrderSummary, error)
}
