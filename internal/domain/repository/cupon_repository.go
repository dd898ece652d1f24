package repository

import (
	"context"

	"tienda/internal/domain/entity"
)

// CuponRepository defines persistence operations for coupons.
type CuponRepository interface {
	Create(ctx context.Context, cupon *entity.Cupon) error
	FindByID(ctx context.Context, id uint) (*entity.Cupon, error)

	// FindByCode retrieves a coupon by code, ignoring case.
	FindByCode(ctx context.Context, code string) (*entity.Cupon, error)

	List(ctx context.Context, filter CuponFilter) ([]*entity.Cupon, int64, error)
	Update(ctx context.Context, cupon *entity.Cupon) error
	Delete(ctx context.Context, id uint) error
}
