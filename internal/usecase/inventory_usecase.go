package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
)

// InventoryUsecase derives the stock report
type InventoryUsecase interface {
	// Report builds stock status, sales velocity and runway for every matching product.
	Report(ctx context.Context, filter repository.InventoryFilter) (*entity.InventoryReport, error)
}
