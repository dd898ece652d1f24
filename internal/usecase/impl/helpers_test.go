package impl

import (
	"io"
	"log/slog"

	"tienda/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
		Inventory: &config.InventoryConfig{
			LowStockThreshold: 5,
			RestockRunwayDays: 14,
			SalesWindowDays:   30,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
