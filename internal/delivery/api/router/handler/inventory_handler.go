package handler

import (
	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
}

// InventoryHandler serves the stock report
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{inventoryUC: params.InventoryUC}
}

// Report handles GET /api/inventory
func (h *InventoryHandler) Report(c echo.Context) error {
	var filter repository.InventoryFilter
	if err := bindListParams(c, &filter.ListParams); err != nil {
		return response.HandleAppError(c, err)
	}
	filter.Category = c.QueryParam("category")
	filter.StockStatus = c.QueryParam("stockStatus")

	report, err := h.inventoryUC.Report(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.ListWithTotals(c, report.Items, report.Pagination, report.Totals, "Inventario obtenido")
}
