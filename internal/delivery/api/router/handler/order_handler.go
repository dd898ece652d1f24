package handler

import (
	"net/http"

	"tienda/internal/delivery/api/middleware"
	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrderItemRequest is one product line of a new order
type OrderItemRequest struct {
	ProductoID uint `json:"productoId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1,max=1000"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Address     string             `json:"address" validate:"required,min=5,max=255"`
	Agencia     string             `json:"agencia" validate:"required,max=100"`
	CodigoCupon string             `json:"codigoCupon" validate:"omitempty,max=50"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	Status  *string `json:"status" validate:"omitempty,order_status"`
	Address *string `json:"address" validate:"omitempty,min=5,max=255"`
	Agencia *string `json:"agencia" validate:"omitempty,max=100"`
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	var filter repository.OrderFilter
	if err := bindListParams(c, &filter.ListParams); err != nil {
		return response.HandleAppError(c, err)
	}
	err := echo.QueryParamsBinder(c).
		String("status", &filter.Status).
		Uint("userId", &filter.UserID).
		String("dateFrom", &filter.DateFrom).
		String("dateTo", &filter.DateTo).
		BindError()
	if err != nil {
		return response.HandleAppError(c, queryError(err))
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), actor, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, page, "Pedidos obtenidos")
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{ProductoID: item.ProductoID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, &usecase.CreateOrderInput{
		Address:     req.Address,
		Agencia:     req.Agencia,
		CodigoCupon: req.CodigoCupon,
		Items:       items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Pedido creado")
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Pedido obtenido")
}

// UpdateOrder handles PUT /api/orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateOrderInput{
		Address: req.Address,
		Agencia: req.Agencia,
	}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Pedido actualizado")
}

// Summary handles GET /api/orders/summary
func (h *OrderHandler) Summary(c echo.Context) error {
	summary, err := h.orderUC.Summary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Resumen de pedidos")
}
