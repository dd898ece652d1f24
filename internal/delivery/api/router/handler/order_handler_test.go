package handler

import (
	"net/http"
	"testing"

	"tienda/internal/delivery/api/middleware"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderHandlerFixtures struct {
	echo    *echo.Echo
	orderUC *mockUC.MockOrderUsecase
	actor   *entity.User
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	actor := &entity.User{ID: 21, Role: entity.RoleUser}

	asActor := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetCurrentUser(c, actor)

			return next(c)
		}
	}

	e := newTestEcho()
	e.GET("/api/orders", h.ListOrders, asActor)
	e.POST("/api/orders", h.CreateOrder, asActor)
	e.GET("/api/orders/:id", h.GetOrder, asActor)

	return orderHandlerFixtures{echo: e, orderUC: orderUC, actor: actor}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		CreateOrder(mock.Anything, fx.actor, &usecase.CreateOrderInput{
			Address: "Av. Arequipa 123",
			Agencia: "Shalom",
			Items:   []usecase.OrderItemInput{{ProductoID: 1, Quantity: 2}},
		}).
		Return(&entity.Order{ID: 9, UserID: 21, Status: entity.OrderStatusPendiente}, nil)

	rec := doRequest(fx.echo, http.MethodPost, "/api/orders",
		`{"address":"Av. Arequipa 123","agencia":"Shalom","items":[{"productoId":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Pendiente"`)
}

func TestOrderHandler_CreateOrder_ItemValidation(t *testing.T) {
	fx := createTestOrderHandler(t)

	rec := doRequest(fx.echo, http.MethodPost, "/api/orders",
		`{"address":"Av. Arequipa 123","agencia":"Shalom","items":[{"productoId":1,"quantity":0}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "items[0].quantity")
}

func TestOrderHandler_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		CreateOrder(mock.Anything, fx.actor, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientStock.WithDetails(map[string]any{"productoId": 1, "requested": 5, "available": 2}))

	rec := doRequest(fx.echo, http.MethodPost, "/api/orders",
		`{"address":"Av. Arequipa 123","agencia":"Shalom","items":[{"productoId":1,"quantity":5}]}`)

	assert.Equal(t, domainerrors.ErrInsufficientStock.HTTPCode(), rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Error.Details), `"available":2`)
}

func TestOrderHandler_ListOrders_Filters(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		ListOrders(mock.Anything, fx.actor, repository.OrderFilter{
			ListParams: repository.ListParams{Page: 1, Limit: 20},
			Status:     "Pagado",
			DateFrom:   "2025-01-01",
		}).
		Return(&entity.Page[*entity.Order]{Items: []*entity.Order{}, Pagination: entity.NewPagination(0, 1, 20)}, nil)

	rec := doRequest(fx.echo, http.MethodGet, "/api/orders?page=1&limit=20&status=Pagado&dateFrom=2025-01-01", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_ListOrders_BadUserID(t *testing.T) {
	fx := createTestOrderHandler(t)

	rec := doRequest(fx.echo, http.MethodGet, "/api/orders?userId=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fx.orderUC.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_GetOrder_Forbidden(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().
		GetOrder(mock.Anything, fx.actor, uint(3)).
		Return(nil, domainerrors.ErrForbidden)

	rec := doRequest(fx.echo, http.MethodGet, "/api/orders/3", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
