package impl

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/constants"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	orderRepo      *mockRepo.MockOrderRepository
	productRepo    *mockRepo.MockProductRepository
	cuponRepo      *mockRepo.MockCuponRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cuponRepo := mockRepo.NewMockCuponRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo:      orderRepo,
		ProductRepo:    productRepo,
		CuponRepo:      cuponRepo,
		EventPublisher: eventPublisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
	service.(*orderService).now = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}

	return orderServiceFixtures{
		service:        service,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		cuponRepo:      cuponRepo,
		eventPublisher: eventPublisher,
	}
}

var (
	testCustomer = &entity.User{ID: 21, Role: entity.RoleUser}
	testAdmin    = &entity.User{ID: 1, Role: entity.RoleAdmin}
)

func testProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "Polo", Price: 29.9, Stock: 10, Estado: entity.ProductEstadoActivo},
		{ID: 2, Name: "Jean", Price: 89.5, Stock: 2, Estado: entity.ProductEstadoActivo},
	}
}

func TestOrderService_CreateOrder_PricesFromCatalogWithCoupon(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uint{1, 2}).
		Return(testProducts(), nil)

	fx.cuponRepo.EXPECT().
		FindByCode(ctx, "SAVE10").
		Return(&entity.Cupon{CodigoCupon: "SAVE10", Descuento: 10, Activo: true}, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = 500
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == constants.EventOrderCreated && event.OrderID == 500 && event.EventID != ""
		})).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, testCustomer, &usecase.CreateOrderInput{
		Address:     " Av. Arequipa 123 ",
		Agencia:     "Shalom",
		CodigoCupon: "save10",
		Items: []usecase.OrderItemInput{
			{ProductoID: 1, Quantity: 2},
			{ProductoID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 2 * 29.90 + 89.50 = 149.30, minus 10% = 14.93
	assert.Equal(t, uint(500), order.ID)
	assert.Equal(t, testCustomer.ID, order.UserID)
	assert.Equal(t, entity.OrderStatusPendiente, order.Status)
	assert.Equal(t, "Av. Arequipa 123", order.Address)
	assert.Equal(t, 3, order.TotalProducts)
	assert.Equal(t, "SAVE10", order.CouponCode)
	assert.InDelta(t, 14.93, order.Discount, 0.001)
	assert.InDelta(t, 134.37, order.TotalPrice, 0.001)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 59.8, order.Items[0].TotalPrice, 0.001)
}

func TestOrderService_CreateOrder_MergesRepeatedItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uint{1}).
		Return(testProducts()[:1], nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.Anything).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, testCustomer, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductoID: 1, Quantity: 2},
			{ProductoID: 1, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.InDelta(t, 149.5, order.TotalPrice, 0.001)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uint{2}).
		Return(testProducts()[1:], nil)

	_, err := fx.service.CreateOrder(ctx, testCustomer, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductoID: 2, Quantity: 3}},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]any{"productoId": uint(2), "requested": 3, "available": 2}, appErr.Details())
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	products := testProducts()
	products[0].Estado = entity.ProductEstadoInactivo

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uint{1}).
		Return(products[:1], nil)

	_, err := fx.service.CreateOrder(ctx, testCustomer, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductoID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_CreateOrder_RejectedCoupon(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uint{1}).
		Return(testProducts()[:1], nil)

	fx.cuponRepo.EXPECT().
		FindByCode(ctx, "GONE").
		Return(&entity.Cupon{CodigoCupon: "GONE", Descuento: 50}, nil)

	_, err := fx.service.CreateOrder(ctx, testCustomer, &usecase.CreateOrderInput{
		CodigoCupon: "gone",
		Items:       []usecase.OrderItemInput{{ProductoID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]any{"codigoCupon": "GONE", "reason": entity.CuponReasonInactive}, appErr.Details())
}

func TestOrderService_CreateOrder_InvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []usecase.OrderItemInput
	}{
		{name: "empty", items: nil},
		{name: "zero quantity", items: []usecase.OrderItemInput{{ProductoID: 1, Quantity: 0}}},
		{name: "missing product", items: []usecase.OrderItemInput{{Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.CreateOrder(context.Background(), testCustomer, &usecase.CreateOrderInput{Items: tt.items})
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_CreateOrder_PublishFailureIsTolerated(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uint{1}).
		Return(testProducts()[:1], nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.Anything).
		Return(errors.New("topic unavailable"))

	order, err := fx.service.CreateOrder(ctx, testCustomer, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductoID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_ListOrders_ScopesCustomers(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.UserID == testCustomer.ID
		})).
		Return([]*entity.Order{{ID: 1, UserID: testCustomer.ID}}, int64(1), nil)

	page, err := fx.service.ListOrders(ctx, testCustomer, repository.OrderFilter{UserID: 999})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestOrderService_ListOrders_AdminKeepsFilter(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.UserID == 999 && filter.Status == "Pagado"
		})).
		Return(nil, int64(0), nil)

	_, err := fx.service.ListOrders(ctx, testAdmin, repository.OrderFilter{UserID: 999, Status: "Pagado"})
	require.NoError(t, err)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListOrders(context.Background(), testAdmin, repository.OrderFilter{Status: "Perdido"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetOrder_ForeignOrderForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(8)).
		Return(&entity.Order{ID: 8, UserID: 99}, nil)

	_, err := fx.service.GetOrder(ctx, testCustomer, 8)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrder_PublishesStatusChange(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: 8, UserID: 21, Status: entity.OrderStatusPendiente}
	status := entity.OrderStatusPagado

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(8)).
		Return(order, nil)

	fx.orderRepo.EXPECT().
		Update(ctx, order).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == constants.EventOrderStatusChanged && event.Status == "Pagado"
		})).
		Return(nil)

	updated, err := fx.service.UpdateOrder(ctx, 8, &usecase.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPagado, updated.Status)
}

func TestOrderService_UpdateOrder_AddressOnlyDoesNotPublish(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: 8, Status: entity.OrderStatusPagado, Address: "old"}

	fx.orderRepo.EXPECT().
		FindByID(ctx, uint(8)).
		Return(order, nil)

	fx.orderRepo.EXPECT().
		Update(ctx, order).
		Return(nil)

	updated, err := fx.service.UpdateOrder(ctx, 8, &usecase.UpdateOrderInput{Address: ptr(" Jr. Lima 45 ")})
	require.NoError(t, err)
	assert.Equal(t, "Jr. Lima 45", updated.Address)
	fx.eventPublisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_Summary(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		SummarizeByStatus(ctx).
		Return([]entity.OrderStatusSummary{
			{Status: entity.OrderStatusPagado, Count: 2, Revenue: 100.5},
			{Status: entity.OrderStatusCancelado, Count: 1, Revenue: 40},
		}, nil)

	summary, err := fx.service.Summary(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.ByStatus, len(entity.OrderStatuses))
	assert.Equal(t, int64(3), summary.TotalOrders)
	assert.InDelta(t, 100.5, summary.TotalRevenue, 0.001)
}
