package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/constants"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxOrderItems bounds the product lines of one order.
const maxOrderItems = 50

type orderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	cuponRepo      repository.CuponRepository
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
	now            func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	ProductRepo    repository.ProductRepository
	CuponRepo      repository.CuponRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      params.OrderRepo,
		productRepo:    params.ProductRepo,
		cuponRepo:      params.CuponRepo,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) ListOrders(ctx context.Context, actor *entity.User, filter repository.OrderFilter) (*entity.Page[*entity.Order], error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	normalizeListParams(srv.config, &filter.ListParams)

	if filter.Status != "" && !entity.OrderStatus(filter.Status).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("status", "order_status", "unknown order status"))
	}
	if !actor.IsAdmin() {
		filter.UserID = actor.ID
	}

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return newPage(orders, total, filter.ListParams), nil
}

// CreateOrder prices every line from the stored product, never from the request.
func (srv *orderService) CreateOrder(ctx context.Context, actor *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	lines, err := mergeOrderItems(input.Items)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductoID)
	}
	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}
	byID := make(map[uint]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	order := &entity.Order{
		UserID:  actor.ID,
		Status:  entity.OrderStatusPendiente,
		Address: strings.TrimSpace(input.Address),
		Agencia: strings.TrimSpace(input.Agencia),
		Items:   make([]entity.OrderItem, 0, len(lines)),
	}

	var subtotal float64
	for _, line := range lines {
		product, ok := byID[line.ProductoID]
		if !ok || product.Estado != entity.ProductEstadoActivo {
			return nil, domainerrors.ErrProductNotFound.WithDetails(map[string]any{"productoId": line.ProductoID})
		}
		if line.Quantity > product.Stock {
			srv.log(ctx).Warn("Order rejected for insufficient stock",
				slog.Any("productID", product.ID), slog.Int("requested", line.Quantity), slog.Int("available", product.Stock))

			return nil, domainerrors.ErrInsufficientStock.WithDetails(map[string]any{
				"productoId": product.ID,
				"requested":  line.Quantity,
				"available":  product.Stock,
			})
		}

		item := entity.OrderItem{
			ProductoID: product.ID,
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: entity.RoundMoney(product.Price * float64(line.Quantity)),
			Product:    product,
		}
		subtotal += item.TotalPrice
		order.TotalProducts += item.Quantity
		order.Items = append(order.Items, item)
	}
	subtotal = entity.RoundMoney(subtotal)

	if code := entity.NormalizeCuponCode(input.CodigoCupon); code != "" {
		cupon, err := srv.applicableCupon(ctx, code)
		if err != nil {
			return nil, err
		}
		order.CouponCode = cupon.CodigoCupon
		order.Discount = cupon.DiscountFor(subtotal)
	}
	order.TotalPrice = entity.RoundMoney(subtotal - order.Discount)

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID), slog.Any("userID", order.UserID), slog.Float64("totalPrice", order.TotalPrice))
	srv.publish(ctx, constants.EventOrderCreated, order)

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, id uint) (*entity.Order, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if !actor.IsAdmin() && order.UserID != actor.ID {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", id), slog.Any("userID", actor.ID))

		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

func (srv *orderService) UpdateOrder(ctx context.Context, id uint, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("status", "order_status", "unknown order status"))
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	previous := order.Status
	if input.Status != nil {
		order.Status = *input.Status
	}
	order.Address = trimmedOr(input.Address, order.Address)
	order.Agencia = trimmedOr(input.Agencia, order.Agencia)

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	if order.Status != previous {
		srv.log(ctx).Info("Order status changed",
			slog.Any("orderID", order.ID), slog.String("from", string(previous)), slog.String("to", string(order.Status)))
		srv.publish(ctx, constants.EventOrderStatusChanged, order)
	}

	return order, nil
}

func (srv *orderService) Summary(ctx context.Context) (*entity.OrderSummary, error) {
	rows, err := srv.orderRepo.SummarizeByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize orders")
	}

	summary := entity.NewOrderSummary(rows)

	return &summary, nil
}

func (srv *orderService) applicableCupon(ctx context.Context, code string) (*entity.Cupon, error) {
	cupon, err := srv.cuponRepo.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrCuponNotFound) {
			return nil, errors.Wrap(err, "failed to find cupon by code")
		}
		cupon = nil
	}

	if reason := cupon.RejectReason(srv.now()); reason != "" {
		return nil, domainerrors.ErrInvalidCoupon.WithDetails(map[string]any{
			"codigoCupon": code,
			"reason":      reason,
		})
	}

	return cupon, nil
}

// publish emits an order event. Failures are logged and never reach the caller.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.RequestIDFromContext(ctx),
		ActorID:       deliverycontext.ActorIDFromContext(ctx),
		EventID:       uuid.NewString(),
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Status:        string(order.Status),
		TotalProducts: order.TotalProducts,
		TotalPrice:    order.TotalPrice,
		OccurredAt:    srv.now().UTC(),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", eventType), slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// mergeOrderItems folds repeated products into one line, keeping first-seen order.
func mergeOrderItems(items []usecase.OrderItemInput) ([]usecase.OrderItemInput, error) {
	if len(items) == 0 || len(items) > maxOrderItems {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("items", "range", "an order needs between 1 and 50 items"))
	}

	merged := make([]usecase.OrderItemInput, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if item.ProductoID == 0 || item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("items", "item", "every item needs a productoId and a positive quantity"))
		}
		if i, ok := index[item.ProductoID]; ok {
			merged[i].Quantity += item.Quantity

			continue
		}
		index[item.ProductoID] = len(merged)
		merged = append(merged, item)
	}

	return merged, nil
}
