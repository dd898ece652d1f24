package postgres

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const orderDateLayout = "2006-01-02"

var orderSortColumns = map[string]string{
	"createdAt":  "created_at",
	"totalPrice": "total_price",
	"status":     "status",
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order and its items atomically. The pool skips default
// transactions, so the association insert gets its own here.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User").Create(orderM).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("order references a missing product or user")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		if i >= len(orderM.Items) {
			break
		}
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
		order.Items[i].CreatedAt = orderM.Items[i].CreatedAt
	}

	return nil
}

// FindByID retrieves an order with its items, their products and the buyer.
func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withDetails(repo.db.WithContext(ctx)).First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	q := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.DateFrom != "" {
		from, err := time.Parse(orderDateLayout, filter.DateFrom)
		if err != nil {
			return nil, 0, domainerrors.ErrValidationFailed.WrapMessage("dateFrom must be YYYY-MM-DD")
		}
		q = q.Where("created_at >= ?", from)
	}
	if filter.DateTo != "" {
		to, err := time.Parse(orderDateLayout, filter.DateTo)
		if err != nil {
			return nil, 0, domainerrors.ErrValidationFailed.WrapMessage("dateTo must be YYYY-MM-DD")
		}
		// dateTo is inclusive of the whole day
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		q = q.Where(
			"(address ILIKE ? OR agencia ILIKE ? OR coupon_code ILIKE ? OR user_id IN (?))",
			pattern, pattern, pattern,
			repo.db.Model(&model.UserModel{}).Select("id").Where("name ILIKE ? OR email ILIKE ?", pattern, pattern),
		)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := sortAndPage(repo.withDetails(q), filter.ListParams, orderSortColumns, "created_at").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Update saves status, address and agencia.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		ID:      order.ID,
		Status:  string(order.Status),
		Address: order.Address,
		Agencia: order.Agencia,
	}

	result := repo.db.WithContext(ctx).
		Model(orderM).
		Select("status", "address", "agencia").
		Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

type orderStatusRow struct {
	Status  string
	Count   int64
	Revenue float64
}

// SummarizeByStatus groups every order by status with its count and revenue.
func (repo *orderRepository) SummarizeByStatus(ctx context.Context) ([]entity.OrderStatusSummary, error) {
	var rows []orderStatusRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize orders")
	}

	summary := make([]entity.OrderStatusSummary, 0, len(rows))
	for _, row := range rows {
		summary = append(summary, entity.OrderStatusSummary{
			Status:  entity.OrderStatus(row.Status),
			Count:   row.Count,
			Revenue: row.Revenue,
		})
	}

	return summary, nil
}

type soldQuantityRow struct {
	ProductoID uint
	Sold       int64
}

// SoldQuantitiesSince sums the quantities of items created at or after since.
func (repo *orderRepository) SoldQuantitiesSince(ctx context.Context, since time.Time, productIDs []uint) (map[uint]int64, error) {
	q := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("producto_id, COALESCE(SUM(quantity), 0) AS sold").
		Where("created_at >= ?", since)
	if len(productIDs) > 0 {
		q = q.Where("producto_id IN ?", productIDs)
	}

	var rows []soldQuantityRow
	if err := q.Group("producto_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum sold quantities")
	}

	sold := make(map[uint]int64, len(rows))
	for _, row := range rows {
		sold[row.ProductoID] = row.Sold
	}

	return sold, nil
}

func (repo *orderRepository) withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		Preload("User")
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items = append(items, entity.OrderItem{
			ID:         itemM.ID,
			OrderID:    itemM.OrderID,
			ProductoID: itemM.ProductoID,
			Quantity:   itemM.Quantity,
			UnitPrice:  itemM.UnitPrice,
			TotalPrice: itemM.TotalPrice,
			Product:    toProductDomain(itemM.Product),
			CreatedAt:  itemM.CreatedAt,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		Status:        entity.OrderStatus(data.Status),
		Address:       data.Address,
		Agencia:       data.Agencia,
		CouponCode:    data.CouponCode,
		TotalProducts: data.TotalProducts,
		Discount:      data.Discount,
		TotalPrice:    data.TotalPrice,
		Items:         items,
		User:          toUserDomain(data.User),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductoID: item.ProductoID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Status:        string(data.Status),
		Address:       data.Address,
		Agencia:       data.Agencia,
		CouponCode:    data.CouponCode,
		TotalProducts: data.TotalProducts,
		Discount:      data.Discount,
		TotalPrice:    data.TotalPrice,
		Items:         items,
	}
}
