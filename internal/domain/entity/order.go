package entity

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPendiente OrderStatus = "Pendiente"
	OrderStatusPagado    OrderStatus = "Pagado"
	OrderStatusEnviado   OrderStatus = "Enviado"
	OrderStatusEntregado OrderStatus = "Entregado"
	OrderStatusCancelado OrderStatus = "Cancelado"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPendiente,
	OrderStatusPagado,
	OrderStatusEnviado,
	OrderStatusEntregado,
	OrderStatusCancelado,
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// CountsAsRevenue reports whether orders in this status contribute to sales totals.
func (s OrderStatus) CountsAsRevenue() bool {
	return s != OrderStatusCancelado
}

// Order is a customer purchase.
type Order struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"userId"`
	Status        OrderStatus `json:"status"`
	Address       string      `json:"address"`
	Agencia       string      `json:"agencia"`
	CouponCode    string      `json:"couponCode,omitempty"`
	TotalProducts int         `json:"totalProducts"`
	Discount      float64     `json:"discount"`
	TotalPrice    float64     `json:"totalPrice"`
	Items         []OrderItem `json:"items"`
	User          *User       `json:"user,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OrderItem is a single product line of an order.
type OrderItem struct {
	ID         uint      `json:"id"`
	OrderID    uint      `json:"orderId"`
	ProductoID uint      `json:"productoId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderStatusSummary aggregates orders sharing a status.
type OrderStatusSummary struct {
	Status  OrderStatus `json:"status"`
	Count   int64       `json:"count"`
	Revenue float64     `json:"revenue"`
}

// OrderSummary is the back-office dashboard view of all orders.
type OrderSummary struct {
	ByStatus     []OrderStatusSummary `json:"byStatus"`
	TotalOrders  int64                `json:"totalOrders"`
	TotalRevenue float64              `json:"totalRevenue"`
}

// NewOrderSummary folds per-status rows into a summary that lists every
// status, including the ones with no orders. Cancelled revenue is dropped.
func NewOrderSummary(rows []OrderStatusSummary) OrderSummary {
	byStatus := make(map[OrderStatus]OrderStatusSummary, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row
	}

	summary := OrderSummary{ByStatus: make([]OrderStatusSummary, 0, len(OrderStatuses))}
	for _, status := range OrderStatuses {
		row := byStatus[status]
		row.Status = status
		if !status.CountsAsRevenue() {
			row.Revenue = 0
		}
		row.Revenue = RoundMoney(row.Revenue)

		summary.ByStatus = append(summary.ByStatus, row)
		summary.TotalOrders += row.Count
		summary.TotalRevenue += row.Revenue
	}
	summary.TotalRevenue = RoundMoney(summary.TotalRevenue)

	return summary
}
