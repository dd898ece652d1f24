package service

import (
	"context"
	"time"
)

// OrderEvent is published whenever an order is created or changes status.
type OrderEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	OrderID       uint      `json:"order_id"`
	UserID        uint      `json:"user_id"`
	ActorID       uint      `json:"actor_id,omitempty"` // user whose request raised the event
	Status        string    `json:"status"`
	TotalProducts int       `json:"total_products"`
	TotalPrice    float64   `json:"total_price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
