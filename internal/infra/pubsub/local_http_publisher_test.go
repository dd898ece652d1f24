package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tienda/internal/domain/constants"
	"tienda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "orders", testLogger())
	event := &service.OrderEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       constants.EventOrderCreated,
		OrderID:    42,
		UserID:     7,
		Status:     "Pendiente",
		TotalPrice: 90,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "projects/local/subscriptions/orders-push", received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "42", received.Message.OrderingKey)
	assert.Equal(t, constants.EventOrderCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.Attributes["order_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", testLogger())
	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: 1})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: testLogger()}

	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: 1}))
	assert.NoError(t, publisher.Close())
}
