// Package context carries request scoped values (request ID, actor, logger)
// from the HTTP layer down to the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	actorIDKey
	loggerKey
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the request ID on the echo.Context for the response envelope.
const echoRequestIDKey = "request_id"

// GetRequestID returns the request ID stored on c, or a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores requestID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID of ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithActor records the signed-in user of the request. The request logger,
// when present, is tagged with the same ID.
func WithActor(ctx context.Context, userID uint) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, userID)
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		ctx = WithLogger(ctx, logger.With(slog.Uint64("user_id", uint64(userID))))
	}

	return ctx
}

// ActorIDFromContext returns the signed-in user of ctx; zero when anonymous.
func ActorIDFromContext(ctx context.Context) uint {
	id, _ := ctx.Value(actorIDKey).(uint)

	return id
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request logger of ctx, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
