// Package context carries request-scoped values across the delivery and
// usecase layers: the request id assigned at the HTTP edge and the logger
// derived from it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID holds the request id assigned by the request-id middleware.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the logger carrying the request id field.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the header the request id is read from and echoed to.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request ID in echo.Context for response use.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a context carrying the request ID for the layers
// below the HTTP edge.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil when the context did
// not pass through the request-id middleware.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// given logger for background work outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
