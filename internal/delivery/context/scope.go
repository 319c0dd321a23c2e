// Package context carries per-request values from the HTTP edge down to
// usecases and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type scopeKey struct{}

const (
	// HeaderXRequestID is echoed back on every response and forwarded on ledger pushes.
	HeaderXRequestID = "X-Request-Id"

	echoRequestIDKey = "request_id"
)

// Scope is what a single dispatched call knows about itself.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
}

// WithScope stores the scope in ctx.
func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the stored scope, or the zero Scope.
func ScopeFrom(ctx context.Context) Scope {
	scope, _ := ctx.Value(scopeKey{}).(Scope)

	return scope
}

// SetRequestID exposes the request ID to echo handlers.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID, empty outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	return ScopeFrom(ctx).RequestID
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := ScopeFrom(ctx).Logger; logger != nil {
		return logger
	}

	return fallback
}
