// Package dispatch routes a request to one operation by its action and method.
package dispatch

import (
	"log/slog"
	"net/http"

	apimiddleware "citycard/internal/delivery/api/middleware"
	deliverycontext "citycard/internal/delivery/context"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// ActionParam is the query parameter naming the operation.
const ActionParam = "action"

// unknownAction is the metrics label of every unrouted call.
const unknownAction = "unknown"

// Route identifies an operation.
type Route struct {
	Action string
	Method string
}

// Operation handles one routed call.
type Operation interface {
	Handle(c echo.Context) error
}

// OperationFunc adapts a handler method to Operation.
type OperationFunc func(c echo.Context) error

// Handle calls f(c).
func (f OperationFunc) Handle(c echo.Context) error {
	return f(c)
}

// Dispatcher holds the closed route table.
type Dispatcher struct {
	routes   map[Route]Operation
	fallback Operation
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher whose unmatched calls answer INVALID_ACTION.
func NewDispatcher(m *metrics.Metrics, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		routes:   make(map[Route]Operation),
		fallback: OperationFunc(invalidAction),
		metrics:  m,
		logger:   logger,
	}
}

// Register binds op to (action, method). Registering a pair twice panics.
func (d *Dispatcher) Register(action, method string, op Operation) {
	route := Route{Action: action, Method: method}
	if _, exists := d.routes[route]; exists {
		panic("dispatch: duplicate route " + method + " " + action)
	}
	d.routes[route] = op
}

// Routes returns the number of registered operations.
func (d *Dispatcher) Routes() int {
	return len(d.routes)
}

// Dispatch is the echo handler for the action endpoint.
func (d *Dispatcher) Dispatch(c echo.Context) error {
	route := Route{
		Action: c.QueryParam(ActionParam),
		Method: c.Request().Method,
	}

	op, ok := d.routes[route]
	label := route.Action
	if !ok {
		op = d.fallback
		label = unknownAction
	}

	done := d.metrics.Begin(label, route.Method)
	err := op.Handle(c)

	status := apimiddleware.StatusOf(err)
	if err == nil && c.Response().Committed {
		status = c.Response().Status
	}
	done(status)

	if !ok {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), d.logger).Debug("Unrouted action",
			slog.String("action", route.Action),
			slog.String("method", route.Method),
		)
	}

	return err
}

func invalidAction(echo.Context) error {
	return domainerrors.ErrInvalidAction
}

// MethodsAllowed lists the methods the CORS preflight advertises.
//
//nolint:gochecknoglobals
var MethodsAllowed = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}
