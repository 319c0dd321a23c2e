package middleware

import (
	"log/slog"

	deliverycontext "citycard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actionParam is the dispatcher's discriminator; it is attached to every log line.
const actionParam = "action"

// Scope reuses the caller's X-Request-Id or mints one, echoes it on the
// response, and stores a logger tagged with request_id and action.
func Scope(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			logger := base.With(slog.String("request_id", requestID))
			if action := c.QueryParam(actionParam); action != "" {
				logger = logger.With(slog.String("action", action))
			}

			c.SetRequest(req.WithContext(deliverycontext.WithScope(req.Context(), deliverycontext.Scope{
				RequestID: requestID,
				Logger:    logger,
			})))

			return next(c)
		}
	}
}
