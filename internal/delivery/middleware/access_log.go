package middleware

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "citycard/internal/delivery/context"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/errors"

	"github.com/labstack/echo/v4"
)

// AccessLog writes one line per request when verbose is set, and one line
// per server error regardless.
func AccessLog(base *slog.Logger, verbose bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// The error handler runs after us, so the committed status is not final yet.
			status := c.Response().Status
			if err != nil {
				status = StatusOf(err)
			}
			if !verbose && status < http.StatusInternalServerError {
				return err
			}

			req := c.Request()
			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("query", req.URL.RawQuery),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			deliverycontext.GetLoggerOrDefault(req.Context(), base).
				LogAttrs(req.Context(), levelFor(status), "Request served", attrs...)

			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// StatusOf maps a handler error onto the status the error handler will write.
func StatusOf(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
