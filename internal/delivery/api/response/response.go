// Package response renders the flat JSON bodies of the action API.
package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error   string `json:"error"`             // Human-readable message
	Code    string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // What the caller got wrong, client errors only
}

// SuccessResponse is the body of operations that only acknowledge.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreatedResponse acknowledges a created row.
type CreatedResponse struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

// OK writes body as-is with status 200.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Success writes {"success": true}.
func Success(c echo.Context) error {
	return OK(c, SuccessResponse{Success: true})
}

// Created writes {"id": id, "success": true}.
func Created(c echo.Context, id int64) error {
	return OK(c, CreatedResponse{ID: id, Success: true})
}

// PNG writes an image body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

// Error writes the failure body with the given status.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return ErrorWithDetails(c, statusCode, errorCode, message, "")
}

// ErrorWithDetails writes the failure body including the details field.
func ErrorWithDetails(c echo.Context, statusCode int, errorCode, message, details string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

// Date renders the date part only.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Money renders an amount as a JSON number.
func Money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// NullableString renders an empty string as null.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
