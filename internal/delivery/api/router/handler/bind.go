package handler

import (
	"strconv"
	"time"

	domainerrors "citycard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// bindAndValidate reads query parameters (GET) or the JSON body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request: " + bindMessage(err))
	}

	return c.Validate(req)
}

func bindMessage(err error) string {
	if httpErr, ok := err.(*echo.HTTPError); ok {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}

func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(field + " must be a date in " + dateLayout + " format")
	}

	return date, nil
}

// optionalInt64 reads an integer query parameter that may be absent.
func optionalInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return &value, nil
}
