package dispatch

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/errors"
	"citycard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher() *Dispatcher {
	return NewDispatcher(metrics.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(d *Dispatcher, method, target string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)

	return rec, d.Dispatch(c)
}

func TestDispatcher_SelectsByActionAndMethod(t *testing.T) {
	d := newDispatcher()

	var called []string
	d.Register("weather", http.MethodGet, OperationFunc(func(c echo.Context) error {
		called = append(called, "get")

		return c.NoContent(http.StatusOK)
	}))
	d.Register("weather", http.MethodPost, OperationFunc(func(c echo.Context) error {
		called = append(called, "post")

		return c.NoContent(http.StatusOK)
	}))

	_, err := serve(d, http.MethodPost, "/?action=weather")
	require.NoError(t, err)
	_, err = serve(d, http.MethodGet, "/?action=weather")
	require.NoError(t, err)

	assert.Equal(t, []string{"post", "get"}, called)
	assert.Equal(t, 2, d.Routes())
}

func TestDispatcher_FallbackIsInvalidAction(t *testing.T) {
	d := newDispatcher()
	d.Register("login", http.MethodPost, OperationFunc(func(echo.Context) error {
		t.Fatal("login must not run for GET")

		return nil
	}))

	for _, target := range []string{"/?action=login", "/?action=", "/"} {
		_, err := serve(d, http.MethodGet, target)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidAction), target)
	}
}

func TestDispatcher_DuplicateRoutePanics(t *testing.T) {
	d := newDispatcher()
	op := OperationFunc(func(echo.Context) error { return nil })

	d.Register("widgets", http.MethodPost, op)
	assert.Panics(t, func() { d.Register("widgets", http.MethodPost, op) })
}
