package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Begin(t *testing.T) {
	m := New()

	done := m.Begin("podorozhnik-pay", http.MethodPost)
	assert.InDelta(t, 1, testutil.ToFloat64(m.inFlight), 0)

	done(http.StatusBadRequest)
	assert.InDelta(t, 0, testutil.ToFloat64(m.inFlight), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		m.actionRequests.WithLabelValues("podorozhnik-pay", http.MethodPost, "400"),
	), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.actionDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Begin("weather", http.MethodGet)(http.StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `citycard_dispatch_requests_total{action="weather",method="GET",status="200"} 1`)
}
