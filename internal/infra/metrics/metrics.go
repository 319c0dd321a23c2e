// Package metrics holds the Prometheus collectors for the action dispatcher.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	inFlight       prometheus.Gauge
	actionRequests *prometheus.CounterVec
	actionDuration *prometheus.HistogramVec
}

// New registers the dispatcher collectors plus the process and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "citycard",
			Subsystem: "dispatch",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight action requests.",
		}),
		actionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "citycard",
			Subsystem: "dispatch",
			Name:      "requests_total",
			Help:      "Total number of dispatched action requests.",
		}, []string{"action", "method", "status"}),
		actionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "citycard",
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Duration of dispatched action requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"action", "method"}),
	}

	m.registry.MustRegister(
		m.inFlight,
		m.actionRequests,
		m.actionDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Begin marks a request in flight. The returned func records the outcome.
func (m *Metrics) Begin(action, method string) func(status int) {
	start := time.Now()
	m.inFlight.Inc()

	return func(status int) {
		m.inFlight.Dec()
		m.actionRequests.WithLabelValues(action, method, strconv.Itoa(status)).Inc()
		m.actionDuration.WithLabelValues(action, method).Observe(time.Since(start).Seconds())
	}
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
