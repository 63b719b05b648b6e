// Package metrics exposes Prometheus metrics for the settlement API.
// A nil *Metrics is valid and records nothing, which is how metrics are
// switched off.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "settleup"

// Surfaces label the transport a request came in on.
const (
	SurfaceHTTP    = "http"
	SurfaceConnect = "connect"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry            *prometheus.Registry
	requests            *prometheus.CounterVec
	duration            *prometheus.HistogramVec
	settlementTransfers prometheus.Histogram
}

// New creates a Metrics backed by its own registry, including the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests handled, by surface, operation and result code.",
		}, []string{"surface", "operation", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request latency, by surface and operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"surface", "operation"}),
		settlementTransfers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_transfers",
			Help:      "Number of transfers emitted per settlement.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.settlementTransfers,
	)
	return m
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(surface, operation, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(surface, operation, code).Inc()
	m.duration.WithLabelValues(surface, operation).Observe(elapsed.Seconds())
}

// ObserveSettlement records the size of a computed settlement.
func (m *Metrics) ObserveSettlement(transfers int) {
	if m == nil {
		return
	}
	m.settlementTransfers.Observe(float64(transfers))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
