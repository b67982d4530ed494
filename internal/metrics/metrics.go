// Package metrics exposes Prometheus instrumentation for the match flow and
// the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Match outcomes
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
	OutcomeEmpty   = "empty_request"
	OutcomeError   = "store_error"
)

// Metrics owns a private registry so several instances can coexist in tests
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	matchRequestsTotal *prometheus.CounterVec
	matchCandidates    prometheus.Histogram
	matchResults       prometheus.Histogram
}

// New creates a metrics collector with Go runtime and process collectors registered
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		matchRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipe_match_requests_total",
				Help: "Total number of recipe match requests by outcome",
			},
			[]string{"outcome"},
		),
		matchCandidates: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recipe_match_candidates",
				Help:    "Number of candidate recipes retrieved per match request",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		matchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recipe_match_results",
				Help:    "Number of recipes returned per match request",
				Buckets: []float64{0, 1, 2, 3, 4, 8},
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveMatch records one match request. A nil receiver is a no-op.
func (m *Metrics) ObserveMatch(outcome string, candidates, results int) {
	if m == nil {
		return
	}
	m.matchRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeError || outcome == OutcomeEmpty {
		return
	}
	m.matchCandidates.Observe(float64(candidates))
	m.matchResults.Observe(float64(results))
}

// ObserveHTTP records one served HTTP request. A nil receiver is a no-op.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
