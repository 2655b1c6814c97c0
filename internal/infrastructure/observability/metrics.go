package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	SearchQueries  *prometheus.CounterVec
	ContactUpserts *prometheus.CounterVec
	AIFallbacks    *prometheus.CounterVec

	// Store metrics
	StoreOperations *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec
	BreakerState    *prometheus.GaugeVec
}

// NewCollector creates a collector with its own registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SearchQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_queries_total",
				Help:      "Unified search queries by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		ContactUpserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contact_upserts_total",
				Help:      "CRM contact upserts by result",
			},
			[]string{"result"},
		),
		AIFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ai_fallbacks_total",
				Help:      "AI completions answered by the deterministic fallback",
			},
			[]string{"reason"},
		),
		StoreOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_operations_total",
				Help:      "Total number of hosted store operations",
			},
			[]string{"operation", "table", "status"},
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_operation_duration_seconds",
				Help:      "Hosted store operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		BreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"name"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.SearchQueries,
		c.ContactUpserts,
		c.AIFallbacks,
		c.StoreOperations,
		c.StoreDuration,
		c.BreakerState,
	)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordSearch counts one unified search.
func (c *Collector) RecordSearch(mode, outcome string) {
	if c == nil {
		return
	}
	c.SearchQueries.WithLabelValues(mode, outcome).Inc()
}

// RecordContactUpsert counts one contact upsert (created, updated or failed).
func (c *Collector) RecordContactUpsert(result string) {
	if c == nil {
		return
	}
	c.ContactUpserts.WithLabelValues(result).Inc()
}

// RecordAIFallback counts one completion served by the fallback.
func (c *Collector) RecordAIFallback(reason string) {
	if c == nil {
		return
	}
	c.AIFallbacks.WithLabelValues(reason).Inc()
}

// RecordStoreOperation records the outcome and latency of one store call.
func (c *Collector) RecordStoreOperation(operation, table string, err error, took time.Duration) {
	if c == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	c.StoreOperations.WithLabelValues(operation, table, status).Inc()
	c.StoreDuration.WithLabelValues(operation, table).Observe(took.Seconds())
}

// SetBreakerState publishes a circuit breaker state.
func (c *Collector) SetBreakerState(name string, state float64) {
	if c == nil {
		return
	}
	c.BreakerState.WithLabelValues(name).Set(state)
}
