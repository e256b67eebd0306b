// Package metrics holds the prometheus collectors for the mentor server.
//
// Collectors are registered on a private registry owned by Metrics, so
// several servers (or tests) can live in one process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zarndearc/learners-coder-mcp/internal/intent"
	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
)

const namespace = "learners_coder"

// Metrics implements tools.Observer and the HTTP instrumentation hooks.
type Metrics struct {
	registry *prometheus.Registry

	MentorRequests   *prometheus.CounterVec
	ToolCalls        *prometheus.CounterVec
	FetchMisses      prometheus.Counter
	ActiveSessions   prometheus.Gauge
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	DocumentsIndexed prometheus.Gauge
}

// New registers every collector on a fresh registry, together with the
// standard process and Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		MentorRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mentor_requests_total",
				Help:      "Total number of mentor responses by detected intent and view",
			},
			[]string{"intent", "view"},
		),

		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of MCP tool calls",
			},
			[]string{"tool", "status"},
		),

		FetchMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_misses_total",
				Help:      "Total number of fetch calls answered with the placeholder document",
			},
		),

		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sse_sessions_active",
				Help:      "Number of connected MCP SSE sessions",
			},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		DocumentsIndexed: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "documents_indexed",
				Help:      "Number of documents served by search and fetch",
			},
		),
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ToolCalled records a tool call outcome.
func (m *Metrics) ToolCalled(tool string, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.ToolCalls.WithLabelValues(tool, status).Inc()
}

// FetchMissed records a placeholder fetch.
func (m *Metrics) FetchMissed(string) {
	m.FetchMisses.Inc()
}

// MentorAnswered records a mentor response.
func (m *Metrics) MentorAnswered(tag intent.Tag, view mentor.View) {
	m.MentorRequests.WithLabelValues(string(tag), string(view)).Inc()
}

// SessionOpened and SessionClosed track SSE sessions.
func (m *Metrics) SessionOpened() { m.ActiveSessions.Inc() }

func (m *Metrics) SessionClosed() { m.ActiveSessions.Dec() }

// ObserveHTTP records one finished HTTP request. route should be the
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
