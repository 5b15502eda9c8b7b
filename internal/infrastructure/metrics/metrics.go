// Package metrics exposes the Prometheus collectors of the API.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AI call outcomes
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the process-wide collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AICallsTotal        *prometheus.CounterVec
	AICallDuration      *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors once per process.
//
// Metrics:
//   - oneonone_http_requests_total{method,route,status}
//   - oneonone_http_request_duration_seconds{method,route}
//   - oneonone_ai_calls_total{operation,provider,outcome}
//   - oneonone_ai_call_duration_seconds{operation,provider}
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oneonone",
					Subsystem: "http",
					Name:      "requests_total",
					Help:      "Total number of HTTP requests handled",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "oneonone",
					Subsystem: "http",
					Name:      "request_duration_seconds",
					Help:      "HTTP request latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			AICallsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oneonone",
					Subsystem: "ai",
					Name:      "calls_total",
					Help:      "Total number of AI operations by provider and outcome",
				},
				[]string{"operation", "provider", "outcome"}, // provider "rules" for the keyword fallback
			),
			AICallDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "oneonone",
					Subsystem: "ai",
					Name:      "call_duration_seconds",
					Help:      "Latency of outbound LLM calls in seconds",
					Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
				},
				[]string{"operation", "provider"},
			),
		}
	})
	return globalMetrics
}

// RecordAICall counts one AI operation attempt
func (m *Metrics) RecordAICall(operation, provider, outcome string) {
	if m == nil {
		return
	}
	m.AICallsTotal.WithLabelValues(operation, provider, outcome).Inc()
}

// ObserveAICall records the latency of an outbound LLM call
func (m *Metrics) ObserveAICall(operation, provider string, seconds float64) {
	if m == nil {
		return
	}
	m.AICallDuration.WithLabelValues(operation, provider).Observe(seconds)
}

// RecordHTTPRequest counts one served request and records its latency
func (m *Metrics) RecordHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
