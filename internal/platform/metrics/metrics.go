// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for auth attempts.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFault    = "fault"
)

// Metrics holds the collectors recorded by the GraphQL layer.
type Metrics struct {
	registry        *prometheus.Registry
	AuthAttempts    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates a dedicated registry with Go/process collectors and the API metrics.
func New() *Metrics {
	// グローバルレジストリを汚さないよう専用のレジストリを作成
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		AuthAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_auth_attempts_total",
				Help: "Total number of signup/signin attempts by outcome",
			},
			[]string{"operation", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blog_graphql_request_duration_seconds",
				Help:    "GraphQL request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.AuthAttempts)
	reg.MustRegister(m.RequestDuration)
	return m
}

// RecordAuth increments the auth attempt counter. A nil receiver is a no-op.
func (m *Metrics) RecordAuth(operation, outcome string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

// ObserveRequest records one GraphQL request. status is "ok" or "error".
func (m *Metrics) ObserveRequest(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
