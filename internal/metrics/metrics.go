// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jobportal"

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	applicationsSubmitted prometheus.Counter
	countSkipped          prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		applicationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_submitted_total",
			Help:      "Applications persisted by the submission workflow.",
		}),
		countSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "application_count_skipped_total",
			Help:      "Submissions whose job reference did not resolve, so no counter was incremented.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.applicationsSubmitted, m.countSkipped)
	return m
}

func (m *Metrics) RecordHTTPRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ApplicationSubmitted() {
	if m == nil {
		return
	}
	m.applicationsSubmitted.Inc()
}

func (m *Metrics) ApplicationCountSkipped() {
	if m == nil {
		return
	}
	m.countSkipped.Inc()
}
