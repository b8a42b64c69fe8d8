package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIClientMetrics records request metadata for backend calls.
type APIClientMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewAPIClientMetrics registers the request metrics on the provided registerer.
func NewAPIClientMetrics(reg prometheus.Registerer) *APIClientMetrics {
	if reg == nil {
		return &APIClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_success",
		Help: "Successful backend API requests.",
	}, []string{"endpoint"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_failure",
		Help: "Failed backend API requests.",
	}, []string{"endpoint"})
	reg.MustRegister(duration, success, failure)
	return &APIClientMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named endpoint.
func (a *APIClientMetrics) ObserveDuration(endpoint string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(endpoint)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named endpoint.
func (a *APIClientMetrics) IncSuccess(endpoint string) {
	if a == nil || a.success == nil {
		return
	}
	a.success.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

// IncFailure increments the failure counter for the named endpoint.
func (a *APIClientMetrics) IncFailure(endpoint string) {
	if a == nil || a.failure == nil {
		return
	}
	a.failure.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

func normalizeLabel(endpoint string) string {
	if endpoint == "" {
		return "unknown"
	}
	return endpoint
}
