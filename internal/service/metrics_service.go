package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and
// the assistant call-out.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	aiLatency       prometheus.Histogram
	aiFailures      prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	aiLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "assistant_call_duration_seconds",
		Help:    "Latency of generative assistant calls",
		Buckets: prometheus.DefBuckets,
	})

	aiFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assistant_call_failures_total",
		Help: "Total failed generative assistant calls",
	})

	registry.MustRegister(requestDuration, requestTotal, aiLatency, aiFailures)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		aiLatency:       aiLatency,
		aiFailures:      aiFailures,
	}
}

// Handler exposes the /metrics endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// ObserveAICall wraps one assistant invocation with latency and failure
// accounting. Safe on a nil service.
func (m *MetricsService) ObserveAICall(fn func() (string, error)) (string, error) {
	if m == nil {
		return fn()
	}
	start := time.Now()
	reply, err := fn()
	m.aiLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		m.aiFailures.Inc()
	}
	return reply, err
}
