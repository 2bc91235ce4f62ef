package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the evaluation service
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Evaluation metrics
	EvaluationsTotal    *prometheus.CounterVec
	EvaluationDuration  prometheus.Histogram
	EvaluationBlocks    prometheus.Histogram
	EvaluationClusters  prometheus.Histogram
	ClusterReductions   *prometheus.CounterVec
	ValidationFailures  prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initEvaluationMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rbd_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rbd_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rbd_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initEvaluationMetrics() {
	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rbd_evaluations_total",
			Help: "Total number of system evaluations",
		},
		[]string{"operation"},
	)

	r.EvaluationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rbd_evaluation_duration_seconds",
			Help:    "System evaluation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 8),
		},
	)

	r.EvaluationBlocks = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rbd_evaluation_blocks",
			Help:    "Number of blocks per evaluation",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 500, 1000},
		},
	)

	r.EvaluationClusters = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rbd_evaluation_clusters",
			Help:    "Number of weakly-connected clusters per evaluation",
			Buckets: []float64{1, 2, 3, 5, 10, 25, 50},
		},
	)

	r.ClusterReductions = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rbd_cluster_reductions_total",
			Help: "Cluster reductions by reduction mode",
		},
		[]string{"mode"},
	)

	r.ValidationFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rbd_validation_failures_total",
			Help: "Requests rejected by input validation",
		},
	)
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordEvaluation records one system evaluation
func (r *Registry) RecordEvaluation(operation string, blocks, clusters int, duration time.Duration) {
	r.EvaluationsTotal.WithLabelValues(operation).Inc()
	r.EvaluationDuration.Observe(duration.Seconds())
	r.EvaluationBlocks.Observe(float64(blocks))
	r.EvaluationClusters.Observe(float64(clusters))
}

// RecordReduction records which strategy reduced a cluster
func (r *Registry) RecordReduction(mode string) {
	r.ClusterReductions.WithLabelValues(mode).Inc()
}
