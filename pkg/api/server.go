// Package api exposes the reliability engine over a small JSON HTTP
// surface. The engine stays pure; everything stateful (logging,
// metrics, validation limits) lives here.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-rbd/pkg/api/middleware"
	"github.com/dd0wney/cluso-rbd/pkg/health"
	"github.com/dd0wney/cluso-rbd/pkg/logging"
	"github.com/dd0wney/cluso-rbd/pkg/metrics"
)

// Server handles the evaluation API
type Server struct {
	logger  logging.Logger
	metrics *metrics.Registry
	health  *health.Checker
}

// NewServer creates an API server. A nil logger falls back to the
// package default; a nil registry disables metrics recording.
func NewServer(logger logging.Logger, registry *metrics.Registry) *Server {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Server{
		logger:  logger,
		metrics: registry,
		health:  health.NewChecker(),
	}
}

// Handler returns the fully wired HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /api/v1/formula", s.handleFormula)
	mux.HandleFunc("POST /api/v1/activity", s.handleActivity)
	mux.Handle("GET /health", s.health.Handler())
	mux.Handle("GET /health/live", s.health.LivenessHandler())
	if s.metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(
			s.metrics.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	}

	var recorder middleware.MetricsRecorder
	if s.metrics != nil {
		recorder = s.metrics
	}
	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.PanicRecovery(s.logger),
		middleware.Logging(s.logger),
		middleware.Metrics(recorder),
	)
}
