package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-rbd/pkg/engine"
	"github.com/dd0wney/cluso-rbd/pkg/logging"
	"github.com/dd0wney/cluso-rbd/pkg/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

// decodeDiagram decodes and validates the request body. Returns false
// after writing the error response when the request is unusable.
func (s *Server) decodeDiagram(w http.ResponseWriter, r *http.Request) (*validation.DiagramRequest, bool) {
	var req validation.DiagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return nil, false
	}
	if err := validation.ValidateDiagramRequest(&req); err != nil {
		if s.metrics != nil {
			s.metrics.ValidationFailures.Inc()
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}
	return &req, true
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDiagram(w, r)
	if !ok {
		return
	}
	blocks, connections := req.ToModel()

	start := time.Now()
	result := engine.EvaluateSystem(blocks, connections)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordEvaluation("evaluate", len(blocks), len(result.Details.Chains), elapsed)
		for _, chain := range result.Details.Chains {
			s.metrics.RecordReduction(chain.Mode)
		}
	}
	s.logger.Debug("system evaluated",
		logging.BlockCount(len(blocks)),
		logging.ClusterCount(len(result.Details.Chains)),
		logging.Reliability(result.SystemReliability),
		logging.Latency(elapsed),
	)

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleFormula(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDiagram(w, r)
	if !ok {
		return
	}
	blocks, connections := req.ToModel()

	start := time.Now()
	formulas := engine.RenderFormula(blocks, connections)
	if s.metrics != nil {
		s.metrics.RecordEvaluation("formula", len(blocks), 0, time.Since(start))
	}

	s.writeJSON(w, http.StatusOK, formulas)
}

type activityResponse struct {
	Active map[string]bool `json:"active"`
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeDiagram(w, r)
	if !ok {
		return
	}
	blocks, connections := req.ToModel()

	active := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		active[b.ID] = engine.IsActive(b.ID, blocks, connections, b.IsReserve)
	}

	s.writeJSON(w, http.StatusOK, activityResponse{Active: active})
}
