package server

import (
	"net/http"

	"github.com/rgale/folioscope/internal/common"
)

// registerRoutes sets up all routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Dashboard page
	mux.HandleFunc("/", s.handleDashboard)

	// Analysis
	mux.HandleFunc("/api/analysis", s.routeAnalysis)
	mux.HandleFunc("/api/analysis/progress", s.handleProgress)

	// Narrative
	mux.HandleFunc("/api/narrative", s.routeNarrative)

	// Charts
	mux.HandleFunc("/api/charts/", s.routeCharts)

	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
}

// routeAnalysis dispatches /api/analysis by method.
func (s *Server) routeAnalysis(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleAnalysisRun(w, r)
	case http.MethodGet:
		s.handleAnalysisGet(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// routeNarrative dispatches /api/narrative by method.
func (s *Server) routeNarrative(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleNarrativeRun(w, r)
	case http.MethodGet:
		s.handleNarrativeGet(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
		"full":    common.GetFullVersion(),
	})
}
