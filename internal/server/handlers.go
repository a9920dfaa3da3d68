package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rgale/folioscope/internal/models"
	"github.com/rgale/folioscope/internal/services/charts"
)

// maxUploadBytes caps the portfolio file upload. Portfolio files are a few
// kilobytes of ticker/weight rows; anything near the cap is not a portfolio.
const maxUploadBytes = 4 << 20

// handleAnalysisRun handles POST /api/analysis: a multipart form with the
// portfolio CSV under "portfolio" and the comma-separated theme under
// "keywords". The upload is validated in full before any network call is
// made, so a malformed file costs nothing upstream.
func (s *Server) handleAnalysisRun(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("portfolio")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "portfolio file is required")
		return
	}
	defer file.Close()

	entries, err := models.ParsePortfolioCSV(file)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			WriteError(w, http.StatusBadRequest, ve.Message)
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	keywords := models.ParseKeywords(r.FormValue("keywords"))

	result, err := s.app.AnalysisService.RunAnalysis(r.Context(), entries, keywords)
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.app.Session.SetResult(result)
	WriteJSON(w, http.StatusOK, result)
}

// handleAnalysisGet handles GET /api/analysis: the current session result.
func (s *Server) handleAnalysisGet(w http.ResponseWriter, r *http.Request) {
	result, ok := s.app.Session.Result()
	if !ok {
		WriteError(w, http.StatusNotFound, "no analysis has been run in this session")
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// handleProgress handles GET /api/analysis/progress, polled by the page
// while a run is in flight.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.Session.Progress())
}

// handleNarrativeRun handles POST /api/narrative. The availability pre-check
// happens here: without a configured model credential the action is refused
// outright instead of producing an error-shaped report.
func (s *Server) handleNarrativeRun(w http.ResponseWriter, r *http.Request) {
	if !s.app.NarrativeService.Available() {
		WriteError(w, http.StatusConflict, "narrative generation is unavailable: no Gemini API key is configured")
		return
	}

	result, ok := s.app.Session.Result()
	if !ok {
		WriteError(w, http.StatusNotFound, "no analysis has been run in this session")
		return
	}

	report := s.app.NarrativeService.GenerateReport(r.Context(), result.Rows, result.Keywords)
	s.app.Session.SetNarrative(report)

	WriteJSON(w, http.StatusOK, map[string]string{"report": report})
}

// handleNarrativeGet handles GET /api/narrative: the last generated report.
func (s *Server) handleNarrativeGet(w http.ResponseWriter, r *http.Request) {
	report, ok := s.app.Session.Narrative()
	if !ok {
		WriteError(w, http.StatusNotFound, "no narrative has been generated for the current analysis")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"report": report})
}

// routeCharts dispatches /api/charts/{name}.png to the matching renderer.
func (s *Server) routeCharts(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	result, ok := s.app.Session.Result()
	if !ok {
		WriteError(w, http.StatusNotFound, "no analysis has been run in this session")
		return
	}

	var (
		png []byte
		err error
	)

	name := strings.TrimPrefix(r.URL.Path, "/api/charts/")
	switch name {
	case "landscape.png":
		png, err = charts.RenderLandscape(result.Rows)
	case "theme.png":
		png, err = charts.RenderThemeBars(result.Rows)
	case "esg.png":
		png, err = charts.RenderESGComparison(result.Rows)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	if err != nil {
		if errors.Is(err, charts.ErrInsufficientData) {
			WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error().Err(err).Str("chart", name).Msg("Chart render failed")
		WriteError(w, http.StatusInternalServerError, "chart render failed")
		return
	}

	WritePNG(w, png)
}
