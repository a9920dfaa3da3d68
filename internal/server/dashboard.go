package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rgale/folioscope/internal/common"
)

// DefaultTheme pre-fills the keyword box on the dashboard page.
const DefaultTheme = "ai, artificial intelligence, machine learning, llm, generative, nvidia"

//go:embed assets/index.html
var assetFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(assetFS, "assets/index.html"))

// handleDashboard serves the single-page dashboard at the root path.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	data := struct {
		Version            string
		DefaultTheme       string
		NarrativeAvailable bool
	}{
		Version:            common.GetVersion(),
		DefaultTheme:       DefaultTheme,
		NarrativeAvailable: s.app.NarrativeService.Available(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("Dashboard template render failed")
	}
}
