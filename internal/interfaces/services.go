package interfaces

import (
	"context"

	"github.com/rgale/folioscope/internal/models"
)

// AnalysisService runs the per-ticker aggregation pipeline and the
// portfolio-level join.
type AnalysisService interface {
	// AnalyzeTicker produces the derived record for one ticker. Results
	// are cached by (ticker, sorted keyword set); repeated calls with
	// identical inputs perform no network IO.
	AnalyzeTicker(ctx context.Context, ticker string, keywords []string) (*models.TickerRecord, error)

	// RunAnalysis clears the ticker cache, iterates the portfolio entries
	// sequentially with a per-ticker failure boundary, joins the results
	// with the uploaded weights and computes the portfolio summary.
	// It returns an error only when every ticker failed.
	RunAnalysis(ctx context.Context, entries []models.PortfolioEntry, keywords []string) (*models.AnalysisResult, error)

	// ClearCache invalidates all memoized ticker records.
	ClearCache()
}

// NarrativeService generates the AI "Portfolio MRI" narrative report.
type NarrativeService interface {
	// Available reports whether a generative model credential is
	// configured. Callers must pre-check this and block the action with a
	// clear message instead of attempting a call that cannot succeed.
	Available() bool

	// GenerateReport builds the analysis prompt from the joined table and
	// keyword list and returns the model's answer verbatim. Failures are
	// returned as a human-readable error string in place of the report —
	// never as an error and never retried.
	GenerateReport(ctx context.Context, rows []models.HoldingRow, keywords []string) string
}
