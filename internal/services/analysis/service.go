// Package analysis runs the per-ticker aggregation pipeline and the
// portfolio-level join for the dashboard.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rgale/folioscope/internal/common"
	"github.com/rgale/folioscope/internal/interfaces"
	"github.com/rgale/folioscope/internal/models"
	"github.com/rgale/folioscope/internal/scoring"
)

// ProgressSink receives per-ticker loop progress. The session store
// satisfies this; a nil sink disables progress publishing.
type ProgressSink interface {
	SetProgress(models.Progress)
}

// Service implements AnalysisService
type Service struct {
	market   interfaces.MarketDataClient
	news     interfaces.NewsClient
	esg      *scoring.ESGAnalyzer
	cache    *recordCache
	progress ProgressSink
	logger   *common.Logger
}

// NewService creates a new analysis service
func NewService(market interfaces.MarketDataClient, news interfaces.NewsClient, progress ProgressSink, logger *common.Logger) *Service {
	return &Service{
		market:   market,
		news:     news,
		esg:      scoring.NewESGAnalyzer(),
		cache:    newRecordCache(),
		progress: progress,
		logger:   logger,
	}
}

// ClearCache invalidates all memoized ticker records.
func (s *Service) ClearCache() {
	s.cache.clear()
}

// AnalyzeTicker produces the derived record for one ticker: metadata, a
// current-year and a prior-year headline fetch, the theme score from the
// current-year headlines and an ESG proxy per year.
//
// The current-year headlines serve both the theme score and the current
// ESG proxy; the prior-year fetch exists only for the year-over-year ESG
// comparison. Results are memoized on (ticker, keyword set) — a cache hit
// performs no network IO. Metadata errors propagate; the run loop recovers
// them per ticker.
func (s *Service) AnalyzeTicker(ctx context.Context, ticker string, keywords []string) (*models.TickerRecord, error) {
	key := cacheKey(ticker, keywords)
	if rec, ok := s.cache.get(key); ok {
		s.logger.Debug().Str("ticker", ticker).Msg("Ticker record served from cache")
		return rec, nil
	}

	profile, err := s.market.GetProfile(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata for %s: %w", ticker, err)
	}

	currentHeadlines := s.news.FetchHeadlines(ctx, ticker, 0)
	priorHeadlines := s.news.FetchHeadlines(ctx, ticker, 1)

	rec := &models.TickerRecord{
		Ticker:        ticker,
		CompanyName:   profile.Name,
		Sector:        profile.Sector,
		MarketCap:     profile.MarketCap,
		CurrentESG:    s.esg.ESGProxy(currentHeadlines),
		LastYearESG:   s.esg.ESGProxy(priorHeadlines),
		ThematicScore: scoring.ThemeScore(currentHeadlines, keywords),
	}

	s.cache.put(key, rec)

	s.logger.Debug().
		Str("ticker", ticker).
		Int("headlines", len(currentHeadlines)).
		Float64("theme_score", rec.ThematicScore).
		Msg("Ticker analyzed")

	return rec, nil
}

// RunAnalysis executes a full portfolio pass: cache cleared (run = force
// refresh), tickers iterated strictly sequentially with progress published
// per ticker, each failure contained to its own ticker. Only a run in which
// every ticker failed returns an error; otherwise the joined table, summary
// and accumulated warnings come back together.
func (s *Service) RunAnalysis(ctx context.Context, entries []models.PortfolioEntry, keywords []string) (*models.AnalysisResult, error) {
	s.cache.clear()

	total := len(entries)
	s.publish(models.Progress{Running: true, Total: total})
	defer s.publish(models.Progress{Running: false, Done: total, Total: total})

	records := make([]models.TickerRecord, 0, total)
	var warnings []models.TickerWarning

	for i, entry := range entries {
		s.publish(models.Progress{Running: true, Ticker: entry.Ticker, Done: i, Total: total})

		rec, err := s.AnalyzeTicker(ctx, entry.Ticker, keywords)
		if err != nil {
			s.logger.Warn().Err(err).Str("ticker", entry.Ticker).Msg("Could not process ticker")
			warnings = append(warnings, models.TickerWarning{
				Ticker:  entry.Ticker,
				Message: fmt.Sprintf("could not process %s: %v", entry.Ticker, err),
			})
			continue
		}
		records = append(records, *rec)
	}

	if len(records) == 0 {
		return nil, errors.New("analysis failed for all tickers")
	}

	rows := joinRows(entries, records)

	result := &models.AnalysisResult{
		Rows:        rows,
		Summary:     Summarize(rows),
		Keywords:    keywords,
		Warnings:    warnings,
		GeneratedAt: time.Now(),
	}

	s.logger.Info().
		Int("tickers", total).
		Int("rows", len(rows)).
		Int("warnings", len(warnings)).
		Msg("Portfolio analysis complete")

	return result, nil
}

func (s *Service) publish(p models.Progress) {
	if s.progress != nil {
		s.progress.SetProgress(p)
	}
}

// Ensure Service implements AnalysisService
var _ interfaces.AnalysisService = (*Service)(nil)
