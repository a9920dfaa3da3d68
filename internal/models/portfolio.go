// Package models defines data structures for Folioscope
package models

import (
	"time"
)

// PortfolioEntry is one row of the uploaded portfolio file: a ticker symbol
// and its portfolio weight. Weights are taken as-is — they are assumed to
// sum to roughly 1.0 across the file but are not validated or renormalized.
// Ticker case is preserved exactly as uploaded.
type PortfolioEntry struct {
	Ticker string  `json:"ticker"`
	Weight float64 `json:"weight"`
}

// CompanyProfile holds market metadata for a ticker. Missing upstream
// fields default to "N/A" (strings) and 0 (market cap) rather than erroring.
type CompanyProfile struct {
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	MarketCap float64 `json:"market_cap"`
}

// TickerRecord is the derived analysis record for a single ticker.
//
// CurrentESG and LastYearESG are nil when no headlines were found for that
// year — "absent" is a distinct state from a neutral score of exactly 50.
type TickerRecord struct {
	Ticker        string   `json:"ticker"`
	CompanyName   string   `json:"company_name"`
	Sector        string   `json:"sector"`
	MarketCap     float64  `json:"market_cap"`
	CurrentESG    *float64 `json:"current_esg_proxy"`
	LastYearESG   *float64 `json:"last_year_esg_proxy"`
	ThematicScore float64  `json:"thematic_score"`
}

// HasBothESG reports whether the record carries ESG proxies for both years.
// Only such records participate in the portfolio-level ESG aggregates.
func (r *TickerRecord) HasBothESG() bool {
	return r.CurrentESG != nil && r.LastYearESG != nil
}

// HoldingRow is one row of the joined portfolio table: the uploaded entry
// merged with its derived ticker record.
type HoldingRow struct {
	Ticker           string   `json:"ticker"`
	Weight           float64  `json:"weight"`
	CompanyName      string   `json:"company_name"`
	Sector           string   `json:"sector"`
	MarketCap        float64  `json:"market_cap"`
	CurrentESG       *float64 `json:"current_esg_proxy"`
	LastYearESG      *float64 `json:"last_year_esg_proxy"`
	ThematicScore    float64  `json:"thematic_score"`
	WeightedThematic float64  `json:"weighted_thematic"`
}

// HasBothESG reports whether the row carries ESG proxies for both years.
func (r *HoldingRow) HasBothESG() bool {
	return r.CurrentESG != nil && r.LastYearESG != nil
}

// PortfolioSummary holds the portfolio-level aggregates.
//
// The ESG fields are nil when no joined row carries both ESG years. They are
// raw weighted sums over the complete-data rows only — NOT renormalized by
// the included rows' weight, matching the literal aggregation contract.
type PortfolioSummary struct {
	ThematicScore float64  `json:"thematic_score"`
	CurrentESG    *float64 `json:"current_esg_proxy"`
	LastYearESG   *float64 `json:"last_year_esg_proxy"`
	ESGDrift      *float64 `json:"esg_drift"`
}

// TickerWarning records a per-ticker failure surfaced to the user while the
// rest of the analysis continued.
type TickerWarning struct {
	Ticker  string `json:"ticker"`
	Message string `json:"message"`
}

// AnalysisResult is the complete output of one analysis run. It is held in
// session state and entirely overwritten by the next run.
type AnalysisResult struct {
	Rows        []HoldingRow     `json:"rows"`
	Summary     PortfolioSummary `json:"summary"`
	Keywords    []string         `json:"keywords"`
	Warnings    []TickerWarning  `json:"warnings,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Progress describes the state of the per-ticker analysis loop, polled by
// the UI while a run is in flight.
type Progress struct {
	Running bool   `json:"running"`
	Ticker  string `json:"ticker,omitempty"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
}
