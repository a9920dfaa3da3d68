package analysis

import (
	"github.com/rgale/folioscope/internal/models"
)

// joinRows inner-joins portfolio entries with derived ticker records on the
// ticker symbol. Entries whose ticker produced no record are dropped (the
// per-ticker warning was already recorded by the run loop).
//
// Duplicate tickers are NOT deduplicated: every entry joins every record
// with the same symbol, so duplicated tickers fan out multiplicatively in
// the joined table and its sums. A relational join is what the table
// semantics promise, so the fan-out is preserved rather than "fixed".
func joinRows(entries []models.PortfolioEntry, records []models.TickerRecord) []models.HoldingRow {
	rows := make([]models.HoldingRow, 0, len(entries))
	for _, entry := range entries {
		for _, rec := range records {
			if rec.Ticker != entry.Ticker {
				continue
			}
			rows = append(rows, models.HoldingRow{
				Ticker:           entry.Ticker,
				Weight:           entry.Weight,
				CompanyName:      rec.CompanyName,
				Sector:           rec.Sector,
				MarketCap:        rec.MarketCap,
				CurrentESG:       rec.CurrentESG,
				LastYearESG:      rec.LastYearESG,
				ThematicScore:    rec.ThematicScore,
				WeightedThematic: rec.ThematicScore * entry.Weight,
			})
		}
	}
	return rows
}

// Summarize computes the portfolio-level aggregates from the joined table.
// Pure arithmetic, no IO.
//
// The weighted thematic score sums over every joined row. The ESG
// aggregates sum over only the rows carrying both ESG years — one shared
// row subset for the current sum, the prior sum and the drift, keeping the
// drift arithmetically consistent with the two numbers it differences.
// The sums are NOT renormalized by the included rows' weight: excluding a
// weighted row shrinks the aggregate rather than re-averaging it.
func Summarize(rows []models.HoldingRow) models.PortfolioSummary {
	summary := models.PortfolioSummary{}

	var currentESG, lastYearESG float64
	hasESG := false

	for _, row := range rows {
		summary.ThematicScore += row.WeightedThematic

		if row.HasBothESG() {
			currentESG += *row.CurrentESG * row.Weight
			lastYearESG += *row.LastYearESG * row.Weight
			hasESG = true
		}
	}

	if hasESG {
		drift := currentESG - lastYearESG
		summary.CurrentESG = &currentESG
		summary.LastYearESG = &lastYearESG
		summary.ESGDrift = &drift
	}

	return summary
}
