package scoring

import (
	govader "github.com/jonreiter/govader"
)

// ESGAnalyzer converts headline sentiment into an ESG proxy score using the
// VADER lexicon. The analyzer is stateless after construction and safe to
// share across calls.
type ESGAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewESGAnalyzer creates an analyzer backed by the standard VADER lexicon.
func NewESGAnalyzer() *ESGAnalyzer {
	return &ESGAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// ESGProxy maps headline sentiment onto a 0-100 scale with 50 as neutral:
// the arithmetic mean of per-headline VADER compound scores (-1..1),
// rescaled via (mean+1)*50.
//
// Returns nil for an empty headline set — "absent" is a distinct state from
// a neutral score of exactly 50 and callers must preserve the difference.
func (e *ESGAnalyzer) ESGProxy(headlines []string) *float64 {
	if len(headlines) == 0 {
		return nil
	}

	var sum float64
	for _, h := range headlines {
		sum += e.analyzer.PolarityScores(h).Compound
	}

	score := (sum/float64(len(headlines)) + 1) * 50
	return &score
}
