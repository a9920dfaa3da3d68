// Package scoring derives the two heuristic scores Folioscope reports per
// ticker: a thematic-relevance score and a sentiment-based ESG proxy.
package scoring

import (
	"strings"
)

// ThemeScore measures how strongly a set of headlines matches a keyword
// theme: the sum of plain substring occurrence counts of every keyword in
// the lowercased headline text, normalized by headline count and scaled by
// 100. Keywords are expected pre-lowercased and trimmed.
//
// The result is a relative density measure, not a bounded percentage —
// short or frequent keywords can push it past 100 and it must not be
// clamped. Overlapping matches are counted as-is. Empty headlines or empty
// keywords yield 0: "no detectable theme" is not an error.
func ThemeScore(headlines, keywords []string) float64 {
	if len(headlines) == 0 || len(keywords) == 0 {
		return 0
	}

	text := strings.ToLower(strings.Join(headlines, " "))

	count := 0
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		count += strings.Count(text, keyword)
	}

	return float64(count) / float64(len(headlines)) * 100
}
