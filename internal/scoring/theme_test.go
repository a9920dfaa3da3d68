package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeScore_EmptyInputs(t *testing.T) {
	keywords := []string{"ai", "chip"}
	headlines := []string{"AI chip demand surges"}

	assert.Zero(t, ThemeScore(nil, keywords))
	assert.Zero(t, ThemeScore([]string{}, keywords))
	assert.Zero(t, ThemeScore(headlines, nil))
	assert.Zero(t, ThemeScore(headlines, []string{}))
}

func TestThemeScore_Density(t *testing.T) {
	headlines := []string{
		"AI chips power new data centers",
		"Retailer misses earnings",
	}
	// "ai" matches once, "chip" matches once: 2 hits / 2 headlines * 100.
	assert.InDelta(t, 100.0, ThemeScore(headlines, []string{"ai", "chip"}), 1e-9)
}

func TestThemeScore_CaseInsensitive(t *testing.T) {
	headlines := []string{"NVIDIA races ahead in GENERATIVE AI"}
	assert.InDelta(t, 200.0, ThemeScore(headlines, []string{"nvidia", "generative"}), 1e-9)
}

func TestThemeScore_SubstringMatchesCount(t *testing.T) {
	// "ai" also matches inside "air" and "airline" — plain substring
	// counting is accepted behavior, not deduplicated.
	headlines := []string{"air travel rebounds as airline profits climb"}
	assert.InDelta(t, 200.0, ThemeScore(headlines, []string{"ai"}), 1e-9)
}

func TestThemeScore_CanExceedHundredUnclamped(t *testing.T) {
	headlines := []string{"ai ai ai ai ai"}
	score := ThemeScore(headlines, []string{"ai"})
	assert.InDelta(t, 500.0, score, 1e-9)
}

func TestThemeScore_NormalizedByHeadlineCount(t *testing.T) {
	headlines := []string{
		"solar adoption accelerates",
		"wind farms expand offshore",
		"oil major posts record profit",
		"bank cuts rates",
	}
	// 2 hits over 4 headlines.
	assert.InDelta(t, 50.0, ThemeScore(headlines, []string{"solar", "wind"}), 1e-9)
}
