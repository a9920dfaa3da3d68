package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestESGProxy_EmptyIsAbsent(t *testing.T) {
	analyzer := NewESGAnalyzer()

	assert.Nil(t, analyzer.ESGProxy(nil))
	assert.Nil(t, analyzer.ESGProxy([]string{}))
}

func TestESGProxy_NeutralHeadlinesScoreFifty(t *testing.T) {
	analyzer := NewESGAnalyzer()

	// No lexicon words at all — compound is exactly 0 per headline, so the
	// rescaled score must be exactly 50, distinguishable from "absent".
	headlines := []string{
		"company schedules quarterly filing",
		"board meeting moved to tuesday",
	}
	score := analyzer.ESGProxy(headlines)
	require.NotNil(t, score)
	assert.InDelta(t, 50.0, *score, 1e-9)
}

func TestESGProxy_PositiveAboveNeutral(t *testing.T) {
	analyzer := NewESGAnalyzer()

	score := analyzer.ESGProxy([]string{
		"excellent results delight investors",
		"great success celebrated",
	})
	require.NotNil(t, score)
	assert.Greater(t, *score, 50.0)
}

func TestESGProxy_NegativeBelowNeutral(t *testing.T) {
	analyzer := NewESGAnalyzer()

	score := analyzer.ESGProxy([]string{
		"terrible losses horrify shareholders",
		"disaster strikes troubled firm",
	})
	require.NotNil(t, score)
	assert.Less(t, *score, 50.0)
}

func TestESGProxy_Range(t *testing.T) {
	analyzer := NewESGAnalyzer()

	batches := [][]string{
		{"amazing wonderful fantastic"},
		{"awful horrible dreadful"},
		{"profit warning issued", "record revenue growth", "ceo resigns amid scandal"},
	}
	for _, headlines := range batches {
		score := analyzer.ESGProxy(headlines)
		require.NotNil(t, score)
		assert.GreaterOrEqual(t, *score, 0.0)
		assert.LessOrEqual(t, *score, 100.0)
	}
}
