package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortfolioCSV(t *testing.T) {
	input := "Ticker,Weight\nAAPL,0.6\nMSFT,0.4\n"

	entries, err := ParsePortfolioCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, PortfolioEntry{Ticker: "AAPL", Weight: 0.6}, entries[0])
	assert.Equal(t, PortfolioEntry{Ticker: "MSFT", Weight: 0.4}, entries[1])
}

func TestParsePortfolioCSV_ExtraColumnsIgnored(t *testing.T) {
	input := "Name,Ticker,Notes,Weight\nApple,AAPL,core holding,0.6\n"

	entries, err := ParsePortfolioCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "AAPL", entries[0].Ticker)
	assert.Equal(t, 0.6, entries[0].Weight)
}

func TestParsePortfolioCSV_MissingColumns(t *testing.T) {
	cases := map[string]string{
		"no weight":  "Ticker,Wgt\nAAPL,0.6\n",
		"no ticker":  "Symbol,Weight\nAAPL,0.6\n",
		"lower case": "ticker,weight\nAAPL,0.6\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePortfolioCSV(strings.NewReader(input))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), "required")
		})
	}
}

func TestParsePortfolioCSV_BOM(t *testing.T) {
	input := "\uFEFFTicker,Weight\nAAPL,1.0\n"

	entries, err := ParsePortfolioCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "AAPL", entries[0].Ticker)
}

func TestParsePortfolioCSV_BadWeight(t *testing.T) {
	input := "Ticker,Weight\nAAPL,heavy\n"

	_, err := ParsePortfolioCSV(strings.NewReader(input))
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "AAPL")
}

func TestParsePortfolioCSV_Empty(t *testing.T) {
	_, err := ParsePortfolioCSV(strings.NewReader(""))
	require.Error(t, err)

	_, err = ParsePortfolioCSV(strings.NewReader("Ticker,Weight\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no holdings")
}

func TestParsePortfolioCSV_DuplicateTickersPreserved(t *testing.T) {
	input := "Ticker,Weight\nAAPL,0.3\nAAPL,0.3\nMSFT,0.4\n"

	entries, err := ParsePortfolioCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "AAPL", entries[0].Ticker)
	assert.Equal(t, "AAPL", entries[1].Ticker)
}

func TestParseKeywords(t *testing.T) {
	keywords := ParseKeywords("AI, Artificial Intelligence ,machine learning,, llm ")
	assert.Equal(t, []string{"ai", "artificial intelligence", "machine learning", "llm"}, keywords)

	assert.Empty(t, ParseKeywords(""))
	assert.Empty(t, ParseKeywords(" , ,"))
}
