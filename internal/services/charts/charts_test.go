package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgale/folioscope/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func ptr(v float64) *float64 { return &v }

func sampleRows() []models.HoldingRow {
	return []models.HoldingRow{
		{
			Ticker: "AAPL", Weight: 0.5, CompanyName: "Apple Inc.", Sector: "Technology",
			MarketCap: 2.8e12, CurrentESG: ptr(62.5), LastYearESG: ptr(58.1),
			ThematicScore: 40, WeightedThematic: 20,
		},
		{
			Ticker: "XOM", Weight: 0.3, CompanyName: "Exxon Mobil", Sector: "Energy",
			MarketCap: 4.5e11, CurrentESG: ptr(41.0), LastYearESG: ptr(44.2),
			ThematicScore: 5, WeightedThematic: 1.5,
		},
		{
			Ticker: "XYZ", Weight: 0.2, CompanyName: "N/A", Sector: "N/A",
			ThematicScore: 0, WeightedThematic: 0,
		},
	}
}

func TestRenderLandscape(t *testing.T) {
	png, err := RenderLandscape(sampleRows())
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestRenderLandscape_NoScorableRows(t *testing.T) {
	rows := []models.HoldingRow{
		{Ticker: "XYZ", Weight: 1.0, Sector: "N/A", ThematicScore: 12},
	}

	_, err := RenderLandscape(rows)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRenderLandscape_SinglePoint(t *testing.T) {
	rows := []models.HoldingRow{
		{Ticker: "AAPL", Weight: 1.0, Sector: "Technology", CurrentESG: ptr(55.0), ThematicScore: 0},
	}

	png, err := RenderLandscape(rows)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestRenderThemeBars(t *testing.T) {
	png, err := RenderThemeBars(sampleRows())
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestRenderThemeBars_EmptyTable(t *testing.T) {
	_, err := RenderThemeBars(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRenderESGComparison(t *testing.T) {
	png, err := RenderESGComparison(sampleRows())
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestRenderESGComparison_NoCompleteRows(t *testing.T) {
	rows := []models.HoldingRow{
		{Ticker: "AAPL", Weight: 0.5, CurrentESG: ptr(60.0)}, // prior year missing
		{Ticker: "XYZ", Weight: 0.5},
	}

	_, err := RenderESGComparison(rows)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDotWidth_ClampsWeight(t *testing.T) {
	assert.Equal(t, float64(minDotWidth), dotWidth(-0.2))
	assert.Equal(t, float64(maxDotWidth), dotWidth(1.7))
	assert.Greater(t, dotWidth(0.5), dotWidth(0.1))
}
