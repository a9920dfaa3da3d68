// Package charts renders the dashboard's three chart panels as PNG using
// go-chart: a landscape bubble scatter (theme vs ESG, dot size by weight,
// one color per sector), a per-ticker theme bar chart, and a grouped
// current-vs-prior ESG bar chart.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rgale/folioscope/internal/models"
)

// ErrInsufficientData indicates the joined table has no rows suitable for
// the requested chart. Surfaced to the UI as a warning, not a failure.
var ErrInsufficientData = errors.New("not enough data to render chart")

const (
	chartWidth  = 900
	chartHeight = 420

	minDotWidth = 6
	maxDotWidth = 40
)

// RenderLandscape renders the portfolio landscape scatter: thematic score
// on X, current ESG proxy on Y, dot size proportional to portfolio weight,
// one series (and color) per sector. Rows without a current ESG proxy
// cannot be positioned and are skipped. Returns raw PNG bytes.
func RenderLandscape(rows []models.HoldingRow) ([]byte, error) {
	type point struct {
		x, y, weight float64
	}
	bySector := make(map[string][]point)
	var sectors []string
	maxTheme := 0.0

	for _, row := range rows {
		if row.CurrentESG == nil {
			continue
		}
		if _, seen := bySector[row.Sector]; !seen {
			sectors = append(sectors, row.Sector)
		}
		bySector[row.Sector] = append(bySector[row.Sector], point{
			x:      row.ThematicScore,
			y:      *row.CurrentESG,
			weight: row.Weight,
		})
		if row.ThematicScore > maxTheme {
			maxTheme = row.ThematicScore
		}
	}

	if len(sectors) == 0 {
		return nil, ErrInsufficientData
	}

	series := make([]chart.Series, 0, len(sectors))
	for i, sector := range sectors {
		points := bySector[sector]
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		weights := make([]float64, len(points))
		for j, p := range points {
			xs[j] = p.x
			ys[j] = p.y
			weights[j] = p.weight
		}

		color := chart.GetDefaultColor(i)
		series = append(series, chart.ContinuousSeries{
			Name: sector,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotColor:    color,
				DotWidth:    minDotWidth,
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					return dotWidth(weights[index])
				},
			},
			XValues: xs,
			YValues: ys,
		})
	}

	xMax := maxTheme * 1.1
	if xMax < 10 {
		xMax = 10
	}

	graph := chart.Chart{
		Title:  "Portfolio Landscape: ESG vs. Thematic Score",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Thematic Score",
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "Current ESG Proxy",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	return renderPNG(graph.Render)
}

// dotWidth maps a portfolio weight (nominally 0..1) onto a dot diameter.
func dotWidth(weight float64) float64 {
	if weight < 0 {
		weight = 0
	}
	if weight > 1 {
		weight = 1
	}
	return minDotWidth + weight*(maxDotWidth-minDotWidth)
}

// RenderThemeBars renders the per-ticker thematic score bar chart.
// Returns raw PNG bytes.
func RenderThemeBars(rows []models.HoldingRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrInsufficientData
	}

	maxScore := 0.0
	for _, row := range rows {
		if row.ThematicScore > maxScore {
			maxScore = row.ThematicScore
		}
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{
			Label: row.Ticker,
			Value: row.ThematicScore,
			Style: chart.Style{
				FillColor:   themeBarColor(row.ThematicScore, maxScore),
				StrokeColor: drawing.ColorFromHex("14532d"), // green-900
				StrokeWidth: 1,
			},
		})
	}

	yMax := maxScore * 1.1
	if yMax < 10 {
		yMax = 10
	}

	graph := chart.BarChart{
		Title:  "Theme Relevance Score by Holding",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 48,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Bars: bars,
	}

	return renderPNG(graph.Render)
}

// themeBarColor shades bars on a sequential green scale by relative score.
func themeBarColor(score, maxScore float64) drawing.Color {
	if maxScore <= 0 {
		return drawing.ColorFromHex("bbf7d0") // green-200
	}
	t := score / maxScore
	switch {
	case t > 0.75:
		return drawing.ColorFromHex("15803d") // green-700
	case t > 0.5:
		return drawing.ColorFromHex("22c55e") // green-500
	case t > 0.25:
		return drawing.ColorFromHex("86efac") // green-300
	default:
		return drawing.ColorFromHex("bbf7d0") // green-200
	}
}

// RenderESGComparison renders the grouped current-vs-prior ESG bar chart.
// Only rows carrying both ESG years can be compared; with none present the
// chart is skipped. Returns raw PNG bytes.
func RenderESGComparison(rows []models.HoldingRow) ([]byte, error) {
	prior := drawing.ColorFromHex("9ca3af")   // gray-400
	current := drawing.ColorFromHex("2563eb") // blue-600

	var bars []chart.Value
	for _, row := range rows {
		if !row.HasBothESG() {
			continue
		}
		bars = append(bars,
			chart.Value{
				Label: fmt.Sprintf("%s -1y", row.Ticker),
				Value: *row.LastYearESG,
				Style: chart.Style{FillColor: prior, StrokeColor: prior},
			},
			chart.Value{
				Label: row.Ticker,
				Value: *row.CurrentESG,
				Style: chart.Style{FillColor: current, StrokeColor: current},
			},
		)
	}

	if len(bars) == 0 {
		return nil, ErrInsufficientData
	}

	graph := chart.BarChart{
		Title:  "ESG Proxy Score: Current vs. Last Year",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 36,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}

	return renderPNG(graph.Render)
}

func renderPNG(render func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
