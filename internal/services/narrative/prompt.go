package narrative

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rgale/folioscope/internal/models"
)

// tableToCSV serializes the joined portfolio table as delimited text for
// embedding in the prompt. Absent ESG values serialize as empty cells so
// the model sees "no data" rather than a fake zero.
func tableToCSV(rows []models.HoldingRow) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	w.Write([]string{
		"Ticker", "Weight", "Company Name", "Sector", "Market Cap",
		"Current ESG Proxy", "Last Year ESG Proxy", "Thematic Score", "Weighted Thematic",
	})

	for _, row := range rows {
		w.Write([]string{
			row.Ticker,
			strconv.FormatFloat(row.Weight, 'f', -1, 64),
			row.CompanyName,
			row.Sector,
			strconv.FormatFloat(row.MarketCap, 'f', 0, 64),
			formatOptional(row.CurrentESG),
			formatOptional(row.LastYearESG),
			strconv.FormatFloat(row.ThematicScore, 'f', 2, 64),
			strconv.FormatFloat(row.WeightedThematic, 'f', 2, 64),
		})
	}

	w.Flush()
	return sb.String()
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// buildPrompt assembles the fixed analysis prompt: the user's theme, a
// legend for the two derived scores, the analysis date and the full joined
// table. Deterministic for a given table, keyword list and date.
func buildPrompt(rows []models.HoldingRow, keywords []string, now time.Time) string {
	return fmt.Sprintf(`Analyze the following stock portfolio based on the provided data. The user has defined a custom theme: '%s'.
The ESG Proxy score is derived from news sentiment (0-100, 50 is neutral).
The Thematic Score measures relevance to the custom theme (0-100).
The analysis was conducted on %s.

Here is the portfolio data in CSV format:
%s

Please act as a professional financial analyst. Generate a concise "Portfolio MRI" (Management & Risk Insights) report.
Structure your response using Markdown with the following three sections exactly:

### 1. Key Thematic Opportunity
(Identify the single most significant strength or opportunity related to the portfolio's alignment with the custom theme. Be specific.)

### 2. Primary Unseen Risk
(Identify the most significant underlying risk. This could be concentration in one stock, a low ESG score in a key holding, or a sector-wide issue. Be specific.)

### 3. Actionable Insights for Further Research
(Provide 2-3 concrete, forward-looking questions or points for a portfolio manager to investigate. These should NOT be 'buy' or 'sell' recommendations. Frame them as suggestions for deeper due diligence.)
`,
		strings.Join(keywords, ", "),
		now.Format("2006-01-02"),
		tableToCSV(rows),
	)
}
