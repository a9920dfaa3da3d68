package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names required in the uploaded portfolio file. Matching is exact —
// no case folding or aliasing.
const (
	TickerColumn = "Ticker"
	WeightColumn = "Weight"
)

// ValidationError reports an invalid portfolio upload. It is surfaced to the
// user before any network activity takes place.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParsePortfolioCSV reads a portfolio upload: delimited text with at least a
// "Ticker" and a "Weight" column. Extra columns are ignored. Returns a
// ValidationError when a required column is missing or a weight is not
// numeric.
func ParsePortfolioCSV(r io.Reader) ([]PortfolioEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &ValidationError{Message: "portfolio file is empty or unreadable"}
	}

	// Strip a UTF-8 BOM from the first header cell if present.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	tickerIdx, weightIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case TickerColumn:
			tickerIdx = i
		case WeightColumn:
			weightIdx = i
		}
	}

	if tickerIdx < 0 || weightIdx < 0 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("invalid portfolio file: %q and %q columns are required", TickerColumn, WeightColumn),
		}
	}

	var entries []PortfolioEntry
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("malformed portfolio file at line %d", line)}
		}
		if tickerIdx >= len(record) || weightIdx >= len(record) {
			return nil, &ValidationError{Message: fmt.Sprintf("malformed portfolio file at line %d", line)}
		}

		ticker := strings.TrimSpace(record[tickerIdx])
		if ticker == "" {
			continue
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(record[weightIdx]), 64)
		if err != nil {
			return nil, &ValidationError{
				Message: fmt.Sprintf("invalid weight %q for ticker %s at line %d", record[weightIdx], ticker, line),
			}
		}

		entries = append(entries, PortfolioEntry{Ticker: ticker, Weight: weight})
	}

	if len(entries) == 0 {
		return nil, &ValidationError{Message: "portfolio file contains no holdings"}
	}

	return entries, nil
}

// ParseKeywords splits a comma-separated theme string into lowercased,
// trimmed keywords. Empty fragments are dropped: an empty keyword would be
// counted as a substring match at every position of the headline text.
func ParseKeywords(input string) []string {
	parts := strings.Split(input, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		k := strings.ToLower(strings.TrimSpace(p))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
