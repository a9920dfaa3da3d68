// Package interfaces defines service contracts for Folioscope
package interfaces

import (
	"context"

	"github.com/rgale/folioscope/internal/models"
)

// MarketDataClient provides company metadata by ticker symbol.
type MarketDataClient interface {
	// GetProfile retrieves the company name, sector and market cap for a
	// ticker. Missing fields default ("N/A"/0); transport or API failures
	// return an error.
	GetProfile(ctx context.Context, ticker string) (*models.CompanyProfile, error)
}

// NewsClient fetches recent news headlines for a ticker.
type NewsClient interface {
	// FetchHeadlines returns up to 30 headline strings for the calendar
	// year (current year − yearsAgo). An empty slice means "no signal" —
	// network and parse failures are swallowed into the empty result, so
	// there is no error return.
	FetchHeadlines(ctx context.Context, ticker string, yearsAgo int) []string
}

// GenerativeClient provides access to a hosted generative-language model.
type GenerativeClient interface {
	// GenerateContent generates text from a prompt in a single
	// non-streaming request.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
