// Package gnews fetches news headlines from the Google News search page.
//
// There is no API here — the client fetches the public search results page
// and extracts headline anchors by their presentational class name. Any
// failure (network, status, parse) degrades to an empty headline list:
// callers treat "empty" as "no signal", never as an error.
package gnews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/rgale/folioscope/internal/common"
	"github.com/rgale/folioscope/internal/interfaces"
)

const (
	DefaultBaseURL = "https://news.google.com"
	DefaultTimeout = 10 * time.Second

	// headlineSelector matches the anchor class Google News renders
	// article titles with. Brittle on purpose — when the markup changes
	// the fetcher degrades to "no signal" rather than erroring.
	headlineSelector = "a.JtKRv"

	// MaxHeadlines caps how many headlines a single fetch returns.
	MaxHeadlines = 30

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Client implements the NewsClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL. An empty value keeps the default.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Google News client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// searchURL builds the year-bounded search query for a ticker.
// yearsAgo 0 = current calendar year, 1 = previous calendar year.
func (c *Client) searchURL(ticker string, yearsAgo int) string {
	year := time.Now().Year() - yearsAgo
	query := fmt.Sprintf("%s stock after:%d-01-01 before:%d-12-31", ticker, year, year)

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", "en-US")

	return fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
}

// FetchHeadlines returns up to MaxHeadlines headline strings for the given
// ticker and calendar-year offset. One GET, no retries, no pagination.
// Every failure path returns an empty slice.
func (c *Client) FetchHeadlines(ctx context.Context, ticker string, yearsAgo int) []string {
	reqURL := c.searchURL(ticker, yearsAgo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("Headline request build failed")
		return nil
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("Headline fetch failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("ticker", ticker).Msg("Headline fetch returned non-2xx status")
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("Headline page parse failed")
		return nil
	}

	var headlines []string
	doc.Find(headlineSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		headlines = append(headlines, s.Text())
		return len(headlines) < MaxHeadlines
	})

	c.logger.Debug().
		Str("ticker", ticker).
		Int("years_ago", yearsAgo).
		Int("headlines", len(headlines)).
		Msg("Headlines fetched")

	return headlines
}

// Ensure Client implements NewsClient
var _ interfaces.NewsClient = (*Client)(nil)
