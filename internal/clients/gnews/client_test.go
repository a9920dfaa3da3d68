package gnews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(WithBaseURL(srv.URL))
	return client, srv
}

func TestFetchHeadlines(t *testing.T) {
	var gotQuery string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `<html><body>
			<a class="JtKRv" href="/a1">Apple unveils new chip</a>
			<a class="other" href="/a2">Not a headline</a>
			<a class="JtKRv" href="/a3">Apple earnings beat estimates</a>
		</body></html>`)
	})
	defer srv.Close()

	headlines := client.FetchHeadlines(context.Background(), "AAPL", 0)

	require.Len(t, headlines, 2)
	assert.Equal(t, "Apple unveils new chip", headlines[0])
	assert.Equal(t, "Apple earnings beat estimates", headlines[1])

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("AAPL stock after:%d-01-01 before:%d-12-31", year, year), gotQuery)
}

func TestFetchHeadlines_PriorYearWindow(t *testing.T) {
	var gotQuery string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `<html></html>`)
	})
	defer srv.Close()

	client.FetchHeadlines(context.Background(), "MSFT", 1)

	year := time.Now().Year() - 1
	assert.Contains(t, gotQuery, fmt.Sprintf("after:%d-01-01", year))
	assert.Contains(t, gotQuery, fmt.Sprintf("before:%d-12-31", year))
}

func TestFetchHeadlines_Cap(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var sb strings.Builder
		sb.WriteString("<html><body>")
		for i := 0; i < 50; i++ {
			fmt.Fprintf(&sb, `<a class="JtKRv">Headline %d</a>`, i)
		}
		sb.WriteString("</body></html>")
		fmt.Fprint(w, sb.String())
	})
	defer srv.Close()

	headlines := client.FetchHeadlines(context.Background(), "AAPL", 0)

	require.Len(t, headlines, MaxHeadlines)
	assert.Equal(t, "Headline 0", headlines[0])
	assert.Equal(t, "Headline 29", headlines[len(headlines)-1])
}

func TestFetchHeadlines_NonOKStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer srv.Close()

	assert.Empty(t, client.FetchHeadlines(context.Background(), "AAPL", 0))
}

func TestFetchHeadlines_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(WithBaseURL(srv.URL))
	srv.Close() // connection refused from here on

	assert.Empty(t, client.FetchHeadlines(context.Background(), "AAPL", 0))
}

func TestFetchHeadlines_NoMatches(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><a class="abc">Different markup</a></body></html>`)
	})
	defer srv.Close()

	assert.Empty(t, client.FetchHeadlines(context.Background(), "AAPL", 0))
}
