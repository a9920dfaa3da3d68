package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quoteSummaryFixture = `{
  "quoteSummary": {
    "result": [
      {
        "assetProfile": {"sector": "Technology"},
        "price": {
          "longName": "Apple Inc.",
          "shortName": "Apple",
          "marketCap": {"raw": 2800000000000}
        }
      }
    ],
    "error": null
  }
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(WithBaseURL(srv.URL))
	return client, srv
}

func TestGetProfile(t *testing.T) {
	var gotPath, gotUA string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, quoteSummaryFixture)
	})
	defer srv.Close()

	profile, err := client.GetProfile(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "/v10/finance/quoteSummary/AAPL", gotPath)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Equal(t, "Apple Inc.", profile.Name)
	assert.Equal(t, "Technology", profile.Sector)
	assert.Equal(t, 2.8e12, profile.MarketCap)
}

func TestGetProfile_MissingFieldsDefault(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[{"assetProfile":{},"price":{}}],"error":null}}`)
	})
	defer srv.Close()

	profile, err := client.GetProfile(context.Background(), "XYZ")
	require.NoError(t, err)

	assert.Equal(t, "N/A", profile.Name)
	assert.Equal(t, "N/A", profile.Sector)
	assert.Zero(t, profile.MarketCap)
}

func TestGetProfile_ShortNameFallback(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[{"price":{"shortName":"Acme"}}],"error":null}}`)
	})
	defer srv.Close()

	profile, err := client.GetProfile(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.Name)
}

func TestGetProfile_HTTPError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetProfile(context.Background(), "NOPE")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestGetProfile_APIErrorPayload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[],"error":{"code":"Not Found","description":"Quote not found for symbol"}}}`)
	})
	defer srv.Close()

	_, err := client.GetProfile(context.Background(), "NOPE")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Quote not found")
}

func TestGetProfile_EmptyResult(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[],"error":null}}`)
	})
	defer srv.Close()

	_, err := client.GetProfile(context.Background(), "NOPE")
	require.Error(t, err)
}
