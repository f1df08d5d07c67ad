package gw2

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/commerce/exchange/coins", r.URL.Path)
		assert.Equal(t, "quantity=100000", r.URL.RawQuery)
		w.Write([]byte(`{"coins_per_gem":2941,"quantity":34}`))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL))

	rate, err := client.CoinExchange(context.Background(), 100000)
	require.NoError(t, err)
	assert.Equal(t, 2941, rate.CoinsPerGem)
	assert.Equal(t, 34, rate.Quantity)
}

func TestGemExchangeBadQuantity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"text":"invalid quantity"}`))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL))

	_, err := client.GemExchange(context.Background(), 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid quantity", apiErr.Text)
}

func TestExchangeDirections(t *testing.T) {
	client := testClient(t, "/v2/commerce/exchange", http.StatusOK, `["coins","gems"]`)

	directions, err := client.ExchangeDirections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"coins", "gems"}, directions)
}

func TestListing(t *testing.T) {
	body := `{
		"id": 19684,
		"buys": [{"listings": 2, "unit_price": 6152, "quantity": 500}],
		"sells": [{"listings": 1, "unit_price": 6153, "quantity": 250}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id=19684", r.URL.RawQuery)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL))

	listing, err := client.Listing(context.Background(), 19684)
	require.NoError(t, err)
	require.Len(t, listing.Buys, 1)
	assert.Equal(t, 6152, listing.Buys[0].UnitPrice)
	assert.Equal(t, 250, listing.Sells[0].Quantity)
}

func TestPricesPartialContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ids=19684,1", r.URL.RawQuery)
		w.WriteHeader(http.StatusPartialContent)
		w.Write([]byte(`[{"id":19684,"whitelisted":true,"buys":{"unit_price":6152,"quantity":500},"sells":{"unit_price":6153,"quantity":250}}]`))
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL))

	prices, err := client.Prices(context.Background(), []int{19684, 1})
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.True(t, prices[0].Whitelisted)
}

func TestCurrentBuyTransactions(t *testing.T) {
	body := `[{
		"id": 1234567890,
		"item_id": 19684,
		"price": 6100,
		"quantity": 50,
		"created": "2026-08-01T12:00:00Z"
	}]`
	client := testClient(t, "/v2/commerce/transactions/current/buy", http.StatusOK, body)

	transactions, err := client.CurrentBuyTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, int64(1234567890), transactions[0].ID)
	// Outstanding orders have no purchase time
	assert.Nil(t, transactions[0].Purchased)
}

func TestHistorySellTransactions(t *testing.T) {
	body := `[{
		"id": 1234567891,
		"item_id": 19684,
		"price": 6200,
		"quantity": 10,
		"created": "2026-08-01T12:00:00Z",
		"purchased": "2026-08-02T08:30:00Z"
	}]`
	client := testClient(t, "/v2/commerce/transactions/history/sell", http.StatusOK, body)

	transactions, err := client.HistorySellTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.NotNil(t, transactions[0].Purchased)
	assert.Equal(t, 2, transactions[0].Purchased.Day())
}

func TestTransactionsRequireToken(t *testing.T) {
	client := NewClient("en")

	_, err := client.CurrentBuyTransactions(context.Background())
	require.ErrorIs(t, err, ErrNoToken)
}
