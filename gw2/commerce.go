package gw2

import (
	"context"
	"time"
)

// ExchangeRate is the result of a coin/gem currency exchange quote.
type ExchangeRate struct {
	// Coins required for a single gem, or obtained for a single gem,
	// depending on the direction of the exchange
	CoinsPerGem int `json:"coins_per_gem"`
	// Gems obtained for the quoted quantity of coins, or coins obtained for
	// the quoted quantity of gems
	Quantity int `json:"quantity"`
}

// TPItem is the order book of one item on the trading post.
type TPItem struct {
	ID int `json:"id"`
	// Buy listings, ascending from the lowest buy order
	Buys []TPItemListing `json:"buys"`
	// Sell listings, ascending from the lowest sell offer
	Sells []TPItemListing `json:"sells"`
}

// TPItemInfo is the aggregated price of one item on the trading post.
type TPItemInfo struct {
	ID int `json:"id"`
	// Whether a free-to-play account can trade the item
	Whitelisted bool            `json:"whitelisted"`
	Buys        TPItemInfoPrice `json:"buys"`
	Sells       TPItemInfoPrice `json:"sells"`
}

// TPItemInfoPrice is one side of an item's aggregated price.
type TPItemInfoPrice struct {
	// Highest buy order or lowest sell offer, in coins
	UnitPrice int `json:"unit_price"`
	// Number of items being bought or sold
	Quantity int `json:"quantity"`
}

// TPItemListing is one price level of an item's order book. Players trading
// at the same price share a listing.
type TPItemListing struct {
	Listings int `json:"listings"`
	// Offer or order price in coins
	UnitPrice int `json:"unit_price"`
	Quantity  int `json:"quantity"`
}

// TPTransaction is one of the account's trading post transactions.
type TPTransaction struct {
	ID     int64 `json:"id"`
	ItemID int   `json:"item_id"`
	// Price of the item in coins
	Price    int       `json:"price"`
	Quantity int       `json:"quantity"`
	Created  time.Time `json:"created"`
	// Time of purchase; only set on past transactions
	Purchased *time.Time `json:"purchased"`
}

// ExchangeDirections returns the available exchange directions
// ("coins", "gems").
func (c *Client) ExchangeDirections(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, epCommerceExchange, false, statusOK, statusNotFound)
}

// CoinExchange quotes how many gems the given quantity of coins buys.
func (c *Client) CoinExchange(ctx context.Context, quantity int) (*ExchangeRate, error) {
	path := withParam(epCommerceExchangeCoins, numberToParam("quantity", quantity))
	return fetch[*ExchangeRate](ctx, c, path, false, statusOK, statusNotFoundOrBad)
}

// GemExchange quotes how many coins the given quantity of gems buys.
func (c *Client) GemExchange(ctx context.Context, quantity int) (*ExchangeRate, error) {
	path := withParam(epCommerceExchangeGems, numberToParam("quantity", quantity))
	return fetch[*ExchangeRate](ctx, c, path, false, statusOK, statusNotFoundOrBad)
}

// ListingIDs returns the item IDs with active trading post listings.
func (c *Client) ListingIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epCommerceListings, false, statusOK, statusNotFound)
}

// Listing returns the order book for a single item.
func (c *Client) Listing(ctx context.Context, id int) (*TPItem, error) {
	path := withParam(epCommerceListings, numberToParam("id", id))
	return fetch[*TPItem](ctx, c, path, false, statusOK, statusNotFound)
}

// Listings returns the order books for several items at once.
func (c *Client) Listings(ctx context.Context, ids []int) ([]TPItem, error) {
	path := withParam(epCommerceListings, numbersToParam("ids", ids))
	return fetch[[]TPItem](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// PriceIDs returns the item IDs with aggregated trading post prices.
func (c *Client) PriceIDs(ctx context.Context) ([]int, error) {
	return fetch[[]int](ctx, c, epCommercePrices, false, statusOK, statusNotFound)
}

// Price returns the aggregated price for a single item.
func (c *Client) Price(ctx context.Context, id int) (*TPItemInfo, error) {
	path := withParam(epCommercePrices, numberToParam("id", id))
	return fetch[*TPItemInfo](ctx, c, path, false, statusOK, statusNotFound)
}

// Prices returns the aggregated prices for several items at once.
func (c *Client) Prices(ctx context.Context, ids []int) ([]TPItemInfo, error) {
	path := withParam(epCommercePrices, numbersToParam("ids", ids))
	return fetch[[]TPItemInfo](ctx, c, path, false, statusOKPartial, statusNotFound)
}

// CurrentBuyTransactions returns the account's outstanding buy orders.
func (c *Client) CurrentBuyTransactions(ctx context.Context) ([]TPTransaction, error) {
	return fetch[[]TPTransaction](ctx, c, epCommerceCurrentBuy, true, statusOK, statusForbidden)
}

// CurrentSellTransactions returns the account's outstanding sell offers.
func (c *Client) CurrentSellTransactions(ctx context.Context) ([]TPTransaction, error) {
	return fetch[[]TPTransaction](ctx, c, epCommerceCurrentSell, true, statusOK, statusForbidden)
}

// HistoryBuyTransactions returns the account's fulfilled buy orders from
// the past 90 days.
func (c *Client) HistoryBuyTransactions(ctx context.Context) ([]TPTransaction, error) {
	return fetch[[]TPTransaction](ctx, c, epCommerceHistoryBuy, true, statusOK, statusForbidden)
}

// HistorySellTransactions returns the account's fulfilled sell offers from
// the past 90 days.
func (c *Client) HistorySellTransactions(ctx context.Context) ([]TPTransaction, error) {
	return fetch[[]TPTransaction](ctx, c, epCommerceHistorySell, true, statusOK, statusForbidden)
}
