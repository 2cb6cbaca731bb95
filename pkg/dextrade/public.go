package dextrade

import (
	"context"
	"net/http"

	"dextrade/pkg/core"
)

// GetSymbols returns the list of trading pairs available on the exchange.
func (c *Client) GetSymbols(ctx context.Context) ([]core.Symbol, error) {
	body, err := c.dispatch(ctx, core.NewRequest(http.MethodGet, "/public/symbols"))
	if err != nil {
		return nil, err
	}

	var symbols []core.Symbol
	if err := unwrap(body, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// GetTicker returns current market data for a trading pair, e.g. "BTCUSDT".
func (c *Client) GetTicker(ctx context.Context, pair string) (*core.Ticker, error) {
	if pair == "" {
		return nil, core.NewArgumentError("pair", "must not be empty")
	}

	req := core.NewRequest(http.MethodGet, "/public/ticker").SetParam("pair", pair)
	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var ticker core.Ticker
	if err := unwrap(body, &ticker); err != nil {
		return nil, err
	}
	if ticker.Pair == "" {
		ticker.Pair = pair
	}
	return &ticker, nil
}

// GetOrderBook returns the depth snapshot for a trading pair.
func (c *Client) GetOrderBook(ctx context.Context, pair string) (*core.OrderBook, error) {
	if pair == "" {
		return nil, core.NewArgumentError("pair", "must not be empty")
	}

	req := core.NewRequest(http.MethodGet, "/public/book").SetParam("pair", pair)
	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var book core.OrderBook
	if err := unwrap(body, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetTradeHistory returns recent public trades for a trading pair.
func (c *Client) GetTradeHistory(ctx context.Context, pair string) ([]core.PublicTrade, error) {
	if pair == "" {
		return nil, core.NewArgumentError("pair", "must not be empty")
	}

	req := core.NewRequest(http.MethodGet, "/public/trades").SetParam("pair", pair)
	body, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	var trades []core.PublicTrade
	if err := unwrap(body, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}
