package upbit

import (
	"context"

	"github.com/shopspring/decimal"
)

// Ticker returns one snapshot per market, in the order the API returns them.
func (c *Client) Ticker(ctx context.Context, markets ...string) ([]Ticker, error) {
	var out []Ticker
	if err := c.Get(ctx, TickerURL(c.baseURL, markets...), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Markets lists every tradable market. With isDetails the market warning is included.
func (c *Client) Markets(ctx context.Context, isDetails bool) ([]Market, error) {
	var out []Market
	if err := c.Get(ctx, MarketsURL(c.baseURL, isDetails), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Orderbook returns the orderbook of each market.
func (c *Client) Orderbook(ctx context.Context, markets ...string) ([]Orderbook, error) {
	var out []Orderbook
	if err := c.Get(ctx, OrderbookURL(c.baseURL, markets...), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Trades returns the most recent trades of a market.
func (c *Client) Trades(ctx context.Context, market string, opts TradesOptions) ([]Trade, error) {
	var out []Trade
	if err := c.Get(ctx, TradesURL(c.baseURL, market, opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Candles returns candlesticks of a market, minute candles unless a timescale is set.
func (c *Client) Candles(ctx context.Context, market string, opts CandlesOptions) ([]Candle, error) {
	var out []Candle
	if err := c.Get(ctx, CandlesURL(c.baseURL, market, opts), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentPrices returns the last trade price of each market.
func (c *Client) CurrentPrices(ctx context.Context, markets ...string) ([]decimal.Decimal, error) {
	tickers, err := c.Ticker(ctx, markets...)
	if err != nil {
		return nil, err
	}

	prices := make([]decimal.Decimal, len(tickers))
	for i, tk := range tickers {
		prices[i] = tk.TradePrice
	}
	return prices, nil
}
