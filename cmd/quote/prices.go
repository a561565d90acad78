package main

import (
	"context"

	"github.com/shopspring/decimal"
)

type priceSource interface {
	CurrentPrices(ctx context.Context, markets ...string) ([]decimal.Decimal, error)
}

type marketPrice struct {
	Market string          `json:"market"`
	Price  decimal.Decimal `json:"trade_price"`
}

// pricesByMarket pairs each requested market with its last trade price.
// Prices come back in response order, which follows the request order.
func pricesByMarket(ctx context.Context, src priceSource, markets []string) ([]marketPrice, error) {
	prices, err := src.CurrentPrices(ctx, markets...)
	if err != nil {
		return nil, err
	}
	out := make([]marketPrice, 0, len(prices))
	for i, p := range prices {
		mp := marketPrice{Price: p}
		if i < len(markets) {
			mp.Market = markets[i]
		}
		out = append(out, mp)
	}
	return out, nil
}
