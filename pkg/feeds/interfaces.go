package feeds

import (
	"context"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
	"github.com/samvad-hq/upbit-quotation/pkg/upbit"
)

// Fetcher polls one feed type. It may return the records it did collect
// together with an error when only some markets failed.
type Fetcher interface {
	Type() string
	Fetch(ctx context.Context, f Feed) ([]domain.Record, error)
}

// FetcherRegistry resolves the fetcher implementation for a given feed.
type FetcherRegistry interface {
	FetcherFor(f Feed) (Fetcher, error)
}

// QuotationAPI is the part of *upbit.Client the fetchers use.
type QuotationAPI interface {
	Ticker(ctx context.Context, markets ...string) ([]upbit.Ticker, error)
	Orderbook(ctx context.Context, markets ...string) ([]upbit.Orderbook, error)
	Trades(ctx context.Context, market string, opts upbit.TradesOptions) ([]upbit.Trade, error)
	Candles(ctx context.Context, market string, opts upbit.CandlesOptions) ([]upbit.Candle, error)
}
