package feeds

import (
	"context"
	"fmt"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
)

// tickerFetcher requests all markets of a feed in a single ticker call.
type tickerFetcher struct {
	api QuotationAPI
}

func NewTickerFetcher(api QuotationAPI) Fetcher {
	return &tickerFetcher{api: api}
}

func (f *tickerFetcher) Type() string { return TypeTicker }

func (f *tickerFetcher) Fetch(ctx context.Context, feed Feed) ([]domain.Record, error) {
	if err := checkType(feed, TypeTicker); err != nil {
		return nil, err
	}

	tickers, err := f.api.Ticker(ctx, feed.Markets...)
	if err != nil {
		return nil, fmt.Errorf("fetch tickers for feed %s: %w", feed.ID, err)
	}

	records := make([]domain.Record, 0, len(tickers))
	for _, tk := range tickers {
		records = append(records, domain.Record{
			ID:         recordID(domain.KindTicker, tk.Market, itoa64(tk.TradeTimestamp)),
			Kind:       domain.KindTicker,
			Market:     tk.Market,
			ObservedAt: millis(tk.Timestamp),
			Payload:    tk,
		})
	}
	return records, nil
}
