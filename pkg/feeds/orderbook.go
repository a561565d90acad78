package feeds

import (
	"context"
	"fmt"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
)

// orderbookFetcher requests all markets of a feed in a single orderbook call.
type orderbookFetcher struct {
	api QuotationAPI
}

func NewOrderbookFetcher(api QuotationAPI) Fetcher {
	return &orderbookFetcher{api: api}
}

func (f *orderbookFetcher) Type() string { return TypeOrderbook }

func (f *orderbookFetcher) Fetch(ctx context.Context, feed Feed) ([]domain.Record, error) {
	if err := checkType(feed, TypeOrderbook); err != nil {
		return nil, err
	}

	books, err := f.api.Orderbook(ctx, feed.Markets...)
	if err != nil {
		return nil, fmt.Errorf("fetch orderbooks for feed %s: %w", feed.ID, err)
	}

	records := make([]domain.Record, 0, len(books))
	for _, ob := range books {
		records = append(records, domain.Record{
			ID:         recordID(domain.KindOrderbook, ob.Market, itoa64(ob.Timestamp)),
			Kind:       domain.KindOrderbook,
			Market:     ob.Market,
			ObservedAt: millis(ob.Timestamp),
			Payload:    ob,
		})
	}
	return records, nil
}
