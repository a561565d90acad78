package feeds

import (
	"context"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
	"github.com/samvad-hq/upbit-quotation/pkg/upbit"
)

// tradesFetcher pulls recent ticks market by market. Config: count, to, days_ago.
type tradesFetcher struct {
	api QuotationAPI
}

func NewTradesFetcher(api QuotationAPI) Fetcher {
	return &tradesFetcher{api: api}
}

func (f *tradesFetcher) Type() string { return TypeTrades }

func (f *tradesFetcher) Fetch(ctx context.Context, feed Feed) ([]domain.Record, error) {
	if err := checkType(feed, TypeTrades); err != nil {
		return nil, err
	}

	opts := upbit.TradesOptions{
		To:      ConfigString(feed, ConfigToKey, ""),
		Count:   ConfigInt(feed, ConfigCountKey, 0),
		DaysAgo: ConfigInt(feed, ConfigDaysAgoKey, 0),
	}

	return perMarket(ctx, feed, func(ctx context.Context, market string) ([]domain.Record, error) {
		trades, err := f.api.Trades(ctx, market, opts)
		if err != nil {
			return nil, err
		}
		records := make([]domain.Record, 0, len(trades))
		for _, tr := range trades {
			records = append(records, domain.Record{
				ID:         recordID(domain.KindTrade, tr.Market, itoa64(tr.SequentialID)),
				Kind:       domain.KindTrade,
				Market:     tr.Market,
				ObservedAt: millis(tr.Timestamp),
				Payload:    tr,
			})
		}
		return records, nil
	})
}
