package feeds

import (
	"context"
	"strconv"
	"strings"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
	"github.com/samvad-hq/upbit-quotation/pkg/upbit"
)

// candlesFetcher pulls candles market by market. Config: timescale, unit, count, to.
// The record ID includes the candle timestamp so an in-progress candle is
// published again whenever it changes.
type candlesFetcher struct {
	api QuotationAPI
}

func NewCandlesFetcher(api QuotationAPI) Fetcher {
	return &candlesFetcher{api: api}
}

func (f *candlesFetcher) Type() string { return TypeCandles }

func (f *candlesFetcher) Fetch(ctx context.Context, feed Feed) ([]domain.Record, error) {
	if err := checkType(feed, TypeCandles); err != nil {
		return nil, err
	}

	opts := candlesOptions(feed)
	scale := candleScale(opts)

	return perMarket(ctx, feed, func(ctx context.Context, market string) ([]domain.Record, error) {
		candles, err := f.api.Candles(ctx, market, opts)
		if err != nil {
			return nil, err
		}
		records := make([]domain.Record, 0, len(candles))
		for _, c := range candles {
			records = append(records, domain.Record{
				ID:         recordID(domain.KindCandle, c.Market, scale, c.CandleDateTimeUTC, itoa64(c.Timestamp)),
				Kind:       domain.KindCandle,
				Market:     c.Market,
				ObservedAt: millis(c.Timestamp),
				Payload:    c,
			})
		}
		return records, nil
	})
}

func candlesOptions(feed Feed) upbit.CandlesOptions {
	timescale := strings.ToLower(ConfigString(feed, ConfigTimescaleKey, ""))
	if timescale == "minutes" {
		timescale = ""
	}
	return upbit.CandlesOptions{
		Timescale: upbit.Timescale(timescale),
		To:        ConfigString(feed, ConfigToKey, ""),
		Count:     ConfigInt(feed, ConfigCountKey, 0),
		Unit:      ConfigInt(feed, ConfigUnitKey, 0),
	}
}

func candleScale(opts upbit.CandlesOptions) string {
	if opts.Timescale != upbit.Minutes {
		return string(opts.Timescale)
	}
	unit := opts.Unit
	if unit == 0 {
		unit = upbit.OneMinute
	}
	return "minutes/" + strconv.Itoa(unit)
}
