package feeds

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
)

func recordID(kind, market string, parts ...string) string {
	return strings.Join(append([]string{kind, market}, parts...), ":")
}

func millis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func itoa64(n int64) string { return strconv.FormatInt(n, 10) }

func checkType(f Feed, want string) error {
	if !strings.EqualFold(f.Type, want) {
		return fmt.Errorf("%s fetcher received incompatible feed %q of type %q", want, f.ID, f.Type)
	}
	if len(f.Markets) == 0 {
		return fmt.Errorf("feed %q has no markets", f.ID)
	}
	return nil
}

// perMarket calls fetch once per market of the feed, pausing for the feed's
// request delay between calls. Failed markets are reported together; records
// from the others are still returned.
func perMarket(ctx context.Context, f Feed, fetch func(ctx context.Context, market string) ([]domain.Record, error)) ([]domain.Record, error) {
	delay := f.RequestDelay()
	var (
		out  []domain.Record
		errs []error
	)

	for i, market := range f.Markets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		records, err := fetch(ctx, market)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", f.Type, market, err))
		} else {
			out = append(out, records...)
		}

		if delay > 0 && i < len(f.Markets)-1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				errs = append(errs, ctx.Err())
				return out, errors.Join(errs...)
			case <-timer.C:
			}
		}
	}

	return out, errors.Join(errs...)
}

