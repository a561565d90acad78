package poller

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/upbit-quotation/internal/domain"
	"github.com/samvad-hq/upbit-quotation/internal/logger"
	"github.com/samvad-hq/upbit-quotation/pkg/feeds"
	"github.com/samvad-hq/upbit-quotation/pkg/publishers"
)

// FeedProcessor runs one feed: fetch, drop already published records, publish
// the rest and remember them.
type FeedProcessor struct {
	registry  feeds.FetcherRegistry
	publisher EventPublisher
	log       logger.Logger
	deduper   Deduper
}

// NewFeedProcessor wires a processor. A nil logger discards output and a nil
// deduper publishes every record.
func NewFeedProcessor(reg feeds.FetcherRegistry, pub EventPublisher, log logger.Logger, deduper Deduper) *FeedProcessor {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &FeedProcessor{
		registry:  reg,
		publisher: pub,
		log:       log,
		deduper:   deduper,
	}
}

// Process polls a single feed. Records fetched before a partial failure are
// still published; the fetch error is returned alongside any publish errors.
func (p *FeedProcessor) Process(ctx context.Context, feed feeds.Feed) error {
	fetcher, err := p.registry.FetcherFor(feed)
	if err != nil {
		return fmt.Errorf("resolve fetcher for feed %s: %w", feed.ID, err)
	}

	var errs []error
	records, err := fetcher.Fetch(ctx, feed)
	if err != nil {
		errs = append(errs, fmt.Errorf("fetch feed %s: %w", feed.ID, err))
	}

	fresh := p.filterNewRecords(feed, records)
	published := 0
	for _, rec := range fresh {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		ok, err := p.publish(ctx, feed, rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("publish record %s: %w", rec.ID, err))
		}
		if ok {
			published++
		}
	}

	p.log.InfoObj("feed poll completed", "feed_result", map[string]any{
		"feed_id":           feed.ID,
		"feed_type":         feed.Type,
		"records_fetched":   len(records),
		"records_new":       len(fresh),
		"records_published": published,
	})
	return errors.Join(errs...)
}

// publish sends one record and marks it seen once at least one sink took it.
func (p *FeedProcessor) publish(ctx context.Context, feed feeds.Feed, rec domain.Record) (bool, error) {
	if p.publisher == nil {
		return false, errors.New("no publisher configured")
	}

	evt := publishers.NewEvent(feed.ID, feed.Type, rec)
	delivered, err := p.publisher.Publish(ctx, evt)
	if delivered == 0 {
		if err == nil {
			err = errors.New("no publisher accepted the event")
		}
		return false, err
	}
	if err != nil {
		p.log.WarnObj("record partially published", "publish_partial", map[string]any{
			"feed_id":   feed.ID,
			"record_id": rec.ID,
			"delivered": delivered,
			"error":     err.Error(),
		})
	}

	if p.deduper != nil {
		if markErr := p.deduper.MarkRecord(rec.ID); markErr != nil {
			p.log.WarnObj("mark record failed", "dedupe_error", map[string]any{
				"feed_id":   feed.ID,
				"record_id": rec.ID,
				"error":     markErr.Error(),
			})
		}
	}
	return true, err
}

// filterNewRecords drops records the deduper has seen. Lookup failures keep the
// record.
func (p *FeedProcessor) filterNewRecords(feed feeds.Feed, records []domain.Record) []domain.Record {
	if p.deduper == nil || len(records) == 0 {
		return records
	}

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		seen, err := p.deduper.SeenRecord(rec.ID)
		if err != nil {
			p.log.WarnObj("dedupe lookup failed", "dedupe_error", map[string]any{
				"feed_id":   feed.ID,
				"record_id": rec.ID,
				"error":     err.Error(),
			})
			out = append(out, rec)
			continue
		}
		if !seen {
			out = append(out, rec)
		}
	}
	return out
}
