package poller

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/upbit-quotation/internal/logger"
	"github.com/samvad-hq/upbit-quotation/pkg/feeds"
)

// Service runs poll passes across all configured feeds.
type Service struct {
	processor *FeedProcessor
	log       logger.Logger
}

// NewService wires a poller with the fetcher registry, publisher and dedupe store.
func NewService(reg feeds.FetcherRegistry, pub EventPublisher, log logger.Logger, deduper Deduper) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		processor: NewFeedProcessor(reg, pub, log, deduper),
		log:       log,
	}
}

// Run executes one poll pass. Feeds are processed in order; a failing feed does
// not stop the others and all failures are joined into the returned error.
func (s *Service) Run(ctx context.Context, cfgs []feeds.Feed) error {
	if s == nil || s.processor == nil || s.processor.registry == nil {
		return fmt.Errorf("poller service is not initialized")
	}
	if len(cfgs) == 0 {
		return fmt.Errorf("no feeds configured for polling")
	}

	return errors.Join(s.runAll(ctx, cfgs)...)
}

func (s *Service) runAll(ctx context.Context, cfgs []feeds.Feed) []error {
	errs := make([]error, 0, len(cfgs))

	for _, cfg := range cfgs {
		if ctx.Err() != nil {
			s.log.InfoObj("poll pass interrupted", "poll_cancelled", map[string]any{
				"feed_id": cfg.ID,
			})
			break
		}
		if err := s.processor.Process(ctx, cfg); err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("feed poll failed", "feed_error", map[string]any{
				"feed_id": cfg.ID,
				"error":   err.Error(),
			})
		}
	}

	return errs
}
