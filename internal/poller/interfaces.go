package poller

import (
	"context"

	"github.com/samvad-hq/upbit-quotation/pkg/publishers"
)

// EventPublisher publishes records downstream and reports how many sinks
// accepted the event.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Deduper tracks which records were already published.
type Deduper interface {
	SeenRecord(id string) (bool, error)
	MarkRecord(id string) error
}
