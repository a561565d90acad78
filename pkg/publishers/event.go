package publishers

import (
	"time"

	"github.com/google/uuid"
	"github.com/samvad-hq/upbit-quotation/internal/domain"
)

// Event is the payload published downstream for one market data record.
type Event struct {
	ID          string        `json:"id"`
	FeedID      string        `json:"feed_id"`
	FeedType    string        `json:"feed_type"`
	Record      domain.Record `json:"record"`
	CollectedAt time.Time     `json:"collected_at"`
}

// NewEvent wraps a record fetched by the given feed.
func NewEvent(feedID, feedType string, record domain.Record) Event {
	return Event{
		ID:          uuid.NewString(),
		FeedID:      feedID,
		FeedType:    feedType,
		Record:      record,
		CollectedAt: time.Now().UTC(),
	}
}

// Attributes returns the routing attributes attached to queue and topic messages.
// Empty values are left out.
func (e Event) Attributes() map[string]string {
	attrs := make(map[string]string, 4)
	for k, v := range map[string]string{
		"feed_id":   e.FeedID,
		"feed_type": e.FeedType,
		"kind":      e.Record.Kind,
		"market":    e.Record.Market,
	} {
		if v != "" {
			attrs[k] = v
		}
	}
	return attrs
}
