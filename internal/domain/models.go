package domain

import "time"

// Record kinds produced by the feed fetchers.
const (
	KindTicker    = "ticker"
	KindOrderbook = "orderbook"
	KindTrade     = "trade"
	KindCandle    = "candle"
)

// Record is one observation pulled from the quotation API. ID is stable for the
// same observation so repeated polls can be deduplicated.
type Record struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Market     string    `json:"market"`
	ObservedAt time.Time `json:"observed_at"`
	Payload    any       `json:"payload"`
}
