package feeds

import (
	"fmt"
	"strings"
	"sync"
)

// fetcherRegistry implements FetcherRegistry keyed by feed type.
type fetcherRegistry struct {
	fetchers map[string]Fetcher
	mu       sync.RWMutex
}

// NewFetcherRegistry builds a registry from the given fetchers, keyed by their Type.
func NewFetcherRegistry(fetchers ...Fetcher) FetcherRegistry {
	reg := &fetcherRegistry{fetchers: make(map[string]Fetcher, len(fetchers))}
	for _, f := range fetchers {
		reg.register(f)
	}
	return reg
}

func (r *fetcherRegistry) register(f Fetcher) {
	if f == nil {
		return
	}
	key := strings.ToLower(strings.TrimSpace(f.Type()))
	if key == "" {
		return
	}

	r.mu.Lock()
	r.fetchers[key] = f
	r.mu.Unlock()
}

// FetcherFor selects the fetcher for the feed's type.
func (r *fetcherRegistry) FetcherFor(f Feed) (Fetcher, error) {
	if r == nil {
		return nil, fmt.Errorf("fetcher registry is nil")
	}
	key := strings.ToLower(strings.TrimSpace(f.Type))
	if key == "" {
		return nil, fmt.Errorf("feed %q has no type", f.ID)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if fetcher, ok := r.fetchers[key]; ok {
		return fetcher, nil
	}
	return nil, fmt.Errorf("no fetcher registered for feed %q (type %q)", f.ID, f.Type)
}

// DefaultFetcherRegistry wires every feed type to the given API client.
func DefaultFetcherRegistry(api QuotationAPI) FetcherRegistry {
	return NewFetcherRegistry(
		NewTickerFetcher(api),
		NewOrderbookFetcher(api),
		NewTradesFetcher(api),
		NewCandlesFetcher(api),
	)
}
