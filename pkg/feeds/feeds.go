package feeds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Feed types understood by the default fetcher registry.
const (
	TypeTicker    = "ticker"
	TypeOrderbook = "orderbook"
	TypeTrades    = "trades"
	TypeCandles   = "candles"
)

var knownTypes = map[string]bool{
	TypeTicker:    true,
	TypeOrderbook: true,
	TypeTrades:    true,
	TypeCandles:   true,
}

// Feed is one polled stream of market data declared in the feeds file.
type Feed struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Type           string         `json:"type" yaml:"type"`
	Markets        []string       `json:"markets" yaml:"markets"`
	RequestDelayMs int            `json:"request_delay_ms" yaml:"request_delay_ms"`
	Config         map[string]any `json:"config" yaml:"config"`
}

// RequestDelay returns the pause between per-market requests of one feed.
func (f Feed) RequestDelay() time.Duration {
	if f.RequestDelayMs <= 0 {
		return 0
	}
	return time.Duration(f.RequestDelayMs) * time.Millisecond
}

type fileRegistry struct {
	Feeds []Feed `json:"feeds" yaml:"feeds"`
}

// Registry holds the feeds loaded from file, in file order.
type Registry struct {
	mu    sync.RWMutex
	feeds []Feed
	idx   map[string]Feed
}

// LoadRegistry loads and validates the feeds file (YAML or JSON).
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("feeds file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	parsed, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(parsed.Feeds) == 0 {
		return nil, errors.New("feeds file contains no feeds entries")
	}

	reg := &Registry{
		feeds: make([]Feed, len(parsed.Feeds)),
		idx:   make(map[string]Feed, len(parsed.Feeds)),
	}
	for i := range parsed.Feeds {
		f := sanitizeFeed(parsed.Feeds[i])
		if err := validateFeed(f); err != nil {
			return nil, fmt.Errorf("feeds[%d]: %w", i, err)
		}
		if _, exists := reg.idx[f.ID]; exists {
			return nil, fmt.Errorf("duplicate feed id %q", f.ID)
		}
		reg.feeds[i] = f
		reg.idx[f.ID] = f
	}

	return reg, nil
}

// All returns a copy of the loaded feeds.
func (r *Registry) All() []Feed {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Feed, len(r.feeds))
	copy(out, r.feeds)
	return out
}

// ByID returns the feed with the given id, if loaded.
func (r *Registry) ByID(id string) (Feed, bool) {
	if r == nil {
		return Feed{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Feed{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.idx[id]
	return f, ok
}

type unmarshalFn func([]byte, any) error

func parseRegistry(data []byte, ext string) (fileRegistry, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	var errs []error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg fileRegistry
		if err := d.fn(data, &reg); err != nil {
			errs = append(errs, fmt.Errorf("decode %s feeds: %w", d.name, err))
			continue
		}
		return reg, nil
	}

	if len(errs) > 0 {
		return fileRegistry{}, errors.Join(errs...)
	}
	return fileRegistry{}, errors.New("feeds file format not recognized (expected YAML or JSON)")
}

func sanitizeFeed(f Feed) Feed {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	if f.Name == "" {
		f.Name = f.ID
	}

	markets := make([]string, 0, len(f.Markets))
	for _, m := range f.Markets {
		if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
			markets = append(markets, m)
		}
	}
	f.Markets = markets

	if f.Config == nil {
		f.Config = map[string]any{}
	}
	if f.RequestDelayMs < 0 {
		f.RequestDelayMs = 0
	}
	return f
}

func validateFeed(f Feed) error {
	if f.ID == "" {
		return errors.New("id is required")
	}
	if f.Type == "" {
		return fmt.Errorf("type is required for feed %q", f.ID)
	}
	if !knownTypes[f.Type] {
		return fmt.Errorf("unsupported type %q for feed %q", f.Type, f.ID)
	}
	if len(f.Markets) == 0 {
		return fmt.Errorf("at least one market is required for feed %q", f.ID)
	}
	return nil
}
