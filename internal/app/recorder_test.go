package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/samvad-hq/upbit-quotation/internal/config"
	"github.com/samvad-hq/upbit-quotation/pkg/publishers"
)

const tickerBody = `[{"market":"KRW-BTC","trade_date":"20240101","trade_time":"000000","trade_price":50000000,"trade_timestamp":1704067200000,"timestamp":1704067200100}]`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRecorderPollPublishesOncePerRecord(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ticker" || r.URL.RawQuery != "markets=KRW-BTC" {
			t.Errorf("unexpected upstream request %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tickerBody))
	}))
	defer upstream.Close()

	var (
		mu     sync.Mutex
		events []publishers.Event
	)
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var evt publishers.Event
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			t.Errorf("decode event: %v", err)
		}
		mu.Lock()
		events = append(events, evt)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer sink.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		UpbitBaseURL: upstream.URL,
		HTTPTimeout:  2 * time.Second,
		FeedsFile: writeFile(t, dir, "feeds.yaml", `
feeds:
  - id: krw-btc
    type: ticker
    markets: [krw-btc]
`),
		PublishersFile: writeFile(t, dir, "publishers.yaml", `
publishers:
  - id: hook
    type: http
    http:
      url: `+sink.URL+`
`),
		PollInterval:           time.Minute,
		StorageType:            "bbolt",
		BBoltPath:              filepath.Join(dir, "records.db"),
		StorageTTL:             time.Hour,
		StorageCleanupInterval: time.Hour,
	}

	rec, err := NewRecorder(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	defer rec.close()

	list := rec.feedReg.All()
	for i := 0; i < 2; i++ {
		if err := rec.runOnce(context.Background(), list); err != nil {
			t.Fatalf("runOnce pass %d: %v", i, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Fatalf("expected the unchanged ticker to be published once, got %d", len(events))
	}
	got := events[0]
	if got.FeedID != "krw-btc" || got.Record.ID != "ticker:KRW-BTC:1704067200000" || got.Record.Market != "KRW-BTC" {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestRecorderRunStopsOnCancel(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(tickerBody))
	}))
	defer upstream.Close()
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		UpbitBaseURL:   upstream.URL,
		FeedsFile:      writeFile(t, dir, "feeds.yaml", "feeds:\n  - id: t\n    type: ticker\n    markets: [KRW-BTC]\n"),
		PublishersFile: writeFile(t, dir, "publishers.yaml", "publishers:\n  - id: hook\n    type: http\n    http:\n      url: "+sink.URL+"\n"),
		PollInterval:   time.Hour,
		StorageType:    "none",
	}

	rec, err := NewRecorder(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rec.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not exit after cancel")
	}
}

func TestNewRecorderRequiresPublishers(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		FeedsFile:      writeFile(t, dir, "feeds.yaml", "feeds:\n  - id: t\n    type: ticker\n    markets: [KRW-BTC]\n"),
		PublishersFile: writeFile(t, dir, "publishers.yaml", "publishers:\n  - id: hook\n    type: http\n    enabled: false\n    http:\n      url: https://example.com\n"),
		PollInterval:   time.Minute,
	}
	if _, err := NewRecorder(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error with no enabled publishers")
	}
}

func TestNewQuotationClientUsesConfiguredBaseURL(t *testing.T) {
	client, err := NewQuotationClient(&config.Config{UpbitBaseURL: "https://example.com/v1/"})
	if err != nil {
		t.Fatalf("NewQuotationClient: %v", err)
	}
	if got := client.BaseURL(); got != "https://example.com/v1" {
		t.Fatalf("BaseURL = %q", got)
	}
}
