package config

import (
	"testing"
	"time"

	"github.com/samvad-hq/upbit-quotation/pkg/upbit"
	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UpbitBaseURL != upbit.DefaultBaseURL {
		t.Fatalf("unexpected base url %s", cfg.UpbitBaseURL)
	}
	if cfg.PollInterval != time.Minute {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected http timeout %v", cfg.HTTPTimeout)
	}
	if cfg.StorageTTL != 24*time.Hour || cfg.StorageCleanupInterval != time.Hour {
		t.Fatalf("unexpected storage durations ttl=%v cleanup=%v", cfg.StorageTTL, cfg.StorageCleanupInterval)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "5")
	t.Setenv("UPBIT_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if cfg.UpbitBaseURL != "http://localhost:8080/v1" {
		t.Fatalf("unexpected base url %s", cfg.UpbitBaseURL)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected transport default timeout, got %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsNonPositivePollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "0")

	if _, err := load(viper.New()); err == nil {
		t.Fatal("expected error for zero poll interval")
	}
}
