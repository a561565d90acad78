package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestZapLoggerWritesObjectUnderKey(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core))

	log.WarnObj("feed failed", "feed_error", map[string]any{"feed_id": "majors"})

	entries := logs.FilterMessage("feed failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %v", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	obj, ok := fields["feed_error"].(map[string]any)
	if !ok || obj["feed_id"] != "majors" {
		t.Fatalf("unexpected fields %#v", fields)
	}
}

func TestNewNilReturnsNop(t *testing.T) {
	if _, ok := New(nil).(NopLogger); !ok {
		t.Fatal("expected NopLogger for nil zap logger")
	}
}
