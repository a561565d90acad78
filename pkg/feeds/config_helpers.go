package feeds

import (
	"math"
	"strconv"
	"strings"
)

// Feed config keys.
const (
	ConfigCountKey     = "count"
	ConfigToKey        = "to"
	ConfigDaysAgoKey   = "days_ago"
	ConfigTimescaleKey = "timescale"
	ConfigUnitKey      = "unit"
)

// ConfigString returns the trimmed string value for key from feed.Config or a fallback.
func ConfigString(f Feed, key, fallback string) string {
	if f.Config != nil {
		if raw, ok := f.Config[key]; ok {
			if val, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(val); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return fallback
}

// ConfigInt returns the integer value for key from feed.Config or a fallback.
// YAML decodes integers as int and JSON as float64; numeric strings are accepted too.
func ConfigInt(f Feed, key string, fallback int) int {
	if f.Config == nil {
		return fallback
	}
	switch v := f.Config[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}
