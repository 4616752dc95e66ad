package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ISOTimestampLayout matches the millisecond UTC form written by browsers'
// Date.prototype.toISOString, which the spreadsheet webhook already parses.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if strings.TrimSpace(durationStr) == "" {
		return defaultDuration
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatISOTimestamp renders t in UTC with millisecond precision and a
// trailing Z.
func FormatISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}
