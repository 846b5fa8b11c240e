package helpers

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

const day = 24 * time.Hour

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// WholeDaysSince returns floor((now - t) / 24h). Timestamps in the future give
// a negative count.
func WholeDaysSince(now, t time.Time) int {
	return int(math.Floor(float64(now.Sub(t)) / float64(day)))
}

// WithinDays reports whether t is at most days whole days before now.
func WithinDays(now, t time.Time, days int) bool {
	return WholeDaysSince(now, t) <= days
}
