package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a Go duration string, falling back to the given
// default when the string is empty or malformed. Used for config values
// that may be read before the logger is fully configured, so it logs
// through the global logger.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("value", durationStr).Dur("default", defaultDuration).Msg("Invalid duration, using default")
		return defaultDuration
	}
	return duration
}
