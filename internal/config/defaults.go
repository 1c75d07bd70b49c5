package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAPITimeout     = 30 * time.Second
	DefaultMinInterval    = 1 * time.Second
	DefaultPollerLag      = 2 * time.Minute
	DefaultPollerInterval = 1 * time.Minute
	DefaultLogLevel       = "info"
)

// DefaultTimesteps are gathered when none are configured.
var DefaultTimesteps = []string{"5m", "1h", "6h", "24h"}

func (c *GathererConfig) applyDefaults() {
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.RateLimit.MinInterval == 0 {
		c.RateLimit.MinInterval = DefaultMinInterval
	}

	if len(c.Poller.Timesteps) == 0 {
		c.Poller.Timesteps = append([]string(nil), DefaultTimesteps...)
	}
	if c.Poller.Lag == 0 {
		c.Poller.Lag = DefaultPollerLag
	}
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollerInterval
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
