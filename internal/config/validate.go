package config

import (
	"errors"
	"fmt"

	"github.com/osrstools/ge-seer/internal/timegrid"
)

// Validate checks that all required fields are set and values are valid.
func (c *GathererConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %v", c.API.Timeout)
	}
	if c.RateLimit.MinInterval < 0 {
		return fmt.Errorf("rate_limit.min_interval must not be negative, got %v", c.RateLimit.MinInterval)
	}

	if len(c.Poller.Timesteps) == 0 {
		return errors.New("poller.timesteps must not be empty")
	}
	for _, s := range c.Poller.Timesteps {
		if _, err := timegrid.ParseTimestep(s); err != nil {
			return fmt.Errorf("poller.timesteps: %w", err)
		}
	}
	if c.Poller.Lag < 0 {
		return fmt.Errorf("poller.lag must not be negative, got %v", c.Poller.Lag)
	}
	if c.Poller.Interval <= 0 {
		return fmt.Errorf("poller.interval must be positive, got %v", c.Poller.Interval)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	return nil
}
