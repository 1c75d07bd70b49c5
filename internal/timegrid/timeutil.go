package timegrid

import (
	"fmt"
	"time"
)

// TimeLayout is the human-readable UTC form used across the tool.
const TimeLayout = "2006-01-02 15:04:05 UTC"

// Now returns the current Unix timestamp in UTC.
func Now() int64 {
	return time.Now().UTC().Unix()
}

// FormatTimestamp renders a Unix timestamp as "YYYY-MM-DD HH:MM:SS UTC".
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(TimeLayout)
}

// ParseTimestamp converts a "YYYY-MM-DD HH:MM:SS UTC" string to a Unix
// timestamp.
func ParseTimestamp(s string) (int64, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: datetime %q does not match %q", ErrInvalidArgument, s, TimeLayout)
	}
	return t.Unix(), nil
}

// Latest returns the most recent grid instant for step whose bucket had
// already started at now-lag. The lag gives the provider time to finish
// aggregating the bucket before we ask for it.
func Latest(step Timestep, lag time.Duration) int64 {
	now := time.Now().UTC().Add(-lag).Unix()
	return now - now%step.Seconds()
}
