package timegrid

import (
	"fmt"
	"time"
)

// Timestep is the averaging bucket size for a price snapshot.
type Timestep string

// Timesteps supported by the wiki prices API.
const (
	Step5m  Timestep = "5m"
	Step1h  Timestep = "1h"
	Step6h  Timestep = "6h"
	Step24h Timestep = "24h"
)

var stepSeconds = map[Timestep]int64{
	Step5m:  300,
	Step1h:  3600,
	Step6h:  21600,
	Step24h: 86400,
}

// ParseTimestep validates a timestep string.
func ParseTimestep(s string) (Timestep, error) {
	step := Timestep(s)
	if _, ok := stepSeconds[step]; !ok {
		return "", fmt.Errorf("%w: unknown timestep %q (want 5m, 1h, 6h or 24h)", ErrInvalidArgument, s)
	}
	return step, nil
}

// Steps lists all supported timesteps, smallest first.
func Steps() []Timestep {
	return []Timestep{Step5m, Step1h, Step6h, Step24h}
}

// Seconds returns the bucket duration in seconds.
func (t Timestep) Seconds() int64 {
	return stepSeconds[t]
}

// Duration returns the bucket duration.
func (t Timestep) Duration() time.Duration {
	return time.Duration(t.Seconds()) * time.Second
}

func (t Timestep) String() string {
	return string(t)
}
