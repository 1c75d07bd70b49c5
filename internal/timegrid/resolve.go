package timegrid

import (
	"errors"
	"fmt"
)

// Argument errors. All are detected before any network access and are
// never retried.
var (
	// ErrInvalidArgument is the base error wrapped by every caller-input
	// failure in this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBothInstants means both an epoch and a datetime string were given.
	ErrBothInstants = fmt.Errorf("%w: time and datetime are mutually exclusive", ErrInvalidArgument)

	// ErrNoInstant means neither an epoch nor a datetime string was given.
	ErrNoInstant = fmt.Errorf("%w: either time or datetime is required", ErrInvalidArgument)
)

// Resolve canonicalizes a query instant for the given timestep.
//
// Exactly one of epoch (>0) or datetime (non-empty, TimeLayout format)
// must be supplied. The resulting instant must be an exact multiple of
// the timestep's duration; anything else is a caller error, not a
// network error. Resolve is pure and has no side effects.
func Resolve(epoch int64, datetime string, step Timestep) (int64, error) {
	if _, ok := stepSeconds[step]; !ok {
		return 0, fmt.Errorf("%w: unknown timestep %q", ErrInvalidArgument, string(step))
	}

	hasEpoch := epoch > 0
	hasDatetime := datetime != ""

	switch {
	case hasEpoch && hasDatetime:
		return 0, ErrBothInstants
	case !hasEpoch && !hasDatetime:
		return 0, ErrNoInstant
	}

	instant := epoch
	if hasDatetime {
		var err error
		instant, err = ParseTimestamp(datetime)
		if err != nil {
			return 0, err
		}
	}

	if rem := instant % step.Seconds(); rem != 0 {
		return 0, fmt.Errorf("%w: time %d is not aligned to the %s grid (must be a multiple of %ds)",
			ErrInvalidArgument, instant, step, step.Seconds())
	}

	return instant, nil
}
