package ratelimit

import (
	"sync"
	"time"
)

// DefaultInterval is the minimum spacing between API calls.
const DefaultInterval = time.Second

// Gate serializes the start of gated operations so that no two begin less
// than the configured interval apart, process-wide. State is a single
// last-invocation timestamp; it is not keyed by arguments.
type Gate struct {
	mu       sync.Mutex
	last     time.Time
	interval time.Duration
}

// NewGate creates a gate with the given minimum interval. Non-positive
// intervals fall back to DefaultInterval.
func NewGate(interval time.Duration) *Gate {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Gate{interval: interval}
}

// Interval returns the configured minimum interval.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Wait blocks until at least the configured interval has passed since the
// previous gated call started, then records the new invocation time. The
// timestamp advances before the caller's operation runs, so a call that
// goes on to fail still consumes its interval slot and fast retries
// cannot bypass the limit.
//
// The lock is held across the sleep: concurrent callers queue on the
// mutex in whatever order it admits them (no fairness guarantee), and
// each recomputes its deficit against the timestamp the previous caller
// recorded.
func (g *Gate) Wait() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() {
		if deficit := g.interval - time.Since(g.last); deficit > 0 {
			time.Sleep(deficit)
		}
	}
	g.last = time.Now()
}

// Do runs fn after passing the gate. The slot is consumed whether or not
// fn succeeds.
func (g *Gate) Do(fn func() error) error {
	g.Wait()
	return fn()
}
