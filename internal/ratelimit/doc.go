// Package ratelimit enforces the minimum spacing between wiki API calls.
//
// The wiki asks real-time price consumers to keep request rates low; this
// is a compliance constraint, not an optimization. A single Gate is shared
// by every caller in the process, so bursts from concurrent goroutines
// still come out at least one interval apart on the wire.
package ratelimit
