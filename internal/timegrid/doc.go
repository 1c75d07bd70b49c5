// Package timegrid resolves query instants onto the discrete time grid
// used by the wiki prices API.
//
// Every averaged price bucket is identified by a Timestep (5m, 1h, 6h or
// 24h) and a Unix timestamp that is an exact multiple of the timestep's
// duration. Resolve validates and canonicalizes caller-supplied instants
// before any network access happens.
//
// Conventions:
//   - Timestamps: int64 seconds since Unix epoch, always UTC
//   - Human-readable form: "YYYY-MM-DD HH:MM:SS UTC" (see TimeLayout)
package timegrid
