// Package api implements the OSRS Wiki real-time prices API client.
//
// Endpoints:
//   - GET /{timestep}?timestamp={epoch} - averaged prices for one bucket
//   - GET /latest - instantaneous high/low prices
//   - GET /mapping - item ID to name metadata
//
// The wiki requires a descriptive User-Agent carrying contact info; the
// client refuses to be built without one. Non-2xx responses surface as
// *APIError with the status and body attached. The client never retries:
// retry policy belongs to the caller, and request pacing belongs to the
// ratelimit package.
package api
