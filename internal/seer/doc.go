// Package seer runs the snapshot pipeline: resolve the query instant
// onto the time grid, pass the global rate-limit gate, fetch and reshape
// the bucket, and optionally persist it to its partition.
//
// The service never retries. Argument errors surface before any network
// access; transport errors carry status and body; a storage failure after
// a successful fetch still returns the in-memory snapshot so the caller
// can rewrite it without another API call.
package seer
