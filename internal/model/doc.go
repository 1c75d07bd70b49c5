// Package model defines the typed records produced by the snapshot
// pipeline and persisted to parquet.
//
// Conventions:
//   - Timestamps: int64 seconds since Unix epoch, UTC
//   - Item IDs: the API's string-typed integer keys, kept as strings
//   - Price/volume fields: *int64, nil when the item had no trades on
//     that side of the bucket (never coerced to zero)
package model
