// Package store persists price snapshots to a Hive-style partitioned
// parquet layout under the configured data directory:
//
//	<data_dir>/prices_raw/instance/timestep=<5m|1h|6h|24h>/time=<epoch>/data.parquet
//
// One file per (timestep, time) partition. Writes go to a uniquely named
// temp file in the partition directory and are renamed into place, so a
// failed write never leaves a half-written data.parquet and rewriting a
// partition atomically replaces it. Partitions are independent: there is
// no cross-partition index to keep consistent. Two concurrent writers for
// the same partition key are a caller error; the last rename wins but the
// interleaving is undefined.
//
// The package also owns the item-ID-to-name mapping cache: fetched once
// from the API, stored as item_map.json, and read from disk afterwards.
package store
