package model

import "github.com/osrstools/ge-seer/internal/timegrid"

// PriceRow is one item's averaged prices for one (timestep, time) bucket.
// The timestep and time columns are denormalized onto every row so a
// partition file is self-describing. Nullable columns are optional in
// the parquet schema; a nil pointer round-trips as a null value.
type PriceRow struct {
	ItemID          string `parquet:"itemID"`
	AvgHighPrice    *int64 `parquet:"avgHighPrice,optional"`
	HighPriceVolume *int64 `parquet:"highPriceVolume,optional"`
	AvgLowPrice     *int64 `parquet:"avgLowPrice,optional"`
	LowPriceVolume  *int64 `parquet:"lowPriceVolume,optional"`
	Timestep        string `parquet:"timestep"`
	Time            int64  `parquet:"time"`
}

// Snapshot is the full row set returned by one prices API call, tagged
// with the partition key that produced it. Snapshots are immutable once
// built; overwriting a partition's file is the only update operation.
type Snapshot struct {
	Timestep timegrid.Timestep
	Time     int64
	Rows     []PriceRow
}
