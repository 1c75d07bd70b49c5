package api

import (
	"sort"
	"strconv"

	"github.com/osrstools/ge-seer/internal/model"
	"github.com/osrstools/ge-seer/internal/timegrid"
)

// ToSnapshot reshapes a prices response into the uniform tabular record:
// one row per item present in the response, with the partition key
// denormalized onto every row. Rows are ordered by ascending numeric
// item ID so repeated fetches of the same bucket produce identical
// tables. Nil fields stay nil.
func (r *PricesResponse) ToSnapshot(step timegrid.Timestep, instant int64) *model.Snapshot {
	ids := make([]string, 0, len(r.Data))
	for id := range r.Data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aErr := strconv.ParseInt(ids[i], 10, 64)
		b, bErr := strconv.ParseInt(ids[j], 10, 64)
		if aErr != nil || bErr != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})

	rows := make([]model.PriceRow, 0, len(ids))
	for _, id := range ids {
		p := r.Data[id]
		rows = append(rows, model.PriceRow{
			ItemID:          id,
			AvgHighPrice:    p.AvgHighPrice,
			HighPriceVolume: p.HighPriceVolume,
			AvgLowPrice:     p.AvgLowPrice,
			LowPriceVolume:  p.LowPriceVolume,
			Timestep:        step.String(),
			Time:            instant,
		})
	}

	return &model.Snapshot{
		Timestep: step,
		Time:     instant,
		Rows:     rows,
	}
}
