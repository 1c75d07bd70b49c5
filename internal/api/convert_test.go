package api

import (
	"testing"

	"github.com/osrstools/ge-seer/internal/timegrid"
)

func i64(v int64) *int64 { return &v }

func TestToSnapshot(t *testing.T) {
	resp := &PricesResponse{
		Data: map[string]ItemPrice{
			"2": {AvgHighPrice: i64(183), HighPriceVolume: i64(7288)},
			"6": {AvgLowPrice: i64(99)},
		},
	}

	snap := resp.ToSnapshot(timegrid.Step1h, 1700002800)

	if snap.Timestep != timegrid.Step1h {
		t.Errorf("Timestep = %s, want 1h", snap.Timestep)
	}
	if snap.Time != 1700002800 {
		t.Errorf("Time = %d, want 1700002800", snap.Time)
	}
	if len(snap.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(snap.Rows))
	}

	r0 := snap.Rows[0]
	if r0.ItemID != "2" {
		t.Errorf("Rows[0].ItemID = %q, want 2", r0.ItemID)
	}
	if r0.AvgHighPrice == nil || *r0.AvgHighPrice != 183 {
		t.Errorf("Rows[0].AvgHighPrice = %v, want 183", r0.AvgHighPrice)
	}
	if r0.HighPriceVolume == nil || *r0.HighPriceVolume != 7288 {
		t.Errorf("Rows[0].HighPriceVolume = %v, want 7288", r0.HighPriceVolume)
	}
	if r0.AvgLowPrice != nil {
		t.Errorf("Rows[0].AvgLowPrice = %v, want nil", *r0.AvgLowPrice)
	}
	if r0.LowPriceVolume != nil {
		t.Errorf("Rows[0].LowPriceVolume = %v, want nil", *r0.LowPriceVolume)
	}

	r1 := snap.Rows[1]
	if r1.ItemID != "6" {
		t.Errorf("Rows[1].ItemID = %q, want 6", r1.ItemID)
	}
	if r1.AvgHighPrice != nil || r1.HighPriceVolume != nil {
		t.Error("Rows[1] high side should be nil")
	}
	if r1.AvgLowPrice == nil || *r1.AvgLowPrice != 99 {
		t.Errorf("Rows[1].AvgLowPrice = %v, want 99", r1.AvgLowPrice)
	}

	for i, row := range snap.Rows {
		if row.Timestep != "1h" {
			t.Errorf("Rows[%d].Timestep = %q, want 1h", i, row.Timestep)
		}
		if row.Time != 1700002800 {
			t.Errorf("Rows[%d].Time = %d, want 1700002800", i, row.Time)
		}
	}
}

func TestToSnapshot_NumericOrder(t *testing.T) {
	resp := &PricesResponse{
		Data: map[string]ItemPrice{
			"10":   {AvgHighPrice: i64(1)},
			"2":    {AvgHighPrice: i64(2)},
			"4151": {AvgHighPrice: i64(3)},
			"100":  {AvgHighPrice: i64(4)},
		},
	}

	snap := resp.ToSnapshot(timegrid.Step5m, 300)

	want := []string{"2", "10", "100", "4151"}
	for i, id := range want {
		if snap.Rows[i].ItemID != id {
			t.Errorf("Rows[%d].ItemID = %q, want %q (numeric sort, not lexicographic)", i, snap.Rows[i].ItemID, id)
		}
	}
}

func TestToSnapshot_Empty(t *testing.T) {
	resp := &PricesResponse{Data: map[string]ItemPrice{}}

	snap := resp.ToSnapshot(timegrid.Step24h, 86400)
	if len(snap.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(snap.Rows))
	}
}
