package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osrstools/ge-seer/internal/model"
	"github.com/osrstools/ge-seer/internal/timegrid"
)

func i64(v int64) *int64 { return &v }

func testSnapshot(step timegrid.Timestep, instant int64, rows []model.PriceRow) *model.Snapshot {
	return &model.Snapshot{Timestep: step, Time: instant, Rows: rows}
}

func TestWriteSnapshot_PathAndContent(t *testing.T) {
	root := t.TempDir()

	snap := testSnapshot(timegrid.Step1h, 1700002800, []model.PriceRow{
		{ItemID: "2", AvgHighPrice: i64(183), HighPriceVolume: i64(7288), Timestep: "1h", Time: 1700002800},
		{ItemID: "6", AvgLowPrice: i64(99), Timestep: "1h", Time: 1700002800},
	})

	path, err := WriteSnapshot(snap, root)
	if err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	want := filepath.Join(root, "prices_raw", "instance", "timestep=1h", "time=1700002800", "data.parquet")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("partition file not written: %v", err)
	}

	rows, err := ReadSnapshot(root, timegrid.Step1h, 1700002800)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].ItemID != "2" || rows[1].ItemID != "6" {
		t.Errorf("row order = %q,%q, want 2,6", rows[0].ItemID, rows[1].ItemID)
	}
	if rows[0].Timestep != "1h" || rows[0].Time != 1700002800 {
		t.Errorf("denormalized key = %q/%d, want 1h/1700002800", rows[0].Timestep, rows[0].Time)
	}
}

// Absent API fields must survive the parquet round trip as nulls, never
// as zeroes.
func TestWriteSnapshot_NullabilityRoundTrip(t *testing.T) {
	root := t.TempDir()

	snap := testSnapshot(timegrid.Step5m, 300, []model.PriceRow{
		{ItemID: "2", AvgHighPrice: i64(183), HighPriceVolume: i64(7288), Timestep: "5m", Time: 300},
		{ItemID: "6", AvgLowPrice: i64(99), Timestep: "5m", Time: 300},
	})

	if _, err := WriteSnapshot(snap, root); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	rows, err := ReadSnapshot(root, timegrid.Step5m, 300)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}

	r0 := rows[0]
	if r0.AvgHighPrice == nil || *r0.AvgHighPrice != 183 {
		t.Errorf("AvgHighPrice = %v, want 183", r0.AvgHighPrice)
	}
	if r0.AvgLowPrice != nil {
		t.Errorf("AvgLowPrice = %v, want null", *r0.AvgLowPrice)
	}
	if r0.LowPriceVolume != nil {
		t.Errorf("LowPriceVolume = %v, want null", *r0.LowPriceVolume)
	}

	r1 := rows[1]
	if r1.AvgHighPrice != nil || r1.HighPriceVolume != nil {
		t.Error("row 6 high side should be null")
	}
	if r1.AvgLowPrice == nil || *r1.AvgLowPrice != 99 {
		t.Errorf("row 6 AvgLowPrice = %v, want 99", r1.AvgLowPrice)
	}
}

// Rewriting a partition key replaces the file: one file, second write's
// content.
func TestWriteSnapshot_OverwriteSemantics(t *testing.T) {
	root := t.TempDir()

	first := testSnapshot(timegrid.Step1h, 1700002800, []model.PriceRow{
		{ItemID: "2", AvgHighPrice: i64(100), Timestep: "1h", Time: 1700002800},
		{ItemID: "6", AvgHighPrice: i64(200), Timestep: "1h", Time: 1700002800},
	})
	second := testSnapshot(timegrid.Step1h, 1700002800, []model.PriceRow{
		{ItemID: "2", AvgHighPrice: i64(555), Timestep: "1h", Time: 1700002800},
	})

	if _, err := WriteSnapshot(first, root); err != nil {
		t.Fatalf("first WriteSnapshot() error = %v", err)
	}
	if _, err := WriteSnapshot(second, root); err != nil {
		t.Fatalf("second WriteSnapshot() error = %v", err)
	}

	dir := PartitionDir(root, timegrid.Step1h, 1700002800)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("partition dir has %d entries, want exactly 1 (no temp leftovers, no duplicates)", len(entries))
	}
	if entries[0].Name() != DataFileName {
		t.Errorf("entry = %q, want %q", entries[0].Name(), DataFileName)
	}

	rows, err := ReadSnapshot(root, timegrid.Step1h, 1700002800)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 (second write only)", len(rows))
	}
	if rows[0].AvgHighPrice == nil || *rows[0].AvgHighPrice != 555 {
		t.Errorf("AvgHighPrice = %v, want 555", rows[0].AvgHighPrice)
	}
}

func TestWriteSnapshot_EmptyRows(t *testing.T) {
	root := t.TempDir()

	snap := testSnapshot(timegrid.Step24h, 86400, nil)
	if _, err := WriteSnapshot(snap, root); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	rows, err := ReadSnapshot(root, timegrid.Step24h, 86400)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestWriteSnapshot_UnwritableRoot(t *testing.T) {
	root := t.TempDir()

	// A regular file where a directory is needed makes MkdirAll fail.
	blocker := filepath.Join(root, "prices_raw")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	snap := testSnapshot(timegrid.Step1h, 3600, nil)
	if _, err := WriteSnapshot(snap, root); err == nil {
		t.Fatal("WriteSnapshot() error = nil, want IO error")
	}
}

func TestExistsAndEnsureRoot(t *testing.T) {
	root := t.TempDir()

	if err := EnsureRoot(root); err != nil {
		t.Fatalf("EnsureRoot() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "prices_raw", "instance")); err != nil {
		t.Fatalf("storage root not created: %v", err)
	}
	// Idempotent.
	if err := EnsureRoot(root); err != nil {
		t.Fatalf("second EnsureRoot() error = %v", err)
	}

	if Exists(root, timegrid.Step6h, 21600) {
		t.Error("Exists() = true before write")
	}
	if _, err := WriteSnapshot(testSnapshot(timegrid.Step6h, 21600, nil), root); err != nil {
		t.Fatal(err)
	}
	if !Exists(root, timegrid.Step6h, 21600) {
		t.Error("Exists() = false after write")
	}
}
