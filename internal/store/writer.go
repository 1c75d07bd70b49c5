package store

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"

	"github.com/osrstools/ge-seer/internal/model"
	"github.com/osrstools/ge-seer/internal/timegrid"
)

// WriteSnapshot persists a snapshot to its partition file and returns the
// final path. The write is atomic with overwrite semantics: the rows go
// to a temp file first, then replace whatever data.parquet was there.
// Rewriting the same partition key is safe and leaves exactly one file.
func WriteSnapshot(snap *model.Snapshot, root string) (string, error) {
	dir := PartitionDir(root, snap.Timestep, snap.Time)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create partition dir: %w", err)
	}

	final := PartitionPath(root, snap.Timestep, snap.Time)

	// Unique temp name in the same directory so the rename stays on one
	// filesystem and writers to other partitions never collide.
	tmp := final + "." + uuid.NewString() + ".tmp"

	if err := writeParquet(tmp, snap.Rows); err != nil {
		os.Remove(tmp)
		return "", err
	}

	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("replace partition file: %w", err)
	}

	return final, nil
}

func writeParquet(path string, rows []model.PriceRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	w := parquet.NewGenericWriter[model.PriceRow](f)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			f.Close()
			return fmt.Errorf("write rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize parquet: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}

// ReadSnapshot loads a previously written partition back into memory.
func ReadSnapshot(root string, step timegrid.Timestep, instant int64) ([]model.PriceRow, error) {
	rows, err := parquet.ReadFile[model.PriceRow](PartitionPath(root, step, instant))
	if err != nil {
		return nil, fmt.Errorf("read partition %s/%d: %w", step, instant, err)
	}
	return rows, nil
}
