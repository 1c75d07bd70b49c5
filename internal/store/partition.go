package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osrstools/ge-seer/internal/timegrid"
)

// DataFileName is the single file written per partition.
const DataFileName = "data.parquet"

// rawPricesDir is the layout prefix under the data directory.
var rawPricesDir = filepath.Join("prices_raw", "instance")

// PartitionDir returns the directory for one (timestep, instant)
// partition. Deterministic; no lookup table involved.
func PartitionDir(root string, step timegrid.Timestep, instant int64) string {
	return filepath.Join(root, rawPricesDir,
		"timestep="+step.String(),
		fmt.Sprintf("time=%d", instant),
	)
}

// PartitionPath returns the data file path for one partition.
func PartitionPath(root string, step timegrid.Timestep, instant int64) string {
	return filepath.Join(PartitionDir(root, step, instant), DataFileName)
}

// Exists reports whether a partition has already been written.
func Exists(root string, step timegrid.Timestep, instant int64) bool {
	_, err := os.Stat(PartitionPath(root, step, instant))
	return err == nil
}

// EnsureRoot creates the raw prices tree under the data directory. Called
// once by the entrypoint before first use; storage initialization is
// explicit, never an import-time side effect.
func EnsureRoot(root string) error {
	if err := os.MkdirAll(filepath.Join(root, rawPricesDir), 0o755); err != nil {
		return fmt.Errorf("create storage root: %w", err)
	}
	return nil
}
