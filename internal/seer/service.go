package seer

import (
	"context"
	"log/slog"

	"github.com/osrstools/ge-seer/internal/api"
	"github.com/osrstools/ge-seer/internal/model"
	"github.com/osrstools/ge-seer/internal/ratelimit"
	"github.com/osrstools/ge-seer/internal/store"
	"github.com/osrstools/ge-seer/internal/timegrid"
)

// QueryOptions selects one price snapshot. Exactly one of Time (>0) or
// Datetime (non-empty, timegrid.TimeLayout) must be set.
type QueryOptions struct {
	Timestep timegrid.Timestep
	Time     int64
	Datetime string
}

// Service wires the pipeline stages together. Safe for concurrent use:
// each call is synchronous end-to-end and the only shared state is the
// gate's timestamp.
type Service struct {
	client *api.Client
	gate   *ratelimit.Gate
	logger *slog.Logger
}

// New creates a snapshot service. The gate must be the process-wide one;
// creating a second gate would defeat the rate limit.
func New(client *api.Client, gate *ratelimit.Gate, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		gate:   gate,
		logger: logger,
	}
}

// FetchSnapshot resolves the requested instant, waits out the rate gate,
// and fetches and reshapes one bucket. The returned snapshot is not
// written to storage.
func (s *Service) FetchSnapshot(ctx context.Context, opts QueryOptions) (*model.Snapshot, error) {
	instant, err := timegrid.Resolve(opts.Time, opts.Datetime, opts.Timestep)
	if err != nil {
		return nil, err
	}

	s.gate.Wait()

	resp, err := s.client.GetPrices(ctx, opts.Timestep, instant)
	if err != nil {
		return nil, err
	}

	snap := resp.ToSnapshot(opts.Timestep, instant)

	s.logger.Debug("snapshot fetched",
		"timestep", opts.Timestep,
		"time", instant,
		"rows", len(snap.Rows),
	)

	return snap, nil
}

// FetchAndStore fetches one snapshot and writes its partition under
// dataDir. When the write fails the fetched snapshot is returned
// alongside the error so the caller's retry path keeps the data.
func (s *Service) FetchAndStore(ctx context.Context, opts QueryOptions, dataDir string) (*model.Snapshot, error) {
	snap, err := s.FetchSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}

	path, err := store.WriteSnapshot(snap, dataDir)
	if err != nil {
		return snap, err
	}

	s.logger.Info("snapshot stored",
		"timestep", snap.Timestep,
		"time", snap.Time,
		"rows", len(snap.Rows),
		"path", path,
	)

	return snap, nil
}
