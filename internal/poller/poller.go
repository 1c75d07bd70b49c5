package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osrstools/ge-seer/internal/model"
	"github.com/osrstools/ge-seer/internal/seer"
	"github.com/osrstools/ge-seer/internal/store"
	"github.com/osrstools/ge-seer/internal/timegrid"
)

// SnapshotService fetches and persists one price snapshot.
type SnapshotService interface {
	FetchAndStore(ctx context.Context, opts seer.QueryOptions, dataDir string) (*model.Snapshot, error)
}

// Config holds poller configuration.
type Config struct {
	Timesteps []timegrid.Timestep // Timesteps to keep current
	Lag       time.Duration       // Delay after a bucket boundary before requesting it
	Interval  time.Duration       // Time between partition checks
	DataDir   string              // Storage root
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(dataDir string) Config {
	return Config{
		Timesteps: timegrid.Steps(),
		Lag:       2 * time.Minute,
		Interval:  time.Minute,
		DataDir:   dataDir,
	}
}

// Poller periodically gathers the newest completed price buckets.
type Poller struct {
	cfg    Config
	svc    SnapshotService
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Poller.
func New(cfg Config, svc SnapshotService, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("snapshot poller started",
		"timesteps", p.cfg.Timesteps,
		"interval", p.cfg.Interval,
		"lag", p.cfg.Lag,
	)

	return nil
}

// Stop gracefully shuts down the poller.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("snapshot poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	p.pollAll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.pollAll()
		}
	}
}

// pollAll gathers the newest missing bucket for every timestep.
func (p *Poller) pollAll() {
	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	var gathered, skipped, failed int

	for _, step := range p.cfg.Timesteps {
		select {
		case <-ctx.Done():
			return
		default:
		}

		instant := timegrid.Latest(step, p.cfg.Lag)
		if store.Exists(p.cfg.DataDir, step, instant) {
			skipped++
			continue
		}

		snap, err := p.svc.FetchAndStore(ctx, seer.QueryOptions{
			Timestep: step,
			Time:     instant,
		}, p.cfg.DataDir)
		if err != nil {
			p.logger.Warn("failed to gather snapshot",
				"timestep", step,
				"time", instant,
				"err", err,
			)
			failed++
			continue
		}

		gathered++
		p.logger.Debug("gathered snapshot",
			"timestep", step,
			"time", instant,
			"rows", len(snap.Rows),
		)
	}

	if gathered > 0 || failed > 0 {
		p.logger.Info("poll cycle complete",
			"gathered", gathered,
			"skipped", skipped,
			"failed", failed,
			"duration", time.Since(start),
		)
	}
}
