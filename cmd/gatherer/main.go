package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osrstools/ge-seer/internal/api"
	"github.com/osrstools/ge-seer/internal/config"
	"github.com/osrstools/ge-seer/internal/poller"
	"github.com/osrstools/ge-seer/internal/ratelimit"
	"github.com/osrstools/ge-seer/internal/seer"
	"github.com/osrstools/ge-seer/internal/store"
	"github.com/osrstools/ge-seer/internal/timegrid"
	"github.com/osrstools/ge-seer/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/gatherer.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting gatherer",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	// The user config is a hard precondition: without the wiki-compliant
	// User-Agent and the data directory nothing may touch the network.
	userCfg, err := config.LoadUser()
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			logger.Error("no user configuration found, run 'seer -setup' first")
		} else {
			logger.Error("failed to load user config", "error", err)
		}
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"data_dir", userCfg.DataDir,
		"timesteps", cfg.Poller.Timesteps,
	)

	if err := store.EnsureRoot(userCfg.DataDir); err != nil {
		logger.Error("failed to initialize storage root", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create API client and the process-wide rate gate
	clientOpts := []api.ClientOption{
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	}
	if cfg.API.BaseURL != "" {
		clientOpts = append(clientOpts, api.WithBaseURL(cfg.API.BaseURL))
	}
	client := api.NewClient(userCfg.UserAgent, clientOpts...)
	gate := ratelimit.NewGate(cfg.RateLimit.MinInterval)
	service := seer.New(client, gate, logger)

	// Warm the item-map cache so the data directory is self-describing.
	if _, err := store.LoadItemMap(ctx, client, userCfg.DataDir, false); err != nil {
		logger.Warn("failed to load item map", "error", err)
	}

	timesteps := make([]timegrid.Timestep, 0, len(cfg.Poller.Timesteps))
	for _, s := range cfg.Poller.Timesteps {
		step, err := timegrid.ParseTimestep(s)
		if err != nil {
			logger.Error("invalid timestep in config", "timestep", s, "error", err)
			os.Exit(1)
		}
		timesteps = append(timesteps, step)
	}

	p := poller.New(poller.Config{
		Timesteps: timesteps,
		Lag:       cfg.Poller.Lag,
		Interval:  cfg.Poller.Interval,
		DataDir:   userCfg.DataDir,
	}, service, logger)

	if err := p.Start(ctx); err != nil {
		logger.Error("failed to start poller", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := p.Stop(stopCtx); err != nil {
		logger.Error("poller shutdown error", "error", err)
	}

	logger.Info("gatherer stopped")
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
