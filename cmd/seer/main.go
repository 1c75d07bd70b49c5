package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/osrstools/ge-seer/internal/api"
	"github.com/osrstools/ge-seer/internal/config"
	"github.com/osrstools/ge-seer/internal/ratelimit"
	"github.com/osrstools/ge-seer/internal/seer"
	"github.com/osrstools/ge-seer/internal/store"
	"github.com/osrstools/ge-seer/internal/timegrid"
	"github.com/osrstools/ge-seer/internal/version"
)

func main() {
	var (
		setup       = flag.Bool("setup", false, "run the interactive setup wizard")
		mapping     = flag.Bool("mapping", false, "load the item-ID-to-name mapping cache")
		refresh     = flag.Bool("refresh", false, "with -mapping, re-fetch even if cached")
		latest      = flag.Bool("latest", false, "print the latest instantaneous prices for -item")
		item        = flag.String("item", "", "item ID for -latest")
		timestepStr = flag.String("timestep", "", "bucket size to fetch: 5m, 1h, 6h or 24h")
		epoch       = flag.Int64("time", 0, "bucket timestamp (epoch seconds, aligned to the timestep)")
		datetime    = flag.String("datetime", "", `bucket timestamp as "YYYY-MM-DD HH:MM:SS UTC"`)
		storeFlag   = flag.Bool("store", false, "persist the fetched snapshot to its partition")
		verbose     = flag.Bool("v", false, "debug logging")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("seer", version.String())
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *setup {
		if err := runSetup(os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, "setup failed:", err)
			os.Exit(1)
		}
		return
	}

	userCfg, err := config.LoadUser()
	if err != nil {
		if errors.Is(err, config.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "not configured: run 'seer -setup' first")
		} else {
			fmt.Fprintln(os.Stderr, "failed to load config:", err)
		}
		os.Exit(1)
	}

	if err := store.EnsureRoot(userCfg.DataDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	client := api.NewClient(userCfg.UserAgent, api.WithLogger(logger))
	gate := ratelimit.NewGate(ratelimit.DefaultInterval)

	switch {
	case *mapping:
		err = runMapping(ctx, client, userCfg.DataDir, *refresh)
	case *latest:
		err = runLatest(ctx, client, userCfg.DataDir, *item)
	default:
		err = runFetch(ctx, client, gate, userCfg.DataDir, *timestepStr, *epoch, *datetime, *storeFlag)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runSetup is the first-run wizard: it collects the contact info the wiki
// asks price consumers to carry in their User-Agent, plus the directory
// for large datasets.
func runSetup(in *os.File) error {
	r := bufio.NewReader(in)
	prompt := func(q string) (string, error) {
		fmt.Print(q)
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Println("\n--- OSRS GE Seer Setup ---")
	fmt.Println("\nThe OSRS Wiki API requires a User-Agent that includes contact info.")
	fmt.Println("This allows them to reach out if your tool causes technical issues.")

	fmt.Println("\nHow should the Wiki staff contact you if needed?")
	fmt.Println("[1] Discord Username")
	fmt.Println("[2] Email Address")
	choice, err := prompt("Select [1/2]: ")
	if err != nil {
		return err
	}
	contactType := "email"
	if choice == "1" {
		contactType = "discord"
	}

	contactInfo, err := prompt(fmt.Sprintf("Enter your %s: ", contactType))
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	defaultData := filepath.Join(home, "ge_seer_data")
	fmt.Println("\nWhere should large datasets be stored?")
	fmt.Println("Default:", defaultData)
	dataDir, err := prompt("Press Enter for default, or provide a new absolute path: ")
	if err != nil {
		return err
	}
	if dataDir == "" {
		dataDir = defaultData
	}

	cfg, err := config.SaveUser(contactInfo, contactType, dataDir)
	if err != nil {
		return err
	}

	fmt.Println("\nOSRS Wiki API User-Agent set to:", cfg.UserAgent)
	fmt.Println("Data directory set to:", cfg.DataDir)
	fmt.Println("\nSetup complete!")
	return nil
}

func runMapping(ctx context.Context, client *api.Client, dataDir string, refresh bool) error {
	itemMap, err := store.LoadItemMap(ctx, client, dataDir, refresh)
	if err != nil {
		return err
	}
	fmt.Printf("item map loaded: %d items (cached at %s)\n",
		len(itemMap), filepath.Join(dataDir, store.ItemMapFileName))
	return nil
}

func runLatest(ctx context.Context, client *api.Client, dataDir, itemID string) error {
	if itemID == "" {
		return errors.New("-latest requires -item <id>")
	}

	resp, err := client.GetLatest(ctx)
	if err != nil {
		return err
	}
	p, ok := resp.Data[itemID]
	if !ok {
		return fmt.Errorf("item %s not present in latest prices", itemID)
	}

	name := itemID
	if itemMap, err := store.LoadItemMap(ctx, client, dataDir, false); err == nil {
		if n, ok := itemMap[itemID]; ok {
			name = n
		}
	}

	fmt.Printf("%s (%s)\n", name, itemID)
	fmt.Printf("  high: %s at %s\n", fmtPrice(p.High), fmtTime(p.HighTime))
	fmt.Printf("  low:  %s at %s\n", fmtPrice(p.Low), fmtTime(p.LowTime))
	return nil
}

func runFetch(ctx context.Context, client *api.Client, gate *ratelimit.Gate, dataDir, timestepStr string, epoch int64, datetime string, persist bool) error {
	if timestepStr == "" {
		return errors.New("usage: seer -timestep <5m|1h|6h|24h> (-time <epoch> | -datetime <ts>) [-store]")
	}
	step, err := timegrid.ParseTimestep(timestepStr)
	if err != nil {
		return err
	}

	service := seer.New(client, gate, slog.Default())
	opts := seer.QueryOptions{Timestep: step, Time: epoch, Datetime: datetime}

	if persist {
		snap, err := service.FetchAndStore(ctx, opts, dataDir)
		if err != nil {
			return err
		}
		fmt.Printf("stored %d rows at %s\n", len(snap.Rows),
			store.PartitionPath(dataDir, snap.Timestep, snap.Time))
		return nil
	}

	snap, err := service.FetchSnapshot(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Printf("%s @ %s: %d items\n", snap.Timestep, timegrid.FormatTimestamp(snap.Time), len(snap.Rows))
	return nil
}

func fmtPrice(p *int64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d gp", *p)
}

func fmtTime(ts *int64) string {
	if ts == nil {
		return "-"
	}
	return timegrid.FormatTimestamp(*ts)
}
