package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"quicktick/internal/app"
	"quicktick/internal/config"
	"quicktick/internal/sector"
	"quicktick/internal/store"
	"quicktick/internal/util"
)

func main() {
	policyFlag := flag.String("policy", "", "fill-missing or full-refresh (default from config)")
	source := flag.String("source", "", "profile source: finnhub or alpaca (default from config)")
	snapshot := flag.Bool("snapshot", false, "also write a dated parquet snapshot of the updated table")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *source != "" {
		cfg.Sector.Source = *source
	}
	if *policyFlag != "" {
		cfg.Sector.Policy = *policyFlag
	}
	policy, err := sector.ParsePolicy(cfg.Sector.Policy)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := cfg.RequireProfileSource(); err != nil {
		log.Fatalf("%v", err)
	}
	if *snapshot && cfg.Storage.SnapshotDir == "" {
		log.Fatalf("-snapshot needs storage.snapshot_dir")
	}

	logger := app.NewLogger(cfg)
	util.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	lookup, err := store.LoadLookup(cfg.Storage.LookupPath)
	if err != nil {
		log.Fatalf("failed to load company lookup: %v", err)
	}

	src, err := app.NewProfileSource(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	enricher := sector.NewEnricher(src, policy, util.NewIntervalLimiter(cfg.Sector.RequestDelay), logger)
	enricher.MaxRetries = cfg.Sector.MaxRetries
	enricher.RetryDelay = cfg.Sector.RequestDelay
	started := time.Now()
	updated, stats, runErr := enricher.Run(ctx, lookup)

	// Entries that were not reached keep their prior values, so a partial
	// pass is still safe to write.
	if err := store.SaveLookup(cfg.Storage.LookupPath, updated); err != nil {
		log.Fatalf("failed to save company lookup: %v", err)
	}

	t := stats.Tally(len(lookup))
	t.Started = started
	t.Finish()
	t.Log(logger)
	t.Render(os.Stdout)

	if runErr != nil {
		log.Fatalf("sector enrichment stopped: %v", runErr)
	}

	if *snapshot {
		path, err := store.NewSnapshotStore(cfg.Storage.SnapshotDir).Write(updated, time.Now())
		if err != nil {
			log.Fatalf("failed to write snapshot: %v", err)
		}
		logger.Info("snapshot written", "path", path)
	}
}
