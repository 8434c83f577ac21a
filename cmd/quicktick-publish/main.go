package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"quicktick/internal/app"
	"quicktick/internal/config"
	"quicktick/internal/schedule"
	"quicktick/internal/util"
)

func main() {
	out := flag.String("out", "", "manifest path (default storage.manifest_path)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *out != "" {
		cfg.Storage.ManifestPath = *out
	}

	logger := app.NewLogger(cfg)
	util.SetDefault(logger)

	cursor := schedule.NewCursorFile(cfg.Storage.CursorPath)
	m, err := schedule.NewPublisher(cursor, cfg.Storage.ManifestPath, logger).Publish()
	if err != nil {
		log.Fatalf("failed to publish manifest: %v", err)
	}
	fmt.Printf("Day %d (%s): %d tickers -> %s\n", m.Day, m.Date, len(m.Tickers), cfg.Storage.ManifestPath)
}
