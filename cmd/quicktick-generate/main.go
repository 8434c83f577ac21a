package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"quicktick/internal/app"
	"quicktick/internal/config"
	"quicktick/internal/jobs"
	"quicktick/internal/llm"
	"quicktick/internal/schedule"
	"quicktick/internal/util"
)

func main() {
	tickerList := flag.String("tickers", "", "comma-separated tickers to generate (overrides the rotation)")
	tickerFile := flag.String("file", "", "file with one ticker per line (overrides the rotation)")
	day := flag.Int("day", 0, "generate a specific bucket day (1-91) without touching the cursor")
	noAdvance := flag.Bool("no-advance", false, "leave the cursor alone after a rotation run")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.RequireLLM(); err != nil {
		log.Fatalf("%v", err)
	}

	logger := app.NewLogger(cfg)
	util.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stores, err := app.OpenStores(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer stores.Close()

	client, err := llm.New(ctx, cfg.LLM, llm.RoleReport)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	cursor := schedule.NewCursorFile(cfg.Storage.CursorPath)
	sel := app.Selection{List: *tickerList, File: *tickerFile, Day: *day}
	fromCursor := sel == app.Selection{}

	tickers, bucket, err := sel.Resolve(schedule.DefaultTable, func() int {
		return schedule.DueDay(cursor, logger)
	})
	if err != nil {
		log.Fatalf("failed to resolve tickers: %v", err)
	}

	gen := app.NewGenerator(cfg, client, stores, logger)
	gen.Day = bucket

	logger.Info("starting report generation",
		"provider", cfg.LLM.Provider,
		"model", client.Model(),
		"day", bucket,
		"tickers", len(tickers),
	)

	batch := &jobs.Batch{
		JobName: "report",
		Tickers: jobs.Fixed(tickers),
		Fn:      gen.Run,
		Out:     os.Stdout,
		Log:     logger,
	}
	if err := batch.Run(ctx); err != nil {
		log.Fatalf("generation stopped: %v", err)
	}

	if fromCursor && !*noAdvance {
		next, err := schedule.Advance(bucket)
		if err != nil {
			log.Fatalf("advancing cursor: %v", err)
		}
		if err := cursor.Save(next); err != nil {
			log.Fatalf("saving cursor: %v", err)
		}
		logger.Info("cursor advanced", "from", bucket, "to", next)
	}
}
