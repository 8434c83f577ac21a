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
	tickerList := flag.String("tickers", "", "comma-separated tickers to summarize")
	tickerFile := flag.String("file", "", "file with one ticker per line")
	day := flag.Int("day", 0, "summarize a specific bucket day (1-91)")
	all := flag.Bool("all", false, "summarize every stored report")
	force := flag.Bool("force", false, "regenerate summaries that already exist")
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

	client, err := llm.New(ctx, cfg.LLM, llm.RoleSummary)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	var (
		tickers []string
		bucket  int
	)
	if *all {
		tickers, err = stores.Records.List(ctx)
	} else {
		// Without a selection, summarize the bucket the last run generated.
		cursor := schedule.NewCursorFile(cfg.Storage.CursorPath)
		sel := app.Selection{List: *tickerList, File: *tickerFile, Day: *day}
		tickers, bucket, err = sel.Resolve(schedule.DefaultTable, func() int {
			return schedule.LastRunDay(cursor, logger)
		})
	}
	if err != nil {
		log.Fatalf("failed to resolve tickers: %v", err)
	}

	sum := app.NewSummarizer(cfg, client, stores, logger)
	sum.Force = *force
	sum.Day = bucket

	logger.Info("starting summary generation",
		"provider", cfg.LLM.Provider,
		"model", client.Model(),
		"day", bucket,
		"tickers", len(tickers),
		"force", *force,
	)

	batch := &jobs.Batch{
		JobName: "summary",
		Tickers: jobs.Fixed(tickers),
		Fn:      sum.Run,
		Out:     os.Stdout,
		Log:     logger,
	}
	if err := batch.Run(ctx); err != nil {
		log.Fatalf("summary stopped: %v", err)
	}
}
