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
	"quicktick/internal/pipeline"
	"quicktick/internal/util"
)

func main() {
	once := flag.Bool("once", false, "run the daily pipeline immediately and exit")
	spec := flag.String("cron", "", "cron schedule (default schedule.cron from config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.RequireLLM(); err != nil {
		log.Fatalf("%v", err)
	}
	if *spec != "" {
		cfg.Schedule.Cron = *spec
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

	daily, err := app.NewDaily(ctx, cfg, stores, os.Stdout, logger)
	if err != nil {
		log.Fatalf("failed to build pipeline: %v", err)
	}

	if *once {
		logger.Info("running daily pipeline once")
		if err := daily.Run(ctx); err != nil {
			log.Fatalf("daily run failed: %v", err)
		}
		return
	}

	scheduler := &pipeline.Cron{Spec: cfg.Schedule.Cron, Job: daily, Log: logger}
	if err := scheduler.Run(ctx); err != nil {
		log.Fatalf("scheduler error: %v", err)
	}
}
