package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"quicktick/internal/app"
	"quicktick/internal/config"
	"quicktick/internal/domain"
	"quicktick/internal/httpapi"
	"quicktick/internal/store"
	"quicktick/internal/util"
)

func main() {
	port := flag.Int("port", 0, "listen port (default server.port from config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := app.NewLogger(cfg)
	util.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stores, err := app.OpenStores(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer stores.Close()

	lookup := func() (domain.CompanyLookup, error) {
		return store.LoadLookup(cfg.Storage.LookupPath)
	}
	srv := httpapi.NewServer(stores.Records, lookup, cfg.Storage.ManifestPath, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
