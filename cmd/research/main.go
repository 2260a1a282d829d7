package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/research"
	"stock-research-bot/internal/store"
	"stock-research-bot/internal/tools"
	"stock-research-bot/internal/trace"
)

func main() {
	_ = godotenv.Load()

	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() { _ = trace.Shutdown(context.Background()) }()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	compressOldLogs(ctx)

	if cfg.Mode == "DRY_RUN" {
		logger.Warn(ctx, "Running in DRY_RUN mode - using canned search data")
	}

	svc := initializeService(ctx, cfg)

	registry := tools.NewRegistry(svc)
	names := make([]string, 0, len(registry.List()))
	for _, t := range registry.List() {
		names = append(names, t.Name)
	}
	logger.Info(ctx, "Research tools registered", "tools", names)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	if cfg.Schedule == "" {
		runWatchlist(ctx, cfg, svc)
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Schedule, func() { runWatchlist(ctx, cfg, svc) }); err != nil {
		logger.ErrorWithErr(ctx, "Invalid schedule expression", err, "schedule", cfg.Schedule)
		os.Exit(1)
	}
	c.Start()
	logger.Info(ctx, "Scheduled research started", "schedule", cfg.Schedule, "symbols", len(cfg.Watchlist))

	// First pass immediately, then on schedule
	runWatchlist(ctx, cfg, svc)

	select {
	case <-sigc:
		logger.Info(ctx, "Shutting down...")
		c.Stop()
	case <-ctx.Done():
	}
}

// runWatchlist analyzes every configured symbol and prints each result as JSON
func runWatchlist(ctx context.Context, cfg *store.Config, svc *research.Service) {
	for _, sym := range cfg.Watchlist {
		analysis, err := svc.Analyze(ctx, sym)
		if err != nil {
			logger.ErrorWithErr(ctx, "Analysis failed", err, "symbol", sym)
			continue
		}
		b, _ := json.Marshal(analysis)
		fmt.Println(string(b))
	}
}
