package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/quotes"
	"stock-research-bot/internal/research"
	"stock-research-bot/internal/reslog"
	"stock-research-bot/internal/search/gnews"
	"stock-research-bot/internal/search/searchobs"
	"stock-research-bot/internal/search/static"
	"stock-research-bot/internal/search/tavily"
	"stock-research-bot/internal/store"
	"stock-research-bot/internal/trace"
)

// initializeSystem initializes the logger and tracer
func initializeSystem() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs compresses old research log files if retention is configured
func compressOldLogs(ctx context.Context) {
	v := os.Getenv("RESEARCH_LOG_RETENTION_DAYS")
	if v == "" {
		return
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn(ctx, "Invalid RESEARCH_LOG_RETENTION_DAYS", "value", v, "error", err)
		return
	}

	if err := reslog.CompressOlder(n); err != nil {
		logger.Warn(ctx, "Failed to compress old logs", "error", err)
	}
}

// initializeProvider constructs the configured search provider with observability
func initializeProvider(ctx context.Context, cfg *store.Config) interfaces.SearchProvider {
	timeout := time.Duration(cfg.Search.TimeoutSeconds) * time.Second

	var provider interfaces.SearchProvider
	switch cfg.Search.Provider {
	case "TAVILY":
		apiKey := os.Getenv(cfg.Search.APIKeyEnv)
		if apiKey == "" {
			logger.Warn(ctx, "Search API key missing - falling back to Google News scraper",
				"env", cfg.Search.APIKeyEnv)
			provider = gnews.New(cfg.Search.MaxResults, timeout)
			break
		}
		provider = tavily.New(apiKey, cfg.Search.MaxResults, timeout)
	case "GNEWS":
		provider = gnews.New(cfg.Search.MaxResults, timeout)
	default:
		logger.Info(ctx, "Using static canned search data")
		provider = static.New(cfg.Search.MaxResults)
	}

	logger.Info(ctx, "Search provider initialized", "provider", provider.Name())

	// Wrap with observability middleware
	return searchobs.Wrap(provider)
}

// initializeQuotes constructs the quote provider when live quotes are enabled
func initializeQuotes(ctx context.Context, cfg *store.Config) interfaces.QuoteProvider {
	if !cfg.Quotes.Enabled {
		return quotes.NewNoop()
	}

	apiKey := os.Getenv("KITE_API_KEY")
	accessToken := os.Getenv("KITE_ACCESS_TOKEN")
	if apiKey == "" || accessToken == "" {
		logger.Warn(ctx, "Quotes enabled but Kite credentials missing - live quotes disabled")
		return quotes.NewNoop()
	}

	return quotes.NewZerodha(quotes.Params{
		APIKey:      apiKey,
		AccessToken: accessToken,
		Exchange:    cfg.Quotes.Exchange,
	})
}

// initializeService builds the research service from configuration
func initializeService(ctx context.Context, cfg *store.Config) *research.Service {
	provider := initializeProvider(ctx, cfg)
	quoteProvider := initializeQuotes(ctx, cfg)

	extractor := research.NewExtractor(provider, quoteProvider)

	return research.NewService(extractor, &research.ServiceConfig{
		CacheDuration: time.Duration(cfg.Research.CacheMinutes) * time.Minute,
		Enabled:       !cfg.Research.Disabled,
	})
}
