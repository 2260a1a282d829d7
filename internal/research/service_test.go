package research

import (
	"context"
	"testing"
	"time"

	"stock-research-bot/internal/search/static"
	"stock-research-bot/internal/types"
)

func TestAnalysisCache(t *testing.T) {
	cache := newAnalysisCache(1 * time.Second)

	symbol := "ACME"
	analysis := types.Analysis{
		Symbol:    symbol,
		Verdict:   "🎯 FINAL DECISION for ACME: HOLD/RESEARCH MORE",
		Timestamp: time.Now().Unix(),
	}

	// Test set and get
	cache.set(symbol, analysis)

	retrieved, found := cache.get(symbol)
	if !found {
		t.Fatal("Expected to find cached analysis")
	}

	if retrieved.Symbol != symbol {
		t.Errorf("Expected symbol %s, got %s", symbol, retrieved.Symbol)
	}

	// Test expiration
	time.Sleep(2 * time.Second)
	_, found = cache.get(symbol)
	if found {
		t.Error("Expected cache entry to be expired")
	}
}

func TestCacheCleanup(t *testing.T) {
	cache := newAnalysisCache(100 * time.Millisecond)

	for _, sym := range []string{"AAA", "BBB", "CCC"} {
		cache.set(sym, types.Analysis{Symbol: sym, Timestamp: time.Now().Unix()})
	}

	// Wait for expiration, then trigger cleanup
	time.Sleep(200 * time.Millisecond)
	cache.cleanup()

	cache.mu.RLock()
	count := len(cache.data)
	cache.mu.RUnlock()

	if count != 0 {
		t.Errorf("Expected 0 cache entries after cleanup, got %d", count)
	}
}

func TestDefaultServiceConfig(t *testing.T) {
	cfg := DefaultServiceConfig()

	if cfg.CacheDuration != 1*time.Hour {
		t.Errorf("Expected CacheDuration to be 1 hour, got %v", cfg.CacheDuration)
	}

	if !cfg.Enabled {
		t.Error("Expected Enabled to be true")
	}
}

func TestServiceDisabled(t *testing.T) {
	ext := NewExtractor(static.New(3), nil)
	svc := NewService(ext, &ServiceConfig{Enabled: false, CacheDuration: time.Minute})

	analysis, err := svc.Analyze(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if analysis.Sentiment != "Research disabled" {
		t.Errorf("Expected disabled message, got %q", analysis.Sentiment)
	}

	if analysis.Recommendation.Action != types.ActionHold {
		t.Errorf("Expected %s when disabled, got %s", types.ActionHold, analysis.Recommendation.Action)
	}
}

func TestAnalyzeCachesResult(t *testing.T) {
	t.Setenv("RESEARCH_LOG_DIR", t.TempDir())

	ext := NewExtractor(static.New(3), nil)
	svc := NewService(ext, &ServiceConfig{Enabled: true, CacheDuration: time.Minute})
	ctx := context.Background()

	first, err := svc.Analyze(ctx, "ACME")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first.BullCase == "" || first.BearCase == "" {
		t.Error("Expected bull and bear cases to be populated")
	}
	if first.Verdict != FormatRecommendation(first.Recommendation) {
		t.Errorf("Expected verdict to render the recommendation, got %q", first.Verdict)
	}

	cached := svc.CachedSymbols()
	if len(cached) != 1 || cached[0] != "ACME" {
		t.Errorf("Expected ACME to be cached, got %v", cached)
	}

	second, err := svc.Analyze(ctx, "ACME")
	if err != nil {
		t.Fatalf("Expected no error on cached pass, got %v", err)
	}

	if second.Timestamp != first.Timestamp {
		t.Error("Expected cached analysis to be returned on second pass")
	}
}

func TestClearCache(t *testing.T) {
	ext := NewExtractor(static.New(3), nil)
	svc := NewService(ext, DefaultServiceConfig())

	svc.cache.set("ACME", types.Analysis{Symbol: "ACME", Timestamp: time.Now().Unix()})

	if len(svc.CachedSymbols()) != 1 {
		t.Fatal("Expected 1 cached symbol")
	}

	svc.ClearCache()

	if len(svc.CachedSymbols()) != 0 {
		t.Errorf("Expected 0 cached symbols after clear, got %d", len(svc.CachedSymbols()))
	}
}
