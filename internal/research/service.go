package research

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/reslog"
	"stock-research-bot/internal/types"
)

// Service runs full research passes over symbols with caching
type Service struct {
	extractor *Extractor
	cache     *analysisCache
	cfg       *ServiceConfig
}

// ServiceConfig configures the research service
type ServiceConfig struct {
	CacheDuration time.Duration // How long to cache analysis results
	Enabled       bool          // Whether research is enabled
}

// DefaultServiceConfig returns default configuration
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		CacheDuration: 1 * time.Hour,
		Enabled:       true,
	}
}

// analysisCache stores analysis results temporarily
type analysisCache struct {
	mu   sync.RWMutex
	data map[string]*cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	analysis  types.Analysis
	timestamp time.Time
}

// newAnalysisCache creates a new cache
func newAnalysisCache(ttl time.Duration) *analysisCache {
	cache := &analysisCache{
		data: make(map[string]*cacheEntry),
		ttl:  ttl,
	}

	go cache.cleanupLoop()

	return cache
}

// get retrieves a cached analysis if valid
func (c *analysisCache) get(symbol string) (types.Analysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[symbol]
	if !exists {
		return types.Analysis{}, false
	}

	if time.Since(entry.timestamp) > c.ttl {
		return types.Analysis{}, false
	}

	return entry.analysis, true
}

// set stores an analysis in cache
func (c *analysisCache) set(symbol string, analysis types.Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[symbol] = &cacheEntry{
		analysis:  analysis,
		timestamp: time.Now(),
	}
}

// cleanupLoop periodically removes expired entries
func (c *analysisCache) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes expired entries
func (c *analysisCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for symbol, entry := range c.data {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.data, symbol)
		}
	}
}

// NewService creates a new research service
func NewService(extractor *Extractor, cfg *ServiceConfig) *Service {
	if cfg == nil {
		cfg = DefaultServiceConfig()
	}

	return &Service{
		extractor: extractor,
		cache:     newAnalysisCache(cfg.CacheDuration),
		cfg:       cfg,
	}
}

// Extractor returns the underlying signal extractor
func (s *Service) Extractor() *Extractor {
	return s.extractor
}

// Analyze runs the full research pass for a symbol (cached or fresh):
// bull case, bear case, growth, risks, market sentiment, then the combined
// recommendation.
func (s *Service) Analyze(ctx context.Context, symbol string) (types.Analysis, error) {
	if !s.cfg.Enabled {
		rec := Decide(symbol, "", "")
		return types.Analysis{
			Symbol:         symbol,
			Sentiment:      "Research disabled",
			Recommendation: rec,
			Verdict:        FormatRecommendation(rec),
			Timestamp:      time.Now().Unix(),
		}, nil
	}

	if cached, ok := s.cache.get(symbol); ok {
		logger.Info(ctx, "Using cached analysis", "symbol", symbol, "age_minutes",
			time.Since(time.Unix(cached.Timestamp, 0)).Minutes())
		return cached, nil
	}

	logger.Info(ctx, "Running fresh analysis", "symbol", symbol)
	analysis, err := s.freshAnalysis(ctx, symbol)
	if err != nil {
		return types.Analysis{}, err
	}

	s.cache.set(symbol, analysis)

	return analysis, nil
}

// freshAnalysis runs every research tool for a symbol and combines the verdict
func (s *Service) freshAnalysis(ctx context.Context, symbol string) (types.Analysis, error) {
	timer := logger.StartOperation(ctx, "research.Analyze", "symbol", symbol)
	ctx = timer.GetContext()

	bullCase, err := s.extractor.FindPositiveNews(ctx, symbol)
	if err != nil {
		timer.EndWithError(err)
		return types.Analysis{}, fmt.Errorf("bull case failed: %w", err)
	}

	growth, err := s.extractor.CalculateGrowthPotential(ctx, symbol)
	if err != nil {
		timer.EndWithError(err)
		return types.Analysis{}, fmt.Errorf("growth outlook failed: %w", err)
	}

	bearCase, err := s.extractor.FindNegativeNews(ctx, symbol)
	if err != nil {
		timer.EndWithError(err)
		return types.Analysis{}, fmt.Errorf("bear case failed: %w", err)
	}

	risks, err := s.extractor.AssessMarketRisks(ctx, symbol)
	if err != nil {
		timer.EndWithError(err)
		return types.Analysis{}, fmt.Errorf("risk outlook failed: %w", err)
	}

	sentiment, err := s.extractor.GetCurrentMarketSentiment(ctx, symbol)
	if err != nil {
		timer.EndWithError(err)
		return types.Analysis{}, fmt.Errorf("market sentiment failed: %w", err)
	}

	// The verdict weighs only the bull and bear news blocks; growth, risk and
	// sentiment summaries are supporting material for the caller.
	rec := Decide(symbol, bullCase, bearCase)
	logger.Recommendation(ctx, symbol, rec.Action, rec.Confidence, rec.BullScore, rec.BearScore)
	verdict := FormatRecommendation(rec)

	analysis := types.Analysis{
		Symbol:         symbol,
		BullCase:       bullCase,
		BearCase:       bearCase,
		GrowthOutlook:  growth,
		RiskOutlook:    risks,
		Sentiment:      sentiment,
		Recommendation: rec,
		Verdict:        verdict,
		Timestamp:      time.Now().Unix(),
	}

	if err := reslog.Append(reslog.Entry{
		Symbol:     symbol,
		Action:     rec.Action,
		Confidence: rec.Confidence,
		BullScore:  rec.BullScore,
		BearScore:  rec.BearScore,
	}); err != nil {
		logger.Warn(ctx, "Failed to write research log", "symbol", symbol, "error", err)
	}

	timer.End("action", rec.Action)
	return analysis, nil
}

// ClearCache removes all cached analyses
func (s *Service) ClearCache() {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	s.cache.data = make(map[string]*cacheEntry)
}

// CachedSymbols returns symbols with a cached analysis
func (s *Service) CachedSymbols() []string {
	s.cache.mu.RLock()
	defer s.cache.mu.RUnlock()

	symbols := make([]string, 0, len(s.cache.data))
	for symbol := range s.cache.data {
		symbols = append(symbols, symbol)
	}
	return symbols
}
