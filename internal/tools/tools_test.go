package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stock-research-bot/internal/research"
	"stock-research-bot/internal/search/static"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	t.Setenv("RESEARCH_LOG_DIR", t.TempDir())

	ext := research.NewExtractor(static.New(3), nil)
	svc := research.NewService(ext, &research.ServiceConfig{
		Enabled:       true,
		CacheDuration: time.Minute,
	})
	return NewRegistry(svc)
}

func TestRegistryList(t *testing.T) {
	r := newTestRegistry(t)

	want := []string{
		"find_positive_news",
		"calculate_growth_potential",
		"find_negative_news",
		"assess_market_risks",
		"get_current_market_sentiment",
		"make_investment_decision",
	}

	list := r.List()
	if len(list) != len(want) {
		t.Fatalf("Expected %d tools, got %d", len(want), len(list))
	}

	for i, tool := range list {
		if tool.Name != want[i] {
			t.Errorf("Expected tool %d to be %s, got %s", i, want[i], tool.Name)
		}
		if tool.Description == "" {
			t.Errorf("Expected description for %s", tool.Name)
		}
		if len(tool.Schema) == 0 {
			t.Errorf("Expected schema for %s", tool.Name)
		}
	}
}

func TestCallUnknownTool(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Call(context.Background(), "nonexistent", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Expected ErrUnknownTool, got %v", err)
	}
}

func TestCallMissingSymbol(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Call(context.Background(), "find_positive_news", map[string]any{})
	if !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("Expected ErrInvalidArgs for missing symbol, got %v", err)
	}

	_, err = r.Call(context.Background(), "find_positive_news", map[string]any{"stock_symbol": "  "})
	if !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("Expected ErrInvalidArgs for blank symbol, got %v", err)
	}
}

func TestCallResearchTool(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Call(context.Background(), "find_positive_news", map[string]any{"stock_symbol": "ACME"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(out, "🐂 POSITIVE SIGNALS for ACME:") {
		t.Errorf("Unexpected tool output: %q", out)
	}
}

func TestCallInvestmentDecision(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Call(context.Background(), "make_investment_decision", map[string]any{
		"stock_symbol": "ACME",
		"bull_points":  "• strong growth • profit beat",
		"bear_points":  "quiet",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(out, "🎯 FINAL DECISION for ACME: BUY") {
		t.Errorf("Unexpected verdict: %q", out)
	}
}

func TestCallInvestmentDecisionEmptyBlocks(t *testing.T) {
	r := newTestRegistry(t)

	// Missing argument blocks are scored as single points, not rejected
	out, err := r.Call(context.Background(), "make_investment_decision", map[string]any{
		"stock_symbol": "ACME",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out, "HOLD/RESEARCH MORE") {
		t.Errorf("Expected HOLD verdict for empty blocks, got %q", out)
	}
}
