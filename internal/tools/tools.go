package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stock-research-bot/internal/research"
)

var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrInvalidArgs = errors.New("invalid tool arguments")
)

// Handler executes a tool call with already-decoded arguments
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool is one callable research function, described so an external
// orchestrator can register and invoke it.
type Tool struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Fn          Handler
}

const symbolSchema = `{
	"type": "object",
	"properties": {
		"stock_symbol": {
			"type": "string",
			"description": "Ticker symbol of the stock to research"
		}
	},
	"required": ["stock_symbol"],
	"additionalProperties": false
}`

const decisionSchema = `{
	"type": "object",
	"properties": {
		"stock_symbol": {
			"type": "string",
			"description": "Ticker symbol of the stock"
		},
		"bull_points": {
			"type": "string",
			"description": "Bulleted summary of the bull case"
		},
		"bear_points": {
			"type": "string",
			"description": "Bulleted summary of the bear case"
		}
	},
	"required": ["stock_symbol", "bull_points", "bear_points"],
	"additionalProperties": false
}`

// Registry holds the callable research tools
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds the registry of research tools backed by the service
func NewRegistry(svc *research.Service) *Registry {
	ext := svc.Extractor()

	r := &Registry{tools: make(map[string]Tool)}

	r.register(Tool{
		Name:        "find_positive_news",
		Description: "Search for positive news and developments about a stock",
		Schema:      json.RawMessage(symbolSchema),
		Fn: symbolHandler(func(ctx context.Context, symbol string) (string, error) {
			return ext.FindPositiveNews(ctx, symbol)
		}),
	})

	r.register(Tool{
		Name:        "calculate_growth_potential",
		Description: "Calculate basic growth metrics and bullish indicators for a stock",
		Schema:      json.RawMessage(symbolSchema),
		Fn: symbolHandler(func(ctx context.Context, symbol string) (string, error) {
			return ext.CalculateGrowthPotential(ctx, symbol)
		}),
	})

	r.register(Tool{
		Name:        "find_negative_news",
		Description: "Search for negative news and risks about a stock",
		Schema:      json.RawMessage(symbolSchema),
		Fn: symbolHandler(func(ctx context.Context, symbol string) (string, error) {
			return ext.FindNegativeNews(ctx, symbol)
		}),
	})

	r.register(Tool{
		Name:        "assess_market_risks",
		Description: "Assess overall market risks and bearish indicators for a stock",
		Schema:      json.RawMessage(symbolSchema),
		Fn: symbolHandler(func(ctx context.Context, symbol string) (string, error) {
			return ext.AssessMarketRisks(ctx, symbol)
		}),
	})

	r.register(Tool{
		Name:        "get_current_market_sentiment",
		Description: "Get overall market sentiment and recent performance for a stock",
		Schema:      json.RawMessage(symbolSchema),
		Fn: symbolHandler(func(ctx context.Context, symbol string) (string, error) {
			return ext.GetCurrentMarketSentiment(ctx, symbol)
		}),
	})

	r.register(Tool{
		Name:        "make_investment_decision",
		Description: "Make the final investment recommendation from bull and bear arguments",
		Schema:      json.RawMessage(decisionSchema),
		Fn: func(ctx context.Context, args map[string]any) (string, error) {
			symbol, err := stringArg(args, "stock_symbol")
			if err != nil {
				return "", err
			}
			// Empty argument blocks are valid and score one point each
			bull, _ := args["bull_points"].(string)
			bear, _ := args["bear_points"].(string)
			return research.MakeInvestmentDecision(ctx, symbol, bull, bear), nil
		},
	})

	return r
}

func (r *Registry) register(t Tool) {
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
}

// List returns all tools in registration order
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Call invokes a tool by name
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Fn(ctx, args)
}

// symbolHandler adapts a single-symbol function to the tool handler signature
func symbolHandler(fn func(ctx context.Context, symbol string) (string, error)) Handler {
	return func(ctx context.Context, args map[string]any) (string, error) {
		symbol, err := stringArg(args, "stock_symbol")
		if err != nil {
			return "", err
		}
		return fn(ctx, symbol)
	}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidArgs, key)
	}
	return v, nil
}
