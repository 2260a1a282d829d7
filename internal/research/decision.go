package research

import (
	"context"
	"fmt"
	"strings"

	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/types"
)

// Keyword sets that mark an argument block as carrying a strong signal.
var (
	strongBullKeywords = []string{"growth", "profit", "upgrade", "strong"}
	strongBearKeywords = []string{"risk", "decline", "warning", "concern"}
)

// countPoints scores an argument block by counting bullet-delimited segments.
// A block without bullets still counts as one point. Isolated here so the
// heuristic can be swapped for structured point lists without touching callers.
func countPoints(text string) int {
	if strings.Contains(text, "•") {
		return len(strings.Split(text, "•"))
	}
	return 1
}

// hasSignal reports whether any keyword appears in text, case-insensitively
func hasSignal(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, word := range keywords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Decide combines bull and bear argument blocks into a recommendation.
// Pure string and arithmetic logic; any input, including empty, is valid.
func Decide(symbol, bullPoints, bearPoints string) types.Recommendation {
	bullScore := countPoints(bullPoints)
	bearScore := countPoints(bearPoints)

	rec := types.Recommendation{
		Symbol:    symbol,
		BullScore: bullScore,
		BearScore: bearScore,
	}

	switch {
	case bullScore > bearScore && hasSignal(bullPoints, strongBullKeywords):
		rec.Action = types.ActionBuy
		rec.Confidence = types.ConfidenceHigh
	case bearScore > bullScore && hasSignal(bearPoints, strongBearKeywords):
		rec.Action = types.ActionSellAvoid
		rec.Confidence = types.ConfidenceHigh
	default:
		rec.Action = types.ActionHold
		rec.Confidence = types.ConfidenceMedium
	}

	return rec
}

// FormatRecommendation renders the final multi-line verdict text
func FormatRecommendation(rec types.Recommendation) string {
	return fmt.Sprintf("🎯 FINAL DECISION for %s: %s\n", rec.Symbol, rec.Action) +
		fmt.Sprintf("Confidence Level: %s\n", rec.Confidence) +
		fmt.Sprintf("Bull Arguments: %d points\n", rec.BullScore) +
		fmt.Sprintf("Bear Arguments: %d points\n", rec.BearScore) +
		fmt.Sprintf("Recommendation: Based on current analysis, %s position", strings.ToLower(rec.Action))
}

// MakeInvestmentDecision produces the final formatted recommendation from the
// bull and bear argument blocks, logging the outcome as a recommendation event.
func MakeInvestmentDecision(ctx context.Context, symbol, bullPoints, bearPoints string) string {
	rec := Decide(symbol, bullPoints, bearPoints)

	logger.Recommendation(ctx, symbol, rec.Action, rec.Confidence, rec.BullScore, rec.BearScore)

	return FormatRecommendation(rec)
}
