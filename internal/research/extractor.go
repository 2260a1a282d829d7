package research

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/quotes"
	"stock-research-bot/internal/trace"
)

// Truncation and cap constants are part of the output contract and are kept
// as-is for behavioral compatibility.
const (
	maxSignals        = 2
	maxTokens         = 3
	newsTruncateChars = 200
	dataTruncateChars = 150
)

var (
	percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	downRe    = regexp.MustCompile(`down\s+(\d+(?:\.\d+)?)\s*%`)
)

var (
	positiveKeywords = []string{"profit", "growth", "upgrade", "beat", "strong", "positive", "bullish"}
	negativeKeywords = []string{"loss", "decline", "risk", "warning", "downgrade", "weak", "negative", "bearish", "concern"}
	trendTerms       = []string{"increase", "growth", "up", "higher", "rose", "gained"}
	riskTerms        = []string{"risk", "volatile", "uncertain", "concern", "debt", "competition"}
	marketKeywords   = []string{"price", "trading", "market", "analyst"}
)

// Extractor runs keyword and pattern heuristics over web-search results to
// surface bull, bear, and neutral talking points about a stock symbol.
type Extractor struct {
	search interfaces.SearchProvider
	quotes interfaces.QuoteProvider
}

// NewExtractor creates a signal extractor backed by the given search provider.
// The quote provider may be nil, in which case no live quote enrichment happens.
func NewExtractor(search interfaces.SearchProvider, quoteProvider interfaces.QuoteProvider) *Extractor {
	if quoteProvider == nil {
		quoteProvider = quotes.NewNoop()
	}
	return &Extractor{
		search: search,
		quotes: quoteProvider,
	}
}

// extractSignals searches and collects keyword-matching results as bulleted
// signal lines. Absence of signal is a reportable outcome, not an error.
func (e *Extractor) extractSignals(ctx context.Context, query string, keywords []string, prefix, defaultMsg, symbol string) (string, error) {
	results, err := e.search.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("search failed for %s: %w", symbol, err)
	}

	signals := []string{}
	for _, result := range results {
		content := strings.ToLower(result.Content)
		if containsAny(content, keywords) {
			signals = append(signals, formatSignal(result.Title, result.Content, newsTruncateChars))
		}
	}

	if len(signals) > 0 {
		if len(signals) > maxSignals {
			signals = signals[:maxSignals]
		}
		return prefix + " for " + symbol + ":\n" + strings.Join(signals, "\n"), nil
	}
	return prefix + " " + symbol + ": " + defaultMsg, nil
}

// FindPositiveNews searches for positive news and developments about a stock
func (e *Extractor) FindPositiveNews(ctx context.Context, symbol string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "research.FindPositiveNews")
	defer span.End()

	query := fmt.Sprintf("%s stock positive news earnings growth revenue profit upgrade", symbol)
	return e.extractSignals(ctx, query, positiveKeywords,
		"🐂 POSITIVE SIGNALS",
		"Limited positive news found, but that could mean it's undervalued!",
		symbol)
}

// FindNegativeNews searches for negative news and risks about a stock
func (e *Extractor) FindNegativeNews(ctx context.Context, symbol string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "research.FindNegativeNews")
	defer span.End()

	query := fmt.Sprintf("%s stock negative news risks decline losses downgrade warning", symbol)
	return e.extractSignals(ctx, query, negativeKeywords,
		"🐻 WARNING SIGNALS",
		"No major red flags found, but market volatility always poses risks!",
		symbol)
}

// CalculateGrowthPotential extracts growth percentages and bullish indicators
func (e *Extractor) CalculateGrowthPotential(ctx context.Context, symbol string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "research.CalculateGrowthPotential")
	defer span.End()

	query := fmt.Sprintf("%s stock price earnings revenue growth rate market cap", symbol)
	results, err := e.search.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("growth search failed for %s: %w", symbol, err)
	}

	indicators := []string{}
	for _, result := range results {
		content := strings.ToLower(result.Content)

		// Growth percentages
		matches := percentRe.FindAllStringSubmatch(content, -1)
		for i, m := range matches {
			if i >= maxTokens {
				break
			}
			indicators = append(indicators, m[1]+"%")
		}

		// Positive growth terms
		if containsAny(content, trendTerms) {
			indicators = append(indicators, "Positive trend detected")
		}
	}

	if len(indicators) > 0 {
		if len(indicators) > maxTokens {
			indicators = indicators[:maxTokens]
		}
		return fmt.Sprintf("📈 GROWTH POTENTIAL for %s: %s", symbol, strings.Join(indicators, ", ")), nil
	}
	return fmt.Sprintf("📈 %s: Growth data limited, but could indicate overlooked opportunity!", symbol), nil
}

// AssessMarketRisks extracts risk factors and bearish indicators
func (e *Extractor) AssessMarketRisks(ctx context.Context, symbol string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "research.AssessMarketRisks")
	defer span.End()

	query := fmt.Sprintf("%s stock market risks volatility debt competition regulatory concerns", symbol)
	results, err := e.search.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("risk search failed for %s: %w", symbol, err)
	}

	riskFactors := []string{}
	for _, result := range results {
		content := strings.ToLower(result.Content)

		if containsAny(content, riskTerms) {
			riskFactors = append(riskFactors, "Market risk identified")
		}

		// Negative percentage moves
		matches := downRe.FindAllStringSubmatch(content, -1)
		for i, m := range matches {
			if i >= 2 {
				break
			}
			riskFactors = append(riskFactors, "Down "+m[1]+"%")
		}
	}

	if len(riskFactors) > 0 {
		if len(riskFactors) > maxTokens {
			riskFactors = riskFactors[:maxTokens]
		}
		return fmt.Sprintf("⚠️ RISK ASSESSMENT for %s: %s", symbol, strings.Join(riskFactors, ", ")), nil
	}
	return fmt.Sprintf("⚠️ %s: Risk factors unclear - proceed with extreme caution!", symbol), nil
}

// GetCurrentMarketSentiment surfaces recent market data and analyst coverage.
// When a live quote source is configured, the last traded price is appended.
func (e *Extractor) GetCurrentMarketSentiment(ctx context.Context, symbol string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "research.GetCurrentMarketSentiment")
	defer span.End()

	query := fmt.Sprintf("%s stock current price today market sentiment analyst rating", symbol)
	results, err := e.search.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("sentiment search failed for %s: %w", symbol, err)
	}

	sentimentData := []string{}
	for _, result := range results {
		// Sentiment matches against title and content together
		if containsAny(strings.ToLower(result.Title+result.Content), marketKeywords) {
			sentimentData = append(sentimentData, formatSignal(result.Title, result.Content, dataTruncateChars))
		}
	}

	var out string
	if len(sentimentData) > 0 {
		if len(sentimentData) > maxSignals {
			sentimentData = sentimentData[:maxSignals]
		}
		out = "📊 CURRENT MARKET DATA for " + symbol + ":\n" + strings.Join(sentimentData, "\n")
	} else {
		out = "📊 CURRENT MARKET DATA " + symbol + ": Market data limited - need more information for decision"
	}

	if price, err := e.quotes.LTP(ctx, symbol); err == nil {
		out += fmt.Sprintf("\n• Live quote: %s last traded at %.2f", symbol, price)
	} else if !errors.Is(err, quotes.ErrNoQuote) {
		logger.Warn(ctx, "Live quote unavailable", "symbol", symbol, "error", err)
	}

	return out, nil
}

// formatSignal builds one bulleted signal line with truncated content.
// Truncation counts characters, not bytes, so multibyte content stays valid.
func formatSignal(title, content string, truncate int) string {
	if title == "" {
		title = "News"
	}
	if r := []rune(content); len(r) > truncate {
		content = string(r[:truncate])
	}
	return "• " + title + ": " + content + "..."
}

// containsAny reports whether any keyword is a substring of text
func containsAny(text string, keywords []string) bool {
	for _, word := range keywords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
