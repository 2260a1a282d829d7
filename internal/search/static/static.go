package static

import (
	"context"
	"fmt"
	"strings"

	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/types"
)

// Provider returns deterministic canned results for DRY_RUN mode and tests.
// Results are keyed off the query shape so each research tool sees plausible
// material without network access.
type Provider struct {
	maxResults int
}

var _ interfaces.SearchProvider = (*Provider)(nil)

// New creates a static search provider
func New(maxResults int) *Provider {
	return &Provider{maxResults: maxResults}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "static"
}

// Search returns canned results matching the query intent
func (p *Provider) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	symbol := firstToken(query)

	var results []types.SearchResult
	switch {
	case strings.Contains(query, "positive news"):
		results = []types.SearchResult{
			{
				Title:   fmt.Sprintf("%s beats quarterly estimates", symbol),
				Content: fmt.Sprintf("%s reported strong profit growth this quarter, with revenue up 12.5%% year over year and an analyst upgrade following the beat.", symbol),
			},
			{
				Title:   fmt.Sprintf("%s expands into new markets", symbol),
				Content: fmt.Sprintf("Positive momentum continues for %s as management signals bullish guidance for the coming year.", symbol),
			},
			{
				Title:   fmt.Sprintf("Sector roundup featuring %s", symbol),
				Content: "Broad market commentary with no company specifics.",
			},
		}
	case strings.Contains(query, "negative news"):
		results = []types.SearchResult{
			{
				Title:   fmt.Sprintf("%s faces margin pressure", symbol),
				Content: fmt.Sprintf("Analysts flag a risk of earnings decline for %s amid a sector-wide warning on input costs.", symbol),
			},
			{
				Title:   fmt.Sprintf("Competition intensifies for %s", symbol),
				Content: fmt.Sprintf("A new entrant raises concern about %s market share; one broker issued a downgrade.", symbol),
			},
		}
	case strings.Contains(query, "growth rate"):
		results = []types.SearchResult{
			{
				Title:   fmt.Sprintf("%s growth snapshot", symbol),
				Content: fmt.Sprintf("%s revenue rose 8%% last quarter while earnings gained 15.2%%, a higher growth rate than peers.", symbol),
			},
		}
	case strings.Contains(query, "volatility"):
		results = []types.SearchResult{
			{
				Title:   fmt.Sprintf("%s risk overview", symbol),
				Content: fmt.Sprintf("%s carries elevated debt and operates in a volatile segment; shares are down 5%% this month.", symbol),
			},
		}
	case strings.Contains(query, "sentiment"):
		results = []types.SearchResult{
			{
				Title:   fmt.Sprintf("%s trading update", symbol),
				Content: fmt.Sprintf("%s is trading near its weekly average price; the consensus analyst rating is hold with mixed market sentiment.", symbol),
			},
		}
	default:
		results = []types.SearchResult{
			{
				Title:   fmt.Sprintf("%s news", symbol),
				Content: fmt.Sprintf("General coverage of %s with no notable signals.", symbol),
			},
		}
	}

	if len(results) > p.maxResults {
		results = results[:p.maxResults]
	}
	return results, nil
}

func firstToken(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return query
	}
	return fields[0]
}
