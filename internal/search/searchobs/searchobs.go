package searchobs

import (
	"context"

	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/trace"
	"stock-research-bot/internal/types"
)

// observableProvider wraps a SearchProvider with observability (logging & tracing)
type observableProvider struct {
	provider interfaces.SearchProvider
}

// Compile-time interface check
var _ interfaces.SearchProvider = (*observableProvider)(nil)

// Wrap wraps a search provider with observability middleware
func Wrap(provider interfaces.SearchProvider) interfaces.SearchProvider {
	return &observableProvider{
		provider: provider,
	}
}

// Name returns the underlying provider's identifier
func (op *observableProvider) Name() string {
	return op.provider.Name()
}

// Search performs a search with observability
func (op *observableProvider) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	ctx, span := trace.StartSpan(ctx, "search.Search")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Issuing web search",
		"provider", op.provider.Name(),
		"query", query,
	)

	results, err := op.provider.Search(ctx, query)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Web search failed", err,
			"provider", op.provider.Name(),
			"query", query,
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Web search completed",
		"provider", op.provider.Name(),
		"query", query,
		"results", len(results),
	)

	return results, nil
}
