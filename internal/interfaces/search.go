package interfaces

import (
	"context"

	"stock-research-bot/internal/types"
)

// SearchProvider is the external web-search collaborator. Each call issues a
// single blocking search; implementations cap results at the configured
// maximum per call.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, query string) ([]types.SearchResult, error)
}
