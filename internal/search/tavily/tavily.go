package tavily

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stock-research-bot/internal/api"
	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/types"
)

const apiURL = "https://api.tavily.com/search"

// Client is a Tavily Search API client
type Client struct {
	apiKey     string
	maxResults int
	url        string
	api        *api.Client
}

var _ interfaces.SearchProvider = (*Client)(nil)

// New creates a new Tavily search client
func New(apiKey string, maxResults int, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		maxResults: maxResults,
		url:        apiURL,
		api: api.NewClient(
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
	}
}

// searchRequest is the Tavily search request payload
type searchRequest struct {
	Query       string `json:"query"`
	APIKey      string `json:"api_key"`
	SearchDepth string `json:"search_depth,omitempty"` // "basic" or "advanced"
	MaxResults  int    `json:"max_results,omitempty"`
}

// searchResult is a single result from Tavily
type searchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// searchResponse is the Tavily search response
type searchResponse struct {
	Query        string         `json:"query"`
	Results      []searchResult `json:"results"`
	ResponseTime float64        `json:"response_time"`
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "tavily"
}

// Search performs a search using the Tavily API
func (c *Client) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	reqBody := searchRequest{
		Query:       query,
		APIKey:      c.apiKey,
		SearchDepth: "basic",
		MaxResults:  c.maxResults,
	}

	req := api.NewRequest(http.MethodPost, c.url).
		WithContext(ctx).
		WithBody(reqBody)

	resp, err := c.api.DoWithRetry(req, nil)
	if err != nil {
		return nil, fmt.Errorf("tavily search failed: %w", err)
	}

	var sr searchResponse
	if err := resp.ParseJSON(&sr); err != nil {
		return nil, fmt.Errorf("tavily response invalid: %w", err)
	}

	results := make([]types.SearchResult, 0, len(sr.Results))
	for _, r := range sr.Results {
		if len(results) >= c.maxResults {
			break
		}
		results = append(results, types.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Score:   r.Score,
		})
	}

	logger.Debug(ctx, "Tavily search completed", "query", query, "results", len(results))
	return results, nil
}
