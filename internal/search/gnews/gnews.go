package gnews

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stock-research-bot/internal/api"
	"stock-research-bot/internal/interfaces"
	"stock-research-bot/internal/logger"
	"stock-research-bot/internal/types"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Scraper searches Google News and scrapes result snippets. It is the
// fallback provider when no search API key is configured.
type Scraper struct {
	timeout    time.Duration
	maxResults int
	api        *api.Client
}

var _ interfaces.SearchProvider = (*Scraper)(nil)

// New creates a new Google News scraper
func New(maxResults int, timeout time.Duration) *Scraper {
	return &Scraper{
		timeout:    timeout,
		maxResults: maxResults,
		api:        api.NewClient(api.WithTimeout(timeout)),
	}
}

// Name returns the provider identifier
func (s *Scraper) Name() string {
	return "gnews"
}

// Search scrapes Google News results for the query
func (s *Scraper) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	results := []types.SearchResult{}

	c := colly.NewCollector(
		colly.AllowedDomains("news.google.com", "www.google.com"),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if len(results) >= s.maxResults {
			return
		}

		title := strings.TrimSpace(e.ChildText("h3, h4"))
		link := e.ChildAttr("a", "href")
		if title == "" || link == "" {
			return
		}

		// Clean up Google News redirect URL
		if strings.HasPrefix(link, "./articles/") {
			link = "https://news.google.com" + link[1:]
		}

		results = append(results, types.SearchResult{
			Title: title,
			URL:   link,
		})
	})

	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en-US&gl=US&ceid=US:en", url.QueryEscape(query))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to scrape Google News: %w", err)
	}
	c.Wait()

	// Google News listings carry no body text, so fetch each article for a snippet
	for i := range results {
		content := s.fetchSnippet(ctx, results[i].URL)
		if content != "" {
			results[i].Content = content
		} else {
			results[i].Content = results[i].Title
		}
	}

	logger.Debug(ctx, "Google News search completed", "query", query, "results", len(results))
	return results, nil
}

// fetchSnippet fetches an article page and extracts leading paragraph text
func (s *Scraper) fetchSnippet(ctx context.Context, articleURL string) string {
	resp, err := s.api.GET(ctx, articleURL, api.BrowserHeaders())
	if err != nil {
		logger.Debug(ctx, "Failed to fetch article", "url", articleURL, "error", err)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return ""
	}

	paragraphs := []string{}
	doc.Find("article p, div.article-body p, div.story-content p, main p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 20 {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < 3
	})

	snippet := strings.Join(paragraphs, " ")
	if r := []rune(snippet); len(r) > 500 {
		snippet = string(r[:500])
	}
	return snippet
}
