package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearch(t *testing.T) {
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(searchResponse{
			Query: gotReq.Query,
			Results: []searchResult{
				{Title: "One", URL: "https://example.com/1", Content: "strong growth", Score: 0.9},
				{Title: "Two", URL: "https://example.com/2", Content: "profit beat", Score: 0.8},
				{Title: "Three", URL: "https://example.com/3", Content: "extra", Score: 0.7},
			},
		})
	}))
	defer srv.Close()

	c := New("test-key", 2, 5*time.Second)
	c.url = srv.URL

	results, err := c.Search(context.Background(), "ACME stock news")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotReq.APIKey != "test-key" {
		t.Errorf("Expected api_key in request body, got %q", gotReq.APIKey)
	}
	if gotReq.Query != "ACME stock news" {
		t.Errorf("Unexpected query: %q", gotReq.Query)
	}
	if gotReq.SearchDepth != "basic" {
		t.Errorf("Expected basic search depth, got %q", gotReq.SearchDepth)
	}

	// Results are capped at maxResults
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "One" || results[0].Score != 0.9 {
		t.Errorf("Unexpected first result: %+v", results[0])
	}
}

func TestSearchInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New("test-key", 2, 5*time.Second)
	c.url = srv.URL

	if _, err := c.Search(context.Background(), "ACME"); err == nil {
		t.Fatal("Expected error for invalid response body")
	}
}

func TestName(t *testing.T) {
	if got := New("k", 1, time.Second).Name(); got != "tavily" {
		t.Errorf("Expected provider name tavily, got %s", got)
	}
}
