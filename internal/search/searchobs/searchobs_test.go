package searchobs

import (
	"context"
	"errors"
	"testing"

	"stock-research-bot/internal/types"
)

type fakeProvider struct {
	results []types.SearchResult
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Search(ctx context.Context, query string) ([]types.SearchResult, error) {
	f.calls++
	return f.results, f.err
}

func TestWrapDelegates(t *testing.T) {
	inner := &fakeProvider{results: []types.SearchResult{{Title: "One"}}}
	wrapped := Wrap(inner)

	if wrapped.Name() != "fake" {
		t.Errorf("Expected wrapped name fake, got %s", wrapped.Name())
	}

	results, err := wrapped.Search(context.Background(), "ACME news")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].Title != "One" {
		t.Errorf("Unexpected results: %+v", results)
	}
	if inner.calls != 1 {
		t.Errorf("Expected 1 delegated call, got %d", inner.calls)
	}
}

func TestWrapPropagatesError(t *testing.T) {
	boom := errors.New("provider down")
	wrapped := Wrap(&fakeProvider{err: boom})

	if _, err := wrapped.Search(context.Background(), "ACME"); !errors.Is(err, boom) {
		t.Errorf("Expected provider error, got %v", err)
	}
}
