package gnews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestFetchSnippet(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<html><body><article>
			<p>First paragraph with enough text to keep.</p>
			<p>Second paragraph with enough text to keep.</p>
			<p>short</p>
			<p>Third paragraph with enough text to keep.</p>
			<p>Fourth paragraph should be beyond the limit.</p>
		</article></body></html>`)
	}))
	defer srv.Close()

	s := New(3, 5*time.Second)
	got := s.fetchSnippet(context.Background(), srv.URL)

	if gotUA == "" {
		t.Error("Expected a browser User-Agent header on the article fetch")
	}

	// Three substantial paragraphs at most; short ones are skipped
	if !strings.HasPrefix(got, "First paragraph") {
		t.Errorf("Unexpected snippet start: %q", got)
	}
	if strings.Contains(got, "short") || strings.Contains(got, "Fourth") {
		t.Errorf("Expected at most three substantial paragraphs, got %q", got)
	}
	if !strings.Contains(got, "Third paragraph") {
		t.Errorf("Expected third paragraph in snippet, got %q", got)
	}
}

func TestFetchSnippetTruncation(t *testing.T) {
	long := strings.Repeat("é", 600)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><article><p>%s</p></article></body></html>`, long)
	}))
	defer srv.Close()

	s := New(3, 5*time.Second)
	got := s.fetchSnippet(context.Background(), srv.URL)

	if !utf8.ValidString(got) {
		t.Fatalf("Expected valid UTF-8 snippet, got %q", got)
	}
	if n := len([]rune(got)); n != 500 {
		t.Errorf("Expected snippet capped at 500 characters, got %d", n)
	}
}

func TestFetchSnippetErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	s := New(3, 5*time.Second)
	if got := s.fetchSnippet(context.Background(), srv.URL); got != "" {
		t.Errorf("Expected empty snippet on HTTP error, got %q", got)
	}
}

func TestName(t *testing.T) {
	if got := New(3, time.Second).Name(); got != "gnews" {
		t.Errorf("Expected provider name gnews, got %s", got)
	}
}
