package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeOldLog(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "2020-01-01.txt")
	if err := os.WriteFile(p, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(p, past, past); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCompressOldLogs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESEARCH_LOG_DIR", dir)
	t.Setenv("RESEARCH_LOG_RETENTION_DAYS", "7")

	old := writeOldLog(t, dir)
	compressOldLogs(context.Background())

	if _, err := os.Stat(old + ".gz"); err != nil {
		t.Error("Expected old log to be compressed")
	}
}

func TestCompressOldLogsInvalidRetention(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESEARCH_LOG_DIR", dir)
	t.Setenv("RESEARCH_LOG_RETENTION_DAYS", "soon")

	// A malformed retention value must not be treated as a zero-day window
	old := writeOldLog(t, dir)
	compressOldLogs(context.Background())

	if _, err := os.Stat(old); err != nil {
		t.Error("Expected log to be untouched for invalid retention")
	}
	if _, err := os.Stat(old + ".gz"); !os.IsNotExist(err) {
		t.Error("Expected no compressed file for invalid retention")
	}
}
