package reslog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESEARCH_LOG_DIR", dir)

	entries := []Entry{
		{Symbol: "ACME", Action: "BUY", Confidence: "High", BullScore: 4, BearScore: 1},
		{Symbol: "WIDG", Action: "HOLD/RESEARCH MORE", Confidence: "Medium", BullScore: 1, BearScore: 1},
	}
	for _, e := range entries {
		if err := Append(e); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	name := time.Now().UTC().Format("2006-01-02") + ".txt"
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Expected daily log file: %v", err)
	}
	defer f.Close()

	var got []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("Invalid JSONL line: %v", err)
		}
		got = append(got, e)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got))
	}
	if got[0].Symbol != "ACME" || got[0].Action != "BUY" {
		t.Errorf("Unexpected first entry: %+v", got[0])
	}
	if got[0].Time == "" {
		t.Error("Expected timestamp to be set on append")
	}
}

func TestCompressOlder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESEARCH_LOG_DIR", dir)

	old := filepath.Join(dir, "2020-01-01.txt")
	if err := os.WriteFile(old, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().AddDate(0, 0, -10)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	recent := filepath.Join(dir, "2099-01-01.txt")
	if err := os.WriteFile(recent, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CompressOlder(7); err != nil {
		t.Fatalf("CompressOlder failed: %v", err)
	}

	if _, err := os.Stat(old + ".gz"); err != nil {
		t.Error("Expected old log to be gzipped")
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("Expected original old log to be removed")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Error("Expected recent log to be untouched")
	}
}

func TestCompressOlderDisabled(t *testing.T) {
	if err := CompressOlder(0); err != nil {
		t.Errorf("Expected no-op for zero retention, got %v", err)
	}
}
