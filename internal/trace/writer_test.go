package trace

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jgornowich/log4cplus/api"
)

func TestWriter_JSONL(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	records := []*Record{
		{Timestamp: ts, Level: "INFO", Message: "info log message", Verdict: api.Accept},
		{Timestamp: ts, Level: "ERROR", Message: "error log message", Verdict: api.Deny, Filter: "deny-all"},
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "trace-2026-03-14.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var got []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			t.Fatalf("unparseable trace line: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Verdict != api.Accept || got[1].Verdict != api.Deny {
		t.Errorf("unexpected verdicts: %s, %s", got[0].Verdict, got[1].Verdict)
	}
	if got[1].Filter != "deny-all" {
		t.Errorf("expected deciding filter name, got %q", got[1].Filter)
	}
}

func TestWriter_FillsTimestamp(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	r := &Record{Level: "WARN", Verdict: api.Accept}
	if err := w.Write(r); err != nil {
		t.Fatal(err)
	}
	if r.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}
