// Package trace records chain verdicts as append-only JSONL, one file per
// day. The CLI uses it to leave an inspectable record of dry-run checks.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jgornowich/log4cplus/api"
)

// Record is one traced chain evaluation.
type Record struct {
	Timestamp time.Time     `json:"timestamp"`
	Level     string        `json:"level"`
	Message   string        `json:"message,omitempty"`
	NDC       string        `json:"ndc,omitempty"`
	Verdict   api.Result    `json:"verdict"`
	Filter    string        `json:"filter,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Writer appends records to date-named JSONL files in a directory.
type Writer struct {
	mu          sync.Mutex
	dir         string
	currentDate string
	file        *os.File
	writer      *bufio.Writer
}

// NewWriter creates a trace writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Write appends one record and flushes it to disk.
func (w *Writer) Write(record *Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	dateStr := record.Timestamp.Format("2006-01-02")
	if dateStr != w.currentDate {
		if err := w.rotate(dateStr); err != nil {
			return err
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling trace record: %w", err)
	}
	if _, err := w.writer.Write(data); err != nil {
		return err
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return err
	}
	return w.writer.Flush()
}

func (w *Writer) rotate(dateStr string) error {
	if w.file != nil {
		w.writer.Flush()
		w.file.Close()
	}

	path := filepath.Join(w.dir, "trace-"+dateStr+".jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}

	w.file = f
	w.writer = bufio.NewWriter(f)
	w.currentDate = dateStr
	return nil
}

// Close flushes and closes the current trace file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		return err
	}
	err := w.file.Close()
	w.file = nil
	w.writer = nil
	return err
}
