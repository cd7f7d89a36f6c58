// Package output persists search results as a JSON document that is
// rewritten after every change, so a crash never loses an accepted result.
package output

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Document is the on-disk layout of an output file.
type Document struct {
	RunID         string    `json:"runId"`
	Network       string    `json:"network,omitempty"`
	SearchTerms   []string  `json:"searchTerms"`
	CaseSensitive bool      `json:"caseSensitive"`
	StartTime     time.Time `json:"startTime"`
	Results       []Result  `json:"results"`
	Stats         Stats     `json:"stats"`
}

// Result is one accepted match.
type Result struct {
	ID          int       `json:"id"`
	PublicKey   string    `json:"publicKey"`
	PrivateKey  string    `json:"privateKey"`
	MatchedTerm string    `json:"matchedTerm"`
	Quality     int       `json:"quality"`
	Timestamp   time.Time `json:"timestamp"`
	Attempts    uint64    `json:"attempts"`
}

// Stats is the running totals block. Rate is whole attempts per second.
type Stats struct {
	Found    int    `json:"found"`
	Attempts uint64 `json:"attempts"`
	Rate     int64  `json:"rate"`
}

// Writer implements generator.ResultSink on top of a single JSON file.
type Writer struct {
	path string

	mu  sync.Mutex
	doc Document
}

// NewWriter returns a writer for path. Nothing is written until Begin.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// DefaultPath returns the file name used when no output path is given.
func DefaultPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("vanity-%d.json", now.UnixMilli()))
}

// Path returns the file the writer persists to.
func (w *Writer) Path() string {
	return w.path
}

// Begin creates the document with an empty result list.
func (w *Writer) Begin(info generator.RunInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	terms := make([]string, len(info.Terms))
	copy(terms, info.Terms)

	w.doc = Document{
		RunID:         uuid.NewString(),
		Network:       info.Network,
		SearchTerms:   terms,
		CaseSensitive: info.CaseSensitive,
		StartTime:     info.StartTime.UTC(),
		Results:       []Result{},
	}
	return w.flush()
}

// Record appends rec and refreshes the stats block.
func (w *Writer) Record(rec generator.ResultRecord, stats generator.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.doc.Results = append(w.doc.Results, Result{
		ID:          rec.ID,
		PublicKey:   rec.Address,
		PrivateKey:  rec.PrivateKey,
		MatchedTerm: rec.Term,
		Quality:     rec.Quality,
		Timestamp:   rec.Timestamp.UTC(),
		Attempts:    rec.Attempts,
	})
	w.doc.Stats = toStats(stats)
	return w.flush()
}

// Finish writes the final stats.
func (w *Writer) Finish(stats generator.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.doc.Stats = toStats(stats)
	return w.flush()
}

func toStats(s generator.Snapshot) Stats {
	return Stats{
		Found:    s.Found,
		Attempts: s.Attempts,
		Rate:     int64(math.Round(s.Rate)),
	}
}

// flush replaces the file atomically: readers see either the previous
// document or the new one, never a partial write.
func (w *Writer) flush() error {
	data, err := json.MarshalIndent(w.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vanity-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("replace %s: %w", w.path, err)
	}
	return nil
}

// Load reads a document written by a Writer.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &doc, nil
}
