package generator

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

const (
	// DefaultBatchSize is the number of attempts a worker makes between
	// progress reports. Larger batches raise throughput but a worker only
	// notices shutdown between batches, so they also raise stop latency.
	DefaultBatchSize = 50000

	// MaxSpeedBatchSize is the batch size used in max-speed mode.
	MaxSpeedBatchSize = 100000

	// DefaultShutdownGrace bounds how long the coordinator waits for
	// workers to finish their current batch after a stop.
	DefaultShutdownGrace = 5 * time.Second
)

var (
	ErrNoTerms           = errors.New("at least one search term is required")
	ErrEmptyTerm         = errors.New("search terms must not be empty")
	ErrInvalidWorkers    = errors.New("worker count must be positive")
	ErrInvalidBatchSize  = errors.New("batch size must be positive")
	ErrInvalidMaxResults = errors.New("result limit must not be negative")
)

// Config holds the configuration for a vanity search.
// Use Normalize before handing it to a generator.
type Config struct {
	Terms         []string      // Target substrings, checked in this order
	CaseSensitive bool          // Compare terms and addresses without lowercasing
	Workers       int           // Number of concurrent workers
	BatchSize     int           // Attempts per worker between progress reports
	MaxResults    int           // Stop after this many results (0 = unbounded)
	ExactAttempts bool          // Keep attempts made before a match in the batch count
	Timeout       time.Duration // Optional wall-clock limit (0 = none)
	ShutdownGrace time.Duration // How long to wait for workers after a stop
}

// DefaultWorkers returns the worker count for the given speed mode.
func DefaultWorkers(maxSpeed bool) int {
	if maxSpeed {
		return runtime.NumCPU() * 2
	}
	return runtime.NumCPU()
}

// DefaultBatch returns the batch size for the given speed mode.
func DefaultBatch(maxSpeed bool) int {
	if maxSpeed {
		return MaxSpeedBatchSize
	}
	return DefaultBatchSize
}

// Normalize validates the configuration and returns a copy whose terms are
// lowercased unless the search is case-sensitive. The receiver is not modified.
func (c Config) Normalize() (Config, error) {
	if len(c.Terms) == 0 {
		return Config{}, ErrNoTerms
	}
	if c.Workers <= 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.BatchSize <= 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, c.BatchSize)
	}
	if c.MaxResults < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidMaxResults, c.MaxResults)
	}

	out := c
	out.Terms = make([]string, len(c.Terms))
	for i, term := range c.Terms {
		if term == "" {
			return Config{}, fmt.Errorf("%w: term #%d", ErrEmptyTerm, i+1)
		}
		if !c.CaseSensitive {
			term = strings.ToLower(term)
		}
		out.Terms[i] = term
	}

	if out.ShutdownGrace <= 0 {
		out.ShutdownGrace = DefaultShutdownGrace
	}
	return out, nil
}

// Unbounded reports whether the search has no result limit.
func (c Config) Unbounded() bool {
	return c.MaxResults == 0
}
