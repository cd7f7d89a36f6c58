package generator

import (
	"errors"
	"time"
)

var (
	// ErrAllWorkersFailed is returned when every worker stopped with an error.
	ErrAllWorkersFailed = errors.New("all workers failed")

	// ErrTimeout is the cancellation cause used for the run's wall-clock limit.
	ErrTimeout = errors.New("search timeout reached")
)

// StopReason explains why a run ended.
type StopReason int

const (
	StopLimit         StopReason = iota // Result limit reached
	StopCancelled                       // Cancelled by the caller (operator interrupt)
	StopTimeout                         // Wall-clock timeout expired
	StopWorkersFailed                   // No worker left running
)

// String returns a short description of the stop reason.
func (r StopReason) String() string {
	switch r {
	case StopLimit:
		return "limit reached"
	case StopCancelled:
		return "cancelled"
	case StopTimeout:
		return "timeout"
	case StopWorkersFailed:
		return "workers failed"
	default:
		return "unknown"
	}
}

// Summary holds the final statistics of a run.
type Summary struct {
	Results     []ResultRecord
	Attempts    uint64
	Elapsed     time.Duration
	AverageRate float64 // Attempts / elapsed seconds over the whole run
	RollingRate float64 // Last rolling average published
	Reason      StopReason
	Failures    []WorkerFailedEvent
}

// Found returns the number of results recorded.
func (s *Summary) Found() int {
	return len(s.Results)
}

// Snapshot returns the aggregate numbers of the summary.
func (s *Summary) Snapshot() Snapshot {
	return Snapshot{
		Found:    len(s.Results),
		Attempts: s.Attempts,
		Rate:     s.AverageRate,
	}
}

// RatePerSecond returns attempts divided by elapsed seconds, or 0 before any
// time has passed.
func RatePerSecond(attempts uint64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(attempts) / secs
}
