package store

import "time"

// RunKind names the timer that produced a run.
type RunKind string

const (
	RunStopwatch RunKind = "stopwatch"
	RunCountdown RunKind = "countdown"
)

type Run struct {
	ID         int64
	Kind       RunKind
	StartedAt  time.Time
	DurationMS int64
	Completed  bool
	CreatedAt  time.Time
}

// Duration returns the run length as a time.Duration.
func (r Run) Duration() time.Duration {
	return time.Duration(r.DurationMS) * time.Millisecond
}

// RunFilter is used to filter runs in queries.
type RunFilter struct {
	Kind  RunKind
	From  *time.Time
	To    *time.Time
	Limit int
}

// DailySummary represents aggregated run time per kind per day.
type DailySummary struct {
	Date    string
	Kind    RunKind
	TotalMS int64
	Count   int
}
