package watch

import (
	"fmt"
	"time"
)

// StopwatchQuantum is both the tick interval and the amount added per tick.
// Elapsed time is the count of delivered ticks, not a wall-clock delta, so it
// lags real time when ticks are delayed.
const StopwatchQuantum = 10 * time.Millisecond

type Stopwatch struct {
	elapsedMS int64
	running   bool
	task      Task
}

// Toggle starts or stops accumulation. When it starts, the returned tag must
// be attached to the tick that drives Tick.
func (s *Stopwatch) Toggle() (tag int, started bool) {
	if s.running {
		s.running = false
		s.task.Cancel()
		return 0, false
	}
	s.running = true
	return s.task.Start(), true
}

// Reset stops and zeroes the stopwatch, returning what had accumulated.
func (s *Stopwatch) Reset() time.Duration {
	prev := s.Elapsed()
	s.task.Cancel()
	s.running = false
	s.elapsedMS = 0
	return prev
}

// Tick adds one quantum if tag is live. It reports whether the tick counted.
func (s *Stopwatch) Tick(tag int) bool {
	if !s.running || !s.task.Live(tag) {
		return false
	}
	s.elapsedMS += StopwatchQuantum.Milliseconds()
	return true
}

func (s Stopwatch) Running() bool          { return s.running }
func (s Stopwatch) ElapsedMS() int64       { return s.elapsedMS }
func (s Stopwatch) Elapsed() time.Duration { return time.Duration(s.elapsedMS) * time.Millisecond }
func (s Stopwatch) Tag() int               { return s.task.Tag() }

// Parts splits elapsed time into minutes, seconds and centiseconds.
func (s Stopwatch) Parts() (minutes, seconds, centis int64) {
	e := s.elapsedMS
	return e / 60000, (e % 60000) / 1000, (e % 1000) / 10
}

// String renders MM:SS:CC.
func (s Stopwatch) String() string {
	m, sec, cs := s.Parts()
	return fmt.Sprintf("%02d:%02d:%02d", m, sec, cs)
}
