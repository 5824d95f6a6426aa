package watch

import (
	"fmt"
	"time"
)

const (
	// DefaultCountdownSeconds is the length a fresh countdown starts with.
	DefaultCountdownSeconds = 300
	// CountdownInterval is the tick period; each tick removes one second.
	CountdownInterval = time.Second
)

type Countdown struct {
	remaining int
	original  int
	running   bool
	task      Task
}

func NewCountdown(seconds int) Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return Countdown{remaining: seconds, original: seconds}
}

// Adjust shifts the countdown length by delta seconds, clamped at zero.
// The result becomes both the remaining and the original length. While
// running it does nothing and returns false.
func (c *Countdown) Adjust(delta int) bool {
	if c.running {
		return false
	}
	c.remaining = max(0, c.remaining+delta)
	c.original = c.remaining
	return true
}

// Toggle stops a running countdown or starts a stopped one. A countdown
// that already reached zero is rewound to its original length first; if
// that length is zero there is nothing to count and it stays stopped.
func (c *Countdown) Toggle() (tag int, started bool) {
	if c.running {
		c.running = false
		c.task.Cancel()
		return 0, false
	}
	if c.remaining <= 0 {
		c.remaining = c.original
	}
	if c.remaining <= 0 {
		return 0, false
	}
	c.running = true
	return c.task.Start(), true
}

// Tick removes one second if tag is live. It returns true exactly once,
// on the tick that reaches zero; that tick also stops the countdown.
func (c *Countdown) Tick(tag int) (completed bool) {
	if !c.running || !c.task.Live(tag) {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	c.task.Cancel()
	return true
}

func (c Countdown) Running() bool  { return c.running }
func (c Countdown) Remaining() int { return c.remaining }
func (c Countdown) Original() int  { return c.original }
func (c Countdown) Tag() int       { return c.task.Tag() }

// Progress is the elapsed fraction in [0,1]; zero when the length is zero.
func (c Countdown) Progress() float64 {
	if c.original <= 0 {
		return 0
	}
	p := float64(c.original-c.remaining) / float64(c.original)
	return min(max(p, 0), 1)
}

// String renders MM:SS.
func (c Countdown) String() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
