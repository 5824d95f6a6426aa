// Package gesture classifies drag and swipe gestures into carousel
// navigation. Touch and pointer input go through the same detector with the
// same thresholds.
package gesture

import "math"

// Source identifies the input device a gesture came from.
type Source int

const (
	SourceTouch Source = iota
	SourcePointer
)

// Action is the navigation a finished gesture asks for.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	}
	return "none"
}

// Thresholds are in pixels.
type Thresholds struct {
	// Move is the displacement on either axis that turns a press into a swipe.
	Move float64
	// Commit is the horizontal displacement required at release.
	Commit float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Move: 30, Commit: 50}
}

// Detector follows one gesture at a time.
type Detector struct {
	th     Thresholds
	active bool
	source Source
	startX float64
	startY float64
	swiped bool
}

func NewDetector(th Thresholds) *Detector {
	if th.Move <= 0 || th.Commit <= 0 {
		th = DefaultThresholds()
	}
	return &Detector{th: th}
}

// Begin starts a gesture at (x, y), abandoning any gesture in progress.
func (d *Detector) Begin(src Source, x, y float64) {
	d.active = true
	d.source = src
	d.startX, d.startY = x, y
	d.swiped = false
}

// Move records an intermediate position. Moves from another source, or with
// no gesture in progress, are ignored.
func (d *Detector) Move(src Source, x, y float64) {
	if !d.active || src != d.source {
		return
	}
	if math.Abs(x-d.startX) > d.th.Move || math.Abs(y-d.startY) > d.th.Move {
		d.swiped = true
	}
}

// End finishes the gesture at (x, y) and returns the requested navigation.
func (d *Detector) End(src Source, x, y float64) Action {
	if !d.active || src != d.source {
		return ActionNone
	}
	d.active = false
	return Classify(d.th, x-d.startX, y-d.startY, d.swiped)
}

// Classify maps a release displacement to an action. Only a gesture that
// crossed the move threshold, is horizontal-dominant and went past the
// commit threshold navigates: rightward goes back, leftward goes forward.
func Classify(th Thresholds, dx, dy float64, swiped bool) Action {
	if !swiped || math.Abs(dx) <= math.Abs(dy) {
		return ActionNone
	}
	switch {
	case dx > th.Commit:
		return ActionPrevious
	case dx < -th.Commit:
		return ActionNext
	}
	return ActionNone
}
