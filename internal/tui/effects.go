package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/watchface/internal/watch"
)

const (
	exitDuration = 250 * time.Millisecond
	enterDelay   = 50 * time.Millisecond

	// Six flashes of 500 ms, each an on and an off half.
	flashSteps    = 12
	flashInterval = 250 * time.Millisecond
)

type transitionPhase int

const (
	phaseSettled transitionPhase = iota
	phaseExiting
	phaseEntering
)

// transitionState animates a carousel change: the outgoing face slides off
// toward the travel side, then the incoming face enters from the other side
// and settles.
type transitionState struct {
	tr    watch.Transition
	phase transitionPhase
	task  watch.Task
}

// begin replaces any animation in flight.
func (t *transitionState) begin(tr watch.Transition) tea.Cmd {
	t.tr = tr
	t.phase = phaseExiting
	tag := t.task.Start()
	return tea.Tick(exitDuration, func(time.Time) tea.Msg {
		return transitionMsg{tag: tag}
	})
}

func (t *transitionState) advance(tag int) tea.Cmd {
	if !t.task.Live(tag) {
		return nil
	}
	switch t.phase {
	case phaseExiting:
		t.phase = phaseEntering
		return tea.Tick(enterDelay, func(time.Time) tea.Msg {
			return transitionMsg{tag: tag}
		})
	default:
		t.phase = phaseSettled
		t.task.Cancel()
		return nil
	}
}

// visible is the screen to draw: the outgoing one while it exits.
func (t transitionState) visible(active int) int {
	if t.phase == phaseExiting {
		return t.tr.From
	}
	return active
}

// offset is -1 for a face pushed left, 1 for right, 0 when centered.
func (t transitionState) offset() int {
	forward := t.tr.Direction == watch.Forward
	switch t.phase {
	case phaseExiting:
		if forward {
			return -1
		}
		return 1
	case phaseEntering:
		if forward {
			return 1
		}
		return -1
	}
	return 0
}

// flashState blinks the timer panel after the countdown completes.
type flashState struct {
	steps int
	task  watch.Task
}

func (f *flashState) start() tea.Cmd {
	f.steps = flashSteps
	tag := f.task.Start()
	return flashTickCmd(tag)
}

func (f *flashState) advance(tag int) tea.Cmd {
	if !f.task.Live(tag) {
		return nil
	}
	f.steps--
	if f.steps <= 0 {
		f.steps = 0
		f.task.Cancel()
		return nil
	}
	return flashTickCmd(tag)
}

// lit reports whether the panel is in the bright half of a flash.
func (f flashState) lit() bool { return f.steps > 0 && f.steps%2 == 0 }

func flashTickCmd(tag int) tea.Cmd {
	return tea.Tick(flashInterval, func(time.Time) tea.Msg {
		return flashTickMsg{tag: tag}
	})
}
