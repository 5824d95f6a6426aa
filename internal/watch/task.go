// Package watch holds the watch's timer-driven state machines: the clock
// reading, stopwatch, countdown and screen carousel. Nothing here renders;
// callers read state back and draw it.
package watch

// Task is the handle of a repeating tick owned by one state machine.
// Each scheduled tick carries the tag it was started with; once the task is
// restarted or cancelled, older tags are dead and their ticks are dropped.
// That keeps at most one live tick chain per timer.
type Task struct {
	tag  int
	live bool
}

// Start invalidates any previous chain and returns the tag for the new one.
func (t *Task) Start() int {
	t.tag++
	t.live = true
	return t.tag
}

// Cancel kills the current chain.
func (t *Task) Cancel() {
	t.tag++
	t.live = false
}

// Live reports whether a tick carrying tag belongs to the current chain.
func (t Task) Live(tag int) bool {
	return t.live && tag == t.tag
}

// Tag returns the current chain's tag.
func (t Task) Tag() int { return t.tag }
