package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/watchface/internal/store"
)

// screen is one panel of the carousel.
type screen int

const (
	screenDigital screen = iota
	screenAnalog
	screenNeon
	screenStopwatch
	screenTimer
	screenWeather
)

var screenNames = []string{"Digital", "Analog", "Neon", "Stopwatch", "Timer", "Weather"}

// --- Messages ---

type tickMsg time.Time

// Timer ticks carry the tag of the chain that scheduled them.
type stopwatchTickMsg struct{ tag int }
type countdownTickMsg struct{ tag int }
type flashTickMsg struct{ tag int }
type transitionMsg struct{ tag int }

type particleTickMsg time.Time
type shapeTickMsg time.Time
type batteryTickMsg struct{}
type weatherTickMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type runRecordedMsg struct {
	run *store.Run
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatMinutes(ms int64) string {
	return fmt.Sprintf("%.1fm", float64(ms)/60000)
}
