package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/watch"
)

func renderStopwatch(sw watch.Stopwatch) string {
	title := titleStyle.Render("Stopwatch")

	style := timeStyle
	state := mutedStyle.Render("stopped")
	if sw.Running() {
		style = timerRunningStyle
		state = successStyle.Render("● running")
	}
	readout := style.Render(neonDigitsOrText(sw.String()))

	hint := mutedStyle.Render("space: start/stop  r: reset")
	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, title, "", readout, "", state, hint),
	)
}

// neonDigitsOrText draws s in the segment font, falling back to spaced text
// for glyphs the font lacks.
func neonDigitsOrText(s string) string {
	for _, c := range s {
		if _, ok := neonFont[c]; !ok {
			return bigText(s)
		}
	}
	return neonDigits(s)
}
