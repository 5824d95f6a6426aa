package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/prefs"
	"github.com/sadopc/watchface/internal/watch"
)

func renderDigital(r watch.Reading, p prefs.Preferences) string {
	t := r.Digital(p.Hour24, p.ShowSeconds)
	if !p.Hour24 {
		t += " " + r.Meridiem()
	}

	rows := []string{
		bigText(t),
		"",
		titleStyle.Render(r.DayName()),
		mutedStyle.Render(r.DateLine()),
	}
	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, rows...),
	)
}

// bigText spaces the characters out for a larger readout.
func bigText(s string) string {
	var out []rune
	for i, c := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return timeStyle.Render(string(out))
}
