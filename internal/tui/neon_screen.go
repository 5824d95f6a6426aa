package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/prefs"
	"github.com/sadopc/watchface/internal/watch"
)

// neonFont is a 3x5 segment font for the digits.
var neonFont = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

func renderNeon(r watch.Reading, p prefs.Preferences) string {
	buf := r.Neon(p.Hour24)
	digits := neonDigits(buf[:2] + ":" + buf[2:])

	caption := mutedStyle.Render(r.NeonCaption())
	if !p.Hour24 {
		caption = mutedStyle.Render(r.NeonCaption() + "  " + r.Meridiem())
	}
	return activePanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, neonStyle.Render(digits), "", caption),
	)
}

func neonDigits(s string) string {
	var rows [5][]string
	for _, c := range s {
		glyph, ok := neonFont[c]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}
	lines := make([]string, len(rows))
	for i, parts := range rows {
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}
