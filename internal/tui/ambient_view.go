package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/ambient"
)

// ambientRows is the height of the band drawn under the watch face.
const ambientRows = 4

// renderAmbient draws rising particles and drifting shapes into a band of
// the given size.
func renderAmbient(f *ambient.Field, width, height int, now time.Time) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}

	place := func(x, p float64, s string) {
		col := int(x * float64(width))
		row := height - 1 - int(math.Round(p*float64(height-1)))
		if col < 0 || col >= width || row < 0 || row >= height {
			return
		}
		cells[row][col] = s
	}

	particle := lipgloss.NewStyle().Foreground(colorAccent)
	for _, pt := range f.Particles() {
		p, ok := ambient.Progress(pt.Born, pt.Delay, pt.Duration, now)
		if !ok {
			continue
		}
		glyph := "·"
		if pt.Size >= 4 {
			glyph = "∘"
		}
		place(pt.X, p, particle.Render(glyph))
	}

	for _, sh := range f.Shapes() {
		p, ok := ambient.Progress(sh.Born, 0, sh.Duration, now)
		if !ok {
			continue
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(sh.Color)).Faint(true)
		place(sh.X, p, st.Render(sh.Kind.Glyph()))
	}

	lines := make([]string, height)
	for y := range cells {
		lines[y] = strings.Join(cells[y], "")
	}
	return strings.Join(lines, "\n")
}
