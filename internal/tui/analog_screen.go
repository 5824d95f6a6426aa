package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/watch"
)

// Face grid size. Cells are about twice as tall as wide, so x is stretched.
const (
	faceCols = 31
	faceRows = 15
)

type hand struct {
	angle  float64
	length float64 // fraction of the radius
	glyph  rune
	style  lipgloss.Style
}

func renderAnalog(r watch.Reading) string {
	grid := make([][]rune, faceRows)
	styles := make([][]*lipgloss.Style, faceRows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", faceCols))
		styles[y] = make([]*lipgloss.Style, faceCols)
	}

	cx, cy := float64(faceCols/2), float64(faceRows/2)
	ry := cy
	rx := ry * 2

	plot := func(angle, frac float64, glyph rune, st *lipgloss.Style) {
		rad := angle * math.Pi / 180
		x := int(math.Round(cx + math.Sin(rad)*rx*frac))
		y := int(math.Round(cy - math.Cos(rad)*ry*frac))
		if y < 0 || y >= faceRows || x < 0 || x >= faceCols {
			return
		}
		grid[y][x] = glyph
		styles[y][x] = st
	}

	// Hour marks
	for i := 0; i < 12; i++ {
		glyph := '·'
		if i%3 == 0 {
			glyph = '●'
		}
		plot(float64(i*30), 1, glyph, &mutedStyle)
	}

	hands := []hand{
		{angle: r.HourAngle(), length: 0.5, glyph: '█', style: titleStyle},
		{angle: r.MinuteAngle(), length: 0.75, glyph: '▓', style: accentStyle},
		{angle: r.SecondAngle(), length: 0.85, glyph: '·', style: warningStyle},
	}
	for i := range hands {
		h := &hands[i]
		for f := 0.1; f <= h.length; f += 0.05 {
			plot(h.angle, f, h.glyph, &h.style)
		}
	}
	plot(0, 0, '◉', &accentStyle)

	var lines []string
	for y := range grid {
		var b strings.Builder
		for x, c := range grid[y] {
			if st := styles[y][x]; st != nil {
				b.WriteString(st.Render(string(c)))
			} else {
				b.WriteRune(c)
			}
		}
		lines = append(lines, b.String())
	}

	readout := timeStyle.Render(r.Compact() + " " + r.Meridiem())
	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, strings.Join(lines, "\n"), "", readout),
	)
}
