package tui

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/sim"
)

func renderWeather(w *sim.Weather, width int) string {
	c := w.Current()
	icon := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Bold(true).Render(c.Icon)
	temp := timeStyle.Render(c.Temperature())
	summary := titleStyle.Render(c.Summary)

	chartWidth := width / 3
	if chartWidth < 12 {
		chartWidth = 12
	}
	spark := sparkline.New(chartWidth, 3,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorAccent)),
	)
	spark.PushAll(w.History())
	spark.Draw()

	return panelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			icon+"  "+temp,
			summary,
			"",
			spark.View(),
			mutedStyle.Render("trend"),
		),
	)
}
