package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/watch"
)

const timerBarWidth = 36

func renderTimer(c watch.Countdown, flashing bool) string {
	title := titleStyle.Render("Timer")

	style := timeStyle
	state := mutedStyle.Render("stopped")
	switch {
	case c.Running():
		style = timerRunningStyle
		state = warningStyle.Render("⏱ counting down")
	case c.Remaining() == 0 && c.Original() > 0:
		state = successStyle.Render("done")
	}
	readout := style.Render(neonDigitsOrText(c.String()))

	bar := progress.New(
		progress.WithSolidFill(string(colorAccent)),
		progress.WithoutPercentage(),
	)
	bar.Width = timerBarWidth
	bar.EmptyColor = string(colorSubtle)

	hint := mutedStyle.Render("space: start/stop  +/-: adjust 1 min")

	panel := panelStyle
	if flashing {
		panel = flashPanelStyle
	}
	return panel.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			title, "", readout, "", bar.ViewAs(c.Progress()), "", state, hint),
	)
}
