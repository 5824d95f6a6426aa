package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/config"
)

// Theme colours; reassigned by applyTheme.
var (
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorFg        lipgloss.Color
	colorMuted     lipgloss.Color
)

// Fixed status colours.
var (
	colorSuccess = lipgloss.Color("#2ECC71")
	colorWarning = lipgloss.Color("#FF9800")
	colorError   = lipgloss.Color("#F44336")
	colorSubtle  = lipgloss.Color("#414868")
)

// Styles
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	flashPanelStyle   lipgloss.Style
	timeStyle         lipgloss.Style
	timerRunningStyle lipgloss.Style
	neonStyle         lipgloss.Style
	titleStyle        lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
)

func init() {
	applyTheme(config.BuiltinThemes()[0])
}

// applyTheme rebuilds every style from th.
func applyTheme(th config.Theme) {
	colorPrimary = lipgloss.Color(th.Primary)
	colorSecondary = lipgloss.Color(th.Secondary)
	colorAccent = lipgloss.Color(th.Accent)
	colorFg = lipgloss.Color(th.Text)
	colorMuted = lipgloss.Color(th.Muted)

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2)

	flashPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(colorAccent).
		Background(colorPrimary).
		Padding(1, 2)

	timeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorFg).
		Align(lipgloss.Center)

	timerRunningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Align(lipgloss.Center)

	neonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorFg)

	accentStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
		Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	headerStyle = lipgloss.NewStyle().
		Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	normalItemStyle = lipgloss.NewStyle().
		Foreground(colorFg)
}
