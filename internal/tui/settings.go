package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/watchface/internal/config"
	"github.com/sadopc/watchface/internal/prefs"
)

type settingsModel struct {
	prefs  *prefs.Store
	themes *config.Registry
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	theme       *string
	sound       *bool
	hour24      *bool
	showSeconds *bool
}

func newSettingsModel(p *prefs.Store, themes *config.Registry) settingsModel {
	theme := ""
	sound, hour24, secs := false, false, false
	return settingsModel{
		prefs:       p,
		themes:      themes,
		theme:       &theme,
		sound:       &sound,
		hour24:      &hour24,
		showSeconds: &secs,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cur := s.prefs.Get()
	*s.theme = cur.Theme
	*s.sound = cur.SoundEnabled
	*s.hour24 = cur.Hour24
	*s.showSeconds = cur.ShowSeconds

	var opts []huh.Option[string]
	for _, th := range s.themes.All() {
		opts = append(opts, huh.NewOption(th.Label, th.Name))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(opts...).
				Value(s.theme),
			huh.NewConfirm().Title("Sound").
				Affirmative("On").
				Negative("Off").
				Value(s.sound),
		).Title("Appearance"),
		huh.NewGroup(
			huh.NewConfirm().Title("24-hour clock").
				Affirmative("Yes").
				Negative("No").
				Value(s.hour24),
			huh.NewConfirm().Title("Show seconds").
				Affirmative("Yes").
				Negative("No").
				Value(s.showSeconds),
		).Title("Clock"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if !s.formActive || s.form == nil {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.save(); err != nil {
			return s, statusCmd(fmt.Sprintf("Settings error: %v", err), true)
		}
		return s, statusCmd("Settings saved", false)
	}

	return s, cmd
}

// save applies every field; the first error is reported but later fields
// are still applied.
func (s settingsModel) save() error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	cur := s.prefs.Get()
	if *s.theme != cur.Theme {
		keep(s.prefs.SetTheme(*s.theme))
	}
	if *s.sound != cur.SoundEnabled {
		keep(s.prefs.SetSoundEnabled(*s.sound))
	}
	if *s.hour24 != cur.Hour24 || *s.showSeconds != cur.ShowSeconds {
		keep(s.prefs.SetClockFormat(*s.hour24, *s.showSeconds))
	}
	return first
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")
	if s.form == nil {
		return panelStyle.Width(w).Render(title)
	}
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
	)
}
