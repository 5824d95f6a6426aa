package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartStop key.Binding
	Reset     key.Binding
	Plus      key.Binding
	Minus     key.Binding
	Prev      key.Binding
	Next      key.Binding
	Screen1   key.Binding
	Screen2   key.Binding
	Screen3   key.Binding
	Screen4   key.Binding
	Screen5   key.Binding
	Screen6   key.Binding
	Theme     key.Binding
	Sound     key.Binding
	Settings  key.Binding
	History   key.Binding
	Export    key.Binding
	Help      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	StartStop: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/stop"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Plus: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "+1 min"),
	),
	Minus: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "-1 min"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "shift+tab"),
		key.WithHelp("←", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→", "next"),
	),
	Screen1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "digital")),
	Screen2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "analog")),
	Screen3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "neon")),
	Screen4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "stopwatch")),
	Screen5: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "timer")),
	Screen6: key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "weather")),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Sound: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "sound"),
	),
	Settings: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "settings"),
	),
	History: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "history"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.StartStop, k.Theme, k.Sound, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Reset, k.Plus, k.Minus},
		{k.Prev, k.Next, k.Screen1, k.Screen6},
		{k.Theme, k.Sound, k.Settings},
		{k.History, k.Export, k.Help, k.Quit},
	}
}
