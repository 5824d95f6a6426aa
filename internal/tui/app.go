package tui

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/sadopc/watchface/internal/ambient"
	"github.com/sadopc/watchface/internal/config"
	"github.com/sadopc/watchface/internal/export"
	"github.com/sadopc/watchface/internal/gesture"
	"github.com/sadopc/watchface/internal/prefs"
	"github.com/sadopc/watchface/internal/sim"
	"github.com/sadopc/watchface/internal/store"
	"github.com/sadopc/watchface/internal/tone"
	"github.com/sadopc/watchface/internal/watch"
)

// Options carries the collaborators the App is built from.
type Options struct {
	Store  *store.Store
	Prefs  *prefs.Store
	Player *tone.Player
	Config config.Config
	Logger *log.Logger

	// Now and Rand are replaced in tests.
	Now  func() time.Time
	Rand *rand.Rand
}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	prefs  *prefs.Store
	player *tone.Player
	cfg    config.Config
	logger *log.Logger
	now    func() time.Time

	width  int
	height int

	clock     time.Time
	reading   watch.Reading
	carousel  watch.Carousel
	stopwatch watch.Stopwatch
	countdown watch.Countdown

	// Start of the current stopwatch and countdown runs, zero when idle.
	stopwatchStarted time.Time
	countdownStarted time.Time

	transition transitionState
	flash      flashState

	detector *gesture.Detector
	field    *ambient.Field
	battery  *sim.Battery
	weather  *sim.Weather

	showHelp      bool
	themePicking  bool
	themeCursor   int
	exportPicking bool
	exportCursor  int

	settings settingsModel
	history  historyModel

	help   help.Model
	status string
	isErr  bool
}

func NewApp(opts Options) App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(opts.Now().UnixNano()), 0))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Player == nil {
		opts.Player = tone.NewPlayer(nil, opts.Logger)
	}
	if opts.Config.Themes == nil {
		opts.Config = config.Default()
	}

	themes, player := opts.Config.Themes, opts.Player
	opts.Prefs.Subscribe(func(p prefs.Preferences) {
		if th, ok := themes.Lookup(p.Theme); ok {
			applyTheme(th)
		}
		player.SetEnabled(p.SoundEnabled)
	})
	opts.Prefs.Load()

	now := opts.Now()
	field := ambient.NewField(opts.Rand)
	field.Seed(now)

	h := help.New()
	h.ShowAll = false

	return App{
		store:     opts.Store,
		prefs:     opts.Prefs,
		player:    opts.Player,
		cfg:       opts.Config,
		logger:    opts.Logger,
		now:       opts.Now,
		clock:     now,
		reading:   watch.Read(now),
		carousel:  watch.NewCarousel(len(screenNames)),
		countdown: watch.NewCountdown(watch.DefaultCountdownSeconds),
		detector:  gesture.NewDetector(gesture.DefaultThresholds()),
		field:     field,
		battery:   sim.NewBattery(opts.Rand),
		weather:   sim.NewWeather(opts.Rand),
		settings:  newSettingsModel(opts.Prefs, opts.Config.Themes),
		history:   newHistoryModel(opts.Store, opts.Now),
		help:      h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		particleTickCmd(),
		shapeTickCmd(),
		batteryTickCmd(),
		weatherTickCmd(),
	)
}

// --- Tick commands ---

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func stopwatchTickCmd(tag int) tea.Cmd {
	return tea.Tick(watch.StopwatchQuantum, func(time.Time) tea.Msg {
		return stopwatchTickMsg{tag: tag}
	})
}

func countdownTickCmd(tag int) tea.Cmd {
	return tea.Tick(watch.CountdownInterval, func(time.Time) tea.Msg {
		return countdownTickMsg{tag: tag}
	})
}

func particleTickCmd() tea.Cmd {
	return tea.Tick(ambient.ParticleInterval, func(t time.Time) tea.Msg {
		return particleTickMsg(t)
	})
}

func shapeTickCmd() tea.Cmd {
	return tea.Tick(ambient.ShapeInterval, func(t time.Time) tea.Msg {
		return shapeTickMsg(t)
	})
}

func batteryTickCmd() tea.Cmd {
	return tea.Tick(sim.BatteryInterval, func(time.Time) tea.Msg {
		return batteryTickMsg{}
	})
}

func weatherTickCmd() tea.Cmd {
	return tea.Tick(sim.WeatherInterval, func(time.Time) tea.Msg {
		return weatherTickMsg{}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4
		a.settings.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tickMsg:
		now := time.Time(msg)
		a.clock = now
		a.reading = watch.Read(now)
		a.field.Prune(now)
		return a, tickCmd()

	case stopwatchTickMsg:
		if a.stopwatch.Tick(msg.tag) {
			return a, stopwatchTickCmd(msg.tag)
		}
		return a, nil

	case countdownTickMsg:
		if a.countdown.Tick(msg.tag) {
			cmd := a.completeCountdown()
			return a, cmd
		}
		if a.countdown.Running() && a.countdown.Tag() == msg.tag {
			return a, countdownTickCmd(msg.tag)
		}
		return a, nil

	case flashTickMsg:
		cmd := a.flash.advance(msg.tag)
		return a, cmd

	case transitionMsg:
		cmd := a.transition.advance(msg.tag)
		return a, cmd

	case particleTickMsg:
		a.field.SpawnParticle(time.Time(msg))
		return a, particleTickCmd()

	case shapeTickMsg:
		a.field.SpawnShape(time.Time(msg))
		return a, shapeTickCmd()

	case batteryTickMsg:
		a.battery.Drain()
		return a, batteryTickCmd()

	case weatherTickMsg:
		a.weather.Update()
		return a, weatherTickCmd()

	case statusMsg:
		a.status = msg.text
		a.isErr = msg.isError
		return a, nil

	case runRecordedMsg:
		a.status = fmt.Sprintf("Logged %s run (%s)", msg.run.Kind, formatDuration(msg.run.Duration()))
		a.isErr = false
		if a.history.open {
			return a, a.history.refresh()
		}
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.isErr = false
		a.exportPicking = false
		return a, nil
	}

	if a.settings.formActive {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}
	if a.history.open {
		var cmd tea.Cmd
		a.history, cmd = a.history.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.exportPicking {
		return a.updateExportPicker(msg)
	}
	if a.themePicking {
		return a.updateThemePicker(msg)
	}
	if a.settings.formActive {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}
	if a.history.open {
		if key.Matches(msg, keys.History) || key.Matches(msg, keys.Back) {
			a.history.open = false
			return a, nil
		}
		var cmd tea.Cmd
		a.history, cmd = a.history.update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil
	case key.Matches(msg, keys.Next):
		return a.navigate(a.carousel.Next())
	case key.Matches(msg, keys.Prev):
		return a.navigate(a.carousel.Previous())
	case key.Matches(msg, keys.Screen1, keys.Screen2, keys.Screen3, keys.Screen4, keys.Screen5, keys.Screen6):
		i := int(msg.Runes[0] - '1')
		return a.navigate(a.carousel.GoTo(i))
	case key.Matches(msg, keys.Theme):
		a.player.Play(tone.Click)
		a.themePicking = true
		a.themeCursor = a.themeIndex()
		return a, nil
	case key.Matches(msg, keys.Sound):
		on, err := a.prefs.ToggleSound()
		a.player.Play(tone.Click)
		if err != nil {
			return a, statusCmd(fmt.Sprintf("Save error: %v", err), true)
		}
		if on {
			return a, statusCmd("Sound on", false)
		}
		return a, statusCmd("Sound off", false)
	case key.Matches(msg, keys.Settings):
		a.player.Play(tone.Click)
		var cmd tea.Cmd
		a.settings, cmd = a.settings.showForm()
		return a, cmd
	case key.Matches(msg, keys.History):
		a.history.open = true
		return a, a.history.refresh()
	case key.Matches(msg, keys.Export):
		a.exportPicking = true
		a.exportCursor = 0
		return a, nil
	}

	switch screen(a.carousel.Active()) {
	case screenStopwatch:
		return a.updateStopwatchKeys(msg)
	case screenTimer:
		return a.updateTimerKeys(msg)
	}
	return a, nil
}

func (a App) updateStopwatchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.StartStop):
		a.player.Play(tone.Beep)
		tag, started := a.stopwatch.Toggle()
		if !started {
			return a, nil
		}
		if a.stopwatchStarted.IsZero() {
			a.stopwatchStarted = a.now()
		}
		return a, stopwatchTickCmd(tag)
	case key.Matches(msg, keys.Reset):
		a.player.Play(tone.Reset)
		elapsed := a.stopwatch.Reset()
		started := a.stopwatchStarted
		a.stopwatchStarted = time.Time{}
		if elapsed > 0 {
			return a, a.recordRun(store.RunStopwatch, started, elapsed, true)
		}
	}
	return a, nil
}

func (a App) updateTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.StartStop):
		a.player.Play(tone.Beep)
		tag, started := a.countdown.Toggle()
		if !started {
			return a, nil
		}
		if a.countdownStarted.IsZero() {
			a.countdownStarted = a.now()
		}
		return a, countdownTickCmd(tag)
	case key.Matches(msg, keys.Plus):
		if a.countdown.Adjust(60) {
			a.player.Play(tone.Tick)
		}
	case key.Matches(msg, keys.Minus):
		if a.countdown.Adjust(-60) {
			a.player.Play(tone.Tick)
		}
	}
	return a, nil
}

// completeCountdown fires the alarm, starts the flash and logs the run.
func (a *App) completeCountdown() tea.Cmd {
	a.player.Play(tone.Alarm)
	started := a.countdownStarted
	if started.IsZero() {
		started = a.now()
	}
	a.countdownStarted = time.Time{}
	d := time.Duration(a.countdown.Original()) * time.Second
	return tea.Batch(
		a.flash.start(),
		a.recordRun(store.RunCountdown, started, d, true),
	)
}

func (a App) recordRun(kind store.RunKind, startedAt time.Time, d time.Duration, completed bool) tea.Cmd {
	s, logger := a.store, a.logger
	return func() tea.Msg {
		run, err := s.RecordRun(kind, startedAt, d, completed)
		if err != nil {
			logger.Error("record run", "kind", kind, "err", err)
			return statusMsg{text: fmt.Sprintf("Log error: %v", err), isError: true}
		}
		logger.Debug("run recorded", "id", run.ID, "kind", kind, "ms", run.DurationMS)
		return runRecordedMsg{run: run}
	}
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isErr}
	}
}

// navigate starts the slide animation for a committed screen change.
func (a App) navigate(tr watch.Transition, ok bool) (tea.Model, tea.Cmd) {
	if !ok {
		return a, nil
	}
	a.player.Play(tone.Swipe)
	if err := a.prefs.SetCurrentScreen(tr.To); err != nil {
		a.status = fmt.Sprintf("Save error: %v", err)
		a.isErr = true
	}
	cmd := a.transition.begin(tr)
	return a, cmd
}

// updateMouse feeds left-button drags into the gesture detector. Terminal
// cells are scaled to pixels so the thresholds keep their meaning.
func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.exportPicking || a.themePicking || a.settings.formActive || a.history.open {
		return a, nil
	}
	x := float64(msg.X * a.cfg.Gesture.CellWidthPx)
	y := float64(msg.Y * a.cfg.Gesture.CellHeightPx)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			a.detector.Begin(gesture.SourcePointer, x, y)
		}
	case tea.MouseActionMotion:
		a.detector.Move(gesture.SourcePointer, x, y)
	case tea.MouseActionRelease:
		switch a.detector.End(gesture.SourcePointer, x, y) {
		case gesture.ActionNext:
			return a.navigate(a.carousel.Next())
		case gesture.ActionPrevious:
			return a.navigate(a.carousel.Previous())
		}
	}
	return a, nil
}

// --- View ---

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch {
	case a.exportPicking:
		content = a.renderExportPicker()
	case a.themePicking:
		content = a.renderThemePicker()
	case a.settings.formActive:
		content = a.settings.view()
	case a.history.open:
		content = a.history.view()
	default:
		content = a.renderCarousel(contentHeight)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderCarousel(height int) string {
	face := a.renderScreen(screen(a.transition.visible(a.carousel.Active())))
	dots := a.renderDots()

	faceHeight := height - lipgloss.Height(dots) - ambientRows
	if faceHeight < lipgloss.Height(face) {
		faceHeight = lipgloss.Height(face)
	}

	pos := lipgloss.Center
	switch a.transition.offset() {
	case -1:
		pos = lipgloss.Left
	case 1:
		pos = lipgloss.Right
	}
	if a.transition.phase != phaseSettled {
		face = mutedStyle.Render(face)
	}
	face = lipgloss.Place(a.width, faceHeight, pos, lipgloss.Center, face)

	band := renderAmbient(a.field, a.width, ambientRows, a.clock)
	return lipgloss.JoinVertical(lipgloss.Left, face, dots, band)
}

func (a App) renderScreen(s screen) string {
	p := a.prefs.Get()
	switch s {
	case screenDigital:
		return renderDigital(a.reading, p)
	case screenAnalog:
		return renderAnalog(a.reading)
	case screenNeon:
		return renderNeon(a.reading, p)
	case screenStopwatch:
		return renderStopwatch(a.stopwatch)
	case screenTimer:
		return renderTimer(a.countdown, a.flash.lit())
	case screenWeather:
		return renderWeather(a.weather, a.width)
	}
	return ""
}

// renderDots is the screen indicator row under the face.
func (a App) renderDots() string {
	var dots []string
	for i := range screenNames {
		if i == a.carousel.Active() {
			dots = append(dots, activeTabStyle.Render("●"))
		} else {
			dots = append(dots, inactiveTabStyle.Render("○"))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, dots[0])
	for _, d := range dots[1:] {
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " ", d)
	}
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, row)
}

func (a App) renderHeader() string {
	name := screenNames[a.carousel.Active()]
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("watchface")
	tab := activeTabStyle.Render(" · " + name)

	tierStyle := accentStyle
	switch a.battery.Tier() {
	case sim.BatteryEmpty:
		tierStyle = errorStyle
	case sim.BatteryHalf:
		tierStyle = warningStyle
	}
	battery := tierStyle.Render(a.battery.Tier().Icon() + " " + a.battery.String())

	sound := mutedStyle.Render("♪ off")
	if a.player.Enabled() {
		sound = accentStyle.Render("♪ on")
	}
	right := lipgloss.JoinHorizontal(lipgloss.Bottom,
		mutedStyle.Render(a.prefs.Get().Theme+"  "), sound, "  ", battery)

	left := lipgloss.JoinHorizontal(lipgloss.Bottom, title, tab)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.isErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	timerInfo := ""
	if a.stopwatch.Running() {
		timerInfo += successStyle.Render(" ● " + a.stopwatch.String())
	}
	if a.countdown.Running() {
		timerInfo += warningStyle.Render(" ⏱ " + a.countdown.String())
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

// --- Theme picker ---

func (a App) themeIndex() int {
	current := a.prefs.Get().Theme
	for i, name := range a.cfg.Themes.Names() {
		if name == current {
			return i
		}
	}
	return 0
}

func (a App) renderThemePicker() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Theme"), "")
	for i, th := range a.cfg.Themes.All() {
		cursor := "  "
		style := normalItemStyle
		if i == a.themeCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Primary)).Render("██") +
			lipgloss.NewStyle().Foreground(lipgloss.Color(th.Secondary)).Render("██")
		rows = append(rows, style.Render(cursor+th.Label)+"  "+swatch)
	}
	rows = append(rows, "", mutedStyle.Render("  enter: apply  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateThemePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := a.cfg.Themes.Names()
	switch {
	case key.Matches(msg, keys.Up):
		if a.themeCursor > 0 {
			a.themeCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.themeCursor < len(names)-1 {
			a.themeCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.themePicking = false
		if a.themeCursor >= len(names) {
			return a, nil
		}
		a.player.Play(tone.Theme)
		if err := a.prefs.SetTheme(names[a.themeCursor]); err != nil {
			return a, statusCmd(fmt.Sprintf("Theme error: %v", err), true)
		}
		return a, statusCmd("Theme: "+names[a.themeCursor], false)
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Theme):
		a.themePicking = false
	}
	return a, nil
}

// --- Export picker ---

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Runs")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		f := export.FormatCSV
		if a.exportCursor == 1 {
			f = export.FormatJSON
		}
		home, _ := os.UserHomeDir()
		return a, a.doExport(f, home)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(f export.Format, dir string) tea.Cmd {
	s, now := a.store, a.now
	return func() tea.Msg {
		runs, err := s.ListRuns(store.RunFilter{})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		path := export.DefaultPath(dir, f, now())
		if err := export.Write(f, runs, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
