package tui

import (
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/sadopc/watchface/internal/config"
	"github.com/sadopc/watchface/internal/prefs"
	"github.com/sadopc/watchface/internal/store"
	"github.com/sadopc/watchface/internal/tone"
)

var testNow = time.Date(2026, time.October, 15, 9, 30, 15, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T, s *store.Store) App {
	t.Helper()
	cfg := config.Default()
	logger := log.New(io.Discard)
	a := NewApp(Options{
		Store:  s,
		Prefs:  prefs.New(s, cfg.Themes, logger),
		Player: tone.NewPlayer(nil, logger),
		Config: cfg,
		Logger: logger,
		Now:    func() time.Time { return testNow },
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	return send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("update returned %T", m)
	}
	return app
}

func sendCmd(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = keyRunes(" ")
)

// ============================================================
// Startup
// ============================================================

func TestFreshStart(t *testing.T) {
	a := newTestApp(t, newTestStore(t))

	if a.carousel.Active() != 0 {
		t.Fatalf("active = %d, want 0", a.carousel.Active())
	}
	p := a.prefs.Get()
	if p.Theme != config.DefaultTheme {
		t.Fatalf("theme = %q, want %q", p.Theme, config.DefaultTheme)
	}
	if !p.SoundEnabled || !a.player.Enabled() {
		t.Fatal("sound should start enabled")
	}
	if a.stopwatch.String() != "00:00:00" {
		t.Fatalf("stopwatch = %q", a.stopwatch.String())
	}
	if a.countdown.String() != "05:00" {
		t.Fatalf("countdown = %q", a.countdown.String())
	}
	if a.reading.Hour24 != 9 || a.reading.Minute != 30 {
		t.Fatalf("reading not taken at start: %+v", a.reading)
	}
}

func TestStoredPreferencesApplied(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(prefs.SettingsKey, `{"theme":"green","soundEnabled":false}`)

	a := newTestApp(t, s)
	if a.prefs.Get().Theme != "green" {
		t.Fatalf("theme = %q, want green", a.prefs.Get().Theme)
	}
	if a.player.Enabled() {
		t.Fatal("player should be muted by stored preference")
	}
	green, _ := config.Default().Themes.Lookup("green")
	if string(colorPrimary) != green.Primary {
		t.Fatalf("primary colour = %q, want %q", colorPrimary, green.Primary)
	}
	applyTheme(config.BuiltinThemes()[0])
}

// ============================================================
// Carousel
// ============================================================

func TestNavigationKeys(t *testing.T) {
	a := newTestApp(t, newTestStore(t))

	a = send(t, a, keyRight)
	if a.carousel.Active() != 1 {
		t.Fatalf("after right: %d", a.carousel.Active())
	}
	a = send(t, a, keyLeft)
	a = send(t, a, keyLeft)
	if a.carousel.Active() != 5 {
		t.Fatalf("left should wrap to 5, got %d", a.carousel.Active())
	}
	a = send(t, a, keyRunes("3"))
	if a.carousel.Active() != 2 {
		t.Fatalf("key 3: %d", a.carousel.Active())
	}
	if a.prefs.Get().CurrentScreen != 2 {
		t.Fatalf("current screen = %d, want 2", a.prefs.Get().CurrentScreen)
	}
}

func TestGoToCurrentScreenNoTransition(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a, cmd := sendCmd(t, a, keyRunes("1"))
	if cmd != nil {
		t.Fatal("jumping to the active screen should not animate")
	}
	if a.transition.phase != phaseSettled {
		t.Fatal("transition should stay settled")
	}
}

func TestTransitionPhases(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keyRight)

	if a.transition.phase != phaseExiting {
		t.Fatal("transition should begin exiting")
	}
	if a.transition.visible(a.carousel.Active()) != 0 {
		t.Fatal("outgoing screen should be drawn while exiting")
	}
	if a.transition.offset() != -1 {
		t.Fatalf("forward exit offset = %d, want -1", a.transition.offset())
	}

	tag := a.transition.task.Tag()
	a = send(t, a, transitionMsg{tag: tag - 1})
	if a.transition.phase != phaseExiting {
		t.Fatal("stale transition tick should be ignored")
	}

	a = send(t, a, transitionMsg{tag: tag})
	if a.transition.phase != phaseEntering || a.transition.offset() != 1 {
		t.Fatal("incoming screen should enter from the right")
	}
	a = send(t, a, transitionMsg{tag: tag})
	if a.transition.phase != phaseSettled || a.transition.offset() != 0 {
		t.Fatal("transition should settle")
	}
	if a.transition.visible(a.carousel.Active()) != 1 {
		t.Fatal("settled view should show the active screen")
	}
}

// ============================================================
// Gestures
// ============================================================

func drag(t *testing.T, a App, fromX, fromY, toX, toY int) App {
	t.Helper()
	a = send(t, a, tea.MouseMsg{X: fromX, Y: fromY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a = send(t, a, tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	return send(t, a, tea.MouseMsg{X: toX, Y: toY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestMouseSwipe(t *testing.T) {
	tests := []struct {
		name       string
		fromX, toX int
		fromY, toY int
		want       int
	}{
		{"swipe left goes next", 40, 30, 10, 10, 1},
		{"swipe right goes previous", 30, 40, 10, 10, 5},
		{"short drag ignored", 40, 35, 10, 10, 0},
		{"vertical drag ignored", 40, 38, 2, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, newTestStore(t))
			a = drag(t, a, tt.fromX, tt.fromY, tt.toX, tt.toY)
			if a.carousel.Active() != tt.want {
				t.Fatalf("active = %d, want %d", a.carousel.Active(), tt.want)
			}
		})
	}
}

// ============================================================
// Stopwatch
// ============================================================

func TestStopwatchScenario(t *testing.T) {
	a := newTestApp(t, newTestStore(t))

	for i := 0; i < 3; i++ {
		a = send(t, a, keyRight)
	}
	if screen(a.carousel.Active()) != screenStopwatch {
		t.Fatalf("active = %d, want stopwatch", a.carousel.Active())
	}

	a, cmd := sendCmd(t, a, keySpace)
	if cmd == nil || !a.stopwatch.Running() {
		t.Fatal("space should start the stopwatch and schedule a tick")
	}
	tag := a.stopwatch.Tag()
	for i := 0; i < 123; i++ {
		a = send(t, a, stopwatchTickMsg{tag: tag})
	}
	a = send(t, a, keySpace)
	if a.stopwatch.Running() {
		t.Fatal("space should stop the stopwatch")
	}
	if got := a.stopwatch.String(); got != "00:01:23" {
		t.Fatalf("display = %q, want 00:01:23", got)
	}

	a, cmd = sendCmd(t, a, keyRunes("r"))
	if got := a.stopwatch.String(); got != "00:00:00" {
		t.Fatalf("after reset = %q", got)
	}
	if cmd == nil {
		t.Fatal("reset with elapsed time should log a run")
	}
	msg := cmd()
	rec, ok := msg.(runRecordedMsg)
	if !ok {
		t.Fatalf("got %T, want runRecordedMsg", msg)
	}
	if rec.run.Kind != store.RunStopwatch || rec.run.DurationMS != 1230 {
		t.Fatalf("run = %+v", rec.run)
	}
}

func TestStopwatchStaleTickIgnored(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keyRunes("4"))

	a = send(t, a, keySpace)
	first := a.stopwatch.Tag()
	a = send(t, a, keySpace)
	a = send(t, a, keySpace)

	a, cmd := sendCmd(t, a, stopwatchTickMsg{tag: first})
	if cmd != nil {
		t.Fatal("stale tick should not re-arm")
	}
	if a.stopwatch.ElapsedMS() != 0 {
		t.Fatalf("stale tick counted: %d ms", a.stopwatch.ElapsedMS())
	}

	a = send(t, a, stopwatchTickMsg{tag: a.stopwatch.Tag()})
	if a.stopwatch.ElapsedMS() != 10 {
		t.Fatalf("live tick: %d ms, want 10", a.stopwatch.ElapsedMS())
	}
}

func TestResetWithoutElapsedLogsNothing(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keyRunes("4"))
	_, cmd := sendCmd(t, a, keyRunes("r"))
	if cmd != nil {
		t.Fatal("reset at zero should not log a run")
	}
}

func TestStopwatchKeysOnlyOnStopwatchScreen(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keySpace)
	if a.stopwatch.Running() || a.countdown.Running() {
		t.Fatal("space on the digital screen should do nothing")
	}
}

// ============================================================
// Countdown
// ============================================================

func TestCountdownAdjustKeys(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keyRunes("5"))

	a = send(t, a, keyRunes("+"))
	if a.countdown.Remaining() != 360 || a.countdown.Original() != 360 {
		t.Fatalf("after +: %d/%d", a.countdown.Remaining(), a.countdown.Original())
	}
	for i := 0; i < 10; i++ {
		a = send(t, a, keyRunes("-"))
	}
	if a.countdown.Remaining() != 0 {
		t.Fatalf("minus should clamp at 0, got %d", a.countdown.Remaining())
	}

	a, cmd := sendCmd(t, a, keySpace)
	if cmd != nil || a.countdown.Running() {
		t.Fatal("zero-length countdown should not start")
	}
}

func TestCountdownAdjustWhileRunningIgnored(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keyRunes("5"))
	a = send(t, a, keySpace)
	a = send(t, a, keyRunes("+"))
	if a.countdown.Remaining() != 300 {
		t.Fatalf("adjust while running changed remaining to %d", a.countdown.Remaining())
	}
}

func TestCountdownCompletion(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a = send(t, a, keyRunes("5"))
	for i := 0; i < 4; i++ {
		a = send(t, a, keyRunes("-"))
	}
	if a.countdown.String() != "01:00" {
		t.Fatalf("countdown = %q, want 01:00", a.countdown.String())
	}

	a = send(t, a, keySpace)
	tag := a.countdown.Tag()
	var cmd tea.Cmd
	for i := 0; i < 59; i++ {
		a, cmd = sendCmd(t, a, countdownTickMsg{tag: tag})
		if cmd == nil {
			t.Fatalf("tick %d did not re-arm", i)
		}
	}
	if a.flash.steps > 0 {
		t.Fatal("flash should not start before completion")
	}

	a, cmd = sendCmd(t, a, countdownTickMsg{tag: tag})
	if a.countdown.Running() || a.countdown.Remaining() != 0 {
		t.Fatal("countdown should stop at zero")
	}
	if !(a.flash.steps > 0) {
		t.Fatal("completion should start the flash")
	}
	if a.countdown.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", a.countdown.Progress())
	}
	if cmd == nil {
		t.Fatal("completion should return commands")
	}

	// A late tick from the finished chain does nothing.
	a, cmd = sendCmd(t, a, countdownTickMsg{tag: tag})
	if cmd != nil || a.countdown.Remaining() != 0 {
		t.Fatal("tick after completion should be ignored")
	}

	// Restart rewinds to the original length.
	a = send(t, a, keySpace)
	if !a.countdown.Running() || a.countdown.Remaining() != 60 {
		t.Fatalf("restart: running=%v remaining=%d", a.countdown.Running(), a.countdown.Remaining())
	}
}

func TestFlashRunsSixCycles(t *testing.T) {
	var f flashState
	f.start()
	tag := f.task.Tag()

	lit := 0
	for i := 0; i < flashSteps; i++ {
		if f.lit() {
			lit++
		}
		f.advance(tag)
	}
	if f.steps != 0 {
		t.Fatal("flash should end after its steps")
	}
	if lit != 6 {
		t.Fatalf("lit steps = %d, want 6", lit)
	}
	if f.advance(tag) != nil {
		t.Fatal("finished flash should not re-arm")
	}
}

// ============================================================
// Run log
// ============================================================

func TestRecordRunPersists(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)

	msg := a.recordRun(store.RunCountdown, testNow, time.Minute, true)()
	if _, ok := msg.(runRecordedMsg); !ok {
		t.Fatalf("got %T, want runRecordedMsg", msg)
	}
	runs, err := s.ListRuns(store.RunFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Kind != store.RunCountdown || runs[0].DurationMS != 60000 {
		t.Fatalf("runs = %+v", runs)
	}

	a = send(t, a, msg)
	if !strings.Contains(a.status, "countdown") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestExportWritesFile(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	s.RecordRun(store.RunStopwatch, testNow, 3*time.Second, true)

	dir := t.TempDir()
	msg := a.doExport("json", dir)()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("got %T, want exportDoneMsg", msg)
	}
	if !strings.HasPrefix(done.path, dir) || !strings.HasSuffix(done.path, ".json") {
		t.Fatalf("path = %q", done.path)
	}
}

func TestHistoryOverlay(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	s.RecordRun(store.RunStopwatch, testNow.Add(-time.Hour), 2*time.Minute, true)

	a, cmd := sendCmd(t, a, keyRunes("h"))
	if !a.history.open || cmd == nil {
		t.Fatal("h should open the history overlay and load data")
	}
	a = send(t, a, cmd())
	if len(a.history.summaries) != 1 {
		t.Fatalf("summaries = %+v", a.history.summaries)
	}
	if !strings.Contains(a.View(), "Run History") {
		t.Fatal("view should show the history overlay")
	}

	a = send(t, a, keyRunes("h"))
	if a.history.open {
		t.Fatal("h should close the overlay")
	}
}

// ============================================================
// Preferences
// ============================================================

func TestSoundToggleKeyPersists(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)

	a = send(t, a, keyRunes("m"))
	if a.player.Enabled() || a.prefs.Get().SoundEnabled {
		t.Fatal("m should mute")
	}

	reloaded := prefs.New(s, config.Default().Themes, log.New(io.Discard)).Load()
	if reloaded.SoundEnabled {
		t.Fatal("sound preference not persisted")
	}
}

func TestThemePicker(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)

	a = send(t, a, keyRunes("t"))
	if !a.themePicking {
		t.Fatal("t should open the theme picker")
	}
	a = send(t, a, keyDown)
	a = send(t, a, keyEnter)
	if a.themePicking {
		t.Fatal("enter should close the picker")
	}
	if a.prefs.Get().Theme != "purple" {
		t.Fatalf("theme = %q, want purple", a.prefs.Get().Theme)
	}
	th, _ := config.Default().Themes.Lookup("purple")
	if string(colorPrimary) != th.Primary {
		t.Fatalf("primary colour = %q, want %q", colorPrimary, th.Primary)
	}

	reloaded := prefs.New(s, config.Default().Themes, log.New(io.Discard)).Load()
	if reloaded.Theme != "purple" {
		t.Fatalf("reloaded theme = %q", reloaded.Theme)
	}
	applyTheme(config.BuiltinThemes()[0])
}

func TestSettingsSaveSkipsUnchanged(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)

	m := a.settings
	cur := a.prefs.Get()
	*m.theme = cur.Theme
	*m.sound = cur.SoundEnabled
	*m.hour24 = cur.Hour24
	*m.showSeconds = cur.ShowSeconds

	if err := m.save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.GetSetting(prefs.SettingsKey); !errors.Is(err, store.ErrSettingNotFound) {
		t.Fatalf("unchanged form should not write preferences, got err=%v", err)
	}
}

func TestSettingsSaveAppliesFields(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	t.Cleanup(func() { applyTheme(config.BuiltinThemes()[0]) })

	m := a.settings
	*m.theme = "green"
	*m.sound = false
	*m.hour24 = true
	*m.showSeconds = false

	if err := m.save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := a.prefs.Get()
	if got.Theme != "green" || got.SoundEnabled || !got.Hour24 || got.ShowSeconds {
		t.Fatalf("prefs = %+v", got)
	}
	if a.player.Enabled() {
		t.Fatal("player should follow the sound setting")
	}
}

func TestSettingsSaveReportsUnknownTheme(t *testing.T) {
	a := newTestApp(t, newTestStore(t))

	m := a.settings
	cur := a.prefs.Get()
	*m.theme = "nope"
	*m.sound = cur.SoundEnabled
	*m.hour24 = true
	*m.showSeconds = cur.ShowSeconds

	err := m.save()
	if !errors.Is(err, prefs.ErrUnknownTheme) {
		t.Fatalf("err = %v, want ErrUnknownTheme", err)
	}
	got := a.prefs.Get()
	if got.Theme != config.DefaultTheme {
		t.Fatalf("theme = %q, should be unchanged", got.Theme)
	}
	if !got.Hour24 {
		t.Fatal("later fields should still apply after a theme error")
	}
}

// ============================================================
// Rendering
// ============================================================

func TestViewEachScreen(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	for i, name := range screenNames {
		a = send(t, a, keyRunes(string(rune('1'+i))))
		a.transition.phase = phaseSettled
		v := a.View()
		if !strings.Contains(v, name) {
			t.Fatalf("screen %d view missing %q", i, name)
		}
	}
}

func TestViewBeforeResize(t *testing.T) {
	a := newTestApp(t, newTestStore(t))
	a.width = 0
	if a.View() != "Loading..." {
		t.Fatal("view should wait for a window size")
	}
}

func TestNeonDigits(t *testing.T) {
	out := neonDigits("12:34")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("neon digits rows = %d, want 5", len(lines))
	}
	if neonDigitsOrText("00:00:00") == "" {
		t.Fatal("stopwatch readout should render")
	}
}
