package prefs

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sadopc/watchface/internal/config"
	"github.com/sadopc/watchface/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newPrefs(b Backend, extra ...config.Theme) *Store {
	reg := config.NewRegistry(config.BuiltinThemes()...)
	for _, th := range extra {
		reg.Register(th)
	}
	return New(b, reg, log.New(io.Discard))
}

type failingBackend struct{}

func (failingBackend) GetSetting(string) (string, error) { return "", errors.New("boom") }
func (failingBackend) SetSetting(string, string) error   { return errors.New("disk full") }

func TestLoadDefaults(t *testing.T) {
	p := newPrefs(newTestStore(t)).Load()
	if p.Theme != "blue" || !p.SoundEnabled {
		t.Fatalf("defaults = %+v", p)
	}
	if p.Hour24 || !p.ShowSeconds {
		t.Fatalf("clock format defaults = %+v", p)
	}
}

func TestSetThemeSurvivesReload(t *testing.T) {
	db := newTestStore(t)
	x := config.Theme{Name: "x"}

	s := newPrefs(db, x)
	s.Load()
	if err := s.SetTheme("x"); err != nil {
		t.Fatal(err)
	}

	reloaded := newPrefs(db, x).Load()
	if reloaded.Theme != "x" {
		t.Fatalf("theme after reload = %q, want x", reloaded.Theme)
	}
}

func TestSetThemeUnknown(t *testing.T) {
	s := newPrefs(newTestStore(t))
	s.Load()
	err := s.SetTheme("nope")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if s.Get().Theme != "blue" {
		t.Fatal("rejected theme should not be applied")
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []string{
		"not json",
		`{"theme": 42}`,
		"",
	}
	for _, raw := range tests {
		db := newTestStore(t)
		db.SetSetting(SettingsKey, raw)
		p := newPrefs(db).Load()
		if p != Defaults() {
			t.Fatalf("Load(%q) = %+v, want defaults", raw, p)
		}
	}
}

func TestLoadUnregisteredTheme(t *testing.T) {
	db := newTestStore(t)
	db.SetSetting(SettingsKey, `{"theme":"gone","soundEnabled":false}`)
	p := newPrefs(db).Load()
	if p.Theme != "blue" {
		t.Fatalf("theme = %q, want fallback blue", p.Theme)
	}
	if p.SoundEnabled {
		t.Fatal("sound setting should still be restored")
	}
}

func TestLoadMissingSoundMeansOn(t *testing.T) {
	db := newTestStore(t)
	db.SetSetting(SettingsKey, `{"theme":"green"}`)
	p := newPrefs(db).Load()
	if !p.SoundEnabled || p.Theme != "green" {
		t.Fatalf("unexpected %+v", p)
	}
}

func TestCurrentScreenIsWrittenNotRestored(t *testing.T) {
	db := newTestStore(t)
	s := newPrefs(db)
	s.Load()
	if err := s.SetCurrentScreen(3); err != nil {
		t.Fatal(err)
	}

	raw, _ := db.GetSetting(SettingsKey)
	if !strings.Contains(raw, `"currentScreen":3`) {
		t.Fatalf("blob missing currentScreen: %s", raw)
	}
	if p := newPrefs(db).Load(); p.CurrentScreen != 0 {
		t.Fatalf("CurrentScreen restored as %d", p.CurrentScreen)
	}
}

func TestToggleSoundAndClockFormat(t *testing.T) {
	db := newTestStore(t)
	s := newPrefs(db)
	s.Load()

	on, err := s.ToggleSound()
	if err != nil || on {
		t.Fatalf("ToggleSound = %v, %v", on, err)
	}
	if err := s.SetClockFormat(true, false); err != nil {
		t.Fatal(err)
	}

	p := newPrefs(db).Load()
	if p.SoundEnabled || !p.Hour24 || p.ShowSeconds {
		t.Fatalf("reloaded = %+v", p)
	}
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	s := newPrefs(newTestStore(t))
	var seen []Preferences
	s.Subscribe(func(p Preferences) { seen = append(seen, p) })

	s.Load()
	s.SetTheme("purple")
	s.SetSoundEnabled(false)

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[0].Theme != "blue" || seen[1].Theme != "purple" || seen[2].SoundEnabled {
		t.Fatalf("unexpected notifications %+v", seen)
	}
}

func TestPersistFailureKeepsChangeApplied(t *testing.T) {
	s := newPrefs(failingBackend{})
	if p := s.Load(); p != Defaults() {
		t.Fatalf("backend read error should yield defaults, got %+v", p)
	}
	if err := s.SetTheme("green"); err == nil {
		t.Fatal("expected write error")
	}
	if s.Get().Theme != "green" {
		t.Fatal("change should stay applied after a failed write")
	}
}
