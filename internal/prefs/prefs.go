// Package prefs owns the user's display preferences: theme, sound, clock
// format. They are stored as one JSON blob in the settings table, and every
// change is written back straight away.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/sadopc/watchface/internal/config"
)

// SettingsKey is the settings-table key holding the preferences blob.
const SettingsKey = "digital_watch_settings"

// ErrUnknownTheme is returned by SetTheme for names not in the registry.
var ErrUnknownTheme = errors.New("unknown theme")

type Preferences struct {
	Theme        string
	SoundEnabled bool
	Hour24       bool
	ShowSeconds  bool
	// CurrentScreen is written on every save but never restored: the watch
	// always opens on the first screen.
	CurrentScreen int
}

func Defaults() Preferences {
	return Preferences{
		Theme:        config.DefaultTheme,
		SoundEnabled: true,
		ShowSeconds:  true,
	}
}

// blob is the stored shape. Pointer fields tell "absent" from false.
type blob struct {
	Theme         string `json:"theme"`
	SoundEnabled  *bool  `json:"soundEnabled"`
	CurrentScreen int    `json:"currentScreen"`
	Hour24        bool   `json:"hour24"`
	ShowSeconds   *bool  `json:"showSeconds"`
}

// Backend is the key/value persistence the store writes through.
type Backend interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

type Store struct {
	backend     Backend
	themes      *config.Registry
	logger      *log.Logger
	prefs       Preferences
	subscribers []func(Preferences)
}

func New(b Backend, themes *config.Registry, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		backend: b,
		themes:  themes,
		logger:  logger,
		prefs:   Defaults(),
	}
}

// Subscribe registers fn to be called with the preferences after Load and
// after every change.
func (s *Store) Subscribe(fn func(Preferences)) {
	s.subscribers = append(s.subscribers, fn)
}

// Get returns the current preferences.
func (s *Store) Get() Preferences { return s.prefs }

// Load reads the stored preferences and applies them. Missing, malformed or
// unusable values fall back to the defaults; Load never fails.
func (s *Store) Load() Preferences {
	p := Defaults()

	raw, err := s.backend.GetSetting(SettingsKey)
	switch {
	case err != nil:
		s.logger.Debug("no stored preferences, using defaults", "err", err)
	default:
		var b blob
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			s.logger.Warn("stored preferences are malformed, using defaults", "err", err)
			break
		}
		if b.Theme != "" {
			if s.themes.Has(b.Theme) {
				p.Theme = b.Theme
			} else {
				s.logger.Warn("stored theme is not registered", "theme", b.Theme)
			}
		}
		if b.SoundEnabled != nil {
			p.SoundEnabled = *b.SoundEnabled
		}
		if b.ShowSeconds != nil {
			p.ShowSeconds = *b.ShowSeconds
		}
		p.Hour24 = b.Hour24
	}

	s.prefs = p
	s.notify()
	return p
}

func (s *Store) SetTheme(name string) error {
	if !s.themes.Has(name) {
		return fmt.Errorf("set theme %q: %w", name, ErrUnknownTheme)
	}
	s.prefs.Theme = name
	return s.commit()
}

func (s *Store) SetSoundEnabled(on bool) error {
	s.prefs.SoundEnabled = on
	return s.commit()
}

// ToggleSound flips sound and returns the new state.
func (s *Store) ToggleSound() (bool, error) {
	on := !s.prefs.SoundEnabled
	return on, s.SetSoundEnabled(on)
}

func (s *Store) SetClockFormat(hour24, showSeconds bool) error {
	s.prefs.Hour24 = hour24
	s.prefs.ShowSeconds = showSeconds
	return s.commit()
}

// SetCurrentScreen records the active screen index.
func (s *Store) SetCurrentScreen(i int) error {
	s.prefs.CurrentScreen = i
	return s.commit()
}

// commit applies the in-memory preferences and persists them. The change
// stays applied even if the write fails.
func (s *Store) commit() error {
	s.notify()
	if err := s.save(); err != nil {
		s.logger.Error("persist preferences", "err", err)
		return err
	}
	return nil
}

func (s *Store) save() error {
	sound, secs := s.prefs.SoundEnabled, s.prefs.ShowSeconds
	data, err := json.Marshal(blob{
		Theme:         s.prefs.Theme,
		SoundEnabled:  &sound,
		CurrentScreen: s.prefs.CurrentScreen,
		Hour24:        s.prefs.Hour24,
		ShowSeconds:   &secs,
	})
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := s.backend.SetSetting(SettingsKey, string(data)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(s.prefs)
	}
}
