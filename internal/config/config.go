// Package config loads watchface's optional YAML configuration: extra or
// replacement colour themes and the terminal cell size used to turn mouse
// drags into pixel distances.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "watchface"
	configFileName = "config.yaml"

	// DefaultTheme is the theme used when nothing valid is stored.
	DefaultTheme = "blue"
)

// Theme is a named palette. Colours are "#RRGGBB".
type Theme struct {
	Name      string `yaml:"name"`
	Label     string `yaml:"label"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`
	Text      string `yaml:"text"`
	Muted     string `yaml:"muted"`
}

// Gesture maps terminal cells to pixels for drag classification.
type Gesture struct {
	CellWidthPx  int `yaml:"cell_width_px"`
	CellHeightPx int `yaml:"cell_height_px"`
}

type Config struct {
	Themes  *Registry
	Gesture Gesture
}

type yamlConfig struct {
	Themes  []Theme `yaml:"themes"`
	Gesture Gesture `yaml:"gesture"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func Default() Config {
	return Config{
		Themes:  NewRegistry(BuiltinThemes()...),
		Gesture: Gesture{CellWidthPx: 8, CellHeightPx: 16},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var file yamlConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	for i, th := range file.Themes {
		th, err := completeTheme(th)
		if err != nil {
			return cfg, fmt.Errorf("theme %d: %w", i, err)
		}
		cfg.Themes.Register(th)
	}
	if file.Gesture.CellWidthPx > 0 {
		cfg.Gesture.CellWidthPx = file.Gesture.CellWidthPx
	}
	if file.Gesture.CellHeightPx > 0 {
		cfg.Gesture.CellHeightPx = file.Gesture.CellHeightPx
	}
	return cfg, nil
}

// completeTheme fills unset colours from the default theme and checks the rest.
func completeTheme(th Theme) (Theme, error) {
	th.Name = strings.ToLower(strings.TrimSpace(th.Name))
	if th.Name == "" {
		return th, errors.New("theme name is required")
	}
	if th.Label == "" {
		th.Label = strings.ToUpper(th.Name[:1]) + th.Name[1:]
	}
	base := builtinBlue
	fields := []struct {
		v    *string
		def  string
		name string
	}{
		{&th.Primary, base.Primary, "primary"},
		{&th.Secondary, base.Secondary, "secondary"},
		{&th.Accent, base.Accent, "accent"},
		{&th.Text, base.Text, "text"},
		{&th.Muted, base.Muted, "muted"},
	}
	for _, f := range fields {
		if *f.v == "" {
			*f.v = f.def
			continue
		}
		if !hexColor.MatchString(*f.v) {
			return th, fmt.Errorf("theme %q: %s colour %q is not #RRGGBB", th.Name, f.name, *f.v)
		}
	}
	return th, nil
}

// DefaultPath returns ~/.config/watchface/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}
