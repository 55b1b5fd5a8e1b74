// Package config loads the optional TOML settings file. Settings only change
// how results are presented; the scanned file and the detection rules are
// fixed.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidColor is returned for a colour mode other than auto, always or never.
var ErrInvalidColor = errors.New("invalid color mode")

// Config holds presentation settings.
type Config struct {
	Verbose  bool   `toml:"verbose"`
	Color    string `toml:"color"`
	Progress bool   `toml:"progress"`
	Summary  bool   `toml:"summary"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Color: ColorAuto}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	return ValidateColor(c.Color)
}

// ValidateColor checks a colour mode.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColor, mode)
	}
}
