package config

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
)

// Config is the full hueblocks configuration document.
type Config struct {
	Title        string    `yaml:"title" toml:"title" validate:"max=60"`
	Blocks       int       `yaml:"blocks" toml:"blocks" validate:"min=3,max=9"`
	Theory       string    `yaml:"theory" toml:"theory" validate:"required,theory"`
	Seed         int64     `yaml:"seed" toml:"seed"`
	CircularMean bool      `yaml:"circular_mean" toml:"circular_mean"`
	Log          LogConfig `yaml:"log" toml:"log"`
}

// LogConfig controls where and how much the application logs.
type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"required,oneof=debug info warn error"`
	File          string `yaml:"file" toml:"file"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Title:  "Color Palette",
		Blocks: palette.DefaultBlocks,
		Theory: "analogous",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ParsedTheory returns the configured theory. Call it on validated configs.
func (c *Config) ParsedTheory() palette.Theory {
	theory, _ := palette.ParseTheory(c.Theory)
	return theory
}

// SeedMode maps CircularMean onto the engine setting.
func (c *Config) SeedMode() palette.SeedMode {
	if c.CircularMean {
		return palette.SeedCircular
	}
	return palette.SeedArithmetic
}

// DefaultPath returns $XDG_CONFIG_HOME/hueblocks/config.yaml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hueblocks", "config.yaml"), nil
}
