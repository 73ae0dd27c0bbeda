package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dshills/quill/internal/renderer/highlight"
)

// Config holds all editor settings.
type Config struct {
	// Theme is a chroma style name.
	Theme string `toml:"theme" yaml:"theme"`

	TabWidth        int `toml:"tab_width" yaml:"tab_width"`
	LineLengthGuide int `toml:"line_length_guide" yaml:"line_length_guide"`

	// ScrollAmount is the number of lines view.scroll_up/down move.
	ScrollAmount int `toml:"scroll_amount" yaml:"scroll_amount"`

	Log LogConfig `toml:"log" yaml:"log"`

	// Keys maps a mode name to key spec to command name overrides.
	Keys map[string]map[string]string `toml:"keys" yaml:"keys"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty discards log output.
	File string `toml:"file" yaml:"file"`
}

// Log levels accepted by LogConfig.Level.
var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:           highlight.DefaultThemeName,
		TabWidth:        4,
		LineLengthGuide: 80,
		ScrollAmount:    10,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and joins all failures.
func (c *Config) Validate() error {
	var errs []error

	if !highlight.HasTheme(c.Theme) {
		errs = append(errs, &ValidationError{Path: "theme", Message: "unknown theme", Value: c.Theme})
	}
	if c.TabWidth <= 0 {
		errs = append(errs, &ValidationError{Path: "tab_width", Message: "must be positive", Value: c.TabWidth})
	}
	if c.LineLengthGuide < 0 {
		errs = append(errs, &ValidationError{Path: "line_length_guide", Message: "must not be negative", Value: c.LineLengthGuide})
	}
	if c.ScrollAmount <= 0 {
		errs = append(errs, &ValidationError{Path: "scroll_amount", Message: "must be positive", Value: c.ScrollAmount})
	}
	if !logLevels[c.Log.Level] {
		errs = append(errs, &ValidationError{Path: "log.level", Message: "unknown level", Value: c.Log.Level})
	}

	return errors.Join(errs...)
}

// DefaultPath returns $XDG_CONFIG_HOME/quill/config.toml, falling back to
// ~/.config. It returns "" when neither can be determined.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "quill", "config.toml")
}
