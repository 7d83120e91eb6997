// Package config loads the CLI configuration: defaults, an optional TOML
// file and command-line overrides, merged in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/glint/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Output OutputConfig `toml:"output"`
}

// LoggerConfig configures the internal diagnostic logger, not the
// rendered output.
type LoggerConfig struct {
	LogLevel    string `toml:"log_level"`
	LogFilePath string `toml:"log_file"`
}

// OutputConfig holds rendering defaults applied to every diagnostic that
// does not override them.
type OutputConfig struct {
	Format           string `toml:"format"` // auto, plain or styled
	SecondaryColor   string `toml:"secondary_color"`
	PreviousLines    int    `toml:"previous_lines"`
	NextLines        int    `toml:"next_lines"`
	MiddleLines      int    `toml:"middle_lines"`
	AlignMessages    bool   `toml:"align_messages"`
	ShowNewLineChars bool   `toml:"show_new_line_chars"`
	SeparatorWidth   int    `toml:"separator_width"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			LogLevel: "info",
		},
		Output: OutputConfig{
			Format:         "auto",
			SecondaryColor: DefaultSecondaryColor,
			SeparatorWidth: DefaultSeparatorWidth,
		},
	}
}

// DefaultConfigPath returns ~/.config/glint/config.toml, or an empty
// string when the home directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", ConfigDirName, DefaultConfigFileName)
}

// Load merges defaults, the config file and flag overrides. A missing
// file is not an error; a malformed one is.
func Load(flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := DefaultConfigPath()
	explicit := false
	if flags != nil && flags.ConfigFilePath != nil && *flags.ConfigFilePath != "" {
		path = *flags.ConfigFilePath
		explicit = true
	}

	if path != "" {
		if err := loadFromFile(cfg, path, explicit); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}

func loadFromFile(cfg *Config, path string, explicit bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		logger.Debugf("No config file at %s, using defaults", path)
		return nil
	}

	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file %s: unrecognized keys: %v", path, undecoded)
	}
	logger.Debugf("Loaded configuration from %s", path)
	return nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		logger.Warnf("Invalid log level %q, using %q", c.Logger.LogLevel, defaults.Logger.LogLevel)
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	switch c.Output.Format {
	case "auto", "plain", "styled", "ansi", "":
	default:
		logger.Warnf("Invalid output format %q, using %q", c.Output.Format, defaults.Output.Format)
		c.Output.Format = defaults.Output.Format
	}

	if c.Output.SecondaryColor != "" {
		if color := tcell.GetColor(c.Output.SecondaryColor); color == tcell.ColorDefault {
			logger.Warnf("Unknown secondary color %q, using %q", c.Output.SecondaryColor, defaults.Output.SecondaryColor)
			c.Output.SecondaryColor = defaults.Output.SecondaryColor
		}
	} else {
		c.Output.SecondaryColor = defaults.Output.SecondaryColor
	}

	if c.Output.PreviousLines < 0 {
		c.Output.PreviousLines = 0
	}
	if c.Output.NextLines < 0 {
		c.Output.NextLines = 0
	}
	if c.Output.MiddleLines < 0 {
		c.Output.MiddleLines = 0
	}
	if c.Output.SeparatorWidth <= 0 {
		c.Output.SeparatorWidth = defaults.Output.SeparatorWidth
	}
}

// SecondaryColor resolves the configured color name.
func (c *Config) SecondaryColor() tcell.Color {
	return tcell.GetColor(c.Output.SecondaryColor)
}
