// Package config loads the application configuration: defaults, then the
// TOML file, then command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/drift/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	History  HistoryConfig  `toml:"history"`
	Modeling ModelingConfig `toml:"modeling"`
	Canvas   CanvasConfig   `toml:"canvas"`

	// Warnings collects problems found while loading that did not stop
	// it. They are logged once the logger is up.
	Warnings []string `toml:"-"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// ModelingConfig tunes command behaviors.
type ModelingConfig struct {
	// AutoResizePadding is the gap a grown container keeps around the
	// child that made it grow.
	AutoResizePadding float64 `toml:"auto_resize_padding"`
}

// CanvasConfig holds front-end settings. Steps are in canvas units; one
// unit is one terminal cell.
type CanvasConfig struct {
	NudgeStep       float64 `toml:"nudge_step"`
	BigNudgeStep    float64 `toml:"big_nudge_step"`
	SpaceStep       float64 `toml:"space_step"`
	Theme           string  `toml:"theme"`
	SystemClipboard bool    `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		History: HistoryConfig{
			MaxDepth: DefaultMaxHistory,
		},
		Modeling: ModelingConfig{
			AutoResizePadding: DefaultAutoResizePadding,
		},
		Canvas: CanvasConfig{
			NudgeStep:       DefaultNudgeStep,
			BigNudgeStep:    DefaultBigNudgeStep,
			SpaceStep:       DefaultSpaceStep,
			Theme:           DefaultTheme,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultPath returns ~/.config/drift/config.toml, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// Keys the file sets replace the defaults already in cfg; the others stay.
func loadFromFile(filePath string, cfg *Config) (undecoded []string, err error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.History.MaxDepth <= 0 {
		c.History.MaxDepth = defaults.History.MaxDepth
	}
	if c.Modeling.AutoResizePadding < 0 {
		c.Modeling.AutoResizePadding = defaults.Modeling.AutoResizePadding
	}
	if c.Canvas.NudgeStep <= 0 {
		c.Canvas.NudgeStep = defaults.Canvas.NudgeStep
	}
	if c.Canvas.BigNudgeStep <= 0 {
		c.Canvas.BigNudgeStep = defaults.Canvas.BigNudgeStep
	}
	if c.Canvas.SpaceStep <= 0 {
		c.Canvas.SpaceStep = defaults.Canvas.SpaceStep
	}
	if c.Canvas.Theme == "" {
		c.Canvas.Theme = defaults.Canvas.Theme
	}
}

// Load builds the effective configuration. An empty configFilePath means
// DefaultPath; flags may be nil. A file that fails to parse is reported as
// the error while the returned config falls back to defaults plus flags.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}

	var loadErr error
	if path != "" {
		undecoded, err := loadFromFile(path, cfg)
		if err != nil {
			// Keep going with defaults; the caller reports the error.
			loadErr = err
			cfg = NewDefaultConfig()
		}
		cfg.Warnings = undecodedWarnings(path, undecoded)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}

func undecodedWarnings(path string, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("config file '%s': unrecognized keys: %v", path, keys)}
}
