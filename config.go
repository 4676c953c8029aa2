package jigsaw

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds window, asset, and puzzle settings for Run.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// ImagePath is the source picture. When empty, the window opens with no
	// puzzle until an image file is dropped onto it.
	ImagePath string `yaml:"image"`

	// ScriptPath optionally names a JSON test script to play back.
	ScriptPath    string `yaml:"script"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	ShowFPS bool `yaml:"show_fps"`
	Debug   bool `yaml:"debug"`

	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `yaml:"log_level"`

	// FlashDuration is the snap highlight length in seconds. Zero disables it.
	FlashDuration float32 `yaml:"flash_duration"`

	Puzzle PuzzleConfig `yaml:"puzzle"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:         "Jigsaw",
		Width:         1280,
		Height:        720,
		ScreenshotDir: "screenshots",
		FlashDuration: 0.4,
		Puzzle: PuzzleConfig{
			Grid: 4,
		},
	}
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Fields missing from data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Puzzle.Grid <= 0 {
		return fmt.Errorf("config: puzzle.grid: %w: %d", ErrInvalidGrid, c.Puzzle.Grid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FlashDuration < 0 {
		return fmt.Errorf("config: flash_duration %v must not be negative", c.FlashDuration)
	}
	if _, err := c.logLevel(); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// logLevel parses LogLevel. An empty LogLevel parses as info.
func (c Config) logLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return lvl, nil
	}
	err := lvl.UnmarshalText([]byte(c.LogLevel))
	return lvl, err
}

// NewLogger returns a text logger on stderr at the configured level, or nil
// when LogLevel is empty.
func (c Config) NewLogger() *slog.Logger {
	if c.LogLevel == "" {
		return nil
	}
	lvl, err := c.logLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
