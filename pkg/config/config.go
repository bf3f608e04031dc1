// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all runtime settings. The road geometry and driving
// constants are fixed in code and deliberately absent here.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Skyline SkylineConfig `yaml:"skyline"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Scale      int    `yaml:"scale"` // window size as a multiple of the 640x480 canvas
	Fullscreen bool   `yaml:"fullscreen"`
	TPS        int    `yaml:"tps"` // simulation ticks per second
}

// SkylineConfig holds backdrop generation settings.
type SkylineConfig struct {
	Seed int64 `yaml:"seed"` // 0 picks a new skyline every run
}

// RenderConfig holds scene renderer settings.
type RenderConfig struct {
	StrictProjection bool `yaml:"strict_projection"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Sunset Drive",
			Scale:      1,
			Fullscreen: false,
			TPS:        60,
		},
		Skyline: SkylineConfig{
			Seed: 0,
		},
		Render: RenderConfig{
			StrictProjection: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window.scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Window.TPS < 1 {
		return fmt.Errorf("window.tps must be at least 1, got %d", c.Window.TPS)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// SkylineSeed returns the configured seed, or a time-based one when unset
func (c *Config) SkylineSeed() int64 {
	if c.Skyline.Seed != 0 {
		return c.Skyline.Seed
	}
	return time.Now().UnixNano()
}
