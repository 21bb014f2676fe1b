// Package config holds the chart generator's configuration: directory layout,
// smoothing windows, and output formats. Defaults match the agent's
// conventions (logs under ./log, charts under ./graph); an optional TOML file
// overrides them, CLI flags override both.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "atcharts.toml"

type Config struct {
	LogDir       string   `toml:"log_dir"`
	ChartDir     string   `toml:"chart_dir"`
	RewardWindow int      `toml:"reward_window"`
	TimeWindow   int      `toml:"time_window"`
	Extensions   []string `toml:"extensions"`
	ChartWidth   int      `toml:"chart_width"`
	ChartHeight  int      `toml:"chart_height"`
	Caption      bool     `toml:"caption"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogDir:       "log",
		ChartDir:     "graph",
		RewardWindow: 100,
		TimeWindow:   100,
		Extensions:   []string{"png"},
		ChartWidth:   1100,
		ChartHeight:  340,
	}
}

// Load returns defaults overlaid with the TOML file at path. An empty path
// means DefaultFile, which is allowed to be absent; an explicit path must
// exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes extensions (lowercase, no leading dot) and rejects
// settings the renderer cannot honor.
func (c *Config) Validate() error {
	if c.RewardWindow < 1 || c.TimeWindow < 1 {
		return fmt.Errorf("smoothing windows must be >= 1 (reward=%d time=%d)", c.RewardWindow, c.TimeWindow)
	}
	if c.ChartWidth < 1 || c.ChartHeight < 1 {
		return fmt.Errorf("chart size must be positive (%dx%d)", c.ChartWidth, c.ChartHeight)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one output extension is required")
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		switch ext {
		case "png", "svg":
			c.Extensions[i] = ext
		default:
			return fmt.Errorf("unsupported output extension %q (png and svg are supported)", ext)
		}
	}
	return nil
}
