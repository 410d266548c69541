package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marcus/popup/internal/popup"
)

const configFile = ".popup/config.json"

// Config holds the user-tunable popup settings
type Config struct {
	AnimationMs     int     `json:"animation_ms,omitempty"`
	FrameMs         int     `json:"frame_ms,omitempty"`
	BackdropColor   string  `json:"backdrop_color,omitempty"`
	BackdropOpacity float64 `json:"backdrop_opacity,omitempty"`
	PanelWidth      int     `json:"panel_width,omitempty"`
	CloseOnBackdrop bool    `json:"close_on_backdrop,omitempty"`
}

// Defaults used for any field left unset in the config file
const (
	DefaultFrameMs    = 33
	DefaultPanelWidth = 50
)

// Load reads the config from disk. A missing file yields an empty config.
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Validate rejects values that cannot be rendered
func (c *Config) Validate() error {
	if c.AnimationMs < 0 {
		return fmt.Errorf("animation_ms must not be negative, got %d", c.AnimationMs)
	}
	if c.FrameMs < 0 {
		return fmt.Errorf("frame_ms must not be negative, got %d", c.FrameMs)
	}
	if c.BackdropOpacity < 0 || c.BackdropOpacity > 1 {
		return fmt.Errorf("backdrop_opacity must be within [0, 1], got %v", c.BackdropOpacity)
	}
	if c.PanelWidth < 0 {
		return fmt.Errorf("panel_width must not be negative, got %d", c.PanelWidth)
	}
	return nil
}

// Appearance converts the config into render settings, filling defaults
func (c *Config) Appearance() popup.Appearance {
	a := popup.DefaultAppearance()
	if c.AnimationMs > 0 {
		a.AnimationDuration = time.Duration(c.AnimationMs) * time.Millisecond
	}
	if c.BackdropColor != "" {
		a.BackdropColor = c.BackdropColor
	}
	if c.BackdropOpacity > 0 {
		a.BackdropOpacity = c.BackdropOpacity
	}
	return a
}

// FrameInterval returns the animation tick interval
func (c *Config) FrameInterval() time.Duration {
	if c.FrameMs > 0 {
		return time.Duration(c.FrameMs) * time.Millisecond
	}
	return DefaultFrameMs * time.Millisecond
}

// Width returns the panel width in cells
func (c *Config) Width() int {
	if c.PanelWidth > 0 {
		return c.PanelWidth
	}
	return DefaultPanelWidth
}
