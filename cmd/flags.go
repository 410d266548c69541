package cmd

import (
	"github.com/marcus/popup/internal/config"
	"github.com/spf13/pflag"
)

// addAppearanceFlags registers flags that override config file values.
func addAppearanceFlags(fs *pflag.FlagSet) {
	fs.Int("animation-ms", 0, "open/close animation length in milliseconds (default 600)")
	fs.Int("frame-ms", 0, "animation frame interval in milliseconds")
	fs.String("backdrop-color", "", "backdrop color as #rrggbb")
	fs.Float64("backdrop-opacity", 0, "backdrop opacity in [0, 1] (default 0.3)")
	fs.Int("panel-width", 0, "popup panel width in cells")
	fs.Bool("close-on-backdrop", false, "close the popup when the backdrop is clicked")
}

// applyAppearanceFlags copies explicitly set flags onto c.
func applyAppearanceFlags(fs *pflag.FlagSet, c *config.Config) {
	if fs.Changed("animation-ms") {
		c.AnimationMs, _ = fs.GetInt("animation-ms")
	}
	if fs.Changed("frame-ms") {
		c.FrameMs, _ = fs.GetInt("frame-ms")
	}
	if fs.Changed("backdrop-color") {
		c.BackdropColor, _ = fs.GetString("backdrop-color")
	}
	if fs.Changed("backdrop-opacity") {
		c.BackdropOpacity, _ = fs.GetFloat64("backdrop-opacity")
	}
	if fs.Changed("panel-width") {
		c.PanelWidth, _ = fs.GetInt("panel-width")
	}
	if fs.Changed("close-on-backdrop") {
		c.CloseOnBackdrop, _ = fs.GetBool("close-on-backdrop")
	}
}
