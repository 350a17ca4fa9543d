package config

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// Default values for configuration options.
const (
	// DefaultTitle is the default window title.
	DefaultTitle = "glasspane"
	// DefaultWidth is the default window width in pixels.
	DefaultWidth = 500
	// DefaultHeight is the default window height in pixels.
	DefaultHeight = 400
	// DefaultFontSize is the default title font size in points.
	DefaultFontSize = 13.0
	// DefaultTitleHeight is the default height of the draggable title strip.
	DefaultTitleHeight = 40
	// DefaultVariant is the preset used when none is named.
	DefaultVariant = "classic"
)

// Default colors, taken from the classic variant.
var (
	// DefaultBackground is a dark, translucent body.
	DefaultBackground = color.RGBA{R: 30, G: 30, B: 30, A: 220}
	// DefaultBorder is a faint white outline.
	DefaultBorder = color.RGBA{R: 255, G: 255, B: 255, A: 30}
	// DefaultButton is the resting button fill.
	DefaultButton = color.RGBA{R: 255, G: 255, B: 255, A: 20}
	// DefaultButtonHover is the hovered button fill.
	DefaultButtonHover = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	// DefaultCloseHover is the hovered close button fill.
	DefaultCloseHover = color.RGBA{R: 0xe8, G: 0x11, B: 0x23, A: 255}
	// DefaultForeground is the glyph and title color.
	DefaultForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DefaultGripColor is the color of the grip ridges.
	DefaultGripColor = color.RGBA{R: 255, G: 255, B: 255, A: 90}
)

// DefaultConfig returns a Config with sensible default values.
// It is the classic preset.
func DefaultConfig() Config {
	return Config{
		Variant: DefaultVariant,
		Window: WindowConfig{
			Title:     DefaultTitle,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			X:         -1,
			Y:         -1,
			MinWidth:  chrome.DefaultMinWidth,
			MinHeight: chrome.DefaultMinHeight,
		},
		Theme: ThemeConfig{
			Background:   DefaultBackground,
			Border:       DefaultBorder,
			BorderWidth:  1,
			CornerRadius: 15,
			ButtonRadius: 5,
			Button:       DefaultButton,
			ButtonHover:  DefaultButtonHover,
			CloseHover:   DefaultCloseHover,
			Foreground:   DefaultForeground,
			Grip:         DefaultGripColor,
			FontSize:     DefaultFontSize,
			ShowTitle:    false,
			Opacity:      1,
		},
		Chrome: ChromeConfig{
			DragRegion:    chrome.RegionWholeWindow,
			TitleHeight:   DefaultTitleHeight,
			GripSize:      chrome.DefaultGripSize,
			ButtonSize:    30,
			ButtonSpacing: 6,
			ButtonMargin:  10,
		},
	}
}

// presets maps variant names to the adjustments they make on DefaultConfig.
var presets = map[string]func(*Config){
	"classic": func(*Config) {},
	"titlebar": func(c *Config) {
		c.Theme.Background = color.RGBA{R: 24, G: 26, B: 32, A: 230}
		c.Theme.CornerRadius = 12
		c.Theme.ShowTitle = true
		c.Chrome.DragRegion = chrome.RegionTitleStrip
	},
	"toolbar": func(c *Config) {
		c.Theme.Background = color.RGBA{R: 20, G: 20, B: 24, A: 235}
		c.Theme.CornerRadius = 10
		c.Theme.ButtonRadius = 4
		c.Theme.ShowTitle = true
		c.Chrome.DragRegion = chrome.RegionTitleStrip
		c.Chrome.Actions = []chrome.Action{chrome.ActionMinimize, chrome.ActionPin}
	},
	"frosted": func(c *Config) {
		c.Theme.Background = color.RGBA{R: 240, G: 240, B: 245, A: 170}
		c.Theme.Border = color.RGBA{R: 0, G: 0, B: 0, A: 40}
		c.Theme.CornerRadius = 18
		c.Theme.ButtonRadius = 15
		c.Theme.Button = color.RGBA{R: 0, G: 0, B: 0, A: 20}
		c.Theme.ButtonHover = color.RGBA{R: 0, G: 0, B: 0, A: 45}
		c.Theme.Foreground = color.RGBA{R: 30, G: 30, B: 35, A: 255}
		c.Theme.Grip = color.RGBA{R: 0, G: 0, B: 0, A: 80}
		c.Theme.Opacity = 0.95
	},
}

// Preset returns the configuration for a named variant.
func Preset(name string) (Config, error) {
	if name == "" {
		name = DefaultVariant
	}
	adjust, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown variant %q (known: %v)", name, PresetNames())
	}
	cfg := DefaultConfig()
	cfg.Variant = name
	adjust(&cfg)
	return cfg, nil
}

// PresetNames returns the known variant names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
