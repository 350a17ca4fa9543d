// Package config provides configuration data structures for glasspane.
// It defines the window, theme and chrome settings, the named presets that
// replace the four hand-written window variants, and parsers for Lua and
// YAML theme files.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// Config represents the complete glasspane configuration.
type Config struct {
	// Variant is the preset the configuration was built from.
	Variant string
	// Window contains window geometry and title settings.
	Window WindowConfig
	// Theme contains colors, radii and opacity.
	Theme ThemeConfig
	// Chrome contains drag-region, toolbar and grip settings.
	Chrome ChromeConfig
}

// WindowConfig holds window geometry settings.
type WindowConfig struct {
	// Title is the window title. It is drawn in the top bar when
	// Theme.ShowTitle is set and passed to the window manager.
	Title string
	// Width is the initial window width in pixels.
	Width int
	// Height is the initial window height in pixels.
	Height int
	// X and Y are the initial screen position. Negative values let the
	// toolkit center the window.
	X int
	Y int
	// MinWidth and MinHeight bound resizing from the grip.
	MinWidth  int
	MinHeight int
}

// Centered reports whether the initial position is left to the toolkit.
func (w WindowConfig) Centered() bool {
	return w.X < 0 || w.Y < 0
}

// ThemeConfig holds the cosmetic parameters. They are fixed once the window
// is built.
type ThemeConfig struct {
	// Background is the fill of the window body. Its alpha is the
	// window's translucency.
	Background color.RGBA
	// Border is the outline color of the window body.
	Border color.RGBA
	// BorderWidth is the outline width in pixels. Zero disables the outline.
	BorderWidth float64
	// CornerRadius is the radius of the window corners in Normal mode.
	CornerRadius float64
	// ButtonRadius is the corner radius of the control buttons.
	ButtonRadius float64
	// Button is the resting fill of the control buttons.
	Button color.RGBA
	// ButtonHover is the fill of a hovered button.
	ButtonHover color.RGBA
	// CloseHover is the fill of the hovered close button.
	CloseHover color.RGBA
	// Foreground is the color of glyphs and the title.
	Foreground color.RGBA
	// Grip is the color of the resize grip's ridges.
	Grip color.RGBA
	// FontSize is the size of the title text in points.
	FontSize float64
	// ShowTitle draws the window title in the top bar.
	ShowTitle bool
	// Opacity scales the alpha of everything drawn, in (0, 1].
	Opacity float64
}

// ChromeConfig holds the behavioral layout of the window chrome.
type ChromeConfig struct {
	// DragRegion selects where a press-and-drag moves the window.
	DragRegion chrome.RegionMode
	// TitleHeight is the height of the draggable title strip.
	TitleHeight int
	// Actions are the extra toolbar buttons.
	Actions []chrome.Action
	// GripSize is the side of the resize grip.
	GripSize int
	// ButtonSize, ButtonSpacing and ButtonMargin place the top-bar buttons.
	ButtonSize    int
	ButtonSpacing int
	ButtonMargin  int
}

// Region returns the draggable region described by c.
func (c ChromeConfig) Region() chrome.DraggableRegion {
	if c.DragRegion == chrome.RegionTitleStrip {
		return chrome.TitleStrip(c.TitleHeight)
	}
	return chrome.WholeWindow()
}

// Layout returns the top-bar button layout described by c.
func (c ChromeConfig) Layout() chrome.Layout {
	return chrome.Layout{
		ButtonSize: c.ButtonSize,
		Spacing:    c.ButtonSpacing,
		Margin:     c.ButtonMargin,
	}
}

// ChromeOptions converts the configuration into chrome.Options.
func (c *Config) ChromeOptions() chrome.Options {
	return chrome.Options{
		Region:    c.Chrome.Region(),
		Visuals:   chrome.DefaultVisuals(c.Theme.CornerRadius),
		Layout:    c.Chrome.Layout(),
		Actions:   append([]chrome.Action(nil), c.Chrome.Actions...),
		GripSize:  c.Chrome.GripSize,
		MinWidth:  c.Window.MinWidth,
		MinHeight: c.Window.MinHeight,
	}
}

// ActionNames returns the toolbar actions as a comma-separated list.
func (c ChromeConfig) ActionNames() string {
	names := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

// String summarises the configuration for log output.
func (c *Config) String() string {
	return fmt.Sprintf("variant=%s size=%dx%d region=%s actions=[%s] radius=%.0f background=%s",
		c.Variant, c.Window.Width, c.Window.Height, c.Chrome.DragRegion,
		c.Chrome.ActionNames(), c.Theme.CornerRadius, FormatColor(c.Theme.Background))
}
