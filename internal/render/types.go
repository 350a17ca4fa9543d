// Package render provides the Ebiten-based host for glasspane: it creates the
// frameless translucent window, feeds pointer input into the window chrome,
// carries out the chrome's geometry requests and draws the chrome.
package render

import (
	"fmt"
	"image/color"
)

// Config holds the window and drawing options for a Game.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width  int
	Height int
	// X and Y are the initial screen position, used unless Centered is set.
	X int
	Y int
	// Centered leaves initial placement to the toolkit.
	Centered bool
	// MinWidth and MinHeight are passed to the window system as size limits.
	MinWidth  int
	MinHeight int
	// Transparent requests a transparent framebuffer so the body's alpha
	// shows the desktop through the window. Needs a compositor on X11.
	Transparent bool
	// Style is the cosmetic theme.
	Style Style
}

// Style holds the colors and metrics used to draw the chrome. Colors are
// straight (non-premultiplied) RGBA.
type Style struct {
	Background   color.RGBA
	Border       color.RGBA
	BorderWidth  float64
	ButtonRadius float64
	Button       color.RGBA
	ButtonHover  color.RGBA
	CloseHover   color.RGBA
	Foreground   color.RGBA
	Grip         color.RGBA
	FontSize     float64
	ShowTitle    bool
	// Opacity scales the alpha of everything drawn.
	Opacity float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Title:       "glasspane",
		Width:       500,
		Height:      400,
		Centered:    true,
		MinWidth:    160,
		MinHeight:   120,
		Transparent: true,
		Style: Style{
			Background:   color.RGBA{R: 30, G: 30, B: 30, A: 220},
			Border:       color.RGBA{R: 255, G: 255, B: 255, A: 30},
			BorderWidth:  1,
			ButtonRadius: 5,
			Button:       color.RGBA{R: 255, G: 255, B: 255, A: 20},
			ButtonHover:  color.RGBA{R: 255, G: 255, B: 255, A: 40},
			CloseHover:   color.RGBA{R: 0xe8, G: 0x11, B: 0x23, A: 255},
			Foreground:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Grip:         color.RGBA{R: 255, G: 255, B: 255, A: 90},
			FontSize:     13,
			Opacity:      1,
		},
	}
}

// Validate checks if the Config has valid values.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.Style.Opacity <= 0 || c.Style.Opacity > 1 {
		return fmt.Errorf("opacity must be in (0, 1], got %g", c.Style.Opacity)
	}
	return nil
}

// fade applies the style's opacity to c and returns it as a straight-alpha
// color.NRGBA, which is what Ebiten expects from color.Color arguments.
func (s Style) fade(c color.RGBA) color.NRGBA {
	op := s.Opacity
	if op <= 0 || op > 1 {
		op = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A)*op + 0.5)}
}

// Logger receives the render layer's diagnostic messages. It matches the
// method set of *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
