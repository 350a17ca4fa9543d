package render

import (
	"image/color"
	"testing"

	"github.com/opd-ai/glasspane/internal/chrome"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"zero opacity", func(c *Config) { c.Style.Opacity = 0 }, true},
		{"opacity above one", func(c *Config) { c.Style.Opacity = 1.5 }, true},
		{"half opacity", func(c *Config) { c.Style.Opacity = 0.5 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStyleFade(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 200}
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{1, 200},
		{0.5, 100},
		{0, 200},
		{2, 200},
	}
	for _, tt := range tests {
		got := Style{Opacity: tt.opacity}.fade(c)
		if got.A != tt.want || got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("fade(opacity %v) = %+v, want alpha %d", tt.opacity, got, tt.want)
		}
	}
}

func TestInitialGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.X, cfg.Y = 40, 50
	if got := initialGeometry(cfg); got != (chrome.Rect{W: 500, H: 400}) {
		t.Errorf("centered initialGeometry = %v", got)
	}
	cfg.Centered = false
	if got := initialGeometry(cfg); got != (chrome.Rect{X: 40, Y: 50, W: 500, H: 400}) {
		t.Errorf("initialGeometry = %v", got)
	}
}

func TestSizeLimit(t *testing.T) {
	if sizeLimit(0) != -1 || sizeLimit(-3) != -1 || sizeLimit(120) != 120 {
		t.Error("sizeLimit should map non-positive values to -1")
	}
}
