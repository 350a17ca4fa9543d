package config

import (
	"strings"
	"testing"

	"github.com/opd-ai/glasspane/internal/chrome"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != DefaultWidth || cfg.Window.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Window.Width, cfg.Window.Height, DefaultWidth, DefaultHeight)
	}
	if !cfg.Window.Centered() {
		t.Error("default window should be centered")
	}
	if cfg.Theme.Background != DefaultBackground {
		t.Errorf("background = %v, want %v", cfg.Theme.Background, DefaultBackground)
	}
	if cfg.Chrome.GripSize != chrome.DefaultGripSize {
		t.Errorf("grip size = %d, want %d", cfg.Chrome.GripSize, chrome.DefaultGripSize)
	}
	if err := NewValidator().Validate(&cfg).Error(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		region  chrome.RegionMode
		actions int
		radius  float64
	}{
		{"classic", chrome.RegionWholeWindow, 0, 15},
		{"titlebar", chrome.RegionTitleStrip, 0, 12},
		{"toolbar", chrome.RegionTitleStrip, 2, 10},
		{"frosted", chrome.RegionWholeWindow, 0, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Preset(tt.name)
			if err != nil {
				t.Fatalf("Preset(%q) error: %v", tt.name, err)
			}
			if cfg.Variant != tt.name {
				t.Errorf("Variant = %q", cfg.Variant)
			}
			if cfg.Chrome.DragRegion != tt.region {
				t.Errorf("DragRegion = %v, want %v", cfg.Chrome.DragRegion, tt.region)
			}
			if len(cfg.Chrome.Actions) != tt.actions {
				t.Errorf("len(Actions) = %d, want %d", len(cfg.Chrome.Actions), tt.actions)
			}
			if cfg.Theme.CornerRadius != tt.radius {
				t.Errorf("CornerRadius = %g, want %g", cfg.Theme.CornerRadius, tt.radius)
			}
			if err := NewValidator().WithStrictMode(true).Validate(&cfg).Error(); err != nil {
				t.Errorf("preset fails strict validation: %v", err)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("neon"); err == nil {
		t.Error("Preset(neon) succeeded")
	}
	cfg, err := Preset("")
	if err != nil || cfg.Variant != DefaultVariant {
		t.Errorf("Preset(\"\") = %q, %v", cfg.Variant, err)
	}
}

func TestPresetsDoNotShareActions(t *testing.T) {
	a, _ := Preset("toolbar")
	a.Chrome.Actions[0] = chrome.ActionPin
	b, _ := Preset("toolbar")
	if b.Chrome.Actions[0] != chrome.ActionMinimize {
		t.Error("presets share the actions slice")
	}
}

func TestChromeOptions(t *testing.T) {
	cfg, _ := Preset("toolbar")
	opts := cfg.ChromeOptions()

	if opts.Region != chrome.TitleStrip(DefaultTitleHeight) {
		t.Errorf("Region = %+v", opts.Region)
	}
	if opts.Visuals.Normal.CornerRadius != 10 || opts.Visuals.Fullscreen.CornerRadius != 0 {
		t.Errorf("Visuals = %+v", opts.Visuals)
	}
	if opts.Layout != chrome.DefaultLayout() {
		t.Errorf("Layout = %+v", opts.Layout)
	}
	if opts.MinWidth != cfg.Window.MinWidth || opts.GripSize != cfg.Chrome.GripSize {
		t.Errorf("opts = %+v", opts)
	}
	if got := cfg.Chrome.ActionNames(); got != "minimize,pin" {
		t.Errorf("ActionNames() = %q", got)
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()
	for _, want := range []string{"variant=" + DefaultVariant, "background=" + FormatColor(DefaultBackground)} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
