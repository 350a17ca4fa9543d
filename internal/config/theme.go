package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// themeFile is the format-independent content of a theme file. Nil fields
// were not set and leave the preset's value in place.
type themeFile struct {
	Variant *string `yaml:"variant"`

	Title     *string `yaml:"title"`
	Width     *int    `yaml:"width"`
	Height    *int    `yaml:"height"`
	X         *int    `yaml:"x"`
	Y         *int    `yaml:"y"`
	MinWidth  *int    `yaml:"min_width"`
	MinHeight *int    `yaml:"min_height"`

	Background   *string  `yaml:"background"`
	Border       *string  `yaml:"border_color"`
	BorderWidth  *float64 `yaml:"border_width"`
	CornerRadius *float64 `yaml:"corner_radius"`
	ButtonRadius *float64 `yaml:"button_radius"`
	Button       *string  `yaml:"button_color"`
	ButtonHover  *string  `yaml:"button_hover"`
	CloseHover   *string  `yaml:"close_hover"`
	Foreground   *string  `yaml:"foreground"`
	Grip         *string  `yaml:"grip_color"`
	FontSize     *float64 `yaml:"font_size"`
	ShowTitle    *bool    `yaml:"show_title"`
	Opacity      *float64 `yaml:"opacity"`

	DragRegion    *string    `yaml:"drag_region"`
	TitleHeight   *int       `yaml:"title_height"`
	Toolbar       actionList `yaml:"toolbar"`
	GripSize      *int       `yaml:"grip_size"`
	ButtonSize    *int       `yaml:"button_size"`
	ButtonSpacing *int       `yaml:"button_spacing"`
	ButtonMargin  *int       `yaml:"button_margin"`
}

// build starts from the named variant (or the default) and applies every
// field that was set.
func (t *themeFile) build() (*Config, error) {
	variant := DefaultVariant
	if t.Variant != nil {
		variant = *t.Variant
	}
	cfg, err := Preset(variant)
	if err != nil {
		return nil, err
	}
	if err := t.apply(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (t *themeFile) apply(cfg *Config) error {
	setString(&cfg.Window.Title, t.Title)
	setInt(&cfg.Window.Width, t.Width)
	setInt(&cfg.Window.Height, t.Height)
	setInt(&cfg.Window.X, t.X)
	setInt(&cfg.Window.Y, t.Y)
	setInt(&cfg.Window.MinWidth, t.MinWidth)
	setInt(&cfg.Window.MinHeight, t.MinHeight)

	setFloat(&cfg.Theme.BorderWidth, t.BorderWidth)
	setFloat(&cfg.Theme.CornerRadius, t.CornerRadius)
	setFloat(&cfg.Theme.ButtonRadius, t.ButtonRadius)
	setFloat(&cfg.Theme.FontSize, t.FontSize)
	setFloat(&cfg.Theme.Opacity, t.Opacity)
	if t.ShowTitle != nil {
		cfg.Theme.ShowTitle = *t.ShowTitle
	}

	colorFields := []struct {
		key    string
		src    *string
		target *color.RGBA
	}{
		{"background", t.Background, &cfg.Theme.Background},
		{"border_color", t.Border, &cfg.Theme.Border},
		{"button_color", t.Button, &cfg.Theme.Button},
		{"button_hover", t.ButtonHover, &cfg.Theme.ButtonHover},
		{"close_hover", t.CloseHover, &cfg.Theme.CloseHover},
		{"foreground", t.Foreground, &cfg.Theme.Foreground},
		{"grip_color", t.Grip, &cfg.Theme.Grip},
	}
	for _, cf := range colorFields {
		if cf.src == nil {
			continue
		}
		c, err := ParseColor(*cf.src)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", cf.key, err)
		}
		*cf.target = c
	}

	if t.DragRegion != nil {
		mode, err := chrome.ParseRegionMode(*t.DragRegion)
		if err != nil {
			return fmt.Errorf("invalid drag_region: %w", err)
		}
		cfg.Chrome.DragRegion = mode
	}
	setInt(&cfg.Chrome.TitleHeight, t.TitleHeight)
	setInt(&cfg.Chrome.GripSize, t.GripSize)
	setInt(&cfg.Chrome.ButtonSize, t.ButtonSize)
	setInt(&cfg.Chrome.ButtonSpacing, t.ButtonSpacing)
	setInt(&cfg.Chrome.ButtonMargin, t.ButtonMargin)

	if t.Toolbar != nil {
		cfg.Chrome.Actions = append([]chrome.Action{}, t.Toolbar...)
	}
	return nil
}

// actionList is a toolbar given either as a list of action names or as one
// comma-separated string. A set but empty list is non-nil and clears the
// preset's toolbar.
type actionList []chrome.Action

// UnmarshalYAML accepts a sequence of names or a comma-separated scalar.
func (l *actionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return l.setString(node.Value)
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		return l.setNames(names)
	default:
		return fmt.Errorf("line %d: toolbar must be a list or a string", node.Line)
	}
}

func (l *actionList) setString(s string) error {
	actions, err := chrome.ParseActions(s)
	if err != nil {
		return fmt.Errorf("invalid toolbar: %w", err)
	}
	*l = append(actionList{}, actions...)
	return nil
}

func (l *actionList) setNames(names []string) error {
	actions := make(actionList, 0, len(names))
	for _, name := range names {
		a, err := chrome.ParseAction(name)
		if err != nil {
			return fmt.Errorf("invalid toolbar: %w", err)
		}
		actions = append(actions, a)
	}
	*l = actions
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
