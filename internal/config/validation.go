package config

import (
	"fmt"
	"strings"

	"github.com/opd-ai/glasspane/internal/chrome"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	// Errors contains all validation errors found.
	Errors []ValidationError
	// Warnings contains non-fatal issues, such as a title strip hidden behind
	// the button row.
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error message if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Validator checks a Config for values the window cannot honour.
type Validator struct {
	// strictMode turns warnings into errors.
	strictMode bool
}

// NewValidator creates a new Validator with default settings.
func NewValidator() *Validator {
	return &Validator{}
}

// WithStrictMode makes every warning an error.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strictMode = strict
	return v
}

// Validate performs validation of a Config.
func (v *Validator) Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	v.validateWindow(&cfg.Window, result)
	v.validateTheme(&cfg.Theme, &cfg.Window, result)
	v.validateChrome(&cfg.Chrome, &cfg.Window, result)

	if v.strictMode {
		result.Errors = append(result.Errors, result.Warnings...)
		result.Warnings = nil
	}
	return result
}

func (v *Validator) validateWindow(wc *WindowConfig, result *ValidationResult) {
	if wc.MinWidth <= 0 {
		result.AddError("window.min_width", fmt.Sprintf("must be positive, got %d", wc.MinWidth))
	}
	if wc.MinHeight <= 0 {
		result.AddError("window.min_height", fmt.Sprintf("must be positive, got %d", wc.MinHeight))
	}
	if wc.Width < wc.MinWidth {
		result.AddError("window.width", fmt.Sprintf("must be at least min_width (%d), got %d", wc.MinWidth, wc.Width))
	}
	if wc.Height < wc.MinHeight {
		result.AddError("window.height", fmt.Sprintf("must be at least min_height (%d), got %d", wc.MinHeight, wc.Height))
	}
	if strings.TrimSpace(wc.Title) == "" {
		result.AddWarning("window.title", "empty title")
	}
}

func (v *Validator) validateTheme(tc *ThemeConfig, wc *WindowConfig, result *ValidationResult) {
	if tc.CornerRadius < 0 {
		result.AddError("theme.corner_radius", fmt.Sprintf("must be non-negative, got %g", tc.CornerRadius))
	}
	if limit := float64(min(wc.MinWidth, wc.MinHeight)) / 2; tc.CornerRadius > limit && limit > 0 {
		result.AddError("theme.corner_radius", fmt.Sprintf("must not exceed half the minimum window size (%g), got %g", limit, tc.CornerRadius))
	}
	if tc.ButtonRadius < 0 {
		result.AddError("theme.button_radius", fmt.Sprintf("must be non-negative, got %g", tc.ButtonRadius))
	}
	if tc.BorderWidth < 0 {
		result.AddError("theme.border_width", fmt.Sprintf("must be non-negative, got %g", tc.BorderWidth))
	}
	if tc.Opacity <= 0 || tc.Opacity > 1 {
		result.AddError("theme.opacity", fmt.Sprintf("must be in (0, 1], got %g", tc.Opacity))
	}
	if tc.FontSize <= 0 {
		result.AddError("theme.font_size", fmt.Sprintf("must be positive, got %g", tc.FontSize))
	}
	if tc.Background.A == 255 {
		result.AddWarning("theme.background", "fully opaque background; the window will not look translucent")
	}
}

func (v *Validator) validateChrome(cc *ChromeConfig, wc *WindowConfig, result *ValidationResult) {
	if cc.GripSize <= 0 {
		result.AddError("chrome.grip_size", fmt.Sprintf("must be positive, got %d", cc.GripSize))
	}
	if cc.ButtonSize <= 0 {
		result.AddError("chrome.button_size", fmt.Sprintf("must be positive, got %d", cc.ButtonSize))
	}
	if cc.ButtonSpacing < 0 {
		result.AddError("chrome.button_spacing", fmt.Sprintf("must be non-negative, got %d", cc.ButtonSpacing))
	}
	if cc.ButtonMargin < 0 {
		result.AddError("chrome.button_margin", fmt.Sprintf("must be non-negative, got %d", cc.ButtonMargin))
	}

	if cc.DragRegion == chrome.RegionTitleStrip {
		if cc.TitleHeight <= 0 {
			result.AddError("chrome.title_height", fmt.Sprintf("must be positive with a title drag region, got %d", cc.TitleHeight))
		} else if cc.TitleHeight > wc.MinHeight {
			result.AddWarning("chrome.title_height", "title strip taller than the minimum window height")
		}
	}

	buttons := len(cc.Actions) + 2
	row := buttons*cc.ButtonSize + (buttons-1)*cc.ButtonSpacing + 2*cc.ButtonMargin
	if row > wc.MinWidth {
		result.AddWarning("chrome.toolbar", fmt.Sprintf("button row (%dpx) wider than min_width (%d)", row, wc.MinWidth))
	}

	seen := make(map[chrome.Action]bool, len(cc.Actions))
	for _, a := range cc.Actions {
		if seen[a] {
			result.AddWarning("chrome.toolbar", fmt.Sprintf("duplicate action %q", a))
		}
		seen[a] = true
	}
}
