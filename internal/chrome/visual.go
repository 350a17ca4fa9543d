package chrome

// Mode is the display mode of the window.
type Mode int

const (
	// ModeNormal is the windowed mode with rounded corners and a visible grip.
	ModeNormal Mode = iota
	// ModeFullscreen covers the display with square corners and no grip.
	ModeFullscreen
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// Glyphs used on the fullscreen toggle.
const (
	GlyphMaximize = "⛶"
	GlyphRestore  = "❐"
	GlyphClose    = "×"
)

// Visual is the set of presentation choices that depend on the display mode.
type Visual struct {
	// CornerRadius is the radius of the window's outer corners in pixels.
	CornerRadius float64
	// TopBarRounded reports whether the top bar follows the rounded corners.
	TopBarRounded bool
	// GripVisible reports whether the resize grip is drawn and interactive.
	GripVisible bool
	// ToggleGlyph is the label of the fullscreen toggle.
	ToggleGlyph string
}

// Visuals holds the two precomputed variants, selected by Mode.
type Visuals struct {
	Normal     Visual
	Fullscreen Visual
}

// DefaultVisuals returns the standard pair of variants for a window with the
// given corner radius.
func DefaultVisuals(radius float64) Visuals {
	return Visuals{
		Normal: Visual{
			CornerRadius:  radius,
			TopBarRounded: true,
			GripVisible:   true,
			ToggleGlyph:   GlyphMaximize,
		},
		Fullscreen: Visual{
			CornerRadius:  0,
			TopBarRounded: false,
			GripVisible:   false,
			ToggleGlyph:   GlyphRestore,
		},
	}
}

// For returns the variant for m.
func (v Visuals) For(m Mode) Visual {
	if m == ModeFullscreen {
		return v.Fullscreen
	}
	return v.Normal
}
