package glasspane

import "time"

// Status represents the current state of a Window.
type Status struct {
	// Running indicates if the window is open.
	Running bool
	// StartTime is when Run was last called (zero if never).
	StartTime time.Time
	// Variant is the preset the theme was built from.
	Variant string
	// ThemeSource describes where the theme came from: a file path,
	// "preset:<name>", "embedded:<path>" or "reader:<format>".
	ThemeSource string
	// Mode is the display mode, "normal" or "fullscreen".
	Mode string
}
