package chrome

import "strings"

// MouseButton identifies a single pointer button.
type MouseButton int

const (
	// ButtonLeft is the primary button.
	ButtonLeft MouseButton = iota
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the middle button or wheel press.
	ButtonMiddle
)

// String returns the lower-case button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Buttons is the set of buttons held down during a pointer move.
type Buttons uint8

// Held builds a Buttons set from individual buttons.
func Held(bs ...MouseButton) Buttons {
	var set Buttons
	for _, b := range bs {
		set = set.With(b)
	}
	return set
}

// With returns the set with b added.
func (s Buttons) With(b MouseButton) Buttons {
	if b < 0 || b > ButtonMiddle {
		return s
	}
	return s | 1<<uint(b)
}

// Has reports whether b is held.
func (s Buttons) Has(b MouseButton) bool {
	if b < 0 || b > ButtonMiddle {
		return false
	}
	return s&(1<<uint(b)) != 0
}

// String returns the held buttons joined by '+', or "none".
func (s Buttons) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for b := ButtonLeft; b <= ButtonMiddle; b++ {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	return strings.Join(names, "+")
}
