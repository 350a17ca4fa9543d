package chrome

import (
	"fmt"
	"strings"
)

// Action is an extra toolbar control beyond close and fullscreen.
type Action int

const (
	// ActionMinimize iconifies the window.
	ActionMinimize Action = iota
	// ActionPin toggles keeping the window above others.
	ActionPin
)

// String returns the configuration name of the action.
func (a Action) String() string {
	switch a {
	case ActionMinimize:
		return "minimize"
	case ActionPin:
		return "pin"
	default:
		return "unknown"
	}
}

// Glyph returns the label drawn on the action's button.
func (a Action) Glyph() string {
	switch a {
	case ActionMinimize:
		return "–"
	case ActionPin:
		return "⌃"
	default:
		return "?"
	}
}

// ParseAction parses a single action name.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimize", "minimise", "iconify":
		return ActionMinimize, nil
	case "pin", "float", "on-top":
		return ActionPin, nil
	default:
		return 0, fmt.Errorf("unknown toolbar action: %q", s)
	}
}

// ParseActions parses a comma-separated action list. Empty input yields nil.
func ParseActions(s string) ([]Action, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	actions := make([]Action, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := ParseAction(part)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Layout holds the top-bar metrics used to place the control buttons.
type Layout struct {
	// ButtonSize is the side of each square button.
	ButtonSize int
	// Spacing is the horizontal gap between adjacent buttons.
	Spacing int
	// Margin is the gap between the buttons and the window's top and right edges.
	Margin int
}

// DefaultLayout returns 30px buttons with a 6px gap and a 10px margin.
func DefaultLayout() Layout {
	return Layout{ButtonSize: 30, Spacing: 6, Margin: 10}
}

// TopBarHeight is the height occupied by the button row including margins.
func (l Layout) TopBarHeight() int {
	return l.ButtonSize + 2*l.Margin
}

// Controls is the computed placement of every button for one window width.
// Rects are window-local.
type Controls struct {
	Close   Rect
	Toggle  Rect
	Actions []ActionButton
}

// ActionButton is a placed toolbar action.
type ActionButton struct {
	Action Action
	Rect   Rect
}

// Place lays out the buttons right-aligned for a window of the given width.
// From left to right the order is: actions as given, toggle, close.
func (l Layout) Place(width int, actions []Action) Controls {
	step := l.ButtonSize + l.Spacing
	x := width - l.Margin - l.ButtonSize
	btn := func(x int) Rect {
		return Rect{X: x, Y: l.Margin, W: l.ButtonSize, H: l.ButtonSize}
	}

	c := Controls{Close: btn(x)}
	x -= step
	c.Toggle = btn(x)

	c.Actions = make([]ActionButton, len(actions))
	for i := len(actions) - 1; i >= 0; i-- {
		x -= step
		c.Actions[i] = ActionButton{Action: actions[i], Rect: btn(x)}
	}
	return c
}

// HitKind classifies what lies under a window-local point.
type HitKind int

const (
	// HitNone is outside the window.
	HitNone HitKind = iota
	// HitBody is inside the window but outside the draggable region.
	HitBody
	// HitDrag is inside the draggable region.
	HitDrag
	// HitGrip is on the visible resize grip.
	HitGrip
	// HitToggle is on the fullscreen toggle.
	HitToggle
	// HitClose is on the close button.
	HitClose
	// HitAction is on a toolbar action; Hit.Action says which.
	HitAction
)

// String returns a short name for the hit kind.
func (k HitKind) String() string {
	switch k {
	case HitNone:
		return "none"
	case HitBody:
		return "body"
	case HitDrag:
		return "drag"
	case HitGrip:
		return "grip"
	case HitToggle:
		return "toggle"
	case HitClose:
		return "close"
	case HitAction:
		return "action"
	default:
		return "unknown"
	}
}

// Hit is the result of Chrome.HitTest.
type Hit struct {
	Kind   HitKind
	Action Action
}

// IsControl reports whether the hit is on a clickable button.
func (h Hit) IsControl() bool {
	return h.Kind == HitToggle || h.Kind == HitClose || h.Kind == HitAction
}
