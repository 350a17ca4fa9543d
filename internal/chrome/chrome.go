package chrome

// DefaultGripSize is the side of the resize grip and its inset from the
// window's bottom-right corner.
const DefaultGripSize = 20

// DefaultCornerRadius is the Normal-mode corner radius used when Options
// carries no visuals.
const DefaultCornerRadius = 15

// Default minimum window size enforced while resizing from the grip.
const (
	DefaultMinWidth  = 160
	DefaultMinHeight = 120
)

// Options configures a Chrome. All fields are fixed at construction.
type Options struct {
	// Region is where a press-and-drag moves the window.
	Region DraggableRegion
	// Visuals holds the Normal and Fullscreen presentation variants.
	Visuals Visuals
	// Layout places the top-bar buttons.
	Layout Layout
	// Actions are extra toolbar buttons, left of the fullscreen toggle.
	Actions []Action
	// GripSize is the side of the square resize grip.
	GripSize int
	// MinWidth and MinHeight bound grip resizing.
	MinWidth  int
	MinHeight int
}

// DefaultOptions returns options for a whole-window draggable chrome with
// 15px corners and no toolbar actions.
func DefaultOptions() Options {
	return Options{
		Region:    WholeWindow(),
		Visuals:   DefaultVisuals(DefaultCornerRadius),
		Layout:    DefaultLayout(),
		GripSize:  DefaultGripSize,
		MinWidth:  DefaultMinWidth,
		MinHeight: DefaultMinHeight,
	}
}

// Grip is the resize handle in the window's bottom-right corner.
type Grip struct {
	// Pos is the window-local top-left corner of the grip.
	Pos Point
	// Size is the side of the square grip.
	Size int
	// Visible is false while fullscreen.
	Visible bool
}

// Rect returns the grip's window-local bounds.
func (g Grip) Rect() Rect {
	return Rect{X: g.Pos.X, Y: g.Pos.Y, W: g.Size, H: g.Size}
}

// Chrome is the window-chrome state machine. Create it with New.
type Chrome struct {
	host Host
	opts Options

	mode     Mode
	width    int
	height   int
	controls Controls
	grip     Grip

	dragging bool
	anchor   Point

	resizing     bool
	resizeOrigin Point
	resizeStart  Point

	restore  Rect
	floating bool
	closed   bool
}

// New builds a Chrome in Normal mode and positions the grip for the host's
// current size.
func New(host Host, opts Options) *Chrome {
	if opts.GripSize <= 0 {
		opts.GripSize = DefaultGripSize
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout()
	}
	if opts.Visuals == (Visuals{}) {
		opts.Visuals = DefaultVisuals(DefaultCornerRadius)
	}
	c := &Chrome{
		host: host,
		opts: opts,
		mode: ModeNormal,
		grip: Grip{Size: opts.GripSize, Visible: true},
	}
	g := host.Geometry()
	c.OnWindowResized(g.W, g.H)
	return c
}

// OnPointerDown handles a button press at the screen position pos.
// insideDraggable tells whether the press landed in the draggable region.
// A left press inside the region while not fullscreen records the drag
// anchor; anything else clears a stale one.
func (c *Chrome) OnPointerDown(pos Point, button MouseButton, insideDraggable bool) {
	if c.closed {
		return
	}
	if button == ButtonLeft && insideDraggable && c.mode != ModeFullscreen {
		c.anchor = pos.Sub(c.host.Geometry().TopLeft())
		c.dragging = true
		return
	}
	c.dragging = false
	c.anchor = Point{}
}

// BeginGripResize starts a grip resize for a press at the screen position
// pos. It reports whether tracking started; it never does while fullscreen,
// for buttons other than left, or after Close.
func (c *Chrome) BeginGripResize(pos Point, button MouseButton) bool {
	if c.closed || button != ButtonLeft || c.mode == ModeFullscreen {
		return false
	}
	c.dragging = false
	c.anchor = Point{}
	c.resizing = true
	c.resizeOrigin = pos
	c.resizeStart = Point{X: c.width, Y: c.height}
	return true
}

// OnPointerMove handles pointer motion to the screen position pos with the
// given buttons held. During a drag it requests a move to pos minus the
// anchor; during a grip resize it requests the tracked size.
func (c *Chrome) OnPointerMove(pos Point, held Buttons) {
	if c.closed || c.mode == ModeFullscreen || !held.Has(ButtonLeft) {
		return
	}
	switch {
	case c.resizing:
		d := pos.Sub(c.resizeOrigin)
		w := max(c.resizeStart.X+d.X, c.opts.MinWidth)
		h := max(c.resizeStart.Y+d.Y, c.opts.MinHeight)
		c.host.Resize(w, h)
	case c.dragging:
		c.host.Move(pos.Sub(c.anchor))
	}
}

// OnPointerUp ends any drag or grip resize.
func (c *Chrome) OnPointerUp() {
	c.dragging = false
	c.anchor = Point{}
	c.resizing = false
}

// ToggleFullscreen flips between Normal and Fullscreen and returns the new
// mode. Entering fullscreen remembers the windowed geometry so leaving it
// can restore it.
func (c *Chrome) ToggleFullscreen() Mode {
	if c.closed {
		return c.mode
	}
	c.OnPointerUp()
	if c.mode == ModeNormal {
		c.restore = c.host.Geometry()
		c.mode = ModeFullscreen
		c.grip.Visible = c.opts.Visuals.Fullscreen.GripVisible
		c.host.EnterFullscreen()
		return c.mode
	}
	c.mode = ModeNormal
	c.grip.Visible = c.opts.Visuals.Normal.GripVisible
	c.host.ExitFullscreen(c.restore)
	return c.mode
}

// Close asks the host to close the window. Every later call on c is a no-op.
func (c *Chrome) Close() {
	if c.closed {
		return
	}
	c.OnPointerUp()
	c.closed = true
	c.host.Close()
}

// Trigger runs a toolbar action.
func (c *Chrome) Trigger(a Action) {
	if c.closed {
		return
	}
	switch a {
	case ActionMinimize:
		c.host.Minimize()
	case ActionPin:
		c.floating = !c.floating
		c.host.SetFloating(c.floating)
	}
}

// OnWindowResized records the new window size, moves the grip so its
// bottom-right corner sits at (width, height) and re-places the buttons.
func (c *Chrome) OnWindowResized(width, height int) {
	c.width, c.height = width, height
	c.grip.Pos = Point{X: width - c.grip.Size, Y: height - c.grip.Size}
	c.controls = c.opts.Layout.Place(width, c.opts.Actions)
}

// HitTest classifies the window-local point p. Buttons and the visible grip
// take precedence over the draggable region.
func (c *Chrome) HitTest(p Point) Hit {
	if !(Rect{W: c.width, H: c.height}).Contains(p) {
		return Hit{Kind: HitNone}
	}
	if c.controls.Close.Contains(p) {
		return Hit{Kind: HitClose}
	}
	if c.controls.Toggle.Contains(p) {
		return Hit{Kind: HitToggle}
	}
	for _, ab := range c.controls.Actions {
		if ab.Rect.Contains(p) {
			return Hit{Kind: HitAction, Action: ab.Action}
		}
	}
	if c.grip.Visible && c.grip.Rect().Contains(p) {
		return Hit{Kind: HitGrip}
	}
	if c.opts.Region.Contains(p, c.width, c.height) {
		return Hit{Kind: HitDrag}
	}
	return Hit{Kind: HitBody}
}

// Mode returns the current display mode.
func (c *Chrome) Mode() Mode { return c.mode }

// IsFullscreen reports whether the chrome is in Fullscreen mode.
func (c *Chrome) IsFullscreen() bool { return c.mode == ModeFullscreen }

// Visual returns the presentation variant for the current mode.
func (c *Chrome) Visual() Visual { return c.opts.Visuals.For(c.mode) }

// Grip returns the current grip placement.
func (c *Chrome) Grip() Grip { return c.grip }

// Controls returns the current button placement.
func (c *Chrome) Controls() Controls { return c.controls }

// Region returns the draggable region.
func (c *Chrome) Region() DraggableRegion { return c.opts.Region }

// Size returns the last size reported through OnWindowResized.
func (c *Chrome) Size() (width, height int) { return c.width, c.height }

// DragAnchor returns the drag anchor and whether a drag is in progress.
func (c *Chrome) DragAnchor() (Point, bool) { return c.anchor, c.dragging }

// Resizing reports whether a grip resize is in progress.
func (c *Chrome) Resizing() bool { return c.resizing }

// Floating reports whether the window is pinned above others.
func (c *Chrome) Floating() bool { return c.floating }

// Closed reports whether Close has been called.
func (c *Chrome) Closed() bool { return c.closed }

// RestoreGeometry returns the windowed geometry captured on entering
// fullscreen.
func (c *Chrome) RestoreGeometry() Rect { return c.restore }
