package chrome

// fakeHost records every request and applies it to its geometry the way a
// compliant window manager would.
type fakeHost struct {
	geom       Rect
	screen     Rect
	fullscreen bool
	floating   bool
	closed     bool
	minimized  int

	moves   []Point
	resizes []Point
	restore []Rect

	// chrome, when set, receives resize notifications like a real toolkit.
	chrome *Chrome
}

func newFakeHost(x, y, w, h int) *fakeHost {
	return &fakeHost{
		geom:   Rect{X: x, Y: y, W: w, H: h},
		screen: Rect{W: 1920, H: 1080},
	}
}

func (h *fakeHost) Geometry() Rect { return h.geom }

func (h *fakeHost) Move(p Point) {
	h.moves = append(h.moves, p)
	h.geom.X, h.geom.Y = p.X, p.Y
	h.notify()
}

func (h *fakeHost) Resize(w, hh int) {
	h.resizes = append(h.resizes, Point{X: w, Y: hh})
	h.geom.W, h.geom.H = w, hh
	h.notify()
}

func (h *fakeHost) EnterFullscreen() {
	h.fullscreen = true
	h.geom = h.screen
	h.notify()
}

func (h *fakeHost) ExitFullscreen(r Rect) {
	h.fullscreen = false
	h.restore = append(h.restore, r)
	h.geom = r
	h.notify()
}

func (h *fakeHost) Minimize()           { h.minimized++ }
func (h *fakeHost) SetFloating(on bool) { h.floating = on }
func (h *fakeHost) Close()              { h.closed = true }

func (h *fakeHost) notify() {
	if h.chrome != nil {
		h.chrome.OnWindowResized(h.geom.W, h.geom.H)
	}
}

func newTestChrome(region DraggableRegion) (*Chrome, *fakeHost) {
	host := newFakeHost(100, 100, 800, 600)
	opts := DefaultOptions()
	opts.Region = region
	c := New(host, opts)
	host.chrome = c
	return c, host
}
