package chrome

// Host is the window-system capability the chrome drives. Implementations
// issue the request and return; whether the window manager honours it is not
// the chrome's concern.
type Host interface {
	// Geometry returns the window's current screen position and size.
	Geometry() Rect
	// Move requests the window's top-left corner be placed at p.
	Move(p Point)
	// Resize requests a new window size.
	Resize(width, height int)
	// EnterFullscreen requests the window cover the display.
	EnterFullscreen()
	// ExitFullscreen leaves fullscreen and restores the given windowed geometry.
	ExitFullscreen(restore Rect)
	// Minimize requests the window be iconified.
	Minimize()
	// SetFloating keeps the window above others when on is true.
	SetFloating(on bool)
	// Close requests the window be closed and the application end.
	Close()
}
