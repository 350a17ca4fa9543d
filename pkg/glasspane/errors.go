package glasspane

import "errors"

var (
	// ErrAlreadyRunning is returned by Window.Run while the window is open.
	ErrAlreadyRunning = errors.New("glasspane: window already running")

	// ErrInvalidTheme wraps validation failures of the resolved theme.
	ErrInvalidTheme = errors.New("glasspane: invalid theme")
)
