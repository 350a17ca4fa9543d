package glasspane

// Options configures how a Window is built.
type Options struct {
	// Variant names the preset used when no theme file is given:
	// "classic", "titlebar", "toolbar" or "frosted". Empty means "classic".
	// A theme file's own variant key takes precedence.
	Variant string

	// WindowTitle overrides the title.
	// Empty string means use the theme's value.
	WindowTitle string

	// Opaque disables the transparent framebuffer. The body is still drawn
	// with its alpha but the desktop will not show through.
	Opaque bool

	// Strict turns theme validation warnings into errors.
	Strict bool

	// Logger sets a custom logger for debug/info messages.
	// If nil, no logging is performed.
	Logger Logger
}

// DefaultOptions returns Options with sensible defaults.
// An empty Variant selects the "classic" preset.
func DefaultOptions() Options {
	return Options{}
}

// Logger interface for custom logging.
// It follows the slog-style signature for compatibility with Go's structured logging.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}
