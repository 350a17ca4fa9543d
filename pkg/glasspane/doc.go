// Package glasspane provides the public API for opening a glasspane window:
// a frameless, translucent desktop window with drawn close and fullscreen
// buttons, drag-to-move and a resize grip.
//
// # Basic Usage
//
// Open a window with one of the built-in presets:
//
//	w, err := glasspane.New("", &glasspane.Options{Variant: "toolbar"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// [Window.Run] blocks until the window is closed or the context is done.
// Ebiten needs the main goroutine on some platforms, so call it from main.
//
// # Theme Sources
//
// A window can be built from:
//
//   - A preset: pass an empty path to [New] and set [Options.Variant]
//   - A theme file on disk: use [New] with its path
//   - An embedded FS: use [NewFromFS]
//   - An io.Reader: use [NewFromReader] with [FormatLua] or [FormatYAML]
//
// Theme files are either Lua:
//
//	glasspane.config = {
//		variant = "titlebar",
//		background = "rgba(24, 26, 32, 230)",
//		corner_radius = 12,
//	}
//
// or YAML:
//
//	variant: toolbar
//	toolbar: [minimize, pin]
//	show_title: true
//
// The theme is read once; colors and radii do not change while the window
// is open.
//
// # Logging
//
// Set [Options.Logger] to receive chrome transitions such as entering
// fullscreen or the close request. [NewSlogAdapter] wraps a *slog.Logger.
package glasspane
