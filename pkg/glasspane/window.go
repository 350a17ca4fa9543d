package glasspane

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/glasspane/internal/config"
	"github.com/opd-ai/glasspane/internal/render"
)

// Theme format constants for use with NewFromReader.
const (
	// FormatLua indicates a Lua theme (glasspane.config = { ... }).
	FormatLua = config.FormatLua
	// FormatYAML indicates a YAML theme.
	FormatYAML = config.FormatYAML
)

// Window is a glasspane window built from a resolved theme. It is safe for
// concurrent use; Run itself must be called from one goroutine at a time.
type Window struct {
	cfg    *config.Config
	opts   Options
	source string
	logger Logger

	// runGame runs the Ebiten loop; tests replace it.
	runGame func(*render.Game) error

	running   atomic.Bool
	mu        sync.RWMutex
	game      *render.Game
	startTime time.Time
}

// New builds a Window from a theme file on disk. An empty themePath builds
// it from the preset named by opts.Variant.
//
// Example:
//
//	w, err := glasspane.New("", &glasspane.Options{Variant: "frosted"})
//	if err != nil {
//		log.Fatal(err)
//	}
func New(themePath string, opts *Options) (*Window, error) {
	o := resolveOptions(opts)
	if themePath == "" {
		cfg, err := config.Preset(o.Variant)
		if err != nil {
			return nil, fmt.Errorf("preset: %w", err)
		}
		return newWindow(&cfg, o, "preset:"+cfg.Variant)
	}

	parser := config.NewParser()
	defer parser.Close()

	cfg, err := parser.ParseFile(themePath)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return newWindow(cfg, o, themePath)
}

// NewFromFS builds a Window from a theme file in fsys, such as an embedded
// filesystem.
func NewFromFS(fsys fs.FS, themePath string, opts *Options) (*Window, error) {
	parser := config.NewParser()
	defer parser.Close()

	cfg, err := parser.ParseFromFS(fsys, themePath)
	if err != nil {
		return nil, fmt.Errorf("parse theme from FS: %w", err)
	}
	return newWindow(cfg, resolveOptions(opts), "embedded:"+themePath)
}

// NewFromReader builds a Window from theme content in the given format,
// FormatLua or FormatYAML.
func NewFromReader(r io.Reader, format string, opts *Options) (*Window, error) {
	if format != FormatLua && format != FormatYAML {
		return nil, fmt.Errorf("invalid format: %s (expected '%s' or '%s')", format, FormatLua, FormatYAML)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	parser := config.NewParser()
	defer parser.Close()

	cfg, err := parser.ParseReader(bytes.NewReader(content), format)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return newWindow(cfg, resolveOptions(opts), "reader:"+format)
}

func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	return *opts
}

func newWindow(cfg *config.Config, opts Options, source string) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NopLogger()
	}

	if opts.WindowTitle != "" {
		cfg.Window.Title = opts.WindowTitle
	}
	if opts.Variant != "" && opts.Variant != cfg.Variant && source != "preset:"+cfg.Variant {
		logger.Warn("variant option ignored; the theme names its own", "option", opts.Variant, "theme", cfg.Variant)
	}

	result := config.NewValidator().WithStrictMode(opts.Strict).Validate(cfg)
	for _, w := range result.Warnings {
		logger.Warn("theme warning", "field", w.Field, "message", w.Message)
	}
	if err := result.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	logger.Debug("theme resolved", "source", source, "config", cfg.String())
	return &Window{
		cfg:     cfg,
		opts:    opts,
		source:  source,
		logger:  logger,
		runGame: (*render.Game).Run,
	}, nil
}

// Run opens the window and blocks until it is closed or ctx is done.
// Closing the window or cancelling ctx both return nil.
// It returns ErrAlreadyRunning if the window is already open.
func (w *Window) Run(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer w.running.Store(false)

	game := render.NewGame(renderConfig(w.cfg, w.opts), w.cfg.ChromeOptions())
	game.SetLogger(w.logger)
	game.SetContext(ctx)

	w.mu.Lock()
	w.game = game
	w.startTime = time.Now()
	w.mu.Unlock()

	w.logger.Info("window starting", "source", w.source, "variant", w.cfg.Variant)
	err := w.runGame(game)
	switch {
	case err == nil:
		w.logger.Info("window closed")
		return nil
	case errors.Is(err, render.ErrGameTerminated):
		w.logger.Info("window stopped", "reason", context.Cause(ctx))
		return nil
	default:
		w.logger.Error("window failed", "error", err)
		return fmt.Errorf("run window: %w", err)
	}
}

// IsRunning returns true while Run is executing.
func (w *Window) IsRunning() bool {
	return w.running.Load()
}

// Status returns detailed status information about the window.
func (w *Window) Status() Status {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s := Status{
		Running:     w.running.Load(),
		StartTime:   w.startTime,
		Variant:     w.cfg.Variant,
		ThemeSource: w.source,
		Mode:        "normal",
	}
	if w.game != nil {
		s.Mode = w.game.Mode().String()
	}
	return s
}

// renderConfig maps the resolved theme onto the render layer's options.
func renderConfig(cfg *config.Config, opts Options) render.Config {
	t := cfg.Theme
	return render.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		X:           cfg.Window.X,
		Y:           cfg.Window.Y,
		Centered:    cfg.Window.Centered(),
		MinWidth:    cfg.Window.MinWidth,
		MinHeight:   cfg.Window.MinHeight,
		Transparent: !opts.Opaque,
		Style: render.Style{
			Background:   t.Background,
			Border:       t.Border,
			BorderWidth:  t.BorderWidth,
			ButtonRadius: t.ButtonRadius,
			Button:       t.Button,
			ButtonHover:  t.ButtonHover,
			CloseHover:   t.CloseHover,
			Foreground:   t.Foreground,
			Grip:         t.Grip,
			FontSize:     t.FontSize,
			ShowTitle:    t.ShowTitle,
			Opacity:      t.Opacity,
		},
	}
}
