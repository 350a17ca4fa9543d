// Package main provides the entry point for glasspane, a frameless
// translucent desktop window with drawn title-bar controls.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/opd-ai/glasspane/internal/config"
	"github.com/opd-ai/glasspane/pkg/glasspane"
)

// Version is the current version of glasspane.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

// cliOptions holds the parsed command line.
type cliOptions struct {
	variant   string
	themePath string
	title     string
	opaque    bool
	strict    bool
	debug     bool
	logJSON   bool
	version   bool
	list      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "glasspane version %s\n", Version)
		return 0
	}
	if opts.list {
		fmt.Fprintln(stdout, strings.Join(config.PresetNames(), "\n"))
		return 0
	}

	if opts.themePath != "" {
		if _, err := os.Stat(opts.themePath); err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(stderr, "Theme file not found: %s\n", opts.themePath)
			} else {
				fmt.Fprintf(stderr, "Error accessing theme file %s: %v\n", opts.themePath, err)
			}
			return 1
		}
	}

	logger := newLogger(opts, stderr)
	w, err := glasspane.New(opts.themePath, &glasspane.Options{
		Variant:     opts.variant,
		WindowTitle: opts.title,
		Opaque:      opts.opaque,
		Strict:      opts.strict,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error creating window: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Window error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("glasspane", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.variant, "variant", "", "Window preset: "+strings.Join(config.PresetNames(), ", "))
	fs.StringVar(&opts.themePath, "c", "", "Path to a theme file (Lua or YAML)")
	fs.StringVar(&opts.title, "title", "", "Override the window title")
	fs.BoolVar(&opts.opaque, "opaque", false, "Disable the transparent framebuffer")
	fs.BoolVar(&opts.strict, "strict", false, "Treat theme warnings as errors")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.logJSON, "log-json", false, "Write logs as JSON")
	fs.BoolVar(&opts.version, "v", false, "Print version and exit")
	fs.BoolVar(&opts.list, "list", false, "List the built-in presets and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return opts, errors.New("unexpected arguments")
	}
	return opts, nil
}

func newLogger(opts cliOptions, stderr io.Writer) glasspane.Logger {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	if opts.logJSON {
		return glasspane.JSONLogger(stderr, level)
	}
	return glasspane.TextLogger(stderr, level)
}
