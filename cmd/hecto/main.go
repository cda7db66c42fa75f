// Package main is the entry point for the hecto editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/hecto/internal/app"
	"github.com/dshills/hecto/internal/renderer/backend"
	"github.com/dshills/hecto/internal/renderer/highlight"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// action is what the command line asks for besides editing.
type action int

const (
	actionEdit action = iota
	actionVersion
	actionThemes
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, act, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	switch act {
	case actionVersion:
		fmt.Printf("hecto %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	case actionThemes:
		for _, name := range highlight.ThemeNames() {
			fmt.Println(name)
		}
		return 0
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Create terminal backend
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags parses the command line. Usage and errors are written to
// output.
func parseFlags(args []string, output io.Writer) (app.Options, action, error) {
	opts := app.Options{Version: version}
	var showVersion, listThemes bool

	fs := flag.NewFlagSet("hecto", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.Theme, "theme", "", "Color theme (see -themes)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&listThemes, "themes", false, "List the available themes")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(output, "hecto - a small terminal text editor\n\n")
		fmt.Fprintf(output, "Usage: hecto [options] [file]\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  hecto                         Open with empty buffer\n")
		fmt.Fprintf(output, "  hecto main.rs                 Open a file\n")
		fmt.Fprintf(output, "  hecto -theme dracula main.rs  Open a file with a theme\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, actionEdit, err
	}

	switch {
	case showVersion:
		return opts, actionVersion, nil
	case listThemes:
		return opts, actionThemes, nil
	}

	// Validate log level
	switch strings.ToLower(opts.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, actionEdit, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	if fs.NArg() > 1 {
		return opts, actionEdit, fmt.Errorf("only one file can be opened, got %d", fs.NArg())
	}
	opts.Files = fs.Args()

	return opts, actionEdit, nil
}
