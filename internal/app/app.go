// Package app provides the hecto editor shell. It wires the document,
// highlighting, search and terminal drawing together and runs the event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/hecto/internal/config"
	"github.com/dshills/hecto/internal/engine/search"
	"github.com/dshills/hecto/internal/renderer"
	"github.com/dshills/hecto/internal/renderer/backend"
	"github.com/dshills/hecto/internal/renderer/highlight"
	"github.com/dshills/hecto/internal/renderer/statusline"
	"github.com/dshills/hecto/internal/watcher"
)

// Name is the editor name shown in the welcome message.
const Name = "hecto"

// helpMessage is shown in the message bar at startup.
const helpMessage = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"

// Application is the editor: one document shown in one view, with a
// status bar and a message bar below it.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	config  *config.Config
	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	// Terminal
	backend  backend.Backend
	renderer *renderer.Renderer
	theme    *highlight.Theme
	width    int
	height   int

	// Editor components
	doc      *Document
	view     *View
	search   *search.Session
	messages *statusline.MessageBar
	prompt   *statusline.CommandBar
	mode     promptMode

	// quitTimes counts the quit presses still needed to discard changes.
	quitTimes int

	watcher *watcher.FileWatcher

	// State
	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty searches the
	// default locations.
	ConfigPath string

	// Files are files to open on startup. Only the first is opened.
	Files []string

	// Theme overrides editor.theme.
	Theme string

	// LogLevel overrides log.level.
	LogLevel string

	// LogFile overrides log.file.
	LogFile string

	// Version is shown in the welcome message.
	Version string

	// Logger replaces the logger built from the configuration.
	Logger *Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config System
	var configOpts []config.Option
	if app.opts.ConfigPath != "" {
		configOpts = append(configOpts, config.WithConfigFile(app.opts.ConfigPath))
	}
	app.config = config.New(configOpts...)
	loadErr := app.config.Load(context.Background())
	app.applyOverrides()

	// 2. Logging
	if err := app.setupLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	log := app.Logger().WithComponent("app")
	log.Info("starting %s %s", Name, app.opts.Version)

	// Config errors are non-fatal; defaults fill the gaps.
	var startupMsg string
	if loadErr != nil {
		log.Warn("config load failed: %v", loadErr)
		startupMsg = "Config error: " + loadErr.Error()
	} else if from := app.config.LoadedFrom(); from != "" {
		log.Debug("config loaded from %s", from)
	}
	if err := app.config.Validate(); err != nil {
		log.Warn("invalid config: %v", err)
		startupMsg = "Invalid config, see log"
	}

	// 3. Theme
	editorCfg := app.config.Editor()
	theme, ok := highlight.ThemeByName(editorCfg.Theme)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownTheme, editorCfg.Theme)
		log.Warn("%v", err)
		startupMsg = err.Error()
		theme = highlight.DefaultTheme()
	}
	app.theme = theme

	// 4. Document and view
	app.doc = NewDocument(highlight.DefaultRegistry(), app.config.Highlight())
	if len(app.opts.Files) > 0 {
		if err := app.doc.Open(app.opts.Files[0]); err != nil {
			// File open errors are non-fatal for startup
			app.logComponentError("document", err)
			startupMsg = "Could not open file: " + app.opts.Files[0]
		}
	}
	app.view = NewView(app.doc, 0, 0)
	app.view.centerOnMatch = app.config.Search().CenterOnMatch
	app.search = search.NewSession(app.doc.Buffer())

	// 5. Bars
	app.messages = statusline.NewMessageBar(editorCfg.MessageTimeout)
	app.messages.Set(helpMessage)
	if startupMsg != "" {
		app.messages.Set(startupMsg)
	}
	app.prompt = statusline.NewCommandBar()
	app.resetQuitTimes()

	return nil
}

// applyOverrides copies command-line options into the config.
func (app *Application) applyOverrides() {
	overrides := map[string]string{
		"editor.theme": app.opts.Theme,
		"log.level":    app.opts.LogLevel,
		"log.file":     app.opts.LogFile,
	}
	for path, value := range overrides {
		if value != "" {
			_ = app.config.Set(path, value)
		}
	}
}

// setupLogger builds the session logger from the log config section.
func (app *Application) setupLogger() error {
	logger := app.opts.Logger
	if logger == nil {
		logCfg := app.config.Log()
		if logCfg.File == "" {
			logger = NullLogger
		} else {
			f, err := OpenLogFile(logCfg.File)
			if err != nil {
				return err
			}
			app.logFile = f
			logger = NewLogger(LoggerConfig{
				Level:  ParseLogLevel(logCfg.Level),
				Output: f,
				Prefix: Name,
			})
		}
	}
	app.logger = logger.WithField("session", uuid.NewString())
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the user quits, Shutdown is called or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.renderer = renderer.New(b, app.theme)
	app.resize(b.Size())

	app.startWatcher()
	defer app.stopWatcher()
	defer app.Shutdown()

	return app.eventLoop(ctx, app.startInputPolling())
}

// eventLoop handles events one at a time and redraws after each.
func (app *Application) eventLoop(ctx context.Context, events <-chan backend.Event) error {
	log := app.Logger().WithComponent("eventloop")
	app.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			start := time.Now()
			err := app.handleBackendEvent(ev)
			app.metrics.RecordInput(time.Since(start))
			if errors.Is(err, ErrQuit) {
				app.logSummary()
				return nil
			}
			if err != nil {
				log.Error("handling event: %v", err)
			}
			app.render()
		}
	}
}

// logSummary records the session metrics.
func (app *Application) logSummary() {
	s := app.metrics.Snapshot()
	app.Logger().WithComponent("metrics").WithFields(map[string]any{
		"frames":     s.FrameCount,
		"avgFrame":   s.AvgFrame.String(),
		"maxFrame":   s.MaxFrame.String(),
		"inputs":     s.InputCount,
		"avgInput":   s.AvgInput.String(),
		"fileEvents": s.FileEvents,
		"uptime":     s.Uptime.String(),
	}).Info("session ended")
}

// Shutdown stops the event loop. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() {
		close(app.done)
	})
}

// Close releases resources held outside the event loop, such as the log
// file. Call it after Run returns.
func (app *Application) Close() error {
	app.stopWatcher()
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration system.
func (app *Application) Config() *config.Config {
	return app.config
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// View returns the text view.
func (app *Application) View() *View {
	return app.view
}

// Theme returns the active theme.
func (app *Application) Theme() *highlight.Theme {
	return app.theme
}

// Message returns the message bar text, or "" if it has expired.
func (app *Application) Message() string {
	return app.messages.Text()
}

func (app *Application) resetQuitTimes() {
	app.quitTimes = app.config.Editor().QuitTimes
}
