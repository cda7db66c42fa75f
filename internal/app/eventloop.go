package app

import (
	"fmt"

	"github.com/dshills/hecto/internal/renderer/backend"
	"github.com/dshills/hecto/internal/watcher"
)

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
		return nil
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventInterrupt:
		if fe, ok := ev.Data.(watcher.Event); ok {
			app.handleFileEvent(fe)
		}
		return nil
	default:
		return nil
	}
}

// handleKey routes a key to the active prompt or to the text view.
func (app *Application) handleKey(ev backend.Event) error {
	cmd, ok := CommandFor(ev)
	if !ok {
		return nil
	}
	if app.mode != promptNone {
		return app.handlePromptCommand(cmd)
	}
	return app.handleCommand(cmd)
}

// handleCommand applies a command to the text view.
func (app *Application) handleCommand(cmd Command) error {
	if cmd != SystemQuit {
		app.resetQuitTimes()
	}

	switch c := cmd.(type) {
	case Move:
		app.view.Move(c)
	case Edit:
		app.view.Edit(c)
	case System:
		return app.handleSystem(c)
	}
	return nil
}

func (app *Application) handleSystem(s System) error {
	switch s {
	case SystemQuit:
		return app.quit()
	case SystemSave:
		app.save()
	case SystemSearch:
		app.beginSearch()
	}
	// Search navigation and dismiss only mean something inside a prompt.
	return nil
}

// quit returns ErrQuit unless there are unsaved changes and the user has
// not yet pressed quit enough times.
func (app *Application) quit() error {
	if app.doc.Buffer().IsModified() && app.quitTimes > 1 {
		app.quitTimes--
		app.messages.Set(fmt.Sprintf(
			"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", app.quitTimes))
		return nil
	}
	return ErrQuit
}

// save writes the document, asking for a name if it has none.
func (app *Application) save() {
	if !app.doc.Buffer().HasPath() {
		app.beginSaveAs()
		return
	}
	app.finishSave(app.doc.Save())
}

// finishSave reports the outcome of a save.
func (app *Application) finishSave(err error) {
	log := app.Logger().WithComponent("document")
	if err != nil {
		log.Error("save %s: %v", app.doc.Buffer().Path(), err)
		app.messages.Set("Error writing file!")
		return
	}
	log.Info("saved %s", app.doc.Buffer().Path())
	app.messages.Set("File saved successfully.")
	app.markSaved()
}

// resize lays the screen out again for a new terminal size.
func (app *Application) resize(width, height int) {
	app.width, app.height = max(width, 0), max(height, 0)
	if app.renderer != nil {
		app.renderer.Resize(app.width, app.height)
	}
	app.view.Resize(app.width, textAreaHeight(app.height))
}

// snapCaret keeps the caret on a valid location after the buffer changed
// underneath it.
func (app *Application) snapCaret() {
	app.view.SetLocation(app.view.Location())
}

// startInputPolling reads backend events on a separate goroutine.
// PollEvent blocks, so the goroutine exits on the first event after
// Shutdown.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 16)
	b := app.backend

	go func() {
		defer close(events)
		for {
			ev := b.PollEvent()
			select {
			case <-app.done:
				return
			default:
			}
			if ev.Type == backend.EventNone {
				continue
			}
			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}
