package app

import (
	"github.com/dshills/hecto/internal/renderer/backend"
	"github.com/dshills/hecto/internal/watcher"
)

// startWatcher watches the document's file for changes made by other
// programs. Any previous watcher is stopped first. Failing to watch is
// logged and otherwise ignored.
func (app *Application) startWatcher() {
	app.stopWatcher()

	cfg := app.config.Watch()
	buf := app.doc.Buffer()
	if !cfg.Enabled || !buf.HasPath() || app.backend == nil {
		return
	}

	log := app.Logger().WithComponent("watcher")
	w, err := watcher.New(buf.Path(), watcher.WithDebounce(cfg.Debounce))
	if err != nil {
		log.Warn("cannot watch %s: %v", buf.Path(), err)
		return
	}
	log.Debug("watching %s", w.Path())

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()

	go app.forwardFileEvents(w, app.backend)
}

// stopWatcher closes the current watcher, if any.
func (app *Application) stopWatcher() {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
}

// forwardFileEvents posts file events to the backend so they are handled
// on the event loop with the key presses. It returns when w is closed.
func (app *Application) forwardFileEvents(w *watcher.FileWatcher, b backend.Backend) {
	log := app.Logger().WithComponent("watcher")
	events, errs := w.Events(), w.Errors()
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: ev})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("%v", err)
		}
	}
}

// markSaved tells the watcher that the file on disk is our own write.
func (app *Application) markSaved() {
	app.mu.RLock()
	w := app.watcher
	app.mu.RUnlock()

	if w == nil {
		return
	}
	if err := w.Mark(); err != nil {
		app.Logger().WithComponent("watcher").Debug("mark: %v", err)
	}
}

// handleFileEvent reacts to a change of the open file on disk. Unsaved
// edits are never thrown away; the user is told instead.
func (app *Application) handleFileEvent(ev watcher.Event) {
	app.metrics.RecordFileEvent()
	log := app.Logger().WithComponent("watcher")
	log.Debug("%s %s", ev.Op, ev.Path)

	switch {
	case ev.Removed():
		app.messages.Set("File was removed from disk.")
	case app.doc.Buffer().IsModified():
		app.messages.Set("File changed on disk. Save to overwrite.")
	default:
		if err := app.doc.Reload(); err != nil {
			log.Error("%v", err)
			app.messages.Set("Could not reload file!")
			return
		}
		app.snapCaret()
		app.messages.Set("File reloaded from disk.")
	}
}
