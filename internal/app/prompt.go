package app

import (
	"errors"

	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/engine/search"
)

// promptMode says what the command bar is collecting.
type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptSaveAs
)

const (
	searchPrompt = "Search (Esc to cancel, Arrows to navigate): "
	saveAsPrompt = "Save as: "
)

// beginSearch opens the search prompt at the caret.
func (app *Application) beginSearch() {
	app.search.Begin(app.view.Location())
	app.openPrompt(promptSearch, searchPrompt)
}

// beginSaveAs asks for a file name for an unnamed document.
func (app *Application) beginSaveAs() {
	app.openPrompt(promptSaveAs, saveAsPrompt)
}

func (app *Application) openPrompt(mode promptMode, prompt string) {
	app.mode = mode
	app.prompt.SetPrompt(prompt)
	app.prompt.Clear()
}

func (app *Application) closePrompt() {
	app.mode = promptNone
	app.prompt.Clear()
	app.doc.Provider().ClearSearch()
}

// handlePromptCommand applies a command while the command bar has focus.
// Quit is ignored until the prompt is closed.
func (app *Application) handlePromptCommand(cmd Command) error {
	switch c := cmd.(type) {
	case Edit:
		switch c.Kind {
		case EditInsert:
			app.prompt.Insert(c.Rune)
			app.promptChanged()
		case EditBackspace:
			app.prompt.Backspace()
			app.promptChanged()
		case EditEnter:
			app.acceptPrompt()
		}
	case Move:
		switch c {
		case MoveRight, MoveDown:
			app.stepSearch(app.search.Next)
		case MoveLeft, MoveUp:
			app.stepSearch(app.search.Previous)
		}
	case System:
		switch c {
		case SystemSearchNext:
			app.stepSearch(app.search.Next)
		case SystemSearchPrevious:
			app.stepSearch(app.search.Previous)
		case SystemDismiss:
			app.dismissPrompt()
		}
	}
	return nil
}

// promptChanged runs the search again for the edited query.
func (app *Application) promptChanged() {
	if app.mode != promptSearch {
		return
	}
	app.search.SetQuery(app.prompt.Value())
	app.view.RevealMatch(app.search.Selected())
}

func (app *Application) stepSearch(step func() (buffer.Location, error)) {
	if app.mode != promptSearch {
		return
	}
	loc, err := step()
	if errors.Is(err, search.ErrEmptyQuery) {
		return
	}
	app.view.RevealMatch(loc)
}

// acceptPrompt finishes the prompt with the typed value.
func (app *Application) acceptPrompt() {
	switch app.mode {
	case promptSearch:
		app.view.SetLocation(app.search.Exit())
	case promptSaveAs:
		name := app.prompt.Value()
		if name == "" {
			app.messages.Set("Save aborted.")
			break
		}
		err := app.doc.SaveAs(name)
		app.closePrompt()
		if err == nil {
			app.startWatcher()
		}
		app.finishSave(err)
		return
	}
	app.closePrompt()
}

// dismissPrompt cancels the prompt. A cancelled search returns the caret
// to where the search began.
func (app *Application) dismissPrompt() {
	switch app.mode {
	case promptSearch:
		app.view.SetLocation(app.search.Dismiss())
	case promptSaveAs:
		app.messages.Set("Save aborted.")
	}
	app.closePrompt()
}
