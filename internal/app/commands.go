package app

import "github.com/dshills/hecto/internal/renderer/backend"

// Command is an editor action decoded from a key event.
// It is one of Move, Edit or System.
type Command interface {
	command()
}

// Move moves the caret.
type Move int

// Caret movements.
const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

// EditKind selects an edit operation.
type EditKind int

// Edit operations.
const (
	EditInsert EditKind = iota
	EditTab
	EditEnter
	EditDelete
	EditBackspace
)

// Edit changes the document at the caret.
type Edit struct {
	Kind EditKind
	Rune rune // for EditInsert
}

// System is an editor-level action.
type System int

// Editor-level actions.
const (
	SystemSave System = iota
	SystemQuit
	SystemSearch
	SystemSearchNext
	SystemSearchPrevious
	SystemDismiss
)

func (Move) command()   {}
func (Edit) command()   {}
func (System) command() {}

// CommandFor decodes a key event. System keys are tried first, then
// movement, then edits.
func CommandFor(ev backend.Event) (Command, bool) {
	if ev.Type != backend.EventKey {
		return nil, false
	}
	if s, ok := systemFor(ev); ok {
		return s, true
	}
	if m, ok := moveFor(ev); ok {
		return m, true
	}
	if e, ok := editFor(ev); ok {
		return e, true
	}
	return nil, false
}

func systemFor(ev backend.Event) (System, bool) {
	switch ev.Key {
	case backend.KeyCtrlS:
		return SystemSave, true
	case backend.KeyCtrlQ:
		return SystemQuit, true
	case backend.KeyCtrlF:
		return SystemSearch, true
	case backend.KeyCtrlN:
		return SystemSearchNext, true
	case backend.KeyCtrlP:
		return SystemSearchPrevious, true
	case backend.KeyEscape:
		return SystemDismiss, true
	}
	return 0, false
}

func moveFor(ev backend.Event) (Move, bool) {
	switch ev.Key {
	case backend.KeyUp:
		return MoveUp, true
	case backend.KeyDown:
		return MoveDown, true
	case backend.KeyLeft:
		return MoveLeft, true
	case backend.KeyRight:
		return MoveRight, true
	case backend.KeyPageUp:
		return MovePageUp, true
	case backend.KeyPageDown:
		return MovePageDown, true
	case backend.KeyHome:
		return MoveHome, true
	case backend.KeyEnd:
		return MoveEnd, true
	}
	return 0, false
}

func editFor(ev backend.Event) (Edit, bool) {
	switch ev.Key {
	case backend.KeyRune:
		// Control and Alt chords are not text.
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) || ev.Rune == 0 {
			return Edit{}, false
		}
		return Edit{Kind: EditInsert, Rune: ev.Rune}, true
	case backend.KeyTab:
		return Edit{Kind: EditTab}, true
	case backend.KeyEnter:
		return Edit{Kind: EditEnter}, true
	case backend.KeyDelete:
		return Edit{Kind: EditDelete}, true
	case backend.KeyBackspace:
		return Edit{Kind: EditBackspace}, true
	}
	return Edit{}, false
}
