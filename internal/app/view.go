package app

import (
	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/renderer/viewport"
)

// View is the text area: the caret and the scroll offset over a document.
type View struct {
	doc *Document
	loc buffer.Location
	vp  *viewport.Viewport

	// centerOnMatch scrolls found matches to the middle of the view.
	centerOnMatch bool
}

// NewView creates a view of doc sized width x height cells.
func NewView(doc *Document, width, height int) *View {
	return &View{
		doc:           doc,
		vp:            viewport.NewViewport(width, height),
		centerOnMatch: true,
	}
}

// Location returns the caret location.
func (v *View) Location() buffer.Location {
	return v.loc
}

// Viewport returns the scroll state.
func (v *View) Viewport() *viewport.Viewport {
	return v.vp
}

// SetLocation moves the caret to loc, snapped to a valid location, and
// scrolls it into view.
func (v *View) SetLocation(loc buffer.Location) {
	v.loc = v.doc.Buffer().ClampLocation(loc)
	v.scrollIntoView()
}

// Resize changes the size of the text area.
func (v *View) Resize(width, height int) {
	v.vp.Resize(width, height)
	v.scrollIntoView()
}

// CaretPosition returns the caret in view coordinates. The result may lie
// outside the view if it was scrolled away from the caret.
func (v *View) CaretPosition() (x, y int) {
	row, col := v.caretCell()
	top, left := v.vp.Offset()
	return col - left, row - top
}

// caretCell returns the caret as (line, display column).
func (v *View) caretCell() (row, col int) {
	row = v.loc.LineIndex
	if l, ok := v.doc.Buffer().Line(row); ok {
		col = l.WidthUntil(v.loc.GraphemeIndex)
	}
	return row, col
}

// Move moves the caret and keeps it in view.
func (v *View) Move(m Move) {
	switch m {
	case MoveUp:
		v.moveUp(1)
	case MoveDown:
		v.moveDown(1)
	case MoveLeft:
		v.moveLeft()
	case MoveRight:
		v.moveRight()
	case MovePageUp:
		v.moveUp(max(v.vp.Height()-1, 0))
	case MovePageDown:
		v.moveDown(max(v.vp.Height()-1, 0))
	case MoveHome:
		v.loc.GraphemeIndex = 0
	case MoveEnd:
		v.moveToLineEnd()
	}
	v.scrollIntoView()
}

func (v *View) moveUp(step int) {
	v.loc.LineIndex = max(v.loc.LineIndex-step, 0)
	v.snapGrapheme()
}

func (v *View) moveDown(step int) {
	v.loc.LineIndex = min(v.loc.LineIndex+step, v.doc.Buffer().LineCount())
	v.snapGrapheme()
}

// moveLeft wraps to the end of the previous line at column zero.
func (v *View) moveLeft() {
	switch {
	case v.loc.GraphemeIndex > 0:
		v.loc.GraphemeIndex--
	case v.loc.LineIndex > 0:
		v.moveUp(1)
		v.moveToLineEnd()
	}
}

// moveRight wraps to the start of the next line at the end of a line.
func (v *View) moveRight() {
	if v.loc.GraphemeIndex < v.doc.Buffer().GraphemeCount(v.loc.LineIndex) {
		v.loc.GraphemeIndex++
		return
	}
	v.loc.GraphemeIndex = 0
	v.moveDown(1)
}

func (v *View) moveToLineEnd() {
	v.loc.GraphemeIndex = v.doc.Buffer().GraphemeCount(v.loc.LineIndex)
}

func (v *View) snapGrapheme() {
	v.loc.GraphemeIndex = min(v.loc.GraphemeIndex, v.doc.Buffer().GraphemeCount(v.loc.LineIndex))
}

// Edit applies an edit at the caret.
func (v *View) Edit(e Edit) {
	switch e.Kind {
	case EditInsert:
		v.insert(e.Rune)
	case EditTab:
		v.insert('\t')
	case EditEnter:
		v.doc.Buffer().InsertNewline(v.loc)
		v.moveDown(1)
		v.loc.GraphemeIndex = 0
		v.scrollIntoView()
	case EditDelete:
		v.doc.Buffer().DeleteChar(v.loc)
	case EditBackspace:
		if v.loc.LineIndex == 0 && v.loc.GraphemeIndex == 0 {
			return
		}
		v.Move(MoveLeft)
		v.doc.Buffer().DeleteChar(v.loc)
	}
}

// insert adds ch at the caret. The caret advances only if the line gained
// a grapheme; a combining mark merges into the previous cluster.
func (v *View) insert(ch rune) {
	buf := v.doc.Buffer()
	before := buf.GraphemeCount(v.loc.LineIndex)
	buf.InsertChar(ch, v.loc)
	if buf.GraphemeCount(v.loc.LineIndex) > before {
		v.Move(MoveRight)
	}
}

// RevealMatch moves the caret to a search result, scrolls it into view and,
// if configured, centers it.
func (v *View) RevealMatch(loc buffer.Location) {
	v.SetLocation(loc)
	if v.centerOnMatch {
		row, col := v.caretCell()
		v.vp.CenterOn(row, col)
	}
}

func (v *View) scrollIntoView() {
	row, col := v.caretCell()
	v.vp.ScrollToReveal(row, col)
}
