package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hecto/internal/config"
)

func newTestView(t *testing.T, text string, width, height int) *View {
	t.Helper()
	doc := NewDocument(nil, config.HighlightConfig{Enabled: true})
	if text != "" {
		require.NoError(t, doc.Buffer().LoadFromReader(strings.NewReader(text)))
	}
	return NewView(doc, width, height)
}

func TestViewMoveWraps(t *testing.T) {
	v := newTestView(t, "ab\ncd\n", 10, 5)

	v.Move(MoveLeft)
	assert.Equal(t, loc(0, 0), v.Location(), "left at the start of the buffer stays")

	v.Move(MoveEnd)
	assert.Equal(t, loc(0, 2), v.Location())
	v.Move(MoveRight)
	assert.Equal(t, loc(1, 0), v.Location(), "right at the end of a line goes to the next line")
	v.Move(MoveLeft)
	assert.Equal(t, loc(0, 2), v.Location(), "left at column zero goes to the previous line end")

	v.Move(MoveDown)
	v.Move(MoveDown)
	assert.Equal(t, loc(2, 0), v.Location(), "the caret may sit one line past the end")
	v.Move(MoveDown)
	assert.Equal(t, loc(2, 0), v.Location())

	v.Move(MoveUp)
	v.Move(MoveHome)
	assert.Equal(t, loc(1, 0), v.Location())
}

func TestViewVerticalMoveSnapsColumn(t *testing.T) {
	v := newTestView(t, "long line\nab\n", 20, 5)

	v.Move(MoveEnd)
	v.Move(MoveDown)
	assert.Equal(t, loc(1, 2), v.Location())
}

func TestViewPageMoves(t *testing.T) {
	v := newTestView(t, strings.Repeat("x\n", 20), 10, 5)

	v.Move(MovePageDown)
	assert.Equal(t, loc(4, 0), v.Location())
	v.Move(MovePageDown)
	assert.Equal(t, loc(8, 0), v.Location())
	top, _ := v.Viewport().Offset()
	assert.Equal(t, 4, top)

	v.Move(MovePageUp)
	assert.Equal(t, loc(4, 0), v.Location())
}

func TestViewHorizontalScroll(t *testing.T) {
	v := newTestView(t, "0123456789abcdef\n", 5, 3)

	v.Move(MoveEnd)
	_, left := v.Viewport().Offset()
	assert.Equal(t, 12, left)
	x, y := v.CaretPosition()
	assert.Equal(t, 4, x)
	assert.Equal(t, 0, y)
}

func TestViewInsertAndTab(t *testing.T) {
	v := newTestView(t, "", 10, 5)

	v.Edit(Edit{Kind: EditInsert, Rune: 'a'})
	v.Edit(Edit{Kind: EditTab})
	assert.Equal(t, "a\t", v.doc.Buffer().Text())
	assert.Equal(t, loc(0, 2), v.Location())
}

func TestViewInsertCombiningMark(t *testing.T) {
	v := newTestView(t, "", 10, 5)

	v.Edit(Edit{Kind: EditInsert, Rune: 'e'})
	v.Edit(Edit{Kind: EditInsert, Rune: '\u0301'})
	assert.Equal(t, "e\u0301", v.doc.Buffer().Text())
	assert.Equal(t, loc(0, 1), v.Location(), "a combining mark does not advance the caret")
}

func TestViewDelete(t *testing.T) {
	v := newTestView(t, "ab\ncd\n", 10, 5)

	v.Move(MoveEnd)
	v.Edit(Edit{Kind: EditDelete})
	assert.Equal(t, "abcd", v.doc.Buffer().Text())
	assert.Equal(t, loc(0, 2), v.Location())
}

func TestViewBackspaceAtStart(t *testing.T) {
	v := newTestView(t, "ab\n", 10, 5)

	v.Edit(Edit{Kind: EditBackspace})
	assert.Equal(t, "ab", v.doc.Buffer().Text())
	assert.False(t, v.doc.Buffer().IsModified())
}

func TestViewEnterOnEmptyBuffer(t *testing.T) {
	v := newTestView(t, "", 10, 5)

	v.Edit(Edit{Kind: EditEnter})
	assert.Equal(t, loc(1, 0), v.Location())
}

func TestViewRevealMatch(t *testing.T) {
	v := newTestView(t, strings.Repeat("line\n", 50), 10, 10)

	v.RevealMatch(loc(30, 2))
	assert.Equal(t, loc(30, 2), v.Location())
	top, _ := v.Viewport().Offset()
	assert.Equal(t, 25, top, "the match is centered")

	v.centerOnMatch = false
	v.RevealMatch(loc(40, 0))
	top, _ = v.Viewport().Offset()
	assert.Equal(t, 31, top, "the match is only scrolled into view")
}

func TestViewSetLocationClamps(t *testing.T) {
	v := newTestView(t, "ab\n", 10, 5)

	v.SetLocation(loc(7, 9))
	assert.Equal(t, loc(1, 0), v.Location())
	v.SetLocation(loc(0, 9))
	assert.Equal(t, loc(0, 2), v.Location())
}
