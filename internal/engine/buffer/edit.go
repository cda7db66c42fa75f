package buffer

import "github.com/dshills/hecto/internal/engine/line"

// InsertChar inserts ch before the grapheme at loc.
// A location one past the last line appends a new line first.
// Locations beyond that are ignored.
func (b *Buffer) InsertChar(ch rune, loc Location) {
	b.InsertString(string(ch), loc)
}

// InsertString inserts s (which must not contain '\n') before the grapheme at loc.
func (b *Buffer) InsertString(s string, loc Location) {
	if s == "" || loc.LineIndex < 0 || loc.LineIndex > len(b.lines) {
		return
	}
	if loc.LineIndex == len(b.lines) {
		b.lines = append(b.lines, line.New(""))
	}
	b.lines[loc.LineIndex].InsertString(s, loc.GraphemeIndex)
	b.modified = true
}

// DeleteChar removes the grapheme at loc.
//
// At the end of a line that has a successor, the successor is joined onto
// the line. At the end of the last line nothing happens.
func (b *Buffer) DeleteChar(loc Location) {
	l, ok := b.Line(loc.LineIndex)
	if !ok || loc.GraphemeIndex < 0 {
		return
	}

	count := l.GraphemeCount()
	switch {
	case loc.GraphemeIndex < count:
		l.Delete(loc.GraphemeIndex)
		b.modified = true
	case loc.GraphemeIndex == count && loc.LineIndex+1 < len(b.lines):
		next := b.lines[loc.LineIndex+1]
		b.lines = append(b.lines[:loc.LineIndex+1], b.lines[loc.LineIndex+2:]...)
		l.Concat(next)
		b.modified = true
	}
}

// InsertNewline splits the line at loc; the remainder becomes a new line
// directly after it. A location one past the last line appends an empty line.
func (b *Buffer) InsertNewline(loc Location) {
	if loc.LineIndex < 0 || loc.LineIndex > len(b.lines) {
		return
	}
	if loc.LineIndex == len(b.lines) {
		b.lines = append(b.lines, line.New(""))
		b.modified = true
		return
	}

	rest := b.lines[loc.LineIndex].SplitOff(loc.GraphemeIndex)
	b.lines = append(b.lines, nil)
	copy(b.lines[loc.LineIndex+2:], b.lines[loc.LineIndex+1:])
	b.lines[loc.LineIndex+1] = rest
	b.modified = true
}
