package line

import (
	"sort"
	"strings"
)

// Line is a single line of text addressed by grapheme index.
// The zero value is an empty line ready for use.
type Line struct {
	text      string
	fragments []Fragment
}

// New creates a line from s. It never fails; an empty string yields an empty line.
func New(s string) *Line {
	return &Line{
		text:      s,
		fragments: Fragments(s),
	}
}

// rebuild recomputes fragments from the current text.
func (l *Line) rebuild() {
	l.fragments = Fragments(l.text)
}

// Text returns the raw text of the line.
func (l *Line) Text() string {
	return l.text
}

// String implements fmt.Stringer.
func (l *Line) String() string {
	return l.text
}

// Len returns the byte length of the line.
func (l *Line) Len() int {
	return len(l.text)
}

// GraphemeCount returns the number of grapheme clusters in the line.
func (l *Line) GraphemeCount() int {
	return len(l.fragments)
}

// IsEmpty returns true if the line contains no text.
func (l *Line) IsEmpty() bool {
	return len(l.text) == 0
}

// Fragment returns the fragment at grapheme index idx.
func (l *Line) Fragment(idx int) (Fragment, bool) {
	if idx < 0 || idx >= len(l.fragments) {
		return Fragment{}, false
	}
	return l.fragments[idx], true
}

// Fragments returns the fragments of the line.
// The returned slice must not be modified.
func (l *Line) Fragments() []Fragment {
	return l.fragments
}

// Clone returns an independent copy of the line.
func (l *Line) Clone() *Line {
	frags := make([]Fragment, len(l.fragments))
	copy(frags, l.fragments)
	return &Line{text: l.text, fragments: frags}
}

// Insert inserts ch before the grapheme at index at.
// If at is past the last grapheme, ch is appended.
func (l *Line) Insert(ch rune, at int) {
	l.InsertString(string(ch), at)
}

// InsertString inserts s before the grapheme at index at.
// If at is past the last grapheme, s is appended.
func (l *Line) InsertString(s string, at int) {
	if s == "" {
		return
	}
	if f, ok := l.Fragment(at); ok {
		l.text = l.text[:f.StartByte] + s + l.text[f.StartByte:]
	} else {
		l.text += s
	}
	l.rebuild()
}

// Delete removes the grapheme at index at. Out-of-range indices are ignored.
func (l *Line) Delete(at int) {
	f, ok := l.Fragment(at)
	if !ok {
		return
	}
	l.text = l.text[:f.StartByte] + l.text[f.EndByte():]
	l.rebuild()
}

// SplitOff truncates the line to graphemes [0, at) and returns a new line
// holding [at, end). If at is out of range the line is left untouched and an
// empty line is returned.
func (l *Line) SplitOff(at int) *Line {
	f, ok := l.Fragment(at)
	if !ok {
		return New("")
	}
	remainder := l.text[f.StartByte:]
	l.text = l.text[:f.StartByte]
	l.rebuild()
	return New(remainder)
}

// Concat appends the text of other to the line.
func (l *Line) Concat(other *Line) {
	if other == nil || other.text == "" {
		return
	}
	l.text += other.text
	l.rebuild()
}

// Clear removes all text from the line.
func (l *Line) Clear() {
	l.text = ""
	l.fragments = nil
}

// ByteToGrapheme returns the index of the first fragment starting at or after
// byteIdx, or 0 if there is none.
func (l *Line) ByteToGrapheme(byteIdx int) int {
	idx := l.searchByte(byteIdx)
	if idx == len(l.fragments) {
		return 0
	}
	return idx
}

// GraphemeToByte returns the start byte of the grapheme at graphemeIdx, or the
// byte length of the line if graphemeIdx is past the last grapheme.
func (l *Line) GraphemeToByte(graphemeIdx int) int {
	if graphemeIdx < 0 {
		return 0
	}
	if graphemeIdx >= len(l.fragments) {
		return len(l.text)
	}
	return l.fragments[graphemeIdx].StartByte
}

// IsGraphemeBoundary reports whether byteIdx falls on a fragment start or on
// the end of the line.
func (l *Line) IsGraphemeBoundary(byteIdx int) bool {
	if byteIdx == len(l.text) {
		return true
	}
	idx := l.searchByte(byteIdx)
	return idx < len(l.fragments) && l.fragments[idx].StartByte == byteIdx
}

// searchByte returns the index of the first fragment with StartByte >= byteIdx,
// or len(fragments) if none.
func (l *Line) searchByte(byteIdx int) int {
	return sort.Search(len(l.fragments), func(i int) bool {
		return l.fragments[i].StartByte >= byteIdx
	})
}

// WidthUntil returns the number of columns used by graphemes [0, graphemeIdx).
func (l *Line) WidthUntil(graphemeIdx int) int {
	if graphemeIdx > len(l.fragments) {
		graphemeIdx = len(l.fragments)
	}
	width := 0
	for i := 0; i < graphemeIdx; i++ {
		width += l.fragments[i].Width.Columns()
	}
	return width
}

// Width returns the number of columns used by the whole line.
func (l *Line) Width() int {
	return l.WidthUntil(len(l.fragments))
}

// VisibleGraphemes returns the text to draw for the column window [left, right).
// Fragments only partially inside the window are drawn as an ellipsis.
func (l *Line) VisibleGraphemes(left, right int) string {
	if left >= right {
		return ""
	}

	var sb strings.Builder
	pos := 0
	for _, f := range l.fragments {
		if pos >= right {
			break
		}
		end := pos + f.Width.Columns()
		if end > left {
			switch {
			case end > right || pos < left:
				sb.WriteRune(GlyphEllipsis)
			default:
				sb.WriteString(f.Display())
			}
		}
		pos = end
	}
	return sb.String()
}

// ByteRangeForColumns returns the byte range of fragments that intersect the
// column window [left, right), including fragments cut by either edge.
func (l *Line) ByteRangeForColumns(left, right int) (start, end int) {
	start, end = len(l.text), len(l.text)
	if left >= right {
		return start, end
	}

	found := false
	pos := 0
	for _, f := range l.fragments {
		if pos >= right {
			break
		}
		next := pos + f.Width.Columns()
		if next > left {
			if !found {
				start = f.StartByte
				found = true
			}
			end = f.EndByte()
		}
		pos = next
	}
	if !found {
		return len(l.text), len(l.text)
	}
	return start, end
}
