package search

import "github.com/dshills/hecto/internal/engine/buffer"

// Navigator finds query occurrences across a buffer.
type Navigator struct {
	buf *buffer.Buffer
}

// NewNavigator creates a navigator over buf.
func NewNavigator(buf *buffer.Buffer) *Navigator {
	return &Navigator{buf: buf}
}

// ForwardFind returns the first match strictly after from.
//
// The current line is searched after from.GraphemeIndex, then every following
// line, then every line from the start of the buffer through the current line.
func (n *Navigator) ForwardFind(query string, from buffer.Location) (buffer.Location, bool) {
	return n.forward(query, from, from.GraphemeIndex+1)
}

// ForwardFindAt is like ForwardFind but also accepts a match starting at from.
// It is used while a query is being typed, so the selected match stays put as
// long as it still matches.
func (n *Navigator) ForwardFindAt(query string, from buffer.Location) (buffer.Location, bool) {
	return n.forward(query, from, from.GraphemeIndex)
}

func (n *Navigator) forward(query string, from buffer.Location, start int) (buffer.Location, bool) {
	count := n.buf.LineCount()
	if query == "" || count == 0 {
		return buffer.Location{}, false
	}

	current := clampLine(from.LineIndex, count)
	if current != from.LineIndex {
		start = 0
	}

	// count+1 steps: the current line is visited again at the end of the wrap.
	for step := 0; step <= count; step++ {
		idx := (current + step) % count
		l, _ := n.buf.Line(idx)
		at := 0
		if step == 0 {
			at = start
		}
		if g, ok := l.ForwardFind(query, at); ok {
			return buffer.Location{LineIndex: idx, GraphemeIndex: g}, true
		}
	}
	return buffer.Location{}, false
}

// BackwardFind returns the last match strictly before from.
//
// The current line is searched before from.GraphemeIndex, then every
// preceding line in reverse, then every line from the end of the buffer back
// through the current line.
func (n *Navigator) BackwardFind(query string, from buffer.Location) (buffer.Location, bool) {
	count := n.buf.LineCount()
	if query == "" || count == 0 {
		return buffer.Location{}, false
	}

	current := clampLine(from.LineIndex, count)
	before := from.GraphemeIndex
	if current != from.LineIndex {
		before = n.buf.GraphemeCount(current) + 1
	}

	for step := 0; step <= count; step++ {
		idx := ((current-step)%count + count) % count
		l, _ := n.buf.Line(idx)
		limit := l.GraphemeCount() + 1
		if step == 0 {
			limit = before
		}
		if g, ok := l.BackwardFind(query, limit); ok {
			return buffer.Location{LineIndex: idx, GraphemeIndex: g}, true
		}
	}
	return buffer.Location{}, false
}

// clampLine maps an out-of-range line index onto the buffer. An index past
// the end (the append position) is treated as the last line.
func clampLine(idx, count int) int {
	if idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}
