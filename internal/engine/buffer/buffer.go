package buffer

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/dshills/hecto/internal/engine/line"
)

// Buffer is an ordered sequence of lines with file identity and modification state.
// A Buffer is owned by a single goroutine and is not safe for concurrent use.
type Buffer struct {
	lines    []*line.Line
	path     string
	modified bool
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Line returns the line at index i.
func (b *Buffer) Line(i int) (*line.Line, bool) {
	if i < 0 || i >= len(b.lines) {
		return nil, false
	}
	return b.lines[i], true
}

// LineText returns the text of line i, or "" if i is out of range.
func (b *Buffer) LineText(i int) string {
	if l, ok := b.Line(i); ok {
		return l.Text()
	}
	return ""
}

// GraphemeCount returns the grapheme count of line i, or 0 if out of range.
func (b *Buffer) GraphemeCount(i int) int {
	if l, ok := b.Line(i); ok {
		return l.GraphemeCount()
	}
	return 0
}

// Lines iterates over line indices and lines in document order.
func (b *Buffer) Lines() iter.Seq2[int, *line.Line] {
	return func(yield func(int, *line.Line) bool) {
		for i, l := range b.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Text returns the full content with lines joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Path returns the file path, or "" if none is set.
func (b *Buffer) Path() string {
	return b.path
}

// HasPath returns true if the buffer is associated with a file.
func (b *Buffer) HasPath() bool {
	return b.path != ""
}

// FileName returns the base name of the file, or "" if none is set.
func (b *Buffer) FileName() string {
	if b.path == "" {
		return ""
	}
	return filepath.Base(b.path)
}

// SetPath associates the buffer with a file without touching its content.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// IsModified returns true if the content changed since the last load or save.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// Clear removes all lines. The buffer is marked modified if it had content.
func (b *Buffer) Clear() {
	if len(b.lines) > 0 {
		b.modified = true
	}
	b.lines = nil
}

// Append adds a line of text at the end without marking the buffer modified.
// It is used to build read-only buffers such as the welcome message.
func (b *Buffer) Append(text string) {
	b.lines = append(b.lines, line.New(text))
}

// ClampLocation snaps loc to the nearest valid location.
// The line index is clamped to [0, LineCount()] and the grapheme index to
// [0, GraphemeCount(line)].
func (b *Buffer) ClampLocation(loc Location) Location {
	if loc.LineIndex < 0 {
		loc.LineIndex = 0
	}
	if loc.LineIndex > len(b.lines) {
		loc.LineIndex = len(b.lines)
	}
	if loc.GraphemeIndex < 0 {
		loc.GraphemeIndex = 0
	}
	if n := b.GraphemeCount(loc.LineIndex); loc.GraphemeIndex > n {
		loc.GraphemeIndex = n
	}
	return loc
}

// splitLines splits text into lines on '\n'. A trailing newline does not
// produce an empty final line and a '\r' before each '\n' is dropped.
func splitLines(text string) []*line.Line {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]*line.Line, len(parts))
	for i, p := range parts {
		lines[i] = line.New(strings.TrimSuffix(p, "\r"))
	}
	return lines
}
