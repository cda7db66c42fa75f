// Package viewport tracks which part of the document is visible and keeps
// the caret inside it.
package viewport

import "sync"

// Viewport represents the visible portion of the buffer. Positions are a
// document line for rows and a display column for columns.
type Viewport struct {
	mu sync.RWMutex

	// Position in buffer (first visible line and column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Scroll margins (keep the caret this far from edges)
	margins MarginConfig
}

// NewViewport creates a viewport with the given size.
// Width and height may be zero; a zero-sized viewport never scrolls.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// RightColumn returns the last visible column (exclusive).
func (v *Viewport) RightColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn + v.width
}

// Offset returns the scroll offset as (top line, left column).
func (v *Viewport) Offset() (top, left int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine, v.leftColumn
}

// Resize updates the viewport size. Negative sizes are treated as zero.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = max(width, 0)
	v.height = max(height, 0)
}

// VisibleLineRange returns the half-open range of visible buffer lines.
func (v *Viewport) VisibleLineRange() (start, end int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine, v.topLine + v.height
}

// IsLineVisible returns true if the line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line >= v.topLine && line < v.topLine+v.height
}

// LineToScreenRow converts a buffer line to a screen row.
// Returns -1 if the line is not visible.
func (v *Viewport) LineToScreenRow(line int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if line < v.topLine || line >= v.topLine+v.height {
		return -1
	}
	return line - v.topLine
}

// ScreenRowToLine converts a screen row to a buffer line.
func (v *Viewport) ScreenRowToLine(row int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine + max(row, 0)
}

// BufferToScreen converts a line and display column to screen coordinates.
// Returns (-1, -1) if the position is not visible.
func (v *Viewport) BufferToScreen(line, col int) (screenRow, screenCol int) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if line < v.topLine || line >= v.topLine+v.height {
		return -1, -1
	}
	if col < v.leftColumn || col >= v.leftColumn+v.width {
		return -1, -1
	}
	return line - v.topLine, col - v.leftColumn
}

// ScrollTo sets the offset directly. Negative values are clamped to zero.
func (v *Viewport) ScrollTo(top, left int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = max(top, 0)
	v.leftColumn = max(left, 0)
}

// ScrollToReveal scrolls minimally so that (line, col) is visible, keeping
// the configured margins where the viewport is large enough.
// Returns true if scrolling occurred.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := v.effectiveMargins()
	top := revealAxis(v.topLine, v.height, line, m.Top, m.Bottom)
	left := revealAxis(v.leftColumn, v.width, col, m.Left, m.Right)

	changed := top != v.topLine || left != v.leftColumn
	v.topLine, v.leftColumn = top, left
	return changed
}

// revealAxis returns the offset that brings pos into [offset+before, offset+size-after).
func revealAxis(offset, size, pos, before, after int) int {
	if size <= 0 {
		return offset
	}
	switch {
	case pos < offset+before:
		offset = pos - before
	case pos >= offset+size-after:
		offset = pos - size + after + 1
	}
	return max(offset, 0)
}

// CenterOn scrolls so that (line, col) sits at the vertical and horizontal
// midpoint of the viewport. Offsets never go negative.
func (v *Viewport) CenterOn(line, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.topLine = max(line-divCeil(v.height, 2), 0)
	v.leftColumn = max(col-divCeil(v.width, 2), 0)
}

func divCeil(n, d int) int {
	return (n + d - 1) / d
}
