package core

import "github.com/mattn/go-runewidth"

// Cell represents a single terminal cell.
type Cell struct {
	// Content is the grapheme cluster to display. Empty marks the trailing
	// half of a wide cell.
	Content string

	// Width is the display width of Content in columns.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Content: " ", Width: 1, Style: DefaultStyle()}
}

// NewCell creates a cell showing content with the given style.
func NewCell(content string, style Style) Cell {
	return Cell{Content: content, Width: StringWidth(content), Style: style}
}

// IsContinuation returns true if this cell is covered by a wide cell to its left.
func (c Cell) IsContinuation() bool {
	return c.Content == "" && c.Width == 0
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Content == other.Content &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// StringWidth returns the display width of s in columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Rect is a rectangular screen region. Bottom and Right are exclusive.
type Rect struct {
	Top, Left, Bottom, Right int
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return max(0, r.Bottom-r.Top)
}
