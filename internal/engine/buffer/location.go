package buffer

import "fmt"

// Location identifies a grapheme position in the buffer.
// Both fields are 0-indexed. GraphemeIndex counts grapheme clusters, not bytes.
type Location struct {
	LineIndex     int
	GraphemeIndex int
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("(%d:%d)", l.LineIndex, l.GraphemeIndex)
}

// Compare returns -1 if l < other, 0 if l == other, 1 if l > other.
func (l Location) Compare(other Location) int {
	if l.LineIndex < other.LineIndex {
		return -1
	}
	if l.LineIndex > other.LineIndex {
		return 1
	}
	if l.GraphemeIndex < other.GraphemeIndex {
		return -1
	}
	if l.GraphemeIndex > other.GraphemeIndex {
		return 1
	}
	return 0
}

// Before returns true if l comes before other.
func (l Location) Before(other Location) bool {
	return l.Compare(other) < 0
}

// After returns true if l comes after other.
func (l Location) After(other Location) bool {
	return l.Compare(other) > 0
}
