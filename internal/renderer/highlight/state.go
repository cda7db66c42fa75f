package highlight

import "fmt"

// LexerState is the syntax state carried from the end of one line to the
// start of the next.
type LexerState struct {
	// CommentDepth is the number of open block comments.
	CommentDepth uint32

	// InString is true inside a string literal that continues past the line.
	InString bool
}

// StateClean is the state at the start of a document.
var StateClean = LexerState{}

// IsClean returns true if no construct is open.
func (s LexerState) IsClean() bool {
	return s.CommentDepth == 0 && !s.InString
}

// String returns a short description of the state.
func (s LexerState) String() string {
	switch {
	case s.InString:
		return "string"
	case s.CommentDepth > 0:
		return fmt.Sprintf("comment(%d)", s.CommentDepth)
	default:
		return "clean"
	}
}
