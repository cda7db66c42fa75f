package highlight

import "github.com/dshills/hecto/internal/renderer/annotated"

// SyntaxHighlighter tokenizes source lines.
type SyntaxHighlighter interface {
	// HighlightLine annotates a single line.
	// prev is the state at the end of the previous line.
	// Returns the annotations and the state at the end of this line.
	HighlightLine(text string, prev LexerState) ([]annotated.Annotation, LexerState)

	// Language returns the language this highlighter supports.
	Language() string

	// FileExtensions returns the file extensions this highlighter handles.
	FileExtensions() []string
}

// PlainHighlighter produces no annotations.
type PlainHighlighter struct{}

// HighlightLine returns no annotations and a clean state.
func (PlainHighlighter) HighlightLine(string, LexerState) ([]annotated.Annotation, LexerState) {
	return nil, StateClean
}

// Language returns "text".
func (PlainHighlighter) Language() string {
	return "text"
}

// FileExtensions returns the plain text extensions.
func (PlainHighlighter) FileExtensions() []string {
	return []string{".txt"}
}
