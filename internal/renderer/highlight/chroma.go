package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/hecto/internal/renderer/annotated"
)

// ChromaHighlighter annotates lines using a chroma lexer.
// Each line is lexed on its own, so constructs spanning lines are not
// tracked and the returned state is always clean.
type ChromaHighlighter struct {
	lexer chroma.Lexer
}

// NewChromaHighlighter returns a highlighter for the named language, or
// false if chroma has no lexer for it.
func NewChromaHighlighter(language string) (*ChromaHighlighter, bool) {
	return newChromaHighlighter(lexers.Get(language))
}

// ChromaForFile returns a highlighter matching filename, or false if chroma
// has no lexer for it.
func ChromaForFile(filename string) (*ChromaHighlighter, bool) {
	return newChromaHighlighter(lexers.Match(filename))
}

func newChromaHighlighter(lexer chroma.Lexer) (*ChromaHighlighter, bool) {
	if lexer == nil {
		return nil, false
	}
	return &ChromaHighlighter{lexer: chroma.Coalesce(lexer)}, true
}

// Language returns the lexer's language name in lower case.
func (h *ChromaHighlighter) Language() string {
	return strings.ToLower(h.lexer.Config().Name)
}

// FileExtensions returns the extensions from the lexer's filename globs.
func (h *ChromaHighlighter) FileExtensions() []string {
	var exts []string
	for _, glob := range h.lexer.Config().Filenames {
		if strings.HasPrefix(glob, "*.") && !strings.ContainsAny(glob[1:], "*?[") {
			exts = append(exts, glob[1:])
		}
	}
	return exts
}

// HighlightLine lexes text and maps chroma token types to annotation kinds.
func (h *ChromaHighlighter) HighlightLine(text string, _ LexerState) ([]annotated.Annotation, LexerState) {
	if text == "" {
		return nil, StateClean
	}

	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, StateClean
	}

	var anns []annotated.Annotation
	offset := 0
	for tok := it(); tok != chroma.EOF && offset < len(text); tok = it() {
		start := offset
		offset += len(tok.Value)
		if kind, ok := kindForToken(tok.Type); ok {
			anns = appendAnnotation(anns, kind, start, min(offset, len(text)))
		}
	}
	return anns, StateClean
}

// kindForToken maps a chroma token type onto the annotation kinds.
func kindForToken(t chroma.TokenType) (annotated.Kind, bool) {
	switch {
	case t.InCategory(chroma.Comment):
		return annotated.KindComment, true
	case t == chroma.LiteralStringChar:
		return annotated.KindChar, true
	case t.InSubCategory(chroma.LiteralString):
		return annotated.KindString, true
	case t.InSubCategory(chroma.LiteralNumber):
		return annotated.KindNumber, true
	case t == chroma.KeywordType, t == chroma.NameBuiltin:
		return annotated.KindType, true
	case t == chroma.KeywordConstant:
		return annotated.KindKnownValue, true
	case t.InCategory(chroma.Keyword):
		return annotated.KindKeyword, true
	}
	return 0, false
}
