package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/hecto/internal/renderer/annotated"
)

var rustKeywords = wordSet(
	"as", "async", "await", "break", "const", "continue", "crate", "dyn",
	"else", "enum", "extern", "fn", "for", "if", "impl", "in", "let", "loop",
	"match", "mod", "move", "mut", "pub", "ref", "return", "self", "Self",
	"static", "struct", "super", "trait", "type", "unsafe", "use", "where",
	"while",
	// reserved
	"abstract", "become", "box", "do", "final", "macro", "override", "priv",
	"try", "typeof", "unsized", "virtual", "yield",
)

var rustTypes = wordSet(
	"i8", "i16", "i32", "i64", "i128", "isize",
	"u8", "u16", "u32", "u64", "u128", "usize",
	"f32", "f64", "bool", "char", "str",
	"String", "Vec", "Box", "Option", "Result", "HashMap", "HashSet",
	"Rc", "Arc", "RefCell", "Cell", "Mutex",
)

var rustKnownValues = wordSet(
	"true", "false", "None", "Some", "Ok", "Err",
)

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// RustHighlighter is a single-pass tokenizer for Rust.
//
// Block comments nest. Strings may span lines; a backslash escapes the
// following character, so an escaped quote never closes a string.
type RustHighlighter struct{}

// NewRustHighlighter creates a Rust highlighter.
func NewRustHighlighter() *RustHighlighter {
	return &RustHighlighter{}
}

// Language returns "rust".
func (h *RustHighlighter) Language() string {
	return "rust"
}

// FileExtensions returns the Rust source extensions.
func (h *RustHighlighter) FileExtensions() []string {
	return []string{".rs"}
}

// HighlightLine tokenizes a line of Rust.
func (h *RustHighlighter) HighlightLine(text string, prev LexerState) ([]annotated.Annotation, LexerState) {
	var anns []annotated.Annotation
	state := prev
	pos := 0

	switch {
	case state.InString:
		end, closed := scanString(text, 0)
		anns = appendAnnotation(anns, annotated.KindString, 0, end)
		if !closed {
			return anns, state
		}
		state.InString = false
		pos = end
	case state.CommentDepth > 0:
		end, depth := scanBlockComment(text, 0, state.CommentDepth)
		anns = appendAnnotation(anns, annotated.KindComment, 0, end)
		state.CommentDepth = depth
		if depth > 0 {
			return anns, state
		}
		pos = end
	}

	for pos < len(text) {
		rest := text[pos:]
		c := text[pos]

		if strings.HasPrefix(rest, "/*") {
			end, depth := scanBlockComment(text, pos+2, 1)
			anns = appendAnnotation(anns, annotated.KindComment, pos, end)
			if depth > 0 {
				state.CommentDepth = depth
				return anns, state
			}
			pos = end
			continue
		}
		if strings.HasPrefix(rest, "//") {
			anns = appendAnnotation(anns, annotated.KindComment, pos, len(text))
			return anns, state
		}

		switch {
		case c == '"':
			end, closed := scanString(text, pos+1)
			anns = appendAnnotation(anns, annotated.KindString, pos, end)
			if !closed {
				state.InString = true
				return anns, state
			}
			pos = end

		case c == '\'':
			if n := lifetimeLen(rest); n > 0 {
				anns = appendAnnotation(anns, annotated.KindLifetime, pos, pos+n)
				pos += n
			} else if n := charLiteralLen(rest); n > 0 {
				anns = appendAnnotation(anns, annotated.KindChar, pos, pos+n)
				pos += n
			} else {
				pos++
			}

		case isDigit(c):
			word := numberWord(rest)
			if isNumberLiteral(word) {
				anns = appendAnnotation(anns, annotated.KindNumber, pos, pos+len(word))
			}
			pos += len(word)

		default:
			r, size := utf8.DecodeRuneInString(rest)
			if !isIdentStart(r) {
				pos += size
				continue
			}
			word := identWord(rest)
			if kind, ok := classifyWord(word); ok {
				anns = appendAnnotation(anns, kind, pos, pos+len(word))
			}
			pos += len(word)
		}
	}

	return anns, state
}

func appendAnnotation(anns []annotated.Annotation, kind annotated.Kind, start, end int) []annotated.Annotation {
	if start >= end {
		return anns
	}
	return append(anns, annotated.Annotation{Kind: kind, Start: start, End: end})
}

// classifyWord tries type names, then known values, then keywords.
func classifyWord(word string) (annotated.Kind, bool) {
	if _, ok := rustTypes[word]; ok {
		return annotated.KindType, true
	}
	if _, ok := rustKnownValues[word]; ok {
		return annotated.KindKnownValue, true
	}
	if _, ok := rustKeywords[word]; ok {
		return annotated.KindKeyword, true
	}
	return 0, false
}

// scanString scans string content starting at from, just after an opening
// quote. It returns the offset after the closing quote, or len(text) and
// false if the string does not close on this line.
func scanString(text string, from int) (int, bool) {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i + 1, true
		}
	}
	return len(text), false
}

// scanBlockComment scans comment content starting at from with depth open
// comments. It returns the offset after the comment closes and 0, or
// len(text) and the remaining depth.
func scanBlockComment(text string, from int, depth uint32) (int, uint32) {
	i := from
	for i < len(text) {
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, "*/"):
			depth--
			i += 2
			if depth == 0 {
				return i, 0
			}
		case strings.HasPrefix(rest, "/*"):
			depth++
			i += 2
		default:
			i++
		}
	}
	return len(text), depth
}

// lifetimeLen returns the length of a lifetime marker such as 'a or
// 'static at the start of s, or 0. A quote after the name makes it a
// character literal instead.
func lifetimeLen(s string) int {
	if len(s) < 2 || s[0] != '\'' {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	if !isIdentStart(r) {
		return 0
	}
	n := 1 + len(identWord(s[1:]))
	if n < len(s) && s[n] == '\'' {
		return 0
	}
	return n
}

// charLiteralLen returns the length of a character literal such as 'x',
// '\n' or '\u{1F600}' at the start of s, or 0.
func charLiteralLen(s string) int {
	if len(s) < 3 || s[0] != '\'' {
		return 0
	}

	i := 1
	switch {
	case s[i] == '\\' && strings.HasPrefix(s[i:], `\u{`):
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			return 0
		}
		i += end + 1
	case s[i] == '\\':
		_, size := utf8.DecodeRuneInString(s[i+1:])
		i += 1 + size
	case s[i] == '\'':
		return 0
	default:
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	if i < len(s) && s[i] == '\'' {
		return i + 1
	}
	return 0
}

// numberWord returns the candidate numeric literal at the start of s: a run
// of identifier characters, with a '.' included only when a digit follows.
func numberWord(s string) string {
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case isDigit(c) || isASCIILetter(c) || c == '_':
			i++
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]):
			i++
		default:
			return s[:i]
		}
	}
	return s
}

// isNumberLiteral reports whether word is a decimal literal (optional single
// fractional point, optional single exponent) or a 0x, 0o or 0b literal.
// Underscores are allowed only between digits.
func isNumberLiteral(word string) bool {
	if len(word) > 2 && word[0] == '0' {
		switch word[1] {
		case 'x', 'X':
			return digitsWithUnderscores(word[2:], isHexDigit)
		case 'o', 'O':
			return digitsWithUnderscores(word[2:], isOctalDigit)
		case 'b', 'B':
			return digitsWithUnderscores(word[2:], isBinaryDigit)
		}
	}

	mantissa, exponent, hasExp := cutAny(word, "eE")
	if hasExp && !digitsWithUnderscores(exponent, isDigit) {
		return false
	}
	whole, frac, hasPoint := strings.Cut(mantissa, ".")
	if !digitsWithUnderscores(whole, isDigit) {
		return false
	}
	if hasPoint && !digitsWithUnderscores(frac, isDigit) {
		return false
	}
	return true
}

func cutAny(s, chars string) (before, after string, found bool) {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// digitsWithUnderscores reports whether s is a non-empty run of digits in
// which every underscore sits between two digits.
func digitsWithUnderscores(s string, digit func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if i == 0 || i == len(s)-1 || !digit(s[i-1]) || !digit(s[i+1]) {
				return false
			}
			continue
		}
		if !digit(c) {
			return false
		}
	}
	return true
}

func identWord(s string) string {
	for i, r := range s {
		if !isIdentContinue(r) {
			return s[:i]
		}
	}
	return s
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool  { return c >= '0' && c <= '7' }
func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
