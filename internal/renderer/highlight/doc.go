// Package highlight produces styling annotations for buffer lines.
//
// Two kinds of highlighter contribute annotations. A SyntaxHighlighter
// tokenizes one line at a time and threads a LexerState from each line into
// the next, so constructs such as block comments and strings may span lines.
// A SearchHighlighter marks occurrences of the active search query and is
// stateless across lines.
//
// Provider composes the two: syntax annotations first, search annotations
// after, so search overlays win when the render projection resolves overlaps.
// It caches each line's carry-in state and only re-tokenizes lines whose text
// or carry-in state changed since the previous pass.
//
// Highlighting never fails. Unterminated constructs extend to the end of the
// document.
package highlight
