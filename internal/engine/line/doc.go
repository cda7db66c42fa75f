// Package line implements the grapheme-addressed line used by the buffer.
//
// A Line owns its raw text and a cached slice of fragments, one per Unicode
// extended grapheme cluster. Three units of measurement meet here:
//
//   - bytes: offsets into the raw UTF-8 text (annotations, substring search)
//   - graphemes: user-perceived characters (cursor positions, edits)
//   - columns: terminal cells occupied when drawn (scrolling, caret placement)
//
// Fragments are derived from the text and are rebuilt from scratch after
// every mutation; they are never patched in place.
//
// # Rendering
//
// Graphemes that would not render predictably in a terminal are drawn with a
// single-column replacement glyph:
//
//   - a space renders as itself
//   - a tab renders as a single space
//   - other whitespace with a nonzero width renders as '␣'
//   - a lone control character renders as '▯'
//   - any other zero-width grapheme renders as '·'
//
// Replacement glyphs always occupy one column.
//
// # Index Conversion
//
// ByteToGrapheme and GraphemeToByte convert between byte offsets and grapheme
// indices. They are inverses at every fragment start:
//
//	l := line.New("héllo")
//	l.GraphemeToByte(l.ByteToGrapheme(3)) // 3
package line
