package line

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Glyphs substituted for graphemes that do not render predictably.
const (
	GlyphEllipsis     = '⋯'
	GlyphVisibleSpace = '␣'
	GlyphControl      = '▯'
	GlyphZeroWidth    = '·'
)

// Width is the number of terminal columns a fragment occupies.
type Width uint8

const (
	// WidthHalf occupies one column.
	WidthHalf Width = iota
	// WidthFull occupies two columns.
	WidthFull
)

// Columns returns the column count for the width.
func (w Width) Columns() int {
	if w == WidthFull {
		return 2
	}
	return 1
}

// String returns "half" or "full".
func (w Width) String() string {
	if w == WidthFull {
		return "full"
	}
	return "half"
}

// Fragment is a single grapheme cluster of a line.
type Fragment struct {
	// Grapheme is the text of exactly one extended grapheme cluster.
	Grapheme string

	// Width is the rendered width.
	Width Width

	// Replacement is drawn instead of Grapheme when nonzero.
	Replacement rune

	// StartByte is the offset of Grapheme within the line's text.
	StartByte int
}

// EndByte returns the offset one past the last byte of the fragment.
func (f Fragment) EndByte() int {
	return f.StartByte + len(f.Grapheme)
}

// Display returns the text to draw for the fragment.
func (f Fragment) Display() string {
	if f.Replacement != 0 {
		return string(f.Replacement)
	}
	return f.Grapheme
}

// HasReplacement reports whether the fragment is drawn with a replacement glyph.
func (f Fragment) HasReplacement() bool {
	return f.Replacement != 0
}

// Replacement returns the glyph drawn for grapheme, or 0 if it renders as itself.
func Replacement(grapheme string) rune {
	width := runewidth.StringWidth(grapheme)

	switch {
	case grapheme == " ":
		return 0
	case grapheme == "\t":
		return ' '
	case width > 0 && strings.TrimSpace(grapheme) == "":
		return GlyphVisibleSpace
	case width == 0:
		r, size := utf8.DecodeRuneInString(grapheme)
		if size == len(grapheme) && unicode.IsControl(r) {
			return GlyphControl
		}
		return GlyphZeroWidth
	}
	return 0
}

// MeasureWidth classifies the rendered width of a grapheme cluster.
// Graphemes drawn with a replacement glyph are always half width.
func MeasureWidth(grapheme string) Width {
	if Replacement(grapheme) != 0 {
		return WidthHalf
	}
	if runewidth.StringWidth(grapheme) >= 2 {
		return WidthFull
	}
	return WidthHalf
}

// Fragments segments text into grapheme fragments.
// The result partitions text: fragments are contiguous and ordered by StartByte.
func Fragments(text string) []Fragment {
	if text == "" {
		return nil
	}

	out := make([]Fragment, 0, utf8.RuneCountInString(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		cluster := g.Str()
		replacement := Replacement(cluster)
		width := WidthHalf
		if replacement == 0 && runewidth.StringWidth(cluster) >= 2 {
			width = WidthFull
		}
		out = append(out, Fragment{
			Grapheme:    cluster,
			Width:       width,
			Replacement: replacement,
			StartByte:   start,
		})
	}
	return out
}
