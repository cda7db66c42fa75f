package highlight

import (
	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/engine/line"
	"github.com/dshills/hecto/internal/renderer/annotated"
)

// SearchHighlighter marks occurrences of a search query.
// The occurrence containing the selected location is marked SelectedMatch.
type SearchHighlighter struct {
	query       string
	selected    buffer.Location
	hasSelected bool
}

// NewSearchHighlighter creates a highlighter for query.
func NewSearchHighlighter(query string) *SearchHighlighter {
	return &SearchHighlighter{query: query}
}

// Query returns the highlighted query.
func (h *SearchHighlighter) Query() string {
	return h.query
}

// Select marks the occurrence containing loc as selected.
func (h *SearchHighlighter) Select(loc buffer.Location) {
	h.selected = loc
	h.hasSelected = true
}

// ClearSelection removes the selected occurrence.
func (h *SearchHighlighter) ClearSelection() {
	h.hasSelected = false
}

// HighlightLine annotates every grapheme-aligned occurrence in l.
func (h *SearchHighlighter) HighlightLine(idx int, l *line.Line) []annotated.Annotation {
	if h.query == "" || l == nil {
		return nil
	}

	starts := l.FindAll(h.query)
	if len(starts) == 0 {
		return nil
	}

	anns := make([]annotated.Annotation, 0, len(starts))
	for _, start := range starts {
		end := start + len(h.query)
		kind := annotated.KindMatch
		if h.isSelected(idx, l, start, end) {
			kind = annotated.KindSelectedMatch
		}
		anns = append(anns, annotated.Annotation{Kind: kind, Start: start, End: end})
	}
	return anns
}

func (h *SearchHighlighter) isSelected(idx int, l *line.Line, start, end int) bool {
	if !h.hasSelected || h.selected.LineIndex != idx {
		return false
	}
	if h.selected.GraphemeIndex >= l.GraphemeCount() {
		return false
	}
	b := l.GraphemeToByte(h.selected.GraphemeIndex)
	return b >= start && b < end
}
