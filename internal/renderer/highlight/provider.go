package highlight

import (
	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/engine/line"
	"github.com/dshills/hecto/internal/renderer/annotated"
)

// Provider composes syntax and search highlighting for a document.
//
// Lines must be highlighted in document order within a pass: the carry-in
// state of line i is the carry-out state recorded for line i-1.
// A Provider is owned by the editing goroutine and is not safe for
// concurrent use.
type Provider struct {
	syntax SyntaxHighlighter
	search *SearchHighlighter

	// lines caches per-line results, indexed by line number.
	lines []cachedLine

	// checkpoints enables reuse of cached syntax results.
	checkpoints bool

	// scanned counts lines tokenized since the last ResetStats.
	scanned int
}

// cachedLine holds the highlighting of one line.
type cachedLine struct {
	text     string
	carryIn  LexerState
	carryOut LexerState
	syntax   []annotated.Annotation
	search   []annotated.Annotation
	valid    bool
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithCheckpoints enables or disables reuse of cached syntax results.
// When disabled every line is re-tokenized on every pass.
func WithCheckpoints(enabled bool) ProviderOption {
	return func(p *Provider) {
		p.checkpoints = enabled
	}
}

// NewProvider creates a provider. A nil syntax highlighter means plain text.
func NewProvider(syntax SyntaxHighlighter, opts ...ProviderOption) *Provider {
	if syntax == nil {
		syntax = PlainHighlighter{}
	}
	p := &Provider{syntax: syntax, checkpoints: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Syntax returns the active syntax highlighter.
func (p *Provider) Syntax() SyntaxHighlighter {
	return p.syntax
}

// SetSyntax replaces the syntax highlighter and drops all cached results.
func (p *Provider) SetSyntax(h SyntaxHighlighter) {
	if h == nil {
		h = PlainHighlighter{}
	}
	p.syntax = h
	p.lines = nil
}

// SetSearch highlights occurrences of query. The occurrence containing
// selected is marked as the selected match.
func (p *Provider) SetSearch(query string, selected buffer.Location) {
	p.search = NewSearchHighlighter(query)
	p.search.Select(selected)
}

// ClearSearch removes search highlighting.
func (p *Provider) ClearSearch() {
	p.search = nil
}

// Highlight computes the annotations of line idx. Lines before idx must
// already have been highlighted in this pass.
func (p *Provider) Highlight(idx int, l *line.Line) {
	if idx < 0 || l == nil {
		return
	}
	if idx >= len(p.lines) {
		p.lines = append(p.lines, make([]cachedLine, idx+1-len(p.lines))...)
	}

	carryIn := StateClean
	if idx > 0 {
		carryIn = p.lines[idx-1].carryOut
	}

	entry := &p.lines[idx]
	text := l.Text()
	if !p.checkpoints || !entry.valid || entry.text != text || entry.carryIn != carryIn {
		anns, carryOut := p.syntax.HighlightLine(text, carryIn)
		*entry = cachedLine{
			text:     text,
			carryIn:  carryIn,
			carryOut: carryOut,
			syntax:   anns,
			valid:    true,
		}
		p.scanned++
	}

	entry.search = nil
	if p.search != nil {
		entry.search = p.search.HighlightLine(idx, l)
	}
}

// HighlightAll highlights every line of buf in order and drops cached lines
// beyond the end of the buffer.
func (p *Provider) HighlightAll(buf *buffer.Buffer) {
	for idx, l := range buf.Lines() {
		p.Highlight(idx, l)
	}
	p.Truncate(buf.LineCount())
}

// HighlightThrough highlights lines [0, last] of buf.
func (p *Provider) HighlightThrough(buf *buffer.Buffer, last int) {
	for idx, l := range buf.Lines() {
		if idx > last {
			break
		}
		p.Highlight(idx, l)
	}
	p.Truncate(buf.LineCount())
}

// Truncate drops cached results for lines at or after n.
func (p *Provider) Truncate(n int) {
	if n < len(p.lines) {
		p.lines = p.lines[:n]
	}
}

// Invalidate drops all cached results.
func (p *Provider) Invalidate() {
	p.lines = nil
}

// Annotations returns the syntax annotations of line idx followed by its
// search annotations. It returns nil for lines not yet highlighted.
func (p *Provider) Annotations(idx int) []annotated.Annotation {
	if idx < 0 || idx >= len(p.lines) || !p.lines[idx].valid {
		return nil
	}
	entry := p.lines[idx]
	out := make([]annotated.Annotation, 0, len(entry.syntax)+len(entry.search))
	out = append(out, entry.syntax...)
	out = append(out, entry.search...)
	return out
}

// StateAfter returns the carry-out state recorded for line idx.
func (p *Provider) StateAfter(idx int) (LexerState, bool) {
	if idx < 0 || idx >= len(p.lines) || !p.lines[idx].valid {
		return StateClean, false
	}
	return p.lines[idx].carryOut, true
}

// Scanned returns the number of lines tokenized since the last ResetStats.
func (p *Provider) Scanned() int {
	return p.scanned
}

// ResetStats zeroes the scan counter.
func (p *Provider) ResetStats() {
	p.scanned = 0
}
