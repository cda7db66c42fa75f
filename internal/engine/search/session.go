package search

import (
	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/engine/line"
)

// Session is an interactive search in progress.
type Session struct {
	nav      *Navigator
	active   bool
	origin   buffer.Location
	selected buffer.Location
	query    *line.Line
}

// NewSession creates an inactive session searching buf.
func NewSession(buf *buffer.Buffer) *Session {
	return &Session{nav: NewNavigator(buf), query: line.New("")}
}

// Begin starts a search at loc. Any previous query is cleared.
func (s *Session) Begin(loc buffer.Location) {
	s.active = true
	s.origin = loc
	s.selected = loc
	s.query.Clear()
}

// Active returns true between Begin and Dismiss or Exit.
func (s *Session) Active() bool {
	return s.active
}

// Query returns the current query text.
func (s *Session) Query() string {
	return s.query.Text()
}

// QueryLine returns the editable query.
func (s *Session) QueryLine() *line.Line {
	return s.query
}

// Selected returns the currently selected match, or the origin if none.
func (s *Session) Selected() buffer.Location {
	return s.selected
}

// SetQuery replaces the query and selects the first match at or after the
// origin. It returns false if the query does not occur.
func (s *Session) SetQuery(query string) bool {
	s.query = line.New(query)
	return s.Refresh()
}

// Refresh re-runs the search for the current query from the origin.
// It is called after the query line was edited in place.
func (s *Session) Refresh() bool {
	loc, ok := s.nav.ForwardFindAt(s.query.Text(), s.origin)
	if ok {
		s.selected = loc
	}
	return ok
}

// Next selects the match after the current one.
func (s *Session) Next() (buffer.Location, error) {
	return s.step(s.nav.ForwardFind)
}

// Previous selects the match before the current one.
func (s *Session) Previous() (buffer.Location, error) {
	return s.step(s.nav.BackwardFind)
}

func (s *Session) step(find func(string, buffer.Location) (buffer.Location, bool)) (buffer.Location, error) {
	q := s.query.Text()
	if q == "" {
		return s.selected, ErrEmptyQuery
	}
	if loc, ok := find(q, s.selected); ok {
		s.selected = loc
	}
	return s.selected, nil
}

// Dismiss aborts the search and returns the location where it began.
func (s *Session) Dismiss() buffer.Location {
	s.active = false
	return s.origin
}

// Exit ends the search, keeping the selected match. It returns the selection.
func (s *Session) Exit() buffer.Location {
	s.active = false
	return s.selected
}
