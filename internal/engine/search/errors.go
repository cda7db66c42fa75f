package search

import "errors"

// ErrEmptyQuery is returned by Session.Next and Session.Previous when no
// query has been entered.
var ErrEmptyQuery = errors.New("empty search query")
