// Package search walks a buffer looking for occurrences of a query.
//
// Matching is literal and per line: a byte substring match is accepted only
// when both of its ends fall on grapheme boundaries, so a query can never
// select part of a combined character. Queries never span lines.
//
// Navigator searches wrap around the end (or start) of the buffer and visit
// each line at most twice, so a query that occurs anywhere in the buffer is
// always found. An empty query finds nothing.
//
// Session tracks the state of an interactive search: the query being typed,
// the location where the search began, and the currently selected match.
package search
