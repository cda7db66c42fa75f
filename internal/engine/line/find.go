package line

import "strings"

// FindAll returns the start bytes of every non-overlapping occurrence of query
// whose start and end fall on grapheme boundaries.
func (l *Line) FindAll(query string) []int {
	if query == "" {
		return nil
	}

	var matches []int
	offset := 0
	for offset <= len(l.text)-len(query) {
		idx := strings.Index(l.text[offset:], query)
		if idx < 0 {
			break
		}
		start := offset + idx
		if l.isAligned(start, len(query)) {
			matches = append(matches, start)
			offset = start + len(query)
			continue
		}
		offset = start + 1
	}
	return matches
}

// ForwardFind returns the grapheme index of the first aligned occurrence of
// query starting at or after grapheme index from.
func (l *Line) ForwardFind(query string, from int) (int, bool) {
	if query == "" || from > len(l.fragments) {
		return 0, false
	}
	if from < 0 {
		from = 0
	}

	offset := l.GraphemeToByte(from)
	for offset <= len(l.text)-len(query) {
		idx := strings.Index(l.text[offset:], query)
		if idx < 0 {
			return 0, false
		}
		start := offset + idx
		if l.isAligned(start, len(query)) {
			return l.searchByte(start), true
		}
		offset = start + 1
	}
	return 0, false
}

// BackwardFind returns the grapheme index of the last aligned occurrence of
// query starting strictly before grapheme index before.
func (l *Line) BackwardFind(query string, before int) (int, bool) {
	if query == "" || before <= 0 {
		return 0, false
	}

	limit := l.GraphemeToByte(before)
	end := len(l.text)
	for end >= len(query) {
		idx := strings.LastIndex(l.text[:end], query)
		if idx < 0 {
			return 0, false
		}
		if idx < limit && l.isAligned(idx, len(query)) {
			return l.searchByte(idx), true
		}
		end = idx + len(query) - 1
	}
	return 0, false
}

// isAligned reports whether [start, start+n) begins and ends on grapheme boundaries.
func (l *Line) isAligned(start, n int) bool {
	return l.IsGraphemeBoundary(start) && l.IsGraphemeBoundary(start+n)
}
