package annotated

// Part is a run of text sharing one style.
type Part struct {
	Text   string
	Start  int // byte offset of Text in the annotated string
	Kind   Kind
	Styled bool // false when no annotation covers the run
}

// Iterator yields the runs of an AnnotatedString from left to right.
// Runs cover the whole text with no gaps. It is not restartable.
type Iterator struct {
	s   *AnnotatedString
	pos int
}

// Next returns the next run, or false when the text is exhausted.
func (it *Iterator) Next() (Part, bool) {
	text := it.s.text
	if it.pos >= len(text) {
		return Part{}, false
	}

	anns := it.s.annotations
	start := it.pos

	winner := -1
	for i := len(anns) - 1; i >= 0; i-- {
		if anns[i].Contains(start) {
			winner = i
			break
		}
	}

	end := len(text)
	if winner >= 0 {
		end = anns[winner].End
		// A later annotation starting inside the winner takes over there.
		for _, a := range anns[winner+1:] {
			if a.Start > start && a.Start < end {
				end = a.Start
			}
		}
	} else {
		for _, a := range anns {
			if a.Start > start && a.Start < end {
				end = a.Start
			}
		}
	}

	it.pos = end
	p := Part{Text: text[start:end], Start: start}
	if winner >= 0 {
		p.Kind = anns[winner].Kind
		p.Styled = true
	}
	return p, true
}
