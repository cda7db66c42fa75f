package annotated

import "iter"

// AnnotatedString is a line of text with styling annotations.
// Annotations may overlap; where they do, the one added last wins.
type AnnotatedString struct {
	text        string
	annotations []Annotation
}

// New creates an annotated string. Annotations are added in order.
func New(text string, annotations ...Annotation) *AnnotatedString {
	s := &AnnotatedString{text: text}
	for _, a := range annotations {
		s.Add(a)
	}
	return s
}

// Add appends an annotation. Its range is clamped to the text and empty
// ranges are dropped.
func (s *AnnotatedString) Add(a Annotation) {
	if a.Start < 0 {
		a.Start = 0
	}
	if a.End > len(s.text) {
		a.End = len(s.text)
	}
	if a.Start >= a.End {
		return
	}
	s.annotations = append(s.annotations, a)
}

// Text returns the underlying text.
func (s *AnnotatedString) Text() string {
	return s.text
}

// Len returns the text length in bytes.
func (s *AnnotatedString) Len() int {
	return len(s.text)
}

// Annotations returns a copy of the annotations in the order they were added.
func (s *AnnotatedString) Annotations() []Annotation {
	out := make([]Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// Crop returns a new string restricted to the byte range [start, end).
// Annotations are clipped to the range and rebased so offsets refer to the
// cropped text. Annotations entirely outside the range are dropped.
func (s *AnnotatedString) Crop(start, end int) *AnnotatedString {
	if start < 0 {
		start = 0
	}
	if end > len(s.text) {
		end = len(s.text)
	}
	if start >= end {
		return &AnnotatedString{}
	}

	out := &AnnotatedString{text: s.text[start:end]}
	for _, a := range s.annotations {
		from := max(a.Start, start)
		to := min(a.End, end)
		if from >= to {
			continue
		}
		out.annotations = append(out.annotations, Annotation{
			Kind:  a.Kind,
			Start: from - start,
			End:   to - start,
		})
	}
	return out
}

// Iter returns an iterator over the string's styled runs.
func (s *AnnotatedString) Iter() *Iterator {
	return &Iterator{s: s}
}

// Parts returns the string's runs as a sequence.
func (s *AnnotatedString) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		it := s.Iter()
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
