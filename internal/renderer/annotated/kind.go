// Package annotated merges a line's text with styling annotations into
// ordered, non-overlapping runs for drawing.
package annotated

// Kind is the styling tag of an annotation.
type Kind uint8

// Annotation kinds. Syntax kinds come first, search kinds last.
const (
	KindNumber Kind = iota
	KindType
	KindKeyword
	KindKnownValue
	KindChar
	KindLifetime
	KindComment
	KindString
	KindMatch
	KindSelectedMatch

	kindCount
)

var kindNames = [kindCount]string{
	KindNumber:        "number",
	KindType:          "type",
	KindKeyword:       "keyword",
	KindKnownValue:    "known_value",
	KindChar:          "char",
	KindLifetime:      "lifetime",
	KindComment:       "comment",
	KindString:        "string",
	KindMatch:         "match",
	KindSelectedMatch: "selected_match",
}

// String returns the kind's name as used in theme files.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// IsSearch returns true for the search overlay kinds.
func (k Kind) IsSearch() bool {
	return k == KindMatch || k == KindSelectedMatch
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Annotation tags the half-open byte range [Start, End) of a line.
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (a Annotation) Len() int {
	return a.End - a.Start
}

// Contains returns true if byteIdx is inside the annotation.
func (a Annotation) Contains(byteIdx int) bool {
	return byteIdx >= a.Start && byteIdx < a.End
}
