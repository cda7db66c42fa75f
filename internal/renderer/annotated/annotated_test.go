package annotated

import (
	"reflect"
	"strings"
	"testing"
)

func collect(s *AnnotatedString) []Part {
	var parts []Part
	for p := range s.Parts() {
		parts = append(parts, p)
	}
	return parts
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, true", k.String(), got, ok, k)
		}
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("Kind(200).String() = %q, want %q", Kind(200).String(), "unknown")
	}
	if _, ok := ParseKind("bogus"); ok {
		t.Error("ParseKind(bogus) = true, want false")
	}
}

func TestIteratorNoAnnotations(t *testing.T) {
	got := collect(New("hello"))
	want := []Part{{Text: "hello", Start: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parts() = %+v, want %+v", got, want)
	}
}

func TestIteratorEmptyText(t *testing.T) {
	it := New("").Iter()
	if _, ok := it.Next(); ok {
		t.Error("Next() on empty text = true, want false")
	}
}

func TestIteratorRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
		anns []Annotation
		want []Part
	}{
		{
			name: "single middle",
			text: "let x = 5;",
			anns: []Annotation{{KindNumber, 8, 9}},
			want: []Part{
				{Text: "let x = ", Start: 0},
				{Text: "5", Start: 8, Kind: KindNumber, Styled: true},
				{Text: ";", Start: 9},
			},
		},
		{
			name: "adjacent",
			text: "abcd",
			anns: []Annotation{{KindKeyword, 0, 2}, {KindType, 2, 4}},
			want: []Part{
				{Text: "ab", Start: 0, Kind: KindKeyword, Styled: true},
				{Text: "cd", Start: 2, Kind: KindType, Styled: true},
			},
		},
		{
			name: "later overlay wins inside",
			text: "// find me",
			anns: []Annotation{{KindComment, 0, 10}, {KindMatch, 3, 7}},
			want: []Part{
				{Text: "// ", Start: 0, Kind: KindComment, Styled: true},
				{Text: "find", Start: 3, Kind: KindMatch, Styled: true},
				{Text: " me", Start: 7, Kind: KindComment, Styled: true},
			},
		},
		{
			name: "earlier inner annotation hidden",
			text: "abcdef",
			anns: []Annotation{{KindNumber, 2, 4}, {KindString, 0, 6}},
			want: []Part{
				{Text: "abcdef", Start: 0, Kind: KindString, Styled: true},
			},
		},
		{
			name: "partial overlap",
			text: "abcdef",
			anns: []Annotation{{KindKeyword, 0, 4}, {KindMatch, 2, 6}},
			want: []Part{
				{Text: "ab", Start: 0, Kind: KindKeyword, Styled: true},
				{Text: "cdef", Start: 2, Kind: KindMatch, Styled: true},
			},
		},
		{
			name: "out of range annotation clamped",
			text: "abc",
			anns: []Annotation{{KindString, 1, 99}, {KindNumber, 5, 9}},
			want: []Part{
				{Text: "a", Start: 0},
				{Text: "bc", Start: 1, Kind: KindString, Styled: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(New(tt.text, tt.anns...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIteratorCoversText(t *testing.T) {
	s := New("fn main() { let s = \"x\"; }",
		Annotation{KindKeyword, 0, 2},
		Annotation{KindKeyword, 12, 15},
		Annotation{KindString, 20, 23},
		Annotation{KindMatch, 21, 22},
		Annotation{KindSelectedMatch, 0, 1},
	)

	var sb strings.Builder
	next := 0
	for p := range s.Parts() {
		if p.Start != next {
			t.Fatalf("part starts at %d, want %d", p.Start, next)
		}
		if p.Text == "" {
			t.Fatal("empty part")
		}
		sb.WriteString(p.Text)
		next += len(p.Text)
	}
	if sb.String() != s.Text() {
		t.Errorf("joined parts = %q, want %q", sb.String(), s.Text())
	}
}

func TestIteratorNotRestartable(t *testing.T) {
	it := New("ab").Iter()
	if _, ok := it.Next(); !ok {
		t.Fatal("first Next() = false")
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after exhaustion = true, want false")
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after exhaustion = true, want false")
	}
}

func TestCrop(t *testing.T) {
	s := New("0123456789",
		Annotation{KindKeyword, 0, 3},
		Annotation{KindString, 4, 8},
		Annotation{KindNumber, 9, 10},
	)

	tests := []struct {
		name       string
		start, end int
		wantText   string
		wantAnns   []Annotation
	}{
		{"middle", 2, 6, "2345", []Annotation{{KindKeyword, 0, 1}, {KindString, 2, 4}}},
		{"whole", 0, 10, "0123456789", s.Annotations()},
		{"no annotations", 3, 4, "3", []Annotation{}},
		{"clamped", -5, 50, "0123456789", s.Annotations()},
		{"inverted", 6, 2, "", []Annotation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.Crop(tt.start, tt.end)
			if c.Text() != tt.wantText {
				t.Errorf("Crop(%d, %d).Text() = %q, want %q", tt.start, tt.end, c.Text(), tt.wantText)
			}
			if got := c.Annotations(); !reflect.DeepEqual(got, tt.wantAnns) {
				t.Errorf("Crop(%d, %d).Annotations() = %v, want %v", tt.start, tt.end, got, tt.wantAnns)
			}
		})
	}
}

func TestCropPreservesPrecedence(t *testing.T) {
	s := New("abcdef", Annotation{KindComment, 0, 6}, Annotation{KindMatch, 1, 3})
	got := collect(s.Crop(2, 5))
	want := []Part{
		{Text: "c", Start: 0, Kind: KindMatch, Styled: true},
		{Text: "de", Start: 1, Kind: KindComment, Styled: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parts() = %+v, want %+v", got, want)
	}
}
