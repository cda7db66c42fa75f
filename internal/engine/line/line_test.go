package line

import (
	"reflect"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	l := New("")
	if l.GraphemeCount() != 0 {
		t.Errorf("GraphemeCount() = %d, want 0", l.GraphemeCount())
	}
	if !l.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if l.Width() != 0 {
		t.Errorf("Width() = %d, want 0", l.Width())
	}
}

func TestZeroValueLine(t *testing.T) {
	var l Line
	l.Insert('a', 0)
	if l.Text() != "a" {
		t.Errorf("Text() = %q, want %q", l.Text(), "a")
	}
}

func TestFragmentsPartitionText(t *testing.T) {
	tests := []string{
		"hello",
		"héllo",
		"étude",
		"日本語",
		"a\tb",
		"👍🏽 ok",
		"\U0001F468\u200D\U0001F469\u200D\U0001F467 family",
		"x\x01y",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			frags := Fragments(text)
			next := 0
			for i, f := range frags {
				if f.StartByte != next {
					t.Fatalf("fragment %d StartByte = %d, want %d", i, f.StartByte, next)
				}
				if text[f.StartByte:f.EndByte()] != f.Grapheme {
					t.Fatalf("fragment %d grapheme %q does not match text", i, f.Grapheme)
				}
				next = f.EndByte()
			}
			if next != len(text) {
				t.Errorf("fragments cover %d bytes, want %d", next, len(text))
			}
		})
	}
}

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"日本", 2},
		{"\U0001F468\u200D\U0001F469\u200D\U0001F467", 1},
		{"\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", 2},
	}

	for _, tt := range tests {
		if got := New(tt.text).GraphemeCount(); got != tt.want {
			t.Errorf("New(%q).GraphemeCount() = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestReplacement(t *testing.T) {
	tests := []struct {
		name     string
		grapheme string
		want     rune
	}{
		{"space", " ", 0},
		{"letter", "a", 0},
		{"wide", "日", 0},
		{"tab", "\t", ' '},
		{"nbsp", "\u00a0", GlyphVisibleSpace},
		{"ideographic space", "\u3000", GlyphVisibleSpace},
		{"control", "\x01", GlyphControl},
		{"carriage return", "\r", GlyphControl},
		{"lone combining mark", "\u0301", GlyphZeroWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replacement(tt.grapheme); got != tt.want {
				t.Errorf("Replacement(%q) = %q, want %q", tt.grapheme, got, tt.want)
			}
		})
	}
}

func TestReplacementIsHalfWidth(t *testing.T) {
	l := New("\u3000\t\x01")
	for i, f := range l.Fragments() {
		if !f.HasReplacement() {
			t.Errorf("fragment %d has no replacement", i)
		}
		if f.Width != WidthHalf {
			t.Errorf("fragment %d Width = %v, want half", i, f.Width)
		}
	}
}

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		grapheme string
		want     Width
	}{
		{"a", WidthHalf},
		{"日", WidthFull},
		{"👍", WidthFull},
		{"\u3000", WidthHalf},
		{"é", WidthHalf},
	}

	for _, tt := range tests {
		if got := MeasureWidth(tt.grapheme); got != tt.want {
			t.Errorf("MeasureWidth(%q) = %v, want %v", tt.grapheme, got, tt.want)
		}
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		text string
		ch   rune
		at   int
		want string
	}{
		{"start", "bc", 'a', 0, "abc"},
		{"middle", "ac", 'b', 1, "abc"},
		{"end", "ab", 'c', 2, "abc"},
		{"past end", "ab", 'c', 10, "abc"},
		{"before combined", "xé", 'y', 1, "xyé"},
		{"after wide", "日本", '!', 1, "日!本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.text)
			l.Insert(tt.ch, tt.at)
			if l.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", l.Text(), tt.want)
			}
			if !reflect.DeepEqual(l.Fragments(), Fragments(tt.want)) {
				t.Error("fragments not rebuilt after insert")
			}
		})
	}
}

func TestInsertCombiningMarkMergesCluster(t *testing.T) {
	l := New("e")
	l.Insert('\u0301', 1)
	if l.GraphemeCount() != 1 {
		t.Errorf("GraphemeCount() = %d, want 1", l.GraphemeCount())
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   int
		want string
	}{
		{"first", "abc", 0, "bc"},
		{"last", "abc", 2, "ab"},
		{"out of range", "abc", 3, "abc"},
		{"negative", "abc", -1, "abc"},
		{"combined cluster", "ae\u0301b", 1, "ab"},
		{"emoji sequence", "a\U0001F468\u200D\U0001F469\u200D\U0001F467b", 1, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.text)
			l.Delete(tt.at)
			if l.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", l.Text(), tt.want)
			}
		})
	}
}

func TestInsertDeleteInverse(t *testing.T) {
	texts := []string{"", "abc", "héllo wörld", "日本語", "a\tb c"}
	chars := []rune{'x', '日', ' ', '\t'}

	for _, text := range texts {
		for _, ch := range chars {
			for at := 0; at <= New(text).GraphemeCount(); at++ {
				l := New(text)
				l.Insert(ch, at)
				l.Delete(at)
				if l.Text() != text {
					t.Errorf("insert %q at %d then delete on %q = %q", ch, at, text, l.Text())
				}
			}
		}
	}
}

func TestSplitOff(t *testing.T) {
	l := New("hello world")
	rest := l.SplitOff(5)

	if l.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", l.Text(), "hello")
	}
	if rest.Text() != " world" {
		t.Errorf("remainder = %q, want %q", rest.Text(), " world")
	}
	if l.GraphemeCount() != 5 {
		t.Errorf("GraphemeCount() = %d, want 5", l.GraphemeCount())
	}
}

func TestSplitOffAtZero(t *testing.T) {
	l := New("abc")
	rest := l.SplitOff(0)
	if l.Text() != "" || rest.Text() != "abc" {
		t.Errorf("SplitOff(0) = (%q, %q), want (\"\", \"abc\")", l.Text(), rest.Text())
	}
}

func TestSplitOffOutOfRange(t *testing.T) {
	for _, at := range []int{3, 4, 100, -1} {
		l := New("abc")
		rest := l.SplitOff(at)
		if l.Text() != "abc" {
			t.Errorf("SplitOff(%d) modified source to %q", at, l.Text())
		}
		if !rest.IsEmpty() {
			t.Errorf("SplitOff(%d) remainder = %q, want empty", at, rest.Text())
		}
	}
}

func TestConcat(t *testing.T) {
	l := New("ab")
	l.Concat(New("cd"))
	if l.Text() != "abcd" {
		t.Errorf("Text() = %q, want %q", l.Text(), "abcd")
	}
	if l.GraphemeCount() != 4 {
		t.Errorf("GraphemeCount() = %d, want 4", l.GraphemeCount())
	}

	// Joining a base letter with a leading combining mark yields one cluster.
	l = New("e")
	l.Concat(New("\u0301"))
	if l.GraphemeCount() != 1 {
		t.Errorf("GraphemeCount() = %d, want 1", l.GraphemeCount())
	}

	l.Concat(nil)
	if l.Text() != "e\u0301" {
		t.Errorf("Concat(nil) changed text to %q", l.Text())
	}
}

func TestClear(t *testing.T) {
	l := New("abc")
	l.Clear()
	if !l.IsEmpty() || l.GraphemeCount() != 0 {
		t.Error("Clear() left content behind")
	}
}

func TestClone(t *testing.T) {
	l := New("abc")
	c := l.Clone()
	c.Insert('x', 0)
	if l.Text() != "abc" {
		t.Errorf("mutating clone changed original to %q", l.Text())
	}
}

func TestByteGraphemeConversion(t *testing.T) {
	l := New("a\u00e9日b")
	// a=0, é=1..3, 日=3..6, b=6
	tests := []struct {
		byteIdx  int
		grapheme int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{6, 3},
		{7, 0},
	}

	for _, tt := range tests {
		if got := l.ByteToGrapheme(tt.byteIdx); got != tt.grapheme {
			t.Errorf("ByteToGrapheme(%d) = %d, want %d", tt.byteIdx, got, tt.grapheme)
		}
	}

	wantBytes := []int{0, 1, 3, 6, 7, 7}
	for g, want := range wantBytes {
		if got := l.GraphemeToByte(g); got != want {
			t.Errorf("GraphemeToByte(%d) = %d, want %d", g, got, want)
		}
	}
}

func TestByteGraphemeRoundTrip(t *testing.T) {
	texts := []string{"hello", "héllo", "éé", "日本語テキスト", "\U0001F468\u200D\U0001F469\u200D\U0001F467 and \U0001F1E9\U0001F1EA", "a\tb\x01c"}

	for _, text := range texts {
		l := New(text)
		for i, f := range l.Fragments() {
			if got := l.ByteToGrapheme(f.StartByte); got != i {
				t.Errorf("%q: ByteToGrapheme(%d) = %d, want %d", text, f.StartByte, got, i)
			}
			if got := l.GraphemeToByte(l.ByteToGrapheme(f.StartByte)); got != f.StartByte {
				t.Errorf("%q: round trip of %d = %d", text, f.StartByte, got)
			}
		}
	}
}

func TestIsGraphemeBoundary(t *testing.T) {
	l := New("ae\u0301")
	tests := []struct {
		byteIdx int
		want    bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		if got := l.IsGraphemeBoundary(tt.byteIdx); got != tt.want {
			t.Errorf("IsGraphemeBoundary(%d) = %v, want %v", tt.byteIdx, got, tt.want)
		}
	}
}

func TestFragmentRebuildIdempotent(t *testing.T) {
	for _, text := range []string{"", "abc", "é 日本 👍🏽\t"} {
		first := Fragments(text)
		second := Fragments(New(text).Text())
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Fragments(%q) not idempotent", text)
		}
	}
}

func TestWidthUntil(t *testing.T) {
	l := New("a日\tb")
	tests := []struct {
		idx  int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 4},
		{4, 5},
		{99, 5},
	}

	for _, tt := range tests {
		if got := l.WidthUntil(tt.idx); got != tt.want {
			t.Errorf("WidthUntil(%d) = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestWidthConservation(t *testing.T) {
	for _, text := range []string{"hello", "日本語", "a\u3000b", "\U0001F44D\U0001F3FDx", "é\t"} {
		l := New(text)
		sum := 0
		for _, f := range l.Fragments() {
			sum += f.Width.Columns()
		}
		if got := l.WidthUntil(l.GraphemeCount()); got != sum {
			t.Errorf("%q: WidthUntil(count) = %d, want %d", text, got, sum)
		}
	}
}

func TestVisibleGraphemes(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		left, right int
		want        string
	}{
		{"full", "hello", 0, 5, "hello"},
		{"window", "hello", 1, 4, "ell"},
		{"empty window", "hello", 3, 3, ""},
		{"inverted window", "hello", 4, 2, ""},
		{"past end", "hi", 5, 10, ""},
		{"wide cut right", "a日b", 0, 2, "a⋯"},
		{"wide cut left", "a日b", 2, 4, "⋯b"},
		{"wide inside", "a日b", 1, 3, "日"},
		{"tab", "a\tb", 0, 3, "a b"},
		{"control", "a\x01", 0, 2, "a▯"},
		{"visible space", "a\u3000b", 0, 3, "a␣b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.text).VisibleGraphemes(tt.left, tt.right)
			if got != tt.want {
				t.Errorf("VisibleGraphemes(%d, %d) = %q, want %q", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestByteRangeForColumns(t *testing.T) {
	l := New("a日bc")
	tests := []struct {
		left, right int
		start, end  int
	}{
		{0, 5, 0, 6},
		{1, 3, 1, 4},
		{2, 4, 1, 5},
		{0, 2, 0, 4},
		{10, 12, 6, 6},
		{3, 3, 6, 6},
	}

	for _, tt := range tests {
		start, end := l.ByteRangeForColumns(tt.left, tt.right)
		if start != tt.start || end != tt.end {
			t.Errorf("ByteRangeForColumns(%d, %d) = (%d, %d), want (%d, %d)",
				tt.left, tt.right, start, end, tt.start, tt.end)
		}
	}
}
