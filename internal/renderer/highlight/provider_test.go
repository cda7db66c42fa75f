package highlight

import (
	"reflect"
	"testing"

	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/engine/line"
	"github.com/dshills/hecto/internal/renderer/annotated"
)

func TestProviderScenario(t *testing.T) {
	buf := buffer.New(buffer.WithContent("/* start\nend */ let y;"))
	p := NewProvider(NewRustHighlighter())
	p.HighlightAll(buf)

	got0 := spans(buf.LineText(0), p.Annotations(0))
	if want := []span{{annotated.KindComment, "/* start"}}; !reflect.DeepEqual(got0, want) {
		t.Errorf("Annotations(0) = %v, want %v", got0, want)
	}

	got1 := spans(buf.LineText(1), p.Annotations(1))
	want1 := []span{{annotated.KindComment, "end */"}, {annotated.KindKeyword, "let"}}
	if !reflect.DeepEqual(got1, want1) {
		t.Errorf("Annotations(1) = %v, want %v", got1, want1)
	}
}

func TestProviderSearchAfterSyntax(t *testing.T) {
	buf := buffer.New(buffer.WithContent("let let"))
	p := NewProvider(NewRustHighlighter())
	p.SetSearch("let", buffer.Location{LineIndex: 0, GraphemeIndex: 5})
	p.HighlightAll(buf)

	got := p.Annotations(0)
	want := []annotated.Annotation{
		{Kind: annotated.KindKeyword, Start: 0, End: 3},
		{Kind: annotated.KindKeyword, Start: 4, End: 7},
		{Kind: annotated.KindMatch, Start: 0, End: 3},
		{Kind: annotated.KindSelectedMatch, Start: 4, End: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Annotations(0) = %v, want %v", got, want)
	}

	p.ClearSearch()
	p.HighlightAll(buf)
	if got := p.Annotations(0); len(got) != 2 {
		t.Errorf("Annotations(0) after ClearSearch = %v, want 2 syntax annotations", got)
	}
}

func TestProviderCheckpointReuse(t *testing.T) {
	buf := buffer.New(buffer.WithContent("fn a() {}\nlet x = 1;\nlet y = 2;\nlet z = 3;"))
	p := NewProvider(NewRustHighlighter())
	p.HighlightAll(buf)
	if p.Scanned() != 4 {
		t.Fatalf("first pass Scanned() = %d, want 4", p.Scanned())
	}

	p.ResetStats()
	p.HighlightAll(buf)
	if p.Scanned() != 0 {
		t.Errorf("unchanged pass Scanned() = %d, want 0", p.Scanned())
	}

	// An edit that does not change the carry state rescans one line.
	p.ResetStats()
	buf.InsertChar('9', buffer.Location{LineIndex: 1, GraphemeIndex: 9})
	p.HighlightAll(buf)
	if p.Scanned() != 1 {
		t.Errorf("local edit Scanned() = %d, want 1", p.Scanned())
	}

	// Opening a comment changes every following line.
	p.ResetStats()
	buf.InsertString("/*", buffer.Location{LineIndex: 1, GraphemeIndex: 0})
	p.HighlightAll(buf)
	if p.Scanned() != 3 {
		t.Errorf("comment edit Scanned() = %d, want 3", p.Scanned())
	}
	for i := 1; i < 4; i++ {
		anns := p.Annotations(i)
		if len(anns) != 1 || anns[0].Kind != annotated.KindComment {
			t.Errorf("Annotations(%d) = %v, want one comment", i, anns)
		}
	}
}

func TestProviderWithoutCheckpointsMatches(t *testing.T) {
	content := "let s = \"a\nb\";\n/* x\ny */ fn\nlet n = 0x1F;"
	buf := buffer.New(buffer.WithContent(content))

	cached := NewProvider(NewRustHighlighter())
	fresh := NewProvider(NewRustHighlighter(), WithCheckpoints(false))

	edits := []buffer.Location{{LineIndex: 0, GraphemeIndex: 0}, {LineIndex: 2, GraphemeIndex: 1}, {LineIndex: 4, GraphemeIndex: 3}}
	for _, loc := range edits {
		cached.HighlightAll(buf)
		fresh.HighlightAll(buf)
		for i := 0; i < buf.LineCount(); i++ {
			if !reflect.DeepEqual(cached.Annotations(i), fresh.Annotations(i)) {
				t.Errorf("line %d: cached %v != fresh %v", i, cached.Annotations(i), fresh.Annotations(i))
			}
		}
		buf.InsertChar('"', loc)
	}
}

func TestProviderTruncate(t *testing.T) {
	buf := buffer.New(buffer.WithContent("let a;\nlet b;"))
	p := NewProvider(NewRustHighlighter())
	p.HighlightAll(buf)

	buf.DeleteChar(buffer.Location{LineIndex: 0, GraphemeIndex: 6})
	p.HighlightAll(buf)
	if got := p.Annotations(1); got != nil {
		t.Errorf("Annotations(1) after join = %v, want nil", got)
	}
}

func TestProviderOutOfRange(t *testing.T) {
	p := NewProvider(nil)
	if got := p.Annotations(3); got != nil {
		t.Errorf("Annotations(3) = %v, want nil", got)
	}
	p.Highlight(-1, line.New("x"))
	p.Highlight(0, nil)
	if _, ok := p.StateAfter(0); ok {
		t.Error("StateAfter(0) = true, want false")
	}
}

func TestProviderSetSyntaxDropsCache(t *testing.T) {
	buf := buffer.New(buffer.WithContent("let x;"))
	p := NewProvider(NewRustHighlighter())
	p.HighlightAll(buf)

	p.SetSyntax(nil)
	if _, ok := p.Syntax().(PlainHighlighter); !ok {
		t.Errorf("Syntax() = %T, want PlainHighlighter", p.Syntax())
	}
	p.HighlightAll(buf)
	if got := p.Annotations(0); len(got) != 0 {
		t.Errorf("Annotations(0) = %v, want none", got)
	}
}

func TestProviderHighlightThrough(t *testing.T) {
	buf := buffer.New(buffer.WithContent("/*\nx\ny\nz */ fn"))
	p := NewProvider(NewRustHighlighter())
	p.HighlightThrough(buf, 1)

	if state, ok := p.StateAfter(1); !ok || state.CommentDepth != 1 {
		t.Errorf("StateAfter(1) = %v, %v; want comment(1), true", state, ok)
	}
	if got := p.Annotations(2); got != nil {
		t.Errorf("Annotations(2) = %v, want nil", got)
	}
}
