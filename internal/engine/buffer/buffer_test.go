package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineTexts(b *Buffer) []string {
	var out []string
	for _, l := range b.Lines() {
		out = append(out, l.Text())
	}
	return out
}

func TestNewEmpty(t *testing.T) {
	b := New()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.LineCount())
	assert.False(t, b.IsModified())
	assert.False(t, b.HasPath())
	assert.Equal(t, "", b.FileName())
}

func TestWithContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.text))
			assert.Equal(t, tt.want, lineTexts(b))
			assert.False(t, b.IsModified())
		})
	}
}

func TestLineOutOfRange(t *testing.T) {
	b := New(WithContent("a"))
	_, ok := b.Line(1)
	assert.False(t, ok)
	_, ok = b.Line(-1)
	assert.False(t, ok)
	assert.Equal(t, "", b.LineText(5))
	assert.Equal(t, 0, b.GraphemeCount(5))
}

func TestLocationCompare(t *testing.T) {
	tests := []struct {
		a, b Location
		want int
	}{
		{Location{0, 0}, Location{0, 0}, 0},
		{Location{0, 1}, Location{0, 2}, -1},
		{Location{1, 0}, Location{0, 9}, 1},
		{Location{2, 3}, Location{2, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Before(tt.b))
			assert.Equal(t, tt.want > 0, tt.a.After(tt.b))
		})
	}
}

func TestInsertChar(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ch      rune
		loc     Location
		want    []string
		changed bool
	}{
		{"middle", "ac", 'b', Location{0, 1}, []string{"abc"}, true},
		{"end of line", "ab", 'c', Location{0, 2}, []string{"abc"}, true},
		{"empty buffer", "", 'x', Location{0, 0}, []string{"x"}, true},
		{"past last line appends", "a", 'b', Location{1, 0}, []string{"a", "b"}, true},
		{"far past last line ignored", "a", 'b', Location{3, 0}, []string{"a"}, false},
		{"negative line ignored", "a", 'b', Location{-1, 0}, []string{"a"}, false},
		{"wide char", "ab", '日', Location{0, 1}, []string{"a日b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.content))
			b.InsertChar(tt.ch, tt.loc)
			assert.Equal(t, tt.want, lineTexts(b))
			assert.Equal(t, tt.changed, b.IsModified())
		})
	}
}

func TestDeleteChar(t *testing.T) {
	tests := []struct {
		name    string
		content string
		loc     Location
		want    []string
		changed bool
	}{
		{"middle", "abc", Location{0, 1}, []string{"ac"}, true},
		{"first", "abc", Location{0, 0}, []string{"bc"}, true},
		{"joins next line", "ab\ncd", Location{0, 2}, []string{"abcd"}, true},
		{"joins empty next line", "ab\n\ncd", Location{0, 2}, []string{"ab", "cd"}, true},
		{"end of last line", "ab\ncd", Location{1, 2}, []string{"ab", "cd"}, false},
		{"past end of line", "ab\ncd", Location{0, 5}, []string{"ab", "cd"}, false},
		{"line out of range", "ab", Location{4, 0}, []string{"ab"}, false},
		{"combining cluster", "e\u0301x", Location{0, 0}, []string{"x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.content))
			b.DeleteChar(tt.loc)
			assert.Equal(t, tt.want, lineTexts(b))
			assert.Equal(t, tt.changed, b.IsModified())
		})
	}
}

func TestInsertNewline(t *testing.T) {
	tests := []struct {
		name    string
		content string
		loc     Location
		want    []string
	}{
		{"split middle", "abcd", Location{0, 2}, []string{"ab", "cd"}},
		{"split start", "ab", Location{0, 0}, []string{"", "ab"}},
		{"split end", "ab", Location{0, 2}, []string{"ab", ""}},
		{"keeps following lines", "ab\ncd", Location{0, 1}, []string{"a", "b", "cd"}},
		{"past last line appends", "ab", Location{1, 0}, []string{"ab", ""}},
		{"empty buffer", "", Location{0, 0}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.content))
			b.InsertNewline(tt.loc)
			assert.Equal(t, tt.want, lineTexts(b))
			assert.True(t, b.IsModified())
		})
	}
}

func TestNewlineThenDeleteRestores(t *testing.T) {
	b := New(WithContent("hello world\nnext"))
	b.InsertNewline(Location{0, 5})
	b.DeleteChar(Location{0, 5})
	assert.Equal(t, []string{"hello world", "next"}, lineTexts(b))
}

func TestClampLocation(t *testing.T) {
	b := New(WithContent("abc\nde"))
	tests := []struct {
		in, want Location
	}{
		{Location{0, 1}, Location{0, 1}},
		{Location{0, 9}, Location{0, 3}},
		{Location{1, 9}, Location{1, 2}},
		{Location{5, 5}, Location{2, 0}},
		{Location{-1, -1}, Location{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, b.ClampLocation(tt.in))
		})
	}
}

func TestAppendDoesNotModify(t *testing.T) {
	b := New()
	b.Append("welcome")
	assert.Equal(t, []string{"welcome"}, lineTexts(b))
	assert.False(t, b.IsModified())
}

func TestText(t *testing.T) {
	b := New(WithContent("a\nb\nc\n"))
	assert.Equal(t, "a\nb\nc", b.Text())
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	b := New()
	require.NoError(t, b.Load(path))
	assert.Equal(t, []string{"one", "two"}, lineTexts(b))
	assert.Equal(t, path, b.Path())
	assert.Equal(t, "doc.txt", b.FileName())
	assert.False(t, b.IsModified())

	b.InsertChar('!', Location{1, 3})
	require.True(t, b.IsModified())
	require.NoError(t, b.Save())
	assert.False(t, b.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo!\n", string(data))
}

func TestLoadMissingFileLeavesBuffer(t *testing.T) {
	b := New(WithContent("keep"))
	err := b.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "load", perr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, []string{"keep"}, lineTexts(b))
	assert.False(t, b.HasPath())
}

func TestSaveWithoutPath(t *testing.T) {
	b := New(WithContent("x"))
	b.InsertChar('y', Location{0, 1})

	err := b.Save()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFileName))
	assert.True(t, b.IsModified())
}

func TestSaveToUnwritablePathKeepsModified(t *testing.T) {
	b := New(WithContent("x"), WithPath(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")))
	b.InsertChar('y', Location{0, 1})

	err := b.Save()
	require.Error(t, err)
	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "save", perr.Op)
	assert.True(t, b.IsModified())
}

func TestSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b := New(WithContent("a\nb"))
	require.NoError(t, b.SaveAs(path))
	assert.Equal(t, path, b.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestLoadFromReader(t *testing.T) {
	b := New(WithPath("x.rs"))
	require.NoError(t, b.LoadFromReader(strings.NewReader("fn main() {}\n")))
	assert.Equal(t, []string{"fn main() {}"}, lineTexts(b))
	assert.Equal(t, "x.rs", b.Path())
}

func TestSaveEmptyBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	b := New()
	require.NoError(t, b.SaveAs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
