package statusline

import (
	"strings"
	"testing"
	"time"
)

func TestStatusFormat(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		width  int
		want   string
	}{
		{
			name:   "unnamed",
			status: Status{LineCount: 0},
			width:  30,
			want:   "[No Name] - 0 lines       1/0 ",
		},
		{
			name:   "modified with type",
			status: Status{FileName: "main.rs", LineCount: 3, Modified: true, FileType: "Rust", CaretLine: 1},
			width:  40,
			want:   "main.rs - 3 lines (modified) Rust | 2/3 ",
		},
		{
			name:   "too narrow drops right half",
			status: Status{FileName: "a.txt", LineCount: 1, FileType: "Text"},
			width:  10,
			want:   "a.txt - 1 lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Format(tt.width); got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.width, got, tt.want)
			}
		})
	}
}

func TestStatusLongName(t *testing.T) {
	s := Status{FileName: strings.Repeat("x", 80)}
	left := s.Left()
	if !strings.HasPrefix(left, strings.Repeat("x", maxNameWidth)+" - ") {
		t.Errorf("Left() = %q, want name cut to %d columns", left, maxNameWidth)
	}
}

func TestMessageBarExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMessageBar(0)
	m.SetClock(func() time.Time { return now })

	if m.Timeout() != DefaultMessageTimeout {
		t.Errorf("Timeout() = %v, want %v", m.Timeout(), DefaultMessageTimeout)
	}

	m.Set("File saved successfully.")
	if got := m.Text(); got != "File saved successfully." {
		t.Errorf("Text() = %q, want message", got)
	}

	now = now.Add(DefaultMessageTimeout + time.Second)
	if !m.Expired() {
		t.Error("message should have expired")
	}
	if got := m.Text(); got != "" {
		t.Errorf("Text() after timeout = %q, want empty", got)
	}

	m.Set("again")
	m.Clear()
	if got := m.Text(); got != "" {
		t.Errorf("Text() after Clear = %q, want empty", got)
	}
}

func TestCommandBarEditing(t *testing.T) {
	c := NewCommandBar()
	c.SetPrompt("Search: ")

	for _, r := range "fooo" {
		c.Insert(r)
	}
	c.Backspace()
	if got := c.Value(); got != "foo" {
		t.Errorf("Value() = %q, want %q", got, "foo")
	}
	if got := c.Visible(20); got != "Search: foo" {
		t.Errorf("Visible(20) = %q, want %q", got, "Search: foo")
	}
	if got := c.CaretColumn(20); got != 11 {
		t.Errorf("CaretColumn(20) = %d, want 11", got)
	}

	c.Clear()
	c.Backspace()
	if got := c.Value(); got != "" {
		t.Errorf("Value() = %q, want empty", got)
	}
}

func TestCommandBarScrollsToEnd(t *testing.T) {
	c := NewCommandBar()
	c.SetPrompt("> ")
	for _, r := range "abcdefgh" {
		c.Insert(r)
	}

	if got := c.Visible(6); got != "> efgh" {
		t.Errorf("Visible(6) = %q, want %q", got, "> efgh")
	}
	if got := c.CaretColumn(6); got != 5 {
		t.Errorf("CaretColumn(6) = %d, want 5", got)
	}
	if got := c.Visible(1); got != "" {
		t.Errorf("Visible(1) = %q, want empty", got)
	}
}
