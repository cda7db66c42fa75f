// Package statusline provides the status bar, message bar and command bar
// shown below the text area.
package statusline

import (
	"fmt"
	"strings"

	"github.com/dshills/hecto/internal/renderer/core"
)

// noName is shown when the document has no file name.
const noName = "[No Name]"

// maxNameWidth bounds the file name shown in the status bar.
const maxNameWidth = 50

// Status is the document information shown in the status bar.
type Status struct {
	FileName  string // empty for an unnamed document
	LineCount int
	Modified  bool
	FileType  string
	CaretLine int // zero-based
}

// Name returns the file name, or a placeholder for unnamed documents.
func (s Status) Name() string {
	if s.FileName == "" {
		return noName
	}
	return s.FileName
}

// ModifiedIndicator returns "(modified)" when there are unsaved changes.
func (s Status) ModifiedIndicator() string {
	if s.Modified {
		return "(modified)"
	}
	return ""
}

// LineCountText returns the line count, e.g. "12 lines".
func (s Status) LineCountText() string {
	return fmt.Sprintf("%d lines", s.LineCount)
}

// PositionText returns the caret line over the line count, e.g. "3/12".
func (s Status) PositionText() string {
	return fmt.Sprintf("%d/%d", s.CaretLine+1, s.LineCount)
}

// Left returns the left half of the status bar.
func (s Status) Left() string {
	name := truncate(s.Name(), maxNameWidth)
	left := fmt.Sprintf("%s - %s %s", name, s.LineCountText(), s.ModifiedIndicator())
	return strings.TrimRight(left, " ")
}

// Right returns the right half of the status bar.
func (s Status) Right() string {
	if s.FileType == "" {
		return s.PositionText()
	}
	return s.FileType + " | " + s.PositionText()
}

// Format lays out the status for a bar width columns wide. The right half
// is dropped when both halves do not fit.
func (s Status) Format(width int) string {
	left, right := s.Left(), s.Right()
	pad := width - core.StringWidth(left) - core.StringWidth(right) - 1
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right + " "
}

// truncate cuts s to at most width columns.
func truncate(s string, width int) string {
	if core.StringWidth(s) <= width {
		return s
	}
	var sb strings.Builder
	used := 0
	for _, r := range s {
		w := core.StringWidth(string(r))
		if used+w > width {
			break
		}
		sb.WriteRune(r)
		used += w
	}
	return sb.String()
}
