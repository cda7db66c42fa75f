package statusline

import (
	"github.com/dshills/hecto/internal/engine/line"
	"github.com/dshills/hecto/internal/renderer/core"
)

// CommandBar is a single-line prompt. The value is edited at its end only.
type CommandBar struct {
	prompt string
	value  *line.Line
}

// NewCommandBar creates an empty command bar.
func NewCommandBar() *CommandBar {
	return &CommandBar{value: line.New("")}
}

// SetPrompt sets the prompt text shown before the value.
func (c *CommandBar) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Prompt returns the prompt text.
func (c *CommandBar) Prompt() string {
	return c.prompt
}

// Insert appends ch to the value.
func (c *CommandBar) Insert(ch rune) {
	c.value.Insert(ch, c.value.GraphemeCount())
}

// Backspace removes the last grapheme of the value.
func (c *CommandBar) Backspace() {
	c.value.Delete(c.value.GraphemeCount() - 1)
}

// Clear empties the value.
func (c *CommandBar) Clear() {
	c.value.Clear()
}

// Value returns the typed text.
func (c *CommandBar) Value() string {
	return c.value.Text()
}

// Line returns the value as a line.
func (c *CommandBar) Line() *line.Line {
	return c.value
}

// Visible returns the text to draw in a bar width columns wide: the prompt
// followed by as much of the end of the value as fits. If the prompt alone
// does not fit, nothing is shown.
func (c *CommandBar) Visible(width int) string {
	promptWidth := core.StringWidth(c.prompt)
	if promptWidth > width {
		return ""
	}
	area := width - promptWidth
	total := c.value.Width()
	if total <= area {
		return c.prompt + c.value.VisibleGraphemes(0, total)
	}
	return c.prompt + c.value.VisibleGraphemes(total-area, total)
}

// CaretColumn returns the screen column of the caret, kept inside the bar.
func (c *CommandBar) CaretColumn(width int) int {
	col := core.StringWidth(c.prompt) + c.value.Width()
	return max(min(col, width-1), 0)
}
