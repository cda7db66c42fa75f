package renderer

import (
	"slices"

	"github.com/dshills/hecto/internal/engine/line"
	"github.com/dshills/hecto/internal/renderer/annotated"
	"github.com/dshills/hecto/internal/renderer/backend"
	"github.com/dshills/hecto/internal/renderer/core"
	"github.com/dshills/hecto/internal/renderer/highlight"
)

// Renderer is the main rendering facade. It draws rows of text onto a
// backend using the colors of a theme.
type Renderer struct {
	backend backend.Backend
	theme   *highlight.Theme

	width  int
	height int

	frameCount uint64
}

// New creates a new renderer with the given backend and theme.
// A nil theme selects the default theme.
func New(b backend.Backend, theme *highlight.Theme) *Renderer {
	if theme == nil {
		theme = highlight.DefaultTheme()
	}
	width, height := b.Size()
	return &Renderer{
		backend: b,
		theme:   theme,
		width:   width,
		height:  height,
	}
}

// Backend returns the backend the renderer draws on.
func (r *Renderer) Backend() backend.Backend {
	return r.backend
}

// Theme returns the active theme.
func (r *Renderer) Theme() *highlight.Theme {
	return r.theme
}

// SetTheme replaces the active theme. Nil is ignored.
func (r *Renderer) SetTheme(theme *highlight.Theme) {
	if theme != nil {
		r.theme = theme
	}
}

// Resize handles terminal resize events.
func (r *Renderer) Resize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
}

// Size returns the current screen dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Begin starts a frame. The cursor is hidden while drawing.
func (r *Renderer) Begin() {
	r.backend.HideCursor()
}

// Finish positions the cursor and flushes the frame to the screen.
// A cursor outside the screen stays hidden.
func (r *Renderer) Finish(cursorX, cursorY int) {
	if cursorX >= 0 && cursorX < r.width && cursorY >= 0 && cursorY < r.height {
		r.backend.ShowCursor(cursorX, cursorY)
	}
	r.backend.Show()
	r.frameCount++
}

// DrawLine draws the columns [left, left+width) of l at the given screen row.
// Annotations are resolved by the annotated projection and colored by the
// theme. Wide graphemes cut by either edge are drawn as an ellipsis.
func (r *Renderer) DrawLine(row int, l *line.Line, annotations []annotated.Annotation, left int) {
	if row < 0 || row >= r.height || r.width == 0 {
		return
	}
	left = max(left, 0)
	right := left + r.width

	start, end := l.ByteRangeForColumns(left, right)
	parts := slices.Collect(annotated.New(l.Text(), annotations...).Crop(start, end).Parts())
	base := r.theme.TextStyle()

	pos, p := 0, 0
	for _, f := range l.Fragments() {
		if pos >= right {
			break
		}
		next := pos + f.Width.Columns()
		if next > left {
			rel := f.StartByte - start
			for p < len(parts)-1 && parts[p].Start+len(parts[p].Text) <= rel {
				p++
			}
			style := base
			if p < len(parts) && parts[p].Styled {
				style = base.Merge(r.theme.StyleFor(parts[p].Kind))
			}

			if pos < left || next > right {
				r.setEllipsis(max(pos, left)-left, row, style)
			} else {
				r.setFragment(pos-left, row, f, style)
			}
		}
		pos = next
	}

	r.fill(max(min(pos, right)-left, 0), row, base)
}

// DrawText draws text from column 0 of row in a single style, padding the
// rest of the row. Text wider than the screen is cut at the right edge.
func (r *Renderer) DrawText(row int, text string, style core.Style) {
	r.DrawTextAt(row, 0, text, style)
}

// DrawTextAt draws text starting at screen column col and pads the row.
func (r *Renderer) DrawTextAt(row, col int, text string, style core.Style) {
	if row < 0 || row >= r.height {
		return
	}
	x := max(col, 0)
	for _, f := range line.New(text).Fragments() {
		if x >= r.width {
			break
		}
		if x+f.Width.Columns() > r.width {
			r.setEllipsis(x, row, style)
			x++
			break
		}
		r.setFragment(x, row, f, style)
		x += f.Width.Columns()
	}
	r.fill(x, row, style)
}

// ClearRow fills a row with blank cells in the theme's text style.
func (r *Renderer) ClearRow(row int) {
	if row < 0 || row >= r.height {
		return
	}
	r.fill(0, row, r.theme.TextStyle())
}

func (r *Renderer) setFragment(x, row int, f line.Fragment, style core.Style) {
	r.backend.SetCell(x, row, core.Cell{
		Content: f.Display(),
		Width:   f.Width.Columns(),
		Style:   style,
	})
	if f.Width == line.WidthFull {
		r.backend.SetCell(x+1, row, core.Cell{Style: style})
	}
}

func (r *Renderer) setEllipsis(x, row int, style core.Style) {
	r.backend.SetCell(x, row, core.Cell{
		Content: string(line.GlyphEllipsis),
		Width:   1,
		Style:   style,
	})
}

// fill pads the row with blank cells from column x to the right edge.
func (r *Renderer) fill(x, row int, style core.Style) {
	blank := core.Cell{Content: " ", Width: 1, Style: style}
	for ; x < r.width; x++ {
		r.backend.SetCell(x, row, blank)
	}
}
