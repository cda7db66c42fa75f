package app

import (
	"strings"
	"time"

	"github.com/dshills/hecto/internal/engine/buffer"
)

// welcomeMargin is the number of blank box rows above and below the title.
const welcomeMargin = 5

// textAreaHeight returns the rows left for text once the status bar and
// the message bar are placed. The message bar takes the last row, the
// status bar the one above it.
func textAreaHeight(height int) int {
	return max(height-2, 0)
}

// render draws a full frame.
func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	start := time.Now()
	defer func() { app.metrics.RecordFrame(time.Since(start)) }()

	r := app.renderer
	r.Begin()

	if app.width == 0 || app.height == 0 {
		r.Finish(-1, -1)
		return
	}

	textRows := textAreaHeight(app.height)
	app.drawText(textRows)
	if app.height >= 2 {
		app.drawStatus(app.height - 2)
	}
	app.drawBottomBar(app.height - 1)

	r.Finish(app.cursorPosition(textRows))
}

// drawText draws the visible lines of the document, or the welcome message
// for an empty unnamed document. Rows past the end show a tilde.
func (app *Application) drawText(rows int) {
	if rows == 0 {
		return
	}
	r := app.renderer
	buf := app.doc.Buffer()
	provider := app.doc.Provider()

	if app.mode == promptSearch && app.search.Query() != "" {
		provider.SetSearch(app.search.Query(), app.search.Selected())
	} else {
		provider.ClearSearch()
	}

	top, left := app.view.Viewport().Offset()
	last := min(top+rows, buf.LineCount()) - 1
	if last >= 0 {
		app.doc.HighlightThrough(last)
	}

	var welcome *buffer.Buffer
	if app.showWelcome() {
		welcome = welcomeMessage(app.width, Name, app.opts.Version)
	}
	welcomeStart := rows / 3

	text := r.Theme().TextStyle()
	for row := 0; row < rows; row++ {
		idx := top + row
		if l, ok := buf.Line(idx); ok {
			r.DrawLine(row, l, provider.Annotations(idx), left)
			continue
		}
		if welcome != nil {
			if l, ok := welcome.Line(row - welcomeStart); ok {
				r.DrawLine(row, l, nil, 0)
				continue
			}
		}
		r.DrawText(row, "~", text)
	}
}

// showWelcome reports whether the welcome message replaces the text area.
func (app *Application) showWelcome() bool {
	buf := app.doc.Buffer()
	return app.config.Editor().ShowWelcome && !buf.HasPath() && buf.IsEmpty()
}

// drawStatus draws the status bar in the theme's status style.
func (app *Application) drawStatus(row int) {
	status := app.doc.Status(app.view.Location().LineIndex)
	app.renderer.DrawText(row, status.Format(app.width), app.theme.StatusBar)
}

// drawBottomBar draws the command bar while a prompt is open, otherwise
// the current message.
func (app *Application) drawBottomBar(row int) {
	text := app.messages.Text()
	if app.mode != promptNone {
		text = app.prompt.Visible(app.width)
	}
	app.renderer.DrawText(row, text, app.theme.TextStyle())
}

// cursorPosition returns where the terminal cursor goes: in the command
// bar while a prompt is open, otherwise at the caret.
func (app *Application) cursorPosition(textRows int) (x, y int) {
	if app.mode != promptNone {
		return app.prompt.CaretColumn(app.width), app.height - 1
	}
	if textRows == 0 {
		return -1, -1
	}
	x, y = app.view.CaretPosition()
	if y >= textRows {
		return -1, -1
	}
	return x, y
}

// welcomeMessage builds the welcome box for a screen width columns wide.
// The title row is centered; an odd leftover column goes to the left.
func welcomeMessage(width int, name, version string) *buffer.Buffer {
	b := buffer.New()
	bar := strings.Repeat("=", width)
	blank := "|" + strings.Repeat(" ", max(width-2, 0)) + "|"

	space := max(width-len(name)-len(version)-3, 0)
	padLeft := strings.Repeat(" ", space/2+space%2)
	padRight := strings.Repeat(" ", space/2)
	title := "|" + padLeft + name + " " + version + padRight + "|"

	b.Append(bar)
	for range welcomeMargin {
		b.Append(blank)
	}
	b.Append(title)
	for range welcomeMargin {
		b.Append(blank)
	}
	b.Append(bar)
	return b
}
