package app

import (
	"errors"
	"io/fs"

	"github.com/dshills/hecto/internal/config"
	"github.com/dshills/hecto/internal/engine/buffer"
	"github.com/dshills/hecto/internal/renderer/highlight"
	"github.com/dshills/hecto/internal/renderer/statusline"
)

// Document is the open file with its highlighting state.
type Document struct {
	buf      *buffer.Buffer
	provider *highlight.Provider
	registry *highlight.Registry
	fileType highlight.FileType

	// syntax is false when highlighting is turned off in the config.
	syntax bool
}

// NewDocument creates an empty, unnamed document.
func NewDocument(registry *highlight.Registry, cfg config.HighlightConfig) *Document {
	if registry == nil {
		registry = highlight.DefaultRegistry()
	}
	registry.EnableChroma(cfg.Chroma)

	return &Document{
		buf:      buffer.New(),
		provider: highlight.NewProvider(nil, highlight.WithCheckpoints(cfg.Checkpoints)),
		registry: registry,
		fileType: highlight.FileTypeText,
		syntax:   cfg.Enabled,
	}
}

// Buffer returns the document text.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// Provider returns the highlighting provider.
func (d *Document) Provider() *highlight.Provider {
	return d.provider
}

// FileType returns the detected file type.
func (d *Document) FileType() highlight.FileType {
	return d.fileType
}

// Open loads the file at path. A file that does not exist yet opens as an
// empty document that will be created on save.
func (d *Document) Open(path string) error {
	if err := d.buf.Load(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return NewOperationError("open", path, err)
		}
		d.buf.Clear()
		d.buf.SetPath(path)
	}
	d.detectSyntax()
	return nil
}

// Reload reads the file again, discarding unsaved changes.
func (d *Document) Reload() error {
	if !d.buf.HasPath() {
		return NewOperationError("reload", "", buffer.ErrNoFileName)
	}
	if err := d.buf.Load(d.buf.Path()); err != nil {
		return NewOperationError("reload", d.buf.Path(), err)
	}
	d.provider.Invalidate()
	return nil
}

// Save writes the document to its file.
func (d *Document) Save() error {
	return d.buf.Save()
}

// SaveAs writes the document to path and makes it the document's file.
func (d *Document) SaveAs(path string) error {
	if err := d.buf.SaveAs(path); err != nil {
		return err
	}
	d.detectSyntax()
	return nil
}

// detectSyntax picks the highlighter for the current file name.
func (d *Document) detectSyntax() {
	h, ft := d.registry.ForPath(d.buf.Path())
	d.fileType = ft
	if !d.syntax {
		h = highlight.PlainHighlighter{}
	}
	d.provider.SetSyntax(h)
}

// HighlightThrough brings the annotations of lines [0, last] up to date.
// Earlier lines are needed because lexer state carries across lines.
func (d *Document) HighlightThrough(last int) {
	d.provider.HighlightThrough(d.buf, last)
}

// Status returns the status bar contents for a caret on caretLine.
func (d *Document) Status(caretLine int) statusline.Status {
	return statusline.Status{
		FileName:  d.buf.FileName(),
		LineCount: d.buf.LineCount(),
		Modified:  d.buf.IsModified(),
		FileType:  d.fileType.String(),
		CaretLine: caretLine,
	}
}
