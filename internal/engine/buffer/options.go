package buffer

// Option configures a Buffer.
type Option func(*Buffer)

// WithContent sets the initial content, split into lines on '\n'.
// The buffer is not marked modified.
func WithContent(text string) Option {
	return func(b *Buffer) {
		b.lines = splitLines(text)
	}
}

// WithPath sets the file the buffer saves to.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}
