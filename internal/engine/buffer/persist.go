package buffer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Load replaces the buffer contents with the lines of the file at path.
// On failure the buffer is left unchanged.
func (b *Buffer) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}

	b.lines = splitLines(string(data))
	b.path = path
	b.modified = false
	return nil
}

// LoadFromReader replaces the buffer contents with the lines read from r.
// The file path is left as is. On failure the buffer is left unchanged.
func (b *Buffer) LoadFromReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &PersistenceError{Op: "load", Path: b.path, Err: err}
	}

	b.lines = splitLines(string(data))
	b.modified = false
	return nil
}

// Save writes the buffer to its file, one newline-terminated record per line.
// It fails with a *PersistenceError wrapping ErrNoFileName if no path is set.
// The modified flag is cleared only on success.
func (b *Buffer) Save() error {
	if b.path == "" {
		return &PersistenceError{Op: "save", Err: ErrNoFileName}
	}
	if err := b.writeFile(b.path); err != nil {
		return &PersistenceError{Op: "save", Path: b.path, Err: err}
	}
	b.modified = false
	return nil
}

// SaveAs associates the buffer with path and saves it.
func (b *Buffer) SaveAs(path string) error {
	b.path = path
	return b.Save()
}

// WriteTo writes the buffer contents to w in the on-disk format.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range b.lines {
		written, err := fmt.Fprintln(bw, l.Text())
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// writeFile writes to a temporary file in the target directory and renames
// it over path, so a failed write never leaves a truncated file behind.
func (b *Buffer) writeFile(path string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := b.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
