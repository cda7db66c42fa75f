// Package watcher detects changes made to the open document by other
// programs.
//
// The watcher observes the directory holding the file, since most tools
// save by writing a temporary file and renaming it into place. Bursts of
// events are debounced into one Event per change.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op holds every operation seen during the debounce window.
	Op Op

	// Timestamp is when the event was delivered.
	Timestamp time.Time
}

// Removed reports whether the file was removed or renamed away and not
// recreated within the same event.
func (e Event) Removed() bool {
	return (e.Op.Has(OpRemove) || e.Op.Has(OpRename)) && !e.Op.Has(OpCreate)
}

type config struct {
	debounce   time.Duration
	bufferSize int
}

// Option configures a FileWatcher.
type Option func(*config)

// WithDebounce sets how long to wait for a burst of events to settle.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithBufferSize sets the capacity of the event channel.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// fileMark is the state of the file after a write by this process.
type fileMark struct {
	modTime time.Time
	size    int64
}

// FileWatcher reports changes to a single file.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	cfg     config

	events chan Event
	errors chan error

	pending   *time.Timer
	pendingOp Op

	mark    fileMark
	hasMark bool

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching the file at path. The file itself need not exist
// yet, but its directory must.
func New(path string, opts ...Option) (*FileWatcher, error) {
	cfg := config{debounce: 100 * time.Millisecond, bufferSize: 16}
	for _, opt := range opts {
		opt(&cfg)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		path:    absPath,
		cfg:     cfg,
		events:  make(chan Event, cfg.bufferSize),
		errors:  make(chan error, cfg.bufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *FileWatcher) Path() string {
	return w.path
}

// Events returns the channel of file change events.
// The channel is closed when the watcher is closed.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watcher errors.
// The channel is closed when the watcher is closed.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Mark records the current state of the file. Pending and future events
// are dropped while the file still matches it, so writes made by this
// process are not reported back.
func (w *FileWatcher) Mark() error {
	info, err := os.Stat(w.path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	w.mark = fileMark{modTime: info.ModTime(), size: info.Size()}
	w.hasMark = true
	return nil
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	close(w.closeCh)
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	w.mu.Lock()
	close(w.events)
	close(w.errors)
	w.mu.Unlock()

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(fsEvent.Name) != w.path {
				continue
			}
			if op := convertOp(fsEvent.Op); op != 0 {
				w.queue(op)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// queue merges op into the pending event and restarts the debounce timer.
func (w *FileWatcher) queue(op Op) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.pendingOp |= op
	if w.pending == nil {
		w.pending = time.AfterFunc(w.cfg.debounce, w.flush)
	} else {
		w.pending.Reset(w.cfg.debounce)
	}
}

// flush delivers the pending event unless the file still matches the mark.
func (w *FileWatcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	op := w.pendingOp
	w.pendingOp = 0
	w.pending = nil
	if w.closed || op == 0 || w.matchesMark() {
		return
	}

	select {
	case w.events <- Event{Path: w.path, Op: op, Timestamp: time.Now()}:
	default:
		// Channel full, drop event
	}
}

// matchesMark reports whether the file is unchanged since Mark (must hold lock).
func (w *FileWatcher) matchesMark() bool {
	if !w.hasMark {
		return false
	}
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	return info.ModTime().Equal(w.mark.modTime) && info.Size() == w.mark.size
}

// sendError sends an error to the output channel.
func (w *FileWatcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}

// convertOp converts fsnotify.Op to watcher.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}
