package highlight

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileType names the kind of document being edited.
type FileType string

// Built-in file types. Other types take the name of their chroma lexer.
const (
	FileTypeText FileType = "Text"
	FileTypeRust FileType = "Rust"
)

// String returns the file type name shown in the status bar.
func (f FileType) String() string {
	if f == "" {
		return string(FileTypeText)
	}
	return string(f)
}

// Registry manages available highlighters.
type Registry struct {
	mu sync.RWMutex

	// byLanguage maps language names to highlighters
	byLanguage map[string]SyntaxHighlighter

	// byExtension maps file extensions to highlighters
	byExtension map[string]SyntaxHighlighter

	// chroma enables chroma lexers for unregistered extensions
	chroma bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]SyntaxHighlighter),
		byExtension: make(map[string]SyntaxHighlighter),
	}
}

// DefaultRegistry returns a registry with the built-in highlighters and
// chroma fallback enabled.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewRustHighlighter())
	r.Register(PlainHighlighter{})
	r.EnableChroma(true)
	return r
}

// Register adds a highlighter to the registry.
func (r *Registry) Register(h SyntaxHighlighter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byLanguage[h.Language()] = h
	for _, ext := range h.FileExtensions() {
		r.byExtension[normalizeExt(ext)] = h
	}
}

// EnableChroma turns the chroma fallback on or off.
func (r *Registry) EnableChroma(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chroma = enabled
}

// GetByLanguage returns a highlighter for the given language.
func (r *Registry) GetByLanguage(language string) (SyntaxHighlighter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byLanguage[language]
	return h, ok
}

// GetByExtension returns a highlighter for the given file extension.
func (r *Registry) GetByExtension(ext string) (SyntaxHighlighter, bool) {
	if ext == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byExtension[normalizeExt(ext)]
	return h, ok
}

// ForPath returns the highlighter and file type for a file.
// Registered extensions win, then chroma lexers if enabled, then plain text.
func (r *Registry) ForPath(path string) (SyntaxHighlighter, FileType) {
	if h, ok := r.GetByExtension(filepath.Ext(path)); ok {
		return h, fileTypeFor(h)
	}

	r.mu.RLock()
	useChroma := r.chroma
	r.mu.RUnlock()

	if useChroma && path != "" {
		if h, ok := ChromaForFile(filepath.Base(path)); ok {
			return h, FileType(h.lexer.Config().Name)
		}
	}
	return PlainHighlighter{}, FileTypeText
}

// Languages returns all registered language names, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DetectFileType returns the file type for path using the default registry.
func DetectFileType(path string) FileType {
	_, ft := DefaultRegistry().ForPath(path)
	return ft
}

func fileTypeFor(h SyntaxHighlighter) FileType {
	switch v := h.(type) {
	case *RustHighlighter:
		return FileTypeRust
	case PlainHighlighter:
		return FileTypeText
	case *ChromaHighlighter:
		return FileType(v.lexer.Config().Name)
	}
	lang := h.Language()
	if lang == "" {
		return FileTypeText
	}
	return FileType(strings.ToUpper(lang[:1]) + lang[1:])
}

// normalizeExt ensures ext starts with a dot and is lower case.
func normalizeExt(ext string) string {
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
