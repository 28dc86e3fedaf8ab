package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"vedaimport/internal/domain/models/scripture"
	importSvc "vedaimport/internal/domain/services/importer"
)

// ChapterParser is implemented by converters whose input already carries
// chapter structure, so the result skips template segmentation.
type ChapterParser interface {
	ParseChapters(ctx context.Context, filename string, input []byte) ([]scripture.Chapter, error)
}

// Registry manages content converters and routes files by extension.
//
// Thread-safe for concurrent access.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]importSvc.ContentConverter // key: file extension (e.g., ".html")
}

// NewRegistry creates a registry with the standard converters pre-registered.
func NewRegistry() *Registry {
	registry := &Registry{
		converters: make(map[string]importSvc.ContentConverter),
	}

	registry.Register(NewTextConverter())
	registry.Register(NewMarkdownConverter())
	registry.Register(NewHTMLConverter())
	registry.Register(NewVenturaConverter())

	return registry
}

// Register adds a converter and associates it with its supported extensions.
// Extensions are normalized to lowercase with a leading dot.
func (r *Registry) Register(converter importSvc.ContentConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range converter.SupportedExtensions() {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.converters[ext] = converter
	}
}

// Get retrieves the converter for a file extension, case-insensitively.
// Returns nil if none is registered.
func (r *Registry) Get(fileExt string) importSvc.ContentConverter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[strings.ToLower(fileExt)]
}

// ForFile returns the converter for filename, or nil.
func (r *Registry) ForFile(filename string) importSvc.ContentConverter {
	return r.Get(filepath.Ext(filename))
}

// Convert selects the converter by file extension and runs it.
func (r *Registry) Convert(ctx context.Context, filename string, content []byte) (string, error) {
	converter := r.ForFile(filename)
	if converter == nil {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	return converter.Convert(ctx, content)
}

// SupportedExtensions returns all registered file extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.converters))
	for ext := range r.converters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
