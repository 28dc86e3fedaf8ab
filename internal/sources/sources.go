// Package sources defines the contract shared by the site adapters that
// scrape verse books from the web.
package sources

import (
	"context"
	"fmt"
	"sort"

	"vedaimport/internal/domain"
	"vedaimport/internal/domain/models/scripture"
)

// Source imports chapters from a remote site starting at url.
type Source interface {
	// Name is the identifier used by the import API.
	Name() string
	// Import fetches and parses every page reachable from url. Pages that
	// cannot be parsed are skipped; only fetch failures of url itself and
	// context cancellation are returned as errors.
	Import(ctx context.Context, url string) ([]scripture.Chapter, error)
}

// Registry maps source names to adapters.
type Registry struct {
	sources map[string]Source
}

// NewRegistry returns a registry holding the given adapters.
func NewRegistry(list ...Source) *Registry {
	r := &Registry{sources: make(map[string]Source, len(list))}
	for _, s := range list {
		r.sources[s.Name()] = s
	}
	return r
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("unknown source %q", name)}
	}
	return s, nil
}

// Names lists the registered adapters alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
