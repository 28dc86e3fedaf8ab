// Package templates keeps the import templates known to the service: the
// presets embedded in the binary plus YAML files from a user directory.
package templates

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"vedaimport/internal/domain"
	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/segment"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Entry is a registered template together with its compiled form.
type Entry struct {
	Template scripture.ImportTemplate
	Compiled *segment.Template
	Language string
	Builtin  bool
}

// Registry manages import templates by ID
type Registry struct {
	entries map[string]*Entry
	order   []string
	logger  *slog.Logger
	mu      sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded presets
func NewRegistry(logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		entries: make(map[string]*Entry),
		logger:  logger,
	}

	for _, name := range []string{"ukrainian", "english"} {
		if err := r.loadEmbedded(name); err != nil {
			return nil, fmt.Errorf("failed to load %s templates: %w", name, err)
		}
	}
	return r, nil
}

func (r *Registry) loadEmbedded(name string) error {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return r.loadFile(filename, data, true)
}

func (r *Registry) loadFile(filename string, data []byte, builtin bool) error {
	var file TemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	for _, tpl := range file.Templates {
		if err := r.register(tpl, file.Language, builtin); err != nil {
			return fmt.Errorf("%s: template %q: %w", filename, tpl.ID, err)
		}
	}
	return nil
}

// LoadDir registers every *.yaml file in dir. Templates from the directory
// replace presets with the same ID. A missing directory is not an error.
func (r *Registry) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to list templates in %s: %w", dir, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := r.loadFile(path, data, false); err != nil {
			return err
		}
		r.logger.Info("loaded import templates", "file", path)
	}
	return nil
}

// Register validates and adds a user template
func (r *Registry) Register(tpl scripture.ImportTemplate) (*Entry, error) {
	if err := r.register(tpl, "", false); err != nil {
		return nil, err
	}
	return r.Get(tpl.ID)
}

func (r *Registry) register(tpl scripture.ImportTemplate, language string, builtin bool) error {
	entry, err := Prepare(tpl)
	if err != nil {
		return err
	}
	entry.Language = language
	entry.Builtin = builtin

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[tpl.ID]; !exists {
		r.order = append(r.order, tpl.ID)
	}
	r.entries[tpl.ID] = entry
	return nil
}

// Prepare validates and compiles a template without registering it, for
// one-off templates sent with a request.
func Prepare(tpl scripture.ImportTemplate) (*Entry, error) {
	if err := Validate(tpl); err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid template: %v", err)}
	}
	compiled, err := segment.Compile(tpl)
	if err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid template: %v", err)}
	}
	return &Entry{Template: tpl, Compiled: compiled}, nil
}

// Get returns the template registered under id
func (r *Registry) Get(id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("unknown template: %s", id)}
	}
	return entry, nil
}

// List returns all templates in registration order
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}
