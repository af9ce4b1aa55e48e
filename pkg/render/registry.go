package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrRendererNotFound is returned when no renderer matches a lookup.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry stores renderers by name. The first registered renderer becomes
// the default unless SetDefault picks another one.
type Registry struct {
	mu         sync.RWMutex
	renderers  map[string]Renderer
	defaultKey string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := normalizeName(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	if r.defaultKey == "" {
		r.defaultKey = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// SetDefault selects the renderer returned for empty lookups.
func (r *Registry) SetDefault(name string) error {
	name = normalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.renderers[name]; !ok {
		return fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	r.defaultKey = name
	return nil
}

// Get retrieves a renderer by name; an empty name yields the default.
func (r *Registry) Get(name string) (Renderer, error) {
	name = normalizeName(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultKey
	}
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
