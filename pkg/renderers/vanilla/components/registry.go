package components

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formfield/pkg/element"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
)

// Renderer writes the markup for a slot into buf. Props are the slot props
// the field coordinator assembled (label/schema, value/onChange, formValue).
type Renderer func(buf *bytes.Buffer, props element.Props, data ComponentData) error

// ComponentData carries helpers and configuration for component renderers.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	Config   map[string]any
}

// Descriptor bundles the renderer implementation with the stylesheets the
// markup relies on. Stylesheets are asset names or hrefs.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Config      map[string]any
	Stylesheets []string
}

// Registry tracks component descriptors keyed by name and hands out a stable
// *element.Component per name so slot overrides compare by identity.
type Registry struct {
	mu         sync.RWMutex
	template   rendertemplate.TemplateRenderer
	components map[string]Descriptor
	elements   map[string]*element.Component
}

// New creates an empty registry rendering templates through tmpl.
func New(tmpl rendertemplate.TemplateRenderer) *Registry {
	return &Registry{
		template:   tmpl,
		components: make(map[string]Descriptor),
		elements:   make(map[string]*element.Component),
	}
}

// Register associates a descriptor with the provided name. Existing entries
// are replaced and their component identity is reset.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = cloneDescriptor(descriptor)
	delete(r.elements, name)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Component returns the slot component for name. The same pointer is
// returned until the name is registered again.
func (r *Registry) Component(name string) (*element.Component, bool) {
	name = normalize(name)

	r.mu.RLock()
	if component, ok := r.elements[name]; ok {
		r.mu.RUnlock()
		return component, true
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if component, ok := r.elements[name]; ok {
		return component, true
	}
	descriptor, ok := r.components[name]
	if !ok {
		return nil, false
	}
	component := element.NewComponent(name, r.renderFunc(descriptor))
	r.elements[name] = component
	return component, true
}

// Names returns a sorted slice of registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets resolves the deduplicated stylesheets declared by the provided
// component names, in declaration order.
func (r *Registry) Assets(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var stylesheets []string
	seen := make(map[string]struct{})
	for _, name := range names {
		descriptor, ok := r.components[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href = strings.TrimSpace(href); href == "" {
				continue
			}
			if _, exists := seen[href]; exists {
				continue
			}
			seen[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
	}
	return stylesheets
}

func (r *Registry) renderFunc(descriptor Descriptor) element.RenderFunc {
	return func(props element.Props) (*element.Element, error) {
		var buf bytes.Buffer
		data := ComponentData{Template: r.template, Config: descriptor.Config}
		if err := descriptor.Renderer(&buf, props, data); err != nil {
			return nil, fmt.Errorf("components: render %q: %w", descriptor.Name, err)
		}
		markup := strings.TrimSpace(buf.String())
		if markup == "" {
			return nil, nil
		}
		return element.Raw(markup), nil
	}
}

func cloneDescriptor(src Descriptor) Descriptor {
	clone := src
	clone.Stylesheets = slices.Clone(src.Stylesheets)
	if src.Config != nil {
		clone.Config = make(map[string]any, len(src.Config))
		for key, value := range src.Config {
			clone.Config[key] = value
		}
	}
	return clone
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
