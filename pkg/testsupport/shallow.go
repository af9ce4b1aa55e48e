package testsupport

import (
	"testing"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/field"
)

// ShallowRenderer renders a field one level deep, the way a host would, and
// re-renders with the last props whenever the instance invalidates itself.
// Slot elements are left unexpanded so tests can inspect their type and props.
type ShallowRenderer struct {
	t        *testing.T
	instance *field.Instance
	props    field.Props
	output   *element.Element
	renders  int
}

// NewShallowRenderer mounts a fresh field instance.
func NewShallowRenderer(t *testing.T, options ...field.Option) *ShallowRenderer {
	t.Helper()
	r := &ShallowRenderer{t: t}
	options = append(options, field.WithInvalidate(r.rerender))
	r.instance = field.New(options...)
	return r
}

// Render renders props and records the output, failing the test on error.
func (r *ShallowRenderer) Render(props field.Props) *element.Element {
	r.t.Helper()
	r.props = props
	r.rerender()
	return r.output
}

// Output returns the latest render output.
func (r *ShallowRenderer) Output() *element.Element {
	return r.output
}

// Instance exposes the mounted field.
func (r *ShallowRenderer) Instance() *field.Instance {
	return r.instance
}

// Renders reports how many render passes ran.
func (r *ShallowRenderer) Renders() int {
	return r.renders
}

// Label, Input and ErrorList return the slot elements of the latest output.
func (r *ShallowRenderer) Label() *element.Element     { return r.output.Child(0) }
func (r *ShallowRenderer) Input() *element.Element     { return r.output.Child(1) }
func (r *ShallowRenderer) ErrorList() *element.Element { return r.output.Child(2) }

func (r *ShallowRenderer) rerender() {
	r.t.Helper()
	out, err := r.instance.Render(r.props)
	if err != nil {
		r.t.Fatalf("render field: %v", err)
	}
	r.renders++
	r.output = out
}
