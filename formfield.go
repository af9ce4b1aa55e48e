package formfield

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

// Props aliases field.Props for callers that only import the root package.
type Props = field.Props

// Slots aliases field.Slots.
type Slots = field.Slots

// FormValue aliases model.FormValue.
type FormValue = model.FormValue

// Schema aliases model.Schema.
type Schema = model.Schema

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// New exposes the field constructor from the top-level module.
func New(options ...field.Option) *field.Instance {
	return field.New(options...)
}

// RenderHTML renders one field with the vanilla renderer. It is the simplest
// entry point for callers that just want markup.
func RenderHTML(ctx context.Context, f *field.Instance, props Props, opts RenderOptions, rendererOptions ...vanilla.Option) ([]byte, error) {
	if f == nil {
		f = field.New()
	}
	renderer, err := vanilla.New(rendererOptions...)
	if err != nil {
		return nil, err
	}
	root, err := f.Render(props)
	if err != nil {
		return nil, fmt.Errorf("formfield: %w", err)
	}
	return renderer.Render(ctx, root, opts)
}
