package render

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/element"
)

// Renderer converts a field tree into a byte representation (HTML, text).
// Implementations expand composite elements themselves.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, root *element.Element, options RenderOptions) ([]byte, error)
}
