package render

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the field tree.
type RenderOptions struct {
	// Path identifies the bound value (e.g. "author.email"). HTML renderers
	// emit it as data-field-path on the root so runtime scripts can route
	// events back to the right form value.
	Path string
	// Attributes are added to the root element. Existing attributes win.
	Attributes map[string]string
}
