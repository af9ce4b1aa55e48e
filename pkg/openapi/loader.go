package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrComponentNotFound is returned when the requested component schema is
// missing from the document.
var ErrComponentNotFound = errors.New("openapi: component schema not found")

// Option configures document loading.
type Option func(*options)

type options struct {
	validate      bool
	externalRefs  bool
	labeler       func(string) string
	flattenObject bool
}

func defaultOptions() options {
	return options{
		labeler:       DefaultLabeler,
		flattenObject: true,
	}
}

// WithValidation validates the document after loading.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithExternalRefs allows $ref values pointing outside the document.
func WithExternalRefs(enabled bool) Option {
	return func(o *options) {
		o.externalRefs = enabled
	}
}

// WithLabeler overrides how labels are derived from property names when no
// x-formgen label is present.
func WithLabeler(fn func(string) string) Option {
	return func(o *options) {
		if fn != nil {
			o.labeler = fn
		}
	}
}

// WithNestedObjects controls whether object properties are flattened into
// dotted child schemas (the default) or kept as a single object schema.
func WithNestedObjects(flatten bool) Option {
	return func(o *options) {
		o.flattenObject = flatten
	}
}

// Load parses an OpenAPI document from JSON or YAML bytes.
func Load(ctx context.Context, data []byte, opts ...Option) (*openapi3.T, error) {
	cfg := applyOptions(opts)
	return load(ctx, data, cfg)
}

// LoadFile reads and parses an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string, opts ...Option) (*openapi3.T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return Load(ctx, data, opts...)
}

func load(ctx context.Context, data []byte, cfg options) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	return doc, nil
}

func applyOptions(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
