package vanilla

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/render"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla/components"
)

// PathAttr carries RenderOptions.Path on the root element.
const PathAttr = "data-field-path"

type Option func(*config)

type config struct {
	templatesDir     string
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates
// missing from the directory fall back to the template bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy replaces the sanitization policy applied to raw markup.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer serializes field trees to HTML.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
	policy     *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = DefaultPolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		components: components.NewDefaultRegistry(renderer),
		policy:     cfg.policy,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Components exposes the template component registry so callers can add or
// replace components.
func (r *Renderer) Components() *components.Registry {
	return r.components
}

// Slots returns template-backed slot defaults for field.WithDefaults. Self
// is left nil so the field keeps its div wrapper.
func (r *Renderer) Slots() field.Slots {
	var slots field.Slots
	slots.Label, _ = r.components.Component(components.NameLabel)
	slots.Input, _ = r.components.Component(components.NameInput)
	slots.ErrorList, _ = r.components.Component(components.NameErrorList)
	return slots
}

// SlotsFor returns the template slots for a field bound to schema. The
// "textarea" input hint selects the textarea component, and the schema's
// name, inputType and placeholder hints reach the input template.
func (r *Renderer) SlotsFor(schema *model.Schema) field.Slots {
	slots := r.Slots()
	name := components.NameInput
	if schema.Hint("input") == "textarea" {
		name = components.NameTextarea
	}
	input, ok := r.components.Component(name)
	if !ok {
		return slots
	}
	attrs := inputAttrs(schema)
	if len(attrs) == 0 {
		slots.Input = input
		return slots
	}
	slots.Input = element.NewComponent(input.Name, func(props element.Props) (*element.Element, error) {
		return input.Render(attrs.Merge(props))
	})
	return slots
}

func inputAttrs(schema *model.Schema) element.Props {
	attrs := element.Props{}
	if schema == nil {
		return attrs
	}
	if name := strings.TrimSpace(schema.Name); name != "" {
		attrs[element.PropID] = "fg-" + name
		attrs["name"] = name
	}
	if inputType := schema.Hint("inputType"); inputType != "" {
		attrs["type"] = inputType
	}
	if placeholder := schema.Hint("placeholder"); placeholder != "" {
		attrs["placeholder"] = placeholder
	}
	return attrs
}

// StyleTags returns markup for the stylesheets the registered components
// declare. Embedded assets are inlined in a style element; other names are
// linked as hrefs.
func (r *Renderer) StyleTags() string {
	var b strings.Builder
	for _, name := range r.components.Assets(r.components.Names()) {
		if data, err := fs.ReadFile(AssetsFS(), name); err == nil {
			b.WriteString("<style>\n")
			b.Write(data)
			b.WriteString("</style>\n")
			continue
		}
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(name))
	}
	return b.String()
}

// Render expands root and writes it as an HTML fragment.
func (r *Renderer) Render(ctx context.Context, root *element.Element, options render.RenderOptions) ([]byte, error) {
	if root == nil {
		return nil, errors.New("vanilla renderer: root element is nil")
	}
	expanded, err := element.Expand(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	nodes, err := toNodes(expanded, r.policy)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for idx, node := range nodes {
		if idx == 0 {
			decorateRoot(node, options)
		}
		if err := html.Render(&buf, node); err != nil {
			return nil, fmt.Errorf("vanilla renderer: write html: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func decorateRoot(node *html.Node, options render.RenderOptions) {
	if options.Path != "" {
		setAttr(node, PathAttr, options.Path)
	}
	keys := make([]string, 0, len(options.Attributes))
	for key := range options.Attributes {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		setAttr(node, key, options.Attributes[key])
	}
}
