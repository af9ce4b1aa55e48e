package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/formvalue"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

type options struct {
	ConfigPath   string
	OpenAPIPath  string
	Component    string
	Renderer     string
	ForceErrors  bool
	Templates    bool
	TemplatesDir string
	Stylesheet   bool
	MaxAttempts  int
	Output       string
}

type app struct {
	logger zerolog.Logger
	stdout io.Writer
	driver tui.PromptDriver
}

type boundField struct {
	schema   model.Schema
	instance *field.Instance
}

func (a *app) run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.OpenAPIPath != "" {
		doc, err := openapi.LoadFile(ctx, opts.OpenAPIPath)
		if err != nil {
			return err
		}
		schemas, err := openapi.ComponentSchemas(doc, opts.Component)
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(openapi.ComponentNames(doc), ", "))
		}
		cfg.Fields = append(cfg.Fields, schemas...)
	}
	if len(cfg.Fields) == 0 {
		return errors.New("no fields configured; pass -config or -openapi")
	}

	rendererName := firstNonEmpty(opts.Renderer, cfg.Renderer)
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = cfg.MaxAttempts
	}

	store := formvalue.New(
		formvalue.WithValues(cfg.Values),
		formvalue.WithValidator(requiredValidator),
	)
	for i := range cfg.Fields {
		schema := cfg.Fields[i]
		if err := store.Register(schema.Name, &schema); err != nil {
			return err
		}
	}
	if len(cfg.Errors) > 0 {
		store.ApplyErrors(cfg.Errors)
	}
	store.ForceShowErrors(opts.ForceErrors || cfg.ForceShowErrors)
	store.Subscribe(func(path string, value any) {
		a.logger.Debug().Str("path", path).Interface("value", value).Msg("value updated")
	})

	registry, err := a.renderers(maxAttempts, opts.TemplatesDir)
	if err != nil {
		return err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return fmt.Errorf("%w: %q (available: %s)", err, rendererName, strings.Join(registry.List(), ", "))
	}

	a.logger.Info().
		Str("renderer", renderer.Name()).
		Strs("paths", store.Paths()).
		Bool("force_errors", opts.ForceErrors || cfg.ForceShowErrors).
		Msg("rendering form")

	var out []byte
	switch r := renderer.(type) {
	case *tui.Renderer:
		out, err = a.runSession(ctx, r, store, cfg.Fields)
	case *vanilla.Renderer:
		out, err = a.renderHTML(ctx, r, store, cfg.Fields, opts)
	default:
		err = fmt.Errorf("renderer %q is not supported by the cli", renderer.Name())
	}
	if err != nil {
		return err
	}
	return a.write(opts.Output, out)
}

func (a *app) renderers(maxAttempts int, templatesDir string) (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := vanilla.New(vanilla.WithTemplatesDir(templatesDir))
	if err != nil {
		return nil, err
	}
	termRenderer, err := tui.New(
		tui.WithPromptDriver(a.driver),
		tui.WithMaxAttempts(maxAttempts),
	)
	if err != nil {
		return nil, err
	}
	for _, r := range []render.Renderer{htmlRenderer, termRenderer} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (a *app) renderHTML(ctx context.Context, r *vanilla.Renderer, store *formvalue.Store, schemas []model.Schema, opts options) ([]byte, error) {
	templates := opts.Templates || opts.TemplatesDir != ""

	var buf bytes.Buffer
	if opts.Stylesheet {
		buf.WriteString(r.StyleTags())
	}
	buf.WriteString(`<form class="fg-form">` + "\n")
	for _, message := range store.FormErrors() {
		fmt.Fprintf(&buf, `<p class="fg-form-error">%s</p>`+"\n", html.EscapeString(message))
	}

	for _, schema := range schemas {
		fv, err := store.FormValue(schema.Name)
		if err != nil {
			return nil, err
		}
		var fieldOpts []field.Option
		if templates {
			fieldOpts = append(fieldOpts, field.WithDefaults(r.SlotsFor(fv.Schema)))
		}
		root, err := field.New(fieldOpts...).Render(fieldProps(fv, templates))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", schema.Name, err)
		}
		markup, err := r.Render(ctx, root, render.RenderOptions{
			Path:       schema.Name,
			Attributes: map[string]string{"class": "fg-field"},
		})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", schema.Name, err)
		}
		buf.Write(markup)
		buf.WriteByte('\n')
		a.logger.Debug().Str("path", schema.Name).Int("bytes", len(markup)).Msg("field rendered")
	}
	buf.WriteString("</form>\n")
	return buf.Bytes(), nil
}

func (a *app) runSession(ctx context.Context, r *tui.Renderer, store *formvalue.Store, schemas []model.Schema) ([]byte, error) {
	bindings := make([]tui.Binding, 0, len(schemas))
	for _, schema := range schemas {
		path := schema.Name
		bindings = append(bindings, tui.Binding{
			Path:  path,
			Field: field.New(),
			Props: func() field.Props {
				fv, err := store.FormValue(path)
				if err != nil {
					fv = &model.FormValue{}
				}
				return field.Props{FormValue: fv}
			},
		})
	}
	if err := r.Run(ctx, bindings...); err != nil {
		return nil, err
	}
	a.logger.Info().Bool("valid", store.Valid()).Msg("session complete")
	return yaml.Marshal(store.Values())
}

// fieldProps builds the props for one field. Schemas carrying input hints
// get an explicit input or textarea element as their single child so the
// hints reach the markup; template slots get them through SlotsFor.
func fieldProps(fv *model.FormValue, templates bool) field.Props {
	props := field.Props{FormValue: fv}
	if templates {
		return props
	}
	schema := fv.CurrentSchema()
	textarea := schema.Hint("input") == "textarea"
	inputType := schema.Hint("inputType")
	placeholder := schema.Hint("placeholder")
	if !textarea && inputType == "" && placeholder == "" {
		return props
	}

	attrs := element.Props{}
	if schema != nil {
		attrs[element.PropID] = "fg-" + schema.Name
		attrs["name"] = schema.Name
	}
	if placeholder != "" {
		attrs["placeholder"] = placeholder
	}
	if textarea {
		props.Children = []*element.Element{element.Intrinsic("textarea", attrs)}
		return props
	}
	attrs["type"] = firstNonEmpty(inputType, "text")
	props.Children = []*element.Element{element.Intrinsic("input", attrs)}
	return props
}

// requiredValidator only reports missing required values. Other rules are
// left to the server, whose errors arrive through the config file.
func requiredValidator(path string, schema *model.Schema, value any) []string {
	if !schema.IsRequired() {
		return nil
	}
	switch v := value.(type) {
	case nil:
		return []string{"this field is required"}
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{"this field is required"}
		}
	case []any:
		if len(v) == 0 {
			return []string{"this field is required"}
		}
	}
	return nil
}

func (a *app) write(path string, data []byte) error {
	if path == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info().Str("path", path).Msg("output written")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
