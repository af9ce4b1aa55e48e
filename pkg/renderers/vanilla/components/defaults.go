package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/model"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
)

const (
	templatePrefix = "templates/components/"
)

var defaultStylesheets = []string{DefaultStylesheet}

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// template components used by the vanilla renderer.
func NewDefaultRegistry(tmpl rendertemplate.TemplateRenderer) *Registry {
	registry := New(tmpl)

	registry.MustRegister(NameLabel, Descriptor{
		Renderer:    templateComponentRenderer(templatePrefix+"label.tmpl", labelPayload),
		Stylesheets: defaultStylesheets,
	})
	registry.MustRegister(NameInput, Descriptor{
		Renderer:    templateComponentRenderer(templatePrefix+"input.tmpl", inputPayload),
		Stylesheets: defaultStylesheets,
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer:    templateComponentRenderer(templatePrefix+"textarea.tmpl", inputPayload),
		Config:      map[string]any{"rows": 4},
		Stylesheets: defaultStylesheets,
	})
	registry.MustRegister(NameErrorList, Descriptor{
		Renderer:    templateComponentRenderer(templatePrefix+"error_list.tmpl", errorListPayload),
		Stylesheets: defaultStylesheets,
	})

	return registry
}

type payloadFunc func(props element.Props) map[string]any

func templateComponentRenderer(templateName string, payload payloadFunc) Renderer {
	return func(buf *bytes.Buffer, props element.Props, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}
		values := payload(props)
		values["config"] = data.Config

		rendered, err := data.Template.RenderTemplate(templateName, values)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", templateName, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func labelPayload(props element.Props) map[string]any {
	schema := field.Schema(props)
	text := strings.TrimSpace(props.String(element.PropLabel))
	if text == "" && schema != nil {
		text = strings.TrimSpace(schema.Label)
	}
	if schema.Hint("hideLabel") == "true" {
		text = ""
	}
	return map[string]any{
		"label":       text,
		"id":          controlID(schema),
		"required":    schema.IsRequired(),
		"description": descriptionOf(schema),
	}
}

func inputPayload(props element.Props) map[string]any {
	payload := map[string]any{
		"type":        stringOr(props.String("type"), "text"),
		"value":       formatValue(props[element.PropValue]),
		"onChange":    props.ChangeHandler(element.PropOnChange) != nil,
		"id":          props.String(element.PropID),
		"name":        props.String("name"),
		"placeholder": props.String("placeholder"),
		"class":       props.String(element.PropClass),
	}
	return payload
}

func errorListPayload(props element.Props) map[string]any {
	fv := field.FormValue(props)
	var messages []string
	if fv != nil {
		for _, message := range fv.Errors {
			if message = strings.TrimSpace(message); message != "" {
				messages = append(messages, message)
			}
		}
	}
	return map[string]any{
		"errors": messages,
		"id":     controlID(fv.CurrentSchema()),
	}
}

func controlID(schema *model.Schema) string {
	if schema == nil || strings.TrimSpace(schema.Name) == "" {
		return ""
	}
	return "fg-" + strings.TrimSpace(schema.Name)
}

func descriptionOf(schema *model.Schema) string {
	if schema == nil {
		return ""
	}
	return strings.TrimSpace(schema.Description)
}

func stringOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
