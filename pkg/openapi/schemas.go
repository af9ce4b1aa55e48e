package openapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/model"
)

// extensionNamespace holds per-property UI hints, e.g.
// x-formgen: {label: "E-mail", placeholder: "you@example.com"}.
const extensionNamespace = "x-formgen"

// LoadSchemas parses data and returns the schemas for the properties of the
// named component, sorted by name.
func LoadSchemas(ctx context.Context, data []byte, component string, opts ...Option) ([]model.Schema, error) {
	cfg := applyOptions(opts)
	doc, err := load(ctx, data, cfg)
	if err != nil {
		return nil, err
	}
	return componentSchemas(doc, component, cfg)
}

// ComponentSchemas converts the properties of a component schema in an
// already loaded document.
func ComponentSchemas(doc *openapi3.T, component string, opts ...Option) ([]model.Schema, error) {
	return componentSchemas(doc, component, applyOptions(opts))
}

// ComponentNames lists the component schemas defined by doc.
func ComponentNames(doc *openapi3.T) []string {
	if doc == nil || doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func componentSchemas(doc *openapi3.T, component string, cfg options) ([]model.Schema, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	ref, ok := doc.Components.Schemas[strings.TrimSpace(component)]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}

	var out []model.Schema
	collectProperties(&out, "", ref.Value, cfg)
	return out, nil
}

func collectProperties(out *[]model.Schema, prefix string, parent *openapi3.Schema, cfg options) {
	required := make(map[string]struct{}, len(parent.Required))
	for _, name := range parent.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(parent.Properties))
	for name := range parent.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := parent.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		_, isRequired := required[name]

		src := ref.Value
		if cfg.flattenObject && mapType(src.Type) == model.FieldTypeObject && len(src.Properties) > 0 {
			collectProperties(out, path, src, cfg)
			continue
		}
		*out = append(*out, convertSchema(path, name, src, isRequired, cfg))
	}
}

func convertSchema(path, name string, src *openapi3.Schema, required bool, cfg options) model.Schema {
	schema := model.Schema{
		Name:        path,
		Type:        mapType(src.Type),
		Format:      src.Format,
		Required:    required,
		Description: strings.TrimSpace(src.Description),
		Default:     src.Default,
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	} else if src.Items != nil && src.Items.Value != nil && len(src.Items.Value.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Items.Value.Enum...)
	}

	schema.Validations = validations(src)
	schema.UIHints = uiHints(src)
	applyFormatHints(&schema)

	schema.Label = strings.TrimSpace(schema.Hint("label"))
	if schema.Label == "" {
		schema.Label = strings.TrimSpace(src.Title)
	}
	if schema.Label == "" {
		schema.Label = cfg.labeler(name)
	}
	return schema
}

// mapType picks the first non-null type, so ["string", "null"] maps to a
// string field.
func mapType(types *openapi3.Types) model.FieldType {
	if types == nil {
		return model.FieldTypeString
	}
	for _, typ := range types.Slice() {
		switch typ {
		case "integer":
			return model.FieldTypeInteger
		case "number":
			return model.FieldTypeNumber
		case "boolean":
			return model.FieldTypeBoolean
		case "array":
			return model.FieldTypeArray
		case "object":
			return model.FieldTypeObject
		case "string":
			return model.FieldTypeString
		}
	}
	return model.FieldTypeString
}

func validations(src *openapi3.Schema) []model.ValidationRule {
	var rules []model.ValidationRule
	if src.Min != nil {
		params := map[string]string{"value": formatFloat(*src.Min)}
		if src.ExclusiveMin {
			params["exclusive"] = "true"
		}
		rules = append(rules, model.ValidationRule{Kind: model.ValidationRuleMin, Params: params})
	}
	if src.Max != nil {
		params := map[string]string{"value": formatFloat(*src.Max)}
		if src.ExclusiveMax {
			params["exclusive"] = "true"
		}
		rules = append(rules, model.ValidationRule{Kind: model.ValidationRuleMax, Params: params})
	}
	if src.MinLength != 0 {
		rules = append(rules, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(src.MinLength, 10)},
		})
	}
	if src.MaxLength != nil {
		rules = append(rules, model.ValidationRule{
			Kind:   model.ValidationRuleMaxLength,
			Params: map[string]string{"value": strconv.FormatUint(*src.MaxLength, 10)},
		})
	}
	if src.Pattern != "" {
		rules = append(rules, model.ValidationRule{
			Kind:   model.ValidationRulePattern,
			Params: map[string]string{"pattern": src.Pattern},
		})
	}
	return rules
}

// uiHints reads string values from the x-formgen extension map.
func uiHints(src *openapi3.Schema) map[string]string {
	raw, ok := src.Extensions[extensionNamespace].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	hints := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			hints[key] = v
		case bool:
			hints[key] = strconv.FormatBool(v)
		case float64:
			hints[key] = formatFloat(v)
		}
	}
	if len(hints) == 0 {
		return nil
	}
	return hints
}

func applyFormatHints(schema *model.Schema) {
	if schema.Hint("inputType") != "" {
		return
	}

	var inputType string
	switch strings.TrimSpace(strings.ToLower(schema.Format)) {
	case "date":
		inputType = "date"
	case "time":
		inputType = "time"
	case "date-time", "datetime", "datetime-local":
		inputType = "datetime-local"
	case "email":
		inputType = "email"
	case "uri", "iri", "uri-reference", "iri-reference", "url":
		inputType = "url"
	case "tel", "phone":
		inputType = "tel"
	case "password":
		inputType = "password"
	default:
		return
	}

	if schema.UIHints == nil {
		schema.UIHints = make(map[string]string, 1)
	}
	schema.UIHints["inputType"] = inputType
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
