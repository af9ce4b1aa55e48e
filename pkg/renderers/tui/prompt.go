package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/model"
)

// ask picks a prompt for the input element and returns the answer as the
// raw value handed to onChange.
func (r *Renderer) ask(ctx context.Context, message string, input *element.Element, fv *model.FormValue) (any, error) {
	schema := fv.CurrentSchema()
	help := ""
	var fieldType model.FieldType
	var enum []any
	if schema != nil {
		help = strings.TrimSpace(schema.Description)
		fieldType = schema.Type
		enum = schema.Enum
	}
	current := input.Props.String(element.PropValue)

	switch {
	case fieldType == model.FieldTypeBoolean:
		return r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: defaultBool(fv.CurrentValue()),
			Help:    help,
		})
	case fieldType == model.FieldTypeArray && len(enum) > 0:
		options := stringifyEnum(enum)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  options,
			Defaults: indicesOf(options, stringifySlice(coerceAnySlice(fv.CurrentValue()))),
			Help:     help,
		})
		if err != nil {
			return nil, err
		}
		return enumValues(enum, indices), nil
	case len(enum) > 0:
		options := stringifyEnum(enum)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: indexOf(options, current),
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(enum) {
			return nil, nil
		}
		return enum[idx], nil
	case input.Tag == "textarea" || schema.Hint("input") == "textarea":
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: current,
			Help:    help,
		})
	}

	answer, err := r.driver.Input(ctx, newInputConfig(message, help, schema, input.Props))
	if err != nil {
		return nil, err
	}

	switch fieldType {
	case model.FieldTypeInteger:
		return parseNumber(answer, true), nil
	case model.FieldTypeNumber:
		return parseNumber(answer, false), nil
	default:
		return answer, nil
	}
}

// parseNumber converts numeric answers. Unparseable input is returned as
// typed so the value's validator can report it.
func parseNumber(raw string, integer bool) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if integer {
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return i
		}
		return raw
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return raw
}

func defaultBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

func stringifyEnum(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func stringifySlice(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func coerceAnySlice(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

func enumValues(enum []any, indices []int) []any {
	out := make([]any, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(enum) {
			out = append(out, enum[idx])
		}
	}
	return out
}
