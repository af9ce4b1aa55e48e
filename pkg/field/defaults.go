package field

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/model"
)

// Built-in slot renderers.
var (
	DefaultLabel     = element.NewComponent("Label", renderLabel)
	DefaultInput     = element.NewComponent("Input", renderInput)
	DefaultErrorList = element.NewComponent("ErrorList", renderErrorList)
)

func builtinSlots() Slots {
	return Slots{
		Label:     DefaultLabel,
		Input:     DefaultInput,
		ErrorList: DefaultErrorList,
	}
}

// Schema extracts the schema prop handed to label and error-list slots.
func Schema(props element.Props) *model.Schema {
	v, _ := props.Get(element.PropSchema)
	schema, _ := v.(*model.Schema)
	return schema
}

// FormValue extracts the formValue prop handed to error-list slots.
func FormValue(props element.Props) *model.FormValue {
	v, _ := props.Get(element.PropFormValue)
	fv, _ := v.(*model.FormValue)
	return fv
}

func renderLabel(props element.Props) (*element.Element, error) {
	schema := Schema(props)
	text := strings.TrimSpace(props.String(element.PropLabel))
	if text == "" && schema != nil {
		text = strings.TrimSpace(schema.Label)
	}
	if text == "" || schema.Hint("hideLabel") == "true" {
		return nil, nil
	}

	attrs := element.Props{element.PropClass: "fg-label"}
	if schema != nil && schema.Name != "" {
		attrs["for"] = "fg-" + schema.Name
	}
	children := []*element.Element{element.Text(text)}
	if schema.IsRequired() {
		children = append(children,
			element.Text(" "),
			element.Intrinsic("span", element.Props{element.PropClass: "fg-required"}, element.Text("*")),
		)
	}
	return element.Intrinsic("label", attrs, children...), nil
}

// reserved props are consumed by the input renderer rather than copied.
var reservedInputProps = map[string]struct{}{
	element.PropValue:    {},
	element.PropOnChange: {},
	element.PropChildren: {},
}

func renderInput(props element.Props) (*element.Element, error) {
	attrs := element.Props{
		"type":            "text",
		element.PropValue: formatValue(props[element.PropValue]),
	}
	if onChange := props.ChangeHandler(element.PropOnChange); onChange != nil {
		attrs[element.PropOnChange] = onChange
	}
	for key, value := range props {
		if _, skip := reservedInputProps[key]; skip {
			continue
		}
		attrs[key] = value
	}
	return element.Intrinsic("input", attrs), nil
}

func renderErrorList(props element.Props) (*element.Element, error) {
	fv := FormValue(props)
	if fv == nil || len(fv.Errors) == 0 {
		return nil, nil
	}
	items := make([]*element.Element, 0, len(fv.Errors))
	for _, message := range fv.Errors {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		items = append(items, element.Intrinsic("li", nil, element.Text(message)))
	}
	if len(items) == 0 {
		return nil, nil
	}
	return element.Intrinsic("ul", element.Props{element.PropClass: "fg-errors"}, items...), nil
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
