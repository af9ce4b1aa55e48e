package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/field"
)

// Binding ties a field instance to the props it renders with. Props is
// called before every render so it can return a fresh form value snapshot.
type Binding struct {
	Path  string
	Field *field.Instance
	Props func() field.Props
}

// Run prompts every binding in order. Each answer is delivered to the
// input's onChange as a raw value, then the wrapper's onBlur fires and the
// field is re-rendered. A field is re-prompted while its error list is
// visible, up to the configured attempts.
func (r *Renderer) Run(ctx context.Context, bindings ...Binding) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}
	for _, binding := range bindings {
		if err := ctx.Err(); err != nil {
			return err
		}
		if binding.Field == nil || binding.Props == nil {
			return fmt.Errorf("tui: binding %q is incomplete", binding.Path)
		}
		if err := r.promptField(ctx, binding); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, binding Binding) error {
	for attempt := 1; ; attempt++ {
		props := binding.Props()
		root, err := binding.Field.Render(props)
		if err != nil {
			return fmt.Errorf("tui: render %s: %w", binding.Path, err)
		}

		label, err := expandText(ctx, root.Child(0))
		if err != nil {
			return err
		}
		input, err := element.Expand(ctx, root.Child(1))
		if err != nil {
			return fmt.Errorf("tui: render %s: %w", binding.Path, err)
		}
		target := element.Find(input, func(el *element.Element) bool {
			return el.Props.ChangeHandler(element.PropOnChange) != nil
		})
		if target == nil {
			return fmt.Errorf("%w: %s", ErrNoInput, binding.Path)
		}

		answer, err := r.ask(ctx, promptMessage(label, binding.Path), target, props.FormValue)
		if err != nil {
			return err
		}
		target.Props.ChangeHandler(element.PropOnChange)(answer)
		if onBlur := root.Props.Handler(element.PropOnBlur); onBlur != nil {
			onBlur()
		}

		root, err = binding.Field.Render(binding.Props())
		if err != nil {
			return fmt.Errorf("tui: render %s: %w", binding.Path, err)
		}
		messages, err := errorMessages(ctx, root.Child(2))
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			return nil
		}
		for _, message := range messages {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
				return err
			}
		}
		if attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, binding.Path)
		}
	}
}

func expandText(ctx context.Context, el *element.Element) (string, error) {
	expanded, err := element.Expand(ctx, el)
	if err != nil {
		return "", fmt.Errorf("tui: %w", err)
	}
	if expanded != nil && expanded.IsRaw() {
		return strings.Join(rawLines(expanded.Text), " "), nil
	}
	return strings.Join(strings.Fields(element.TextContent(expanded)), " "), nil
}

// errorMessages collects list items from the error-list slot. Slots that
// render something other than a list yield their whole text as one message.
func errorMessages(ctx context.Context, el *element.Element) ([]string, error) {
	expanded, err := element.Expand(ctx, el)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if expanded == nil {
		return nil, nil
	}
	if expanded.IsRaw() {
		return rawLines(expanded.Text), nil
	}

	var messages []string
	element.Walk(expanded, func(node *element.Element) bool {
		if node.Tag != "li" {
			return true
		}
		if text := strings.TrimSpace(element.TextContent(node)); text != "" {
			messages = append(messages, text)
		}
		return false
	})
	if len(messages) == 0 {
		if text := strings.TrimSpace(element.TextContent(expanded)); text != "" {
			messages = append(messages, text)
		}
	}
	return messages, nil
}

func promptMessage(label, path string) string {
	if label != "" {
		return label
	}
	return path
}
