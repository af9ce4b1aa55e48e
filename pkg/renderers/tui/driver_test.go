package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/model"
)

func TestSurveyDriver_CancelledContextSkipsPrompts(t *testing.T) {
	var out bytes.Buffer
	driver := NewSurveyDriver(&out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := map[string]func() error{
		"input": func() error {
			_, err := driver.Input(ctx, InputConfig{Message: "Name"})
			return err
		},
		"confirm": func() error {
			_, err := driver.Confirm(ctx, ConfirmConfig{Message: "Active"})
			return err
		},
		"select": func() error {
			_, err := driver.Select(ctx, SelectConfig{Message: "Status", Options: []string{"a"}})
			return err
		},
		"multiselect": func() error {
			_, err := driver.MultiSelect(ctx, SelectConfig{Message: "Tags", Options: []string{"a"}})
			return err
		},
		"textarea": func() error {
			_, err := driver.TextArea(ctx, TextAreaConfig{Message: "Bio"})
			return err
		},
		"info": func() error {
			return driver.Info(ctx, "hello")
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		})
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written after cancellation, got %q", out.String())
	}
}

func TestSurveyDriver_InfoWritesLine(t *testing.T) {
	var out bytes.Buffer
	if err := NewSurveyDriver(&out).Info(context.Background(), "saved"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if out.String() != "saved\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestInputPrompt(t *testing.T) {
	prompt := inputPrompt(InputConfig{Message: "Email", Default: "a@b.c", Placeholder: "you@example.com"})
	input, ok := prompt.(*survey.Input)
	if !ok {
		t.Fatalf("expected *survey.Input, got %T", prompt)
	}
	if input.Help != "e.g. you@example.com" || input.Default != "a@b.c" {
		t.Fatalf("unexpected input prompt %+v", input)
	}

	prompt = inputPrompt(InputConfig{Message: "Secret", Help: "keep it safe", Placeholder: "ignored", Masked: true})
	password, ok := prompt.(*survey.Password)
	if !ok {
		t.Fatalf("expected *survey.Password, got %T", prompt)
	}
	if password.Help != "keep it safe" {
		t.Fatalf("explicit help should win over placeholder, got %q", password.Help)
	}
}

func TestSelectPrompts(t *testing.T) {
	single := selectPrompt(SelectConfig{Options: []string{"a", "b"}, DefaultIndex: 1, PageSize: 5})
	if single.Default != "b" || single.PageSize != 5 {
		t.Fatalf("unexpected select prompt %+v", single)
	}
	if outOfRange := selectPrompt(SelectConfig{Options: []string{"a"}, DefaultIndex: -1}); outOfRange.Default != nil {
		t.Fatalf("out of range default should be unset, got %v", outOfRange.Default)
	}

	multi := multiSelectPrompt(SelectConfig{Options: []string{"a", "b", "c"}, Defaults: []int{2, 0, 9}})
	if diff := cmp.Diff([]string{"c", "a"}, multi.Default); diff != "" {
		t.Fatalf("multi defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestNewInputConfig(t *testing.T) {
	cases := []struct {
		name   string
		schema *model.Schema
		props  element.Props
		want   InputConfig
	}{
		{
			name:   "plain",
			schema: &model.Schema{Name: "name"},
			props:  element.Props{element.PropValue: "Ada"},
			want:   InputConfig{Message: "Name", Default: "Ada"},
		},
		{
			name:   "placeholder from element",
			schema: &model.Schema{UIHints: map[string]string{"placeholder": "hint"}},
			props:  element.Props{"placeholder": "prop"},
			want:   InputConfig{Message: "Name", Placeholder: "prop"},
		},
		{
			name:   "placeholder from schema",
			schema: &model.Schema{UIHints: map[string]string{"placeholder": "hint"}},
			props:  element.Props{},
			want:   InputConfig{Message: "Name", Placeholder: "hint"},
		},
		{
			name:   "password format",
			schema: &model.Schema{Format: "password"},
			props:  element.Props{},
			want:   InputConfig{Message: "Name", Masked: true},
		},
		{
			name:   "password element",
			schema: nil,
			props:  element.Props{"type": "password"},
			want:   InputConfig{Message: "Name", Masked: true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := newInputConfig("Name", "", tc.schema, tc.props)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
