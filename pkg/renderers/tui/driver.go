package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/model"
)

// InputConfig configures a single line prompt. Masked input hides the echo.
// Placeholder is shown as help when Help is empty, since terminals have no
// placeholder text.
type InputConfig struct {
	Message     string
	Default     string
	Help        string
	Placeholder string
	Masked      bool
	Validator   func(string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single or multi-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Defaults     []int // used for multi-select; indices into Options
	Help         string
	PageSize     int
}

// TextAreaConfig configures a multi-line text prompt.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver abstracts the terminal so sessions can be tested without a
// real terminal and callers can swap implementations. Implementations
// return ctx.Err() instead of prompting once ctx is done.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// newInputConfig builds the single line prompt for an input element. The
// element's placeholder wins over the schema hint, and a password type or
// format masks the answer.
func newInputConfig(message, help string, schema *model.Schema, props element.Props) InputConfig {
	cfg := InputConfig{
		Message:     message,
		Default:     props.String(element.PropValue),
		Help:        help,
		Placeholder: strings.TrimSpace(props.String("placeholder")),
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = schema.Hint("placeholder")
	}
	cfg.Masked = props.String("type") == "password" ||
		schema.Hint("inputType") == "password" ||
		(schema != nil && schema.Format == "password")
	return cfg
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns the survey backed driver. Info messages go to out,
// or stdout when out is nil.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	var out string
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := askOne(ctx, inputPrompt(cfg), &out, opts...); err != nil {
		return "", err
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}
	if err := askOne(ctx, prompt, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	var out string
	if err := askOne(ctx, selectPrompt(cfg), &out); err != nil {
		return 0, err
	}
	return indexOf(cfg.Options, out), nil
}

func (d *surveyDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	var out []string
	if err := askOne(ctx, multiSelectPrompt(cfg), &out); err != nil {
		return nil, err
	}
	return indicesOf(cfg.Options, out), nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	var out string
	prompt := &survey.Multiline{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}
	if err := askOne(ctx, prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// askOne runs a survey prompt unless ctx is already done. survey cannot be
// interrupted mid prompt, so a context cancelled while the prompt was open
// discards the answer.
func askOne(ctx context.Context, prompt survey.Prompt, response any, opts ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, response, opts...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func inputPrompt(cfg InputConfig) survey.Prompt {
	help := cfg.Help
	if help == "" && cfg.Placeholder != "" {
		help = "e.g. " + cfg.Placeholder
	}
	if cfg.Masked {
		return &survey.Password{Message: cfg.Message, Help: help}
	}
	return &survey.Input{Message: cfg.Message, Help: help, Default: cfg.Default}
}

func selectPrompt(cfg SelectConfig) *survey.Select {
	prompt := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	return prompt
}

func multiSelectPrompt(cfg SelectConfig) *survey.MultiSelect {
	prompt := &survey.MultiSelect{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if defaults := defaultsFromIndices(cfg.Options, cfg.Defaults); len(defaults) > 0 {
		prompt.Default = defaults
	}
	return prompt
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}

func indicesOf(options, values []string) []int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	var out []int
	for i, option := range options {
		if _, ok := seen[option]; ok {
			out = append(out, i)
		}
	}
	return out
}

func defaultsFromIndices(options []string, indices []int) []string {
	var out []string
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx])
		}
	}
	return out
}
