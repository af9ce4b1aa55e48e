package tui

import "io"

// DefaultMaxAttempts bounds how often a field is re-prompted while it shows
// errors.
const DefaultMaxAttempts = 3

// Theme captures optional formatting hints applied when printing messages.
// Keep minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	ValuePrefix string
	ErrorPrefix string
}

func defaultTheme() Theme {
	return Theme{ValuePrefix: "  > ", ErrorPrefix: "  ! "}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets the writer used by the default survey driver.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// WithMaxAttempts sets how many times a field is prompted before Run gives
// up. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithTheme applies optional message prefixes. Empty prefixes keep the
// defaults.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		if theme.ValuePrefix != "" {
			r.theme.ValuePrefix = theme.ValuePrefix
		}
		if theme.ErrorPrefix != "" {
			r.theme.ErrorPrefix = theme.ErrorPrefix
		}
	}
}
