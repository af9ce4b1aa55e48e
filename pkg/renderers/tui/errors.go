package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoInput is returned when a rendered field exposes no change handler
	// to deliver answers to.
	ErrNoInput = errors.New("tui: field has no input with an onChange handler")
	// ErrTooManyAttempts is returned when a field still shows errors after
	// the configured number of attempts.
	ErrTooManyAttempts = errors.New("tui: too many attempts")
)
