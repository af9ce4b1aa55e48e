package field

import "errors"

var (
	// ErrMissingFormValue is returned when Props.FormValue is nil.
	ErrMissingFormValue = errors.New("field: form value is required")
	// ErrMultipleChildren is returned when more than one child element is
	// supplied to override the input slot.
	ErrMultipleChildren = errors.New("field: at most one child element may override the input slot")
)
