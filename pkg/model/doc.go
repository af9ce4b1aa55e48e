// Package model defines the data a form field binds to. FormValue is the
// view model a field renders: the current value, an opaque Schema descriptor
// that flows untouched to the label and error-list slots, interaction Params
// such as ForceShowErrors, externally computed validation Errors, and the
// Update callback every value change is funnelled through. Schema carries
// the type, format, required flag, validation rules and UI hints so labels
// can decorate themselves without parsing raw documents.
// Validation rules are descriptive only; nothing in this module evaluates
// them.
package model
