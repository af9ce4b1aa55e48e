package model

// Params carries per-field interaction parameters.
type Params struct {
	// ForceShowErrors reveals the error list regardless of blur history.
	ForceShowErrors bool `json:"forceShowErrors,omitempty" yaml:"forceShowErrors,omitempty"`
	// Extra holds interaction parameters fields do not interpret.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// FormValue is the view model bound to a single field. It is read-only for a
// render pass: every change is routed through Update. A zero FormValue is
// valid; a nil Update makes changes a no-op.
type FormValue struct {
	Value  any
	Schema *Schema
	Params Params
	Errors []string
	Update func(value any)
}

// Commit forwards value to Update when one is configured.
func (fv *FormValue) Commit(value any) {
	if fv == nil || fv.Update == nil {
		return
	}
	fv.Update(value)
}

// ForceShowErrors reports the forced error-display flag.
func (fv *FormValue) ForceShowErrors() bool {
	return fv != nil && fv.Params.ForceShowErrors
}

// CurrentValue returns Value, tolerating a nil receiver.
func (fv *FormValue) CurrentValue() any {
	if fv == nil {
		return nil
	}
	return fv.Value
}

// CurrentSchema returns Schema, tolerating a nil receiver.
func (fv *FormValue) CurrentSchema() *Schema {
	if fv == nil {
		return nil
	}
	return fv.Schema
}
