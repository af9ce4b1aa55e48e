package field

import (
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/model"
)

// Slot overrides for the four rendering roles. Nil entries fall back to the
// instance defaults.
type Slots struct {
	Self      *element.Component
	Label     *element.Component
	Input     *element.Component
	ErrorList *element.Component
}

// Props are the inputs for one render pass.
type Props struct {
	FormValue *model.FormValue
	Label     string
	Slots     Slots
	// Children holds nested markup. A single element replaces the input slot.
	Children []*element.Element
}

// Option configures an Instance.
type Option func(*Instance)

// WithInvalidate registers the callback used to request a re-render after
// internal state changes (the blur transition).
func WithInvalidate(fn func()) Option {
	return func(f *Instance) {
		f.invalidate = fn
	}
}

// WithDefaults replaces the built-in slot renderers. Nil entries keep the
// built-in for that role.
func WithDefaults(defaults Slots) Option {
	return func(f *Instance) {
		f.defaults = mergeSlots(f.defaults, defaults)
	}
}

// Instance is one mounted field. It owns the error visibility state for its
// lifetime.
type Instance struct {
	defaults   Slots
	invalidate func()
	errors     visibility
}

// New creates a field instance with errors hidden.
func New(options ...Option) *Instance {
	f := &Instance{defaults: builtinSlots()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Render assembles the field tree: the Self wrapper with children
// [label, input, error list or nil], in that order.
func (f *Instance) Render(props Props) (*element.Element, error) {
	fv := props.FormValue
	if fv == nil {
		return nil, ErrMissingFormValue
	}

	resolved, err := Resolve(props, f.defaults)
	if err != nil {
		return nil, err
	}

	label := resolved.Label.Build(element.Props{
		element.PropLabel:  props.Label,
		element.PropSchema: fv.Schema,
	})
	input := resolved.Input.Build(element.Props{
		element.PropValue:    fv.Value,
		element.PropOnChange: f.changeHandler(fv),
	})

	var errorList *element.Element
	if f.ErrorsVisible(fv) {
		errorList = resolved.ErrorList.Build(element.Props{
			element.PropFormValue: fv,
		})
	}

	return resolved.Self.Build(element.Props{
		element.PropOnBlur: element.Handler(f.Blur),
	}, label, input, errorList), nil
}

// Blur records that the user left the field. The first call reveals the
// error list for every later render and requests a re-render.
func (f *Instance) Blur() {
	if f.errors.blur() && f.invalidate != nil {
		f.invalidate()
	}
}

// ErrorsVisible reports whether the error list is mounted for fv.
func (f *Instance) ErrorsVisible(fv *model.FormValue) bool {
	return f.errors.visible(fv.ForceShowErrors())
}

// State exposes the current internal error state.
func (f *Instance) State() ErrorState {
	return f.errors.state
}

func mergeSlots(base, override Slots) Slots {
	if override.Self != nil {
		base.Self = override.Self
	}
	if override.Label != nil {
		base.Label = override.Label
	}
	if override.Input != nil {
		base.Input = override.Input
	}
	if override.ErrorList != nil {
		base.ErrorList = override.ErrorList
	}
	return base
}
