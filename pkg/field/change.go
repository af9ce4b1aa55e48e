package field

import (
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/model"
)

// EventTarget is the element an event was dispatched on.
type EventTarget interface {
	Value() any
}

// targetEvent matches any payload exposing Target().Value().
type targetEvent interface {
	Target() EventTarget
}

// propagationStopper matches payloads that can stop propagation.
type propagationStopper interface {
	StopPropagation()
}

// Event is a DOM-like change event hosts can dispatch to an input's
// onChange handler.
type Event struct {
	target  valueTarget
	stopped int
}

type valueTarget struct{ value any }

func (t valueTarget) Value() any { return t.value }

// NewEvent returns an event whose target holds value.
func NewEvent(value any) *Event {
	return &Event{target: valueTarget{value: value}}
}

// Target returns the event target.
// A nil event has no target.
func (e *Event) Target() EventTarget {
	if e == nil {
		return nil
	}
	return e.target
}

// StopPropagation marks the event as handled.
func (e *Event) StopPropagation() {
	if e == nil {
		return
	}
	e.stopped++
}

// PropagationStopped reports how many times StopPropagation was called.
func (e *Event) PropagationStopped() int {
	if e == nil {
		return 0
	}
	return e.stopped
}

func (f *Instance) changeHandler(fv *model.FormValue) element.ChangeHandler {
	return func(payload any) {
		fv.Commit(Normalize(payload))
	}
}

// Normalize resolves a change payload to the new value. Event-shaped
// payloads have their propagation stopped once and yield target.value; any
// other payload is returned unchanged.
func Normalize(payload any) any {
	target, stop, ok := eventTarget(payload)
	if !ok {
		return payload
	}
	if stop != nil {
		stop()
	}
	return target()
}

// eventTarget reports whether payload is event-shaped and returns a reader
// for its target value, read only after propagation is stopped.
func eventTarget(payload any) (func() any, func(), bool) {
	switch event := payload.(type) {
	case nil:
		return nil, nil, false
	case targetEvent:
		target := event.Target()
		if target == nil {
			return nil, nil, false
		}
		var stop func()
		if stopper, ok := payload.(propagationStopper); ok {
			stop = stopper.StopPropagation
		}
		return target.Value, stop, true
	case map[string]any:
		target, ok := event["target"].(map[string]any)
		if !ok {
			return nil, nil, false
		}
		if _, ok := target["value"]; !ok {
			return nil, nil, false
		}
		var stop func()
		switch fn := event["stopPropagation"].(type) {
		case func():
			stop = fn
		case element.Handler:
			stop = fn
		}
		return func() any { return target["value"] }, stop, true
	default:
		return nil, nil, false
	}
}
