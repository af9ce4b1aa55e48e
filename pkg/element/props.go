package element

import (
	"fmt"
	"maps"
	"sort"
)

// Well-known prop keys shared between the field coordinator and its slots.
const (
	PropValue     = "value"
	PropOnChange  = "onChange"
	PropOnBlur    = "onBlur"
	PropLabel     = "label"
	PropSchema    = "schema"
	PropFormValue = "formValue"
	PropClass     = "class"
	PropID        = "id"
)

// Handler is a no-argument event callback (blur, focus, click).
type Handler func()

// ChangeHandler receives a change notification payload. See field for the
// payload shapes it accepts.
type ChangeHandler func(payload any)

// Props carries element attributes and callbacks.
type Props map[string]any

// Clone returns a shallow copy; nil stays nil.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Get returns the raw prop value.
func (p Props) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[key]
	return v, ok
}

// String returns the prop formatted as a string. Missing props yield "".
func (p Props) String(key string) string {
	v, ok := p.Get(key)
	if !ok || v == nil {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

// Handler returns the blur-style callback stored under key.
func (p Props) Handler(key string) Handler {
	v, _ := p.Get(key)
	switch fn := v.(type) {
	case Handler:
		return fn
	case func():
		return fn
	default:
		return nil
	}
}

// ChangeHandler returns the change callback stored under key.
func (p Props) ChangeHandler(key string) ChangeHandler {
	v, _ := p.Get(key)
	switch fn := v.(type) {
	case ChangeHandler:
		return fn
	case func(any):
		return fn
	default:
		return nil
	}
}

// Keys returns prop keys in sorted order so hosts emit stable output.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a copy of p with extra applied on top.
func (p Props) Merge(extra Props) Props {
	out := make(Props, len(p)+len(extra))
	maps.Copy(out, p)
	maps.Copy(out, extra)
	return out
}
