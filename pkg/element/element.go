package element

import (
	"strings"
)

// RenderFunc produces the element tree for a component given its props.
type RenderFunc func(props Props) (*Element, error)

// Component is a named render function. Components are compared by pointer:
// two elements have the same type only when they reference the same
// *Component.
type Component struct {
	Name   string
	Render RenderFunc
}

// NewComponent returns a component with the supplied name and render function.
func NewComponent(name string, render RenderFunc) *Component {
	return &Component{Name: strings.TrimSpace(name), Render: render}
}

// String reports the component name for diagnostics.
func (c *Component) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.Name == "" {
		return "<anonymous>"
	}
	return c.Name
}

// Element is a node in the virtual tree. Exactly one of Type (composite) or
// Tag (intrinsic) is set; text nodes use Tag TextTag and carry Text.
type Element struct {
	Type     *Component
	Tag      string
	Text     string
	Props    Props
	Children []*Element
}

// Reserved tags for non-element nodes.
const (
	TextTag = "#text"
	RawTag  = "#raw"
)

// New creates a composite element for the component.
func New(component *Component, props Props, children ...*Element) *Element {
	return &Element{Type: component, Props: props, Children: children}
}

// Intrinsic creates an element rendered directly by the host (div, label...).
func Intrinsic(tag string, props Props, children ...*Element) *Element {
	return &Element{Tag: strings.ToLower(strings.TrimSpace(tag)), Props: props, Children: children}
}

// Text creates a text node.
func Text(value string) *Element {
	return &Element{Tag: TextTag, Text: value}
}

// Raw creates a node holding pre-rendered markup. Hosts decide whether and
// how to sanitize it.
func Raw(markup string) *Element {
	return &Element{Tag: RawTag, Text: markup}
}

// IsComposite reports whether the element still needs a component render.
func (e *Element) IsComposite() bool {
	return e != nil && e.Type != nil
}

// IsText reports whether the element is a text node.
func (e *Element) IsText() bool {
	return e != nil && e.Tag == TextTag
}

// IsRaw reports whether the element holds raw markup.
func (e *Element) IsRaw() bool {
	return e != nil && e.Tag == RawTag
}

// Child returns the child at idx or nil when out of range. A nil child is a
// legitimate "absent" slot.
func (e *Element) Child(idx int) *Element {
	if e == nil || idx < 0 || idx >= len(e.Children) {
		return nil
	}
	return e.Children[idx]
}

// Clone returns a shallow copy with its own Props map and Children slice.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := *e
	out.Props = e.Props.Clone()
	if e.Children != nil {
		out.Children = append([]*Element(nil), e.Children...)
	}
	return &out
}

// Name returns the component name or intrinsic tag.
func (e *Element) Name() string {
	if e == nil {
		return ""
	}
	if e.Type != nil {
		return e.Type.String()
	}
	return e.Tag
}
