package field

import (
	"github.com/goliatone/go-formfield/pkg/element"
)

// SlotKind tells how a slot was resolved.
type SlotKind uint8

const (
	// SlotDefault uses the instance default for the role.
	SlotDefault SlotKind = iota
	// SlotComponent uses a component passed through Props.Slots.
	SlotComponent
	// SlotElement uses the single child element, props included.
	SlotElement
)

func (k SlotKind) String() string {
	switch k {
	case SlotComponent:
		return "component"
	case SlotElement:
		return "element"
	default:
		return "default"
	}
}

// DefaultSelfTag is the wrapper tag used when no Self component is set.
const DefaultSelfTag = "div"

// Slot is the renderer chosen for one role in one render pass.
type Slot struct {
	Kind      SlotKind
	Component *element.Component
	Element   *element.Element
}

// Build instantiates the slot with the coordinator props. For element slots
// the child keeps its own props; coordinator props are layered on top.
func (s Slot) Build(props element.Props, children ...*element.Element) *element.Element {
	switch {
	case s.Kind == SlotElement && s.Element != nil:
		el := s.Element.Clone()
		el.Props = el.Props.Merge(props)
		if len(children) > 0 {
			el.Children = children
		}
		return el
	case s.Component != nil:
		return element.New(s.Component, props, children...)
	default:
		return element.Intrinsic(DefaultSelfTag, props, children...)
	}
}

// Resolved holds the slot choice for every role.
type Resolved struct {
	Self      Slot
	Label     Slot
	Input     Slot
	ErrorList Slot
}

// Resolve picks the renderer for each role. Prop overrides win over
// defaults; for the input role a single child element wins over both.
func Resolve(props Props, defaults Slots) (Resolved, error) {
	children := compactChildren(props.Children)
	if len(children) > 1 {
		return Resolved{}, ErrMultipleChildren
	}

	resolved := Resolved{
		Self:      pick(props.Slots.Self, defaults.Self),
		Label:     pick(props.Slots.Label, defaults.Label),
		Input:     pick(props.Slots.Input, defaults.Input),
		ErrorList: pick(props.Slots.ErrorList, defaults.ErrorList),
	}
	if len(children) == 1 {
		resolved.Input = Slot{Kind: SlotElement, Element: children[0]}
	}
	return resolved, nil
}

func pick(override, fallback *element.Component) Slot {
	if override != nil {
		return Slot{Kind: SlotComponent, Component: override}
	}
	return Slot{Kind: SlotDefault, Component: fallback}
}

func compactChildren(children []*element.Element) []*element.Element {
	if len(children) == 0 {
		return nil
	}
	out := make([]*element.Element, 0, len(children))
	for _, child := range children {
		if child == nil || (child.IsText() && child.Text == "") {
			continue
		}
		out = append(out, child)
	}
	return out
}
