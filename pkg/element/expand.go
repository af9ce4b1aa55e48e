package element

import (
	"context"
	"errors"
	"fmt"
)

// MaxDepth bounds component nesting during Expand.
const MaxDepth = 64

// ErrRenderDepth reports a component chain deeper than MaxDepth, usually a
// component that renders itself.
var ErrRenderDepth = errors.New("element: maximum render depth exceeded")

// Expand renders every composite element until only intrinsic, text, and raw
// nodes remain. Nil children are dropped from the result. The input tree is
// left untouched.
func Expand(ctx context.Context, root *Element) (*Element, error) {
	return expand(ctx, root, 0)
}

func expand(ctx context.Context, el *Element, depth int) (*Element, error) {
	if el == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > MaxDepth {
		return nil, ErrRenderDepth
	}

	if el.IsComposite() {
		if el.Type.Render == nil {
			return nil, fmt.Errorf("element: component %s has no render function", el.Type)
		}
		props := el.Props.Clone()
		if len(el.Children) > 0 {
			if props == nil {
				props = Props{}
			}
			props[PropChildren] = el.Children
		}
		rendered, err := el.Type.Render(props)
		if err != nil {
			return nil, fmt.Errorf("element: render %s: %w", el.Type, err)
		}
		return expand(ctx, rendered, depth+1)
	}

	out := &Element{Tag: el.Tag, Text: el.Text, Props: el.Props.Clone()}
	for _, child := range el.Children {
		expanded, err := expand(ctx, child, depth)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			out.Children = append(out.Children, expanded)
		}
	}
	return out, nil
}

// PropChildren carries nested children into a component render function.
const PropChildren = "children"

// ChildrenOf returns the children a composite element was created with.
func ChildrenOf(props Props) []*Element {
	v, _ := props.Get(PropChildren)
	children, _ := v.([]*Element)
	return children
}

// Walk visits el and its descendants depth first. Returning false from fn
// stops descent into that node's children.
func Walk(el *Element, fn func(*Element) bool) {
	if el == nil || fn == nil {
		return
	}
	if !fn(el) {
		return
	}
	for _, child := range el.Children {
		Walk(child, fn)
	}
}

// Find returns the first element (depth first) satisfying match.
func Find(root *Element, match func(*Element) bool) *Element {
	var found *Element
	Walk(root, func(el *Element) bool {
		if found != nil {
			return false
		}
		if match(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the text nodes below el.
func TextContent(el *Element) string {
	var out []byte
	Walk(el, func(node *Element) bool {
		if node.IsText() {
			out = append(out, node.Text...)
		}
		return true
	})
	return string(out)
}
