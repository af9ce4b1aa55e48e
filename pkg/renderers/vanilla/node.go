package vanilla

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formfield/pkg/element"
)

// eventAttr lists the handler props an element exposes to runtime scripts.
const eventAttr = "data-fg-on"

var attrAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

var fragmentContext = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

// toNodes converts an expanded element into html nodes. Raw markup is
// sanitized with policy and parsed back into nodes.
func toNodes(el *element.Element, policy *bluemonday.Policy) ([]*html.Node, error) {
	switch {
	case el == nil:
		return nil, nil
	case el.IsText():
		return []*html.Node{{Type: html.TextNode, Data: el.Text}}, nil
	case el.IsRaw():
		return parseRaw(el.Text, policy)
	case el.IsComposite():
		return nil, fmt.Errorf("vanilla: element %s was not expanded", el.Name())
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Tag,
		DataAtom: atom.Lookup([]byte(el.Tag)),
		Attr:     attributes(el.Props),
	}
	for _, child := range el.Children {
		nodes, err := toNodes(child, policy)
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			node.AppendChild(n)
		}
	}
	return []*html.Node{node}, nil
}

func parseRaw(markup string, policy *bluemonday.Policy) ([]*html.Node, error) {
	if policy != nil {
		markup = policy.Sanitize(markup)
	}
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), fragmentContext)
	if err != nil {
		return nil, fmt.Errorf("vanilla: parse markup: %w", err)
	}
	return nodes, nil
}

// attributes serializes scalar props in key order. Function props named
// on<Event> are collected into the data-fg-on marker instead.
func attributes(props element.Props) []html.Attribute {
	var (
		attrs  []html.Attribute
		events []string
	)
	for _, key := range props.Keys() {
		if key == element.PropChildren {
			continue
		}
		value := props[key]
		if event, ok := eventName(key, value); ok {
			events = append(events, event)
			continue
		}
		text, ok := attrValue(value)
		if !ok {
			continue
		}
		name := key
		if alias, exists := attrAliases[key]; exists {
			name = alias
		}
		attrs = append(attrs, html.Attribute{Key: name, Val: text})
	}
	if len(events) > 0 {
		attrs = mergeEvents(attrs, events)
	}
	return attrs
}

func eventName(key string, value any) (string, bool) {
	if len(key) <= 2 || !strings.HasPrefix(key, "on") {
		return "", false
	}
	switch value.(type) {
	case element.Handler, element.ChangeHandler, func(), func(any):
	default:
		return "", false
	}
	return strings.ToLower(key[2:]), true
}

func attrValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return "", v
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return "", rv.Bool()
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		// funcs, maps, slices and structs have no attribute form.
		return "", false
	}
}

func mergeEvents(attrs []html.Attribute, events []string) []html.Attribute {
	for i, attr := range attrs {
		if attr.Key != eventAttr {
			continue
		}
		events = append(strings.Fields(attr.Val), events...)
		slices.Sort(events)
		attrs[i].Val = strings.Join(slices.Compact(events), " ")
		return attrs
	}
	slices.Sort(events)
	return append(attrs, html.Attribute{Key: eventAttr, Val: strings.Join(slices.Compact(events), " ")})
}

func setAttr(node *html.Node, key, value string) {
	if node == nil || node.Type != html.ElementNode {
		return
	}
	for _, attr := range node.Attr {
		if attr.Key == key {
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: value})
}
