package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/render"
)

// Renderer mounts fields in a terminal. Render prints a field tree as plain
// text; Run drives the interactive prompt loop.
type Renderer struct {
	driver      PromptDriver
	out         io.Writer
	maxAttempts int
	theme       Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, three attempts).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		maxAttempts: DefaultMaxAttempts,
		theme:       defaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render expands root and prints one line per label, input value and error
// message.
func (r *Renderer) Render(ctx context.Context, root *element.Element, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if root == nil {
		return nil, errors.New("tui: root element is nil")
	}
	expanded, err := element.Expand(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	var b strings.Builder
	if opts.Path != "" {
		fmt.Fprintf(&b, "[%s]\n", opts.Path)
	}
	r.writeText(&b, expanded)
	return []byte(b.String()), nil
}

func (r *Renderer) writeText(b *strings.Builder, root *element.Element) {
	writeLine := func(prefix, text string) {
		if text = strings.TrimSpace(text); text != "" {
			b.WriteString(prefix)
			b.WriteString(text)
			b.WriteByte('\n')
		}
	}
	element.Walk(root, func(el *element.Element) bool {
		switch {
		case el.IsText():
			writeLine("", el.Text)
		case el.IsRaw():
			for _, line := range rawLines(el.Text) {
				writeLine("", line)
			}
		case el.Tag == "label":
			writeLine("", element.TextContent(el))
		case el.Tag == "li":
			writeLine(r.theme.ErrorPrefix, element.TextContent(el))
		case isControl(el):
			writeLine(r.theme.ValuePrefix, controlValue(el))
		default:
			return true
		}
		return false
	})
}

func isControl(el *element.Element) bool {
	switch el.Tag {
	case "input", "textarea", "select":
		return true
	}
	_, hasValue := el.Props.Get(element.PropValue)
	return hasValue
}

func controlValue(el *element.Element) string {
	if value := el.Props.String(element.PropValue); value != "" {
		return value
	}
	return element.TextContent(el)
}

// rawLines extracts the visible text of template output, one entry per
// text node.
func rawLines(markup string) []string {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return []string{markup}
	}
	var lines []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
		case n.Type == html.ElementNode && n.DataAtom == atom.Input:
			for _, attr := range n.Attr {
				if attr.Key == "value" && attr.Val != "" {
					lines = append(lines, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, node := range nodes {
		visit(node)
	}
	return lines
}
