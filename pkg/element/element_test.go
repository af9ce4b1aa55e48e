package element_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/element"
)

func TestExpand_ResolvesComponents(t *testing.T) {
	greeting := element.NewComponent("Greeting", func(props element.Props) (*element.Element, error) {
		return element.Intrinsic("p", element.Props{"class": "greet"},
			element.Text("hi "+props.String("name")),
		), nil
	})
	wrapper := element.NewComponent("Wrapper", func(props element.Props) (*element.Element, error) {
		return element.Intrinsic("section", nil, element.ChildrenOf(props)...), nil
	})

	root := element.Intrinsic("div", nil,
		element.New(wrapper, nil, element.New(greeting, element.Props{"name": "ada"})),
		nil,
	)

	out, err := element.Expand(context.Background(), root)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}

	var tags []string
	element.Walk(out, func(el *element.Element) bool {
		if el.IsComposite() {
			t.Fatalf("composite element left after expand: %s", el.Name())
		}
		tags = append(tags, el.Tag)
		return true
	})
	want := []string{"div", "section", "p", element.TextTag}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("expanded tree mismatch (-want +got):\n%s", diff)
	}
	if got := element.TextContent(out); got != "hi ada" {
		t.Fatalf("text content mismatch: %q", got)
	}
}

func TestExpand_DepthGuard(t *testing.T) {
	var loop *element.Component
	loop = element.NewComponent("Loop", func(element.Props) (*element.Element, error) {
		return element.New(loop, nil), nil
	})

	_, err := element.Expand(context.Background(), element.New(loop, nil))
	if !errors.Is(err, element.ErrRenderDepth) {
		t.Fatalf("expected ErrRenderDepth, got %v", err)
	}
}

func TestExpand_PropagatesRenderErrors(t *testing.T) {
	boom := errors.New("boom")
	broken := element.NewComponent("Broken", func(element.Props) (*element.Element, error) {
		return nil, boom
	})

	_, err := element.Expand(context.Background(), element.New(broken, nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
}

func TestExpand_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := element.Expand(ctx, element.Intrinsic("div", nil))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProps_Accessors(t *testing.T) {
	called := 0
	props := element.Props{
		"count":  7,
		"blur":   func() { called++ },
		"change": func(any) { called++ },
	}

	if got := props.String("count"); got != "7" {
		t.Fatalf("string accessor: %q", got)
	}
	if got := props.String("missing"); got != "" {
		t.Fatalf("missing prop should be empty, got %q", got)
	}
	props.Handler("blur")()
	props.ChangeHandler("change")(nil)
	if called != 2 {
		t.Fatalf("expected both handlers invoked, got %d", called)
	}
	if props.Handler("count") != nil {
		t.Fatalf("non-func prop must not yield a handler")
	}

	merged := props.Merge(element.Props{"count": 8})
	if props["count"] != 7 || merged["count"] != 8 {
		t.Fatalf("merge must not mutate the receiver")
	}
	if diff := cmp.Diff([]string{"blur", "change", "count"}, props.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
