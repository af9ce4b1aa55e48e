package formfield

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/field"
)

func TestRenderHTML(t *testing.T) {
	fv := &FormValue{Value: "ada", Schema: &Schema{Name: "nickname", Label: "Nickname"}}

	out, err := RenderHTML(context.Background(), nil, Props{FormValue: fv}, RenderOptions{Path: "nickname"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `data-field-path="nickname"`) || !strings.Contains(html, `value="ada"`) {
		t.Fatalf("unexpected output %s", html)
	}
}

func TestRenderHTMLRequiresFormValue(t *testing.T) {
	_, err := RenderHTML(context.Background(), New(), Props{}, RenderOptions{})
	if !errors.Is(err, field.ErrMissingFormValue) {
		t.Fatalf("expected ErrMissingFormValue, got %v", err)
	}
}
