package gotemplate_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|shout_adapter_test }}")},
		"escape.tmpl":     {Data: []byte("<b>{{ name }}</b>")},
	}
	options = append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)
	engine, err := gotemplate.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" || written != result {
		t.Fatalf("render mismatch: result %q written %q", result, written)
	}
}

func TestEngine_AutoEscapes(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape.tmpl", map[string]any{"name": "<i>x</i>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result, "<i>") {
		t.Fatalf("expected escaped output, got %q", result)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("global context mismatch: %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout_adapter_test", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout_adapter_test", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("filter output mismatch: %q", result)
	}
}

func TestEngine_WithFilter(t *testing.T) {
	engine := newEngine(t, gotemplate.WithFilter("whisper_adapter_test", func(input any, _ any) (any, error) {
		return strings.ToLower(fmt.Sprint(input)), nil
	}))

	result, err := engine.RenderString("{{ name|whisper_adapter_test }}", map[string]any{"name": "ADA"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ada" {
		t.Fatalf("filter output mismatch: %q", result)
	}
}

func TestEngine_WithBaseDirTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tmpl"), []byte("Hi {{ name }} from disk"), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
	engine := newEngine(t, gotemplate.WithBaseDir(dir))

	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hi Ada from disk" {
		t.Fatalf("expected disk template, got %q", result)
	}

	result, err = engine.RenderTemplate("escape", map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("render fallback: %v", err)
	}
	if result != "<b>x</b>" {
		t.Fatalf("expected fs fallback, got %q", result)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "1-two" {
		t.Fatalf("render string mismatch: %q", result)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates source")
	}
}
