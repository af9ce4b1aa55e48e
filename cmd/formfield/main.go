package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/goliatone/go-formfield/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "YAML file listing fields, values and errors")
	openAPIPath := flag.String("openapi", "", "OpenAPI document to read fields from")
	component := flag.String("schema", "", "component schema name inside the OpenAPI document")
	renderer := flag.String("renderer", "", "renderer to use (vanilla or tui)")
	forceErrors := flag.Bool("force-errors", false, "show errors without waiting for blur")
	templates := flag.Bool("templates", false, "use the template backed vanilla slots")
	templatesDir := flag.String("templates-dir", "", "directory overriding the vanilla component templates (implies -templates)")
	stylesheet := flag.Bool("stylesheet", false, "inline the default stylesheet in HTML output")
	maxAttempts := flag.Int("max-attempts", 0, "tui prompt attempts per field")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := observability.InitLogger("formfield", os.Stderr, *verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{logger: logger, stdout: os.Stdout}
	err := a.run(ctx, options{
		ConfigPath:   *configPath,
		OpenAPIPath:  *openAPIPath,
		Component:    *component,
		Renderer:     *renderer,
		ForceErrors:  *forceErrors,
		Templates:    *templates,
		TemplatesDir: *templatesDir,
		Stylesheet:   *stylesheet,
		MaxAttempts:  *maxAttempts,
		Output:       *output,
	})
	if err != nil {
		logger.Error().Err(err).Msg("formfield failed")
		stop()
		os.Exit(1)
	}
}
