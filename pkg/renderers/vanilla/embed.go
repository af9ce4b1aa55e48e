package vanilla

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-formfield/pkg/renderers/vanilla/components"
)

//go:embed templates/components/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the embedded stylesheet the default components declare.
const StylesheetName = components.DefaultStylesheet

// TemplatesFS exposes the embedded component templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet so callers can serve it over HTTP
// or copy it into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
