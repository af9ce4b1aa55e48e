// Package template defines the template seam template-backed slot
// components render through. The pongo2 implementation lives in the
// gotemplate subpackage.
package template
