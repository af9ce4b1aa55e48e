// Package openapi turns OpenAPI component schemas into model.Schema values
// so fields can be built from an existing API description. Documents are
// parsed with kin-openapi; nested objects are flattened into dotted names
// that match formvalue store paths.
package openapi
