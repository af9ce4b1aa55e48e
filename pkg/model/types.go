package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

const (
	ValidationRuleMin       = "min"
	ValidationRuleMax       = "max"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single validation constraint attached to a
// schema. Numeric bounds and length limits encode their threshold in
// Params["value"] while pattern rules keep the expression in
// Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind" yaml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Schema describes the shape of a bound value. Fields never inspect it; the
// label and error-list slots receive it as-is.
type Schema struct {
	Name        string            `json:"name" yaml:"name"`
	Type        FieldType         `json:"type" yaml:"type"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Required    bool              `json:"required" yaml:"required"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any               `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []any             `json:"enum,omitempty" yaml:"enum,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty" yaml:"validations,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}

// Hint returns a UI hint by key; nil schemas yield "".
func (s *Schema) Hint(key string) string {
	if s == nil || s.UIHints == nil {
		return ""
	}
	return s.UIHints[key]
}

// IsRequired reports whether the schema is non-nil and marked required.
func (s *Schema) IsRequired() bool {
	return s != nil && s.Required
}
