package vanilla

import (
	"github.com/microcosm-cc/bluemonday"
)

// DefaultPolicy allows the markup emitted by the built-in templates on top
// of bluemonday's user generated content policy.
func DefaultPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("label", "input", "textarea", "select", "option", "span", "ul", "li", "div", "small", "p")
	policy.AllowAttrs("for").OnElements("label")
	policy.AllowAttrs("type", "name", "value", "placeholder", "required", "disabled", "readonly", "checked").OnElements("input")
	policy.AllowAttrs("name", "rows", "placeholder", "required", "disabled", "readonly").OnElements("textarea")
	policy.AllowAttrs("name", "multiple", "required", "disabled").OnElements("select")
	policy.AllowAttrs("value", "selected").OnElements("option")
	policy.AllowAttrs("class", "id").Globally()
	policy.AllowDataAttributes()
	return policy
}
