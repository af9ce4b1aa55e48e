package components

// Names registered by NewDefaultRegistry.
const (
	NameLabel     = "label"
	NameInput     = "input"
	NameTextarea  = "textarea"
	NameErrorList = "error-list"
)

// DefaultStylesheet is the asset every built-in component declares.
const DefaultStylesheet = "formfield-vanilla.css"
