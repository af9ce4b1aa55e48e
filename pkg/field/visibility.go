package field

// ErrorState is the error-list visibility state of an instance.
type ErrorState uint8

const (
	// ErrorsHidden is the initial state.
	ErrorsHidden ErrorState = iota
	// ErrorsShown is entered on the first blur and is terminal.
	ErrorsShown
)

func (s ErrorState) String() string {
	if s == ErrorsShown {
		return "shown"
	}
	return "hidden"
}

type visibility struct {
	state ErrorState
}

// blur moves hidden to shown. It reports whether the state changed.
func (v *visibility) blur() bool {
	if v.state == ErrorsShown {
		return false
	}
	v.state = ErrorsShown
	return true
}

// visible is recomputed on every render; forced never writes into state.
func (v *visibility) visible(forced bool) bool {
	return v.state == ErrorsShown || forced
}
