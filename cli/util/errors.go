package util

// ArgError is an error reported for invalid command line usage.
type ArgError struct {
	text string
}

// Error returns error message.
func (e *ArgError) Error() string {
	return e.text
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}
