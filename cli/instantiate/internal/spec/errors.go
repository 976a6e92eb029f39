package spec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProjectType is reported when a specification declares
	// a project type this version does not recognize.
	ErrUnsupportedProjectType = errors.New("unsupported project type")

	// ErrMissingProjectConfig is reported when an Xcode project
	// specification has no project configuration file name.
	ErrMissingProjectConfig = errors.New("project specification file name is missing")

	// ErrUnknownParameter is reported when a value is supplied for a
	// parameter id the specification does not declare.
	ErrUnknownParameter = errors.New("unknown parameter")
)

// ValidationError is reported when a supplied parameter value does not
// fit the parameter's declaration.
type ValidationError struct {
	// ParamID is the id of the offending parameter.
	ParamID string
	// Reason describes why the value was rejected.
	Reason string
}

// Error returns error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for parameter %q: %s", e.ParamID, e.Reason)
}
