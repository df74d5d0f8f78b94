package things

import (
	"errors"
	"fmt"
)

// ErrApplicationNotRunning reports that Things 3 could not be reached
// through the scripting bridge.
var ErrApplicationNotRunning = errors.New("Things 3 is not running. Please make sure it is installed and launched")

// ScriptError wraps a failure reported by the application's scripting
// engine. The message is passed through verbatim.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return "AppleScript error: " + e.Message
}

// NotFoundError reports that an object addressed by id or name no longer
// exists in the application.
type NotFoundError struct {
	Kind string // "to-do", "project", "area", "tag"
	Ref  string // the id or name used to address it
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Ref)
}

// InvalidParameterError reports malformed or missing input, detected
// before any command is issued to the application.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string {
	return "invalid parameter: " + e.Message
}

// URLSchemeError reports a failure to build or hand off a URL command.
type URLSchemeError struct {
	Message string
}

func (e *URLSchemeError) Error() string {
	return "URL scheme error: " + e.Message
}

// NewInvalidParameter builds an InvalidParameterError with a formatted message.
func NewInvalidParameter(format string, args ...any) error {
	return &InvalidParameterError{Message: fmt.Sprintf(format, args...)}
}
