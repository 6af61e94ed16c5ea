package loader

import "fmt"

// ErrorType classifies loader errors.
type ErrorType string

// ErrorTypeParse indicates the result file could not be decoded.
const ErrorTypeParse ErrorType = "parse"

// Error is a structured error from a loader, carrying the tool name so
// diagnostics can identify which input was at fault.
type Error struct {
	Err  error
	Tool string
	Type ErrorType
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s loader %s error: %v", e.Tool, e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decode failure for the given tool.
func NewParseError(tool string, err error) *Error {
	return &Error{Tool: tool, Type: ErrorTypeParse, Err: err}
}
