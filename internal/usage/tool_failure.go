package usage

import "fmt"

// ToolFailed reports a child that ran and exited non-zero. The child has
// already written its diagnostics, so the error carries no message.
func ToolFailed(exitCode int) *Error {
	return &Error{
		Kind:     ErrExternalToolFailure,
		ExitCode: exitCode,
	}
}

// ToolNotLaunched reports a child that could not be started.
func ToolNotLaunched(exitCode int, err error) *Error {
	return &Error{
		Kind:     ErrExternalToolFailure,
		Message:  fmt.Sprintf("mk: %v", err),
		ExitCode: exitCode,
		Err:      err,
	}
}
