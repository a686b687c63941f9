package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrUnknownTarget
	ErrUnexpectedArgument
	ErrExternalToolFailure
)

// Exit codes:
//
//	Exit 1: unclassified errors
//
//	Exit 2: user input errors
//	  - Invalid flag
//	  - Unknown target (including no target)
//	  - Unexpected argument
//
// External tool failures carry the child's own exit status.
var exitCodes = map[ErrorKind]int{
	ErrUnknown:             1,
	ErrInvalidFlag:         2,
	ErrUnknownTarget:       2,
	ErrUnexpectedArgument:  2,
	ErrExternalToolFailure: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the Kind's code when non-zero
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Silent reports whether the message should be withheld from the user.
// A tool that ran and failed has already printed its own diagnostics.
func (e *Error) Silent() bool {
	return e.Message == ""
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
