package usage

import "fmt"

// MissingFlagValue is returned when a value flag is given without its value.
func MissingFlagValue(flag, hint string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("mk: flag '%s' requires a value: %s=%s. See 'mk --help'.", flag, flag, hint),
	}
}
