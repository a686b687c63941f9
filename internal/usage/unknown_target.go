package usage

import (
	"fmt"
	"strings"
)

// UnknownTarget is returned when the requested target is not in the table.
// An empty name means no target was given at all.
func UnknownTarget(name string, valid []string, suggestions ...string) *Error {
	var b strings.Builder

	if name == "" {
		b.WriteString("mk: no target specified.")
	} else {
		fmt.Fprintf(&b, "mk: '%s' is not a mk target.", name)
	}

	if len(suggestions) == 1 {
		fmt.Fprintf(&b, "\n\nThe most similar target is\n\t%s", suggestions[0])
	} else if len(suggestions) > 1 {
		b.WriteString("\n\nThe most similar targets are")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\n\t%s", s)
		}
	}

	fmt.Fprintf(&b, "\n\nValid targets: %s", strings.Join(valid, ", "))

	return &Error{
		Kind:    ErrUnknownTarget,
		Message: b.String(),
	}
}

// UnexpectedArgument is returned when more than one target is given.
func UnexpectedArgument(arg string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("mk: unexpected argument '%s'. mk runs exactly one target.", arg),
	}
}
