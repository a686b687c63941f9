package usage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "invalid flag", err: InvalidFlag("--bogus"), want: 2},
		{name: "missing flag value", err: MissingFlagValue("--log-file", "<path>"), want: 2},
		{name: "unknown target", err: UnknownTarget("deploy", []string{"build"}), want: 2},
		{name: "unexpected argument", err: UnexpectedArgument("extra"), want: 2},
		{name: "tool failed keeps child code", err: ToolFailed(101), want: 101},
		{name: "tool not launched", err: ToolNotLaunched(127, errors.New("cargo: not found")), want: 127},
		{name: "unknown kind", err: &Error{Kind: ErrorKind(99)}, want: 1},
		{name: "zero value", err: &Error{}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}

func TestUnknownTarget_ListsValidTargets(t *testing.T) {
	err := UnknownTarget("deploy", []string{"build", "clean", "fmt"})

	require.Equal(t, ErrUnknownTarget, err.Kind)
	require.Contains(t, err.Error(), "'deploy' is not a mk target")
	require.Contains(t, err.Error(), "Valid targets: build, clean, fmt")
	require.NotContains(t, err.Error(), "most similar")
}

func TestUnknownTarget_NoTarget(t *testing.T) {
	err := UnknownTarget("", []string{"build", "clean", "fmt"})

	require.Contains(t, err.Error(), "no target specified")
	require.Contains(t, err.Error(), "Valid targets: build, clean, fmt")
}

func TestUnknownTarget_Suggestions(t *testing.T) {
	one := UnknownTarget("buld", []string{"build"}, "build")
	require.Contains(t, one.Error(), "The most similar target is\n\tbuild")

	many := UnknownTarget("x", []string{"a", "b"}, "a", "b")
	require.Contains(t, many.Error(), "The most similar targets are\n\ta\n\tb")
}

func TestToolFailed_IsSilent(t *testing.T) {
	require.True(t, ToolFailed(1).Silent())
	require.False(t, InvalidFlag("--x").Silent())
}

func TestToolNotLaunched_Unwraps(t *testing.T) {
	cause := errors.New("exec: \"cargo\": executable file not found in $PATH")
	err := ToolNotLaunched(127, cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "executable file not found")
}

func TestMissingFlagValue(t *testing.T) {
	err := MissingFlagValue("--log-file", "<path>")

	require.Equal(t, ErrInvalidFlag, err.Kind)
	require.Equal(t, "mk: flag '--log-file' requires a value: --log-file=<path>. See 'mk --help'.", err.Error())
}
