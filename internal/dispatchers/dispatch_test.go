package dispatchers

import (
	"bytes"
	"testing"

	"github.com/footprint-tools/mk/internal/ui/style"
	"github.com/footprint-tools/mk/internal/usage"
	"github.com/stretchr/testify/require"
)

// Mock action functions for testing
func mockAction(args []string, flags *ParsedFlags) error {
	return nil
}

// Helper to create the target tree used by mk
func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "mk",
		Summary: "Test dispatcher",
		Usage:   "mk <target> [flags]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--dry-run", "-n"}, Description: "Print the command"},
			{Names: []string{"--log-file"}, ValueHint: "path", Description: "Log file"},
		},
	})

	Target(TargetSpec{Name: "build", Parent: root, Summary: "Build", Description: "cargo build --release", Usage: "mk build", Action: mockAction, Category: CategoryBuild})
	Target(TargetSpec{Name: "fmt", Parent: root, Summary: "Format", Description: "cargo fmt -v", Usage: "mk fmt", Action: mockAction, Category: CategoryMaintain})
	Target(TargetSpec{Name: "clean", Parent: root, Summary: "Clean", Description: "cargo clean", Usage: "mk clean", Action: mockAction, Category: CategoryMaintain})

	return root
}

func testHelp(out *bytes.Buffer) HelpOutput {
	return HelpOutput{Out: out, Styler: style.NopStyler{}}
}

func requireUsageError(t *testing.T, err error, kind usage.ErrorKind) *usage.Error {
	t.Helper()
	require.Error(t, err)
	ue, ok := err.(*usage.Error)
	require.True(t, ok, "expected *usage.Error, got %T", err)
	require.Equal(t, kind, ue.Kind)
	return ue
}

func TestDispatch_ValidTargets(t *testing.T) {
	root := createTestTree()

	for _, name := range []string{"build", "fmt", "clean"} {
		t.Run(name, func(t *testing.T) {
			res, err := Dispatch(root, []string{name}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
			require.NoError(t, err)
			require.NotNil(t, res.Node)
			require.Equal(t, name, res.Node.Name)
			require.NotNil(t, res.Execute)
			require.Empty(t, res.Args)
		})
	}
}

func TestDispatch_NoTarget(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
	ue := requireUsageError(t, err, usage.ErrUnknownTarget)
	require.Nil(t, res.Execute)
	require.Equal(t, 2, ue.GetExitCode())
	require.Contains(t, ue.Error(), "Valid targets: build, clean, fmt")
}

func TestDispatch_UnknownTarget(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"deploy"}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
	ue := requireUsageError(t, err, usage.ErrUnknownTarget)
	require.Nil(t, res.Execute)
	require.Contains(t, ue.Error(), "'deploy'")
	require.Contains(t, ue.Error(), "Valid targets: build, clean, fmt")
}

func TestDispatch_UnknownTargetSuggests(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"buld"}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
	ue := requireUsageError(t, err, usage.ErrUnknownTarget)
	require.Contains(t, ue.Error(), "The most similar target is\n\tbuild")
}

func TestDispatch_TooManyTokens(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"build", "clean"}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
	ue := requireUsageError(t, err, usage.ErrUnexpectedArgument)
	require.Nil(t, res.Execute)
	require.Contains(t, ue.Error(), "'clean'")
}

func TestDispatch_UnknownTargetReportedBeforeExtraTokens(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"deploy", "now"}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
	requireUsageError(t, err, usage.ErrUnknownTarget)
}

func TestDispatch_InvalidFlag(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"build"}, NewParsedFlags([]string{"--invalid-flag"}), testHelp(&bytes.Buffer{}))
	ue := requireUsageError(t, err, usage.ErrInvalidFlag)
	require.Contains(t, ue.Error(), "invalid-flag")
	require.Equal(t, 2, ue.GetExitCode())
}

func TestDispatch_ValidFlags(t *testing.T) {
	root := createTestTree()

	flags := NewParsedFlags([]string{"-n", "--log-file=/tmp/mk.log"})
	res, err := Dispatch(root, []string{"build"}, flags, testHelp(&bytes.Buffer{}))
	require.NoError(t, err)
	require.Equal(t, "build", res.Node.Name)
	require.Same(t, flags, res.Flags)
}

func TestDispatch_HelpFlag(t *testing.T) {
	root := createTestTree()

	tests := []struct {
		name     string
		tokens   []string
		flags    []string
		wantNode string
	}{
		{name: "--help on root", tokens: nil, flags: []string{"--help"}, wantNode: "mk"},
		{name: "-h on root", tokens: nil, flags: []string{"-h"}, wantNode: "mk"},
		{name: "--help on target", tokens: []string{"fmt"}, flags: []string{"--help"}, wantNode: "fmt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			res, err := Dispatch(root, tt.tokens, NewParsedFlags(tt.flags), testHelp(&out))
			require.NoError(t, err)
			require.Equal(t, tt.wantNode, res.Node.Name)
			require.NotNil(t, res.Execute)

			require.NoError(t, res.Execute(res.Args, res.Flags))
			require.NotEmpty(t, out.String())
		})
	}
}

func TestDispatch_HelpForUnknownTarget(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"deploy"}, NewParsedFlags([]string{"--help"}), testHelp(&bytes.Buffer{}))
	requireUsageError(t, err, usage.ErrUnknownTarget)
}

func TestDispatch_NodeWithoutActionIsNotATarget(t *testing.T) {
	root := createTestTree()
	NewNode("docs", root, "", "", "", nil, nil)

	_, err := Dispatch(root, []string{"docs"}, NewParsedFlags(nil), testHelp(&bytes.Buffer{}))
	requireUsageError(t, err, usage.ErrUnknownTarget)
}

func TestHasHelpFlag(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  bool
	}{
		{name: "no help flag", flags: []string{"--dry-run"}, want: false},
		{name: "has --help", flags: []string{"--help"}, want: true},
		{name: "has -h", flags: []string{"-h"}, want: true},
		{name: "has --help among others", flags: []string{"-n", "--help", "--no-color"}, want: true},
		{name: "empty flags", flags: []string{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, hasHelpFlag(NewParsedFlags(tt.flags)))
		})
	}
}

func TestValidateFlags(t *testing.T) {
	valid := validFlagsForNode(createTestTree())

	require.NoError(t, validateFlags(NewParsedFlags([]string{"--dry-run", "-n", "--log-file=x"}), valid))
	require.Error(t, validateFlags(NewParsedFlags([]string{"--verbose"}), valid))
	require.Error(t, validateFlags(NewParsedFlags([]string{"--log"}), valid))
	require.NoError(t, validateFlags(nil, valid))
	require.Error(t, validateFlags(NewParsedFlags([]string{"--log-file"}), valid))
	require.Error(t, validateFlags(NewParsedFlags([]string{"--log-file="}), valid))
}

func TestDispatch_HelpStillValidatesFlags(t *testing.T) {
	root := createTestTree()
	var out bytes.Buffer

	_, err := Dispatch(root, nil, NewParsedFlags([]string{"--bogus", "-h"}), testHelp(&out))
	ue := requireUsageError(t, err, usage.ErrInvalidFlag)
	require.Contains(t, ue.Error(), "--bogus")
	require.Empty(t, out.String())
}

func TestDispatch_ValueFlagWithoutValue(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"build"}, NewParsedFlags([]string{"--log-file"}), testHelp(&bytes.Buffer{}))
	ue := requireUsageError(t, err, usage.ErrInvalidFlag)
	require.Contains(t, ue.Error(), "'--log-file' requires a value")
	require.Nil(t, res.Execute)
}

func TestValidateFlags_Exported(t *testing.T) {
	root := createTestTree()

	require.NoError(t, ValidateFlags(root, NewParsedFlags([]string{"-n", "--log-file=/tmp/mk.log"})))
	requireUsageError(t, ValidateFlags(root, NewParsedFlags([]string{"--bogus"})), usage.ErrInvalidFlag)
}
