package cli

import "github.com/footprint-tools/mk/internal/dispatchers"

// Value flags take an argument, either as --flag=value or --flag value.
const (
	FlagLogFile     = "--log-file"
	FlagLogLevel    = "--log-level"
	FlagCompletions = "--completions"
)

var RootFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--dry-run", "-n"},
		Description: "Print the command instead of running it",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
	{
		Names:       []string{FlagLogFile},
		ValueHint:   "<path>",
		Description: "Append a diagnostic log to path",
	},
	{
		Names:       []string{FlagLogLevel},
		ValueHint:   "<level>",
		Choices:     []string{"debug", "info", "warn", "error"},
		Description: "Log level: debug, info, warn, error (default debug)",
	},
	{
		Names:       []string{FlagCompletions},
		ValueHint:   "<shell>",
		Choices:     []string{"bash", "zsh", "fish"},
		Description: "Print a completion script for bash, zsh or fish",
	},
}

// ValueFlags lists the flags that consume the following argument when
// written without '='.
var ValueFlags = map[string]bool{
	FlagLogFile:     true,
	FlagLogLevel:    true,
	FlagCompletions: true,
}
