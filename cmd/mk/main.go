package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/mk/internal/actions"
	"github.com/footprint-tools/mk/internal/app"
	"github.com/footprint-tools/mk/internal/cli"
	"github.com/footprint-tools/mk/internal/dispatchers"
	"github.com/footprint-tools/mk/internal/domain"
	"github.com/footprint-tools/mk/internal/log"
	"github.com/footprint-tools/mk/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], app.DefaultOptions()))
}

// run executes one mk invocation and returns the process exit status.
func run(args []string, opts app.Options) int {
	rawFlags, commands := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if lvl := flags.String(cli.FlagLogLevel, ""); lvl != "" {
		level, ok := log.ParseLevel(lvl)
		if !ok {
			ue := usage.InvalidFlag(cli.FlagLogLevel + "=" + lvl)
			fmt.Fprintln(opts.Stderr, ue.Error())
			return ue.GetExitCode()
		}
		opts.LogLevel = level
	}

	opts.DryRun = flags.Has("--dry-run") || flags.Has("-n")
	opts.LogFile = flags.String(cli.FlagLogFile, "")

	// Each stream is styled only if it is a terminal and --no-color is not set
	noColor := flags.Has("--no-color")
	opts.StyleEnabled = !noColor && isTerminal(opts.Stdout)
	opts.ErrStyleEnabled = !noColor && isTerminal(opts.Stderr)

	application, warning := app.New(opts)
	defer func() { _ = app.Close(application) }()

	if warning != nil {
		fmt.Fprintf(opts.Stderr, "mk: warning: logging disabled: %v\n", warning)
	}

	application.Logger.Debug("argv=%q", args)

	root := cli.BuildTree(application)
	help := dispatchers.HelpOutput{Out: application.Output, Styler: application.Styler}

	if flags.Has(cli.FlagCompletions) || flags.String(cli.FlagCompletions, "") != "" {
		if err := dispatchers.ValidateFlags(root, flags); err != nil {
			return report(application, err)
		}
		if err := actions.PrintCompletions(application, root, flags.String(cli.FlagCompletions, "")); err != nil {
			return report(application, err)
		}
		return 0
	}

	res, err := dispatchers.Dispatch(root, commands, flags, help)
	if err != nil {
		return report(application, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(application, err)
	}

	return 0
}

// report prints err (unless the child already spoke for itself) and maps it to an exit status.
func report(application *domain.Application, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		code := ue.GetExitCode()
		application.Logger.Warn("exit=%d kind=%d", code, ue.Kind)
		if !ue.Silent() {
			_, _ = application.ErrOutput.Println(formatError(application.ErrStyler, ue.Error()))
		}
		return code
	}

	application.Logger.Error("%v", err)
	_, _ = application.ErrOutput.Println(formatError(application.ErrStyler, "mk: "+err.Error()))
	return 1
}

// formatError highlights the "mk:" prefix of an error message.
func formatError(st domain.Styler, msg string) string {
	if rest, ok := strings.CutPrefix(msg, "mk:"); ok {
		return st.Error("mk:") + rest
	}
	return msg
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// extractFlagsAndCommands splits argv into flags and positional tokens.
// Value flags written as "--flag value" are normalized to "--flag=value".
// Everything after "--" is positional.
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "--" {
			commands = append(commands, args[i+1:]...)
			break
		}

		if len(a) < 2 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if cli.ValueFlags[a] && i+1 < len(args) {
			flags = append(flags, a+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
