package actions

import (
	"github.com/footprint-tools/mk/internal/completions"
	"github.com/footprint-tools/mk/internal/dispatchers"
	"github.com/footprint-tools/mk/internal/domain"
	"github.com/footprint-tools/mk/internal/usage"
)

// PrintCompletions writes the completion script for shellName to the
// application's stdout. An unknown shell is an invalid flag value.
func PrintCompletions(app *domain.Application, root *dispatchers.DispatchNode, shellName string) error {
	shell, ok := completions.ParseShell(shellName)
	if !ok {
		return usage.InvalidFlag("--completions=" + shellName)
	}

	app.Logger.Debug("completions shell=%s", shell)
	return completions.Print(app.Output, root, shell)
}
