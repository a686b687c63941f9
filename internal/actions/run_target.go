package actions

import (
	"context"
	"time"

	"github.com/footprint-tools/mk/internal/dispatchers"
	"github.com/footprint-tools/mk/internal/domain"
	"github.com/footprint-tools/mk/internal/targets"
	"github.com/footprint-tools/mk/internal/toolchain"
	"github.com/footprint-tools/mk/internal/usage"
)

type actionDependencies struct {
	Now func() time.Time
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Now: time.Now,
	}
}

// RunTarget returns the action bound to a target: run its command once and
// turn the child's exit status into the dispatcher's.
func RunTarget(app *domain.Application, t targets.Target) dispatchers.CommandFunc {
	return func(_ []string, _ *dispatchers.ParsedFlags) error {
		return runTarget(context.Background(), app, t, defaultDeps())
	}
}

func runTarget(ctx context.Context, app *domain.Application, t targets.Target, deps actionDependencies) error {
	argv, err := toolchain.Split(t.Command)
	if err != nil {
		app.Logger.Error("target=%s: %v", t.Name, err)
		return usage.ToolNotLaunched(toolchain.ExitLaunchFailure, err)
	}

	app.Logger.Info("target=%s exec %s", t.Name, toolchain.Trace(argv))

	start := deps.Now()
	code, err := app.Runner.Run(ctx, domain.Invocation{
		Args:   argv,
		Stdin:  app.Stdin,
		Stdout: app.Stdout,
		Stderr: app.Stderr,
	})
	elapsed := deps.Now().Sub(start)

	if err != nil {
		app.Logger.Error("target=%s launch failed after %s: %v", t.Name, elapsed, err)
		return usage.ToolNotLaunched(code, err)
	}

	if code != 0 {
		app.Logger.Warn("target=%s exit=%d elapsed=%s", t.Name, code, elapsed)
		return usage.ToolFailed(code)
	}

	app.Logger.Info("target=%s exit=0 elapsed=%s", t.Name, elapsed)
	return nil
}
