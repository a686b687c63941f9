package app

import (
	"io"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/footprint-tools/mk/internal/domain"
	"github.com/footprint-tools/mk/internal/log"
	"github.com/footprint-tools/mk/internal/toolchain"
	"github.com/footprint-tools/mk/internal/ui"
	"github.com/footprint-tools/mk/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Execution
	DryRun bool
	Runner domain.Runner // overrides the exec/dry-run choice when set

	// Log options
	LogFile  string // empty disables logging
	LogLevel log.Level

	// Style options, decided per stream
	StyleEnabled    bool        // stdout
	ErrStyleEnabled bool        // stderr
	DarkBackground  func() bool // nil queries the terminal; called at most once, on first styled render

	// Process streams; nil selects the os equivalents
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{
		LogLevel: log.LevelDebug,
	}
}

// New creates a new Application with all dependencies wired up.
// A log file that cannot be opened is reported through the returned
// warning and replaced by a NopLogger; it never stops a target from running.
func New(opts Options) (app *domain.Application, warning error) {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runID := uuid.NewString()

	var logger domain.Logger = log.NopLogger{}
	if opts.LogFile != "" {
		l, err := log.New(opts.LogFile, opts.LogLevel)
		if err != nil {
			warning = err
		} else {
			l.SetPrefix("run=" + runID)
			logger = l
		}
	}

	runner := opts.Runner
	if runner == nil {
		if opts.DryRun {
			runner = toolchain.NewDryRunner(stderr)
		} else {
			runner = toolchain.NewExecRunner()
		}
	}

	dark := opts.DarkBackground
	if dark == nil {
		dark = style.IsDarkBackground
	}
	palette := sync.OnceValue(func() style.ColorConfig {
		return style.Palette(dark())
	})

	var styler, errStyler domain.Styler = style.NopStyler{}, style.NopStyler{}
	if opts.StyleEnabled {
		styler = style.NewDeferred(true, stdout, palette)
	}
	if opts.ErrStyleEnabled {
		errStyler = style.NewDeferred(true, stderr, palette)
	}

	return &domain.Application{
		RunID:     runID,
		Runner:    runner,
		Logger:    logger,
		Styler:    styler,
		ErrStyler: errStyler,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Output:    ui.NewWriterTo(stdout),
		ErrOutput: ui.NewWriterTo(stderr),
	}, warning
}

// NewForTesting creates an Application suitable for testing.
// Uses the given runner and streams, NopLogger, and no styling.
func NewForTesting(runner domain.Runner, stdout, stderr io.Writer) *domain.Application {
	return &domain.Application{
		RunID:     "test",
		Runner:    runner,
		Logger:    log.NopLogger{},
		Styler:    style.NopStyler{},
		ErrStyler: style.NopStyler{},
		Stdin:     nil,
		Stdout:    stdout,
		Stderr:    stderr,
		Output:    ui.NewWriterTo(stdout),
		ErrOutput: ui.NewWriterTo(stderr),
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app == nil || app.Logger == nil {
		return nil
	}
	return app.Logger.Close()
}
