package domain

import (
	"context"
	"io"
)

// Invocation describes one external process. Args[0] is the executable;
// it is resolved through PATH. The child inherits the working directory
// and environment of the current process.
type Invocation struct {
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes external commands.
type Runner interface {
	// Run executes the invocation and blocks until it finishes.
	// A non-zero exit is reported through the code, not the error;
	// the error is set only when the process could not be started.
	Run(ctx context.Context, inv Invocation) (int, error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
//
// Stdin, Stdout and Stderr are the raw process streams handed to child
// processes as-is, so a child sees the real terminal. Output and ErrOutput
// wrap the same streams for text mk prints itself; Styler styles Output and
// ErrStyler styles ErrOutput.
type Application struct {
	RunID     string
	Runner    Runner
	Logger    Logger
	Styler    Styler
	ErrStyler Styler
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Output    OutputWriter
	ErrOutput OutputWriter
}
