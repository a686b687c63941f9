package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/footprint-tools/mk/internal/domain"
)

// FakeRunner stands in for the external toolchain. It records every
// invocation and answers with scripted output and exit status.
type FakeRunner struct {
	mu    sync.Mutex
	calls [][]string

	// ExitCode is returned for every call.
	ExitCode int
	// Stdout and Stderr are written to the invocation's streams.
	Stdout string
	Stderr string
	// Err simulates a launch failure when set.
	Err error
}

// Run records the argv, writes the scripted output and returns the scripted status.
func (f *FakeRunner) Run(_ context.Context, inv domain.Invocation) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), inv.Args...))
	f.mu.Unlock()

	if f.Err != nil {
		return f.ExitCode, f.Err
	}
	writeIfSet(inv.Stdout, f.Stdout)
	writeIfSet(inv.Stderr, f.Stderr)
	return f.ExitCode, nil
}

// Calls returns the argv of every invocation so far.
func (f *FakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

func writeIfSet(w io.Writer, s string) {
	if w == nil || s == "" {
		return
	}
	_, _ = io.WriteString(w, s)
}

// Verify FakeRunner implements domain.Runner
var _ domain.Runner = (*FakeRunner)(nil)
