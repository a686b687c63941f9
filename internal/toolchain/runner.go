// Package toolchain runs the external commands bound to targets.
//
// ExecRunner hands the child the caller's streams directly; nothing is
// buffered or rewritten. A child that exits non-zero is not an error here:
// its status is returned as the exit code. Only a failure to start the
// child produces an error, paired with ExitLaunchFailure.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/footprint-tools/mk/internal/domain"
)

// ExitLaunchFailure is reported when the executable is missing or cannot be started.
const ExitLaunchFailure = 127

// ExecRunner runs invocations as child processes.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the child, waits for it, and returns its exit status.
func (r *ExecRunner) Run(ctx context.Context, inv domain.Invocation) (int, error) {
	if len(inv.Args) == 0 {
		return ExitLaunchFailure, errors.New("toolchain: empty invocation")
	}

	path, err := exec.LookPath(inv.Args[0])
	if err != nil {
		return ExitLaunchFailure, fmt.Errorf("%s: %w", inv.Args[0], err)
	}

	cmd := exec.CommandContext(ctx, path, inv.Args[1:]...)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	// mk stays alive while the child runs and relays SIGINT/SIGTERM to it.
	// The child decides how to end; its status is what we report.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return ExitLaunchFailure, fmt.Errorf("start %s: %w", inv.Args[0], err)
	}

	done := make(chan struct{})
	go forwardSignals(cmd.Process, sigs, done)

	err = cmd.Wait()
	close(done)
	return exitStatus(err)
}

// forwardSignals relays every signal received on sigs to p until done is closed.
func forwardSignals(p *os.Process, sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-sigs:
			_ = p.Signal(sig)
		case <-done:
			return
		}
	}
}

func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code >= 0 {
			return code, nil
		}
		return signalExitCode(ee.ProcessState), nil
	}

	return 1, fmt.Errorf("wait: %w", err)
}

// DryRunner prints each invocation instead of running it.
type DryRunner struct {
	out io.Writer
}

// NewDryRunner creates a runner that traces to out.
func NewDryRunner(out io.Writer) *DryRunner {
	return &DryRunner{out: out}
}

// Run writes "+ <argv>" and reports success.
func (r *DryRunner) Run(_ context.Context, inv domain.Invocation) (int, error) {
	if _, err := fmt.Fprintf(r.out, "+ %s\n", Trace(inv.Args)); err != nil {
		return 1, err
	}
	return 0, nil
}

// Verify runners implement domain.Runner
var _ domain.Runner = (*ExecRunner)(nil)
var _ domain.Runner = (*DryRunner)(nil)
