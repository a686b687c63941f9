//go:build unix

package toolchain

import (
	"os"
	"syscall"
)

// signalExitCode follows the shell convention of 128+N for a child killed by signal N.
func signalExitCode(ps *os.ProcessState) int {
	if ps == nil {
		return 1
	}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
