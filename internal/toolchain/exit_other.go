//go:build !unix

package toolchain

import "os"

func signalExitCode(_ *os.ProcessState) int {
	return 1
}
