package toolchain

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// Trace renders argv the way a shell trace would.
func Trace(args []string) string {
	return strings.Join(args, " ")
}

// noExpand resolves every parameter to the empty string. Target command
// lines never reference the caller's environment.
func noExpand(string) string { return "" }

// Split breaks a command line into argv using POSIX shell quoting rules.
func Split(line string) ([]string, error) {
	fields, err := shell.Fields(line, noExpand)
	if err != nil {
		return nil, fmt.Errorf("parse command line %q: %w", line, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse command line %q: empty command", line)
	}
	return fields, nil
}
