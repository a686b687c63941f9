package completions

import "fmt"

// Shell names a supported completion dialect.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells returns the supported shells.
func Shells() []Shell {
	return []Shell{ShellBash, ShellZsh, ShellFish}
}

// ParseShell maps a shell name to a Shell.
func ParseShell(name string) (Shell, bool) {
	for _, s := range Shells() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// SourceInstructions returns the line that loads the script into a running shell.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s --completions=%s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s --completions=fish | source`, bin)
	default:
		return ""
	}
}
