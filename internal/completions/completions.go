// Package completions generates shell completion scripts from the dispatch tree.
package completions

import (
	"fmt"
	"io"
	"sort"

	"github.com/footprint-tools/mk/internal/dispatchers"
)

// Spec is everything a shell needs to complete one binary: its target
// names and its flags.
type Spec struct {
	Binary  string
	Targets []TargetInfo
	Flags   []FlagInfo
}

// TargetInfo represents a target extracted from the dispatch tree
type TargetInfo struct {
	Name    string
	Summary string
}

// FlagInfo represents a root flag
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
	Choices     []string
}

// Extract walks the dispatch tree and collects targets (sorted by name) and flags.
func Extract(root *dispatchers.DispatchNode) Spec {
	spec := Spec{Binary: root.Name}

	for name, child := range root.Children {
		if child.Action == nil {
			continue
		}
		spec.Targets = append(spec.Targets, TargetInfo{Name: name, Summary: child.Summary})
	}
	sort.Slice(spec.Targets, func(i, j int) bool {
		return spec.Targets[i].Name < spec.Targets[j].Name
	})

	for _, f := range root.Flags {
		spec.Flags = append(spec.Flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
			Choices:     f.Choices,
		})
	}

	return spec
}

// Print writes the completion script for shell to w.
func Print(w io.Writer, root *dispatchers.DispatchNode, shell Shell) error {
	if root == nil {
		return fmt.Errorf("no dispatch tree")
	}

	script := generateScript(shell, Extract(root))
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

func generateScript(shell Shell, spec Spec) string {
	switch shell {
	case ShellBash:
		return GenerateBash(spec)
	case ShellZsh:
		return GenerateZsh(spec)
	case ShellFish:
		return GenerateFish(spec)
	default:
		return ""
	}
}

func targetNames(spec Spec) []string {
	names := make([]string, len(spec.Targets))
	for i, t := range spec.Targets {
		names[i] = t.Name
	}
	return names
}

func flagNames(spec Spec) []string {
	var names []string
	for _, f := range spec.Flags {
		names = append(names, f.Names...)
	}
	return names
}
