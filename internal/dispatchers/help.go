package dispatchers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/footprint-tools/mk/internal/domain"
)

// HelpOutput is where help text goes and how it is styled.
type HelpOutput struct {
	Out    io.Writer
	Styler domain.Styler
}

// targetDisplayOrder defines explicit ordering within categories.
// Targets not listed appear alphabetically after listed ones.
var targetDisplayOrder = map[string]int{
	"build": 1,
	"fmt":   1,
	"clean": 2,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(st domain.Styler, usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return st.Info(cmd)
	}
	return st.Info(cmd) + " " + st.Muted(rest)
}

func sortTargets(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		orderI, hasI := targetDisplayOrder[nodes[i].Name]
		orderJ, hasJ := targetDisplayOrder[nodes[j].Name]
		if hasI && hasJ && orderI != orderJ {
			return orderI < orderJ
		}
		if hasI != hasJ {
			return hasI
		}
		return nodes[i].Name < nodes[j].Name
	})
}

// HelpAction generates help output for the root or a single target.
func HelpAction(node *DispatchNode, root *DispatchNode, help HelpOutput) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		st := help.Styler
		var out bytes.Buffer

		if node == root {
			out.WriteString(root.Name)
			out.WriteString(" - ")
			out.WriteString(node.Summary)
			out.WriteString("\n\n")

			out.WriteString(st.Header("USAGE"))
			out.WriteString("\n   ")
			out.WriteString(formatUsage(st, node.Usage))
			out.WriteString("\n\n")

			grouped := make(map[CommandCategory][]*DispatchNode)
			for _, child := range root.Children {
				grouped[child.Category] = append(grouped[child.Category], child)
			}

			for _, cat := range categoryOrder {
				nodes := grouped[cat]
				if len(nodes) == 0 {
					continue
				}

				out.WriteString(st.Header(cat.String()))
				out.WriteString("\n")

				sortTargets(nodes)
				for _, n := range nodes {
					fmt.Fprintf(&out, "   %s  %s\n", st.Info(fmt.Sprintf("%-8s", n.Name)), n.Summary)
				}
				out.WriteString("\n")
			}

			if len(node.Flags) > 0 {
				out.WriteString(st.Header("FLAGS"))
				out.WriteString("\n")
				for _, f := range node.Flags {
					name := strings.Join(f.Names, ", ")
					if f.ValueHint != "" {
						name = name + "=" + f.ValueHint
					}
					fmt.Fprintf(&out, "   %s  %s\n", st.Info(fmt.Sprintf("%-22s", name)), f.Description)
				}
				out.WriteString("\n")
			}

			fmt.Fprintf(&out, "See '%s <target> --help' for the command a target runs.\n", root.Name)
		} else {
			out.WriteString(strings.Join(node.Path, " "))
			if node.Summary != "" {
				out.WriteString(" - ")
				out.WriteString(node.Summary)
			}
			out.WriteString("\n\n")

			out.WriteString(st.Header("USAGE"))
			out.WriteString("\n   ")
			out.WriteString(formatUsage(st, node.Usage))
			out.WriteString("\n\n")

			if node.Description != "" {
				out.WriteString(st.Header("RUNS"))
				out.WriteString("\n   ")
				out.WriteString(node.Description)
				out.WriteString("\n")
			}
		}

		_, err := help.Out.Write(out.Bytes())
		return err
	}
}
