// Package targets holds the closed set of build targets mk knows about.
//
// The table is fixed at compile time. Accessors hand out copies, so nothing
// outside this package can add, remove or rewrite a target.
package targets

import "sort"

// Target binds a short name to the external command line it runs.
type Target struct {
	Name    string
	Command string
	Summary string
}

var table = []Target{
	{
		Name:    "build",
		Command: "cargo build --release",
		Summary: "Compile the project with optimizations",
	},
	{
		Name:    "fmt",
		Command: "cargo fmt -v",
		Summary: "Format sources in place (verbose)",
	},
	{
		Name:    "clean",
		Command: "cargo clean",
		Summary: "Remove build artifacts",
	},
}

// All returns every target in declaration order.
func All() []Target {
	out := make([]Target, len(table))
	copy(out, table)
	return out
}

// Lookup returns the target with the given name.
func Lookup(name string) (Target, bool) {
	for _, t := range table {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// Names returns the target names sorted alphabetically.
func Names() []string {
	names := make([]string, len(table))
	for i, t := range table {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}
