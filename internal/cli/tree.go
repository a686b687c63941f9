package cli

import (
	"github.com/footprint-tools/mk/internal/actions"
	"github.com/footprint-tools/mk/internal/dispatchers"
	"github.com/footprint-tools/mk/internal/domain"
	"github.com/footprint-tools/mk/internal/targets"
)

var targetCategories = map[string]dispatchers.CommandCategory{
	"build": dispatchers.CategoryBuild,
	"fmt":   dispatchers.CategoryMaintain,
	"clean": dispatchers.CategoryMaintain,
}

// BuildTree creates the dispatch tree: the root plus one node per target,
// each bound to an action that runs the target's command through app.
func BuildTree(app *domain.Application) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "mk",
		Summary: "Run build, fmt and clean through the cargo toolchain",
		Usage:   "mk <target> [flags]",
		Flags:   RootFlags,
	})

	for _, t := range targets.All() {
		dispatchers.Target(dispatchers.TargetSpec{
			Name:        t.Name,
			Parent:      root,
			Summary:     t.Summary,
			Description: t.Command,
			Usage:       "mk " + t.Name,
			Action:      actions.RunTarget(app, t),
			Category:    targetCategories[t.Name],
		})
	}

	return root
}
