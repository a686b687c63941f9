package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryBuild    // Producing artifacts
	CategoryMaintain // Keeping the tree tidy: fmt, clean
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryBuild:
		return "build"
	case CategoryMaintain:
		return "maintain the working tree"
	default:
		return "other targets"
	}
}

var categoryOrder = []CommandCategory{
	CategoryBuild,
	CategoryMaintain,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
