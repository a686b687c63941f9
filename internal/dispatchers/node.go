package dispatchers

type CommandFunc func(args []string, flags *ParsedFlags) error

type Resolution struct {
	Node    *DispatchNode
	Args    []string
	Flags   *ParsedFlags
	Execute CommandFunc
}

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Choices     []string // closed set of values, offered by shell completion
	Description string
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
