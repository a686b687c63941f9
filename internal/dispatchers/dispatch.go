package dispatchers

import (
	"strings"

	"github.com/footprint-tools/mk/internal/usage"
)

const defaultSuggestionsCount = 3

// Dispatch resolves tokens against the target tree. Exactly one token
// naming a child of root is accepted; anything else is a usage error and
// no action is returned. With --help the resolution renders help to help.Out.
// Flags are validated before anything else, help included.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags, help HelpOutput) (Resolution, error) {
	if err := ValidateFlags(root, flags); err != nil {
		return Resolution{}, err
	}

	if hasHelpFlag(flags) {
		return dispatchHelp(root, tokens, flags, help)
	}

	if len(tokens) == 0 {
		return Resolution{}, usage.UnknownTarget("", TargetNames(root))
	}

	target, err := lookupTarget(root, tokens[0])
	if err != nil {
		return Resolution{}, err
	}

	if len(tokens) > 1 {
		return Resolution{}, usage.UnexpectedArgument(tokens[1])
	}

	return Resolution{
		Node:    target,
		Args:    nil,
		Flags:   flags,
		Execute: target.Action,
	}, nil
}

func dispatchHelp(root *DispatchNode, tokens []string, flags *ParsedFlags, help HelpOutput) (Resolution, error) {
	node := root
	if len(tokens) > 0 {
		target, err := lookupTarget(root, tokens[0])
		if err != nil {
			return Resolution{}, err
		}
		node = target
	}

	return Resolution{
		Node:    node,
		Flags:   flags,
		Execute: HelpAction(node, root, help),
	}, nil
}

func lookupTarget(root *DispatchNode, name string) (*DispatchNode, error) {
	if child, ok := root.Children[name]; ok && child.Action != nil {
		return child, nil
	}
	suggestions := FindSimilarTargets(name, root, defaultSuggestionsCount)
	return nil, usage.UnknownTarget(name, TargetNames(root), suggestions...)
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

// ValidateFlags checks every flag against the flags root declares. A flag
// declared with a value hint must carry a value.
func ValidateFlags(root *DispatchNode, flags *ParsedFlags) error {
	return validateFlags(flags, validFlagsForNode(root))
}

func validFlagsForNode(node *DispatchNode) map[string]FlagDescriptor {
	valid := make(map[string]FlagDescriptor)

	for _, f := range node.Flags {
		for _, name := range f.Names {
			valid[name] = f
		}
	}

	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]FlagDescriptor) error {
	for _, f := range flags.Raw() {
		// Extract the flag name (strip value after =)
		name, value, hasValue := strings.Cut(f, "=")
		desc, ok := valid[name]
		if !ok {
			return usage.InvalidFlag(f)
		}
		if desc.ValueHint != "" && (!hasValue || value == "") {
			return usage.MissingFlagValue(name, desc.ValueHint)
		}
	}
	return nil
}
