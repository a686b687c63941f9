package completions

import (
	"fmt"
	"strings"
)

// GenerateBash renders a script for bash's programmable completion.
func GenerateBash(spec Spec) string {
	var b strings.Builder
	bin := spec.Binary
	fn := "_" + bin + "_completions"

	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "# Load with: %s\n\n", SourceInstructions(ShellBash, bin))

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	var valueCases []string
	for _, f := range spec.Flags {
		if !f.HasValue {
			continue
		}
		reply := `COMPREPLY=( $(compgen -f -- "$cur") )`
		if len(f.Choices) > 0 {
			reply = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "$cur") )`, strings.Join(f.Choices, " "))
		}
		valueCases = append(valueCases, fmt.Sprintf("        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(f.Names, "|"), reply))
	}
	if len(valueCases) > 0 {
		b.WriteString("    case \"$prev\" in\n")
		for _, c := range valueCases {
			b.WriteString(c)
		}
		b.WriteString("    esac\n\n")
	}

	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(flagNames(spec), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(targetNames(spec), " "))
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

// GenerateZsh renders a #compdef script that also works when eval'd.
func GenerateZsh(spec Spec) string {
	var b strings.Builder
	bin := spec.Binary

	fmt.Fprintf(&b, "#compdef %s\n", bin)
	fmt.Fprintf(&b, "# Load with: %s\n\n", SourceInstructions(ShellZsh, bin))

	fmt.Fprintf(&b, "_%s_targets() {\n", bin)
	b.WriteString("    local -a targets\n")
	b.WriteString("    targets=(\n")
	for _, t := range spec.Targets {
		fmt.Fprintf(&b, "        '%s:%s'\n", t.Name, zshQuote(t.Summary))
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'target' targets\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    _arguments \\\n")
	for _, f := range spec.Flags {
		desc := zshQuote(f.Description)
		for _, name := range f.Names {
			switch {
			case !f.HasValue:
				fmt.Fprintf(&b, "        '%s[%s]' \\\n", name, desc)
			case len(f.Choices) > 0:
				fmt.Fprintf(&b, "        '%s=[%s]:value:(%s)' \\\n", name, desc, strings.Join(f.Choices, " "))
			default:
				fmt.Fprintf(&b, "        '%s=[%s]:path:_files' \\\n", name, desc)
			}
		}
	}
	fmt.Fprintf(&b, "        '1: :_%s_targets'\n", bin)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "if [ \"$funcstack[1]\" = \"_%s\" ]; then\n", bin)
	fmt.Fprintf(&b, "    _%s \"$@\"\n", bin)
	b.WriteString("else\n")
	fmt.Fprintf(&b, "    compdef _%s %s\n", bin, bin)
	b.WriteString("fi\n")
	return b.String()
}

// GenerateFish renders complete(1) commands for fish.
func GenerateFish(spec Spec) string {
	var b strings.Builder
	bin := spec.Binary

	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "# Load with: %s\n\n", SourceInstructions(ShellFish, bin))

	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, t := range spec.Targets {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			bin, t.Name, fishQuote(t.Summary))
	}

	for _, f := range spec.Flags {
		var opts []string
		for _, name := range f.Names {
			if long, ok := strings.CutPrefix(name, "--"); ok {
				opts = append(opts, "-l "+long)
			} else {
				opts = append(opts, "-s "+strings.TrimPrefix(name, "-"))
			}
		}
		switch {
		case len(f.Choices) > 0:
			opts = append(opts, fmt.Sprintf("-x -a '%s'", strings.Join(f.Choices, " ")))
		case f.HasValue:
			opts = append(opts, "-r -F")
		}
		fmt.Fprintf(&b, "complete -c %s %s -d '%s'\n", bin, strings.Join(opts, " "), fishQuote(f.Description))
	}

	return b.String()
}

// zshQuote escapes text placed inside a single-quoted _arguments spec.
func zshQuote(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return r.Replace(s)
}
