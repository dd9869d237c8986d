package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator emits a zsh completion script built on _arguments. Valued
// options use the "=-" form so the value is completed inside the same
// word, matching the "--name=value" syntax.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

function __%[1]s_completion() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

`, programName))

	rootSpecs := make([]string, 0, len(data.Flags)+2)
	for _, flag := range data.Flags {
		rootSpecs = append(rootSpecs, zshFlagSpecs(data, flag)...)
	}

	if len(data.Commands) == 0 {
		script.WriteString("    _arguments")
		if len(rootSpecs) > 0 {
			script.WriteString(" \\\n        " + strings.Join(rootSpecs, " \\\n        "))
		}
		script.WriteString(fmt.Sprintf(`
}

__%[1]s_completion "$@"
`, programName))
		return script.String()
	}

	rootSpecs = append(rootSpecs, "'1: :->command'", "'*::arg:->args'")
	script.WriteString("    _arguments -C \\\n        " +
		strings.Join(rootSpecs, " \\\n        "))

	order, children := childCommands(data)

	script.WriteString(`

    case $state in
        command)
            _values 'commands' \
                ` + strings.Join(zshCommandValues(data, "", children[""]), " \\\n                "))
	script.WriteString(`
            ;;
        args)
            # Rebuild the subcommand path from the words typed so far.
            local cmd="${words[1]}" i
            for ((i = 2; i < CURRENT; i++)); do
                case "${words[i]}" in
                    --) break ;;
                    ` + prefixPattern(data) + `) ;;
                    *) cmd="$cmd ${words[i]}" ;;
                esac
            done
            case "$cmd" in`)

	// Case arms are needed for every path that completes something:
	// parents (for their subcommands) and declared commands with flags.
	paths := order
	seen := make(map[string]bool, len(order))
	for _, path := range order {
		seen[path] = true
	}
	for _, cmd := range data.Commands {
		if !seen[cmd] {
			seen[cmd] = true
			paths = append(paths, cmd)
		}
	}

	for _, parent := range paths {
		if parent == "" {
			continue
		}
		flags := data.CommandFlags[parent]
		kids := children[parent]
		if len(flags) == 0 && len(kids) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
                '%s')`, strings.ReplaceAll(parent, "'", `'\''`)))
		if len(flags) > 0 {
			specs := make([]string, 0, len(flags))
			for _, flag := range flags {
				specs = append(specs, zshFlagSpecs(data, flag)...)
			}
			script.WriteString("\n                    _arguments \\\n                        " +
				strings.Join(specs, " \\\n                        "))
		}
		if len(kids) > 0 {
			script.WriteString("\n                    _values 'commands' \\\n                        " +
				strings.Join(zshCommandValues(data, parent, kids), " \\\n                        "))
		}
		script.WriteString(`
                    ;;`)
	}

	// Leaf commands without options still appear above in _values, the
	// case only needs arms for paths that complete something.
	script.WriteString(fmt.Sprintf(`
            esac
            ;;
    esac
}

__%[1]s_completion "$@"
`, programName))

	return script.String()
}

// zshFlagSpecs renders the _arguments specs of one flag: the long form,
// the "--no-name" form when negatable and the short form when present.
func zshFlagSpecs(data Data, flag Flag) []string {
	desc := escapeZsh(flag.Description)
	specs := make([]string, 0, 3)
	if flag.TakesValue {
		action := " "
		if len(flag.Values) > 0 {
			words := make([]string, 0, len(flag.Values))
			for _, value := range flag.Values {
				words = append(words, escapeZshValue(value))
			}
			action = "(" + strings.Join(words, " ") + ")"
		}
		specs = append(specs, fmt.Sprintf("'*%s%s=-[%s]:value:%s'",
			data.Prefix, flag.Name, desc, action))
		if token := shortToken(data, flag); token != "" {
			specs = append(specs, fmt.Sprintf("'*%s-[%s]:value:%s'", token, desc, action))
		}
		return specs
	}
	specs = append(specs, fmt.Sprintf("'*%s%s[%s]'", data.Prefix, flag.Name, desc))
	if flag.Negatable {
		specs = append(specs, fmt.Sprintf("'*%sno-%s[%s]'", data.Prefix, flag.Name, desc))
	}
	if token := shortToken(data, flag); token != "" {
		specs = append(specs, fmt.Sprintf("'*%s[%s]'", token, desc))
	}
	return specs
}

// zshCommandValues renders _values entries for the children of a path.
func zshCommandValues(data Data, parent string, kids []string) []string {
	values := make([]string, 0, len(kids))
	for _, kid := range kids {
		path := kid
		if parent != "" {
			path = parent + " " + kid
		}
		desc := data.CommandDescriptions[path]
		if desc == "" {
			values = append(values, fmt.Sprintf("'%s'", kid))
			continue
		}
		values = append(values, fmt.Sprintf("'%s[%s]'", kid, escapeZsh(desc)))
	}
	return values
}
