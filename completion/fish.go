package completion

import (
	"fmt"
	"strings"
)

// FishGenerator emits fish "complete" commands. Single-character short
// names map to fish's -s flags and longer ones to old-style -o flags.
// Trees built with unconventional prefixes fall back to plain argument
// suggestions, fish cannot declare those as options.
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	// Root options
	for _, flag := range data.Flags {
		writeFishFlag(&script, programName, data, "", flag)
	}

	// Commands, top level first, nested ones gated on their parent.
	order, children := childCommands(data)
	for _, parent := range order {
		kids := children[parent]
		if len(kids) == 0 {
			continue
		}
		condition := "__fish_use_subcommand"
		if parent != "" {
			_, last := splitPath(parent)
			condition = "__fish_seen_subcommand_from " + last
		}
		for _, kid := range kids {
			path := kid
			if parent != "" {
				path = parent + " " + kid
			}
			script.WriteString(fmt.Sprintf(
				"complete -c %s -f -n '%s' -a '%s' -d '%s'\n",
				programName, condition, escapeFish(kid),
				escapeFish(data.CommandDescriptions[path])))
		}
	}

	// Command-specific options
	for _, cmd := range data.Commands {
		flags := data.CommandFlags[cmd]
		if len(flags) == 0 {
			continue
		}
		_, last := splitPath(cmd)
		for _, flag := range flags {
			writeFishFlag(&script, programName, data, last, flag)
		}
	}

	return script.String()
}

func writeFishFlag(script *strings.Builder, programName string, data Data, context string, flag Flag) {
	base := fmt.Sprintf("complete -c %s -f", programName)
	if context != "" {
		base = fmt.Sprintf("%s -n '__fish_seen_subcommand_from %s'", base, context)
	}

	long, short := fishOptions(data, flag)
	if long == "" && short == "" {
		tokens := []string{longToken(data, flag)}
		if flag.Negatable {
			tokens = append(tokens, negationToken(data, flag))
		}
		if token := shortToken(data, flag); token != "" {
			tokens = append(tokens, token)
		}
		script.WriteString(fmt.Sprintf("%s -a '%s' -d '%s'\n",
			base, escapeFish(strings.Join(tokens, " ")), escapeFish(flag.Description)))
		return
	}

	cmd := base
	if long != "" {
		cmd = fmt.Sprintf("%s -l %s", cmd, long)
	}
	if short != "" {
		if len(short) == 1 {
			cmd = fmt.Sprintf("%s -s %s", cmd, short)
		} else {
			cmd = fmt.Sprintf("%s -o %s", cmd, short)
		}
	}
	if flag.TakesValue {
		cmd = fmt.Sprintf("%s -x", cmd)
		if len(flag.Values) > 0 {
			words := make([]string, 0, len(flag.Values))
			for _, value := range flag.Values {
				words = append(words, escapeFish(value))
			}
			cmd = fmt.Sprintf("%s -a '%s'", cmd, strings.Join(words, " "))
		}
	}
	cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(flag.Description))
	script.WriteString(cmd + "\n")

	if flag.Negatable && long != "" {
		script.WriteString(fmt.Sprintf("%s -l no-%s -d '%s'\n",
			base, long, escapeFish(flag.Description)))
	}
}

// fishOptions maps a flag onto fish option declarations. Both results are
// empty when the prefixes are not the conventional dashes.
func fishOptions(data Data, flag Flag) (long, short string) {
	if data.Prefix == "--" {
		long = flag.Name
	}
	if data.ShortPrefix == "-" && flag.Short != "" {
		short = flag.Short
	}
	return long, short
}
