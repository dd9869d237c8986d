package completion

import "strings"

// splitPath splits a space-joined command path into its parent path and
// final name. Top-level commands have an empty parent.
func splitPath(path string) (parent, name string) {
	if i := strings.LastIndex(path, " "); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

// childCommands groups data.Commands by parent path. The returned order
// starts with the root path "" and then follows the first appearance of
// each parent, so generators emit sections in declaration order.
func childCommands(data Data) (order []string, children map[string][]string) {
	children = make(map[string][]string)
	order = []string{""}
	for _, cmd := range data.Commands {
		parent, name := splitPath(cmd)
		if _, seen := children[parent]; !seen && parent != "" {
			order = append(order, parent)
		}
		children[parent] = append(children[parent], name)
	}
	return order, children
}

// longToken builds the full long-form token of a flag, with a trailing
// '=' when the flag takes a value.
func longToken(data Data, flag Flag) string {
	token := data.Prefix + flag.Name
	if flag.TakesValue {
		token += "="
	}
	return token
}

// negationToken builds the "--no-name" token of a negatable flag.
func negationToken(data Data, flag Flag) string {
	return data.Prefix + "no-" + flag.Name
}

// shortToken builds the full short-form token of a flag, or "" when the
// flag has no short name or the tree has no short prefix.
func shortToken(data Data, flag Flag) string {
	if flag.Short == "" || data.ShortPrefix == "" {
		return ""
	}
	return data.ShortPrefix + flag.Short
}

// prefixPattern builds a bash/zsh case pattern matching any option token.
func prefixPattern(data Data) string {
	pattern := data.Prefix + "*"
	if data.ShortPrefix != "" && data.ShortPrefix != data.Prefix {
		pattern += "|" + data.ShortPrefix + "*"
	}
	return pattern
}

// escapeBash makes s safe inside a single-quoted bash string.
func escapeBash(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// escapeZsh makes s safe inside a single-quoted zsh optspec description.
func escapeZsh(s string) string {
	return strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`).Replace(s)
}

// escapeZshValue makes s safe as one word of an _arguments value list.
func escapeZshValue(s string) string {
	return strings.NewReplacer("'", `'\''`, ":", `\:`, " ", `\ `).Replace(s)
}

// escapeFish makes s safe inside a single-quoted fish string.
func escapeFish(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// escapePowerShell makes s safe inside a single-quoted PowerShell string.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
