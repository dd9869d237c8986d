package completion

import (
	"fmt"
	"strings"
)

// BashGenerator emits a bash completion function. Option values are
// completed after the equals sign of "--name=value" through
// _init_completion -s, which splits the word under the cursor at '='.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	pattern := prefixPattern(data)

	script.WriteString(fmt.Sprintf(`#!/usr/bin/env bash

function __%[1]s_completion() {
    local cur prev words cword split
    _init_completion -s || return

    # Subcommand path typed so far, option tokens skipped.
    local cmd="" i
    for ((i = 1; i < cword; i++)); do
        case "${words[i]}" in
            --) break ;;
            %[2]s) ;;
            *)
                if [[ -z "$cmd" ]]; then
                    cmd="${words[i]}"
                else
                    cmd="$cmd ${words[i]}"
                fi
                ;;
        esac
    done
`, programName, pattern))

	g.writeValues(&script, data)
	g.writeFlags(&script, data, pattern)
	g.writeCommands(&script, data)

	script.WriteString(fmt.Sprintf(`}

complete -F __%[1]s_completion %[1]s
`, programName))

	return script.String()
}

func (g *BashGenerator) writeValues(script *strings.Builder, data Data) {
	type valuedFlag struct {
		path string
		flag Flag
	}
	var valued []valuedFlag
	for _, flag := range data.Flags {
		if len(flag.Values) > 0 {
			valued = append(valued, valuedFlag{"", flag})
		}
	}
	for _, cmd := range data.Commands {
		for _, flag := range data.CommandFlags[cmd] {
			if len(flag.Values) > 0 {
				valued = append(valued, valuedFlag{cmd, flag})
			}
		}
	}
	if len(valued) == 0 {
		return
	}

	script.WriteString(`
    # Values for "--name=value" options. When the cursor sits after the
    # equals sign, prev holds the option and cur the partial value.
    if [[ "$split" == true ]]; then
        local values=() v
        case "$cmd@$prev" in`)
	for _, vf := range valued {
		words := make([]string, 0, len(vf.flag.Values))
		for _, value := range vf.flag.Values {
			words = append(words, "'"+escapeBash(value)+"'")
		}
		script.WriteString(fmt.Sprintf(`
            "%s@%s%s") values=(%s) ;;`,
			vf.path, data.Prefix, vf.flag.Name, strings.Join(words, " ")))
	}
	script.WriteString(`
        esac
        # Values may contain glob characters, match them literally.
        for v in "${values[@]}"; do
            if [[ "$v" == "$cur"* ]]; then
                COMPREPLY+=("$v")
            fi
        done
        return
    fi
`)
}

func (g *BashGenerator) writeFlags(script *strings.Builder, data Data, pattern string) {
	writeCase := func(path string, flags []Flag) {
		if len(flags) == 0 {
			return
		}
		script.WriteString(fmt.Sprintf(`
        "%s")
            flags=(`, path))
		for _, flag := range flags {
			desc := escapeBash(flag.Description)
			script.WriteString(fmt.Sprintf(`
                '%s[%s]'`, longToken(data, flag), desc))
			if flag.Negatable {
				script.WriteString(fmt.Sprintf(`
                '%s[%s]'`, negationToken(data, flag), desc))
			}
			if token := shortToken(data, flag); token != "" {
				script.WriteString(fmt.Sprintf(`
                '%s[%s]'`, token, desc))
			}
		}
		script.WriteString(`
            )
            ;;`)
	}

	script.WriteString(`
    # Options of the current subcommand. The bracketed descriptions are
    # stripped before the tokens are offered.
    local flags=()
    case "$cmd" in`)
	writeCase("", data.Flags)
	for _, cmd := range data.Commands {
		writeCase(cmd, data.CommandFlags[cmd])
	}
	script.WriteString(fmt.Sprintf(`
    esac
    case "$cur" in
        %s)
            COMPREPLY=($(compgen -W "${flags[*]%%%%[*}" -- "$cur"))
            local r
            for r in "${COMPREPLY[@]}"; do
                if [[ "$r" == *= ]]; then
                    compopt -o nospace
                    break
                fi
            done
            return
            ;;
    esac
`, pattern))
}

func (g *BashGenerator) writeCommands(script *strings.Builder, data Data) {
	order, children := childCommands(data)
	if len(data.Commands) == 0 {
		return
	}

	script.WriteString(`
    # Subcommands reachable from the current path.
    local commands=()
    case "$cmd" in`)
	for _, parent := range order {
		kids := children[parent]
		if len(kids) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        "%s") commands=(%s) ;;`, parent, strings.Join(kids, " ")))
	}
	script.WriteString(`
    esac
    if ((${#commands[@]})); then
        COMPREPLY+=($(compgen -W "${commands[*]}" -- "$cur"))
    fi
`)
}
