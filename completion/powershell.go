package completion

import (
	"fmt"
	"strings"
)

// PowerShellGenerator emits a Register-ArgumentCompleter block. Native
// completers replace the whole word under the cursor, so values of
// "--name=value" options are offered as complete tokens.
type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	skip := fmt.Sprintf("$words[$i].StartsWith('%s')", escapePowerShell(data.Prefix))
	if data.ShortPrefix != "" && data.ShortPrefix != data.Prefix {
		skip += fmt.Sprintf(" -or $words[$i].StartsWith('%s')", escapePowerShell(data.ShortPrefix))
	}

	script.WriteString(fmt.Sprintf(`using namespace System.Management.Automation

Register-ArgumentCompleter -Native -CommandName %[1]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $words = $commandAst.CommandElements | ForEach-Object { $_.ToString() }
    $cmd = ''
    for ($i = 1; $i -lt $words.Count; $i++) {
        if ($words[$i] -eq $wordToComplete) { continue }
        if ($words[$i] -eq '--') { break }
        if (%[2]s) { continue }
        if ($cmd -eq '') { $cmd = $words[$i] } else { $cmd = "$cmd " + $words[$i] }
    }
`, programName, skip))

	g.writeValues(&script, data)
	g.writeTokens(&script, data)

	script.WriteString(`
    $results | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}

func (g *PowerShellGenerator) writeValues(script *strings.Builder, data Data) {
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
    # Values for "--name=value" options.
    if ($wordToComplete -match '^([^=]+=)') {
        $results = @(
            switch -CaseSensitive ("$cmd@" + $Matches[1]) {`)
	for _, vf := range valued {
		token := longToken(data, vf.flag)
		script.WriteString(fmt.Sprintf(`
                '%s@%s' {`, escapePowerShell(vf.path), escapePowerShell(token)))
		for _, value := range vf.flag.Values {
			script.WriteString("\n                    " +
				psResult(token+value, value, "ParameterValue", vf.flag.Description))
		}
		script.WriteString(`
                }`)
	}
	script.WriteString(`
            }
        )
        $results | Where-Object { $_.CompletionText -like "$wordToComplete*" }
        return
    }
`)
}

func (g *PowerShellGenerator) writeTokens(script *strings.Builder, data Data) {
	_, children := childCommands(data)

	writeArm := func(path string) {
		flags := data.Flags
		if path != "" {
			flags = data.CommandFlags[path]
		}
		kids := children[path]
		if len(flags) == 0 && len(kids) == 0 {
			return
		}
		script.WriteString(fmt.Sprintf(`
            '%s' {`, escapePowerShell(path)))
		for _, flag := range flags {
			script.WriteString("\n                " +
				psResult(longToken(data, flag), flag.Name, "ParameterName", flag.Description))
			if flag.Negatable {
				script.WriteString("\n                " +
					psResult(negationToken(data, flag), "no-"+flag.Name, "ParameterName", flag.Description))
			}
			if token := shortToken(data, flag); token != "" {
				script.WriteString("\n                " +
					psResult(token, flag.Short, "ParameterName", flag.Description))
			}
		}
		for _, kid := range kids {
			fullPath := kid
			if path != "" {
				fullPath = path + " " + kid
			}
			script.WriteString("\n                " +
				psResult(kid, kid, "Command", data.CommandDescriptions[fullPath]))
		}
		script.WriteString(`
            }`)
	}

	script.WriteString(`
    $results = @(
        switch -CaseSensitive ($cmd) {`)
	writeArm("")
	for _, cmd := range data.Commands {
		writeArm(cmd)
	}
	script.WriteString(`
            default { }
        }
    )`)
}

func psResult(completionText, listItemText, resultType, tooltip string) string {
	if tooltip == "" {
		tooltip = completionText
	}
	return fmt.Sprintf("[CompletionResult]::new('%s', '%s', [CompletionResultType]::%s, '%s')",
		escapePowerShell(completionText), escapePowerShell(listItemText),
		resultType, escapePowerShell(tooltip))
}
