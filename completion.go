package argue

import (
	"github.com/Marco4413/Argue/completion"
)

// CompletionData flattens the parser tree into the shape consumed by the
// shell completion generators. Call it on the root parser.
func (p *Parser) CompletionData() completion.Data {
	data := completion.Data{
		Prefix:              p.state.prefix,
		ShortPrefix:         p.state.shortPrefix,
		CommandDescriptions: make(map[string]string),
		CommandFlags:        make(map[string][]completion.Flag),
	}
	data.Flags = completionFlags(p)
	for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
		collectCompletions(&data, pair.Value.(*Parser), pair.Key.(string))
	}
	return data
}

// GenerateCompletion renders a completion script for the given shell, one
// of "bash", "zsh", "fish" or "powershell". Unknown shells fall back to
// bash. programName is the executable name completion is registered for,
// which may differ from the parser's name.
func (p *Parser) GenerateCompletion(shell, programName string) string {
	return completion.GetGenerator(shell).Generate(programName, p.CompletionData())
}

func collectCompletions(data *completion.Data, cmd *Parser, path string) {
	data.Commands = append(data.Commands, path)
	if cmd.HasDescription() {
		data.CommandDescriptions[path] = cmd.description
	}
	if flags := completionFlags(cmd); len(flags) > 0 {
		data.CommandFlags[path] = flags
	}
	for pair := cmd.commands.Oldest(); pair != nil; pair = pair.Next() {
		collectCompletions(data, pair.Value.(*Parser), path+" "+pair.Key.(string))
	}
}

func completionFlags(p *Parser) []completion.Flag {
	flags := make([]completion.Flag, 0, p.options.Len())
	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(Option)
		flag := completion.Flag{
			Name:        opt.Name(),
			TakesValue:  opt.HasMetaVar(),
			Description: opt.Description(),
		}
		if opt.HasShortName() {
			flag.Short = opt.ShortName()
		}
		if choices, ok := opt.(interface{ Choices() []string }); ok {
			flag.Values = choices.Choices()
		}
		// Options with a boolean default accept the long "no-" negation.
		if _, ok := opt.(interface{ DefaultValue() bool }); ok {
			flag.Negatable = true
		}
		flags = append(flags, flag)
	}
	return flags
}
