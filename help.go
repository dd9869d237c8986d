package argue

import (
	"strings"

	"github.com/Marco4413/Argue/text"
)

// WriteHint writes the parser's one-line usage form: the name, an
// [...OPTIONS] marker, the subcommand names and the positional argument
// hints behind a [--] separator.
func (p *Parser) WriteHint(hint text.Builder) {
	hint.PutText(p.name)
	if p.options.Len() > 0 {
		hint.PutText(" [...OPTIONS]")
	}
	if p.commands.Len() > 0 {
		names := make([]string, 0, p.commands.Len())
		for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
			names = append(names, pair.Value.(*Parser).name)
		}
		hint.PutText(" [" + strings.Join(names, "|") + " ...]")
	}
	if len(p.positionals) > 0 {
		hint.PutText(" [--]")
		for _, arg := range p.positionals {
			hint.PutText(" ")
			arg.WriteHint(hint)
		}
	}
}

// WriteHelp writes the parser's help message: hint, description, the
// positional arguments that have a description, an OPTIONS section and a
// SUBCOMMANDS section. briefOptions reduces options to their hints.
// briefSubcommands lists subcommands by hint; otherwise their full help is
// written recursively.
func (p *Parser) WriteHelp(help text.Builder, briefOptions, briefSubcommands bool) {
	p.WriteHint(help)
	help.Spacer()

	if p.HasDescription() {
		help.Indent()
		help.PutText(p.description)
		help.DeIndent()
		help.Spacer()
	}

	for _, arg := range p.positionals {
		if arg.HasDescription() {
			arg.WriteHelp(help)
			help.Spacer()
		}
	}

	if p.options.Len() > 0 {
		help.PutText("OPTIONS:")
		help.NewLine()
		for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
			opt := pair.Value.(Option)
			help.Indent()
			if briefOptions {
				opt.WriteHint(help)
			} else {
				opt.WriteHelp(help)
			}
			help.DeIndent()
			if briefOptions {
				help.NewLine()
			} else {
				help.Spacer()
			}
		}
		if briefOptions {
			help.Spacer()
		}
	}

	if p.commands.Len() > 0 {
		help.PutText("SUBCOMMANDS:")
		help.NewLine()
		for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
			cmd := pair.Value.(*Parser)
			help.Indent()
			if briefSubcommands {
				cmd.WriteHint(help)
			} else {
				cmd.WriteHelp(help, briefOptions, briefSubcommands)
			}
			help.DeIndent()
			if briefSubcommands {
				help.NewLine()
			} else {
				help.Spacer()
			}
		}
		if briefSubcommands {
			help.Spacer()
		}
	}
}

// HelpCommand attaches a "help" subcommand to a parser. The subcommand
// takes the path of the command to describe as variadic positional tokens
// and a --print option choosing between brief and full subcommand
// listings:
//
//	prog help
//	prog help --print=full
//	prog help sub subsub
//
// After a successful parse, Used reports whether help was requested and
// Write renders the message.
type HelpCommand struct {
	parser    *Parser
	cmd       *Parser
	printType *ChoiceOption
	helpFor   *VariadicArgument
}

// NewHelpCommand registers a "help" subcommand on p and returns it.
func NewHelpCommand(p *Parser) *HelpCommand {
	cmd := p.Subcommand("help", "Prints this help message.")
	return &HelpCommand{
		parser: p,
		cmd:    cmd,
		printType: NewChoiceOption(cmd, "print", "P", "TYPE",
			"Print all subcommands and their options. (default: brief)",
			"brief", "full").WithDefault(0),
		helpFor: NewVariadicArgument(cmd, "CMD",
			"The path to the command to print the help message for."),
	}
}

// Parser returns the help subcommand's own parser.
func (h *HelpCommand) Parser() *Parser { return h.cmd }

// Used reports whether the last parse pass requested help.
func (h *HelpCommand) Used() bool { return h.cmd.Used() }

// Write renders the requested help message. The command path is walked
// from the parser the help command is attached to; an element that names
// no subcommand renders a note instead of a help message.
func (h *HelpCommand) Write(help text.Builder) {
	var pathUntilLast string

	target := h.parser
	helpPath := h.helpFor.Value()
	for i, name := range helpPath {
		sub, exists := target.commands.Get(name)
		if !exists {
			help.PutText("Could not find help for '" + pathUntilLast + name + "'.")
			help.NewLine()
			return
		}
		target = sub.(*Parser)
		if i < len(helpPath)-1 {
			pathUntilLast += name + " "
		}
	}

	briefSubcommands := h.printType.Value() == "brief"
	help.PutText(pathUntilLast)
	target.WriteHelp(help, false, briefSubcommands)
}

// String renders the requested help message with the default layout.
func (h *HelpCommand) String() string {
	b := text.New()
	h.Write(b)
	return b.Build()
}
