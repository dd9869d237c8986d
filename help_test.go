package argue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marco4413/Argue/text"
)

func newGreetParser() *Parser {
	p := New("greet", "Greets people.")
	NewFlagOption(p, "verbose", "v", "Enable verbose output.", false)
	NewStringArgument(p, "USER", "The person to greet.")
	p.Subcommand("wave", "Waves instead.")
	return p
}

func TestParser_Hint(t *testing.T) {
	p := New("app", "")
	NewFlagOption(p, "verbose", "v", "", false)
	p.Subcommand("run", "")
	p.Subcommand("walk", "")
	NewStringArgument(p, "FILE", "")
	NewVariadicArgument(p, "REST", "")

	assert.Equal(t, "app [...OPTIONS] [run|walk ...] [--] <FILE> [...REST]\n", p.Hint(),
		"the hint should list every part of the grammar the parser accepts")
}

func TestParser_HintOmitsEmptyParts(t *testing.T) {
	assert.Equal(t, "app\n", New("app", "").Hint(), "a bare parser hints only its name")

	p := New("app", "")
	NewStringArgument(p, "FILE", "").WithDefault("-")
	assert.Equal(t, "app [--] [FILE]\n", p.Hint(), "a defaulted positional shows in square brackets")
}

func TestOption_WriteHint(t *testing.T) {
	p := New("prog", "")
	render := func(opt Option) string {
		b := text.New()
		opt.WriteHint(b)
		return b.Build()
	}

	assert.Equal(t, "--verbose, -v\n",
		render(NewFlagOption(p, "verbose", "v", "", false)))
	assert.Equal(t, "--quiet\n",
		render(NewFlagOption(p, "quiet", "", "", false)))
	assert.Equal(t, "--a=<A>, -a<A>\n",
		render(NewIntOption(p, "a", "a", "A", "")))
	assert.Equal(t, "--op={+,-,*,/}, -op{+,-,*,/}\n",
		render(NewChoiceOption(p, "op", "op", "OPERATOR", "", "+", "-", "*", "/")),
		"choice options show their choices in place of the meta variable")
	assert.Equal(t, "--note=[NOTE]\n",
		render(NewCollectionOption(p, "note", "", "NOTE", "").AllowEmpty()),
		"an optional value shows in square brackets")
}

func TestFlagOption_WriteHelp(t *testing.T) {
	p := New("prog", "")
	render := func(opt Option) string {
		b := text.New()
		opt.WriteHelp(b)
		return b.Build()
	}

	assert.Equal(t, "--colors, --no-colors\n  Use colors.\n",
		render(NewFlagOption(p, "colors", "", "Use colors.", true)),
		"without a short form the negation shares the line")
	assert.Equal(t, "--verbose, -v,\n--no-verbose\n  Enable verbose output.\n",
		render(NewFlagOption(p, "verbose", "v", "Enable verbose output.", false)),
		"with a short form the negation goes on its own line")
}

func TestPositional_WriteHint(t *testing.T) {
	p := New("prog", "")
	render := func(arg PositionalArgument) string {
		b := text.New()
		arg.WriteHint(b)
		return b.Build()
	}

	assert.Equal(t, "<SRC>\n", render(NewStringArgument(p, "SRC", "")))
	assert.Equal(t, "[DST]\n", render(NewStringArgument(p, "DST", "").WithDefault(".")))
	assert.Equal(t, "[...REST]\n", render(NewVariadicArgument(p, "REST", "")))
}

func TestParser_WriteHelpFull(t *testing.T) {
	b := text.New()
	newGreetParser().WriteHelp(b, false, true)

	assert.Equal(t,
		"greet [...OPTIONS] [wave ...] [--] <USER>\n"+
			"\n"+
			"  Greets people.\n"+
			"\n"+
			"USER:\n"+
			"  The person to greet.\n"+
			"\n"+
			"OPTIONS:\n"+
			"  --verbose, -v,\n"+
			"  --no-verbose\n"+
			"    Enable verbose output.\n"+
			"\n"+
			"SUBCOMMANDS:\n"+
			"  wave\n",
		b.Build())
}

func TestParser_WriteHelpBriefOptions(t *testing.T) {
	b := text.New()
	newGreetParser().WriteHelp(b, true, true)

	assert.Equal(t,
		"greet [...OPTIONS] [wave ...] [--] <USER>\n"+
			"\n"+
			"  Greets people.\n"+
			"\n"+
			"USER:\n"+
			"  The person to greet.\n"+
			"\n"+
			"OPTIONS:\n"+
			"  --verbose, -v\n"+
			"\n"+
			"SUBCOMMANDS:\n"+
			"  wave\n",
		b.Build(), "brief options reduce to their hint lines")
}

func TestParser_WriteHelpFullSubcommands(t *testing.T) {
	p := New("app", "")
	sub := p.Subcommand("run", "Runs things.")
	NewFlagOption(sub, "fast", "", "Go fast.", false)

	b := text.New()
	p.WriteHelp(b, false, false)

	assert.Equal(t,
		"app [run ...]\n"+
			"\n"+
			"SUBCOMMANDS:\n"+
			"  run [...OPTIONS]\n"+
			"\n"+
			"    Runs things.\n"+
			"\n"+
			"  OPTIONS:\n"+
			"    --fast, --no-fast\n"+
			"      Go fast.\n",
		b.Build(), "full subcommand help recurses with one more indent level")
}

func TestParser_HelpIsIdempotent(t *testing.T) {
	p := newGreetParser()
	assert.Equal(t, p.Hint(), p.Hint(), "rendering a hint twice should yield the same text")
	assert.Equal(t, p.Help(), p.Help(), "rendering help twice should yield the same text")
}

func newHelpApp() (*Parser, *HelpCommand, *Parser, *Parser) {
	app := New("app", "An app.")
	h := NewHelpCommand(app)
	remote := app.Subcommand("remote", "Manage remotes.")
	add := remote.Subcommand("add", "Add a remote.")
	return app, h, remote, add
}

func TestHelpCommand_RendersRootHelp(t *testing.T) {
	app, h, _, _ := newHelpApp()

	assert.True(t, app.Parse([]string{"app", "help"}))
	assert.True(t, h.Used())

	b := text.New()
	app.WriteHelp(b, false, true)
	assert.Equal(t, b.Build(), h.String(), "an empty path renders the attached parser's help")
}

func TestHelpCommand_WalksCommandPath(t *testing.T) {
	app, h, _, add := newHelpApp()

	assert.True(t, app.Parse([]string{"app", "help", "remote", "add"}))
	assert.True(t, h.Used())

	b := text.New()
	b.PutText("remote ")
	add.WriteHelp(b, false, true)
	assert.Equal(t, b.Build(), h.String(), "the rendered help should carry the path down to its parent")
}

func TestHelpCommand_UnknownPath(t *testing.T) {
	app, h, _, _ := newHelpApp()

	assert.True(t, app.Parse([]string{"app", "help", "remote", "frobnicate"}),
		"an unknown help path is not a parse error")
	assert.True(t, h.Used())
	assert.Equal(t, "Could not find help for 'remote frobnicate'.\n", h.String())
}

func TestHelpCommand_PrintFull(t *testing.T) {
	app, h, _, _ := newHelpApp()

	assert.True(t, app.Parse([]string{"app", "help", "--print=full"}))

	b := text.New()
	app.WriteHelp(b, false, false)
	assert.Equal(t, b.Build(), h.String(), "--print=full expands every subcommand recursively")
}

func TestHelpCommand_NotUsedWithoutParse(t *testing.T) {
	app, h, _, _ := newHelpApp()

	assert.False(t, h.Used())
	assert.Equal(t, "help", h.Parser().Name())

	assert.True(t, app.Parse([]string{"app", "remote"}))
	assert.False(t, h.Used(), "a different subcommand should not count as a help request")
}
