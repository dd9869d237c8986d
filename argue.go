// Copyright 2025-2026, Marco4413. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package argue provides declarative command-line argument parsing built
// around a tree of parsers.
//
// A root Parser is named after the program and owns the option prefixes
// and the error slot shared by the whole tree. Subcommands are child
// parsers created with Subcommand; the first subcommand whose name matches
// a bare token takes over the rest of the command line. Options are
// declared against a parser with the New*Option constructors and matched
// by prefix: the long form takes its value after '=' while the short form
// takes it immediately after the name. Bare tokens feed positional
// arguments in declaration order, and a lone "--" switches to
// positional-only parsing.
//
// Parse reports success as a bool; the error behind a failed parse is
// retrieved with Err and matches the package's sentinel errors under
// errors.Is. Custom option and positional kinds plug in through the Option
// and PositionalArgument interfaces by embedding OptionBase or
// PositionalBase.
//
// A parser tree is not safe for concurrent use; it parses one command
// line at a time.
package argue

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/Marco4413/Argue/parse"
	"github.com/Marco4413/Argue/text"
	"github.com/Marco4413/Argue/util"
)

// treeState is owned by the root parser and shared with every subcommand.
type treeState struct {
	prefix      string
	shortPrefix string
	err         error
}

// Parser matches one command name and consumes the options, positional
// arguments and subcommands declared on it. Use New for roots and
// Subcommand for children.
type Parser struct {
	name        string
	description string
	parent      *Parser
	state       *treeState

	options     *orderedmap.OrderedMap
	positionals []PositionalArgument
	commands    *orderedmap.OrderedMap

	matched bool
}

// New creates a root parser for the named program with the default "--"
// and "-" option prefixes. name is matched against the first token of the
// command line, so a root parser built for os.Args is named os.Args[0].
func New(name, description string) *Parser {
	return NewWithPrefixes(name, description, "--", "-")
}

// NewWithPrefixes creates a root parser with custom option prefixes.
// prefix must not be empty. shortPrefix may be empty, disabling short
// options, or equal to prefix, in which case every prefixed token is tried
// against both forms of each option.
func NewWithPrefixes(name, description, prefix, shortPrefix string) *Parser {
	if len(name) == 0 {
		panic("argue: parser name must not be empty")
	}
	if len(prefix) == 0 {
		panic("argue: option prefix must not be empty")
	}
	return &Parser{
		name:        name,
		description: description,
		state: &treeState{
			prefix:      prefix,
			shortPrefix: shortPrefix,
		},
		options:  orderedmap.New(),
		commands: orderedmap.New(),
	}
}

// Subcommand creates a child parser reachable by name and registers it.
// Subcommand names must be unique within their parent.
func (p *Parser) Subcommand(name, description string) *Parser {
	if len(name) == 0 {
		panic("argue: subcommand name must not be empty")
	}
	if _, exists := p.commands.Get(name); exists {
		panic("argue: subcommand '" + name + "' declared twice")
	}
	cmd := &Parser{
		name:        name,
		description: description,
		parent:      p,
		state:       p.state,
		options:     orderedmap.New(),
		commands:    orderedmap.New(),
	}
	p.commands.Set(name, cmd)
	return cmd
}

// AddOption registers a custom Option. Options built by the New*Option
// constructors register themselves. Long names must be unique within
// their parser.
func (p *Parser) AddOption(opt Option) {
	opt.attach(p)
	if _, exists := p.options.Get(opt.Name()); exists {
		panic("argue: option '" + opt.Name() + "' declared twice")
	}
	p.options.Set(opt.Name(), opt)
}

// AddArgument registers a custom PositionalArgument. Positional arguments
// built by the New*Argument constructors register themselves. Nothing can
// be declared after a variadic argument, which would never see a token.
func (p *Parser) AddArgument(arg PositionalArgument) {
	arg.attach(p)
	if n := len(p.positionals); n > 0 && p.positionals[n-1].IsVariadic() {
		panic("argue: positional argument '" + arg.MetaVar() + "' declared after a variadic argument")
	}
	p.positionals = append(p.positionals, arg)
}

// Name returns the program or subcommand name the parser matches.
func (p *Parser) Name() string { return p.name }

// Description returns the parser's help description.
func (p *Parser) Description() string { return p.description }

func (p *Parser) HasDescription() bool { return len(p.description) > 0 }

// Prefix returns the tree's long option prefix.
func (p *Parser) Prefix() string { return p.state.prefix }

// ShortPrefix returns the tree's short option prefix, or "".
func (p *Parser) ShortPrefix() string { return p.state.shortPrefix }

func (p *Parser) HasShortPrefix() bool { return len(p.state.shortPrefix) > 0 }

// Parent returns the parser this one is a subcommand of, or nil for a
// root.
func (p *Parser) Parent() *Parser { return p.parent }

// Options returns the parser's options in declaration order.
func (p *Parser) Options() []Option {
	opts := make([]Option, 0, p.options.Len())
	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		opts = append(opts, pair.Value.(Option))
	}
	return opts
}

// Positionals returns the parser's positional arguments in declaration
// order.
func (p *Parser) Positionals() []PositionalArgument {
	return append([]PositionalArgument(nil), p.positionals...)
}

// Subcommands returns the parser's subcommands in declaration order.
func (p *Parser) Subcommands() []*Parser {
	cmds := make([]*Parser, 0, p.commands.Len())
	for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
		cmds = append(cmds, pair.Value.(*Parser))
	}
	return cmds
}

// Err returns the error recorded by the last parse pass, or nil. The
// error slot is shared by the whole tree, so it can be read from any
// parser in it.
func (p *Parser) Err() error { return p.state.err }

// Matched reports whether the last parse pass reached this parser, even
// if it failed afterwards.
func (p *Parser) Matched() bool { return p.matched }

// Used reports whether the last parse pass reached this parser and
// completed without error. When it returns true, every option and
// positional argument of this parser holds a value.
func (p *Parser) Used() bool { return p.matched && p.state.err == nil }

// Parse consumes args and reports whether parsing succeeded. The first
// token must be the parser's own name; for a root parser built with New
// that makes os.Args valid input as-is. Parsing starts from a clean
// slate: values, matches and the tree error left by an earlier pass are
// discarded.
func (p *Parser) Parse(args []string) bool {
	p.state.err = nil
	p.resetNodes()
	return p.parse(parse.NewState(args))
}

// ParseString splits cmdline shell-style and parses the tokens. Quoting
// and escaping follow one grammar on every platform.
func (p *Parser) ParseString(cmdline string) bool {
	args, err := parse.Split(cmdline)
	if err != nil {
		p.resetNodes()
		p.state.err = fmt.Errorf("%w: %s", ErrInvalidCommandLine, err)
		return false
	}
	return p.Parse(args)
}

// Hint returns the parser's one-line usage form.
func (p *Parser) Hint() string {
	b := text.New()
	p.WriteHint(b)
	return b.Build()
}

// Help returns the parser's help message with full option help and brief
// subcommand listings, wrapped to the terminal width when standard output
// is a terminal.
func (p *Parser) Help() string {
	b := text.NewConfigured("  ", true, util.StdoutWidth(80))
	p.WriteHelp(b, false, true)
	return b.Build()
}
