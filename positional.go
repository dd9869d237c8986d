package argue

import (
	"strings"

	"github.com/Marco4413/Argue/text"
)

// PositionalArgument is a command-line argument matched by position rather
// than by name.
//
// Implementations outside this package embed a PositionalBase obtained
// from NewPositionalBase, implement ParseArg and register themselves with
// (*Parser).AddArgument. The built-in kinds register themselves on
// construction.
type PositionalArgument interface {
	// MetaVar returns the name the argument goes by in hints, help
	// messages and errors.
	MetaVar() string
	Description() string
	HasDescription() bool
	// IsVariadic reports whether the argument absorbs every remaining
	// positional token. A variadic argument always has a default: the
	// empty list.
	IsVariadic() bool
	// WasParsed reports whether the argument consumed a token during the
	// last parse pass. HasValue is guaranteed to hold when this does.
	WasParsed() bool
	// HasDefaultValue reports whether the argument falls back to a
	// default when it goes unparsed.
	HasDefaultValue() bool
	// HasValue reports whether the argument can produce a value, parsed
	// or default. Arguments without a value at the end of a parse pass
	// make the pass fail.
	HasValue() bool
	// ParseArg hands the argument the token at its position. A non-nil
	// error rejects the token and aborts the whole parse.
	ParseArg(arg string) error
	// WriteHint writes the argument's compact usage form: <NAME> when
	// required, [NAME] when defaulted, [...NAME] when variadic.
	WriteHint(hint text.Builder)
	// WriteHelp writes the argument's name and description.
	WriteHelp(help text.Builder)

	markParsed()
	reset()
	attach(p *Parser)
}

// PositionalBase carries the identity and parse bookkeeping shared by
// every PositionalArgument implementation. Kinds built on it declare their
// own variadic, default and value behavior; WritePositionalHint and
// WritePositionalHelp cover the usual rendering.
type PositionalBase struct {
	parser      *Parser
	metaVar     string
	description string
	wasParsed   bool
}

// NewPositionalBase returns the embeddable core of a PositionalArgument.
// metaVar must not be blank.
func NewPositionalBase(metaVar, description string) PositionalBase {
	if strings.TrimSpace(metaVar) == "" {
		panic("argue: positional argument meta variable must not be blank")
	}
	return PositionalBase{
		metaVar:     metaVar,
		description: description,
	}
}

func (a *PositionalBase) MetaVar() string { return a.metaVar }

func (a *PositionalBase) Description() string { return a.description }

func (a *PositionalBase) HasDescription() bool { return len(a.description) > 0 }

func (a *PositionalBase) WasParsed() bool { return a.wasParsed }

// Parser returns the parser the argument is attached to, or nil before
// registration.
func (a *PositionalBase) Parser() *Parser { return a.parser }

func (a *PositionalBase) markParsed() { a.wasParsed = true }

func (a *PositionalBase) reset() { a.wasParsed = false }

func (a *PositionalBase) attach(p *Parser) {
	if a.parser != nil {
		panic("argue: positional argument '" + a.metaVar + "' is already attached to a parser")
	}
	a.parser = p
}

// WritePositionalHint renders the usage form shared by every positional
// kind: [...NAME] when variadic, [NAME] when defaulted, <NAME> otherwise.
func WritePositionalHint(a PositionalArgument, hint text.Builder) {
	switch {
	case a.IsVariadic():
		hint.PutText("[..." + a.MetaVar() + "]")
	case a.HasDefaultValue():
		hint.PutText("[" + a.MetaVar() + "]")
	default:
		hint.PutText("<" + a.MetaVar() + ">")
	}
}

// WritePositionalHelp renders the help block shared by every positional
// kind: the meta variable followed by the indented description.
func WritePositionalHelp(a PositionalArgument, help text.Builder) {
	if a.IsVariadic() {
		help.PutText("..." + a.MetaVar() + ":")
	} else {
		help.PutText(a.MetaVar() + ":")
	}
	putDescription(help, a.Description())
}

// StringArgument is a positional argument holding its token verbatim.
type StringArgument struct {
	PositionalBase
	value        string
	defaultValue string
	hasDefault   bool
}

// NewStringArgument creates a StringArgument without a default and
// registers it with p. Without a default the argument is required.
func NewStringArgument(p *Parser, metaVar, description string) *StringArgument {
	a := &StringArgument{PositionalBase: NewPositionalBase(metaVar, description)}
	p.AddArgument(a)
	return a
}

// WithDefault gives the argument a default value, making it optional, and
// returns it.
func (a *StringArgument) WithDefault(value string) *StringArgument {
	a.defaultValue = value
	a.hasDefault = true
	return a
}

// Value returns the parsed token, or the default when the argument went
// unparsed.
func (a *StringArgument) Value() string {
	if a.wasParsed {
		return a.value
	}
	return a.defaultValue
}

// DefaultValue returns the argument's default.
func (a *StringArgument) DefaultValue() string { return a.defaultValue }

func (a *StringArgument) IsVariadic() bool { return false }

func (a *StringArgument) HasDefaultValue() bool { return a.hasDefault }

func (a *StringArgument) HasValue() bool { return a.wasParsed || a.hasDefault }

func (a *StringArgument) ParseArg(arg string) error {
	a.value = arg
	return nil
}

func (a *StringArgument) WriteHint(hint text.Builder) { WritePositionalHint(a, hint) }

func (a *StringArgument) WriteHelp(help text.Builder) { WritePositionalHelp(a, help) }

// VariadicArgument is a positional argument that absorbs every remaining
// positional token, in order.
type VariadicArgument struct {
	PositionalBase
	value []string
}

// NewVariadicArgument creates a VariadicArgument and registers it with p.
// No other positional argument can follow it.
func NewVariadicArgument(p *Parser, metaVar, description string) *VariadicArgument {
	a := &VariadicArgument{PositionalBase: NewPositionalBase(metaVar, description)}
	p.AddArgument(a)
	return a
}

// Value returns the absorbed tokens in order.
func (a *VariadicArgument) Value() []string { return a.value }

func (a *VariadicArgument) IsVariadic() bool { return true }

func (a *VariadicArgument) HasDefaultValue() bool { return true }

func (a *VariadicArgument) HasValue() bool { return true }

func (a *VariadicArgument) ParseArg(arg string) error {
	a.value = append(a.value, arg)
	return nil
}

func (a *VariadicArgument) reset() {
	a.PositionalBase.reset()
	a.value = nil
}

func (a *VariadicArgument) WriteHint(hint text.Builder) { WritePositionalHint(a, hint) }

func (a *VariadicArgument) WriteHelp(help text.Builder) { WritePositionalHelp(a, help) }
