package argue

import (
	"strings"

	"github.com/Marco4413/Argue/text"
)

// Option is a prefixed command-line option attached to a Parser.
//
// Implementations outside this package embed an OptionBase obtained from
// NewOptionBase, implement ParseArg and register themselves with
// (*Parser).AddOption. The built-in option kinds register themselves on
// construction.
type Option interface {
	// Name returns the option's long name, matched after the parser's
	// prefix.
	Name() string
	// ShortName returns the option's short name, matched after the
	// parser's short prefix, or "" when the option has none.
	ShortName() string
	HasShortName() bool
	// MetaVar returns the name the option's value goes by in hints and
	// help messages, or "" for options that take no value.
	MetaVar() string
	HasMetaVar() bool
	Description() string
	HasDescription() bool
	// IsVarOptional reports whether the option's value may be left empty.
	// Hints show optional values in square brackets.
	IsVarOptional() bool
	// WasParsed reports whether the option consumed a token during the
	// last parse pass. HasValue is guaranteed to hold when this does.
	WasParsed() bool
	// HasDefaultValue reports whether the option falls back to a default
	// when it goes unparsed.
	HasDefaultValue() bool
	// HasValue reports whether the option can produce a value, parsed or
	// default. Options without a value at the end of a parse pass make
	// the pass fail.
	HasValue() bool
	// ParseArg offers a token, already stripped of its prefix, to the
	// option; short tells which prefix was stripped. A false result with
	// a nil error means the token belongs to some other option and
	// nothing was consumed. A non-nil error means the token was
	// recognized but its value is unusable; the whole parse aborts.
	ParseArg(arg string, short bool) (bool, error)
	// WriteHint writes the option's compact usage form.
	WriteHint(hint text.Builder)
	// WriteHelp writes the option's usage form and description.
	WriteHelp(help text.Builder)

	markParsed()
	reset()
	attach(p *Parser)
}

// OptionBase carries the identity and parse bookkeeping shared by every
// Option implementation. It provides all of the Option interface except
// ParseArg.
type OptionBase struct {
	parser      *Parser
	name        string
	shortName   string
	metaVar     string
	description string
	wasParsed   bool
	hasDefault  bool
	varOptional bool
}

// NewOptionBase returns the embeddable core of an Option. name must not be
// blank; shortName, metaVar and description may be empty.
func NewOptionBase(name, shortName, metaVar, description string) OptionBase {
	if strings.TrimSpace(name) == "" {
		panic("argue: option name must not be blank")
	}
	return OptionBase{
		name:        name,
		shortName:   shortName,
		metaVar:     metaVar,
		description: description,
	}
}

func (o *OptionBase) Name() string { return o.name }

func (o *OptionBase) ShortName() string { return o.shortName }

func (o *OptionBase) HasShortName() bool { return len(o.shortName) > 0 }

func (o *OptionBase) MetaVar() string { return o.metaVar }

func (o *OptionBase) HasMetaVar() bool { return len(o.metaVar) > 0 }

func (o *OptionBase) Description() string { return o.description }

func (o *OptionBase) HasDescription() bool { return len(o.description) > 0 }

func (o *OptionBase) IsVarOptional() bool { return o.varOptional }

func (o *OptionBase) WasParsed() bool { return o.wasParsed }

func (o *OptionBase) HasDefaultValue() bool { return o.hasDefault }

func (o *OptionBase) HasValue() bool { return o.wasParsed || o.hasDefault }

// Parser returns the parser the option is attached to, or nil before
// registration.
func (o *OptionBase) Parser() *Parser { return o.parser }

// ConsumeName strips the option's name from the front of arg; short picks
// the short name. It returns the remainder and whether the name matched.
func (o *OptionBase) ConsumeName(arg string, short bool) (string, bool) {
	name := o.name
	if short {
		if !o.HasShortName() {
			return "", false
		}
		name = o.shortName
	}
	if !strings.HasPrefix(arg, name) {
		return "", false
	}
	return arg[len(name):], true
}

// ConsumeValue strips the option's name and, in the long form of an option
// with a meta variable, the '=' separator. It returns the raw value and
// whether arg belongs to this option.
func (o *OptionBase) ConsumeValue(arg string, short bool) (string, bool) {
	rest, ok := o.ConsumeName(arg, short)
	if !ok {
		return "", false
	}
	if !short && o.HasMetaVar() {
		if !strings.HasPrefix(rest, "=") {
			return "", false
		}
		rest = rest[1:]
	}
	return rest, true
}

// WriteHint writes the default usage form: the long form with the meta
// variable after '=', then the short form with the meta variable appended,
// bracketed by <> or, for optional values, [].
func (o *OptionBase) WriteHint(hint text.Builder) {
	varOpen, varClose := "<", ">"
	if o.varOptional {
		varOpen, varClose = "[", "]"
	}

	hint.PutText(o.parser.Prefix())
	hint.PutText(o.name)
	if o.HasMetaVar() {
		hint.PutText("=" + varOpen + o.metaVar + varClose)
	}
	if o.parser.HasShortPrefix() && o.HasShortName() {
		hint.PutText(", ")
		hint.PutText(o.parser.ShortPrefix())
		hint.PutText(o.shortName)
		if o.HasMetaVar() {
			hint.PutText(varOpen + o.metaVar + varClose)
		}
	}
}

// WriteHelp writes the default usage form followed by the description.
func (o *OptionBase) WriteHelp(help text.Builder) {
	o.WriteHint(help)
	putDescription(help, o.description)
}

func (o *OptionBase) markParsed() { o.wasParsed = true }

func (o *OptionBase) reset() { o.wasParsed = false }

func (o *OptionBase) attach(p *Parser) {
	if o.parser != nil {
		panic("argue: option '" + o.name + "' is already attached to a parser")
	}
	o.parser = p
}

// putDescription writes a node's indented description block under its
// usage form.
func putDescription(b text.Builder, description string) {
	if len(description) == 0 {
		return
	}
	b.NewLine()
	b.Indent()
	b.PutText(description)
	b.DeIndent()
}
