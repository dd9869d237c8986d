package argue

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Marco4413/Argue/text"
)

func mustMetaVar(name, metaVar string) {
	if strings.TrimSpace(metaVar) == "" {
		panic("argue: option '" + name + "' needs a meta variable")
	}
}

// FlagOption is a boolean option. Its long form turns it on, its long form
// with the name prefixed by "no-" turns it off, and its short form turns
// it on. Flags take no value, so a flag token followed by anything else is
// left to the other options.
type FlagOption struct {
	OptionBase
	value        bool
	defaultValue bool
}

func newFlagOption(name, shortName, description string, defaultValue bool) *FlagOption {
	o := &FlagOption{
		OptionBase:   NewOptionBase(name, shortName, "", description),
		value:        defaultValue,
		defaultValue: defaultValue,
	}
	o.hasDefault = true
	o.varOptional = true
	return o
}

// NewFlagOption creates a FlagOption and registers it with p.
func NewFlagOption(p *Parser, name, shortName, description string, defaultValue bool) *FlagOption {
	o := newFlagOption(name, shortName, description, defaultValue)
	p.AddOption(o)
	return o
}

// Value returns the flag's current state.
func (o *FlagOption) Value() bool { return o.value }

// DefaultValue returns the state the flag reverts to when unparsed.
func (o *FlagOption) DefaultValue() bool { return o.defaultValue }

// SetValue sets the flag's state.
func (o *FlagOption) SetValue(value bool) { o.value = value }

func (o *FlagOption) ParseArg(arg string, short bool) (bool, error) {
	if rest, ok := o.ConsumeName(arg, short); ok {
		if len(rest) > 0 {
			return false, nil
		}
		o.SetValue(true)
		return true, nil
	}
	if short {
		return false, nil
	}
	if rest, found := strings.CutPrefix(arg, "no-"); found && rest == o.name {
		o.SetValue(false)
		return true, nil
	}
	return false, nil
}

func (o *FlagOption) WriteHint(hint text.Builder) {
	hint.PutText(o.parser.Prefix())
	hint.PutText(o.name)
	if o.parser.HasShortPrefix() && o.HasShortName() {
		hint.PutText(", ")
		hint.PutText(o.parser.ShortPrefix())
		hint.PutText(o.shortName)
	}
}

// WriteHelp writes the flag's forms including the negated one, which goes
// on its own line when a short form was shown.
func (o *FlagOption) WriteHelp(help text.Builder) {
	o.WriteHint(help)
	help.PutText(", ")
	if o.parser.HasShortPrefix() && o.HasShortName() {
		help.NewLine()
	}
	help.PutText(o.parser.Prefix() + "no-" + o.name)
	putDescription(help, o.description)
}

func (o *FlagOption) reset() {
	o.OptionBase.reset()
	o.value = o.defaultValue
}

// FlagGroupOption is a FlagOption that forwards every state change to a
// fixed group of other flags. The group members take the option's default
// at construction and can still be set individually afterwards.
type FlagGroupOption struct {
	FlagOption
	group []*FlagOption
}

// NewFlagGroupOption creates a FlagGroupOption over the given flags and
// registers it with p.
func NewFlagGroupOption(p *Parser, name, shortName, description string, defaultValue bool, group ...*FlagOption) *FlagGroupOption {
	o := &FlagGroupOption{
		FlagOption: *newFlagOption(name, shortName, description, defaultValue),
		group:      group,
	}
	p.AddOption(o)
	o.SetValue(o.Value())
	return o
}

// Group returns the flags driven by this option.
func (o *FlagGroupOption) Group() []*FlagOption { return o.group }

// SetValue sets the group option's state and that of every group member.
func (o *FlagGroupOption) SetValue(value bool) {
	o.FlagOption.SetValue(value)
	for _, member := range o.group {
		member.SetValue(value)
	}
}

func (o *FlagGroupOption) ParseArg(arg string, short bool) (bool, error) {
	ok, err := o.FlagOption.ParseArg(arg, short)
	if ok {
		o.SetValue(o.FlagOption.Value())
	}
	return ok, err
}

func (o *FlagGroupOption) reset() {
	o.FlagOption.reset()
	o.SetValue(o.defaultValue)
}

// IntOption is an option holding a base-10 signed 64-bit integer. Tokens
// that do not parse in full are rejected.
type IntOption struct {
	OptionBase
	value        int64
	defaultValue int64
}

// NewIntOption creates an IntOption without a default and registers it
// with p.
func NewIntOption(p *Parser, name, shortName, metaVar, description string) *IntOption {
	mustMetaVar(name, metaVar)
	o := &IntOption{OptionBase: NewOptionBase(name, shortName, metaVar, description)}
	p.AddOption(o)
	return o
}

// WithDefault gives the option a default value and returns it.
func (o *IntOption) WithDefault(value int64) *IntOption {
	o.defaultValue = value
	o.hasDefault = true
	return o
}

// Value returns the parsed value, or the default when the option went
// unparsed.
func (o *IntOption) Value() int64 {
	if o.wasParsed {
		return o.value
	}
	return o.defaultValue
}

// DefaultValue returns the option's default.
func (o *IntOption) DefaultValue() int64 { return o.defaultValue }

func (o *IntOption) ParseArg(arg string, short bool) (bool, error) {
	raw, ok := o.ConsumeValue(arg, short)
	if !ok {
		return false, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w: expected integer for '%s%s', got '%s'",
			ErrInvalidValue, o.parser.Prefix(), o.name, raw)
	}
	o.value = value
	return true, nil
}

// StringOption is an option holding its value verbatim. Empty values are
// accepted.
type StringOption struct {
	OptionBase
	value        string
	defaultValue string
}

// NewStringOption creates a StringOption without a default and registers
// it with p.
func NewStringOption(p *Parser, name, shortName, metaVar, description string) *StringOption {
	mustMetaVar(name, metaVar)
	o := &StringOption{OptionBase: NewOptionBase(name, shortName, metaVar, description)}
	p.AddOption(o)
	return o
}

// WithDefault gives the option a default value and returns it.
func (o *StringOption) WithDefault(value string) *StringOption {
	o.defaultValue = value
	o.hasDefault = true
	return o
}

// Value returns the parsed value, or the default when the option went
// unparsed.
func (o *StringOption) Value() string {
	if o.wasParsed {
		return o.value
	}
	return o.defaultValue
}

// DefaultValue returns the option's default.
func (o *StringOption) DefaultValue() string { return o.defaultValue }

func (o *StringOption) ParseArg(arg string, short bool) (bool, error) {
	raw, ok := o.ConsumeValue(arg, short)
	if !ok {
		return false, nil
	}
	o.value = raw
	return true, nil
}

// ChoiceOption is an option whose value must be one of a fixed set of
// strings. Hints show the whole set in braces in place of the meta
// variable.
type ChoiceOption struct {
	OptionBase
	choices      []string
	valueIndex   int
	defaultIndex int
}

// NewChoiceOption creates a ChoiceOption over choices and registers it
// with p.
func NewChoiceOption(p *Parser, name, shortName, metaVar, description string, choices ...string) *ChoiceOption {
	mustMetaVar(name, metaVar)
	o := &ChoiceOption{
		OptionBase: NewOptionBase(name, shortName, metaVar, description),
		choices:    choices,
	}
	p.AddOption(o)
	return o
}

// WithDefault makes the choice at index the default and returns the
// option. An index out of range clamps to the last choice.
func (o *ChoiceOption) WithDefault(index int) *ChoiceOption {
	o.hasDefault = true
	if len(o.choices) > 0 {
		if index < 0 || index >= len(o.choices) {
			index = len(o.choices) - 1
		}
		o.defaultIndex = index
	}
	return o
}

// Choices returns the accepted values in declaration order.
func (o *ChoiceOption) Choices() []string { return o.choices }

// ChoiceString returns the accepted values joined in braces, the way hints
// and errors show them.
func (o *ChoiceOption) ChoiceString() string {
	return "{" + strings.Join(o.choices, ",") + "}"
}

// Value returns the matched choice, or the default when the option went
// unparsed.
func (o *ChoiceOption) Value() string {
	if len(o.choices) == 0 {
		return ""
	}
	if o.wasParsed {
		return o.choices[o.valueIndex]
	}
	return o.choices[o.defaultIndex]
}

// ValueIndex returns the index of the choice Value returns.
func (o *ChoiceOption) ValueIndex() int {
	if o.wasParsed {
		return o.valueIndex
	}
	return o.defaultIndex
}

// DefaultValue returns the default choice, or "" when there is none.
func (o *ChoiceOption) DefaultValue() string {
	if len(o.choices) == 0 || !o.hasDefault {
		return ""
	}
	return o.choices[o.defaultIndex]
}

func (o *ChoiceOption) ParseArg(arg string, short bool) (bool, error) {
	raw, ok := o.ConsumeValue(arg, short)
	if !ok {
		return false, nil
	}
	for i, choice := range o.choices {
		if raw == choice {
			o.valueIndex = i
			return true, nil
		}
	}
	return false, fmt.Errorf("%w: expected one of %s for '%s%s', got '%s'",
		ErrInvalidValue, o.ChoiceString(), o.parser.Prefix(), o.name, raw)
}

func (o *ChoiceOption) WriteHint(hint text.Builder) {
	hint.PutText(o.parser.Prefix())
	hint.PutText(o.name)
	hint.PutText("=" + o.ChoiceString())
	if o.parser.HasShortPrefix() && o.HasShortName() {
		hint.PutText(", ")
		hint.PutText(o.parser.ShortPrefix())
		hint.PutText(o.shortName)
		hint.PutText(o.ChoiceString())
	}
}

func (o *ChoiceOption) WriteHelp(help text.Builder) {
	o.WriteHint(help)
	putDescription(help, o.description)
}

// CollectionOption is an option that may appear any number of times,
// collecting its values in order of appearance. It rejects empty values
// unless AllowEmpty was called. An unparsed collection defaults to no
// values.
type CollectionOption struct {
	OptionBase
	value       []string
	acceptEmpty bool
}

// NewCollectionOption creates a CollectionOption and registers it with p.
func NewCollectionOption(p *Parser, name, shortName, metaVar, description string) *CollectionOption {
	mustMetaVar(name, metaVar)
	o := &CollectionOption{OptionBase: NewOptionBase(name, shortName, metaVar, description)}
	o.hasDefault = true
	p.AddOption(o)
	return o
}

// AllowEmpty lets the option collect empty values and returns it.
func (o *CollectionOption) AllowEmpty() *CollectionOption {
	o.acceptEmpty = true
	o.varOptional = true
	return o
}

// AcceptsEmptyValues reports whether empty values are collected rather
// than rejected.
func (o *CollectionOption) AcceptsEmptyValues() bool { return o.acceptEmpty }

// Value returns the collected values in order of appearance.
func (o *CollectionOption) Value() []string { return o.value }

func (o *CollectionOption) ParseArg(arg string, short bool) (bool, error) {
	raw, ok := o.ConsumeValue(arg, short)
	if !ok {
		return false, nil
	}
	if len(raw) == 0 && !o.acceptEmpty {
		return false, fmt.Errorf("%w: empty values are not allowed for '%s%s'",
			ErrInvalidValue, o.parser.Prefix(), o.name)
	}
	o.value = append(o.value, raw)
	return true, nil
}

func (o *CollectionOption) reset() {
	o.OptionBase.reset()
	o.value = nil
}

// TimeOption is an option holding a timestamp. Values are parsed in the
// local time zone and may use any layout dateparse recognizes.
type TimeOption struct {
	OptionBase
	value        time.Time
	defaultValue time.Time
}

// NewTimeOption creates a TimeOption without a default and registers it
// with p.
func NewTimeOption(p *Parser, name, shortName, metaVar, description string) *TimeOption {
	mustMetaVar(name, metaVar)
	o := &TimeOption{OptionBase: NewOptionBase(name, shortName, metaVar, description)}
	p.AddOption(o)
	return o
}

// WithDefault gives the option a default value and returns it.
func (o *TimeOption) WithDefault(value time.Time) *TimeOption {
	o.defaultValue = value
	o.hasDefault = true
	return o
}

// Value returns the parsed timestamp, or the default when the option went
// unparsed.
func (o *TimeOption) Value() time.Time {
	if o.wasParsed {
		return o.value
	}
	return o.defaultValue
}

// DefaultValue returns the option's default.
func (o *TimeOption) DefaultValue() time.Time { return o.defaultValue }

func (o *TimeOption) ParseArg(arg string, short bool) (bool, error) {
	raw, ok := o.ConsumeValue(arg, short)
	if !ok {
		return false, nil
	}
	value, err := dateparse.ParseLocal(raw)
	if err != nil {
		return false, fmt.Errorf("%w: expected timestamp for '%s%s', got '%s'",
			ErrInvalidValue, o.parser.Prefix(), o.name, raw)
	}
	o.value = value
	return true, nil
}
