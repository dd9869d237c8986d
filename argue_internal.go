package argue

import (
	"fmt"
	"strings"

	"github.com/Marco4413/Argue/parse"
)

// fail records err in the tree's error slot. It always returns false so
// parse paths can bail with `return p.fail(...)`.
func (p *Parser) fail(err error) bool {
	p.state.err = err
	return false
}

// resetNodes returns the subtree rooted at p to its unparsed state.
func (p *Parser) resetNodes() {
	p.matched = false
	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.(Option).reset()
	}
	for _, arg := range p.positionals {
		arg.reset()
	}
	for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.(*Parser).resetNodes()
	}
}

// consumePositional feeds tok to the positional slot at *idx, advancing
// past non-variadic slots. It reports whether the parse may go on.
func (p *Parser) consumePositional(tok string, idx *int) bool {
	if *idx >= len(p.positionals) {
		return p.fail(fmt.Errorf("%w '%s'", ErrUnexpectedArgument, tok))
	}
	arg := p.positionals[*idx]
	if err := arg.ParseArg(tok); err != nil {
		return p.fail(err)
	}
	arg.markParsed()
	if !arg.IsVariadic() {
		*idx++
	}
	return true
}

// tryOptions offers a prefix-stripped token to every option in declaration
// order. When the tree's prefixes are equal each option is also tried with
// the opposite form before moving on. It reports whether some option took
// the token; failed reports a recorded error.
func (p *Parser) tryOptions(arg string, short bool) (parsed, failed bool) {
	samePrefix := p.state.prefix == p.state.shortPrefix
	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(Option)
		ok, err := opt.ParseArg(arg, short)
		if err != nil {
			p.fail(err)
			return false, true
		}
		if ok {
			opt.markParsed()
			return true, false
		}
		if samePrefix {
			ok, err = opt.ParseArg(arg, !short)
			if err != nil {
				p.fail(err)
				return false, true
			}
			if ok {
				opt.markParsed()
				return true, false
			}
		}
	}
	return false, false
}

// parse runs the recursive descent over s. The parser matches its own name
// first; a mismatch consumes nothing and is not an error, it just means
// the stream belongs to someone else.
func (p *Parser) parse(s *parse.State) bool {
	if top, ok := s.Peek(); !ok || top != p.name {
		return false
	}
	s.Next()
	p.matched = true

	positionalsOnly := false
	positionalIdx := 0

	for {
		fullArg, ok := s.Peek()
		if !ok {
			break
		}

		if positionalsOnly {
			if !p.consumePositional(fullArg, &positionalIdx) {
				return false
			}
			s.Next()
			continue
		}

		if fullArg == "--" {
			positionalsOnly = true
			s.Next()
			continue
		}

		var arg string
		var short bool
		switch {
		case strings.HasPrefix(fullArg, p.state.prefix):
			arg = fullArg[len(p.state.prefix):]
		case p.HasShortPrefix() && strings.HasPrefix(fullArg, p.state.shortPrefix):
			arg = fullArg[len(p.state.shortPrefix):]
			short = true
		default:
			// A bare token names a subcommand or starts the positionals.
			for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
				if pair.Value.(*Parser).parse(s) {
					return true
				}
				if p.state.err != nil {
					return false
				}
			}
			positionalsOnly = true
			if !p.consumePositional(fullArg, &positionalIdx) {
				return false
			}
			s.Next()
			continue
		}

		parsed, failed := p.tryOptions(arg, short)
		if failed {
			return false
		}
		if !parsed {
			return p.fail(fmt.Errorf("%w '%s'", ErrUnknownOption, fullArg))
		}
		s.Next()
	}

	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(Option)
		if !opt.HasValue() {
			return p.fail(fmt.Errorf("%w '%s%s'", ErrMissingOption, p.state.prefix, opt.Name()))
		}
	}
	for _, arg := range p.positionals {
		if !arg.HasValue() {
			return p.fail(fmt.Errorf("%w '%s'", ErrMissingArgument, arg.MetaVar()))
		}
	}

	return p.state.err == nil
}
