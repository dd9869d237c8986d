// Package parse provides the token stream consumed by the argument parser
// and the command-line splitter feeding it.
package parse

import "github.com/ef-ds/deque"

// State is a FIFO view over the raw command-line tokens still to be parsed.
// Tokens are consumed front to back; a token taken with Next is gone for
// good, which is what lets a parser hand the rest of the stream to one of
// its subcommands.
type State struct {
	tokens *deque.Deque
}

// NewState creates a State holding args in order.
func NewState(args []string) *State {
	d := deque.New()
	for _, arg := range args {
		d.PushBack(arg)
	}
	return &State{tokens: d}
}

// Len returns the number of tokens left.
func (s *State) Len() int {
	return s.tokens.Len()
}

// Empty reports whether every token has been consumed.
func (s *State) Empty() bool {
	return s.tokens.Len() == 0
}

// Peek returns the next token without consuming it.
func (s *State) Peek() (string, bool) {
	v, ok := s.tokens.Front()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Next consumes and returns the next token.
func (s *State) Next() (string, bool) {
	v, ok := s.tokens.PopFront()
	if !ok {
		return "", false
	}
	return v.(string), true
}
