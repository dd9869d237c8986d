package argue

import "errors"

// Every parse failure wraps one of these sentinel values, so callers can
// sort outcomes with errors.Is while the message names the offending token.
var (
	// ErrUnknownOption is recorded when a prefixed token is accepted by
	// none of the parser's options.
	ErrUnknownOption = errors.New("unknown option")
	// ErrUnexpectedArgument is recorded when a positional token arrives
	// after every positional slot has been filled.
	ErrUnexpectedArgument = errors.New("unexpected positional argument")
	// ErrMissingOption is recorded when the command line ends while an
	// option without a default still has no value.
	ErrMissingOption = errors.New("missing option")
	// ErrMissingArgument is recorded when the command line ends while a
	// positional argument without a default still has no value.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidValue is recorded when an option or positional argument
	// recognizes a token but cannot use its value.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidCommandLine is recorded when ParseString cannot split its
	// input into tokens.
	ErrInvalidCommandLine = errors.New("invalid command line")
)
