package parse

import "github.com/google/shlex"

// Split breaks a command line into argument tokens, honoring shell-style
// quoting and escapes. The same grammar is used on every platform.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
