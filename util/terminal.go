// Package util holds small helpers shared by the parser and its examples.
package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of the terminal attached to fd,
// or fallback when fd is not a terminal or its size cannot be read.
func TerminalWidth(fd uintptr, fallback int) int {
	if !term.IsTerminal(int(fd)) {
		return fallback
	}
	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// StdoutWidth returns the width of the terminal on standard output, or
// fallback when standard output is not a terminal.
func StdoutWidth(fallback int) int {
	return TerminalWidth(os.Stdout.Fd(), fallback)
}
