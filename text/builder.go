// Package text implements the indentation-aware, word-wrapping text builder
// used to lay out hint and help messages.
package text

import "strings"

// SpaceChars holds every byte the builder treats as a word separator.
const SpaceChars = " \f\n\r\t\v"

// IsSpace reports whether ch is one of SpaceChars.
func IsSpace(ch byte) bool {
	return strings.IndexByte(SpaceChars, ch) >= 0
}

// Builder accumulates word-wrapped, indented paragraphs of text.
// Widths are measured in bytes.
type Builder interface {
	// PutText appends text to the current line, wrapping it on word
	// boundaries when it exceeds the maximum paragraph width. Words are
	// never split, so a single word may produce a line over the maximum
	// width. Any space character acts as a separator and is written as a
	// single ASCII space. A '\n' within text ends the current line.
	PutText(text string)
	// NewLine ends the current line, trimming any trailing spaces.
	// It does nothing when the current line is empty.
	NewLine()
	// Spacer ends the current line and separates it from the next one
	// with a single empty line. Consecutive calls do not stack: at most
	// one empty line is produced.
	Spacer()
	// Indent indents all lines started after this call by one more unit.
	// Indentation does not count towards the maximum paragraph width.
	Indent()
	// DeIndent undoes one Indent. The indentation level never goes below
	// zero.
	DeIndent()
	// Build returns all text written so far, trimmed of leading and
	// trailing whitespace and terminated by exactly one '\n', then resets
	// the builder so it can be reused. An empty builder yields "\n".
	Build() string
}

// DefaultBuilder is the Builder implementation used by this module's help
// rendering. The zero value is not usable; construct it with New or
// NewConfigured.
type DefaultBuilder struct {
	indent       string
	indentOnWrap bool
	maxWidth     int

	text       []byte
	line       []byte
	lineIndent int
	level      int
}

var _ Builder = (*DefaultBuilder)(nil)

// New returns a DefaultBuilder with two-space indent units, indent-on-wrap
// enabled and a maximum paragraph width of 80 bytes.
func New() *DefaultBuilder {
	return NewConfigured("  ", true, 80)
}

// NewConfigured returns a DefaultBuilder with the given indent unit,
// wrapped-line indentation behavior and maximum paragraph width. When
// indentOnWrap is set, lines created by wrapping are indented one extra
// unit relative to the paragraph they belong to.
func NewConfigured(indent string, indentOnWrap bool, maxParagraphWidth int) *DefaultBuilder {
	return &DefaultBuilder{
		indent:       indent,
		indentOnWrap: indentOnWrap,
		maxWidth:     maxParagraphWidth,
	}
}

func (b *DefaultBuilder) PutText(text string) {
	for {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			b.putLine(text)
			return
		}
		b.putLine(text[:nl])
		b.NewLine()
		text = text[nl+1:]
	}
}

// putLine word-wraps a single newline-free chunk onto the current line.
func (b *DefaultBuilder) putLine(line string) {
	for {
		width := len(b.line) - b.lineIndent
		wrapped := len(b.line) > 0 && width >= b.maxWidth &&
			(IsSpace(b.line[len(b.line)-1]) || (len(line) > 0 && IsSpace(line[0])))
		if wrapped {
			b.NewLine()
		}
		b.putLineIndent(wrapped)

		sep := strings.IndexAny(line, SpaceChars)
		if sep < 0 {
			b.line = append(b.line, line...)
			return
		}
		if sep > 0 {
			b.line = append(b.line, line[:sep]...)
			b.line = append(b.line, ' ')
		} else if !wrapped {
			// A separator right after a wrap has already done its job.
			b.line = append(b.line, ' ')
		}
		line = line[sep+1:]
	}
}

// putLineIndent writes the indentation for a new line. Lines that already
// hold text are left alone.
func (b *DefaultBuilder) putLineIndent(wrapped bool) {
	if len(b.line) > 0 {
		return
	}
	b.lineIndent = b.level * len(b.indent)
	if wrapped && b.indentOnWrap {
		b.lineIndent += len(b.indent)
		b.line = append(b.line, b.indent...)
	}
	for i := 0; i < b.level; i++ {
		b.line = append(b.line, b.indent...)
	}
}

func (b *DefaultBuilder) NewLine() {
	if len(b.line) == 0 {
		return
	}
	line := b.line
	for len(line) > 0 && IsSpace(line[len(line)-1]) {
		line = line[:len(line)-1]
	}
	if len(b.text) > 0 {
		b.text = append(b.text, '\n')
	}
	b.text = append(b.text, line...)
	b.line = b.line[:0]
	b.lineIndent = 0
}

func (b *DefaultBuilder) Spacer() {
	b.NewLine()
	if len(b.text) == 0 || b.text[len(b.text)-1] != '\n' {
		b.text = append(b.text, '\n')
	}
}

func (b *DefaultBuilder) Indent() {
	b.level++
}

func (b *DefaultBuilder) DeIndent() {
	if b.level > 0 {
		b.level--
	}
}

func (b *DefaultBuilder) Build() string {
	out := b.text
	if len(out) > 0 {
		out = append(out, '\n')
	}
	out = append(out, b.line...)
	for len(out) > 0 && IsSpace(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && IsSpace(out[0]) {
		out = out[1:]
	}
	out = append(out, '\n')

	b.text = nil
	b.line = nil
	b.lineIndent = 0
	b.level = 0
	return string(out)
}
