// Package emit provides the indented, newline-aware text sink the compiler
// writes generated code into (spec.md §4.1). Two independent Buffers back
// the header and source streams; keeping indentation bookkeeping here is
// what lets the property processors in internal/compiler stay free of it.
package emit

import (
	"fmt"
	"strings"
)

// Buffer is an indented, start-of-line-aware text sink. Create one with
// New: a zero Buffer starts with the start-of-line flag clear, so its first
// line is not indented.
type Buffer struct {
	b      strings.Builder
	indent int
	sol    bool
}

// New returns a Buffer ready for writing, starting at indent level zero.
func New() *Buffer {
	return &Buffer{sol: true}
}

// Indent raises the current indentation level by one.
func (b *Buffer) Indent() {
	b.indent++
}

// Exdent lowers the current indentation level by one. It is a no-op below
// zero: a processor that mismatches braces should not corrupt sibling
// output.
func (b *Buffer) Exdent() {
	if b.indent > 0 {
		b.indent--
	}
}

// IndentLevel reports the current indentation depth, for callers that need
// to restore it across a recursive call.
func (b *Buffer) IndentLevel() int {
	return b.indent
}

// Writef formats text and feeds it through the line-oriented write routine:
// at start-of-line it writes two spaces per indent level then clears the
// start-of-line flag; the text is split on '\n', each terminated line is
// written and the flag is set after every newline; a trailing unterminated
// fragment leaves the flag clear so the next Writef continues on the same
// line.
func (b *Buffer) Writef(format string, args ...any) {
	if len(args) == 0 {
		b.WriteString(format)
		return
	}
	b.WriteString(fmt.Sprintf(format, args...))
}

// WriteString is Writef without formatting, for literal text.
func (b *Buffer) WriteString(text string) {
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			b.writeSameLine(text)
			return
		}
		line := text[:nl]
		if line != "" {
			b.writeSameLine(line)
		}
		b.b.WriteByte('\n')
		b.sol = true
		text = text[nl+1:]
	}
}

func (b *Buffer) writeSameLine(fragment string) {
	if b.sol {
		b.b.WriteString(strings.Repeat("  ", b.indent))
		b.sol = false
	}
	b.b.WriteString(fragment)
}

// String returns the accumulated text.
func (b *Buffer) String() string {
	return b.b.String()
}

// Len reports the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.b.Len()
}
