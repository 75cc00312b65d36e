// Package diagnostics implements the severity-tagged, provenance-chained
// error accumulator used throughout the compiler (spec.md §4.7).
//
// Two distinct error universes exist in this codebase: structural failures
// (unreadable files, malformed UTF-8) are plain Go errors; everything the
// compiler itself has an opinion about - a malformed property, an
// unresolved reference, a duplicate type - is an Errata entry. An Errata is
// never "returned as an error"; callers inspect its Severity.
package diagnostics

import (
	"fmt"
	"strings"
)

// Severity orders diagnostics from informational to fatal. Ordering matters:
// Severity comparisons (<, >=) drive every "is this still ok" decision in
// the compiler.
type Severity uint8

const (
	Info Severity = iota
	Warn
	Error
)

// String renders the severity the way it appears in formatted diagnostics.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Note is a single diagnostic entry: a severity, formatted text, and an
// optional chain of prior diagnostics that caused it (provenance).
type Note struct {
	Severity Severity
	Text     string
	Causes   []Note
}

// String formats a Note and its cause chain for display.
func (n Note) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(n.Severity.String())
	b.WriteString("] ")
	b.WriteString(n.Text)
	for _, c := range n.Causes {
		b.WriteString("\n    caused by: ")
		b.WriteString(c.String())
	}
	return b.String()
}

// Errata accumulates Notes in insertion order. The zero value is a valid,
// empty Errata.
type Errata struct {
	notes []Note
}

// New returns an empty Errata.
func New() Errata {
	return Errata{}
}

// Info appends an informational note.
func (e *Errata) Info(format string, args ...any) *Errata {
	return e.append(Info, format, args...)
}

// Warn appends a warning note.
func (e *Errata) Warn(format string, args ...any) *Errata {
	return e.append(Warn, format, args...)
}

// Error appends an error note.
func (e *Errata) Error(format string, args ...any) *Errata {
	return e.append(Error, format, args...)
}

func (e *Errata) append(sev Severity, format string, args ...any) *Errata {
	e.notes = append(e.notes, Note{Severity: sev, Text: fmt.Sprintf(format, args...)})
	return e
}

// Note splices another Errata's notes into the receiver, preserving order.
// This is the flat-merge form used when a processor's own diagnostics
// simply need to be folded into the caller's.
func (e *Errata) Note(other Errata) *Errata {
	e.notes = append(e.notes, other.notes...)
	return e
}

// NoteCause appends a new note whose cause chain is the given Errata's
// notes, preserving provenance ("failed to generate X, used at Y") without
// flattening the child diagnostics into the parent's top-level list.
func (e *Errata) NoteCause(sev Severity, cause Errata, format string, args ...any) *Errata {
	n := Note{
		Severity: sev,
		Text:     fmt.Sprintf(format, args...),
		Causes:   append([]Note(nil), cause.notes...),
	}
	e.notes = append(e.notes, n)
	return e
}

// Severity returns the maximum severity among contained notes, or Info if
// the Errata is empty.
func (e Errata) Severity() Severity {
	max := Info
	for _, n := range e.notes {
		if n.Severity > max {
			max = n.Severity
		}
		for _, c := range n.Causes {
			if c.Severity > max {
				max = c.Severity
			}
		}
	}
	return max
}

// IsOK reports whether the maximum severity is below Error.
func (e Errata) IsOK() bool {
	return e.Severity() < Error
}

// Empty reports whether no notes have been recorded.
func (e Errata) Empty() bool {
	return len(e.notes) == 0
}

// Notes returns the accumulated notes in insertion order. The slice is
// owned by the Errata; callers must not mutate it.
func (e Errata) Notes() []Note {
	return e.notes
}

// Strings renders every note (and its cause chain) as display text, in
// insertion order - the shape the CLI and the HTTP handlers both print.
func (e Errata) Strings() []string {
	out := make([]string, 0, len(e.notes))
	for _, n := range e.notes {
		out = append(out, n.String())
	}
	return out
}

// Rv pairs a value with the diagnostics produced while computing it - used
// by operations (such as reference resolution) that both produce a value
// and may annotate the computation with notes.
type Rv[T any] struct {
	Value  T
	Errata Errata
}

// IsOK reports whether the value's errata is below Error severity.
func (r Rv[T]) IsOK() bool {
	return r.Errata.IsOK()
}
