// Package diag collects parser and lexer diagnostics. Nothing in the core
// ever fails outright; every recoverable condition is reported here instead.
package diag

import (
	"fmt"
	"sort"

	"github.com/c23fe/c23/span"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	// Note is an informational remark, e.g. "ambiguity resolved by typedef
	// environment", only interesting when explicitly requested.
	Note Severity = iota
	// Warning marks a non-standard but accepted construct.
	Warning
	// Error marks a genuine syntactic or structural problem. The parser
	// still produces a placeholder and continues.
	Error
)

// String renders the severity the way diagnostic messages are prefixed.
func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a single (severity, span, message) triple. Spec §6 mandates
// no structured codes at the core level; tools that want them layer their
// own classification on top of Span/Message.
type Diagnostic struct {
	Severity Severity
	Span     span.Span
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Sink accumulates diagnostics in source order. It is single-owner mutable
// during lexing/parsing and read-only afterward — there is no locking.
type Sink struct {
	diags []Diagnostic
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends one diagnostic.
func (s *Sink) Add(sev Severity, sp span.Span, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Severity: sev,
		Span:     sp,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errorf is shorthand for Add(Error, ...).
func (s *Sink) Errorf(sp span.Span, format string, args ...any) {
	s.Add(Error, sp, format, args...)
}

// Warnf is shorthand for Add(Warning, ...).
func (s *Sink) Warnf(sp span.Span, format string, args ...any) {
	s.Add(Warning, sp, format, args...)
}

// Notef is shorthand for Add(Note, ...).
func (s *Sink) Notef(sp span.Span, format string, args ...any) {
	s.Add(Note, sp, format, args...)
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Diagnostics returns all recorded diagnostics, stable-sorted by span start,
// then severity, then insertion order (spec §5: "diagnostics are
// stable-ordered by span start").
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start != out[j].Span.Start {
			return out[i].Span.Start < out[j].Span.Start
		}
		return out[i].Severity > out[j].Severity
	})

	return out
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int { return len(s.diags) }
