package diag

import (
	"testing"

	"github.com/c23fe/c23/span"
)

func TestSeverityString(t *testing.T) {
	cases := []struct {
		sev  Severity
		want string
	}{
		{Note, "note"},
		{Warning, "warning"},
		{Error, "error"},
		{Severity(99), "severity(99)"},
	}
	for _, c := range cases {
		if got := c.sev.String(); got != c.want {
			t.Fatalf("Severity(%d).String() = %q, want %q", c.sev, got, c.want)
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: Warning, Message: "non-standard range designator"}
	want := "warning: non-standard range designator"
	if got := d.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSinkAddAndShorthands(t *testing.T) {
	s := NewSink()
	s.Errorf(span.Span{Start: 0, End: 1}, "expected %q", ";")
	s.Warnf(span.Span{Start: 1, End: 2}, "non-standard extension")
	s.Notef(span.Span{Start: 2, End: 3}, "ambiguity resolved by typedef environment")

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	diags := s.Diagnostics()
	if diags[0].Severity != Error || diags[0].Message != `expected ";"` {
		t.Fatalf("want the Errorf diagnostic first with its formatted message, got %+v", diags[0])
	}
	if diags[1].Severity != Warning {
		t.Fatalf("want the Warnf diagnostic second, got %+v", diags[1])
	}
	if diags[2].Severity != Note {
		t.Fatalf("want the Notef diagnostic third, got %+v", diags[2])
	}
}

func TestSinkHasErrors(t *testing.T) {
	s := NewSink()
	if s.HasErrors() {
		t.Fatalf("want HasErrors false on an empty sink")
	}
	s.Warnf(span.Span{}, "just a warning")
	if s.HasErrors() {
		t.Fatalf("want HasErrors false when only warnings were recorded")
	}
	s.Errorf(span.Span{}, "a real problem")
	if !s.HasErrors() {
		t.Fatalf("want HasErrors true once an Error-severity diagnostic exists")
	}
}

// TestDiagnosticsOrderingBySpanThenSeverity exercises the stable-sort
// contract: diagnostics are ordered by span start first, and for two
// diagnostics at the same span start, higher severity (Error) sorts
// before lower severity (Warning, then Note).
func TestDiagnosticsOrderingBySpanThenSeverity(t *testing.T) {
	s := NewSink()
	s.Notef(span.Span{Start: 5}, "note at 5")
	s.Errorf(span.Span{Start: 0}, "error at 0")
	s.Warnf(span.Span{Start: 5}, "warning at 5")
	s.Errorf(span.Span{Start: 5}, "error at 5")

	diags := s.Diagnostics()
	if len(diags) != 4 {
		t.Fatalf("want 4 diagnostics, got %d", len(diags))
	}
	if diags[0].Message != "error at 0" {
		t.Fatalf("want the span-0 diagnostic first, got %+v", diags[0])
	}
	if diags[1].Message != "error at 5" || diags[1].Severity != Error {
		t.Fatalf("want error-at-5 to sort before warning/note at the same span, got %+v", diags[1])
	}
	if diags[2].Message != "warning at 5" {
		t.Fatalf("want warning-at-5 next, got %+v", diags[2])
	}
	if diags[3].Message != "note at 5" {
		t.Fatalf("want note-at-5 last, got %+v", diags[3])
	}
}

func TestDiagnosticsReturnsACopy(t *testing.T) {
	s := NewSink()
	s.Notef(span.Span{}, "one")

	first := s.Diagnostics()
	s.Notef(span.Span{}, "two")
	second := s.Diagnostics()

	if len(first) != 1 {
		t.Fatalf("want the first snapshot to remain length 1 after a later Add, got %d", len(first))
	}
	if len(second) != 2 {
		t.Fatalf("want the second snapshot to reflect the later Add, got %d", len(second))
	}
}
