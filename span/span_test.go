package span

import (
	"bytes"
	"strings"
	"testing"
)

func TestSpanIsValid(t *testing.T) {
	cases := []struct {
		name string
		sp   Span
		want bool
	}{
		{"ordinary", Span{File: 0, Start: 2, End: 5}, true},
		{"empty range", Span{File: 0, Start: 3, End: 3}, true},
		{"negative file", Span{File: -1, Start: 0, End: 1}, false},
		{"negative start", Span{File: 0, Start: -1, End: 1}, false},
		{"end before start", Span{File: 0, Start: 5, End: 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.sp.IsValid(); got != c.want {
				t.Fatalf("IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{File: 0, Start: 2, End: 9}).Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}
	if got := (Span{File: 0, Start: 5, End: 2}).Len(); got != 0 {
		t.Fatalf("Len() of an invalid span = %d, want 0", got)
	}
}

func TestSpanContains(t *testing.T) {
	sp := Span{File: 0, Start: 10, End: 20}
	if !sp.Contains(10) {
		t.Fatalf("want span to contain its own start (half-open lower bound)")
	}
	if sp.Contains(20) {
		t.Fatalf("want span to exclude its end (half-open upper bound)")
	}
	if sp.Contains(9) || sp.Contains(21) {
		t.Fatalf("want span to reject offsets outside its range")
	}
}

func TestMerge(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}
	got := Merge(a, b)
	want := Span{File: 0, Start: 2, End: 10}
	if got != want {
		t.Fatalf("Merge(a, b) = %+v, want %+v", got, want)
	}
	// Merge is commutative.
	if got2 := Merge(b, a); got2 != want {
		t.Fatalf("Merge(b, a) = %+v, want %+v", got2, want)
	}
}

func TestMergeWithInvalidOperand(t *testing.T) {
	valid := Span{File: 0, Start: 3, End: 8}
	invalid := Span{File: 0, Start: 5, End: 2}

	if got := Merge(invalid, valid); got != valid {
		t.Fatalf("Merge(invalid, valid) = %+v, want %+v", got, valid)
	}
	if got := Merge(valid, invalid); got != valid {
		t.Fatalf("Merge(valid, invalid) = %+v, want %+v", got, valid)
	}
}

func TestMergeDifferentFilesReturnsFirst(t *testing.T) {
	a := Span{File: 0, Start: 0, End: 5}
	b := Span{File: 1, Start: 0, End: 5}
	if got := Merge(a, b); got != a {
		t.Fatalf("Merge across files = %+v, want first operand %+v unchanged", got, a)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Filename: "t.c", Line: 3, Column: 7}
	if got, want := p.String(), "t.c:3:7"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	p.Filename = ""
	if got, want := p.String(), "3:7"; got != want {
		t.Fatalf("String() without filename = %q, want %q", got, want)
	}
}

func TestMapPositionBuildsIndexLazily(t *testing.T) {
	m := NewMap()
	id := m.AddFile("t.c", []byte("int a;\nint b;\nint c;\n"))

	pos := m.Position(id, 7) // first byte of the second line ("int b;\n" starts at 7)
	if pos.Line != 2 || pos.Column != 1 {
		t.Fatalf("Position(7) = %+v, want line 2 column 1", pos)
	}

	pos = m.Position(id, 11) // the 'b' in "int b;"
	if pos.Line != 2 || pos.Column != 5 {
		t.Fatalf("Position(11) = %+v, want line 2 column 5", pos)
	}
}

func TestMapPositionOutOfRange(t *testing.T) {
	m := NewMap()
	id := m.AddFile("t.c", []byte("int a;"))

	if got := m.Position(id, -1); got != (Position{}) {
		t.Fatalf("Position(-1) = %+v, want zero value", got)
	}
	if got := m.Position(id, 1000); got != (Position{}) {
		t.Fatalf("Position(1000) = %+v, want zero value", got)
	}
	if got := m.Position(FileID(99), 0); got != (Position{}) {
		t.Fatalf("Position on unknown file = %+v, want zero value", got)
	}
}

func TestMapText(t *testing.T) {
	m := NewMap()
	id := m.AddFile("t.c", []byte("int main(void);"))

	if got, want := m.Text(Span{File: id, Start: 0, End: 3}), "int"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if got := m.Text(Span{File: id, Start: 0, End: 1000}); got != "" {
		t.Fatalf("Text() past EOF = %q, want empty", got)
	}
}

func TestMapStringSingleAndMultiLine(t *testing.T) {
	m := NewMap()
	id := m.AddFile("t.c", []byte("int a;\nint bbbb;\n"))

	single := m.String(Span{File: id, Start: 0, End: 3})
	if single != "t.c:1:1-4" {
		t.Fatalf("String() for a same-line span = %q, want %q", single, "t.c:1:1-4")
	}

	multi := m.String(Span{File: id, Start: 0, End: 10})
	if !strings.HasPrefix(multi, "t.c:1:1-2:") {
		t.Fatalf("String() for a multi-line span = %q, want a t.c:1:1-2:N prefix", multi)
	}
}

func TestMapRenderPointsAtSpanStart(t *testing.T) {
	m := NewMap()
	id := m.AddFile("t.c", []byte("int a = 1;\n"))

	var buf bytes.Buffer
	m.Render(&buf, Span{File: id, Start: 4, End: 5}, 0)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 rendered lines (position, source, caret), got %d: %q", len(lines), out)
	}
	if lines[1] != "int a = 1;" {
		t.Fatalf("want the source line rendered verbatim, got %q", lines[1])
	}
	caret := lines[2]
	if strings.TrimLeft(caret, " ") != "^" || len(caret)-len(strings.TrimLeft(caret, " ")) != 4 {
		t.Fatalf("want the caret indented to column 4, got %q", caret)
	}
}

func TestMapRenderInvalidSpanIsNoop(t *testing.T) {
	m := NewMap()
	id := m.AddFile("t.c", []byte("int a;"))

	var buf bytes.Buffer
	m.Render(&buf, Span{File: id, Start: 5, End: 2}, 0)
	if buf.Len() != 0 {
		t.Fatalf("want no output for an invalid span, got %q", buf.String())
	}
}
