package token

import (
	"testing"

	"github.com/c23fe/c23/span"
)

func TestIsOpenerAndIsCloser(t *testing.T) {
	for _, open := range []string{"(", "[", "{"} {
		if !IsOpener(open) {
			t.Fatalf("want %q recognized as an opener", open)
		}
	}
	if IsOpener(")") {
		t.Fatalf("want a closer not recognized as an opener")
	}
	for _, close_ := range []string{")", "]", "}"} {
		if !IsCloser(close_) {
			t.Fatalf("want %q recognized as a closer", close_)
		}
	}
	if IsCloser("(") {
		t.Fatalf("want an opener not recognized as a closer")
	}
}

func TestCloses(t *testing.T) {
	if !Closes("(", ")") || !Closes("[", "]") || !Closes("{", "}") {
		t.Fatalf("want each bracket kind to close only its own matching pair")
	}
	if Closes("(", "]") {
		t.Fatalf("want mismatched bracket kinds to not close each other")
	}
}

func punct(text string) Token { return Token{Kind: Punctuator, Text: text} }

func TestMatchGroupSimple(t *testing.T) {
	seq := Sequence{punct("("), {Kind: Identifier, Text: "x"}, punct(")")}
	closeIdx, ok := MatchGroup(seq, 0)
	if !ok || closeIdx != 2 {
		t.Fatalf("MatchGroup = (%d, %v), want (2, true)", closeIdx, ok)
	}
}

func TestMatchGroupNested(t *testing.T) {
	// f( a, (b, c), [d] )
	seq := Sequence{
		punct("("), {Kind: Identifier, Text: "a"}, punct(","),
		punct("("), {Kind: Identifier, Text: "b"}, punct(","), {Kind: Identifier, Text: "c"}, punct(")"),
		punct(","), punct("["), {Kind: Identifier, Text: "d"}, punct("]"),
		punct(")"),
	}
	closeIdx, ok := MatchGroup(seq, 0)
	if !ok || closeIdx != len(seq)-1 {
		t.Fatalf("MatchGroup = (%d, %v), want (%d, true)", closeIdx, ok, len(seq)-1)
	}

	innerClose, ok := MatchGroup(seq, 3)
	if !ok || innerClose != 7 {
		t.Fatalf("inner MatchGroup = (%d, %v), want (7, true)", innerClose, ok)
	}
}

func TestMatchGroupUnclosed(t *testing.T) {
	seq := Sequence{punct("("), {Kind: Identifier, Text: "x"}}
	_, ok := MatchGroup(seq, 0)
	if ok {
		t.Fatalf("want MatchGroup to report false for an unclosed group")
	}
}

func TestMatchGroupRejectsNonOpenerStart(t *testing.T) {
	seq := Sequence{{Kind: Identifier, Text: "x"}, punct(")")}
	if _, ok := MatchGroup(seq, 0); ok {
		t.Fatalf("want MatchGroup to reject a start index that isn't an opener")
	}
	if _, ok := MatchGroup(seq, -1); ok {
		t.Fatalf("want MatchGroup to reject an out-of-range start index")
	}
	if _, ok := MatchGroup(seq, 10); ok {
		t.Fatalf("want MatchGroup to reject an out-of-range start index")
	}
}

func TestSequenceSpan(t *testing.T) {
	seq := Sequence{
		{Span: span.Span{File: 0, Start: 0, End: 3}},
		{Span: span.Span{File: 0, Start: 3, End: 4}},
		{Span: span.Span{File: 0, Start: 4, End: 9}},
	}
	got := seq.Span()
	want := span.Span{File: 0, Start: 0, End: 9}
	if got != want {
		t.Fatalf("Span() = %+v, want %+v", got, want)
	}
}

func TestSequenceSpanEmpty(t *testing.T) {
	var seq Sequence
	if got := seq.Span(); got != (span.Span{}) {
		t.Fatalf("Span() on empty sequence = %+v, want zero value", got)
	}
}
