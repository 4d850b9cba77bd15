package token

import (
	"testing"

	"github.com/c23fe/c23/span"
)

func TestStringLiteralsEncodingFirstNonDefault(t *testing.T) {
	s := StringLiterals{Fragments: []StringFragment{
		{Encoding: EncodingNone, Decoded: "a"},
		{Encoding: EncodingUpperU, Decoded: "b"},
		{Encoding: EncodingWide, Decoded: "c"},
	}}
	if got := s.Encoding(); got != EncodingUpperU {
		t.Fatalf("Encoding() = %v, want %v", got, EncodingUpperU)
	}
}

func TestStringLiteralsEncodingAllDefault(t *testing.T) {
	s := StringLiterals{Fragments: []StringFragment{
		{Encoding: EncodingNone, Decoded: "a"},
		{Encoding: EncodingNone, Decoded: "b"},
	}}
	if got := s.Encoding(); got != EncodingNone {
		t.Fatalf("Encoding() = %v, want %v", got, EncodingNone)
	}
}

func TestStringLiteralsTextConcatenates(t *testing.T) {
	s := StringLiterals{Fragments: []StringFragment{
		{Decoded: "hello "},
		{Decoded: "world"},
	}}
	if got, want := s.Text(), "hello world"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestStringLiteralsSpanCoversAllFragments(t *testing.T) {
	s := StringLiterals{Fragments: []StringFragment{
		{Span: span.Span{File: 0, Start: 0, End: 5}},
		{Span: span.Span{File: 0, Start: 10, End: 15}},
	}}
	got := s.Span()
	want := span.Span{File: 0, Start: 0, End: 15}
	if got != want {
		t.Fatalf("Span() = %+v, want %+v", got, want)
	}
}
