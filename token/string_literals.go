package token

import "github.com/c23fe/c23/span"

// StringFragment is one physical string-literal token that participates in
// an adjacent-literal concatenation.
type StringFragment struct {
	Encoding EncodingPrefix
	Decoded  string // escape-decoded text, excluding quotes
	Span     span.Span
}

// StringLiterals is the ordered sequence of adjacent string-literal tokens
// C concatenates at translation phase 6. Each fragment's encoding prefix
// is retained for diagnostics even though, post-concatenation, the whole
// sequence has one effective encoding (spec §3 invariant: "string-literal
// concatenation never crosses a different non-compatible encoding prefix
// without diagnostic").
type StringLiterals struct {
	Fragments []StringFragment
}

// Encoding returns the effective encoding of the concatenated literal: the
// first non-default prefix among the fragments, or EncodingNone if every
// fragment is a plain narrow string.
func (s StringLiterals) Encoding() EncodingPrefix {
	for _, f := range s.Fragments {
		if f.Encoding != EncodingNone {
			return f.Encoding
		}
	}
	return EncodingNone
}

// Text concatenates every fragment's decoded text.
func (s StringLiterals) Text() string {
	var out string
	for _, f := range s.Fragments {
		out += f.Decoded
	}
	return out
}

// Span returns the span covering every fragment.
func (s StringLiterals) Span() span.Span {
	var sp span.Span
	for _, f := range s.Fragments {
		sp = span.Merge(sp, f.Span)
	}
	return sp
}
