package token

import "github.com/c23fe/c23/span"

// Sequence is a flat, ordered list of tokens.
type Sequence []Token

// BalancedTokenSequence is a token sequence in which every `(`, `[`, `{`
// is matched by a corresponding closer (spec §3). The lexer establishes
// this invariant as it scans: Unclosed is non-empty only when recovery
// had to treat end-of-input as closing one or more open groups (spec
// §4.B: "recovery closes all open groups at EOF").
type BalancedTokenSequence struct {
	Tokens   Sequence
	Unclosed int // count of groups implicitly closed at EOF by recovery
}

var closers = map[string]string{"(": ")", "[": "]", "{": "}"}

// IsOpener reports whether text opens a bracket group.
func IsOpener(text string) bool {
	_, ok := closers[text]
	return ok
}

// IsCloser reports whether text closes a bracket group.
func IsCloser(text string) bool {
	switch text {
	case ")", "]", "}":
		return true
	default:
		return false
	}
}

// Closes reports whether closer is the bracket that matches opener.
func Closes(opener, closer string) bool {
	return closers[opener] == closer
}

// MatchGroup scans forward from openIdx (which must hold an opener token)
// and returns the index of its matching closer, accounting for nested
// groups of the same or different bracket kinds. It returns (-1, false)
// if the group is never closed before the sequence ends.
//
// The parser uses it to extract an attribute's argument clause as a
// balanced subsequence, without the lexer having to materialize a full
// nested group tree it would traverse much less often than it would
// build one.
func MatchGroup(seq Sequence, openIdx int) (closeIdx int, ok bool) {
	if openIdx < 0 || openIdx >= len(seq) || seq[openIdx].Kind != Punctuator || !IsOpener(seq[openIdx].Text) {
		return -1, false
	}

	depth := 0
	opener := seq[openIdx].Text

	for i := openIdx; i < len(seq); i++ {
		t := seq[i]
		if t.Kind != Punctuator {
			continue
		}

		switch {
		case t.Text == opener:
			depth++
		case Closes(opener, t.Text):
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return -1, false
}

// Span returns the span covering the whole sequence.
func (s Sequence) Span() span.Span {
	if len(s) == 0 {
		return span.Span{}
	}
	return span.Merge(s[0].Span, s[len(s)-1].Span)
}
