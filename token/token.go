package token

import "github.com/c23fe/c23/span"

// Token is a single lexical element. Tokens are immutable once produced.
type Token struct {
	Kind Kind
	// Text is the token's canonical spelling: for Identifier tokens this
	// is the universal-character-name-decoded text (spec invariant:
	// "every identifier token preserves its original spelling after
	// universal-character-name decoding"); for everything else it is the
	// raw source spelling.
	Text string
	// Raw is the literal, undecoded source spelling. Equal to Text for
	// every kind except Identifier tokens that contained a \u/\U escape.
	Raw string
	// Value carries the kind-appropriate payload: a ConstantValue (such as
	// *IntegerConstant) for Constant tokens, *StringLiterals for
	// StringLiteral tokens, an *IdentifierInfo for Identifier tokens, an
	// ast.Node for Splice tokens, and nil otherwise (Keyword tokens
	// included).
	Value any
	Span  span.Span
}

// IsKeyword reports whether t is a keyword token spelled kw.
func (t Token) IsKeyword(kw string) bool {
	return t.Kind == Keyword && t.Text == kw
}

// IsPunctuator reports whether t is a punctuator token spelled p.
func (t Token) IsPunctuator(p string) bool {
	return t.Kind == Punctuator && t.Text == p
}

// String renders t for diagnostics and test failures.
func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + quoteShort(t.Text)
}

func quoteShort(s string) string {
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	return "`" + s + "`"
}
