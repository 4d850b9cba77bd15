// Package token defines the lexical data model shared by the lexer and
// parser: token kinds, the immutable Token type, interned Identifiers with
// a semantic role, the closed Constant variant, StringLiterals, and
// BalancedTokenSequence.
package token

import "fmt"

// Kind classifies a Token. The lexer emits Whitespace and Comment tokens
// only when lexer.Options.AcceptComments is set; otherwise it skips them.
type Kind int

const (
	EOF Kind = iota
	Keyword
	Identifier
	Constant
	StringLiteral
	Punctuator
	HeaderName
	PPNumber
	Placeholder
	Comment
	Whitespace
	// Splice is the quasi-quoting interpolation token (design notes §9):
	// a caller-supplied slot for a pre-built AST fragment. The lexer never
	// produces it, and no parser production accepts it.
	Splice
	// Error is the lexer's own diagnostic token for an unrecoverable
	// byte (spec §4.B: "on an irrecoverable byte, emits a diagnostic
	// token and skips one byte").
	Error
)

var kindNames = [...]string{
	EOF:           "EOF",
	Keyword:       "keyword",
	Identifier:    "identifier",
	Constant:      "constant",
	StringLiteral: "string-literal",
	Punctuator:    "punctuator",
	HeaderName:    "header-name",
	PPNumber:      "pp-number",
	Placeholder:   "placeholder",
	Comment:       "comment",
	Whitespace:    "whitespace",
	Splice:        "splice",
	Error:         "error",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
