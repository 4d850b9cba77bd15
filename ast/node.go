// Package ast defines the closed abstract syntax tree for C23 translation
// units and the visitor framework used to traverse it.
//
// Every syntactic category from the grammar (6.4-6.9) is modeled as a
// sealed Go interface: an unexported marker method closes the set of
// types that may implement it, and one concrete struct exists per
// grammar production. This mirrors a Rust enum's exhaustiveness in Go,
// following the same pattern the teacher's internal/ast package uses for
// its own Node/Accept hierarchy, flattened one level: where the grammar
// nests enums inside enums (Expression containing PostfixExpression
// containing PrimaryExpression, and so on), this package instead gives
// every terminal and composite form a single concrete type directly
// implementing the outermost family (Expression, Declarator, ...). That
// avoids a chain of single-field wrapper structs with no semantic content
// of their own, at the cost of one flatter (not nested) type switch in
// Walk and in any consuming visitor.
package ast

import "github.com/c23fe/c23/span"

// Node is the common interface satisfied by every AST node.
type Node interface {
	// Span reports the source range the node was parsed from. Nodes
	// synthesized during error recovery still carry a best-effort span
	// (typically the span of the token that triggered recovery) so
	// diagnostics and the printer can still point somewhere useful.
	Span() span.Span
	// Accept dispatches to the matching Visit method on v.
	Accept(v Visitor) any
}

// base is embedded by every concrete node to supply Span without
// repeating the same one-line method on 100+ types.
type base struct{ Sp span.Span }

func (b base) Span() span.Span { return b.Sp }

// SetSpan updates the node's span. Concrete node literals are built field
// by field (base is unexported, so it cannot appear in a keyed literal
// outside this package); callers such as the parser set the span once a
// production's extent is known via this promoted method instead.
func (b *base) SetSpan(sp span.Span) { b.Sp = sp }
