// Package printer renders an ast.Node back to C23 source text. It walks
// the tree as an ast.Visitor, rebuilding syntax the parser discarded
// (delimiters, keywords) and re-inserting parentheses only where the
// precedence of a child expression would otherwise change its meaning.
//
// There is no dependency on a layout/pretty-printing library here: the
// grammar this package prints is expression- and declaration-heavy
// rather than block-structured prose, so a straight recursive-descent
// writer over a bytes.Buffer, indenting compound statements by hand, is
// both simpler and more transparent than pulling in a general-purpose
// document formatter for it.
package printer

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/token"
)

// context mirrors the teacher's original_source/src/printer.rs Context:
// the precedence level and associativity of the position an expression
// is about to be printed into, used to decide whether it needs
// parentheses around it.
type context struct {
	precedence int
	assoc      bool
}

// needsParens reports whether an expression with precedence exprPrec,
// printed into c, requires parentheses to preserve its grouping.
func (c context) needsParens(exprPrec int) bool {
	if exprPrec < c.precedence {
		return true
	}
	return exprPrec == c.precedence && c.assoc
}

// Precedence levels for expression forms the BinaryOperator table
// doesn't already rank. BinaryOperator.Precedence occupies 1 (logical
// ||) through 10 (* / %); binPrecShift pushes that range up so comma,
// assignment, and the conditional operator — all looser-binding than
// any binary operator — fit below it without colliding with any actual
// BinaryOperator precedence value, and cast/unary/postfix fit above it.
const (
	binPrecShift = 2

	precComma       = 0
	precAssignment  = 1
	precConditional = 2
	precCast        = 10 + binPrecShift + 1
	precUnary       = 10 + binPrecShift + 2
	precPostfix     = 10 + binPrecShift + 3
)

// binPrec maps a BinaryOperator's raw 1-10 precedence onto the printer's
// full expression-precedence scale.
func binPrec(op ast.BinaryOperator) int { return op.Precedence() + binPrecShift }

// lowest is the context a top-level expression (a statement's whole
// expression, an initializer's value, ...) is printed into: nothing
// there can ever require parentheses.
var lowest = context{precedence: precComma - 1}

// Printer writes one or more AST nodes to an internal buffer as C23
// source text.
type Printer struct {
	buf    bytes.Buffer
	indent int
	ctx    context
}

// New returns a Printer ready to render nodes into its buffer.
func New() *Printer {
	return &Printer{ctx: lowest}
}

// String returns everything written to p so far.
func (p *Printer) String() string { return p.buf.String() }

// Print renders n and returns the resulting source text. It is the
// convenience entry point for callers that only need to print one node
// and don't need to share a buffer across several.
func Print(n ast.Node) string {
	p := New()
	if n != nil {
		n.Accept(p)
	}
	return p.String()
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

func (p *Printer) newline() { p.buf.WriteByte('\n') }

// withContext runs fn with the printer's expression context
// temporarily set to c, restoring the previous context afterward —
// the same save/restore discipline the Rust printer's Context field
// uses around every recursive visit of a sub-expression.
func (p *Printer) withContext(c context, fn func()) {
	saved := p.ctx
	p.ctx = c
	fn()
	p.ctx = saved
}

// printExpr prints e as a child at precedence childPrec, associative on
// the right (assoc) when printed on the side of an operator where equal
// precedence still requires parentheses (e.g. the right operand of a
// left-associative binary operator).
func (p *Printer) printExpr(e ast.Expression, childPrec int, assoc bool) {
	if e == nil {
		return
	}
	actual := exprPrecedence(e)
	parens := context{precedence: childPrec, assoc: assoc}.needsParens(actual)
	if parens {
		p.write("(")
	}
	// ParenExpr reads p.ctx back out to decide whether it is itself
	// redundant, so the context in force here must be the one the caller
	// just resolved against (childPrec/assoc), not a reset one: once
	// parens have been added above (or decided unnecessary), everything
	// below is unconstrained and composite nodes set their own children's
	// contexts explicitly via further printExpr calls regardless.
	p.withContext(context{precedence: childPrec, assoc: assoc}, func() { e.Accept(p) })
	if parens {
		p.write(")")
	}
}

// exprPrecedence reports the binding strength of e's outermost operator,
// on the printer's own scale (the prec* constants, with binary operators
// mapped through binPrec).
func exprPrecedence(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.CommaExpr:
		return precComma
	case *ast.AssignmentExpr:
		return precAssignment
	case *ast.ConditionalExpr:
		return precConditional
	case *ast.BinaryExpr:
		return binPrec(n.Op)
	case *ast.CastExpr:
		return precCast
	case *ast.UnaryExpr, *ast.SizeofExpr, *ast.SizeofTypeExpr, *ast.AlignofExpr:
		return precUnary
	case *ast.IncDecExpr:
		if n.Prefix {
			return precUnary
		}
		return precPostfix
	case *ast.ArrayAccessExpr, *ast.CallExpr, *ast.MemberAccessExpr, *ast.CompoundLiteralExpr:
		return precPostfix
	default:
		// Primary expressions (identifiers, constants, parenthesized
		// sub-expressions, generic selections, ...) never need parens
		// around themselves regardless of context.
		return precPostfix + 1
	}
}

// printAttributes writes each attribute specifier in attrs preceded by a
// single space, and writes nothing when attrs is empty.
func (p *Printer) printAttributes(attrs []ast.AttributeSpecifier) {
	for _, a := range attrs {
		p.write(" ")
		a.Accept(p)
	}
}

func printQualifiers(quals []ast.TypeQualifierKind) string {
	parts := make([]string, len(quals))
	for i, q := range quals {
		parts[i] = q.String()
	}
	return strings.Join(parts, " ")
}

func quoteIntSuffix(w token.IntWidth, unsigned bool, bitIntWidth int) string {
	var b strings.Builder
	if unsigned {
		b.WriteByte('u')
	}
	switch w {
	case token.WidthLong:
		b.WriteByte('l')
	case token.WidthLongLong:
		b.WriteString("ll")
	case token.WidthBitInt:
		fmt.Fprintf(&b, "wb(%d)", bitIntWidth)
	}
	return b.String()
}

func formatBigInt(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func formatFloat(v float64, suffix string) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	return s + suffix
}

// escapeRune renders r using the same escape table the teacher's
// original printer uses for character and string constants.
func escapeRune(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	case '\a':
		return `\a`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	case 0x1b:
		return `\e`
	default:
		return string(r)
	}
}

func escapeStringBody(s string, quote byte) string {
	var b strings.Builder
	for _, r := range s {
		if byte(r) == quote {
			b.WriteByte('\\')
			b.WriteByte(quote)
			continue
		}
		b.WriteString(escapeRune(r))
	}
	return b.String()
}
