package printer

import (
	"fmt"

	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/token"
)

func (p *Printer) VisitIdentifierExpr(n *ast.IdentifierExpr) any {
	p.write(n.Name)
	return nil
}

func (p *Printer) VisitConstantExpr(n *ast.ConstantExpr) any {
	p.printConstant(n.Value)
	return nil
}

func (p *Printer) printConstant(c token.ConstantValue) {
	switch v := c.(type) {
	case *token.IntegerConstant:
		p.write(formatBigInt(v.Value))
		p.write(quoteIntSuffix(v.Width, v.Unsigned, v.BitIntWidth))
	case *token.FloatingConstant:
		p.write(formatFloat(v.Value, v.Suffix))
	case *token.CharacterConstant:
		p.write(v.Encoding.String())
		p.write("'")
		p.write(escapeRune(v.Codepoint))
		p.write("'")
	case *token.PredefinedConstant:
		p.write(v.Kind.String())
	}
}

func (p *Printer) VisitStringLiteralExpr(n *ast.StringLiteralExpr) any {
	p.printStringLiterals(n.Value)
	return nil
}

func (p *Printer) printStringLiterals(s *token.StringLiterals) {
	if s == nil {
		return
	}
	for i, f := range s.Fragments {
		if i > 0 {
			p.write(" ")
		}
		p.write(f.Encoding.String())
		p.write(`"`)
		p.write(escapeStringBody(f.Decoded, '"'))
		p.write(`"`)
	}
}

func (p *Printer) VisitParenExpr(n *ast.ParenExpr) any {
	// The explicit ParenExpr node exists precisely so a caller can choose
	// to re-emit its parentheses verbatim rather than rely on
	// precedence-driven insertion; printExpr already adds parens where
	// needed, so unwrap here and let the surrounding context decide.
	p.printExpr(n.X, p.ctx.precedence, p.ctx.assoc)
	return nil
}

func (p *Printer) VisitGenericSelectionExpr(n *ast.GenericSelectionExpr) any {
	p.write("_Generic(")
	p.printExpr(n.Controlling, precComma+1, false)
	for _, a := range n.Associations {
		p.write(", ")
		a.Accept(p)
	}
	p.write(")")
	return nil
}

func (p *Printer) VisitTypeAssociation(n *ast.TypeAssociation) any {
	n.Type.Accept(p)
	p.write(": ")
	p.printExpr(n.Expr, precComma+1, false)
	return nil
}

func (p *Printer) VisitDefaultAssociation(n *ast.DefaultAssociation) any {
	p.write("default: ")
	p.printExpr(n.Expr, precComma+1, false)
	return nil
}

func (p *Printer) VisitArrayAccessExpr(n *ast.ArrayAccessExpr) any {
	p.printExpr(n.Array, precPostfix, false)
	p.write("[")
	p.printExpr(n.Index, precComma+1, false)
	p.write("]")
	return nil
}

func (p *Printer) VisitCallExpr(n *ast.CallExpr) any {
	p.printExpr(n.Func, precPostfix, false)
	p.write("(")
	for i, a := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(a, precAssignment, false)
	}
	p.write(")")
	return nil
}

func (p *Printer) VisitMemberAccessExpr(n *ast.MemberAccessExpr) any {
	p.printExpr(n.Object, precPostfix, false)
	if n.Arrow {
		p.write("->")
	} else {
		p.write(".")
	}
	p.write(n.Member)
	return nil
}

func (p *Printer) VisitIncDecExpr(n *ast.IncDecExpr) any {
	op := "++"
	if n.Decrement {
		op = "--"
	}
	if n.Prefix {
		p.write(op)
		p.printExpr(n.Operand, precUnary, false)
		return nil
	}
	p.printExpr(n.Operand, precPostfix, false)
	p.write(op)
	return nil
}

func (p *Printer) VisitCompoundLiteralExpr(n *ast.CompoundLiteralExpr) any {
	p.write("(")
	for _, sc := range n.StorageClasses {
		p.write(sc.String())
		p.write(" ")
	}
	n.Type.Accept(p)
	p.write(")")
	if n.Init != nil {
		n.Init.Accept(p)
	}
	return nil
}

func (p *Printer) VisitUnaryExpr(n *ast.UnaryExpr) any {
	op := n.Op.String()
	p.write(op)
	// A bare "-"/"+"/"&" immediately followed by the same character would
	// re-lex as "--"/"++"/"&&", changing meaning; render the operand
	// first and insert a separating space only when that would happen.
	operand := renderChild(n.Operand, precCast, false)
	if len(op) == 1 && len(operand) > 0 && operand[0] == op[0] {
		p.write(" ")
	}
	p.write(operand)
	return nil
}

// renderChild prints e into a fresh Printer under the given context and
// returns the resulting text, for callers that must inspect the printed
// form before deciding how to join it with what comes before it.
func renderChild(e ast.Expression, childPrec int, assoc bool) string {
	sub := New()
	sub.printExpr(e, childPrec, assoc)
	return sub.String()
}

func (p *Printer) VisitSizeofExpr(n *ast.SizeofExpr) any {
	p.write("sizeof ")
	p.printExpr(n.Operand, precUnary, false)
	return nil
}

func (p *Printer) VisitSizeofTypeExpr(n *ast.SizeofTypeExpr) any {
	p.write("sizeof(")
	n.Type.Accept(p)
	p.write(")")
	return nil
}

func (p *Printer) VisitAlignofExpr(n *ast.AlignofExpr) any {
	p.write("_Alignof(")
	n.Type.Accept(p)
	p.write(")")
	return nil
}

func (p *Printer) VisitCastExpr(n *ast.CastExpr) any {
	p.write("(")
	n.Type.Accept(p)
	p.write(")")
	p.printExpr(n.Operand, precCast, false)
	return nil
}

func (p *Printer) VisitBinaryExpr(n *ast.BinaryExpr) any {
	prec := binPrec(n.Op)
	p.printExpr(n.Left, prec, false)
	p.write(" ")
	p.write(n.Op.String())
	p.write(" ")
	p.printExpr(n.Right, prec, true)
	return nil
}

func (p *Printer) VisitConditionalExpr(n *ast.ConditionalExpr) any {
	// Condition: a conditional-or-lower-precedence condition needs
	// parens (only another conditional sits at this exact level).
	p.printExpr(n.Cond, precConditional, true)
	p.write(" ? ")
	// then_expr accepts any expression, comma included, unparenthesized.
	p.printExpr(n.Then, precComma, false)
	p.write(" : ")
	// else_expr is itself a conditional-expression, and the operator is
	// right-associative, so a nested conditional here needs no parens.
	p.printExpr(n.Else, precConditional, false)
	return nil
}

func (p *Printer) VisitAssignmentExpr(n *ast.AssignmentExpr) any {
	// Left operand must be at least unary-expression level, so an
	// assignment or lower-precedence form there needs parens.
	p.printExpr(n.Left, precAssignment, true)
	p.write(" ")
	p.write(n.Op.String())
	p.write(" ")
	// Right-associative: a nested assignment at the same level needs no
	// parens ("a = b = c" parses as "a = (b = c)" either way).
	p.printExpr(n.Right, precAssignment, false)
	return nil
}

func (p *Printer) VisitCommaExpr(n *ast.CommaExpr) any {
	for i, e := range n.Exprs {
		if i > 0 {
			p.write(", ")
		}
		// Left-associative: only the trailing elements need parens to
		// keep a nested comma expression from merging into this one.
		p.printExpr(e, precComma, i > 0)
	}
	return nil
}

func (p *Printer) VisitErrorExpr(n *ast.ErrorExpr) any {
	p.write(fmt.Sprintf("/* error-expr@%d */", n.Span().Start))
	return nil
}
