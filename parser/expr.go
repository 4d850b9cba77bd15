package parser

import (
	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/token"
)

// parseExpression parses the comma operator (6.5.17): one or more
// assignment-expressions separated by `,`.
func (p *parser) parseExpression() ast.Expression {
	start := p.pos
	first := p.parseAssignmentExpression()

	if !p.atPunct(",") {
		return first
	}

	exprs := []ast.Expression{first}
	for p.eatPunct(",") {
		exprs = append(exprs, p.parseAssignmentExpression())
	}

	return finish(&ast.CommaExpr{Exprs: exprs}, p.spanFrom(start))
}

var assignOperators = map[string]ast.AssignOperator{
	"=": ast.AssignPlain, "*=": ast.AssignMul, "/=": ast.AssignDiv,
	"%=": ast.AssignMod, "+=": ast.AssignAdd, "-=": ast.AssignSub,
	"<<=": ast.AssignLeftShift, ">>=": ast.AssignRightShift,
	"&=": ast.AssignAnd, "^=": ast.AssignXor, "|=": ast.AssignOr,
}

// parseAssignmentExpression parses 6.5.16. Rather than separately
// grammar-checking that the left operand is a valid unary-expression (an
// lvalue-shape concern out of this module's scope, per spec §1), it
// parses a full conditional-expression and, if an assignment operator
// follows, reinterprets it as the assignment target.
func (p *parser) parseAssignmentExpression() ast.Expression {
	start := p.pos
	left := p.parseConditionalExpression()

	if p.cur().Kind == token.Punctuator {
		if op, ok := assignOperators[p.cur().Text]; ok {
			p.advance()
			right := p.parseAssignmentExpression()
			return finish(&ast.AssignmentExpr{Left: left, Op: op, Right: right}, p.spanFrom(start))
		}
	}

	return left
}

// parseConditionalExpression parses 6.5.15's ternary `cond ? then : els`.
func (p *parser) parseConditionalExpression() ast.Expression {
	start := p.pos
	cond := p.parseBinaryExpression(1)

	if !p.eatPunct("?") {
		return cond
	}

	then := p.parseExpression()
	p.expectPunct(":")
	els := p.parseConditionalExpression()

	return finish(&ast.ConditionalExpr{Cond: cond, Then: then, Else: els}, p.spanFrom(start))
}

var binaryOperators = map[string]ast.BinaryOperator{
	"*": ast.BinMultiply, "/": ast.BinDivide, "%": ast.BinModulo,
	"+": ast.BinAdd, "-": ast.BinSubtract,
	"<<": ast.BinLeftShift, ">>": ast.BinRightShift,
	"<": ast.BinLess, ">": ast.BinGreater, "<=": ast.BinLessEqual, ">=": ast.BinGreaterEqual,
	"==": ast.BinEqual, "!=": ast.BinNotEqual,
	"&": ast.BinBitwiseAnd, "^": ast.BinBitwiseXor, "|": ast.BinBitwiseOr,
	"&&": ast.BinLogicalAnd, "||": ast.BinLogicalOr,
}

// parseBinaryExpression is precedence-climbing over the left-associative
// binary operators (6.5.5-6.5.14): minPrec is the lowest precedence this
// call is allowed to consume.
func (p *parser) parseBinaryExpression(minPrec int) ast.Expression {
	start := p.pos
	left := p.parseCastExpression()

	for {
		t := p.cur()
		if t.Kind != token.Punctuator {
			return left
		}
		op, ok := binaryOperators[t.Text]
		if !ok || op.Precedence() < minPrec {
			return left
		}

		p.advance()
		right := p.parseBinaryExpression(op.Precedence() + 1)
		left = finish(&ast.BinaryExpr{Left: left, Op: op, Right: right}, p.spanFrom(start))
	}
}

// parseCastExpression resolves the `(type-name)expr` vs `(expr)`
// ambiguity by consulting the typedef environment: a `(` is the start of
// a cast (or, if `{` follows the type-name's closing `)`, a compound
// literal) exactly when what follows it can begin a declaration
// specifier (spec §4.D's typedef-disambiguation rule, applied at the
// parenthesis boundary rather than just at statement start).
func (p *parser) parseCastExpression() ast.Expression {
	if p.atPunct("(") && p.startsTypeNameAfterParen() {
		start := p.pos
		p.advance() // (
		typeName := p.parseTypeName()
		p.expectPunct(")")

		if p.atPunct("{") {
			return p.parseCompoundLiteralTail(start, nil, typeName)
		}

		operand := p.parseCastExpression()
		return finish(&ast.CastExpr{Type: typeName, Operand: operand}, p.spanFrom(start))
	}

	return p.parseUnaryExpression()
}

// startsTypeNameAfterParen reports whether the token one past the
// current `(` can begin a type-name.
func (p *parser) startsTypeNameAfterParen() bool {
	t := p.peek(1)
	switch {
	case t.Kind == token.Keyword:
		switch t.Text {
		case "void", "char", "short", "int", "long", "float", "double",
			"signed", "unsigned", "bool", "_Bool", "_Complex", "_Imaginary",
			"_Decimal32", "_Decimal64", "_Decimal128", "_BitInt", "struct", "union",
			"enum", "typeof", "typeof_unqual", "const", "restrict", "volatile",
			"_Atomic", "_Nonnull", "_Nullable":
			return true
		}
		return false
	case t.Kind == token.Identifier:
		return p.state.IsTypedefName(t.Text)
	default:
		return false
	}
}

var unaryOperators = map[string]ast.UnaryOperator{
	"&": ast.UnaryAddress, "*": ast.UnaryDereference, "+": ast.UnaryPlus,
	"-": ast.UnaryMinus, "~": ast.UnaryBitwiseNot, "!": ast.UnaryLogicalNot,
}

// parseUnaryExpression parses 6.5.3.
func (p *parser) parseUnaryExpression() ast.Expression {
	start := p.pos

	switch {
	case p.eatPunct("++"):
		return finish(&ast.IncDecExpr{Operand: p.parseUnaryExpression(), Prefix: true}, p.spanFrom(start))
	case p.eatPunct("--"):
		return finish(&ast.IncDecExpr{Operand: p.parseUnaryExpression(), Prefix: true, Decrement: true}, p.spanFrom(start))
	}

	if p.cur().Kind == token.Punctuator {
		if op, ok := unaryOperators[p.cur().Text]; ok {
			p.advance()
			operand := p.parseCastExpression()
			return finish(&ast.UnaryExpr{Op: op, Operand: operand}, p.spanFrom(start))
		}
	}

	switch {
	case p.atKeyword("sizeof"):
		p.advance()
		if p.atPunct("(") && p.startsTypeNameAfterParen() {
			p.advance()
			typeName := p.parseTypeName()
			p.expectPunct(")")
			return finish(&ast.SizeofTypeExpr{Type: typeName}, p.spanFrom(start))
		}
		operand := p.parseUnaryExpression()
		return finish(&ast.SizeofExpr{Operand: operand}, p.spanFrom(start))

	case p.atKeyword("_Alignof") || p.atKeyword("alignof"):
		p.advance()
		p.expectPunct("(")
		typeName := p.parseTypeName()
		p.expectPunct(")")
		return finish(&ast.AlignofExpr{Type: typeName}, p.spanFrom(start))
	}

	return p.parsePostfixExpression()
}

// parsePostfixExpression parses 6.5.2's postfix operator chain over a
// primary expression.
func (p *parser) parsePostfixExpression() ast.Expression {
	start := p.pos
	expr := p.parsePrimaryExpression()

	for {
		switch {
		case p.eatPunct("["):
			idx := p.parseExpression()
			p.expectPunct("]")
			expr = finish(&ast.ArrayAccessExpr{Array: expr, Index: idx}, p.spanFrom(start))

		case p.eatPunct("("):
			var args []ast.Expression
			if !p.atPunct(")") {
				args = append(args, p.parseAssignmentExpression())
				for p.eatPunct(",") {
					args = append(args, p.parseAssignmentExpression())
				}
			}
			p.expectPunct(")")
			expr = finish(&ast.CallExpr{Func: expr, Args: args}, p.spanFrom(start))

		case p.eatPunct("."):
			name := p.expectIdentifierText()
			expr = finish(&ast.MemberAccessExpr{Object: expr, Member: name}, p.spanFrom(start))

		case p.eatPunct("->"):
			name := p.expectIdentifierText()
			expr = finish(&ast.MemberAccessExpr{Object: expr, Member: name, Arrow: true}, p.spanFrom(start))

		case p.eatPunct("++"):
			expr = finish(&ast.IncDecExpr{Operand: expr}, p.spanFrom(start))

		case p.eatPunct("--"):
			expr = finish(&ast.IncDecExpr{Operand: expr, Decrement: true}, p.spanFrom(start))

		default:
			return expr
		}
	}
}

// expectIdentifierText consumes an identifier token (for a member name
// after `.`/`->`) and returns its text, recording a diagnostic and
// returning "" if the current token is not an identifier.
func (p *parser) expectIdentifierText() string {
	if p.atKind(token.Identifier) {
		return p.advance().Text
	}
	p.errf(p.cur().Span, "expected member name, got %s", p.cur())
	return ""
}

// parsePrimaryExpression parses 6.5.1.
func (p *parser) parsePrimaryExpression() ast.Expression {
	start := p.pos
	t := p.cur()

	switch {
	case t.Kind == token.Identifier:
		p.advance()
		role := token.RoleVariable
		if p.state.IsEnumConstant(t.Text) {
			role = token.RoleEnumerator
		}
		return finish(&ast.IdentifierExpr{Name: t.Text, Role: role}, p.spanFrom(start))

	case t.Kind == token.Constant:
		p.advance()
		c, _ := t.Value.(token.ConstantValue)
		return finish(&ast.ConstantExpr{Value: c}, p.spanFrom(start))

	case t.Kind == token.StringLiteral:
		lit := p.collectStringLiterals()
		return finish(&ast.StringLiteralExpr{Value: lit}, p.spanFrom(start))

	case t.Kind == token.Keyword && (t.Text == "true" || t.Text == "false" || t.Text == "nullptr"):
		p.advance()
		kind := token.PredefinedTrue
		switch t.Text {
		case "false":
			kind = token.PredefinedFalse
		case "nullptr":
			kind = token.PredefinedNullptr
		}
		return finish(&ast.ConstantExpr{Value: &token.PredefinedConstant{Kind: kind}}, p.spanFrom(start))

	case t.Kind == token.Keyword && t.Text == "_Generic":
		return p.parseGenericSelection()

	case t.Kind == token.Punctuator && t.Text == "(":
		p.advance()
		inner := p.parseExpression()
		p.expectPunct(")")
		return finish(&ast.ParenExpr{X: inner}, p.spanFrom(start))

	default:
		p.errf(t.Span, "expected expression, got %s", t)
		if !p.atEOF() {
			p.advance()
		}
		return finish(&ast.ErrorExpr{}, p.spanFrom(start))
	}
}

// collectStringLiterals consumes one or more adjacent string-literal
// tokens, implementing translation phase 6's literal concatenation.
func (p *parser) collectStringLiterals() *token.StringLiterals {
	var frags []token.StringFragment
	for p.atKind(token.StringLiteral) {
		t := p.advance()
		if sl, ok := t.Value.(*token.StringLiterals); ok {
			frags = append(frags, sl.Fragments...)
		}
	}
	return &token.StringLiterals{Fragments: frags}
}

// parseGenericSelection parses a _Generic selection (6.5.1.1), preserving
// association source order (spec §4.D algorithmic notes).
func (p *parser) parseGenericSelection() ast.Expression {
	start := p.pos
	p.advance() // _Generic
	p.expectPunct("(")
	controlling := p.parseAssignmentExpression()
	p.expectPunct(",")

	var assocs []ast.GenericAssociation
	for {
		assocStart := p.pos
		if p.eatKeyword("default") {
			p.expectPunct(":")
			expr := p.parseAssignmentExpression()
			assocs = append(assocs, finish(&ast.DefaultAssociation{Expr: expr}, p.spanFrom(assocStart)))
		} else {
			typeName := p.parseTypeName()
			p.expectPunct(":")
			expr := p.parseAssignmentExpression()
			assocs = append(assocs, finish(&ast.TypeAssociation{Type: typeName, Expr: expr}, p.spanFrom(assocStart)))
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")

	return finish(&ast.GenericSelectionExpr{Controlling: controlling, Associations: assocs}, p.spanFrom(start))
}

// parseCompoundLiteralTail parses the `{ initializer-list }` suffix of a
// compound literal (6.5.2.5), restored from original_source as part of
// this module's expanded scope.
func (p *parser) parseCompoundLiteralTail(start int, storageClasses []ast.StorageClassKind, typeName ast.TypeName) ast.Expression {
	init := p.parseBracedInitializer()
	return finish(&ast.CompoundLiteralExpr{StorageClasses: storageClasses, Type: typeName, Init: init}, p.spanFrom(start))
}
