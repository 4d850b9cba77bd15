package parser

import (
	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/token"
)

func (p *parser) expectKeyword(kw string) bool {
	if p.eatKeyword(kw) {
		return true
	}
	p.errf(p.cur().Span, "expected %q, got %s", kw, p.cur())
	return false
}

// parseStatement parses one 6.8 statement. Leading attributes (6.8's
// attribute-specifier-seq prefix, valid before any statement) are parsed
// up front and retained only on expression statements; labeled,
// compound, selection, iteration and jump statements accept but discard
// a leading attribute list.
func (p *parser) parseStatement() ast.Statement {
	start := p.pos
	attrs := p.parseAttributeSpecifierSeq()

	if p.atKind(token.Identifier) && p.peek(1).IsPunctuator(":") {
		return p.parseLabeledStatement(start)
	}
	if p.atKeyword("case") || p.atKeyword("default") {
		return p.parseLabeledStatement(start)
	}

	switch {
	case p.atPunct("{"):
		return p.parseCompoundStatement()
	case p.atKeyword("if"):
		return p.parseIfStatement(start)
	case p.atKeyword("switch"):
		return p.parseSwitchStatement(start)
	case p.atKeyword("while"):
		return p.parseWhileStatement(start)
	case p.atKeyword("do"):
		return p.parseDoWhileStatement(start)
	case p.atKeyword("for"):
		return p.parseForStatement(start)
	case p.atKeyword("goto"):
		return p.parseGotoStatement(start)
	case p.eatKeyword("continue"):
		p.expectPunct(";")
		return finish(&ast.ContinueStmt{}, p.spanFrom(start))
	case p.eatKeyword("break"):
		p.expectPunct(";")
		return finish(&ast.BreakStmt{}, p.spanFrom(start))
	case p.atKeyword("return"):
		return p.parseReturnStatement(start)
	case p.atKeyword("try"):
		return p.parseTryStatement(start)
	case p.atKeyword("throw"):
		return p.parseThrowStatement(start)
	}

	return p.parseExpressionStatementTail(start, attrs)
}

// parseLabel parses one label (6.8.1): `identifier:`, `case
// constant-expression:`, or `default:`.
func (p *parser) parseLabel() ast.Label {
	start := p.pos

	switch {
	case p.eatKeyword("case"):
		expr := p.parseConditionalExpression()
		p.expectPunct(":")
		if !p.state.InSwitch() {
			p.errf(p.spanFrom(start), "'case' label not within a switch statement")
		}
		return finish(&ast.CaseLabel{Expr: expr}, p.spanFrom(start))
	case p.eatKeyword("default"):
		p.expectPunct(":")
		if !p.state.InSwitch() {
			p.errf(p.spanFrom(start), "'default' label not within a switch statement")
		}
		return finish(&ast.DefaultLabel{}, p.spanFrom(start))
	default:
		name := p.expectIdentifierText()
		p.expectPunct(":")
		return finish(&ast.IdentifierLabel{Name: name}, p.spanFrom(start))
	}
}

func (p *parser) parseLabeledStatement(start int) ast.Statement {
	label := p.parseLabel()
	stmt := p.parseStatement()
	return finish(&ast.LabeledStmt{Label: label, Stmt: stmt}, p.spanFrom(start))
}

// parseCompoundStatement parses `{ block-item* }` (6.8.2), opening a new
// block scope for the typedef/enum-constant environment so names
// declared inside don't leak to the enclosing scope.
func (p *parser) parseCompoundStatement() *ast.CompoundStatement {
	start := p.pos
	p.expectPunct("{")
	p.state.PushBlock()
	defer p.state.Pop()

	var items []ast.BlockItem
	for !p.atPunct("}") && !p.atEOF() {
		items = append(items, p.parseBlockItem())
	}
	p.expectPunct("}")
	if items == nil {
		items = []ast.BlockItem{}
	}

	return finish(&ast.CompoundStatement{Items: items}, p.spanFrom(start))
}

// parseBlockItem parses one compound-statement entry (6.8.2): a
// declaration, a statement, or — the C23 addition — a bare label
// immediately before the closing brace with no statement following it.
func (p *parser) parseBlockItem() ast.BlockItem {
	start := p.pos

	isLabelStart := (p.atKind(token.Identifier) && p.peek(1).IsPunctuator(":")) ||
		p.atKeyword("case") || p.atKeyword("default")
	if isLabelStart {
		label := p.parseLabel()
		if p.atPunct("}") {
			return finish(&ast.LabelItem{Label: label}, p.spanFrom(start))
		}
		stmt := p.parseStatement()
		labeled := finish(&ast.LabeledStmt{Label: label, Stmt: stmt}, p.spanFrom(start))
		return finish(&ast.StmtItem{Stmt: labeled}, p.spanFrom(start))
	}

	if p.startsDeclarationSpecifier() {
		decl := p.parseDeclaration()
		return finish(&ast.DeclItem{Decl: decl}, p.spanFrom(start))
	}

	stmt := p.parseStatement()
	return finish(&ast.StmtItem{Stmt: stmt}, p.spanFrom(start))
}

func (p *parser) parseIfStatement(start int) ast.Statement {
	p.advance() // if
	p.expectPunct("(")
	cond := p.parseExpression()
	p.expectPunct(")")
	then := p.parseStatement()

	var els ast.Statement
	if p.eatKeyword("else") {
		els = p.parseStatement()
	}

	return finish(&ast.IfStmt{Cond: cond, Then: then, Else: els}, p.spanFrom(start))
}

func (p *parser) parseSwitchStatement(start int) ast.Statement {
	p.advance() // switch
	p.expectPunct("(")
	expr := p.parseExpression()
	p.expectPunct(")")

	p.state.EnterSwitch()
	body := p.parseStatement()
	p.state.LeaveSwitch()

	return finish(&ast.SwitchStmt{Expr: expr, Body: body}, p.spanFrom(start))
}

func (p *parser) parseWhileStatement(start int) ast.Statement {
	p.advance() // while
	p.expectPunct("(")
	cond := p.parseExpression()
	p.expectPunct(")")
	body := p.parseStatement()
	return finish(&ast.WhileStmt{Cond: cond, Body: body}, p.spanFrom(start))
}

func (p *parser) parseDoWhileStatement(start int) ast.Statement {
	p.advance() // do
	body := p.parseStatement()
	p.expectKeyword("while")
	p.expectPunct("(")
	cond := p.parseExpression()
	p.expectPunct(")")
	p.expectPunct(";")
	return finish(&ast.DoWhileStmt{Body: body, Cond: cond}, p.spanFrom(start))
}

// parseForStatement parses 6.8.5's for-statement, opening a block scope
// around the whole statement so a declaration in the init-clause scopes
// exactly like a C99+ compiler requires.
func (p *parser) parseForStatement(start int) ast.Statement {
	p.advance() // for
	p.expectPunct("(")
	p.state.PushBlock()
	defer p.state.Pop()

	var init ast.ForInit
	switch {
	case p.atPunct(";"):
		p.advance()
	case p.startsDeclarationSpecifier():
		initStart := p.pos
		decl := p.parseDeclaration() // consumes the trailing ';'
		init = finish(&ast.DeclForInit{Decl: decl}, p.spanFrom(initStart))
	default:
		initStart := p.pos
		expr := p.parseExpression()
		init = finish(&ast.ExprForInit{Expr: expr}, p.spanFrom(initStart))
		p.expectPunct(";")
	}

	var cond ast.Expression
	if !p.atPunct(";") {
		cond = p.parseExpression()
	}
	p.expectPunct(";")

	var update ast.Expression
	if !p.atPunct(")") {
		update = p.parseExpression()
	}
	p.expectPunct(")")

	body := p.parseStatement()

	return finish(&ast.ForStmt{Init: init, Cond: cond, Update: update, Body: body}, p.spanFrom(start))
}

func (p *parser) parseGotoStatement(start int) ast.Statement {
	p.advance() // goto
	name := p.expectIdentifierText()
	p.expectPunct(";")
	return finish(&ast.GotoStmt{Label: name}, p.spanFrom(start))
}

func (p *parser) parseReturnStatement(start int) ast.Statement {
	p.advance() // return
	var expr ast.Expression
	if !p.atPunct(";") {
		expr = p.parseExpression()
	}
	p.expectPunct(";")
	return finish(&ast.ReturnStmt{Expr: expr}, p.spanFrom(start))
}

// parseTryStatement parses the vendor try/catch extension, gated the
// same way __attribute__/__declspec are: the lexer only ever hands the
// parser a `try` Keyword token when vendor extensions are enabled, so
// reaching here at all already implies that mode is active.
func (p *parser) parseTryStatement(start int) ast.Statement {
	p.advance() // try
	body := p.parseCompoundStatement()

	var catches []*ast.CatchClause
	for p.atKeyword("catch") {
		catchStart := p.pos
		p.advance()
		p.expectPunct("(")

		var param *ast.ParameterDeclaration
		if p.atPunct("...") {
			p.advance()
		} else {
			param = p.parseParameterDeclaration()
		}
		p.expectPunct(")")
		catchBody := p.parseCompoundStatement()

		catches = append(catches, finish(&ast.CatchClause{Param: param, Body: catchBody}, p.spanFrom(catchStart)))
	}

	return finish(&ast.TryStmt{Body: body, Catches: catches}, p.spanFrom(start))
}

func (p *parser) parseThrowStatement(start int) ast.Statement {
	p.advance() // throw
	var expr ast.Expression
	if !p.atPunct(";") {
		expr = p.parseExpression()
	}
	p.expectPunct(";")
	return finish(&ast.ThrowStmt{Expr: expr}, p.spanFrom(start))
}

func (p *parser) parseExpressionStatementTail(start int, attrs []ast.AttributeSpecifier) ast.Statement {
	if p.eatPunct(";") {
		return finish(&ast.ExpressionStmt{Attributes: attrs}, p.spanFrom(start))
	}
	expr := p.parseExpression()
	p.expectPunct(";")
	return finish(&ast.ExpressionStmt{Attributes: attrs, Expr: expr}, p.spanFrom(start))
}
