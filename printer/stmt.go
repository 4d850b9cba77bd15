package printer

import "github.com/c23fe/c23/ast"

func (p *Printer) VisitLabeledStmt(n *ast.LabeledStmt) any {
	n.Label.Accept(p)
	p.newline()
	p.writeIndent()
	n.Stmt.Accept(p)
	return nil
}

func (p *Printer) VisitIdentifierLabel(n *ast.IdentifierLabel) any {
	p.write(n.Name)
	p.printAttributes(n.Attributes)
	p.write(":")
	return nil
}

func (p *Printer) VisitCaseLabel(n *ast.CaseLabel) any {
	p.write("case ")
	p.printExpr(n.Expr, precComma+1, false)
	p.printAttributes(n.Attributes)
	p.write(":")
	return nil
}

func (p *Printer) VisitDefaultLabel(n *ast.DefaultLabel) any {
	p.write("default")
	p.printAttributes(n.Attributes)
	p.write(":")
	return nil
}

func (p *Printer) VisitExpressionStmt(n *ast.ExpressionStmt) any {
	p.printAttributes(n.Attributes)
	if n.Expr != nil {
		if len(n.Attributes) > 0 {
			p.write(" ")
		}
		p.printExpr(n.Expr, precComma, false)
	}
	p.write(";")
	return nil
}

// printBody renders a statement that sits as the controlled body of an
// if/while/for/... in the teacher's Allman-adjacent style: compound
// bodies open on the same line, anything else indents on its own line.
func (p *Printer) printBody(s ast.Statement) {
	if cs, ok := s.(*ast.CompoundStatement); ok {
		p.write(" ")
		cs.Accept(p)
		return
	}
	p.newline()
	p.indent++
	p.writeIndent()
	s.Accept(p)
	p.indent--
}

func (p *Printer) VisitCompoundStatement(n *ast.CompoundStatement) any {
	p.write("{")
	p.newline()
	p.indent++
	for _, item := range n.Items {
		p.writeIndent()
		item.Accept(p)
		p.newline()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	return nil
}

func (p *Printer) VisitDeclItem(n *ast.DeclItem) any {
	n.Decl.Accept(p)
	return nil
}

func (p *Printer) VisitStmtItem(n *ast.StmtItem) any {
	n.Stmt.Accept(p)
	return nil
}

func (p *Printer) VisitLabelItem(n *ast.LabelItem) any {
	n.Label.Accept(p)
	return nil
}

func (p *Printer) VisitIfStmt(n *ast.IfStmt) any {
	p.write("if (")
	p.printExpr(n.Cond, precComma+1, false)
	p.write(")")
	p.printBody(n.Then)
	if n.Else == nil {
		return nil
	}
	if _, ok := n.Then.(*ast.CompoundStatement); ok {
		p.write(" else")
	} else {
		p.newline()
		p.writeIndent()
		p.write("else")
	}
	if elseIf, ok := n.Else.(*ast.IfStmt); ok {
		p.write(" ")
		elseIf.Accept(p)
		return nil
	}
	p.printBody(n.Else)
	return nil
}

func (p *Printer) VisitSwitchStmt(n *ast.SwitchStmt) any {
	p.write("switch (")
	p.printExpr(n.Expr, precComma+1, false)
	p.write(")")
	p.printBody(n.Body)
	return nil
}

func (p *Printer) VisitWhileStmt(n *ast.WhileStmt) any {
	p.write("while (")
	p.printExpr(n.Cond, precComma+1, false)
	p.write(")")
	p.printBody(n.Body)
	return nil
}

func (p *Printer) VisitDoWhileStmt(n *ast.DoWhileStmt) any {
	p.write("do")
	p.printBody(n.Body)
	if _, ok := n.Body.(*ast.CompoundStatement); ok {
		p.write(" ")
	} else {
		p.newline()
		p.writeIndent()
	}
	p.write("while (")
	p.printExpr(n.Cond, precComma+1, false)
	p.write(");")
	return nil
}

func (p *Printer) VisitForStmt(n *ast.ForStmt) any {
	p.write("for (")
	if n.Init != nil {
		n.Init.Accept(p)
	} else {
		p.write(";")
	}
	p.write(" ")
	if n.Cond != nil {
		p.printExpr(n.Cond, precComma+1, false)
	}
	p.write("; ")
	if n.Update != nil {
		p.printExpr(n.Update, precComma+1, false)
	}
	p.write(")")
	p.printBody(n.Body)
	return nil
}

func (p *Printer) VisitExprForInit(n *ast.ExprForInit) any {
	p.printExpr(n.Expr, precComma+1, false)
	p.write(";")
	return nil
}

func (p *Printer) VisitDeclForInit(n *ast.DeclForInit) any {
	n.Decl.Accept(p)
	return nil
}

func (p *Printer) VisitGotoStmt(n *ast.GotoStmt) any {
	p.write("goto ")
	p.write(n.Label)
	p.write(";")
	return nil
}

func (p *Printer) VisitContinueStmt(n *ast.ContinueStmt) any {
	p.write("continue;")
	return nil
}

func (p *Printer) VisitBreakStmt(n *ast.BreakStmt) any {
	p.write("break;")
	return nil
}

func (p *Printer) VisitReturnStmt(n *ast.ReturnStmt) any {
	p.write("return")
	if n.Expr != nil {
		p.write(" ")
		p.printExpr(n.Expr, precComma+1, false)
	}
	p.write(";")
	return nil
}

func (p *Printer) VisitErrorStmt(n *ast.ErrorStmt) any {
	p.write("/* error-stmt */;")
	return nil
}

func (p *Printer) VisitTryStmt(n *ast.TryStmt) any {
	p.write("try ")
	n.Body.Accept(p)
	for _, c := range n.Catches {
		p.write(" ")
		c.Accept(p)
	}
	return nil
}

func (p *Printer) VisitCatchClause(n *ast.CatchClause) any {
	p.write("catch (")
	if n.Param != nil {
		n.Param.Accept(p)
	} else {
		p.write("...")
	}
	p.write(") ")
	n.Body.Accept(p)
	return nil
}

func (p *Printer) VisitThrowStmt(n *ast.ThrowStmt) any {
	p.write("throw")
	if n.Expr != nil {
		p.write(" ")
		p.printExpr(n.Expr, precComma+1, false)
	}
	p.write(";")
	return nil
}
