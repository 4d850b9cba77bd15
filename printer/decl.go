package printer

import "github.com/c23fe/c23/ast"

func (p *Printer) VisitTranslationUnit(n *ast.TranslationUnit) any {
	for i, decl := range n.Declarations {
		if i > 0 {
			p.newline()
		}
		decl.Accept(p)
		p.newline()
	}
	return nil
}

func (p *Printer) VisitFunctionDefinition(n *ast.FunctionDefinition) any {
	n.Specifiers.Accept(p)
	p.write(" ")
	n.Declarator.Accept(p)
	p.printAttributes(n.Attributes)
	p.write(" ")
	n.Body.Accept(p)
	return nil
}

func (p *Printer) VisitNormalDecl(n *ast.NormalDecl) any {
	n.Specifiers.Accept(p)
	for i, d := range n.Declarators {
		if i == 0 {
			p.write(" ")
		} else {
			p.write(", ")
		}
		d.Accept(p)
	}
	p.printAttributes(n.Attributes)
	p.write(";")
	return nil
}

func (p *Printer) VisitTypedefDecl(n *ast.TypedefDecl) any {
	n.Specifiers.Accept(p)
	for i, d := range n.Declarators {
		if i == 0 {
			p.write(" ")
		} else {
			p.write(", ")
		}
		d.Accept(p)
	}
	p.printAttributes(n.Attributes)
	p.write(";")
	return nil
}

func (p *Printer) VisitStaticAssertDecl(n *ast.StaticAssertDecl) any {
	p.write("static_assert(")
	p.printExpr(n.Condition, precAssignment, false)
	if n.Message != nil {
		p.write(", ")
		p.printStringLiterals(n.Message)
	}
	p.write(");")
	return nil
}

func (p *Printer) VisitAttributeDecl(n *ast.AttributeDecl) any {
	p.printAttributes(n.Attributes)
	p.write(";")
	return nil
}

func (p *Printer) VisitErrorDecl(n *ast.ErrorDecl) any {
	p.write("/* error-decl */;")
	return nil
}

func (p *Printer) VisitInitDeclarator(n *ast.InitDeclarator) any {
	n.Declarator.Accept(p)
	if n.Initializer != nil {
		p.write(" = ")
		n.Initializer.Accept(p)
	}
	return nil
}
