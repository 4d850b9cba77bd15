package printer

import "github.com/c23fe/c23/ast"

func printPointer(p *Printer, ptr ast.Pointer) {
	if ptr.Block {
		p.write("^")
	} else {
		p.write("*")
	}
	p.printAttributes(ptr.Attributes)
	if len(ptr.Qualifiers) > 0 {
		p.write(" ")
		p.write(printQualifiers(ptr.Qualifiers))
	}
}

func printArraySize(p *Printer, size ast.ArraySize) {
	p.write("[")
	size.Accept(p)
	p.write("]")
}

func printParams(p *Printer, params *ast.ParameterTypeList) {
	p.write("(")
	if params == nil {
		p.write(")")
		return
	}
	for i, param := range params.Parameters {
		if i > 0 {
			p.write(", ")
		}
		param.Accept(p)
	}
	if params.Variadic {
		if len(params.Parameters) > 0 {
			p.write(", ")
		}
		p.write("...")
	}
	p.write(")")
}

func (p *Printer) VisitIdentifierDeclarator(n *ast.IdentifierDeclarator) any {
	p.write(n.Name)
	p.printAttributes(n.Attributes)
	return nil
}

func (p *Printer) VisitParenDeclarator(n *ast.ParenDeclarator) any {
	p.write("(")
	n.Inner.Accept(p)
	p.write(")")
	return nil
}

func (p *Printer) VisitArrayDeclaratorNode(n *ast.ArrayDeclaratorNode) any {
	n.BaseDeclarator.Accept(p)
	p.printAttributes(n.Attributes)
	printArraySize(p, n.Size)
	return nil
}

func (p *Printer) VisitFunctionDeclaratorNode(n *ast.FunctionDeclaratorNode) any {
	n.BaseDeclarator.Accept(p)
	p.printAttributes(n.Attributes)
	printParams(p, n.Params)
	return nil
}

func (p *Printer) VisitPointerDeclaratorNode(n *ast.PointerDeclaratorNode) any {
	printPointer(p, n.Ptr)
	n.Inner.Accept(p)
	return nil
}

func (p *Printer) VisitErrorDeclarator(n *ast.ErrorDeclarator) any {
	p.write("/* error-declarator */")
	return nil
}

func (p *Printer) VisitUnspecifiedArraySize(n *ast.UnspecifiedArraySize) any {
	p.write(printQualifiers(n.Qualifiers))
	return nil
}

func (p *Printer) VisitFixedArraySize(n *ast.FixedArraySize) any {
	if n.Static {
		p.write("static ")
	}
	if len(n.Qualifiers) > 0 {
		p.write(printQualifiers(n.Qualifiers))
		p.write(" ")
	}
	p.printExpr(n.Size, precAssignment, false)
	return nil
}

func (p *Printer) VisitVLAArraySize(n *ast.VLAArraySize) any {
	if len(n.Qualifiers) > 0 {
		p.write(printQualifiers(n.Qualifiers))
		p.write(" ")
	}
	p.write("*")
	return nil
}

func (p *Printer) VisitErrorArraySize(n *ast.ErrorArraySize) any {
	p.write("/* error-array-size */")
	return nil
}

func (p *Printer) VisitParameterDeclaration(n *ast.ParameterDeclaration) any {
	n.Specifiers.Accept(p)
	if n.Declarator != nil {
		p.write(" ")
		n.Declarator.Accept(p)
	} else if n.Abstract != nil {
		p.write(" ")
		n.Abstract.Accept(p)
	}
	p.printAttributes(n.Attributes)
	return nil
}

func (p *Printer) VisitAbstractParenDeclarator(n *ast.AbstractParenDeclarator) any {
	p.write("(")
	if n.Inner != nil {
		n.Inner.Accept(p)
	}
	p.write(")")
	return nil
}

func (p *Printer) VisitAbstractArrayDeclarator(n *ast.AbstractArrayDeclarator) any {
	if n.BaseDeclarator != nil {
		n.BaseDeclarator.Accept(p)
	}
	p.printAttributes(n.Attributes)
	printArraySize(p, n.Size)
	return nil
}

func (p *Printer) VisitAbstractFunctionDeclarator(n *ast.AbstractFunctionDeclarator) any {
	if n.BaseDeclarator != nil {
		n.BaseDeclarator.Accept(p)
	}
	p.printAttributes(n.Attributes)
	printParams(p, n.Params)
	return nil
}

func (p *Printer) VisitAbstractPointerDeclarator(n *ast.AbstractPointerDeclarator) any {
	printPointer(p, n.Ptr)
	if n.Inner != nil {
		n.Inner.Accept(p)
	}
	return nil
}

func (p *Printer) VisitErrorAbstractDeclarator(n *ast.ErrorAbstractDeclarator) any {
	p.write("/* error-abstract-declarator */")
	return nil
}
