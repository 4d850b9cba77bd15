package printer

import "github.com/c23fe/c23/ast"

func (p *Printer) VisitTypeNameNode(n *ast.TypeNameNode) any {
	n.Specifiers.Accept(p)
	if n.Abstract != nil {
		p.write(" ")
		n.Abstract.Accept(p)
	}
	return nil
}

func (p *Printer) VisitErrorTypeName(n *ast.ErrorTypeName) any {
	p.write("/* error-type-name */")
	return nil
}

func (p *Printer) VisitSpecifierQualifierList(n *ast.SpecifierQualifierList) any {
	for i, item := range n.Items {
		if i > 0 {
			p.write(" ")
		}
		item.Accept(p)
	}
	p.printAttributes(n.Attributes)
	return nil
}

func (p *Printer) VisitDeclarationSpecifiers(n *ast.DeclarationSpecifiers) any {
	for i, item := range n.Items {
		if i > 0 {
			p.write(" ")
		}
		item.Accept(p)
	}
	return nil
}

func (p *Printer) VisitTypeSpecifierItem(n *ast.TypeSpecifierItem) any {
	n.Spec.Accept(p)
	return nil
}

func (p *Printer) VisitTypeQualifierItem(n *ast.TypeQualifierItem) any {
	p.write(n.Qual.String())
	return nil
}

func (p *Printer) VisitAlignmentSpecifierItem(n *ast.AlignmentSpecifierItem) any {
	n.Align.Accept(p)
	return nil
}

func (p *Printer) VisitAlignAsType(n *ast.AlignAsType) any {
	p.write("alignas(")
	n.Type.Accept(p)
	p.write(")")
	return nil
}

func (p *Printer) VisitAlignAsExpr(n *ast.AlignAsExpr) any {
	p.write("alignas(")
	p.printExpr(n.Expr, precComma+1, false)
	p.write(")")
	return nil
}

func (p *Printer) VisitStorageClassItem(n *ast.StorageClassItem) any {
	p.write(n.Class.String())
	return nil
}

func (p *Printer) VisitTypeSpecQualItem(n *ast.TypeSpecQualItem) any {
	n.Item.Accept(p)
	return nil
}

func (p *Printer) VisitFunctionSpecItem(n *ast.FunctionSpecItem) any {
	p.write(n.Kind.String())
	p.printAttributes(n.Attributes)
	return nil
}

func (p *Printer) VisitPrimitiveTypeSpecifier(n *ast.PrimitiveTypeSpecifier) any {
	p.write(n.Kind.String())
	return nil
}

func (p *Printer) VisitBitIntTypeSpecifier(n *ast.BitIntTypeSpecifier) any {
	p.write("_BitInt(")
	p.printExpr(n.Width, precComma+1, false)
	p.write(")")
	return nil
}

func (p *Printer) VisitAtomicTypeSpecifier(n *ast.AtomicTypeSpecifier) any {
	p.write("_Atomic(")
	n.Type.Accept(p)
	p.write(")")
	return nil
}

func (p *Printer) VisitStructOrUnionTypeSpecifier(n *ast.StructOrUnionTypeSpecifier) any {
	n.Spec.Accept(p)
	return nil
}

func (p *Printer) VisitEnumTypeSpecifier(n *ast.EnumTypeSpecifier) any {
	n.Spec.Accept(p)
	return nil
}

func (p *Printer) VisitTypedefNameTypeSpecifier(n *ast.TypedefNameTypeSpecifier) any {
	p.write(n.Name)
	return nil
}

func (p *Printer) VisitTypeofTypeSpecifier(n *ast.TypeofTypeSpecifier) any {
	if n.Unqual {
		p.write("typeof_unqual(")
	} else {
		p.write("typeof(")
	}
	n.Arg.Accept(p)
	p.write(")")
	return nil
}

func (p *Printer) VisitTypeofExprArg(n *ast.TypeofExprArg) any {
	p.printExpr(n.Expr, precComma+1, false)
	return nil
}

func (p *Printer) VisitTypeofTypeArg(n *ast.TypeofTypeArg) any {
	n.Type.Accept(p)
	return nil
}

func (p *Printer) VisitTypeofErrorArg(n *ast.TypeofErrorArg) any {
	p.write("/* error-typeof-arg */")
	return nil
}

func (p *Printer) VisitStructOrUnionSpecifier(n *ast.StructOrUnionSpecifier) any {
	p.write(n.Kind.String())
	p.printAttributes(n.Attributes)
	if n.Name != "" {
		p.write(" ")
		p.write(n.Name)
	}
	if n.Members == nil {
		return nil
	}
	p.write(" {")
	p.newline()
	p.indent++
	for _, m := range n.Members {
		p.writeIndent()
		m.Accept(p)
		p.newline()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	return nil
}

func (p *Printer) VisitNormalMemberDecl(n *ast.NormalMemberDecl) any {
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

func (p *Printer) VisitStaticAssertMemberDecl(n *ast.StaticAssertMemberDecl) any {
	n.Assert.Accept(p)
	return nil
}

func (p *Printer) VisitErrorMemberDecl(n *ast.ErrorMemberDecl) any {
	p.write("/* error-member */;")
	return nil
}

func (p *Printer) VisitMemberDeclaratorNode(n *ast.MemberDeclaratorNode) any {
	if n.Decl != nil {
		n.Decl.Accept(p)
	}
	if n.Width != nil {
		p.write(" : ")
		p.printExpr(n.Width, precComma+1, false)
	}
	return nil
}

func (p *Printer) VisitEnumSpecifier(n *ast.EnumSpecifier) any {
	p.write("enum")
	p.printAttributes(n.Attributes)
	if n.Name != "" {
		p.write(" ")
		p.write(n.Name)
	}
	if n.TypeSpec != nil {
		p.write(" : ")
		n.TypeSpec.Accept(p)
	}
	if n.Enumerators == nil {
		return nil
	}
	p.write(" {")
	p.newline()
	p.indent++
	for _, e := range n.Enumerators {
		p.writeIndent()
		e.Accept(p)
		p.write(",")
		p.newline()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	return nil
}

func (p *Printer) VisitEnumerator(n *ast.Enumerator) any {
	p.write(n.Name)
	p.printAttributes(n.Attributes)
	if n.Value != nil {
		p.write(" = ")
		p.printExpr(n.Value, precAssignment, false)
	}
	return nil
}

func (p *Printer) VisitAttributeList(n *ast.AttributeList) any {
	p.write("[[")
	for i, a := range n.Attributes {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(p)
	}
	p.write("]]")
	return nil
}

func (p *Printer) VisitAsmAttribute(n *ast.AsmAttribute) any {
	p.write("asm(")
	p.printStringLiterals(n.Literal)
	p.write(")")
	return nil
}

func (p *Printer) VisitErrorAttributeSpecifier(n *ast.ErrorAttributeSpecifier) any {
	p.write("/* error-attribute */")
	return nil
}

func (p *Printer) VisitAttribute(n *ast.Attribute) any {
	if n.Name.Prefix != "" {
		p.write(n.Name.Prefix)
		p.write("::")
	}
	p.write(n.Name.Name)
	if n.Args != nil {
		p.write("(")
		for i, t := range n.Args.Tokens {
			if i > 0 {
				p.write(" ")
			}
			p.write(t.Text)
		}
		p.write(")")
	}
	return nil
}

func (p *Printer) VisitExprInitializer(n *ast.ExprInitializer) any {
	p.printExpr(n.Expr, precAssignment, false)
	return nil
}

func (p *Printer) VisitBracedInitializerNode(n *ast.BracedInitializerNode) any {
	p.write("{")
	for i, item := range n.Items {
		if i > 0 {
			p.write(", ")
		}
		item.Accept(p)
	}
	p.write("}")
	return nil
}

func (p *Printer) VisitDesignatedInitializerNode(n *ast.DesignatedInitializerNode) any {
	for _, d := range n.Designators {
		d.Accept(p)
	}
	if len(n.Designators) > 0 {
		p.write(" = ")
	}
	n.Init.Accept(p)
	return nil
}

func (p *Printer) VisitArrayDesignator(n *ast.ArrayDesignator) any {
	p.write("[")
	p.printExpr(n.Index, precComma+1, false)
	p.write("]")
	return nil
}

func (p *Printer) VisitRangeDesignator(n *ast.RangeDesignator) any {
	p.write("[")
	p.printExpr(n.Low, precComma+1, false)
	p.write(" ... ")
	p.printExpr(n.High, precComma+1, false)
	p.write("]")
	return nil
}

func (p *Printer) VisitMemberDesignator(n *ast.MemberDesignator) any {
	p.write(".")
	p.write(n.Name)
	return nil
}
