package ast

// Walk visits n with v, then recursively walks every child node in
// source order (pre-order). It returns v's result for n; the return
// values of child visits are discarded, matching the teacher's
// WalkingVisitor (internal/ast/visitor.go), which also walks purely for
// its side effects.
func Walk(v Visitor, n Node) any {
	if n == nil {
		return nil
	}

	result := n.Accept(v)
	walkChildren(v, n)
	return result
}

func walkAttrs(v Visitor, attrs []AttributeSpecifier) {
	for _, a := range attrs {
		Walk(v, a)
	}
}

// walkParams descends into a ParameterTypeList's parameters. The list
// itself is a plain aggregate (see declarator.go) rather than a Node, so
// it is walked directly instead of through Walk/Accept.
func walkParams(v Visitor, p *ParameterTypeList) {
	if p == nil {
		return
	}
	for _, param := range p.Parameters {
		Walk(v, param)
	}
}

func walkChildren(v Visitor, n Node) {
	switch n := n.(type) {

	// Expressions.
	case *IdentifierExpr, *ConstantExpr, *StringLiteralExpr, *ErrorExpr:
		// leaves

	case *ParenExpr:
		Walk(v, n.X)
	case *GenericSelectionExpr:
		Walk(v, n.Controlling)
		for _, a := range n.Associations {
			Walk(v, a)
		}
	case *TypeAssociation:
		Walk(v, n.Type)
		Walk(v, n.Expr)
	case *DefaultAssociation:
		Walk(v, n.Expr)
	case *ArrayAccessExpr:
		Walk(v, n.Array)
		Walk(v, n.Index)
	case *CallExpr:
		Walk(v, n.Func)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *MemberAccessExpr:
		Walk(v, n.Object)
	case *IncDecExpr:
		Walk(v, n.Operand)
	case *CompoundLiteralExpr:
		Walk(v, n.Type)
		Walk(v, n.Init)
	case *UnaryExpr:
		Walk(v, n.Operand)
	case *SizeofExpr:
		Walk(v, n.Operand)
	case *SizeofTypeExpr:
		Walk(v, n.Type)
	case *AlignofExpr:
		Walk(v, n.Type)
	case *CastExpr:
		Walk(v, n.Type)
		Walk(v, n.Operand)
	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *AssignmentExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *CommaExpr:
		for _, e := range n.Exprs {
			Walk(v, e)
		}

	// Types and specifiers.
	case *TypeNameNode:
		Walk(v, n.Specifiers)
		if n.Abstract != nil {
			Walk(v, n.Abstract)
		}
	case *ErrorTypeName:
	case *TypeSpecifierItem:
		Walk(v, n.Spec)
	case *TypeQualifierItem:
	case *AlignmentSpecifierItem:
		Walk(v, n.Align)
	case *AlignAsType:
		Walk(v, n.Type)
	case *AlignAsExpr:
		Walk(v, n.Expr)
	case *StorageClassItem:
	case *TypeSpecQualItem:
		Walk(v, n.Item)
	case *FunctionSpecItem:
		walkAttrs(v, n.Attributes)
	case *PrimitiveTypeSpecifier:
	case *BitIntTypeSpecifier:
		Walk(v, n.Width)
	case *AtomicTypeSpecifier:
		Walk(v, n.Type)
	case *StructOrUnionTypeSpecifier:
		Walk(v, n.Spec)
	case *EnumTypeSpecifier:
		Walk(v, n.Spec)
	case *TypedefNameTypeSpecifier:
	case *TypeofTypeSpecifier:
		Walk(v, n.Arg)
	case *TypeofExprArg:
		Walk(v, n.Expr)
	case *TypeofTypeArg:
		Walk(v, n.Type)
	case *TypeofErrorArg:
	case *StructOrUnionSpecifier:
		walkAttrs(v, n.Attributes)
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *NormalMemberDecl:
		walkAttrs(v, n.Attributes)
		Walk(v, n.Specifiers)
		for _, d := range n.Declarators {
			Walk(v, d)
		}
	case *StaticAssertMemberDecl:
		Walk(v, n.Assert)
	case *ErrorMemberDecl:
	case *MemberDeclaratorNode:
		if n.Decl != nil {
			Walk(v, n.Decl)
		}
		if n.Width != nil {
			Walk(v, n.Width)
		}
	case *EnumSpecifier:
		walkAttrs(v, n.Attributes)
		if n.TypeSpec != nil {
			Walk(v, n.TypeSpec)
		}
		for _, e := range n.Enumerators {
			Walk(v, e)
		}
	case *Enumerator:
		walkAttrs(v, n.Attributes)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *SpecifierQualifierList:
		for _, item := range n.Items {
			Walk(v, item)
		}
		walkAttrs(v, n.Attributes)
	case *DeclarationSpecifiers:
		for _, item := range n.Items {
			Walk(v, item)
		}

	// Declarators.
	case *IdentifierDeclarator:
		walkAttrs(v, n.Attributes)
	case *ParenDeclarator:
		Walk(v, n.Inner)
	case *ArrayDeclaratorNode:
		Walk(v, n.BaseDeclarator)
		walkAttrs(v, n.Attributes)
		Walk(v, n.Size)
	case *FunctionDeclaratorNode:
		Walk(v, n.BaseDeclarator)
		walkAttrs(v, n.Attributes)
		walkParams(v, n.Params)
	case *PointerDeclaratorNode:
		walkAttrs(v, n.Ptr.Attributes)
		Walk(v, n.Inner)
	case *ErrorDeclarator:
	case *UnspecifiedArraySize:
	case *FixedArraySize:
		Walk(v, n.Size)
	case *VLAArraySize:
	case *ErrorArraySize:
	case *ParameterDeclaration:
		walkAttrs(v, n.Attributes)
		Walk(v, n.Specifiers)
		if n.Declarator != nil {
			Walk(v, n.Declarator)
		}
		if n.Abstract != nil {
			Walk(v, n.Abstract)
		}
	case *AbstractParenDeclarator:
		Walk(v, n.Inner)
	case *AbstractArrayDeclarator:
		if n.BaseDeclarator != nil {
			Walk(v, n.BaseDeclarator)
		}
		walkAttrs(v, n.Attributes)
		Walk(v, n.Size)
	case *AbstractFunctionDeclarator:
		if n.BaseDeclarator != nil {
			Walk(v, n.BaseDeclarator)
		}
		walkAttrs(v, n.Attributes)
		walkParams(v, n.Params)
	case *AbstractPointerDeclarator:
		walkAttrs(v, n.Ptr.Attributes)
		if n.Inner != nil {
			Walk(v, n.Inner)
		}
	case *ErrorAbstractDeclarator:

	// Declarations and initializers.
	case *NormalDecl:
		walkAttrs(v, n.Attributes)
		Walk(v, n.Specifiers)
		for _, d := range n.Declarators {
			Walk(v, d)
		}
	case *TypedefDecl:
		walkAttrs(v, n.Attributes)
		Walk(v, n.Specifiers)
		for _, d := range n.Declarators {
			Walk(v, d)
		}
	case *StaticAssertDecl:
		Walk(v, n.Condition)
	case *AttributeDecl:
		walkAttrs(v, n.Attributes)
	case *ErrorDecl:
	case *InitDeclarator:
		Walk(v, n.Declarator)
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}
	case *ExprInitializer:
		Walk(v, n.Expr)
	case *BracedInitializerNode:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *DesignatedInitializerNode:
		for _, d := range n.Designators {
			Walk(v, d)
		}
		Walk(v, n.Init)
	case *ArrayDesignator:
		Walk(v, n.Index)
	case *RangeDesignator:
		Walk(v, n.Low)
		Walk(v, n.High)
	case *MemberDesignator:
	case *AttributeList:
		for _, a := range n.Attributes {
			Walk(v, a)
		}
	case *AsmAttribute:
	case *ErrorAttributeSpecifier:
	case *Attribute:

	// Statements.
	case *LabeledStmt:
		Walk(v, n.Label)
		Walk(v, n.Stmt)
	case *IdentifierLabel:
		walkAttrs(v, n.Attributes)
	case *CaseLabel:
		walkAttrs(v, n.Attributes)
		Walk(v, n.Expr)
	case *DefaultLabel:
		walkAttrs(v, n.Attributes)
	case *ExpressionStmt:
		walkAttrs(v, n.Attributes)
		if n.Expr != nil {
			Walk(v, n.Expr)
		}
	case *CompoundStatement:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *DeclItem:
		Walk(v, n.Decl)
	case *StmtItem:
		Walk(v, n.Stmt)
	case *LabelItem:
		Walk(v, n.Label)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *SwitchStmt:
		Walk(v, n.Expr)
		Walk(v, n.Body)
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ExprForInit:
		Walk(v, n.Expr)
	case *DeclForInit:
		Walk(v, n.Decl)
	case *GotoStmt:
	case *ContinueStmt:
	case *BreakStmt:
	case *ReturnStmt:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}
	case *ErrorStmt:
	case *TryStmt:
		Walk(v, n.Body)
		for _, c := range n.Catches {
			Walk(v, c)
		}
	case *CatchClause:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		Walk(v, n.Body)
	case *ThrowStmt:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}

	// Translation unit.
	case *TranslationUnit:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *FunctionDefinition:
		walkAttrs(v, n.Attributes)
		Walk(v, n.Specifiers)
		Walk(v, n.Declarator)
		Walk(v, n.Body)
	}
}
