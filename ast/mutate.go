package ast

// MutableVisitor rewrites nodes during a walk. Unlike Visitor, which
// dispatches to one method per concrete type, MutableVisitor has a
// single Mutate method — a deliberate simplification, since rewriting
// passes (constant folding, typedef substitution, error-node excision)
// typically only care about a handful of node kinds and would otherwise
// need 109 mostly-identity overrides. Implementations type-switch on n
// themselves and return the replacement, or n unchanged.
type MutableVisitor interface {
	Mutate(n Node) Node
}

// WalkMutable rewrites n bottom-up: every child is rewritten first and
// reattached, then v.Mutate is called on n itself with its children
// already in final form. Attribute specifiers attached to a node (its
// Attributes fields and Pointer.Attributes) are not descended into, so
// Mutate is not called on them. It returns the (possibly replaced) node; a nil
// result from v.Mutate is only valid for fields that accept nil (see
// each field's doc comment in the node's defining file).
func WalkMutable(n Node, v MutableVisitor) Node {
	if n == nil {
		return nil
	}

	switch n := n.(type) {

	// Expressions.
	case *ParenExpr:
		n.X = mutateExpr(n.X, v)
	case *GenericSelectionExpr:
		n.Controlling = mutateExpr(n.Controlling, v)
		for i, a := range n.Associations {
			n.Associations[i] = WalkMutable(a, v).(GenericAssociation)
		}
	case *TypeAssociation:
		n.Type = WalkMutable(n.Type, v).(TypeName)
		n.Expr = mutateExpr(n.Expr, v)
	case *DefaultAssociation:
		n.Expr = mutateExpr(n.Expr, v)
	case *ArrayAccessExpr:
		n.Array = mutateExpr(n.Array, v)
		n.Index = mutateExpr(n.Index, v)
	case *CallExpr:
		n.Func = mutateExpr(n.Func, v)
		for i, a := range n.Args {
			n.Args[i] = mutateExpr(a, v)
		}
	case *MemberAccessExpr:
		n.Object = mutateExpr(n.Object, v)
	case *IncDecExpr:
		n.Operand = mutateExpr(n.Operand, v)
	case *CompoundLiteralExpr:
		n.Type = WalkMutable(n.Type, v).(TypeName)
		if n.Init != nil {
			n.Init = WalkMutable(n.Init, v).(*BracedInitializerNode)
		}
	case *UnaryExpr:
		n.Operand = mutateExpr(n.Operand, v)
	case *SizeofExpr:
		n.Operand = mutateExpr(n.Operand, v)
	case *SizeofTypeExpr:
		n.Type = WalkMutable(n.Type, v).(TypeName)
	case *AlignofExpr:
		n.Type = WalkMutable(n.Type, v).(TypeName)
	case *CastExpr:
		n.Type = WalkMutable(n.Type, v).(TypeName)
		n.Operand = mutateExpr(n.Operand, v)
	case *BinaryExpr:
		n.Left = mutateExpr(n.Left, v)
		n.Right = mutateExpr(n.Right, v)
	case *ConditionalExpr:
		n.Cond = mutateExpr(n.Cond, v)
		n.Then = mutateExpr(n.Then, v)
		n.Else = mutateExpr(n.Else, v)
	case *AssignmentExpr:
		n.Left = mutateExpr(n.Left, v)
		n.Right = mutateExpr(n.Right, v)
	case *CommaExpr:
		for i, e := range n.Exprs {
			n.Exprs[i] = mutateExpr(e, v)
		}
	case *IdentifierExpr, *ConstantExpr, *StringLiteralExpr, *ErrorExpr:
		// leaves

	// Types and specifiers.
	case *TypeNameNode:
		n.Specifiers = WalkMutable(n.Specifiers, v).(*SpecifierQualifierList)
		if n.Abstract != nil {
			n.Abstract = WalkMutable(n.Abstract, v).(AbstractDeclarator)
		}
	case *SpecifierQualifierList:
		for i, item := range n.Items {
			n.Items[i] = WalkMutable(item, v).(TypeSpecifierQualifier)
		}
	case *DeclarationSpecifiers:
		for i, item := range n.Items {
			n.Items[i] = WalkMutable(item, v).(DeclarationSpecifier)
		}
	case *TypeSpecifierItem:
		n.Spec = WalkMutable(n.Spec, v).(TypeSpecifier)
	case *AlignmentSpecifierItem:
		n.Align = WalkMutable(n.Align, v).(AlignmentSpecifier)
	case *AlignAsType:
		n.Type = WalkMutable(n.Type, v).(TypeName)
	case *AlignAsExpr:
		n.Expr = mutateExpr(n.Expr, v)
	case *TypeSpecQualItem:
		n.Item = WalkMutable(n.Item, v).(TypeSpecifierQualifier)
	case *BitIntTypeSpecifier:
		n.Width = mutateExpr(n.Width, v)
	case *AtomicTypeSpecifier:
		n.Type = WalkMutable(n.Type, v).(TypeName)
	case *StructOrUnionTypeSpecifier:
		n.Spec = WalkMutable(n.Spec, v).(*StructOrUnionSpecifier)
	case *EnumTypeSpecifier:
		n.Spec = WalkMutable(n.Spec, v).(*EnumSpecifier)
	case *TypeofTypeSpecifier:
		n.Arg = WalkMutable(n.Arg, v).(TypeofArgument)
	case *TypeofExprArg:
		n.Expr = mutateExpr(n.Expr, v)
	case *TypeofTypeArg:
		n.Type = WalkMutable(n.Type, v).(TypeName)
	case *StructOrUnionSpecifier:
		for i, m := range n.Members {
			n.Members[i] = WalkMutable(m, v).(MemberDeclaration)
		}
	case *NormalMemberDecl:
		n.Specifiers = WalkMutable(n.Specifiers, v).(*SpecifierQualifierList)
		for i, d := range n.Declarators {
			n.Declarators[i] = WalkMutable(d, v).(*MemberDeclaratorNode)
		}
	case *StaticAssertMemberDecl:
		n.Assert = WalkMutable(n.Assert, v).(*StaticAssertDecl)
	case *MemberDeclaratorNode:
		if n.Decl != nil {
			n.Decl = WalkMutable(n.Decl, v).(Declarator)
		}
		if n.Width != nil {
			n.Width = mutateExpr(n.Width, v)
		}
	case *EnumSpecifier:
		if n.TypeSpec != nil {
			n.TypeSpec = WalkMutable(n.TypeSpec, v).(*SpecifierQualifierList)
		}
		for i, e := range n.Enumerators {
			n.Enumerators[i] = WalkMutable(e, v).(*Enumerator)
		}
	case *Enumerator:
		if n.Value != nil {
			n.Value = mutateExpr(n.Value, v)
		}
	case *ErrorTypeName, *TypeQualifierItem, *StorageClassItem, *FunctionSpecItem,
		*PrimitiveTypeSpecifier, *TypedefNameTypeSpecifier, *TypeofErrorArg:
		// leaves

	// Declarators.
	case *ParenDeclarator:
		n.Inner = WalkMutable(n.Inner, v).(Declarator)
	case *ArrayDeclaratorNode:
		n.BaseDeclarator = WalkMutable(n.BaseDeclarator, v).(Declarator)
		n.Size = WalkMutable(n.Size, v).(ArraySize)
	case *FunctionDeclaratorNode:
		n.BaseDeclarator = WalkMutable(n.BaseDeclarator, v).(Declarator)
		mutateParams(n.Params, v)
	case *PointerDeclaratorNode:
		n.Inner = WalkMutable(n.Inner, v).(Declarator)
	case *FixedArraySize:
		n.Size = mutateExpr(n.Size, v)
	case *ParameterDeclaration:
		n.Specifiers = WalkMutable(n.Specifiers, v).(*DeclarationSpecifiers)
		if n.Declarator != nil {
			n.Declarator = WalkMutable(n.Declarator, v).(Declarator)
		}
		if n.Abstract != nil {
			n.Abstract = WalkMutable(n.Abstract, v).(AbstractDeclarator)
		}
	case *AbstractParenDeclarator:
		n.Inner = WalkMutable(n.Inner, v).(AbstractDeclarator)
	case *AbstractArrayDeclarator:
		if n.BaseDeclarator != nil {
			n.BaseDeclarator = WalkMutable(n.BaseDeclarator, v).(AbstractDeclarator)
		}
		n.Size = WalkMutable(n.Size, v).(ArraySize)
	case *AbstractFunctionDeclarator:
		if n.BaseDeclarator != nil {
			n.BaseDeclarator = WalkMutable(n.BaseDeclarator, v).(AbstractDeclarator)
		}
		mutateParams(n.Params, v)
	case *AbstractPointerDeclarator:
		if n.Inner != nil {
			n.Inner = WalkMutable(n.Inner, v).(AbstractDeclarator)
		}
	case *IdentifierDeclarator, *ErrorDeclarator, *UnspecifiedArraySize,
		*VLAArraySize, *ErrorArraySize, *ErrorAbstractDeclarator:
		// leaves

	// Declarations and initializers.
	case *NormalDecl:
		n.Specifiers = WalkMutable(n.Specifiers, v).(*DeclarationSpecifiers)
		for i, d := range n.Declarators {
			n.Declarators[i] = WalkMutable(d, v).(*InitDeclarator)
		}
	case *TypedefDecl:
		n.Specifiers = WalkMutable(n.Specifiers, v).(*DeclarationSpecifiers)
		for i, d := range n.Declarators {
			n.Declarators[i] = WalkMutable(d, v).(Declarator)
		}
	case *StaticAssertDecl:
		n.Condition = mutateExpr(n.Condition, v)
	case *InitDeclarator:
		n.Declarator = WalkMutable(n.Declarator, v).(Declarator)
		if n.Initializer != nil {
			n.Initializer = WalkMutable(n.Initializer, v).(Initializer)
		}
	case *ExprInitializer:
		n.Expr = mutateExpr(n.Expr, v)
	case *BracedInitializerNode:
		for i, item := range n.Items {
			n.Items[i] = WalkMutable(item, v).(*DesignatedInitializerNode)
		}
	case *DesignatedInitializerNode:
		for i, d := range n.Designators {
			n.Designators[i] = WalkMutable(d, v).(Designator)
		}
		n.Init = WalkMutable(n.Init, v).(Initializer)
	case *ArrayDesignator:
		n.Index = mutateExpr(n.Index, v)
	case *RangeDesignator:
		n.Low = mutateExpr(n.Low, v)
		n.High = mutateExpr(n.High, v)
	case *AttributeList:
		for i, a := range n.Attributes {
			n.Attributes[i] = WalkMutable(a, v).(*Attribute)
		}
	case *AttributeDecl, *ErrorDecl, *MemberDesignator, *AsmAttribute,
		*ErrorAttributeSpecifier, *Attribute:
		// leaves

	// Statements.
	case *LabeledStmt:
		n.Label = WalkMutable(n.Label, v).(Label)
		n.Stmt = WalkMutable(n.Stmt, v).(Statement)
	case *CaseLabel:
		n.Expr = mutateExpr(n.Expr, v)
	case *ExpressionStmt:
		if n.Expr != nil {
			n.Expr = mutateExpr(n.Expr, v)
		}
	case *CompoundStatement:
		for i, item := range n.Items {
			n.Items[i] = WalkMutable(item, v).(BlockItem)
		}
	case *DeclItem:
		n.Decl = WalkMutable(n.Decl, v).(Declaration)
	case *StmtItem:
		n.Stmt = WalkMutable(n.Stmt, v).(Statement)
	case *LabelItem:
		n.Label = WalkMutable(n.Label, v).(Label)
	case *IfStmt:
		n.Cond = mutateExpr(n.Cond, v)
		n.Then = WalkMutable(n.Then, v).(Statement)
		if n.Else != nil {
			n.Else = WalkMutable(n.Else, v).(Statement)
		}
	case *SwitchStmt:
		n.Expr = mutateExpr(n.Expr, v)
		n.Body = WalkMutable(n.Body, v).(Statement)
	case *WhileStmt:
		n.Cond = mutateExpr(n.Cond, v)
		n.Body = WalkMutable(n.Body, v).(Statement)
	case *DoWhileStmt:
		n.Body = WalkMutable(n.Body, v).(Statement)
		n.Cond = mutateExpr(n.Cond, v)
	case *ForStmt:
		if n.Init != nil {
			n.Init = WalkMutable(n.Init, v).(ForInit)
		}
		if n.Cond != nil {
			n.Cond = mutateExpr(n.Cond, v)
		}
		if n.Update != nil {
			n.Update = mutateExpr(n.Update, v)
		}
		n.Body = WalkMutable(n.Body, v).(Statement)
	case *ExprForInit:
		n.Expr = mutateExpr(n.Expr, v)
	case *DeclForInit:
		n.Decl = WalkMutable(n.Decl, v).(Declaration)
	case *ReturnStmt:
		if n.Expr != nil {
			n.Expr = mutateExpr(n.Expr, v)
		}
	case *TryStmt:
		n.Body = WalkMutable(n.Body, v).(*CompoundStatement)
		for i, c := range n.Catches {
			n.Catches[i] = WalkMutable(c, v).(*CatchClause)
		}
	case *CatchClause:
		if n.Param != nil {
			n.Param = WalkMutable(n.Param, v).(*ParameterDeclaration)
		}
		n.Body = WalkMutable(n.Body, v).(*CompoundStatement)
	case *ThrowStmt:
		if n.Expr != nil {
			n.Expr = mutateExpr(n.Expr, v)
		}
	case *IdentifierLabel, *DefaultLabel, *GotoStmt, *ContinueStmt,
		*BreakStmt, *ErrorStmt:
		// leaves

	// Translation unit.
	case *TranslationUnit:
		for i, d := range n.Declarations {
			n.Declarations[i] = WalkMutable(d, v).(ExternalDeclaration)
		}
	case *FunctionDefinition:
		n.Specifiers = WalkMutable(n.Specifiers, v).(*DeclarationSpecifiers)
		n.Declarator = WalkMutable(n.Declarator, v).(Declarator)
		n.Body = WalkMutable(n.Body, v).(*CompoundStatement)
	}

	return v.Mutate(n)
}

// mutateExpr is WalkMutable specialized to Expression, returning nil
// for a nil input rather than panicking on the failed type assertion a
// bare WalkMutable(nil, v).(Expression) would hit — many Expression
// fields (e.g. ExpressionStmt.Expr, ReturnStmt.Expr) are optional.
func mutateExpr(e Expression, v MutableVisitor) Expression {
	if e == nil {
		return nil
	}
	return WalkMutable(e, v).(Expression)
}

// mutateParams rewrites a ParameterTypeList's parameters in place. The
// list itself is a plain aggregate (see declarator.go), not a Node, so
// it has no Mutate hook of its own.
func mutateParams(p *ParameterTypeList, v MutableVisitor) {
	if p == nil {
		return
	}
	for i, param := range p.Parameters {
		p.Parameters[i] = WalkMutable(param, v).(*ParameterDeclaration)
	}
}
