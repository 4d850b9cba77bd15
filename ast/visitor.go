package ast

// Visitor is the immutable traversal interface: one method per concrete
// node type, following the teacher's internal/ast Visitor/Accept shape.
// Implementations that only care about a handful of node kinds should
// embed BaseVisitor and override just those methods.
type Visitor interface {
	// Expressions.
	VisitIdentifierExpr(n *IdentifierExpr) any
	VisitConstantExpr(n *ConstantExpr) any
	VisitStringLiteralExpr(n *StringLiteralExpr) any
	VisitParenExpr(n *ParenExpr) any
	VisitGenericSelectionExpr(n *GenericSelectionExpr) any
	VisitTypeAssociation(n *TypeAssociation) any
	VisitDefaultAssociation(n *DefaultAssociation) any
	VisitArrayAccessExpr(n *ArrayAccessExpr) any
	VisitCallExpr(n *CallExpr) any
	VisitMemberAccessExpr(n *MemberAccessExpr) any
	VisitIncDecExpr(n *IncDecExpr) any
	VisitCompoundLiteralExpr(n *CompoundLiteralExpr) any
	VisitUnaryExpr(n *UnaryExpr) any
	VisitSizeofExpr(n *SizeofExpr) any
	VisitSizeofTypeExpr(n *SizeofTypeExpr) any
	VisitAlignofExpr(n *AlignofExpr) any
	VisitCastExpr(n *CastExpr) any
	VisitBinaryExpr(n *BinaryExpr) any
	VisitConditionalExpr(n *ConditionalExpr) any
	VisitAssignmentExpr(n *AssignmentExpr) any
	VisitCommaExpr(n *CommaExpr) any
	VisitErrorExpr(n *ErrorExpr) any

	// Types and specifiers.
	VisitTypeNameNode(n *TypeNameNode) any
	VisitErrorTypeName(n *ErrorTypeName) any
	VisitTypeSpecifierItem(n *TypeSpecifierItem) any
	VisitTypeQualifierItem(n *TypeQualifierItem) any
	VisitAlignmentSpecifierItem(n *AlignmentSpecifierItem) any
	VisitAlignAsType(n *AlignAsType) any
	VisitAlignAsExpr(n *AlignAsExpr) any
	VisitStorageClassItem(n *StorageClassItem) any
	VisitTypeSpecQualItem(n *TypeSpecQualItem) any
	VisitFunctionSpecItem(n *FunctionSpecItem) any
	VisitPrimitiveTypeSpecifier(n *PrimitiveTypeSpecifier) any
	VisitBitIntTypeSpecifier(n *BitIntTypeSpecifier) any
	VisitAtomicTypeSpecifier(n *AtomicTypeSpecifier) any
	VisitStructOrUnionTypeSpecifier(n *StructOrUnionTypeSpecifier) any
	VisitEnumTypeSpecifier(n *EnumTypeSpecifier) any
	VisitTypedefNameTypeSpecifier(n *TypedefNameTypeSpecifier) any
	VisitTypeofTypeSpecifier(n *TypeofTypeSpecifier) any
	VisitTypeofExprArg(n *TypeofExprArg) any
	VisitTypeofTypeArg(n *TypeofTypeArg) any
	VisitTypeofErrorArg(n *TypeofErrorArg) any
	VisitStructOrUnionSpecifier(n *StructOrUnionSpecifier) any
	VisitNormalMemberDecl(n *NormalMemberDecl) any
	VisitStaticAssertMemberDecl(n *StaticAssertMemberDecl) any
	VisitErrorMemberDecl(n *ErrorMemberDecl) any
	VisitMemberDeclaratorNode(n *MemberDeclaratorNode) any
	VisitEnumSpecifier(n *EnumSpecifier) any
	VisitEnumerator(n *Enumerator) any
	VisitSpecifierQualifierList(n *SpecifierQualifierList) any
	VisitDeclarationSpecifiers(n *DeclarationSpecifiers) any

	// Declarators.
	VisitIdentifierDeclarator(n *IdentifierDeclarator) any
	VisitParenDeclarator(n *ParenDeclarator) any
	VisitArrayDeclaratorNode(n *ArrayDeclaratorNode) any
	VisitFunctionDeclaratorNode(n *FunctionDeclaratorNode) any
	VisitPointerDeclaratorNode(n *PointerDeclaratorNode) any
	VisitErrorDeclarator(n *ErrorDeclarator) any
	VisitUnspecifiedArraySize(n *UnspecifiedArraySize) any
	VisitFixedArraySize(n *FixedArraySize) any
	VisitVLAArraySize(n *VLAArraySize) any
	VisitErrorArraySize(n *ErrorArraySize) any
	VisitParameterDeclaration(n *ParameterDeclaration) any
	VisitAbstractParenDeclarator(n *AbstractParenDeclarator) any
	VisitAbstractArrayDeclarator(n *AbstractArrayDeclarator) any
	VisitAbstractFunctionDeclarator(n *AbstractFunctionDeclarator) any
	VisitAbstractPointerDeclarator(n *AbstractPointerDeclarator) any
	VisitErrorAbstractDeclarator(n *ErrorAbstractDeclarator) any

	// Declarations and initializers.
	VisitNormalDecl(n *NormalDecl) any
	VisitTypedefDecl(n *TypedefDecl) any
	VisitStaticAssertDecl(n *StaticAssertDecl) any
	VisitAttributeDecl(n *AttributeDecl) any
	VisitErrorDecl(n *ErrorDecl) any
	VisitInitDeclarator(n *InitDeclarator) any
	VisitExprInitializer(n *ExprInitializer) any
	VisitBracedInitializerNode(n *BracedInitializerNode) any
	VisitDesignatedInitializerNode(n *DesignatedInitializerNode) any
	VisitArrayDesignator(n *ArrayDesignator) any
	VisitRangeDesignator(n *RangeDesignator) any
	VisitMemberDesignator(n *MemberDesignator) any
	VisitAttributeList(n *AttributeList) any
	VisitAsmAttribute(n *AsmAttribute) any
	VisitErrorAttributeSpecifier(n *ErrorAttributeSpecifier) any
	VisitAttribute(n *Attribute) any

	// Statements.
	VisitLabeledStmt(n *LabeledStmt) any
	VisitIdentifierLabel(n *IdentifierLabel) any
	VisitCaseLabel(n *CaseLabel) any
	VisitDefaultLabel(n *DefaultLabel) any
	VisitExpressionStmt(n *ExpressionStmt) any
	VisitCompoundStatement(n *CompoundStatement) any
	VisitDeclItem(n *DeclItem) any
	VisitStmtItem(n *StmtItem) any
	VisitLabelItem(n *LabelItem) any
	VisitIfStmt(n *IfStmt) any
	VisitSwitchStmt(n *SwitchStmt) any
	VisitWhileStmt(n *WhileStmt) any
	VisitDoWhileStmt(n *DoWhileStmt) any
	VisitForStmt(n *ForStmt) any
	VisitExprForInit(n *ExprForInit) any
	VisitDeclForInit(n *DeclForInit) any
	VisitGotoStmt(n *GotoStmt) any
	VisitContinueStmt(n *ContinueStmt) any
	VisitBreakStmt(n *BreakStmt) any
	VisitReturnStmt(n *ReturnStmt) any
	VisitErrorStmt(n *ErrorStmt) any
	VisitTryStmt(n *TryStmt) any
	VisitCatchClause(n *CatchClause) any
	VisitThrowStmt(n *ThrowStmt) any

	// Translation unit.
	VisitTranslationUnit(n *TranslationUnit) any
	VisitFunctionDefinition(n *FunctionDefinition) any
}

// BaseVisitor implements Visitor with every method returning nil,
// letting a concrete visitor embed it and override only the node kinds
// it cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitIdentifierExpr(n *IdentifierExpr) any             { return nil }
func (BaseVisitor) VisitConstantExpr(n *ConstantExpr) any                 { return nil }
func (BaseVisitor) VisitStringLiteralExpr(n *StringLiteralExpr) any       { return nil }
func (BaseVisitor) VisitParenExpr(n *ParenExpr) any                       { return nil }
func (BaseVisitor) VisitGenericSelectionExpr(n *GenericSelectionExpr) any { return nil }
func (BaseVisitor) VisitTypeAssociation(n *TypeAssociation) any           { return nil }
func (BaseVisitor) VisitDefaultAssociation(n *DefaultAssociation) any     { return nil }
func (BaseVisitor) VisitArrayAccessExpr(n *ArrayAccessExpr) any           { return nil }
func (BaseVisitor) VisitCallExpr(n *CallExpr) any                        { return nil }
func (BaseVisitor) VisitMemberAccessExpr(n *MemberAccessExpr) any        { return nil }
func (BaseVisitor) VisitIncDecExpr(n *IncDecExpr) any                     { return nil }
func (BaseVisitor) VisitCompoundLiteralExpr(n *CompoundLiteralExpr) any   { return nil }
func (BaseVisitor) VisitUnaryExpr(n *UnaryExpr) any                       { return nil }
func (BaseVisitor) VisitSizeofExpr(n *SizeofExpr) any                     { return nil }
func (BaseVisitor) VisitSizeofTypeExpr(n *SizeofTypeExpr) any             { return nil }
func (BaseVisitor) VisitAlignofExpr(n *AlignofExpr) any                   { return nil }
func (BaseVisitor) VisitCastExpr(n *CastExpr) any                         { return nil }
func (BaseVisitor) VisitBinaryExpr(n *BinaryExpr) any                     { return nil }
func (BaseVisitor) VisitConditionalExpr(n *ConditionalExpr) any           { return nil }
func (BaseVisitor) VisitAssignmentExpr(n *AssignmentExpr) any             { return nil }
func (BaseVisitor) VisitCommaExpr(n *CommaExpr) any                       { return nil }
func (BaseVisitor) VisitErrorExpr(n *ErrorExpr) any                       { return nil }

func (BaseVisitor) VisitTypeNameNode(n *TypeNameNode) any                             { return nil }
func (BaseVisitor) VisitErrorTypeName(n *ErrorTypeName) any                           { return nil }
func (BaseVisitor) VisitTypeSpecifierItem(n *TypeSpecifierItem) any                   { return nil }
func (BaseVisitor) VisitTypeQualifierItem(n *TypeQualifierItem) any                   { return nil }
func (BaseVisitor) VisitAlignmentSpecifierItem(n *AlignmentSpecifierItem) any         { return nil }
func (BaseVisitor) VisitAlignAsType(n *AlignAsType) any                               { return nil }
func (BaseVisitor) VisitAlignAsExpr(n *AlignAsExpr) any                               { return nil }
func (BaseVisitor) VisitStorageClassItem(n *StorageClassItem) any                     { return nil }
func (BaseVisitor) VisitTypeSpecQualItem(n *TypeSpecQualItem) any                     { return nil }
func (BaseVisitor) VisitFunctionSpecItem(n *FunctionSpecItem) any                     { return nil }
func (BaseVisitor) VisitPrimitiveTypeSpecifier(n *PrimitiveTypeSpecifier) any         { return nil }
func (BaseVisitor) VisitBitIntTypeSpecifier(n *BitIntTypeSpecifier) any               { return nil }
func (BaseVisitor) VisitAtomicTypeSpecifier(n *AtomicTypeSpecifier) any               { return nil }
func (BaseVisitor) VisitStructOrUnionTypeSpecifier(n *StructOrUnionTypeSpecifier) any { return nil }
func (BaseVisitor) VisitEnumTypeSpecifier(n *EnumTypeSpecifier) any                   { return nil }
func (BaseVisitor) VisitTypedefNameTypeSpecifier(n *TypedefNameTypeSpecifier) any     { return nil }
func (BaseVisitor) VisitTypeofTypeSpecifier(n *TypeofTypeSpecifier) any               { return nil }
func (BaseVisitor) VisitTypeofExprArg(n *TypeofExprArg) any                           { return nil }
func (BaseVisitor) VisitTypeofTypeArg(n *TypeofTypeArg) any                           { return nil }
func (BaseVisitor) VisitTypeofErrorArg(n *TypeofErrorArg) any                         { return nil }
func (BaseVisitor) VisitStructOrUnionSpecifier(n *StructOrUnionSpecifier) any         { return nil }
func (BaseVisitor) VisitNormalMemberDecl(n *NormalMemberDecl) any                     { return nil }
func (BaseVisitor) VisitStaticAssertMemberDecl(n *StaticAssertMemberDecl) any         { return nil }
func (BaseVisitor) VisitErrorMemberDecl(n *ErrorMemberDecl) any                       { return nil }
func (BaseVisitor) VisitMemberDeclaratorNode(n *MemberDeclaratorNode) any             { return nil }
func (BaseVisitor) VisitEnumSpecifier(n *EnumSpecifier) any                           { return nil }
func (BaseVisitor) VisitEnumerator(n *Enumerator) any                                 { return nil }
func (BaseVisitor) VisitSpecifierQualifierList(n *SpecifierQualifierList) any         { return nil }
func (BaseVisitor) VisitDeclarationSpecifiers(n *DeclarationSpecifiers) any           { return nil }

func (BaseVisitor) VisitIdentifierDeclarator(n *IdentifierDeclarator) any             { return nil }
func (BaseVisitor) VisitParenDeclarator(n *ParenDeclarator) any                       { return nil }
func (BaseVisitor) VisitArrayDeclaratorNode(n *ArrayDeclaratorNode) any               { return nil }
func (BaseVisitor) VisitFunctionDeclaratorNode(n *FunctionDeclaratorNode) any         { return nil }
func (BaseVisitor) VisitPointerDeclaratorNode(n *PointerDeclaratorNode) any           { return nil }
func (BaseVisitor) VisitErrorDeclarator(n *ErrorDeclarator) any                       { return nil }
func (BaseVisitor) VisitUnspecifiedArraySize(n *UnspecifiedArraySize) any             { return nil }
func (BaseVisitor) VisitFixedArraySize(n *FixedArraySize) any                         { return nil }
func (BaseVisitor) VisitVLAArraySize(n *VLAArraySize) any                             { return nil }
func (BaseVisitor) VisitErrorArraySize(n *ErrorArraySize) any                         { return nil }
func (BaseVisitor) VisitParameterDeclaration(n *ParameterDeclaration) any             { return nil }
func (BaseVisitor) VisitAbstractParenDeclarator(n *AbstractParenDeclarator) any       { return nil }
func (BaseVisitor) VisitAbstractArrayDeclarator(n *AbstractArrayDeclarator) any       { return nil }
func (BaseVisitor) VisitAbstractFunctionDeclarator(n *AbstractFunctionDeclarator) any { return nil }
func (BaseVisitor) VisitAbstractPointerDeclarator(n *AbstractPointerDeclarator) any   { return nil }
func (BaseVisitor) VisitErrorAbstractDeclarator(n *ErrorAbstractDeclarator) any       { return nil }

func (BaseVisitor) VisitNormalDecl(n *NormalDecl) any                             { return nil }
func (BaseVisitor) VisitTypedefDecl(n *TypedefDecl) any                           { return nil }
func (BaseVisitor) VisitStaticAssertDecl(n *StaticAssertDecl) any                 { return nil }
func (BaseVisitor) VisitAttributeDecl(n *AttributeDecl) any                       { return nil }
func (BaseVisitor) VisitErrorDecl(n *ErrorDecl) any                               { return nil }
func (BaseVisitor) VisitInitDeclarator(n *InitDeclarator) any                     { return nil }
func (BaseVisitor) VisitExprInitializer(n *ExprInitializer) any                   { return nil }
func (BaseVisitor) VisitBracedInitializerNode(n *BracedInitializerNode) any       { return nil }
func (BaseVisitor) VisitDesignatedInitializerNode(n *DesignatedInitializerNode) any { return nil }
func (BaseVisitor) VisitArrayDesignator(n *ArrayDesignator) any                   { return nil }
func (BaseVisitor) VisitRangeDesignator(n *RangeDesignator) any                   { return nil }
func (BaseVisitor) VisitMemberDesignator(n *MemberDesignator) any                 { return nil }
func (BaseVisitor) VisitAttributeList(n *AttributeList) any                       { return nil }
func (BaseVisitor) VisitAsmAttribute(n *AsmAttribute) any                         { return nil }
func (BaseVisitor) VisitErrorAttributeSpecifier(n *ErrorAttributeSpecifier) any   { return nil }
func (BaseVisitor) VisitAttribute(n *Attribute) any                               { return nil }

func (BaseVisitor) VisitLabeledStmt(n *LabeledStmt) any         { return nil }
func (BaseVisitor) VisitIdentifierLabel(n *IdentifierLabel) any { return nil }
func (BaseVisitor) VisitCaseLabel(n *CaseLabel) any             { return nil }
func (BaseVisitor) VisitDefaultLabel(n *DefaultLabel) any       { return nil }
func (BaseVisitor) VisitExpressionStmt(n *ExpressionStmt) any   { return nil }
func (BaseVisitor) VisitCompoundStatement(n *CompoundStatement) any { return nil }
func (BaseVisitor) VisitDeclItem(n *DeclItem) any               { return nil }
func (BaseVisitor) VisitStmtItem(n *StmtItem) any               { return nil }
func (BaseVisitor) VisitLabelItem(n *LabelItem) any             { return nil }
func (BaseVisitor) VisitIfStmt(n *IfStmt) any                   { return nil }
func (BaseVisitor) VisitSwitchStmt(n *SwitchStmt) any           { return nil }
func (BaseVisitor) VisitWhileStmt(n *WhileStmt) any             { return nil }
func (BaseVisitor) VisitDoWhileStmt(n *DoWhileStmt) any         { return nil }
func (BaseVisitor) VisitForStmt(n *ForStmt) any                 { return nil }
func (BaseVisitor) VisitExprForInit(n *ExprForInit) any         { return nil }
func (BaseVisitor) VisitDeclForInit(n *DeclForInit) any         { return nil }
func (BaseVisitor) VisitGotoStmt(n *GotoStmt) any               { return nil }
func (BaseVisitor) VisitContinueStmt(n *ContinueStmt) any       { return nil }
func (BaseVisitor) VisitBreakStmt(n *BreakStmt) any             { return nil }
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt) any           { return nil }
func (BaseVisitor) VisitErrorStmt(n *ErrorStmt) any             { return nil }
func (BaseVisitor) VisitTryStmt(n *TryStmt) any                 { return nil }
func (BaseVisitor) VisitCatchClause(n *CatchClause) any         { return nil }
func (BaseVisitor) VisitThrowStmt(n *ThrowStmt) any             { return nil }

func (BaseVisitor) VisitTranslationUnit(n *TranslationUnit) any       { return nil }
func (BaseVisitor) VisitFunctionDefinition(n *FunctionDefinition) any { return nil }
