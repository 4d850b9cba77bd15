package ast

// TypeName is the sealed family for a standalone type-name (6.7.7), used
// wherever the grammar calls for a type without a declared identifier:
// sizeof/alignof operands, cast targets, generic associations.
type TypeName interface {
	Node
	typeNameNode()
}

// TypeNameNode is a well-formed type name.
type TypeNameNode struct {
	base
	Specifiers *SpecifierQualifierList
	Abstract   AbstractDeclarator // nil if the type name declares no derivation
}

func (*TypeNameNode) typeNameNode()        {}
func (n *TypeNameNode) Accept(v Visitor) any { return v.VisitTypeNameNode(n) }

// ErrorTypeName stands in for a type name the parser could not recover.
type ErrorTypeName struct{ base }

func (*ErrorTypeName) typeNameNode()        {}
func (n *ErrorTypeName) Accept(v Visitor) any { return v.VisitErrorTypeName(n) }

// SpecifierQualifierList is the specifier/qualifier list shared by
// type names and member/parameter declarations (6.7.2.1). It is not
// part of any sealed family — every TypeName/MemberDeclaration simply
// holds one directly — but it does implement Node so Walk can descend
// into it uniformly with everything else.
type SpecifierQualifierList struct {
	base
	Items      []TypeSpecifierQualifier
	Attributes []AttributeSpecifier
}

func (n *SpecifierQualifierList) Accept(v Visitor) any { return v.VisitSpecifierQualifierList(n) }

// TypeSpecifierQualifier is the sealed family combining a type
// specifier, a type qualifier, or an alignment specifier (6.7.2.1).
type TypeSpecifierQualifier interface {
	Node
	specQualNode()
}

// TypeSpecifierItem wraps a TypeSpecifier occurring in a specifier list.
type TypeSpecifierItem struct {
	base
	Spec TypeSpecifier
}

func (*TypeSpecifierItem) specQualNode()      {}
func (n *TypeSpecifierItem) Accept(v Visitor) any { return v.VisitTypeSpecifierItem(n) }

// TypeQualifierItem wraps a single type qualifier occurring in a
// specifier list.
type TypeQualifierItem struct {
	base
	Qual TypeQualifierKind
}

func (*TypeQualifierItem) specQualNode()      {}
func (n *TypeQualifierItem) Accept(v Visitor) any { return v.VisitTypeQualifierItem(n) }

// AlignmentSpecifierItem wraps an alignas specifier occurring in a
// specifier list.
type AlignmentSpecifierItem struct {
	base
	Align AlignmentSpecifier
}

func (*AlignmentSpecifierItem) specQualNode()      {}
func (n *AlignmentSpecifierItem) Accept(v Visitor) any { return v.VisitAlignmentSpecifierItem(n) }

// AlignmentSpecifier is the sealed family for `_Alignas`/`alignas`
// arguments (6.7.5), restored from original_source as part of this
// module's _Alignas/alignof supplement.
type AlignmentSpecifier interface {
	Node
	alignSpecNode()
}

// AlignAsType is `alignas(type-name)`.
type AlignAsType struct {
	base
	Type TypeName
}

func (*AlignAsType) alignSpecNode()      {}
func (n *AlignAsType) Accept(v Visitor) any { return v.VisitAlignAsType(n) }

// AlignAsExpr is `alignas(constant-expression)`.
type AlignAsExpr struct {
	base
	Expr Expression
}

func (*AlignAsExpr) alignSpecNode()      {}
func (n *AlignAsExpr) Accept(v Visitor) any { return v.VisitAlignAsExpr(n) }

// DeclarationSpecifier is the sealed family making up one element of a
// declaration's specifier list (6.7): a storage class, a type
// specifier/qualifier, or a function specifier.
type DeclarationSpecifier interface {
	Node
	declSpecNode()
}

// StorageClassItem wraps a storage-class specifier (6.7.1).
type StorageClassItem struct {
	base
	Class StorageClassKind
}

func (*StorageClassItem) declSpecNode()      {}
func (n *StorageClassItem) Accept(v Visitor) any { return v.VisitStorageClassItem(n) }

// TypeSpecQualItem wraps a type-specifier-or-qualifier occurring
// directly in a declaration's specifier list.
type TypeSpecQualItem struct {
	base
	Item TypeSpecifierQualifier
}

func (*TypeSpecQualItem) declSpecNode()      {}
func (n *TypeSpecQualItem) Accept(v Visitor) any { return v.VisitTypeSpecQualItem(n) }

// FunctionSpecItem wraps a function specifier (6.7.4), e.g. `inline`.
type FunctionSpecItem struct {
	base
	Kind       FunctionSpecifierKind
	Attributes []AttributeSpecifier
}

func (*FunctionSpecItem) declSpecNode()      {}
func (n *FunctionSpecItem) Accept(v Visitor) any { return v.VisitFunctionSpecItem(n) }

// DeclarationSpecifiers is the ordered specifier list of a declaration,
// implementing Node for the same reason as SpecifierQualifierList.
type DeclarationSpecifiers struct {
	base
	Items []DeclarationSpecifier
}

func (n *DeclarationSpecifiers) Accept(v Visitor) any { return v.VisitDeclarationSpecifiers(n) }

// TypeSpecifier is the sealed family of 6.7.2 type specifiers.
type TypeSpecifier interface {
	Node
	typeSpecNode()
}

// PrimitiveTypeSpecifier is any of the fixed-spelling basic type
// specifiers (void, char, int, ... _Decimal128) that carry no payload.
type PrimitiveTypeSpecifier struct {
	base
	Kind PrimitiveKind
}

func (*PrimitiveTypeSpecifier) typeSpecNode()      {}
func (n *PrimitiveTypeSpecifier) Accept(v Visitor) any { return v.VisitPrimitiveTypeSpecifier(n) }

// BitIntTypeSpecifier is `_BitInt(N)` (6.7.2), with N a constant
// expression evaluated to determine the width of the represented
// integer; this is why the token layer backs integer constants with
// math/big.Int rather than a machine word.
type BitIntTypeSpecifier struct {
	base
	Width Expression
}

func (*BitIntTypeSpecifier) typeSpecNode()      {}
func (n *BitIntTypeSpecifier) Accept(v Visitor) any { return v.VisitBitIntTypeSpecifier(n) }

// AtomicTypeSpecifier is `_Atomic(type-name)` (6.7.2.4), restored from
// original_source as part of this module's _Atomic specifier supplement
// (distinct from the `_Atomic` type qualifier, which has no parenthesized
// argument).
type AtomicTypeSpecifier struct {
	base
	Type TypeName
}

func (*AtomicTypeSpecifier) typeSpecNode()      {}
func (n *AtomicTypeSpecifier) Accept(v Visitor) any { return v.VisitAtomicTypeSpecifier(n) }

// StructOrUnionTypeSpecifier wraps a struct-or-union specifier occurring
// as a type specifier.
type StructOrUnionTypeSpecifier struct {
	base
	Spec *StructOrUnionSpecifier
}

func (*StructOrUnionTypeSpecifier) typeSpecNode() {}
func (n *StructOrUnionTypeSpecifier) Accept(v Visitor) any {
	return v.VisitStructOrUnionTypeSpecifier(n)
}

// EnumTypeSpecifier wraps an enum specifier occurring as a type
// specifier.
type EnumTypeSpecifier struct {
	base
	Spec *EnumSpecifier
}

func (*EnumTypeSpecifier) typeSpecNode()      {}
func (n *EnumTypeSpecifier) Accept(v Visitor) any { return v.VisitEnumTypeSpecifier(n) }

// TypedefNameTypeSpecifier is a type specifier resolved to a name the
// parser's scope stack recognized as a typedef at the point of use —
// the outcome of the central typedef/expression disambiguation this
// module exists to perform.
type TypedefNameTypeSpecifier struct {
	base
	Name string
}

func (*TypedefNameTypeSpecifier) typeSpecNode()      {}
func (n *TypedefNameTypeSpecifier) Accept(v Visitor) any { return v.VisitTypedefNameTypeSpecifier(n) }

// TypeofTypeSpecifier is `typeof(...)`/`typeof_unqual(...)` (6.7.2.5).
type TypeofTypeSpecifier struct {
	base
	Unqual bool
	Arg    TypeofArgument
}

func (*TypeofTypeSpecifier) typeSpecNode()      {}
func (n *TypeofTypeSpecifier) Accept(v Visitor) any { return v.VisitTypeofTypeSpecifier(n) }

// TypeofArgument is the sealed family of typeof/typeof_unqual arguments:
// either an expression or a type name.
type TypeofArgument interface {
	Node
	typeofArgNode()
}

// TypeofExprArg is a typeof argument given as an expression.
type TypeofExprArg struct {
	base
	Expr Expression
}

func (*TypeofExprArg) typeofArgNode()      {}
func (n *TypeofExprArg) Accept(v Visitor) any { return v.VisitTypeofExprArg(n) }

// TypeofTypeArg is a typeof argument given as a type name.
type TypeofTypeArg struct {
	base
	Type TypeName
}

func (*TypeofTypeArg) typeofArgNode()      {}
func (n *TypeofTypeArg) Accept(v Visitor) any { return v.VisitTypeofTypeArg(n) }

// TypeofErrorArg stands in for an unrecoverable typeof argument.
type TypeofErrorArg struct{ base }

func (*TypeofErrorArg) typeofArgNode()      {}
func (n *TypeofErrorArg) Accept(v Visitor) any { return v.VisitTypeofErrorArg(n) }

// StructOrUnionSpecifier is a struct or union specifier (6.7.2.1).
// Members is nil for a forward reference (`struct foo;`) and non-nil
// (possibly empty only under a vendor extension the parser flags) for a
// definition.
type StructOrUnionSpecifier struct {
	base
	Kind       StructOrUnionKind
	Attributes []AttributeSpecifier
	Name       string // empty if anonymous
	Members    []MemberDeclaration
}

func (n *StructOrUnionSpecifier) Accept(v Visitor) any { return v.VisitStructOrUnionSpecifier(n) }

// MemberDeclaration is the sealed family of struct/union member entries
// (6.7.2.1).
type MemberDeclaration interface {
	Node
	memberDeclNode()
}

// NormalMemberDecl is an ordinary member declaration, including
// anonymous struct/union members (when Declarators is empty and the
// specifier is itself a struct/union type) and flexible array members
// (the last declarator's Decl has an ArraySize of UnspecifiedArraySize).
type NormalMemberDecl struct {
	base
	Attributes  []AttributeSpecifier
	Specifiers  *SpecifierQualifierList
	Declarators []*MemberDeclaratorNode
}

func (*NormalMemberDecl) memberDeclNode()      {}
func (n *NormalMemberDecl) Accept(v Visitor) any { return v.VisitNormalMemberDecl(n) }

// StaticAssertMemberDecl is a _Static_assert appearing among members.
type StaticAssertMemberDecl struct {
	base
	Assert *StaticAssertDecl
}

func (*StaticAssertMemberDecl) memberDeclNode()      {}
func (n *StaticAssertMemberDecl) Accept(v Visitor) any { return v.VisitStaticAssertMemberDecl(n) }

// ErrorMemberDecl stands in for a member the parser could not recover.
type ErrorMemberDecl struct{ base }

func (*ErrorMemberDecl) memberDeclNode()      {}
func (n *ErrorMemberDecl) Accept(v Visitor) any { return v.VisitErrorMemberDecl(n) }

// MemberDeclaratorNode is one declarator in a member-declaration list.
// Decl is nil for an unnamed bit-field (`: width;`); Width is nil for an
// ordinary (non-bit-field) member.
type MemberDeclaratorNode struct {
	base
	Decl  Declarator
	Width Expression
}

func (n *MemberDeclaratorNode) Accept(v Visitor) any { return v.VisitMemberDeclaratorNode(n) }

// EnumSpecifier is an enum specifier (6.7.2.2). TypeSpec is the C23
// fixed-underlying-type extension (`enum Color : int { ... }`);
// Enumerators is nil for a forward reference.
type EnumSpecifier struct {
	base
	Attributes  []AttributeSpecifier
	Name        string
	TypeSpec    *SpecifierQualifierList
	Enumerators []*Enumerator
}

func (n *EnumSpecifier) Accept(v Visitor) any { return v.VisitEnumSpecifier(n) }

// Enumerator is one `name [= value]` entry in an enum specifier.
type Enumerator struct {
	base
	Name       string
	Attributes []AttributeSpecifier
	Value      Expression // nil if unspecified
}

func (n *Enumerator) Accept(v Visitor) any { return v.VisitEnumerator(n) }
