package ast

// Declarator is the sealed family of declarator forms (6.7.6), flattening
// the grammar's Declarator/DirectDeclarator split into one interface (see
// the package doc comment).
type Declarator interface {
	Node
	declaratorNode()
}

// IdentifierDeclarator is a bare declared name, the base case every
// declarator eventually bottoms out at (absent a parse error).
type IdentifierDeclarator struct {
	base
	Name       string
	Attributes []AttributeSpecifier
}

func (*IdentifierDeclarator) declaratorNode()      {}
func (n *IdentifierDeclarator) Accept(v Visitor) any { return v.VisitIdentifierDeclarator(n) }

// ParenDeclarator is a parenthesized declarator, used to change how a
// pointer/array/function derivation binds (e.g. `(*f)(int)` as a
// pointer-to-function versus `*f(int)` as a function returning a
// pointer).
type ParenDeclarator struct {
	base
	Inner Declarator
}

func (*ParenDeclarator) declaratorNode()      {}
func (n *ParenDeclarator) Accept(v Visitor) any { return v.VisitParenDeclarator(n) }

// ArrayDeclaratorNode adds one array-of dimension to Base.
type ArrayDeclaratorNode struct {
	base
	BaseDeclarator Declarator
	Attributes     []AttributeSpecifier
	Size           ArraySize
}

func (*ArrayDeclaratorNode) declaratorNode()      {}
func (n *ArrayDeclaratorNode) Accept(v Visitor) any { return v.VisitArrayDeclaratorNode(n) }

// FunctionDeclaratorNode adds one function-of parameter list to Base.
type FunctionDeclaratorNode struct {
	base
	BaseDeclarator Declarator
	Attributes     []AttributeSpecifier
	Params         *ParameterTypeList
}

func (*FunctionDeclaratorNode) declaratorNode() {}
func (n *FunctionDeclaratorNode) Accept(v Visitor) any {
	return v.VisitFunctionDeclaratorNode(n)
}

// PointerDeclaratorNode adds one pointer-to derivation to Inner.
type PointerDeclaratorNode struct {
	base
	Ptr   Pointer
	Inner Declarator
}

func (*PointerDeclaratorNode) declaratorNode()      {}
func (n *PointerDeclaratorNode) Accept(v Visitor) any { return v.VisitPointerDeclaratorNode(n) }

// ErrorDeclarator stands in for a declarator the parser could not
// recover.
type ErrorDeclarator struct{ base }

func (*ErrorDeclarator) declaratorNode()      {}
func (n *ErrorDeclarator) Accept(v Visitor) any { return v.VisitErrorDeclarator(n) }

// DeclaratorName walks d to find the identifier it ultimately declares,
// mirroring original_source/src/ast.rs's Declarator::identifier helper.
// It returns false if d bottoms out at ErrorDeclarator.
func DeclaratorName(d Declarator) (string, bool) {
	switch n := d.(type) {
	case *IdentifierDeclarator:
		return n.Name, true
	case *ParenDeclarator:
		return DeclaratorName(n.Inner)
	case *ArrayDeclaratorNode:
		return DeclaratorName(n.BaseDeclarator)
	case *FunctionDeclaratorNode:
		return DeclaratorName(n.BaseDeclarator)
	case *PointerDeclaratorNode:
		return DeclaratorName(n.Inner)
	default:
		return "", false
	}
}

// Pointer is one `*` derivation (6.7.6): attributes, qualifiers, and
// (clang extension) whether it's a block pointer (`^`) rather than an
// object pointer. It is a plain aggregate attached to a
// PointerDeclaratorNode/AbstractPointerDeclarator, not itself part of a
// sealed family.
type Pointer struct {
	Attributes []AttributeSpecifier
	Qualifiers []TypeQualifierKind
	Block      bool
}

// ArraySize is the sealed family of array-dimension forms (6.7.6.2).
type ArraySize interface {
	Node
	arraySizeNode()
}

// UnspecifiedArraySize is `[]`: no size given. Valid as a flexible array
// member's final dimension (6.7.2.1) or in an incomplete array type.
type UnspecifiedArraySize struct {
	base
	Qualifiers []TypeQualifierKind
}

func (*UnspecifiedArraySize) arraySizeNode()      {}
func (n *UnspecifiedArraySize) Accept(v Visitor) any { return v.VisitUnspecifiedArraySize(n) }

// FixedArraySize is `[size]` or, with Static set, `[static size]`
// (6.7.6.2's `static` array-size extension used in parameter
// declarations to hint a minimum argument length to the compiler).
type FixedArraySize struct {
	base
	Qualifiers []TypeQualifierKind
	Size       Expression
	Static     bool
}

func (*FixedArraySize) arraySizeNode()      {}
func (n *FixedArraySize) Accept(v Visitor) any { return v.VisitFixedArraySize(n) }

// VLAArraySize is `[*]`, the variable-length-array-of-unspecified-size
// form valid only in a function prototype's parameter list (6.7.6.2).
type VLAArraySize struct {
	base
	Qualifiers []TypeQualifierKind
}

func (*VLAArraySize) arraySizeNode()      {}
func (n *VLAArraySize) Accept(v Visitor) any { return v.VisitVLAArraySize(n) }

// ErrorArraySize stands in for an array dimension the parser could not
// recover.
type ErrorArraySize struct{ base }

func (*ErrorArraySize) arraySizeNode()      {}
func (n *ErrorArraySize) Accept(v Visitor) any { return v.VisitErrorArraySize(n) }

// ParameterTypeList is a function declarator's parameter list (6.7.6):
// plain aggregate, not a sealed family, since "variadic or not" is a
// simple flag rather than a meaningfully distinct node shape.
type ParameterTypeList struct {
	Parameters []*ParameterDeclaration
	Variadic   bool
}

// ParameterDeclaration is one entry in a parameter-type-list (6.7.6).
// At most one of Declarator/Abstract is non-nil; both are nil for a
// parameter written as a bare type, such as the `int` in `f(int)`. A
// lone `void` parameter list is represented as an empty
// ParameterTypeList instead.
type ParameterDeclaration struct {
	base
	Attributes []AttributeSpecifier
	Specifiers *DeclarationSpecifiers
	Declarator Declarator
	Abstract   AbstractDeclarator
}

func (n *ParameterDeclaration) Accept(v Visitor) any { return v.VisitParameterDeclaration(n) }

// AbstractDeclarator is the sealed family of declarators with no
// identifier (6.7.7), used in type names.
type AbstractDeclarator interface {
	Node
	abstractDeclaratorNode()
}

// AbstractParenDeclarator is a parenthesized abstract declarator.
type AbstractParenDeclarator struct {
	base
	Inner AbstractDeclarator
}

func (*AbstractParenDeclarator) abstractDeclaratorNode()      {}
func (n *AbstractParenDeclarator) Accept(v Visitor) any { return v.VisitAbstractParenDeclarator(n) }

// AbstractArrayDeclarator adds one array-of dimension; BaseDeclarator is
// nil at the innermost dimension.
type AbstractArrayDeclarator struct {
	base
	BaseDeclarator AbstractDeclarator
	Attributes     []AttributeSpecifier
	Size           ArraySize
}

func (*AbstractArrayDeclarator) abstractDeclaratorNode() {}
func (n *AbstractArrayDeclarator) Accept(v Visitor) any {
	return v.VisitAbstractArrayDeclarator(n)
}

// AbstractFunctionDeclarator adds one function-of parameter list;
// BaseDeclarator is nil at the innermost derivation.
type AbstractFunctionDeclarator struct {
	base
	BaseDeclarator AbstractDeclarator
	Attributes     []AttributeSpecifier
	Params         *ParameterTypeList
}

func (*AbstractFunctionDeclarator) abstractDeclaratorNode() {}
func (n *AbstractFunctionDeclarator) Accept(v Visitor) any {
	return v.VisitAbstractFunctionDeclarator(n)
}

// AbstractPointerDeclarator adds one pointer-to derivation; Inner is nil
// for a bare `*` with no further derivation.
type AbstractPointerDeclarator struct {
	base
	Ptr   Pointer
	Inner AbstractDeclarator
}

func (*AbstractPointerDeclarator) abstractDeclaratorNode() {}
func (n *AbstractPointerDeclarator) Accept(v Visitor) any {
	return v.VisitAbstractPointerDeclarator(n)
}

// ErrorAbstractDeclarator stands in for an abstract declarator the
// parser could not recover.
type ErrorAbstractDeclarator struct{ base }

func (*ErrorAbstractDeclarator) abstractDeclaratorNode()      {}
func (n *ErrorAbstractDeclarator) Accept(v Visitor) any { return v.VisitErrorAbstractDeclarator(n) }
