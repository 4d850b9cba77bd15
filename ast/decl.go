package ast

import "github.com/c23fe/c23/token"

// Declaration is the sealed family of declaration forms (6.7).
type Declaration interface {
	Node
	declNode()
	externalDeclNode() // a Declaration is always also usable as a top-level ExternalDeclaration
}

// NormalDecl is an ordinary (non-typedef) declaration: `specifiers
// declarators;`.
type NormalDecl struct {
	base
	Attributes  []AttributeSpecifier
	Specifiers  *DeclarationSpecifiers
	Declarators []*InitDeclarator
}

func (*NormalDecl) declNode()            {}
func (*NormalDecl) externalDeclNode()      {}
func (n *NormalDecl) Accept(v Visitor) any { return v.VisitNormalDecl(n) }

// TypedefDecl is a `typedef specifiers declarators;` declaration. Every
// name it declares must be inserted into the active scope's typedef
// namespace before the declarators that follow it in the same
// translation unit are parsed — the eager-insertion timing spec.md calls
// out as an observable behavior, not an implementation detail.
type TypedefDecl struct {
	base
	Attributes  []AttributeSpecifier
	Specifiers  *DeclarationSpecifiers
	Declarators []Declarator
}

func (*TypedefDecl) declNode()            {}
func (*TypedefDecl) externalDeclNode()      {}
func (n *TypedefDecl) Accept(v Visitor) any { return v.VisitTypedefDecl(n) }

// StaticAssertDecl is a `_Static_assert`/`static_assert` declaration
// (6.7.11). Message is nil under the C23 single-argument form.
type StaticAssertDecl struct {
	base
	Condition Expression
	Message   *token.StringLiterals
}

func (*StaticAssertDecl) declNode()            {}
func (*StaticAssertDecl) externalDeclNode()      {}
func (n *StaticAssertDecl) Accept(v Visitor) any { return v.VisitStaticAssertDecl(n) }

// AttributeDecl is a standalone attribute-declaration: `[[...]];`
// (6.7.12.1), with no other declarator.
type AttributeDecl struct {
	base
	Attributes []AttributeSpecifier
}

func (*AttributeDecl) declNode()            {}
func (*AttributeDecl) externalDeclNode()      {}
func (n *AttributeDecl) Accept(v Visitor) any { return v.VisitAttributeDecl(n) }

// ErrorDecl stands in for a declaration the parser could not recover.
type ErrorDecl struct{ base }

func (*ErrorDecl) declNode()            {}
func (*ErrorDecl) externalDeclNode()      {}
func (n *ErrorDecl) Accept(v Visitor) any { return v.VisitErrorDecl(n) }

// InitDeclarator pairs a declarator with its optional initializer.
type InitDeclarator struct {
	base
	Declarator  Declarator
	Initializer Initializer // nil if absent
}

func (n *InitDeclarator) Accept(v Visitor) any { return v.VisitInitDeclarator(n) }

// Initializer is the sealed family of initializer forms (6.7.10).
type Initializer interface {
	Node
	initializerNode()
}

// ExprInitializer is a plain `= expr` initializer.
type ExprInitializer struct {
	base
	Expr Expression
}

func (*ExprInitializer) initializerNode()      {}
func (n *ExprInitializer) Accept(v Visitor) any { return v.VisitExprInitializer(n) }

// BracedInitializerNode is a `= { ... }` initializer list.
type BracedInitializerNode struct {
	base
	Items []*DesignatedInitializerNode
}

func (*BracedInitializerNode) initializerNode()      {}
func (n *BracedInitializerNode) Accept(v Visitor) any { return v.VisitBracedInitializerNode(n) }

// DesignatedInitializerNode is one element of a braced initializer list,
// optionally preceded by one or more designators. The grammar's
// recursive Designation chain (each designator nested inside the next)
// is flattened here to a slice in source order, which is both simpler to
// walk and exactly as expressive.
type DesignatedInitializerNode struct {
	base
	Designators []Designator
	Init        Initializer
}

func (n *DesignatedInitializerNode) Accept(v Visitor) any {
	return v.VisitDesignatedInitializerNode(n)
}

// Designator is the sealed family of designator forms (6.7.10).
type Designator interface {
	Node
	designatorNode()
}

// ArrayDesignator is `[constant-expression]`.
type ArrayDesignator struct {
	base
	Index Expression
}

func (*ArrayDesignator) designatorNode()      {}
func (n *ArrayDesignator) Accept(v Visitor) any { return v.VisitArrayDesignator(n) }

// RangeDesignator is the non-standard GNU range-designator extension
// `[low ... high]`, accepted with a warning diagnostic per this module's
// expanded scope (spec §9 open-question resolution).
type RangeDesignator struct {
	base
	Low  Expression
	High Expression
}

func (*RangeDesignator) designatorNode()      {}
func (n *RangeDesignator) Accept(v Visitor) any { return v.VisitRangeDesignator(n) }

// MemberDesignator is `.identifier`.
type MemberDesignator struct {
	base
	Name string
}

func (*MemberDesignator) designatorNode()      {}
func (n *MemberDesignator) Accept(v Visitor) any { return v.VisitMemberDesignator(n) }

// AttributeSpecifier is the sealed family of attribute-specifier forms
// (6.7.12.1): a standard `[[...]]` list, or the vendor `asm(...)`
// specifier.
type AttributeSpecifier interface {
	Node
	attrSpecNode()
}

// AttributeList is a standard `[[attr, attr(args), ...]]` specifier.
type AttributeList struct {
	base
	Attributes []*Attribute
}

func (*AttributeList) attrSpecNode()      {}
func (n *AttributeList) Accept(v Visitor) any { return v.VisitAttributeList(n) }

// AsmAttribute is the vendor `asm("...")`/`__asm__("...")`
// attribute-position specifier.
type AsmAttribute struct {
	base
	Literal *token.StringLiterals
}

func (*AsmAttribute) attrSpecNode()      {}
func (n *AsmAttribute) Accept(v Visitor) any { return v.VisitAsmAttribute(n) }

// ErrorAttributeSpecifier stands in for an attribute specifier the
// parser could not recover.
type ErrorAttributeSpecifier struct{ base }

func (*ErrorAttributeSpecifier) attrSpecNode()      {}
func (n *ErrorAttributeSpecifier) Accept(v Visitor) any { return v.VisitErrorAttributeSpecifier(n) }

// AttributeToken names an attribute, with Prefix set for the
// `prefix::name` scoped-attribute form (6.7.12.1); empty otherwise.
type AttributeToken struct {
	Prefix string
	Name   string
}

// Attribute is one `name` or `name(args)` entry inside an AttributeList.
// Args is nil for an attribute taking no argument clause.
type Attribute struct {
	base
	Name AttributeToken
	Args *token.BalancedTokenSequence
}

func (n *Attribute) Accept(v Visitor) any { return v.VisitAttribute(n) }
