package ast

import "github.com/c23fe/c23/token"

// Expression is the sealed family of all C expression forms (6.5),
// flattening the grammar's PrimaryExpression/PostfixExpression/
// UnaryExpression/CastExpression layering into one interface (see the
// package doc comment).
type Expression interface {
	Node
	exprNode()
}

// IdentifierExpr is an identifier used as a primary expression (6.5.1).
// Role records how the parser's scope stack resolved the name at the
// point of use: the parser always sets Variable or Enumerator, never
// Unresolved.
type IdentifierExpr struct {
	base
	Name string
	Role token.Role
}

func (*IdentifierExpr) exprNode()            {}
func (n *IdentifierExpr) Accept(v Visitor) any { return v.VisitIdentifierExpr(n) }

// ConstantExpr wraps a lexed constant (6.4.4) used as an expression.
type ConstantExpr struct {
	base
	Value token.ConstantValue
}

func (*ConstantExpr) exprNode()            {}
func (n *ConstantExpr) Accept(v Visitor) any { return v.VisitConstantExpr(n) }

// StringLiteralExpr is a (possibly concatenated) string literal (6.4.5).
type StringLiteralExpr struct {
	base
	Value *token.StringLiterals
}

func (*StringLiteralExpr) exprNode()            {}
func (n *StringLiteralExpr) Accept(v Visitor) any { return v.VisitStringLiteralExpr(n) }

// ParenExpr is a parenthesized expression (6.5.1); kept as its own node
// (rather than discarded during parsing) so the printer can decide
// whether the parentheses are still needed after re-emission.
type ParenExpr struct {
	base
	X Expression
}

func (*ParenExpr) exprNode()            {}
func (n *ParenExpr) Accept(v Visitor) any { return v.VisitParenExpr(n) }

// GenericSelectionExpr is a _Generic selection (6.5.1.1).
type GenericSelectionExpr struct {
	base
	Controlling  Expression
	Associations []GenericAssociation
}

func (*GenericSelectionExpr) exprNode()            {}
func (n *GenericSelectionExpr) Accept(v Visitor) any { return v.VisitGenericSelectionExpr(n) }

// GenericAssociation is the sealed family of _Generic association forms.
type GenericAssociation interface {
	Node
	genericAssocNode()
}

// TypeAssociation associates a type name with an expression.
type TypeAssociation struct {
	base
	Type TypeName
	Expr Expression
}

func (*TypeAssociation) genericAssocNode()      {}
func (n *TypeAssociation) Accept(v Visitor) any { return v.VisitTypeAssociation(n) }

// DefaultAssociation is the `default:` association.
type DefaultAssociation struct {
	base
	Expr Expression
}

func (*DefaultAssociation) genericAssocNode()      {}
func (n *DefaultAssociation) Accept(v Visitor) any { return v.VisitDefaultAssociation(n) }

// ArrayAccessExpr is `array[index]` (6.5.2.1).
type ArrayAccessExpr struct {
	base
	Array Expression
	Index Expression
}

func (*ArrayAccessExpr) exprNode()            {}
func (n *ArrayAccessExpr) Accept(v Visitor) any { return v.VisitArrayAccessExpr(n) }

// CallExpr is a function call (6.5.2.2).
type CallExpr struct {
	base
	Func Expression
	Args []Expression
}

func (*CallExpr) exprNode()            {}
func (n *CallExpr) Accept(v Visitor) any { return v.VisitCallExpr(n) }

// MemberAccessExpr is `object.member` or, when Arrow is set,
// `object->member` (6.5.2.3).
type MemberAccessExpr struct {
	base
	Object Expression
	Member string
	Arrow  bool
}

func (*MemberAccessExpr) exprNode()            {}
func (n *MemberAccessExpr) Accept(v Visitor) any { return v.VisitMemberAccessExpr(n) }

// IncDecExpr is `++x`/`--x` or `x++`/`x--` (6.5.2.4, 6.5.3.1), unified
// into one node distinguished by Prefix/Decrement rather than four
// near-identical single-field wrapper types.
type IncDecExpr struct {
	base
	Operand   Expression
	Prefix    bool
	Decrement bool
}

func (*IncDecExpr) exprNode()            {}
func (n *IncDecExpr) Accept(v Visitor) any { return v.VisitIncDecExpr(n) }

// CompoundLiteralExpr is a compound literal (6.5.2.5): `(T){...}`,
// a feature the distilled spec omitted and this module's expansion
// restores from original_source/src/ast.rs's CompoundLiteral.
type CompoundLiteralExpr struct {
	base
	StorageClasses []StorageClassKind
	Type           TypeName
	Init           *BracedInitializerNode
}

func (*CompoundLiteralExpr) exprNode()            {}
func (n *CompoundLiteralExpr) Accept(v Visitor) any { return v.VisitCompoundLiteralExpr(n) }

// UnaryExpr is `&x`, `*x`, `+x`, `-x`, `~x`, or `!x` (6.5.3).
type UnaryExpr struct {
	base
	Op      UnaryOperator
	Operand Expression
}

func (*UnaryExpr) exprNode()            {}
func (n *UnaryExpr) Accept(v Visitor) any { return v.VisitUnaryExpr(n) }

// SizeofExpr is `sizeof expr` (6.5.3.4).
type SizeofExpr struct {
	base
	Operand Expression
}

func (*SizeofExpr) exprNode()            {}
func (n *SizeofExpr) Accept(v Visitor) any { return v.VisitSizeofExpr(n) }

// SizeofTypeExpr is `sizeof(type-name)` (6.5.3.4).
type SizeofTypeExpr struct {
	base
	Type TypeName
}

func (*SizeofTypeExpr) exprNode()            {}
func (n *SizeofTypeExpr) Accept(v Visitor) any { return v.VisitSizeofTypeExpr(n) }

// AlignofExpr is `alignof(type-name)`/`_Alignof(type-name)` (6.7.5),
// restored from original_source as part of the _Alignas/alignof
// supplement.
type AlignofExpr struct {
	base
	Type TypeName
}

func (*AlignofExpr) exprNode()            {}
func (n *AlignofExpr) Accept(v Visitor) any { return v.VisitAlignofExpr(n) }

// CastExpr is `(type-name)expr` (6.5.4).
type CastExpr struct {
	base
	Type    TypeName
	Operand Expression
}

func (*CastExpr) exprNode()            {}
func (n *CastExpr) Accept(v Visitor) any { return v.VisitCastExpr(n) }

// BinaryExpr is a left-associative binary operation (6.5.5-6.5.14).
type BinaryExpr struct {
	base
	Left  Expression
	Op    BinaryOperator
	Right Expression
}

func (*BinaryExpr) exprNode()            {}
func (n *BinaryExpr) Accept(v Visitor) any { return v.VisitBinaryExpr(n) }

// ConditionalExpr is the ternary `cond ? then : els` (6.5.15).
type ConditionalExpr struct {
	base
	Cond Expression
	Then Expression
	Else Expression
}

func (*ConditionalExpr) exprNode()            {}
func (n *ConditionalExpr) Accept(v Visitor) any { return v.VisitConditionalExpr(n) }

// AssignmentExpr is `left op right` for any of the 6.5.16 assignment
// operators.
type AssignmentExpr struct {
	base
	Left  Expression
	Op    AssignOperator
	Right Expression
}

func (*AssignmentExpr) exprNode()            {}
func (n *AssignmentExpr) Accept(v Visitor) any { return v.VisitAssignmentExpr(n) }

// CommaExpr is the comma operator (6.5.17): `e1, e2, ..., en`.
type CommaExpr struct {
	base
	Exprs []Expression
}

func (*CommaExpr) exprNode()            {}
func (n *CommaExpr) Accept(v Visitor) any { return v.VisitCommaExpr(n) }

// ErrorExpr is a placeholder standing in for an expression the parser
// could not recover into any concrete form (spec's never-fail policy).
type ErrorExpr struct{ base }

func (*ErrorExpr) exprNode()            {}
func (n *ErrorExpr) Accept(v Visitor) any { return v.VisitErrorExpr(n) }
