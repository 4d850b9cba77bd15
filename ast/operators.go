package ast

// UnaryOperator is the prefix operator of a UnaryExpr (6.5.3).
type UnaryOperator int

const (
	UnaryAddress UnaryOperator = iota
	UnaryDereference
	UnaryPlus
	UnaryMinus
	UnaryBitwiseNot
	UnaryLogicalNot
)

var unaryOperatorSpellings = [...]string{"&", "*", "+", "-", "~", "!"}

func (o UnaryOperator) String() string {
	if int(o) < len(unaryOperatorSpellings) {
		return unaryOperatorSpellings[o]
	}
	return "?"
}

// BinaryOperator is the infix operator of a BinaryExpr (6.5.5-6.5.14).
type BinaryOperator int

const (
	BinMultiply BinaryOperator = iota
	BinDivide
	BinModulo
	BinAdd
	BinSubtract
	BinLeftShift
	BinRightShift
	BinBitwiseAnd
	BinBitwiseXor
	BinBitwiseOr
	BinLess
	BinGreater
	BinLessEqual
	BinGreaterEqual
	BinEqual
	BinNotEqual
	BinLogicalAnd
	BinLogicalOr
)

var binaryOperatorSpellings = [...]string{
	"*", "/", "%", "+", "-", "<<", ">>", "&", "^", "|",
	"<", ">", "<=", ">=", "==", "!=", "&&", "||",
}

func (o BinaryOperator) String() string {
	if int(o) < len(binaryOperatorSpellings) {
		return binaryOperatorSpellings[o]
	}
	return "?"
}

// Precedence reports the binding strength used by the parser's
// precedence-climbing expression grammar and by the printer's
// parenthesization table; higher binds tighter.
func (o BinaryOperator) Precedence() int {
	switch o {
	case BinMultiply, BinDivide, BinModulo:
		return 10
	case BinAdd, BinSubtract:
		return 9
	case BinLeftShift, BinRightShift:
		return 8
	case BinLess, BinGreater, BinLessEqual, BinGreaterEqual:
		return 7
	case BinEqual, BinNotEqual:
		return 6
	case BinBitwiseAnd:
		return 5
	case BinBitwiseXor:
		return 4
	case BinBitwiseOr:
		return 3
	case BinLogicalAnd:
		return 2
	case BinLogicalOr:
		return 1
	default:
		return 0
	}
}

// AssignOperator is the operator of an AssignmentExpr (6.5.16).
type AssignOperator int

const (
	AssignPlain AssignOperator = iota
	AssignMul
	AssignDiv
	AssignMod
	AssignAdd
	AssignSub
	AssignLeftShift
	AssignRightShift
	AssignAnd
	AssignXor
	AssignOr
)

var assignOperatorSpellings = [...]string{
	"=", "*=", "/=", "%=", "+=", "-=", "<<=", ">>=", "&=", "^=", "|=",
}

func (o AssignOperator) String() string {
	if int(o) < len(assignOperatorSpellings) {
		return assignOperatorSpellings[o]
	}
	return "?"
}

// StorageClassKind enumerates 6.7.1 storage-class specifiers.
type StorageClassKind int

const (
	StorageAuto StorageClassKind = iota
	StorageConstexpr
	StorageExtern
	StorageRegister
	StorageStatic
	StorageThreadLocal
	StorageTypedef
)

var storageClassSpellings = [...]string{
	"auto", "constexpr", "extern", "register", "static", "thread_local", "typedef",
}

func (k StorageClassKind) String() string {
	if int(k) < len(storageClassSpellings) {
		return storageClassSpellings[k]
	}
	return "?"
}

// TypeQualifierKind enumerates 6.7.3 type qualifiers, plus the clang
// __nonnull/__nullable pointer-nullability extension the teacher's parser
// corpus (and this spec's attribute supplement) also recognizes.
type TypeQualifierKind int

const (
	QualConst TypeQualifierKind = iota
	QualRestrict
	QualVolatile
	QualAtomic
	QualNonnull
	QualNullable
	QualThreadLocal
)

var typeQualifierSpellings = [...]string{
	"const", "restrict", "volatile", "_Atomic", "_Nonnull", "_Nullable", "_Thread_local",
}

func (k TypeQualifierKind) String() string {
	if int(k) < len(typeQualifierSpellings) {
		return typeQualifierSpellings[k]
	}
	return "?"
}

// FunctionSpecifierKind enumerates 6.7.4 function specifiers.
type FunctionSpecifierKind int

const (
	FunctionInline FunctionSpecifierKind = iota
	FunctionNoreturn
)

func (k FunctionSpecifierKind) String() string {
	if k == FunctionInline {
		return "inline"
	}
	return "_Noreturn"
}

// PrimitiveKind enumerates the basic 6.7.2 type specifiers that carry no
// payload of their own.
type PrimitiveKind int

const (
	PrimitiveVoid PrimitiveKind = iota
	PrimitiveChar
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveSigned
	PrimitiveUnsigned
	PrimitiveBool
	PrimitiveComplex
	PrimitiveDecimal32
	PrimitiveDecimal64
	PrimitiveDecimal128
)

var primitiveSpellings = [...]string{
	"void", "char", "short", "int", "long", "float", "double",
	"signed", "unsigned", "bool", "_Complex", "_Decimal32", "_Decimal64", "_Decimal128",
}

func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveSpellings) {
		return primitiveSpellings[k]
	}
	return "?"
}

// StructOrUnionKind distinguishes the two 6.7.2.1 aggregate kinds.
type StructOrUnionKind int

const (
	KindStruct StructOrUnionKind = iota
	KindUnion
)

func (k StructOrUnionKind) String() string {
	if k == KindStruct {
		return "struct"
	}
	return "union"
}
