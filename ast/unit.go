package ast

// TranslationUnit is the root of a parsed source file (6.9): an ordered
// sequence of external declarations.
type TranslationUnit struct {
	base
	Declarations []ExternalDeclaration
}

func (n *TranslationUnit) Accept(v Visitor) any { return v.VisitTranslationUnit(n) }

// ExternalDeclaration is the sealed family of top-level items (6.9):
// a function definition, or any Declaration (NormalDecl, TypedefDecl,
// StaticAssertDecl, AttributeDecl, and ErrorDecl all satisfy this too,
// via the externalDeclNode marker declared alongside them in decl.go).
type ExternalDeclaration interface {
	Node
	externalDeclNode()
}

// FunctionDefinition is a function definition (6.9.1): specifiers, a
// declarator whose innermost direct-declarator is a function
// declarator, and a compound-statement body. K&R-style old-style
// parameter declarations between the parameter list and the body are
// not modeled — the parser always produces a C23 prototype-form
// declarator, converting any K&R parameter list it accepts as an
// extension into one. A K&R parameter name that the declaration list
// does not declare keeps nil Specifiers.
type FunctionDefinition struct {
	base
	Attributes []AttributeSpecifier
	Specifiers *DeclarationSpecifiers
	Declarator Declarator
	Body       *CompoundStatement
}

func (*FunctionDefinition) externalDeclNode()      {}
func (n *FunctionDefinition) Accept(v Visitor) any { return v.VisitFunctionDefinition(n) }
