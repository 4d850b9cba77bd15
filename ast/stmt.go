package ast

// Statement is the sealed family of statement forms (6.8), flattening
// the grammar's Statement/UnlabeledStatement/PrimaryBlock layering into
// one interface (see the package doc comment).
type Statement interface {
	Node
	stmtNode()
}

// LabeledStmt is `label: statement` (6.8.1).
type LabeledStmt struct {
	base
	Label Label
	Stmt  Statement
}

func (*LabeledStmt) stmtNode()            {}
func (n *LabeledStmt) Accept(v Visitor) any { return v.VisitLabeledStmt(n) }

// Label is the sealed family of label forms (6.8.1).
type Label interface {
	Node
	labelNode()
}

// IdentifierLabel is a `name:` goto target.
type IdentifierLabel struct {
	base
	Name       string
	Attributes []AttributeSpecifier
}

func (*IdentifierLabel) labelNode()            {}
func (n *IdentifierLabel) Accept(v Visitor) any { return v.VisitIdentifierLabel(n) }

// CaseLabel is `case constant-expression:`.
type CaseLabel struct {
	base
	Expr       Expression
	Attributes []AttributeSpecifier
}

func (*CaseLabel) labelNode()            {}
func (n *CaseLabel) Accept(v Visitor) any { return v.VisitCaseLabel(n) }

// DefaultLabel is `default:`.
type DefaultLabel struct {
	base
	Attributes []AttributeSpecifier
}

func (*DefaultLabel) labelNode()            {}
func (n *DefaultLabel) Accept(v Visitor) any { return v.VisitDefaultLabel(n) }

// ExpressionStmt is an expression statement (6.8.3); Expr is nil for the
// empty statement `;`.
type ExpressionStmt struct {
	base
	Attributes []AttributeSpecifier
	Expr       Expression
}

func (*ExpressionStmt) stmtNode()            {}
func (n *ExpressionStmt) Accept(v Visitor) any { return v.VisitExpressionStmt(n) }

// CompoundStatement is `{ block-item* }` (6.8.2).
type CompoundStatement struct {
	base
	Items []BlockItem
}

func (*CompoundStatement) stmtNode()            {}
func (n *CompoundStatement) Accept(v Visitor) any { return v.VisitCompoundStatement(n) }

// BlockItem is the sealed family of entries inside a compound statement
// (6.8.2): a declaration, a statement, or — the C23 addition — a label
// with no following statement, valid only immediately before the closing
// brace.
type BlockItem interface {
	Node
	blockItemNode()
}

// DeclItem wraps a declaration occurring as a block item.
type DeclItem struct {
	base
	Decl Declaration
}

func (*DeclItem) blockItemNode()      {}
func (n *DeclItem) Accept(v Visitor) any { return v.VisitDeclItem(n) }

// StmtItem wraps a statement occurring as a block item.
type StmtItem struct {
	base
	Stmt Statement
}

func (*StmtItem) blockItemNode()      {}
func (n *StmtItem) Accept(v Visitor) any { return v.VisitStmtItem(n) }

// LabelItem is a label with no following statement, the C23 extension
// permitting `{ ... label: }`.
type LabelItem struct {
	base
	Label Label
}

func (*LabelItem) blockItemNode()      {}
func (n *LabelItem) Accept(v Visitor) any { return v.VisitLabelItem(n) }

// IfStmt is `if (cond) then [else else]` (6.8.4). Else is nil when
// absent.
type IfStmt struct {
	base
	Cond Expression
	Then Statement
	Else Statement
}

func (*IfStmt) stmtNode()            {}
func (n *IfStmt) Accept(v Visitor) any { return v.VisitIfStmt(n) }

// SwitchStmt is `switch (expr) body` (6.8.4).
type SwitchStmt struct {
	base
	Expr Expression
	Body Statement
}

func (*SwitchStmt) stmtNode()            {}
func (n *SwitchStmt) Accept(v Visitor) any { return v.VisitSwitchStmt(n) }

// WhileStmt is `while (cond) body` (6.8.5).
type WhileStmt struct {
	base
	Cond Expression
	Body Statement
}

func (*WhileStmt) stmtNode()            {}
func (n *WhileStmt) Accept(v Visitor) any { return v.VisitWhileStmt(n) }

// DoWhileStmt is `do body while (cond);` (6.8.5).
type DoWhileStmt struct {
	base
	Body Statement
	Cond Expression
}

func (*DoWhileStmt) stmtNode()            {}
func (n *DoWhileStmt) Accept(v Visitor) any { return v.VisitDoWhileStmt(n) }

// ForStmt is `for (init; cond; update) body` (6.8.5). Init, Cond, and
// Update are each nil when the corresponding clause is empty.
type ForStmt struct {
	base
	Init   ForInit
	Cond   Expression
	Update Expression
	Body   Statement
}

func (*ForStmt) stmtNode()            {}
func (n *ForStmt) Accept(v Visitor) any { return v.VisitForStmt(n) }

// ForInit is the sealed family of a for-loop's init-clause forms
// (6.8.5).
type ForInit interface {
	Node
	forInitNode()
}

// ExprForInit is a for-loop init clause given as an expression.
type ExprForInit struct {
	base
	Expr Expression
}

func (*ExprForInit) forInitNode()      {}
func (n *ExprForInit) Accept(v Visitor) any { return v.VisitExprForInit(n) }

// DeclForInit is a for-loop init clause given as a declaration
// (`for (int i = 0; ...)`), valid since C99.
type DeclForInit struct {
	base
	Decl Declaration
}

func (*DeclForInit) forInitNode()      {}
func (n *DeclForInit) Accept(v Visitor) any { return v.VisitDeclForInit(n) }

// GotoStmt is `goto label;` (6.8.6.1).
type GotoStmt struct {
	base
	Label string
}

func (*GotoStmt) stmtNode()            {}
func (n *GotoStmt) Accept(v Visitor) any { return v.VisitGotoStmt(n) }

// ContinueStmt is `continue;` (6.8.6.2).
type ContinueStmt struct{ base }

func (*ContinueStmt) stmtNode()            {}
func (n *ContinueStmt) Accept(v Visitor) any { return v.VisitContinueStmt(n) }

// BreakStmt is `break;` (6.8.6.3).
type BreakStmt struct{ base }

func (*BreakStmt) stmtNode()            {}
func (n *BreakStmt) Accept(v Visitor) any { return v.VisitBreakStmt(n) }

// ReturnStmt is `return [expr];` (6.8.6.4); Expr is nil for a bare
// `return;`.
type ReturnStmt struct {
	base
	Expr Expression
}

func (*ReturnStmt) stmtNode()            {}
func (n *ReturnStmt) Accept(v Visitor) any { return v.VisitReturnStmt(n) }

// ErrorStmt stands in for a statement the parser could not recover.
type ErrorStmt struct{ base }

func (*ErrorStmt) stmtNode()            {}
func (n *ErrorStmt) Accept(v Visitor) any { return v.VisitErrorStmt(n) }

// TryStmt is the vendor `try { ... } catch (...) { ... }` extension
// (MSVC/clang structured-exception-style syntax some embedded C dialects
// accept), gated behind Options.AcceptVendorExtensions like
// __attribute__ and __declspec.
type TryStmt struct {
	base
	Body    *CompoundStatement
	Catches []*CatchClause
}

func (*TryStmt) stmtNode()            {}
func (n *TryStmt) Accept(v Visitor) any { return v.VisitTryStmt(n) }

// CatchClause is one `catch (param) { ... }` or `catch (...) { ... }`
// clause of a TryStmt; Param is nil for the catch-all `catch (...)` form.
type CatchClause struct {
	base
	Param *ParameterDeclaration
	Body  *CompoundStatement
}

func (n *CatchClause) Accept(v Visitor) any { return v.VisitCatchClause(n) }

// ThrowStmt is the vendor `throw expr;`/`throw;` extension paired with
// TryStmt; Expr is nil for a bare re-throw.
type ThrowStmt struct {
	base
	Expr Expression
}

func (*ThrowStmt) stmtNode()            {}
func (n *ThrowStmt) Accept(v Visitor) any { return v.VisitThrowStmt(n) }
