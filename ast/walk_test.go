package ast_test

import (
	"strings"
	"testing"

	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/lexer"
	"github.com/c23fe/c23/parser"
)

func parseUnit(t *testing.T, src string) *ast.TranslationUnit {
	t.Helper()
	res := lexer.Lex([]byte(src), lexer.Options{Filename: "t.c"})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected lexer diagnostics for %q: %v", src, res.Diagnostics)
	}
	unit, diags := parser.ParseTranslationUnit(res.Tokens, parser.NewState())
	if len(diags) != 0 {
		t.Fatalf("unexpected parser diagnostics for %q: %v", src, diags)
	}
	return unit
}

// countingVisitor embeds BaseVisitor (every method nil) and overrides just
// the two node kinds this test cares about, the pattern the package doc
// recommends for a Visitor that only cares about a handful of kinds.
type countingVisitor struct {
	ast.BaseVisitor
	identifiers int
	binaries    int
	names       []string
}

func (c *countingVisitor) VisitIdentifierExpr(n *ast.IdentifierExpr) any {
	c.identifiers++
	c.names = append(c.names, n.Name)
	return nil
}

func (c *countingVisitor) VisitBinaryExpr(n *ast.BinaryExpr) any {
	c.binaries++
	return nil
}

func TestWalkVisitsEveryNodeInSourceOrder(t *testing.T) {
	unit := parseUnit(t, "int f(void) { return a + b * c; }")

	cv := &countingVisitor{}
	ast.Walk(cv, unit)

	if cv.identifiers != 3 {
		t.Fatalf("want 3 identifier references (a, b, c), got %d", cv.identifiers)
	}
	if cv.binaries != 2 {
		t.Fatalf("want 2 binary expressions (+ and *), got %d", cv.binaries)
	}
	if got := strings.Join(cv.names, ","); got != "a,b,c" {
		t.Fatalf("want identifiers visited in source order a,b,c, got %s", got)
	}
}

func TestWalkNilNodeIsNoop(t *testing.T) {
	cv := &countingVisitor{}
	if got := ast.Walk(cv, nil); got != nil {
		t.Fatalf("want nil result walking a nil node, got %v", got)
	}
	if cv.identifiers != 0 || cv.binaries != 0 {
		t.Fatalf("want no visits from a nil walk")
	}
}

func TestWalkReturnsRootVisitResult(t *testing.T) {
	ident := &ast.IdentifierExpr{Name: "probe"}

	v := &identReturningVisitor{}
	got := ast.Walk(v, ident)
	if got != "probe" {
		t.Fatalf("want Walk to return the root Accept's result, got %v", got)
	}
}

type identReturningVisitor struct{ ast.BaseVisitor }

func (identReturningVisitor) VisitIdentifierExpr(n *ast.IdentifierExpr) any { return n.Name }

// TestWalkMutableRewritesBottomUp renames every identifier called "old" to
// "new", confirming WalkMutable descends into children before calling
// Mutate on the parent and that the in-place replacement is visible to the
// caller through the original root reference.
type renameMutator struct{ from, to string }

func (m renameMutator) Mutate(n ast.Node) ast.Node {
	if id, ok := n.(*ast.IdentifierExpr); ok && id.Name == m.from {
		id.Name = m.to
	}
	return n
}

func TestWalkMutableRewritesBottomUp(t *testing.T) {
	unit := parseUnit(t, "int f(void) { return old + old; }")

	rewritten := ast.WalkMutable(unit, renameMutator{from: "old", to: "new"})

	fn := rewritten.(*ast.TranslationUnit).Declarations[0].(*ast.FunctionDefinition)
	ret := fn.Body.Items[0].(*ast.StmtItem).Stmt.(*ast.ReturnStmt)
	bin := ret.Expr.(*ast.BinaryExpr)

	left := bin.Left.(*ast.IdentifierExpr)
	right := bin.Right.(*ast.IdentifierExpr)
	if left.Name != "new" || right.Name != "new" {
		t.Fatalf("want both operands renamed to new, got %q and %q", left.Name, right.Name)
	}
}

// TestWalkMutableCanReplaceWholeSubtree confirms a MutableVisitor may swap
// in an entirely different node, not just mutate fields in place — the
// contract WalkMutable's doc comment promises ("possibly replaced node").
type zeroingMutator struct{}

func (zeroingMutator) Mutate(n ast.Node) ast.Node {
	if bin, ok := n.(*ast.BinaryExpr); ok {
		return &ast.IdentifierExpr{Name: "folded", Role: bin.Left.(*ast.IdentifierExpr).Role}
	}
	return n
}

func TestWalkMutableCanReplaceWholeSubtree(t *testing.T) {
	unit := parseUnit(t, "int f(void) { return a + b; }")

	rewritten := ast.WalkMutable(unit, zeroingMutator{})

	fn := rewritten.(*ast.TranslationUnit).Declarations[0].(*ast.FunctionDefinition)
	ret := fn.Body.Items[0].(*ast.StmtItem).Stmt.(*ast.ReturnStmt)
	ident, ok := ret.Expr.(*ast.IdentifierExpr)
	if !ok {
		t.Fatalf("want the binary expression replaced with an identifier, got %T", ret.Expr)
	}
	if ident.Name != "folded" {
		t.Fatalf("want replacement identifier named folded, got %q", ident.Name)
	}
}

func TestAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	n := &ast.BinaryExpr{
		Left:  &ast.IdentifierExpr{Name: "a"},
		Op:    ast.BinAdd,
		Right: &ast.IdentifierExpr{Name: "b"},
	}

	called := false
	v := &dispatchProbe{onBinary: func(*ast.BinaryExpr) { called = true }}
	n.Accept(v)

	if !called {
		t.Fatalf("want Accept to dispatch to VisitBinaryExpr")
	}
}

type dispatchProbe struct {
	ast.BaseVisitor
	onBinary func(*ast.BinaryExpr)
}

func (p *dispatchProbe) VisitBinaryExpr(n *ast.BinaryExpr) any {
	p.onBinary(n)
	return nil
}

func TestDeclaratorNameUnwrapsDerivations(t *testing.T) {
	unit := parseUnit(t, "int *p;")
	normal := unit.Declarations[0].(*ast.NormalDecl)
	name, ok := ast.DeclaratorName(normal.Declarators[0].Declarator)
	if !ok || name != "p" {
		t.Fatalf("want name p through a pointer declarator, got %q (ok=%v)", name, ok)
	}
}

func TestSetSpanIsPromotedFromBase(t *testing.T) {
	unit := parseUnit(t, "int x;")
	if !unit.Span().IsValid() {
		t.Fatalf("want ParseTranslationUnit to stamp a valid span on the root node")
	}

	ident := &ast.IdentifierExpr{Name: "y"}
	ident.SetSpan(unit.Span())
	if ident.Span() != unit.Span() {
		t.Fatalf("want SetSpan to update the span returned by Span()")
	}
}
