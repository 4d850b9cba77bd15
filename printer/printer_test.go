package printer_test

import (
	"testing"

	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/lexer"
	"github.com/c23fe/c23/parser"
	"github.com/c23fe/c23/printer"
	"github.com/c23fe/c23/token"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	res := lexer.Lex([]byte(src), lexer.Options{Filename: "t.c"})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected lexer diagnostics for %q: %v", src, res.Diagnostics)
	}
	expr, diags := parser.ParseExpression(res.Tokens, parser.NewState())
	if len(diags) != 0 {
		t.Fatalf("unexpected parser diagnostics for %q: %v", src, diags)
	}
	return expr
}

func TestPrintIdentifierAndConstant(t *testing.T) {
	if got, want := printer.Print(&ast.IdentifierExpr{Name: "x"}), "x"; got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

// TestPrintBinaryLeftAssociativeNeedsNoParens confirms that re-printing
// a left-associative chain parsed in the natural left-to-right grouping
// never inserts parentheses, since the grouping is already the one a
// reader (and the parser, re-reading the output) would assume.
func TestPrintBinaryLeftAssociativeNeedsNoParens(t *testing.T) {
	expr := parseExpr(t, "a - b - c")
	got := printer.Print(expr)
	want := "a - b - c"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

// TestPrintBinaryRightOperandNeedsParens exercises the associativity
// flag: `a - (b - c)` groups its right operand against the grain of
// left-associative subtraction, so the printer must re-insert the
// parentheses it was parsed from or the meaning would change.
func TestPrintBinaryRightOperandNeedsParens(t *testing.T) {
	expr := parseExpr(t, "a - (b - c)")
	got := printer.Print(expr)
	want := "a - (b - c)"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintMultiplyBindsTighterThanAdd(t *testing.T) {
	expr := parseExpr(t, "a + b * c")
	got := printer.Print(expr)
	want := "a + b * c"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintParensRestoredWhenAdditionInsideMultiplication(t *testing.T) {
	expr := parseExpr(t, "(a + b) * c")
	got := printer.Print(expr)
	want := "(a + b) * c"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

// TestPrintUnaryOfUnaryNeedsNoParensButNeedsASpace confirms that a
// double-negation prints without parentheses (precedence never requires
// them here) but with a separating space, since "--a" would re-lex as a
// decrement rather than two negations.
func TestPrintUnaryOfUnaryNeedsNoParensButNeedsASpace(t *testing.T) {
	expr := parseExpr(t, "-  -a")
	got := printer.Print(expr)
	want := "- -a"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintCallExpr(t *testing.T) {
	expr := parseExpr(t, "f(a, b + c)")
	got := printer.Print(expr)
	want := "f(a, b + c)"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintAssignmentIsRightAssociative(t *testing.T) {
	expr := parseExpr(t, "a = b = c")
	got := printer.Print(expr)
	want := "a = b = c"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintConditionalExpr(t *testing.T) {
	expr := parseExpr(t, "a ? b : c ? d : e")
	got := printer.Print(expr)
	want := "a ? b : c ? d : e"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

func TestPrintStringLiteralEscapesSpecialCharacters(t *testing.T) {
	lit := &ast.StringLiteralExpr{Value: &token.StringLiterals{
		Fragments: []token.StringFragment{{Decoded: "a\n\"b\""}},
	}}
	got := printer.Print(lit)
	want := `"a\n\"b\""`
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}

// TestPrintFunctionDefinitionRoundTrips drives the full translation-unit
// path (declarators, compound statements, control flow) rather than
// just expressions.
func TestPrintFunctionDefinitionRoundTrips(t *testing.T) {
	src := "int max(int a, int b) {\n    if (a > b) {\n        return a;\n    }\n    return b;\n}\n"
	res := lexer.Lex([]byte(src), lexer.Options{Filename: "t.c"})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected lexer diagnostics: %v", res.Diagnostics)
	}
	unit, diags := parser.ParseTranslationUnit(res.Tokens, parser.NewState())
	if len(diags) != 0 {
		t.Fatalf("unexpected parser diagnostics: %v", diags)
	}

	printed := printer.Print(unit)

	res2 := lexer.Lex([]byte(printed), lexer.Options{Filename: "roundtrip.c"})
	if len(res2.Diagnostics) != 0 {
		t.Fatalf("printed output relexes with diagnostics: %v\noutput:\n%s", res2.Diagnostics, printed)
	}
	unit2, diags2 := parser.ParseTranslationUnit(res2.Tokens, parser.NewState())
	if len(diags2) != 0 {
		t.Fatalf("printed output reparses with diagnostics: %v\noutput:\n%s", diags2, printed)
	}

	fn, ok := unit2.Declarations[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("want a function definition after round-trip, got %T", unit2.Declarations[0])
	}
	name, _ := ast.DeclaratorName(fn.Declarator)
	if name != "max" {
		t.Fatalf("want the round-tripped function named %q, got %q", "max", name)
	}
	if len(fn.Body.Items) != 2 {
		t.Fatalf("want 2 block items after round-trip, got %d", len(fn.Body.Items))
	}
}

func TestPrintTypedefDecl(t *testing.T) {
	res := lexer.Lex([]byte("typedef unsigned long size_type;"), lexer.Options{Filename: "t.c"})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected lexer diagnostics: %v", res.Diagnostics)
	}
	unit, diags := parser.ParseTranslationUnit(res.Tokens, parser.NewState())
	if len(diags) != 0 {
		t.Fatalf("unexpected parser diagnostics: %v", diags)
	}
	got := printer.Print(unit.Declarations[0])
	want := "typedef unsigned long size_type;"
	if got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}
