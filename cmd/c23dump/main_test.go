package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/c23fe/c23/dialect"
	"github.com/c23fe/c23/lexer"
	"github.com/c23fe/c23/parser"
)

func TestDialectProfile(t *testing.T) {
	if p, err := dialectProfile("c23"); err != nil || p != dialect.C23 {
		t.Fatalf("dialectProfile(c23) = %v, %v", p, err)
	}
	if p, err := dialectProfile(""); err != nil || p != dialect.C23 {
		t.Fatalf("dialectProfile(\"\") = %v, %v, want dialect.C23 default", p, err)
	}
	if p, err := dialectProfile("c17"); err != nil || p != dialect.C17 {
		t.Fatalf("dialectProfile(c17) = %v, %v", p, err)
	}
	if _, err := dialectProfile("c99"); err == nil {
		t.Fatal("expected an error for an unknown standard")
	}
}

func TestDumpTreeRendersNodeTypesAndSpans(t *testing.T) {
	lexed := lexer.Lex([]byte("int add(int a, int b) { return a + b; }"), lexer.Options{Filename: "t.c"})
	unit, diags := parser.ParseTranslationUnit(lexed.Tokens, parser.NewState())
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	var buf bytes.Buffer
	dumpTree(&buf, unit)
	out := buf.String()

	for _, want := range []string{"*ast.TranslationUnit", "*ast.FunctionDefinition", "*ast.BinaryExpr", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}
