package lexer

import (
	"math/big"
	"testing"

	"github.com/c23fe/c23/dialect"
	"github.com/c23fe/c23/token"
)

func tokenTexts(t *testing.T, res *Result) []string {
	t.Helper()
	out := make([]string, len(res.Tokens.Tokens))
	for i, tok := range res.Tokens.Tokens {
		out[i] = tok.Text
	}
	return out
}

func assertNoDiagnostics(t *testing.T, res *Result) {
	t.Helper()
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
}

func TestBasicTokens(t *testing.T) {
	src := `int main(void){return 0;}`

	res := Lex([]byte(src), Options{Filename: "t.c"})
	assertNoDiagnostics(t, res)

	want := []string{"int", "main", "(", "void", ")", "{", "return", "0", ";", "}"}
	got := tokenTexts(t, res)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeywordsGatedByDialect(t *testing.T) {
	src := `constexpr nullptr typeof`

	res := Lex([]byte(src), Options{Dialect: nil}) // nil -> C23
	assertNoDiagnostics(t, res)
	for _, tok := range res.Tokens.Tokens {
		if tok.Kind != token.Keyword {
			t.Fatalf("expected keyword, got %s for %q", tok.Kind, tok.Text)
		}
	}

	res17 := Lex([]byte(src), Options{Dialect: dialect.C17})
	if len(res17.Diagnostics) == 0 {
		t.Fatalf("expected feature-downgrade diagnostics under the c17 dialect")
	}
}

func TestTypedefVsExpressionLexesPlainIdentifiers(t *testing.T) {
	// The lexer never resolves typedef-vs-expression; it only ever hands
	// back plain identifier tokens and lets the parser disambiguate.
	src := `a * b;`
	res := Lex([]byte(src), Options{})
	assertNoDiagnostics(t, res)

	want := []token.Kind{token.Identifier, token.Punctuator, token.Identifier, token.Punctuator}
	if len(res.Tokens.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens.Tokens[i].Kind != k {
			t.Fatalf("token[%d].Kind = %s, want %s", i, res.Tokens.Tokens[i].Kind, k)
		}
	}
}

func TestBitIntSuffixWidth(t *testing.T) {
	// 2^128 - 1, well beyond int64/uint64 range: this is exactly why the
	// integer constant carries a *big.Int rather than a machine word.
	src := `340282366920938463463374607431768211455wb`
	res := Lex([]byte(src), Options{})
	assertNoDiagnostics(t, res)

	if len(res.Tokens.Tokens) != 1 {
		t.Fatalf("expected a single constant token, got %d", len(res.Tokens.Tokens))
	}
	ic, ok := res.Tokens.Tokens[0].Value.(*token.IntegerConstant)
	if !ok {
		t.Fatalf("expected *token.IntegerConstant, got %T", res.Tokens.Tokens[0].Value)
	}
	want := new(big.Int)
	want.SetString("340282366920938463463374607431768211455", 10)
	if ic.Value.Cmp(want) != 0 {
		t.Fatalf("value = %s, want %s", ic.Value, want)
	}
	if ic.Width != token.WidthBitInt {
		t.Fatalf("width = %v, want WidthBitInt", ic.Width)
	}
}

func TestDigitSeparators(t *testing.T) {
	src := `1'000'000`
	res := Lex([]byte(src), Options{})
	assertNoDiagnostics(t, res)

	ic := res.Tokens.Tokens[0].Value.(*token.IntegerConstant)
	if ic.Value.Int64() != 1000000 {
		t.Fatalf("value = %s, want 1000000", ic.Value)
	}
	if !ic.DigitSpacers {
		t.Fatal("expected DigitSpacers to be recorded true")
	}
}

func TestHexFloatAndExponentHazard(t *testing.T) {
	// 0x1p-10 must not split at 'p' as an identifier suffix: the exponent
	// sign after p/P in a hex constant is part of the same pp-number.
	src := `0x1p-10`
	res := Lex([]byte(src), Options{})
	assertNoDiagnostics(t, res)
	if len(res.Tokens.Tokens) != 1 {
		t.Fatalf("expected one token, got %d: %v", len(res.Tokens.Tokens), tokenTexts(t, res))
	}
	if res.Tokens.Tokens[0].Text != "0x1p-10" {
		t.Fatalf("got %q", res.Tokens.Tokens[0].Text)
	}
}

func TestUniversalCharacterNameIdentifier(t *testing.T) {
	src := "\\u00e9tude"
	res := Lex([]byte(src), Options{})
	assertNoDiagnostics(t, res)
	if len(res.Tokens.Tokens) != 1 || res.Tokens.Tokens[0].Kind != token.Identifier {
		t.Fatalf("expected one identifier token, got %v", res.Tokens.Tokens)
	}
	if res.Tokens.Tokens[0].Text != "étude" {
		t.Fatalf("decoded spelling = %q, want %q", res.Tokens.Tokens[0].Text, "étude")
	}
}

func TestEncodingPrefixVsPlainIdentifier(t *testing.T) {
	res := Lex([]byte(`u8"hi" u U L u8`), Options{})
	assertNoDiagnostics(t, res)

	if res.Tokens.Tokens[0].Kind != token.StringLiteral {
		t.Fatalf("expected u8-prefixed string, got %s", res.Tokens.Tokens[0].Kind)
	}
	if res.Tokens.Tokens[1].Kind != token.Identifier || res.Tokens.Tokens[1].Text != "u" {
		t.Fatalf("expected bare identifier \"u\", got %v", res.Tokens.Tokens[1])
	}
}

func TestEmptyInput(t *testing.T) {
	res := Lex([]byte(""), Options{})
	assertNoDiagnostics(t, res)
	if len(res.Tokens.Tokens) != 0 {
		t.Fatalf("expected no tokens, got %d", len(res.Tokens.Tokens))
	}
	if res.Tokens.Unclosed != 0 {
		t.Fatal("expected no unclosed brackets for empty input")
	}
}

func TestDeeplyNestedParensTerminates(t *testing.T) {
	depth := 2000
	src := make([]byte, 0, depth*2)
	for i := 0; i < depth; i++ {
		src = append(src, '(')
	}
	for i := 0; i < depth; i++ {
		src = append(src, ')')
	}

	res := Lex(src, Options{})
	assertNoDiagnostics(t, res)
	if len(res.Tokens.Tokens) != depth*2 {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens.Tokens), depth*2)
	}
	if res.Tokens.Unclosed != 0 {
		t.Fatalf("expected balanced sequence, got %d unclosed", res.Tokens.Unclosed)
	}
}

func TestUnclosedBracketRecoversAtEOF(t *testing.T) {
	res := Lex([]byte(`(((`), Options{})
	if len(res.Diagnostics) == 0 {
		t.Fatal("expected a diagnostic for the unclosed brackets")
	}
	if res.Tokens.Unclosed != 3 {
		t.Fatalf("Unclosed = %d, want 3", res.Tokens.Unclosed)
	}
}

func TestMismatchedCloserIsDiagnosedNotFatal(t *testing.T) {
	res := Lex([]byte(`(]`), Options{})
	if len(res.Diagnostics) == 0 {
		t.Fatal("expected a diagnostic for the mismatched closer")
	}
	// The lexer never aborts: every byte still produces a token.
	if len(res.Tokens.Tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(res.Tokens.Tokens))
	}
}

func TestUnterminatedStringRecovers(t *testing.T) {
	res := Lex([]byte("\"unterminated\nint x;"), Options{})
	if len(res.Diagnostics) == 0 {
		t.Fatal("expected an unterminated-string diagnostic")
	}
	// Lexing continues past the bad literal onto the next line.
	found := false
	for _, tok := range res.Tokens.Tokens {
		if tok.Kind == token.Identifier && tok.Text == "x" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected lexing to resume after the unterminated string")
	}
}

func TestEveryByteProducesBalancedSequence(t *testing.T) {
	inputs := []string{
		"",
		"\x00\x01\x02",
		"int x = 0x1G;",
		"'unterminated",
		"/* unterminated block comment",
		"#include <stdio.h>",
	}
	for _, src := range inputs {
		res := Lex([]byte(src), Options{})
		// Never panics, always returns a usable result with a defined
		// Unclosed count regardless of how malformed the input is.
		if res.Tokens.Unclosed < 0 {
			t.Fatalf("negative Unclosed for input %q", src)
		}
	}
}
