// Package parser turns a balanced C23 token sequence into a translation-unit
// AST, resolving the typedef/expression ambiguity, the abstract/concrete
// declarator ambiguity, and the statement-start declaration/expression
// ambiguity against a caller-supplied State as it goes.
package parser

import (
	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/diag"
	"github.com/c23fe/c23/span"
	"github.com/c23fe/c23/token"
)

// parser is the recursive-descent cursor over a filtered token sequence.
// It never panics on malformed input: every parse* method either returns
// a well-formed fragment or records a diagnostic and returns a
// placeholder/error node with a span over the tokens it skipped (spec
// §4.D "failure semantics").
type parser struct {
	toks  token.Sequence
	pos   int
	file  span.FileID
	end   span.Span // span of one-past-the-last real token, for EOF diagnostics
	state *State
}

func newParser(seq token.BalancedTokenSequence, state *State) *parser {
	filtered := make(token.Sequence, 0, len(seq.Tokens))
	for _, t := range seq.Tokens {
		if t.Kind == token.Whitespace || t.Kind == token.Comment {
			continue
		}
		filtered = append(filtered, t)
	}

	p := &parser{toks: filtered, state: state}
	if len(filtered) > 0 {
		p.file = filtered[len(filtered)-1].Span.File
		p.end = span.Span{File: p.file, Start: filtered[len(filtered)-1].Span.End, End: filtered[len(filtered)-1].Span.End}
	}
	return p
}

// spanner is satisfied by every *ast.XxxNode pointer via its promoted
// SetSpan method.
type spanner interface{ SetSpan(span.Span) }

// finish stamps n's span and returns it, letting every parse* method
// build a node with a plain struct literal and attach its span in one
// expression: `return finish(&ast.Foo{...}, p.spanFrom(start))`.
func finish[T spanner](n T, sp span.Span) T {
	n.SetSpan(sp)
	return n
}

// eofToken is returned once the cursor runs past the end of input.
func (p *parser) eofToken() token.Token {
	return token.Token{Kind: token.EOF, Span: p.end}
}

func (p *parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.eofToken()
	}
	return p.toks[p.pos]
}

func (p *parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.eofToken()
	}
	return p.toks[idx]
}

func (p *parser) atEOF() bool { return p.pos >= len(p.toks) }

// advance consumes and returns the current token.
func (p *parser) advance() token.Token {
	t := p.cur()
	if !p.atEOF() {
		p.pos++
	}
	return t
}

func (p *parser) atKind(k token.Kind) bool { return p.cur().Kind == k }
func (p *parser) atKeyword(kw string) bool { return p.cur().IsKeyword(kw) }
func (p *parser) atPunct(punct string) bool { return p.cur().IsPunctuator(punct) }

func (p *parser) eatKeyword(kw string) bool {
	if p.atKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) eatPunct(punct string) bool {
	if p.atPunct(punct) {
		p.advance()
		return true
	}
	return false
}

// expectPunct consumes punct if present, otherwise records a diagnostic
// at the current token's span and leaves the cursor where it is. The
// translation-unit and struct-member loops call synchronize when a whole
// declaration consumed no token; other callers go on from the
// unconsumed token.
func (p *parser) expectPunct(punct string) bool {
	if p.eatPunct(punct) {
		return true
	}
	p.errf(p.cur().Span, "expected %q, got %s", punct, p.cur())
	return false
}

func (p *parser) errf(sp span.Span, format string, args ...any) {
	p.state.Sink.Add(diag.Error, sp, format, args...)
}

func (p *parser) warnf(sp span.Span, format string, args ...any) {
	p.state.Sink.Add(diag.Warning, sp, format, args...)
}

// spanFrom merges the span of the token at startPos with the span of the
// last consumed token, producing the node span for a production that ran
// from startPos to the current cursor position.
func (p *parser) spanFrom(startPos int) span.Span {
	if startPos >= len(p.toks) {
		return p.end
	}
	last := startPos
	if p.pos > 0 && p.pos-1 < len(p.toks) && p.pos-1 >= startPos {
		last = p.pos - 1
	}
	return span.Merge(p.toks[startPos].Span, p.toks[last].Span)
}

// synchronize skips tokens until it finds a top-level `;` (consumed) or
// a `}` (left unconsumed, so the caller's own brace-matching sees it), or
// EOF. Bracket nesting is tracked so it never stops on a `;`/`}` that
// belongs to a still-open subexpression (spec §4.D "error recovery":
// "install a synchronization point at the next top-level `;` (or
// matching `}`)").
func (p *parser) synchronize() {
	if p.state.recovering {
		return
	}
	p.state.recovering = true
	defer func() { p.state.recovering = false }()

	depth := 0
	for !p.atEOF() {
		t := p.cur()
		if t.Kind == token.Punctuator {
			switch t.Text {
			case "(", "[", "{":
				depth++
			case ")", "]":
				if depth > 0 {
					depth--
				}
			case "}":
				if depth == 0 {
					return
				}
				depth--
			case ";":
				if depth == 0 {
					p.advance()
					return
				}
			}
		}
		p.advance()
	}
}

// startsDeclarationSpecifier reports whether the current token can begin
// a declaration-specifier list: a storage class, type specifier/
// qualifier keyword, a typedef name recognized in the active scope, an
// attribute specifier `[[`, or static_assert/_Static_assert (spec §4.D
// invariant 3, the statement-start disambiguation).
func (p *parser) startsDeclarationSpecifier() bool {
	t := p.cur()
	switch {
	case t.Kind == token.Keyword:
		switch t.Text {
		case "auto", "constexpr", "extern", "register", "static", "thread_local",
			"typedef", "void", "char", "short", "int", "long", "float", "double",
			"signed", "unsigned", "bool", "_Bool", "_Complex", "_Imaginary",
			"_Decimal32", "_Decimal64", "_Decimal128", "_BitInt", "struct", "union",
			"enum", "typeof", "typeof_unqual", "const", "restrict", "volatile",
			"_Atomic", "_Nonnull", "_Nullable", "_Thread_local", "inline", "_Noreturn",
			"_Alignas", "alignas", "_Static_assert", "static_assert":
			return true
		}
		return false
	case t.Kind == token.Identifier:
		return p.state.IsTypedefName(t.Text)
	case t.Kind == token.Punctuator && t.Text == "[" && p.peek(1).IsPunctuator("["):
		return true
	default:
		return false
	}
}

// ParseTranslationUnit parses an entire translation unit: a sequence of
// external declarations (spec §4.D top-level entry point).
func ParseTranslationUnit(seq token.BalancedTokenSequence, state *State) (*ast.TranslationUnit, []diag.Diagnostic) {
	p := newParser(seq, state)

	var decls []ast.ExternalDeclaration
	for !p.atEOF() {
		before := p.pos
		decls = append(decls, p.parseExternalDeclaration())
		if p.pos == before {
			p.synchronize()
			if p.pos == before {
				p.advance()
			}
		}
	}

	unit := finish(&ast.TranslationUnit{Declarations: decls}, p.spanFrom(0))
	return unit, state.Sink.Diagnostics()
}

// ParseDeclaration parses a single declaration in isolation (spec §6
// external interface).
func ParseDeclaration(seq token.BalancedTokenSequence, state *State) (ast.Declaration, []diag.Diagnostic) {
	p := newParser(seq, state)
	d := p.parseDeclaration()
	return d, state.Sink.Diagnostics()
}

// ParseStatement parses a single statement in isolation.
func ParseStatement(seq token.BalancedTokenSequence, state *State) (ast.Statement, []diag.Diagnostic) {
	p := newParser(seq, state)
	s := p.parseStatement()
	return s, state.Sink.Diagnostics()
}

// ParseExpression parses a single (comma) expression in isolation.
func ParseExpression(seq token.BalancedTokenSequence, state *State) (ast.Expression, []diag.Diagnostic) {
	p := newParser(seq, state)
	e := p.parseExpression()
	return e, state.Sink.Diagnostics()
}

// ParseTypeName parses a standalone type-name in isolation.
func ParseTypeName(seq token.BalancedTokenSequence, state *State) (ast.TypeName, []diag.Diagnostic) {
	p := newParser(seq, state)
	tn := p.parseTypeName()
	return tn, state.Sink.Diagnostics()
}
