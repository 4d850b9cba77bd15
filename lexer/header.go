package lexer

import "github.com/c23fe/c23/token"

// scanHeaderName resolves the header-name-vs-divide (or vs-string-literal)
// hazard: only in Options.HeaderNameContext does `<...>` or `"..."` scan
// as a single header-name token instead of punctuators/a string literal.
// Ordinary translation-unit lexing never sets that flag (spec §1: the
// core does not process `#include` itself); it exists for callers doing
// targeted re-lexing right after a preprocessing directive.
func (lx *lexer) scanHeaderName(start int, closer byte) {
	lx.pos++ // opening delimiter

	terminated := false
	for !lx.eof() {
		b := lx.src[lx.pos]
		if b == closer {
			lx.pos++
			terminated = true
			break
		}
		if b == '\n' {
			break
		}
		lx.pos++
	}

	sp := lx.span(start)
	if !terminated {
		lx.sink.Errorf(sp, "unterminated header name")
	}

	text := string(lx.src[start:lx.pos])
	lx.out = append(lx.out, token.Token{Kind: token.HeaderName, Text: text, Raw: text, Span: sp})
}
