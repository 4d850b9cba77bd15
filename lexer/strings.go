package lexer

import (
	"strconv"

	"github.com/c23fe/c23/token"
)

// scanString consumes one string-literal token, already positioned at the
// opening quote, with encoding prefix enc (spec §4.B: u8|u|U|L).
// Adjacent-literal concatenation across tokens is the parser's job
// (token.StringLiterals); the lexer only ever produces one fragment per
// quoted run.
func (lx *lexer) scanString(start int, enc token.EncodingPrefix) {
	lx.pos++ // opening quote

	var decoded []rune
	terminated := false

	for !lx.eof() {
		b := lx.src[lx.pos]
		if b == '"' {
			lx.pos++
			terminated = true
			break
		}
		if b == '\n' {
			break // unterminated: stop at the offending newline
		}
		if b == '\\' {
			decoded = append(decoded, lx.scanEscape()...)
			continue
		}
		r, size := lx.rune()
		decoded = append(decoded, r)
		lx.pos += size
	}

	sp := lx.span(start)
	if !terminated {
		lx.sink.Errorf(sp, "unterminated string literal")
	}

	raw := string(lx.src[start:lx.pos])
	lit := &token.StringLiterals{Fragments: []token.StringFragment{
		{Encoding: enc, Decoded: string(decoded), Span: sp},
	}}
	lx.out = append(lx.out, token.Token{Kind: token.StringLiteral, Text: raw, Raw: raw, Value: lit, Span: sp})
}

// scanChar consumes one character-literal token.
func (lx *lexer) scanChar(start int, enc token.EncodingPrefix) {
	lx.pos++ // opening quote

	var codepoint rune
	terminated := false

	for !lx.eof() {
		b := lx.src[lx.pos]
		if b == '\'' {
			lx.pos++
			terminated = true
			break
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			decoded := lx.scanEscape()
			if len(decoded) > 0 {
				codepoint = decoded[0]
			}
			continue
		}
		r, size := lx.rune()
		codepoint = r
		lx.pos += size
	}

	sp := lx.span(start)
	if !terminated {
		lx.sink.Errorf(sp, "unterminated character literal")
	}

	raw := string(lx.src[start:lx.pos])
	cc := &token.CharacterConstant{Codepoint: codepoint, Encoding: enc}
	lx.out = append(lx.out, token.Token{Kind: token.Constant, Text: raw, Raw: raw, Value: cc, Span: sp})
}

// scanEscape consumes one backslash escape sequence (already positioned
// at the `\`) and returns its decoded rune(s). Invalid escapes are
// reported and treated as their textual form, per spec §4.B failure
// semantics.
func (lx *lexer) scanEscape() []rune {
	start := lx.pos
	lx.pos++ // backslash

	if lx.eof() {
		lx.sink.Errorf(lx.span(start), "stray backslash at end of input")
		return nil
	}

	b := lx.src[lx.pos]
	switch b {
	case 'u', 'U':
		lx.pos = start // decodeUCN reads from the backslash
		if r, n := lx.decodeUCN(); n > 0 {
			lx.pos += n
			return []rune{r}
		}
		lx.pos = start + 1
		lx.sink.Errorf(lx.span(start), "invalid universal character name")
		lx.pos++
		return []rune(string(lx.src[start:lx.pos]))

	case 'a':
		lx.pos++
		return []rune{'\a'}
	case 'b':
		lx.pos++
		return []rune{'\b'}
	case 'f':
		lx.pos++
		return []rune{'\f'}
	case 'n':
		lx.pos++
		return []rune{'\n'}
	case 'r':
		lx.pos++
		return []rune{'\r'}
	case 't':
		lx.pos++
		return []rune{'\t'}
	case 'v':
		lx.pos++
		return []rune{'\v'}
	case '\\', '\'', '"', '?':
		lx.pos++
		return []rune{rune(b)}

	case 'x':
		lx.pos++
		hexStart := lx.pos
		for !lx.eof() && isHexDigit(lx.src[lx.pos]) {
			lx.pos++
		}
		if lx.pos == hexStart {
			lx.sink.Errorf(lx.span(start), `\x escape with no hex digits`)
			return []rune(string(lx.src[start:lx.pos]))
		}
		v, _ := strconv.ParseUint(string(lx.src[hexStart:lx.pos]), 16, 32)
		return []rune{rune(v)}

	default:
		if b >= '0' && b <= '7' {
			octStart := lx.pos
			for i := 0; i < 3 && !lx.eof() && lx.src[lx.pos] >= '0' && lx.src[lx.pos] <= '7'; i++ {
				lx.pos++
			}
			v, _ := strconv.ParseUint(string(lx.src[octStart:lx.pos]), 8, 32)
			return []rune{rune(v)}
		}

		lx.sink.Errorf(lx.span(start), "unknown escape sequence \\%c", b)
		lx.pos++
		return []rune(string(lx.src[start:lx.pos]))
	}
}
