package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/c23fe/c23/token"
)

// isIdentStartByte is a fast ASCII pre-check; scanIdentifier itself
// decodes full runes (including the >0x7F continuation bytes of a
// multi-byte UTF-8 identifier) and universal-character-name escapes.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

// isXIDStart/isXIDContinue approximate Unicode's XID_Start/XID_Continue
// properties using the standard library's letter/digit/mark classes — the
// corpus carries no XID property-table dependency (see DESIGN.md), so
// this is a documented approximation rather than the precise Unicode
// derived property.
func isXIDStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isXIDContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// decodeUCN reads a \uXXXX or \UXXXXXXXX escape starting at lx.pos (which
// must point at the backslash) and returns the decoded rune and the
// number of source bytes consumed, or (utf8.RuneError, 0) if what follows
// isn't a well-formed universal character name.
func (lx *lexer) decodeUCN() (rune, int) {
	if lx.byteAt(0) != '\\' {
		return utf8.RuneError, 0
	}

	var digits int
	switch lx.byteAt(1) {
	case 'u':
		digits = 4
	case 'U':
		digits = 8
	default:
		return utf8.RuneError, 0
	}

	hex := make([]byte, 0, digits)
	for i := 0; i < digits; i++ {
		b := lx.byteAt(2 + i)
		if !isHexDigit(b) {
			return utf8.RuneError, 0
		}
		hex = append(hex, b)
	}

	v, err := strconv.ParseUint(string(hex), 16, 32)
	if err != nil {
		return utf8.RuneError, 0
	}

	return rune(v), 2 + digits
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanIdentifierOrPrefixedLiteral scans an identifier, decoding any UCN
// escapes into the canonical spelling (spec invariant: "every identifier
// token preserves its original spelling after universal-character-name
// decoding"). If the resulting spelling is a string/char encoding prefix
// (u8, u, U, L) immediately followed by a quote, it instead dispatches to
// the literal scanners with that prefix — this is the lexical hazard of
// distinguishing an identifier named `u8` from the `u8"..."` prefix.
func (lx *lexer) scanIdentifierOrPrefixedLiteral(start int) {
	raw, decoded := lx.scanIdentifierText()

	if lx.byteAt(0) == '"' {
		if enc, ok := encodingPrefix(decoded); ok {
			lx.scanString(start, enc)
			return
		}
	}
	if lx.byteAt(0) == '\'' {
		if enc, ok := encodingPrefix(decoded); ok {
			lx.scanChar(start, enc)
			return
		}
	}

	lx.emitIdentifier(start, raw, decoded)
}

func encodingPrefix(s string) (token.EncodingPrefix, bool) {
	switch s {
	case "u8":
		return token.EncodingU8, true
	case "u":
		return token.EncodingLowerU, true
	case "U":
		return token.EncodingUpperU, true
	case "L":
		return token.EncodingWide, true
	default:
		return token.EncodingNone, false
	}
}

// scanIdentifierText consumes one identifier and returns both its raw
// source spelling and its UCN-decoded canonical text.
func (lx *lexer) scanIdentifierText() (raw, decoded string) {
	start := lx.pos
	var buf []rune

	first := true
	for !lx.eof() {
		if lx.byteAt(0) == '\\' && (lx.byteAt(1) == 'u' || lx.byteAt(1) == 'U') {
			r, n := lx.decodeUCN()
			if n == 0 {
				break
			}
			ok := isXIDContinue(r)
			if first {
				ok = isXIDStart(r)
			}
			if !ok {
				break
			}
			buf = append(buf, r)
			lx.pos += n
			first = false
			continue
		}

		r, size := lx.rune()
		if size == 0 {
			break
		}
		ok := isXIDContinue(r)
		if first {
			ok = isXIDStart(r)
		}
		if !ok {
			break
		}
		buf = append(buf, r)
		lx.pos += size
		first = false
	}

	raw = string(lx.src[start:lx.pos])
	decoded = string(buf)
	return
}

func (lx *lexer) emitIdentifier(start int, raw, decoded string) {
	sp := lx.span(start)

	if feature, isKeyword := keywords[decoded]; isKeyword {
		if feature == "" || lx.opts.dialect().Allows(feature) {
			lx.out = append(lx.out, token.Token{
				Kind: token.Keyword, Text: decoded, Raw: raw, Span: sp,
			})
			return
		}
		lx.sink.Notef(sp, "%q is a keyword in c23 but is lexed as an identifier under the %s profile", decoded, lx.opts.dialect())
	}

	if lx.opts.AcceptVendorExtensions && vendorKeywords[decoded] {
		lx.out = append(lx.out, token.Token{Kind: token.Keyword, Text: decoded, Raw: raw, Span: sp})
		return
	}

	id := token.NewIdentifier(decoded, token.RoleUnresolved)
	lx.out = append(lx.out, token.Token{
		Kind: token.Identifier, Text: decoded, Raw: raw, Value: id, Span: sp,
	})
}
