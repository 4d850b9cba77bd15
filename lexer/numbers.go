package lexer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/c23fe/c23/span"
	"github.com/c23fe/c23/token"
)

// scanNumber consumes a preprocessing-number (C's maximal-munch numeric
// token shape: a digit or `.digit`, followed by any run of digits,
// identifier-nondigits, `.`, digit separators, or a sign immediately
// after e/E/p/P) and classifies it as an integer or floating constant
// (spec §4.B).
func (lx *lexer) scanNumber(start int) {
	isFloat := false
	isHex := lx.byteAt(0) == '0' && (lx.byteAt(1) == 'x' || lx.byteAt(1) == 'X')

	for !lx.eof() {
		b := lx.byteAt(0)
		switch {
		case b == '\'' && start < lx.pos && isHexDigit(lx.src[lx.pos-1]):
			lx.pos++ // digit separator; excluded from the value text below
		case (b == 'e' || b == 'E') && !isHex && (lx.byteAt(1) == '+' || lx.byteAt(1) == '-'):
			isFloat = true
			lx.pos += 2
		case (b == 'p' || b == 'P') && isHex && (lx.byteAt(1) == '+' || lx.byteAt(1) == '-'):
			isFloat = true
			lx.pos += 2
		case b == '.':
			isFloat = true
			lx.pos++
		case isDigit(b) || isIdentContinueByte(b):
			lx.pos++
		default:
			goto done
		}
	}
done:

	text := string(lx.src[start:lx.pos])
	sp := lx.span(start)

	if isFloat {
		lx.emitFloat(text, sp)
		return
	}
	lx.emitInteger(text, sp)
}

func isIdentContinueByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

// splitNumericBody splits a numeric spelling into its 0x/0b radix prefix
// (empty when there is none), the digits that follow with digit
// separators stripped, and the trailing letter suffix.
func splitNumericBody(text string) (prefix, digitsNoSeparators, suffix string) {
	i := 0
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		prefix = text[:2]
		i = 2
	} else if strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B") {
		prefix = text[:2]
		i = 2
	}

	isBodyByte := func(b byte) bool {
		return isHexDigit(b) || b == '\''
	}

	j := i
	for j < len(text) && isBodyByte(text[j]) {
		j++
	}

	var digits strings.Builder
	for _, r := range text[i:j] {
		if r != '\'' {
			digits.WriteRune(r)
		}
	}

	return prefix, digits.String(), text[j:]
}

func (lx *lexer) emitInteger(text string, sp span.Span) {
	prefix, digits, suffix := splitNumericBody(text)

	radix := 10
	switch prefix {
	case "0x", "0X":
		radix = 16
	case "0b", "0B":
		radix = 2
	default:
		if strings.HasPrefix(digits, "0") && len(digits) > 1 {
			radix = 8
		}
	}

	value, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		lx.sink.Errorf(sp, "malformed integer constant %q", text)
		value = new(big.Int)
	}

	ic := &token.IntegerConstant{
		Value:        value,
		DigitSpacers: strings.Contains(text, "'"),
	}

	if err := parseIntegerSuffix(suffix, ic); err != nil {
		lx.sink.Errorf(sp, "%s", err)
	}

	if ic.Width == token.WidthBitInt && !lx.opts.dialect().Allows("bit_int") {
		lx.sink.Notef(sp, "_BitInt suffix is a c23 feature, ignored under the %s profile", lx.opts.dialect())
	}

	lx.out = append(lx.out, token.Token{Kind: token.Constant, Text: text, Raw: text, Value: ic, Span: sp})
}

// parseIntegerSuffix accepts any permutation of u|U and l|L|ll|LL|wb|WB
// (spec §4.B).
func parseIntegerSuffix(suffix string, ic *token.IntegerConstant) error {
	s := suffix
	for len(s) > 0 {
		switch {
		case s[0] == 'u' || s[0] == 'U':
			ic.Unsigned = true
			s = s[1:]
		case strings.HasPrefix(s, "ll") || strings.HasPrefix(s, "LL"):
			ic.Width = token.WidthLongLong
			s = s[2:]
		case s[0] == 'l' || s[0] == 'L':
			if ic.Width != token.WidthLongLong {
				ic.Width = token.WidthLong
			}
			s = s[1:]
		case strings.HasPrefix(s, "wb") || strings.HasPrefix(s, "WB"):
			ic.Width = token.WidthBitInt
			s = s[2:]
		default:
			return &lexError{"invalid integer suffix " + strconv.Quote(suffix)}
		}
	}
	return nil
}

func (lx *lexer) emitFloat(text string, sp span.Span) {
	suffix, body := splitFloatSuffix(text)

	value, err := strconv.ParseFloat(body, 64)
	if err != nil {
		lx.sink.Errorf(sp, "malformed floating constant %q", text)
	}

	fc := &token.FloatingConstant{Value: value, Suffix: suffix}
	lx.out = append(lx.out, token.Token{Kind: token.Constant, Text: text, Raw: text, Value: fc, Span: sp})
}

var floatSuffixes = []string{"df", "dd", "dl", "DF", "DD", "DL", "f", "F", "l", "L"}

func splitFloatSuffix(text string) (suffix, body string) {
	for _, s := range floatSuffixes {
		if strings.HasSuffix(text, s) {
			return s, strings.TrimSuffix(text, s)
		}
	}
	return "", text
}

type lexError struct{ msg string }

func (e *lexError) Error() string { return e.msg }
