// Package lexer transforms C23 source bytes into a balanced token stream,
// resolving maximal-munch tokenization, preprocessing-number shape,
// header-name-vs-divide, and universal-character-name decoding.
package lexer

import (
	"unicode/utf8"

	"github.com/c23fe/c23/dialect"
	"github.com/c23fe/c23/diag"
	"github.com/c23fe/c23/span"
	"github.com/c23fe/c23/token"
)

// Options configures a Lex call (spec §6).
type Options struct {
	// Filename seeds spans; purely cosmetic.
	Filename string
	// AcceptComments preserves comment tokens in the returned stream
	// instead of filtering them (default: stripped).
	AcceptComments bool
	// AcceptVendorExtensions enables __attribute__, __declspec, inline
	// asm, and the try/catch/throw statement extensions. It is off by
	// default (the zero value); when off, those spellings lex as plain
	// identifiers.
	AcceptVendorExtensions bool
	// Dialect gates standard-specific keyword recognition. Nil means
	// dialect.C23, the full feature set.
	Dialect *dialect.Profile
	// HeaderNameContext, when set, tells the lexer the next `<...>` or
	// `"..."` run at the current position should be scanned as a
	// header-name token rather than string-literal/operator tokens —
	// callers doing targeted re-lexing after `#include` can set this;
	// ordinary translation-unit lexing never needs it since the core
	// does not process directives itself (spec §1 scope).
	HeaderNameContext bool
}

func (o Options) dialect() *dialect.Profile {
	if o.Dialect == nil {
		return dialect.C23
	}
	return o.Dialect
}

// Result is what Lex returns: the source map the returned spans refer
// into, the balanced token sequence, and every diagnostic recorded while
// scanning.
type Result struct {
	Map         *span.Map
	File        span.FileID
	Tokens      token.BalancedTokenSequence
	Diagnostics []diag.Diagnostic
}

// Lex tokenizes src, never failing outright: an irrecoverable byte emits
// a diagnostic token and the scan advances one byte (spec §4.B).
func Lex(src []byte, opts Options) *Result {
	sm := span.NewMap()
	fid := sm.AddFile(opts.Filename, src)
	sink := diag.NewSink()

	lx := &lexer{
		src:  src,
		file: fid,
		opts: opts,
		sink: sink,
	}
	lx.run()

	return &Result{
		Map:  sm,
		File: fid,
		Tokens: token.BalancedTokenSequence{
			Tokens:   lx.out,
			Unclosed: len(lx.brackets),
		},
		Diagnostics: sink.Diagnostics(),
	}
}

// lexer holds the small mutable scanning state spec §4.B calls for:
// current byte offset, current file id, and an open-brackets stack.
type lexer struct {
	src      []byte
	pos      int
	file     span.FileID
	opts     Options
	sink     *diag.Sink
	brackets []token.Token // open-bracket stack, for balance tracking
	out      token.Sequence
}

func (lx *lexer) eof() bool { return lx.pos >= len(lx.src) }

func (lx *lexer) byteAt(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

// rune decodes the rune at the current position without advancing.
func (lx *lexer) rune() (rune, int) {
	if lx.eof() {
		return 0, 0
	}
	r, size := utf8.DecodeRune(lx.src[lx.pos:])
	return r, size
}

func (lx *lexer) span(start int) span.Span {
	return span.Span{File: lx.file, Start: start, End: lx.pos}
}

func (lx *lexer) emit(kind token.Kind, text string, value any, start int) {
	lx.out = append(lx.out, token.Token{
		Kind: kind, Text: text, Raw: text, Value: value, Span: lx.span(start),
	})
}

func (lx *lexer) run() {
	for !lx.eof() {
		start := lx.pos
		b := lx.src[lx.pos]

		switch {
		case b == '\n' || b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f':
			lx.scanWhitespace(start)
		case b == '/' && lx.byteAt(1) == '/':
			lx.scanLineComment(start)
		case b == '/' && lx.byteAt(1) == '*':
			lx.scanBlockComment(start)
		case lx.opts.HeaderNameContext && b == '<':
			lx.scanHeaderName(start, '>')
		case lx.opts.HeaderNameContext && b == '"':
			lx.scanHeaderName(start, '"')
		case b == '"':
			lx.scanString(start, token.EncodingNone)
		case b == '\'':
			lx.scanChar(start, token.EncodingNone)
		case isDigit(b):
			lx.scanNumber(start)
		case b == '.' && isDigit(lx.byteAt(1)):
			lx.scanNumber(start)
		case isIdentStartByte(b) || b == '\\':
			lx.scanIdentifierOrPrefixedLiteral(start)
		case token.IsOpener(string(b)) || token.IsCloser(string(b)):
			lx.scanBracket(start)
		default:
			lx.scanPunctuatorOrUnknown(start)
		}
	}

	// Recovery: any still-open brackets are implicitly closed at EOF.
	// The stack is left in place so Lex can report its depth as Unclosed.
	for i := len(lx.brackets) - 1; i >= 0; i-- {
		opener := lx.brackets[i]
		lx.sink.Errorf(opener.Span, "unmatched %q: closed implicitly at end of file", opener.Text)
	}
}

func (lx *lexer) scanWhitespace(start int) {
	for !lx.eof() {
		b := lx.src[lx.pos]
		if b != '\n' && b != ' ' && b != '\t' && b != '\r' && b != '\v' && b != '\f' {
			break
		}
		lx.pos++
	}
	if lx.opts.AcceptComments {
		lx.emit(token.Whitespace, string(lx.src[start:lx.pos]), nil, start)
	}
}

func (lx *lexer) scanLineComment(start int) {
	lx.pos += 2
	for !lx.eof() && lx.src[lx.pos] != '\n' {
		lx.pos++
	}
	if lx.opts.AcceptComments {
		lx.emit(token.Comment, string(lx.src[start:lx.pos]), nil, start)
	}
}

func (lx *lexer) scanBlockComment(start int) {
	lx.pos += 2
	closed := false
	for !lx.eof() {
		if lx.src[lx.pos] == '*' && lx.byteAt(1) == '/' {
			lx.pos += 2
			closed = true
			break
		}
		lx.pos++
	}
	if !closed {
		lx.sink.Errorf(lx.span(start), "unterminated block comment")
	}
	if lx.opts.AcceptComments {
		lx.emit(token.Comment, string(lx.src[start:lx.pos]), nil, start)
	}
}

func (lx *lexer) scanBracket(start int) {
	text := string(lx.src[lx.pos])
	lx.pos++
	tok := token.Token{Kind: token.Punctuator, Text: text, Raw: text, Span: lx.span(start)}

	if token.IsOpener(text) {
		lx.brackets = append(lx.brackets, tok)
		lx.out = append(lx.out, tok)
		return
	}

	if len(lx.brackets) > 0 && token.Closes(lx.brackets[len(lx.brackets)-1].Text, text) {
		lx.brackets = lx.brackets[:len(lx.brackets)-1]
		lx.out = append(lx.out, tok)
		return
	}

	lx.sink.Errorf(tok.Span, "unmatched closing %q", text)
	lx.out = append(lx.out, tok)
}

func (lx *lexer) scanPunctuatorOrUnknown(start int) {
	rest := lx.src[lx.pos:]
	if p := matchPunctuator(string(rest)); p != "" {
		lx.pos += len(p)
		lx.emit(token.Punctuator, p, nil, start)
		return
	}

	r, size := lx.rune()
	lx.sink.Errorf(lx.span(start), "unexpected byte %q", string(r))
	if size == 0 {
		size = 1
	}
	lx.pos += size
	lx.emit(token.Error, string(lx.src[start:lx.pos]), nil, start)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
