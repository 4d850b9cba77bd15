package lexer

// punctuatorsByLength lists every C23 punctuator spelling, longest first,
// for maximal-munch matching (spec §4.B: "punctuators: longest-match from
// the C23 set. Digraphs are not produced"). `#`/`##` are included because
// the lexer may see already-partially-processed text from a caller that
// retains preprocessing tokens for a downstream pass (spec §1: "the core
// accepts already-preprocessed text but preserves preprocessing tokens").
var punctuatorsByLength = [][]string{
	{"<<=", ">>=", "..."},
	{
		"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "##",
	},
	{
		"+", "-", "*", "/", "%", "&", "|", "^", "~", "!", "<", ">", "=",
		"?", ":", ";", ",", ".", "(", ")", "[", "]", "{", "}", "#",
	},
}

// matchPunctuator returns the longest punctuator spelling starting at s,
// or "" if none matches.
func matchPunctuator(s string) string {
	for _, group := range punctuatorsByLength {
		for _, p := range group {
			if len(s) >= len(p) && s[:len(p)] == p {
				return p
			}
		}
	}
	return ""
}
