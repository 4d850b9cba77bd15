package lexer

// keywords is the C23 keyword set (spec §4.B), recognized by exact match
// against an already-tokenized identifier spelling — tokenization itself
// does not distinguish keywords from identifiers. Values name the
// dialect feature gating that spelling, or "" if the keyword is available
// under every supported profile.
var keywords = map[string]string{
	"auto": "", "break": "", "case": "", "char": "", "const": "",
	"continue": "", "default": "", "do": "", "double": "", "else": "",
	"enum": "", "extern": "", "float": "", "for": "", "goto": "",
	"if": "", "inline": "", "int": "", "long": "", "register": "",
	"restrict": "", "return": "", "short": "", "signed": "", "sizeof": "",
	"static": "", "struct": "", "switch": "", "typedef": "", "union": "",
	"unsigned": "", "void": "", "volatile": "", "while": "",

	"_Alignas": "", "_Alignof": "", "_Atomic": "", "_Bool": "",
	"_Complex": "", "_Generic": "", "_Imaginary": "", "_Noreturn": "",
	"_Static_assert": "", "_Thread_local": "",

	"_BitInt":      "bit_int",
	"_Decimal32":   "",
	"_Decimal64":   "",
	"_Decimal128":  "",
	"alignas":      "keyword_aliases",
	"alignof":      "keyword_aliases",
	"bool":         "bool_keyword",
	"true":         "bool_keyword",
	"false":        "bool_keyword",
	"nullptr":      "nullptr",
	"constexpr":    "constexpr",
	"static_assert": "keyword_aliases",
	"thread_local": "keyword_aliases",
	"typeof":       "typeof",
	"typeof_unqual": "typeof_unqual",
}

// vendorKeywords are recognized only when Options.AcceptVendorExtensions
// is set (spec §4.D: try/catch/throw statement extensions; §6:
// accept_vendor_extensions gates __attribute__ / __declspec / inline asm
// / statement expressions).
var vendorKeywords = map[string]bool{
	"__attribute__": true,
	"__declspec":    true,
	"__asm__":       true,
	"asm":           true,
	"try":           true,
	"catch":         true,
	"throw":         true,
}
