package token

import "testing"

func TestTokenIsKeywordAndIsPunctuator(t *testing.T) {
	kw := Token{Kind: Keyword, Text: "if"}
	if !kw.IsKeyword("if") {
		t.Fatalf("want IsKeyword(%q) true", "if")
	}
	if kw.IsKeyword("while") {
		t.Fatalf("want IsKeyword(%q) false for a differently spelled keyword", "while")
	}
	if kw.IsPunctuator("if") {
		t.Fatalf("want IsPunctuator false for a Keyword-kind token")
	}

	p := Token{Kind: Punctuator, Text: "+="}
	if !p.IsPunctuator("+=") {
		t.Fatalf("want IsPunctuator(%q) true", "+=")
	}
	if p.IsKeyword("+=") {
		t.Fatalf("want IsKeyword false for a Punctuator-kind token")
	}
}

func TestTokenString(t *testing.T) {
	if got, want := (Token{Kind: EOF}).String(), "EOF"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got, want := (Token{Kind: Identifier, Text: "foo"}).String(), "identifier `foo`"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestTokenStringTruncatesLongText(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	got := (Token{Kind: Identifier, Text: long}).String()
	want := "identifier `abcdefghijklmnopqrstuvwx...`"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	if got, want := Identifier.String(), "identifier"; got != want {
		t.Fatalf("Kind.String() = %q, want %q", got, want)
	}
	if got, want := Kind(999).String(), "Kind(999)"; got != want {
		t.Fatalf("Kind.String() for an unknown kind = %q, want %q", got, want)
	}
}

func TestRoleString(t *testing.T) {
	cases := []struct {
		r    Role
		want string
	}{
		{RoleUnresolved, "unresolved"},
		{RoleVariable, "variable"},
		{RoleTypedef, "typedef"},
		{RoleTag, "tag"},
		{RoleMember, "member"},
		{RoleLabel, "label"},
		{RoleEnumerator, "enumerator"},
		{RoleAttributeName, "attribute-name"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Fatalf("Role(%d).String() = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestNewIdentifierInternsSharedText(t *testing.T) {
	a := NewIdentifier("widget", RoleVariable)
	b := NewIdentifier("widget", RoleTag)

	if a == b {
		t.Fatalf("want distinct *IdentifierInfo values per occurrence")
	}
	if a.Name != b.Name {
		t.Fatalf("want both occurrences to share the interned string value")
	}
	if a.Role == b.Role {
		t.Fatalf("want per-occurrence roles to differ here (variable vs tag)")
	}
}

func TestIdentifierWithRole(t *testing.T) {
	id := NewIdentifier("T", RoleUnresolved)
	resolved := id.WithRole(RoleTypedef)

	if id.Role != RoleUnresolved {
		t.Fatalf("want WithRole to leave the receiver unchanged, got role %v", id.Role)
	}
	if resolved.Role != RoleTypedef {
		t.Fatalf("want the returned copy to carry the new role, got %v", resolved.Role)
	}
	if resolved.Name != id.Name {
		t.Fatalf("want WithRole to preserve the name")
	}
}

func TestIdentifierWithRoleOnNil(t *testing.T) {
	var id *IdentifierInfo
	if got := id.WithRole(RoleTag); got != nil {
		t.Fatalf("want WithRole on a nil Identifier to return nil, got %v", got)
	}
}

func TestConstantVariantsAreClosed(t *testing.T) {
	var cs = []ConstantValue{
		&IntegerConstant{},
		&FloatingConstant{},
		&CharacterConstant{},
		&PredefinedConstant{},
	}
	for _, c := range cs {
		if c == nil {
			t.Fatalf("want every listed Constant variant to be non-nil")
		}
	}
}

func TestEncodingPrefixString(t *testing.T) {
	cases := []struct {
		e    EncodingPrefix
		want string
	}{
		{EncodingNone, ""},
		{EncodingU8, "u8"},
		{EncodingLowerU, "u"},
		{EncodingUpperU, "U"},
		{EncodingWide, "L"},
	}
	for _, c := range cases {
		if got := c.e.String(); got != c.want {
			t.Fatalf("EncodingPrefix(%d).String() = %q, want %q", c.e, got, c.want)
		}
	}
}

func TestPredefinedKindString(t *testing.T) {
	cases := []struct {
		k    PredefinedKind
		want string
	}{
		{PredefinedTrue, "true"},
		{PredefinedFalse, "false"},
		{PredefinedNullptr, "nullptr"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Fatalf("PredefinedKind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}
