package parser

import (
	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/token"
)

var storageClassKeywords = map[string]ast.StorageClassKind{
	"auto": ast.StorageAuto, "constexpr": ast.StorageConstexpr,
	"extern": ast.StorageExtern, "register": ast.StorageRegister,
	"static": ast.StorageStatic, "thread_local": ast.StorageThreadLocal,
	"_Thread_local": ast.StorageThreadLocal, "typedef": ast.StorageTypedef,
}

var typeQualifierKeywords = map[string]ast.TypeQualifierKind{
	"const": ast.QualConst, "restrict": ast.QualRestrict,
	"volatile": ast.QualVolatile, "_Atomic": ast.QualAtomic,
	"_Nonnull": ast.QualNonnull, "_Nullable": ast.QualNullable,
}

var functionSpecifierKeywords = map[string]ast.FunctionSpecifierKind{
	"inline": ast.FunctionInline, "_Noreturn": ast.FunctionNoreturn,
}

var primitiveKeywords = map[string]ast.PrimitiveKind{
	"void": ast.PrimitiveVoid, "char": ast.PrimitiveChar, "short": ast.PrimitiveShort,
	"int": ast.PrimitiveInt, "long": ast.PrimitiveLong, "float": ast.PrimitiveFloat,
	"double": ast.PrimitiveDouble, "signed": ast.PrimitiveSigned, "unsigned": ast.PrimitiveUnsigned,
	"bool": ast.PrimitiveBool, "_Bool": ast.PrimitiveBool, "_Complex": ast.PrimitiveComplex,
	"_Decimal32": ast.PrimitiveDecimal32, "_Decimal64": ast.PrimitiveDecimal64,
	"_Decimal128": ast.PrimitiveDecimal128,
}

// parseDeclaration parses one declaration (6.7): a static_assert
// declaration, a standalone attribute-declaration, or ordinary
// specifiers + init-declarator-list form, including typedef. Used both
// at block scope and for the non-function-definition branch of
// parseExternalDeclaration.
func (p *parser) parseDeclaration() ast.Declaration {
	start := p.pos

	if p.atKeyword("_Static_assert") || p.atKeyword("static_assert") {
		return p.parseStaticAssertDecl()
	}

	leadingAttrs := p.parseAttributeSpecifierSeq()
	if len(leadingAttrs) > 0 && p.atPunct(";") {
		p.advance()
		return finish(&ast.AttributeDecl{Attributes: leadingAttrs}, p.spanFrom(start))
	}

	specifiers, isTypedef := p.parseDeclarationSpecifiers()

	if p.eatPunct(";") {
		if isTypedef {
			return finish(&ast.TypedefDecl{Attributes: leadingAttrs, Specifiers: specifiers}, p.spanFrom(start))
		}
		return finish(&ast.NormalDecl{Attributes: leadingAttrs, Specifiers: specifiers}, p.spanFrom(start))
	}

	if isTypedef {
		var names []ast.Declarator
		for {
			d := p.parseDeclarator()
			if name, ok := ast.DeclaratorName(d); ok {
				if p.state.IsOrdinaryNameInCurrentScope(name) {
					p.errf(d.Span(), "redeclaration of %q as a typedef name (previously declared as a variable or function)", name)
				}
				p.state.AddTypedefName(name)
			}
			names = append(names, d)
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectPunct(";")
		return finish(&ast.TypedefDecl{Attributes: leadingAttrs, Specifiers: specifiers, Declarators: names}, p.spanFrom(start))
	}

	var inits []*ast.InitDeclarator
	for {
		declStart := p.pos
		d := p.parseDeclarator()
		if name, ok := ast.DeclaratorName(d); ok {
			if p.state.IsTypedefNameInCurrentScope(name) {
				p.errf(d.Span(), "redeclaration of %q as a variable (previously declared as a typedef name)", name)
			}
			p.state.AddOrdinaryName(name)
		}

		var initer ast.Initializer
		if p.eatPunct("=") {
			initer = p.parseInitializer()
		}
		inits = append(inits, finish(&ast.InitDeclarator{Declarator: d, Initializer: initer}, p.spanFrom(declStart)))

		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(";")

	return finish(&ast.NormalDecl{Attributes: leadingAttrs, Specifiers: specifiers, Declarators: inits}, p.spanFrom(start))
}

func (p *parser) parseStaticAssertDecl() *ast.StaticAssertDecl {
	start := p.pos
	p.advance() // _Static_assert / static_assert
	p.expectPunct("(")
	cond := p.parseConditionalExpression()

	var msg *token.StringLiterals
	if p.eatPunct(",") {
		msg = p.collectStringLiterals()
	}
	p.expectPunct(")")
	p.expectPunct(";")

	return finish(&ast.StaticAssertDecl{Condition: cond, Message: msg}, p.spanFrom(start))
}

// parseDeclarationSpecifiers parses 6.7's declaration-specifiers,
// collecting storage classes, type specifiers/qualifiers, function
// specifiers, and alignment specifiers in source order. isTypedef
// reports whether `typedef` appeared among them.
func (p *parser) parseDeclarationSpecifiers() (*ast.DeclarationSpecifiers, bool) {
	start := p.pos
	var items []ast.DeclarationSpecifier
	isTypedef := false
	sawTypeSpec := false

	for {
		itemStart := p.pos
		t := p.cur()

		switch {
		case t.Kind == token.Keyword && isStorageClassKeyword(t.Text):
			p.advance()
			class := storageClassKeywords[t.Text]
			if class == ast.StorageTypedef {
				isTypedef = true
			}
			items = append(items, finish(&ast.StorageClassItem{Class: class}, p.spanFrom(itemStart)))

		case t.Kind == token.Keyword && (t.Text == "inline" || t.Text == "_Noreturn"):
			p.advance()
			attrs := p.parseAttributeSpecifierSeq()
			items = append(items, finish(&ast.FunctionSpecItem{Kind: functionSpecifierKeywords[t.Text], Attributes: attrs}, p.spanFrom(itemStart)))

		case p.startsTypeSpecifierQualifier():
			// After a type specifier, an identifier is the declarator,
			// even when it is also a typedef name (`int T;`).
			if sawTypeSpec && t.Kind == token.Identifier {
				goto done
			}
			sq := p.parseTypeSpecifierQualifier()
			if _, ok := sq.(*ast.TypeSpecifierItem); ok {
				sawTypeSpec = true
			}
			items = append(items, finish(&ast.TypeSpecQualItem{Item: sq}, p.spanFrom(itemStart)))

		default:
			goto done
		}
	}

done:
	ds := finish(&ast.DeclarationSpecifiers{Items: items}, p.spanFrom(start))
	return ds, isTypedef
}

func isStorageClassKeyword(text string) bool {
	_, ok := storageClassKeywords[text]
	return ok
}

// startsTypeSpecifierQualifier reports whether the current token can
// begin a type-specifier-or-qualifier (6.7.2.1).
func (p *parser) startsTypeSpecifierQualifier() bool {
	t := p.cur()
	switch {
	case t.Kind == token.Keyword:
		if _, ok := primitiveKeywords[t.Text]; ok {
			return true
		}
		if _, ok := typeQualifierKeywords[t.Text]; ok {
			return true
		}
		switch t.Text {
		case "struct", "union", "enum", "typeof", "typeof_unqual", "_BitInt",
			"_Atomic", "_Alignas", "alignas":
			return true
		}
		return false
	case t.Kind == token.Identifier:
		return p.state.IsTypedefName(t.Text)
	default:
		return false
	}
}

// parseSpecifierQualifierList parses 6.7.2.1's specifier-qualifier-list,
// used by type names and member declarations.
func (p *parser) parseSpecifierQualifierList() *ast.SpecifierQualifierList {
	start := p.pos
	var items []ast.TypeSpecifierQualifier
	for p.startsTypeSpecifierQualifier() {
		items = append(items, p.parseTypeSpecifierQualifier())
	}
	attrs := p.parseAttributeSpecifierSeq()
	return finish(&ast.SpecifierQualifierList{Items: items, Attributes: attrs}, p.spanFrom(start))
}

// parseTypeSpecifierQualifier parses one element of a
// specifier-qualifier-list: a type specifier, a bare qualifier, or an
// alignment specifier.
func (p *parser) parseTypeSpecifierQualifier() ast.TypeSpecifierQualifier {
	start := p.pos
	t := p.cur()

	if t.Kind == token.Keyword {
		if qual, ok := typeQualifierKeywords[t.Text]; ok && t.Text != "_Atomic" {
			p.advance()
			return finish(&ast.TypeQualifierItem{Qual: qual}, p.spanFrom(start))
		}
		if t.Text == "_Atomic" && !p.peek(1).IsPunctuator("(") {
			p.advance()
			return finish(&ast.TypeQualifierItem{Qual: ast.QualAtomic}, p.spanFrom(start))
		}
		if t.Text == "_Alignas" || t.Text == "alignas" {
			align := p.parseAlignmentSpecifier()
			return finish(&ast.AlignmentSpecifierItem{Align: align}, p.spanFrom(start))
		}
	}

	spec := p.parseTypeSpecifier()
	return finish(&ast.TypeSpecifierItem{Spec: spec}, p.spanFrom(start))
}

// parseAlignmentSpecifier parses `_Alignas(...)`/`alignas(...)` (6.7.5),
// accepting either a type-name or a constant-expression argument.
func (p *parser) parseAlignmentSpecifier() ast.AlignmentSpecifier {
	start := p.pos
	p.advance() // _Alignas / alignas
	p.expectPunct("(")

	if p.startsTypeSpecifierQualifier() {
		typeName := p.parseTypeName()
		p.expectPunct(")")
		return finish(&ast.AlignAsType{Type: typeName}, p.spanFrom(start))
	}

	expr := p.parseConditionalExpression()
	p.expectPunct(")")
	return finish(&ast.AlignAsExpr{Expr: expr}, p.spanFrom(start))
}

// parseTypeSpecifier parses one 6.7.2 type specifier.
func (p *parser) parseTypeSpecifier() ast.TypeSpecifier {
	start := p.pos
	t := p.cur()

	switch {
	case t.Kind == token.Keyword:
		if kind, ok := primitiveKeywords[t.Text]; ok {
			p.advance()
			return finish(&ast.PrimitiveTypeSpecifier{Kind: kind}, p.spanFrom(start))
		}
		switch t.Text {
		case "_BitInt":
			p.advance()
			p.expectPunct("(")
			width := p.parseConditionalExpression()
			p.expectPunct(")")
			return finish(&ast.BitIntTypeSpecifier{Width: width}, p.spanFrom(start))
		case "_Atomic":
			p.advance()
			p.expectPunct("(")
			typeName := p.parseTypeName()
			p.expectPunct(")")
			return finish(&ast.AtomicTypeSpecifier{Type: typeName}, p.spanFrom(start))
		case "struct", "union":
			spec := p.parseStructOrUnionSpecifier()
			return finish(&ast.StructOrUnionTypeSpecifier{Spec: spec}, p.spanFrom(start))
		case "enum":
			spec := p.parseEnumSpecifier()
			return finish(&ast.EnumTypeSpecifier{Spec: spec}, p.spanFrom(start))
		case "typeof", "typeof_unqual":
			unqual := t.Text == "typeof_unqual"
			p.advance()
			p.expectPunct("(")
			var arg ast.TypeofArgument
			argStart := p.pos
			if p.startsTypeSpecifierQualifier() {
				arg = finish(&ast.TypeofTypeArg{Type: p.parseTypeName()}, p.spanFrom(argStart))
			} else {
				arg = finish(&ast.TypeofExprArg{Expr: p.parseExpression()}, p.spanFrom(argStart))
			}
			p.expectPunct(")")
			return finish(&ast.TypeofTypeSpecifier{Unqual: unqual, Arg: arg}, p.spanFrom(start))
		}

	case t.Kind == token.Identifier && p.state.IsTypedefName(t.Text):
		p.advance()
		return finish(&ast.TypedefNameTypeSpecifier{Name: t.Text}, p.spanFrom(start))
	}

	p.errf(t.Span, "expected type specifier, got %s", t)
	if !p.atEOF() {
		p.advance()
	}
	return finish(&ast.PrimitiveTypeSpecifier{Kind: ast.PrimitiveInt}, p.spanFrom(start))
}

// parseStructOrUnionSpecifier parses 6.7.2.1.
func (p *parser) parseStructOrUnionSpecifier() *ast.StructOrUnionSpecifier {
	start := p.pos
	kind := ast.KindStruct
	if p.cur().Text == "union" {
		kind = ast.KindUnion
	}
	p.advance()

	attrs := p.parseAttributeSpecifierSeq()

	var name string
	if p.atKind(token.Identifier) {
		name = p.advance().Text
	}

	var members []ast.MemberDeclaration
	if p.eatPunct("{") {
		for !p.atPunct("}") && !p.atEOF() {
			before := p.pos
			members = append(members, p.parseMemberDeclaration())
			if p.pos == before {
				p.synchronize()
				if p.pos == before {
					p.advance()
				}
			}
		}
		p.expectPunct("}")
		if members == nil {
			members = []ast.MemberDeclaration{}
		}
		p.checkFlexibleArrayMemberPlacement(members)
	}

	return finish(&ast.StructOrUnionSpecifier{Kind: kind, Attributes: attrs, Name: name, Members: members}, p.spanFrom(start))
}

// checkFlexibleArrayMemberPlacement flags a flexible array member
// (6.7.2.1p18: an array declarator with no size, e.g. `int data[];`)
// that appears anywhere but the last member of the list.
func (p *parser) checkFlexibleArrayMemberPlacement(members []ast.MemberDeclaration) {
	if len(members) == 0 {
		return
	}
	for _, m := range members[:len(members)-1] {
		normal, ok := m.(*ast.NormalMemberDecl)
		if !ok {
			continue
		}
		for _, d := range normal.Declarators {
			arr, ok := d.Decl.(*ast.ArrayDeclaratorNode)
			if !ok {
				continue
			}
			if _, ok := arr.Size.(*ast.UnspecifiedArraySize); ok {
				p.errf(d.Span(), "flexible array member must be the last member of the struct")
			}
		}
	}
}

// parseMemberDeclaration parses one entry of a struct/union's member
// list (6.7.2.1), including static_assert-as-member and bit-fields.
func (p *parser) parseMemberDeclaration() ast.MemberDeclaration {
	start := p.pos

	if p.atKeyword("_Static_assert") || p.atKeyword("static_assert") {
		assert := p.parseStaticAssertDecl()
		return finish(&ast.StaticAssertMemberDecl{Assert: assert}, p.spanFrom(start))
	}

	attrs := p.parseAttributeSpecifierSeq()
	sq := p.parseSpecifierQualifierList()

	var decls []*ast.MemberDeclaratorNode
	if !p.atPunct(";") {
		for {
			declStart := p.pos
			var d ast.Declarator
			if !p.atPunct(":") {
				d = p.parseDeclarator()
			}

			var width ast.Expression
			if p.eatPunct(":") {
				width = p.parseConditionalExpression()
			}

			decls = append(decls, finish(&ast.MemberDeclaratorNode{Decl: d, Width: width}, p.spanFrom(declStart)))
			if !p.eatPunct(",") {
				break
			}
		}
	}
	p.expectPunct(";")

	return finish(&ast.NormalMemberDecl{Attributes: attrs, Specifiers: sq, Declarators: decls}, p.spanFrom(start))
}

// parseEnumSpecifier parses 6.7.2.2, including the C23
// fixed-underlying-type extension `enum name : type { ... }`.
func (p *parser) parseEnumSpecifier() *ast.EnumSpecifier {
	start := p.pos
	p.advance() // enum
	attrs := p.parseAttributeSpecifierSeq()

	var name string
	if p.atKind(token.Identifier) {
		name = p.advance().Text
	}

	var typeSpec *ast.SpecifierQualifierList
	if p.eatPunct(":") {
		typeSpec = p.parseSpecifierQualifierList()
	}

	var enumerators []*ast.Enumerator
	if p.eatPunct("{") {
		p.state.PushEnum()
		for !p.atPunct("}") && !p.atEOF() {
			enumerators = append(enumerators, p.parseEnumerator())
			if !p.eatPunct(",") {
				break
			}
		}
		p.state.Pop()
		p.expectPunct("}")
		if enumerators == nil {
			enumerators = []*ast.Enumerator{}
		}
	}

	return finish(&ast.EnumSpecifier{Attributes: attrs, Name: name, TypeSpec: typeSpec, Enumerators: enumerators}, p.spanFrom(start))
}

func (p *parser) parseEnumerator() *ast.Enumerator {
	start := p.pos
	name := ""
	if p.atKind(token.Identifier) {
		name = p.advance().Text
	} else {
		p.errf(p.cur().Span, "expected enumerator name, got %s", p.cur())
	}
	p.state.AddEnumConstant(name)

	attrs := p.parseAttributeSpecifierSeq()

	var value ast.Expression
	if p.eatPunct("=") {
		value = p.parseConditionalExpression()
	}

	return finish(&ast.Enumerator{Name: name, Attributes: attrs, Value: value}, p.spanFrom(start))
}

// --- Attributes ---------------------------------------------------------

// parseAttributeSpecifierSeq parses zero or more consecutive attribute
// specifiers (6.7.12.1), standard `[[...]]` lists or vendor
// `__attribute__((...))`/`__declspec(...)`/`asm(...)` forms.
func (p *parser) parseAttributeSpecifierSeq() []ast.AttributeSpecifier {
	var specs []ast.AttributeSpecifier
	for {
		switch {
		case p.atPunct("[") && p.peek(1).IsPunctuator("["):
			specs = append(specs, p.parseAttributeList())
		case p.atKeyword("__attribute__"):
			specs = append(specs, p.parseVendorAttribute())
		case p.atKeyword("__declspec"):
			specs = append(specs, p.parseVendorAttribute())
		case p.atKeyword("asm") || p.atKeyword("__asm__"):
			specs = append(specs, p.parseAsmAttribute())
		default:
			return specs
		}
	}
}

func (p *parser) parseAttributeList() *ast.AttributeList {
	start := p.pos
	p.advance() // [
	p.advance() // [

	var attrs []*ast.Attribute
	for !p.atPunct("]") && !p.atEOF() {
		attrs = append(attrs, p.parseAttribute())
		if !p.eatPunct(",") {
			break
		}
	}

	p.expectPunct("]")
	p.expectPunct("]")

	return finish(&ast.AttributeList{Attributes: attrs}, p.spanFrom(start))
}

func (p *parser) parseAttribute() *ast.Attribute {
	start := p.pos
	var tok ast.AttributeToken

	first := p.expectIdentifierText()
	if p.eatPunct("::") {
		tok.Prefix = first
		tok.Name = p.expectIdentifierText()
	} else {
		tok.Name = first
	}

	var args *token.BalancedTokenSequence
	if p.atPunct("(") {
		args = p.captureBalancedParens()
	}

	return finish(&ast.Attribute{Name: tok, Args: args}, p.spanFrom(start))
}

// parseVendorAttribute parses `__attribute__((...))`/`__declspec(...)`,
// representing the whole argument clause as an unparsed balanced token
// sequence wrapped in a single synthetic Attribute entry (spec §4.D:
// "vendor-prefixed forms ... classified at parse time", the argument
// payload itself stays opaque).
func (p *parser) parseVendorAttribute() *ast.AttributeList {
	start := p.pos
	name := p.advance().Text // __attribute__ / __declspec

	var args *token.BalancedTokenSequence
	if p.atPunct("(") {
		args = p.captureBalancedParens()
	}

	attr := finish(&ast.Attribute{Name: ast.AttributeToken{Name: name}, Args: args}, p.spanFrom(start))
	return finish(&ast.AttributeList{Attributes: []*ast.Attribute{attr}}, p.spanFrom(start))
}

func (p *parser) parseAsmAttribute() *ast.AsmAttribute {
	start := p.pos
	p.advance() // asm / __asm__
	p.expectPunct("(")
	lit := p.collectStringLiterals()
	p.expectPunct(")")
	return finish(&ast.AsmAttribute{Literal: lit}, p.spanFrom(start))
}

// captureBalancedParens consumes a `(...)` group (the current token must
// be `(`) and returns its contents as a balanced token sequence, used for
// attribute argument clauses this module leaves unparsed (spec §4.D).
func (p *parser) captureBalancedParens() *token.BalancedTokenSequence {
	openIdx := p.pos
	closeIdx, ok := token.MatchGroup(p.toks, openIdx)
	if !ok {
		p.errf(p.cur().Span, "unterminated attribute argument list")
		p.advance()
		return &token.BalancedTokenSequence{}
	}

	inner := make(token.Sequence, closeIdx-openIdx-1)
	copy(inner, p.toks[openIdx+1:closeIdx])
	p.pos = closeIdx + 1

	return &token.BalancedTokenSequence{Tokens: inner}
}

// --- Declarators ----------------------------------------------------------

// parseDeclarator parses a concrete declarator (6.7.6): an optional
// pointer chain followed by a direct-declarator that must eventually
// name an identifier.
func (p *parser) parseDeclarator() ast.Declarator {
	start := p.pos
	if p.atPunct("*") || p.atPunct("^") {
		ptr := p.parsePointer()
		inner := p.parseDeclarator()
		return finish(&ast.PointerDeclaratorNode{Ptr: ptr, Inner: inner}, p.spanFrom(start))
	}
	return p.parseDirectDeclarator()
}

func (p *parser) parsePointer() ast.Pointer {
	block := p.eatPunct("^")
	if !block {
		p.expectPunct("*")
	}
	quals, attrs := p.parseTypeQualifierListWithAttrs()
	return ast.Pointer{Attributes: attrs, Qualifiers: quals, Block: block}
}

func (p *parser) parseTypeQualifierListWithAttrs() ([]ast.TypeQualifierKind, []ast.AttributeSpecifier) {
	var quals []ast.TypeQualifierKind
	var attrs []ast.AttributeSpecifier
	for {
		if q, ok := typeQualifierKeywords[p.cur().Text]; ok && p.cur().Kind == token.Keyword {
			p.advance()
			quals = append(quals, q)
			continue
		}
		if p.atPunct("[") && p.peek(1).IsPunctuator("[") {
			attrs = append(attrs, p.parseAttributeList())
			continue
		}
		break
	}
	return quals, attrs
}

// parseDirectDeclarator parses a direct-declarator: either a
// parenthesized declarator or a bare identifier, followed by zero or
// more array/function derivation suffixes.
func (p *parser) parseDirectDeclarator() ast.Declarator {
	start := p.pos
	var base ast.Declarator

	switch {
	case p.atPunct("(") && !p.looksLikeAbstractFunctionParamsAhead():
		p.advance()
		base = p.parseDeclarator()
		p.expectPunct(")")
		base = finish(&ast.ParenDeclarator{Inner: base}, p.spanFrom(start))

	case p.atKind(token.Identifier):
		name := p.advance().Text
		attrs := p.parseAttributeSpecifierSeq()
		base = finish(&ast.IdentifierDeclarator{Name: name, Attributes: attrs}, p.spanFrom(start))

	default:
		p.errf(p.cur().Span, "expected declarator, got %s", p.cur())
		base = finish(&ast.ErrorDeclarator{}, p.spanFrom(start))
	}

	return p.parseDeclaratorSuffixes(base, start)
}

// looksLikeAbstractFunctionParamsAhead disambiguates `(` starting a
// parenthesized declarator from `(` starting this direct-declarator's
// own (empty) parameter list — relevant only for the rare case of a
// function declarator with no name and no further nesting, which
// parseAbstractDeclarator handles instead; concrete declarators always
// require an eventual identifier, so a bare `()` here is always a
// parameter list, not a parenthesized sub-declarator.
func (p *parser) looksLikeAbstractFunctionParamsAhead() bool {
	return p.atPunct("(") && p.peek(1).IsPunctuator(")")
}

func (p *parser) parseDeclaratorSuffixes(base ast.Declarator, start int) ast.Declarator {
	for {
		switch {
		case p.atPunct("["):
			base = p.parseArrayDeclaratorSuffix(base, start)
		case p.atPunct("("):
			p.advance()
			params := p.parseParameterTypeList()
			p.expectPunct(")")
			attrs := p.parseAttributeSpecifierSeq()
			base = finish(&ast.FunctionDeclaratorNode{BaseDeclarator: base, Attributes: attrs, Params: params}, p.spanFrom(start))
		default:
			return base
		}
	}
}

func (p *parser) parseArrayDeclaratorSuffix(base ast.Declarator, start int) ast.Declarator {
	p.advance() // [
	size := p.parseArraySize()
	p.expectPunct("]")
	attrs := p.parseAttributeSpecifierSeq()
	return finish(&ast.ArrayDeclaratorNode{BaseDeclarator: base, Attributes: attrs, Size: size}, p.spanFrom(start))
}

// parseArraySize parses the contents of an array declarator's `[...]`
// (6.7.6.2): unspecified, a constant-expression, `static`/`const`-hinted,
// or the `[*]` VLA-of-unspecified-size form.
func (p *parser) parseArraySize() ast.ArraySize {
	start := p.pos

	static := p.eatKeyword("static")
	quals, _ := p.parseTypeQualifierListWithAttrs()
	if !static {
		static = p.eatKeyword("static")
	}

	switch {
	case p.atPunct("]"):
		if static {
			p.errf(p.cur().Span, "array size required after 'static'")
		}
		return finish(&ast.UnspecifiedArraySize{Qualifiers: quals}, p.spanFrom(start))
	case p.atPunct("*") && p.peek(1).IsPunctuator("]"):
		p.advance()
		return finish(&ast.VLAArraySize{Qualifiers: quals}, p.spanFrom(start))
	default:
		size := p.parseAssignmentExpression()
		return finish(&ast.FixedArraySize{Qualifiers: quals, Size: size, Static: static}, p.spanFrom(start))
	}
}

// parseParameterTypeList parses 6.7.6's parameter-type-list: `void`
// (empty prototype), a K&R identifier-list, or a comma-separated list of
// parameter declarations optionally terminated by `, ...`.
func (p *parser) parseParameterTypeList() *ast.ParameterTypeList {
	p.state.PushPrototype()
	defer p.state.Pop()

	if p.atPunct(")") {
		return &ast.ParameterTypeList{}
	}

	if p.atKeyword("void") && p.peek(1).IsPunctuator(")") {
		p.advance()
		return &ast.ParameterTypeList{}
	}

	if p.looksLikeIdentifierList() {
		return p.parseIdentifierListAsParams()
	}

	var params []*ast.ParameterDeclaration
	variadic := false
	for {
		if p.eatPunct("...") {
			variadic = true
			break
		}
		params = append(params, p.parseParameterDeclaration())
		if !p.eatPunct(",") {
			break
		}
	}

	return &ast.ParameterTypeList{Parameters: params, Variadic: variadic}
}

// looksLikeIdentifierList reports whether the upcoming tokens are a
// K&R-style bare identifier-list rather than a typed
// parameter-type-list: the current token is an identifier not known as a
// typedef name, and it's immediately followed by `,` or `)`.
func (p *parser) looksLikeIdentifierList() bool {
	if p.cur().Kind != token.Identifier || p.state.IsTypedefName(p.cur().Text) {
		return false
	}
	next := p.peek(1)
	return next.IsPunctuator(",") || next.IsPunctuator(")")
}

// parseIdentifierListAsParams parses a K&R identifier-list and
// represents each name as a parameter declaration with no specifiers or
// abstract form yet — parseExternalDeclaration fills in real types from
// the old-style declaration-list that follows, then discards this shape
// in favor of the merged prototype (see unit.go).
func (p *parser) parseIdentifierListAsParams() *ast.ParameterTypeList {
	var params []*ast.ParameterDeclaration
	for {
		start := p.pos
		name := p.advance().Text
		decl := finish(&ast.IdentifierDeclarator{Name: name}, p.spanFrom(start))
		params = append(params, finish(&ast.ParameterDeclaration{Declarator: decl}, p.spanFrom(start)))
		if !p.eatPunct(",") {
			break
		}
	}
	return &ast.ParameterTypeList{Parameters: params}
}

func (p *parser) parseParameterDeclaration() *ast.ParameterDeclaration {
	start := p.pos
	attrs := p.parseAttributeSpecifierSeq()
	specifiers, _ := p.parseDeclarationSpecifiers()

	if p.atPunct(",") || p.atPunct(")") || p.atPunct("...") {
		return finish(&ast.ParameterDeclaration{Attributes: attrs, Specifiers: specifiers}, p.spanFrom(start))
	}

	if p.declaratorLooksAbstract() {
		abstract := p.parseAbstractDeclarator()
		return finish(&ast.ParameterDeclaration{Attributes: attrs, Specifiers: specifiers, Abstract: abstract}, p.spanFrom(start))
	}

	decl := p.parseDeclarator()
	return finish(&ast.ParameterDeclaration{Attributes: attrs, Specifiers: specifiers, Declarator: decl}, p.spanFrom(start))
}

// declaratorLooksAbstract reports whether the upcoming declarator has no
// identifier: true when the next token opens a derivation (`*`, `(`,
// `[`) without an identifier ever appearing before the parameter ends.
// Since concrete and abstract declarators share every production except
// the identifier itself, this just scans forward for an Identifier token
// before the parameter's terminating `,`/`)`, respecting bracket nesting.
func (p *parser) declaratorLooksAbstract() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.Kind == token.Identifier {
			return false
		}
		if t.Kind == token.Punctuator {
			switch t.Text {
			case "(", "[":
				depth++
			case ")", "]":
				if depth == 0 {
					return true
				}
				depth--
			case ",":
				if depth == 0 {
					return true
				}
			}
		}
	}
	return true
}

// parseAbstractDeclarator parses 6.7.7: a declarator with no identifier,
// used in type names and unnamed parameters.
func (p *parser) parseAbstractDeclarator() ast.AbstractDeclarator {
	start := p.pos
	if p.atPunct("*") || p.atPunct("^") {
		ptr := p.parsePointer()
		var inner ast.AbstractDeclarator
		if p.atPunct("(") || p.atPunct("[") {
			inner = p.parseAbstractDeclarator()
		}
		return finish(&ast.AbstractPointerDeclarator{Ptr: ptr, Inner: inner}, p.spanFrom(start))
	}
	return p.parseAbstractDirectDeclarator()
}

func (p *parser) parseAbstractDirectDeclarator() ast.AbstractDeclarator {
	start := p.pos
	var base ast.AbstractDeclarator

	if p.atPunct("(") && !p.looksLikeAbstractFunctionParamsAhead() && p.startsAbstractDeclaratorInsideParen() {
		p.advance()
		base = p.parseAbstractDeclarator()
		p.expectPunct(")")
		base = finish(&ast.AbstractParenDeclarator{Inner: base}, p.spanFrom(start))
	}

	for {
		switch {
		case p.atPunct("["):
			p.advance()
			size := p.parseArraySize()
			p.expectPunct("]")
			attrs := p.parseAttributeSpecifierSeq()
			base = finish(&ast.AbstractArrayDeclarator{BaseDeclarator: base, Attributes: attrs, Size: size}, p.spanFrom(start))
		case p.atPunct("("):
			p.advance()
			params := p.parseParameterTypeList()
			p.expectPunct(")")
			attrs := p.parseAttributeSpecifierSeq()
			base = finish(&ast.AbstractFunctionDeclarator{BaseDeclarator: base, Attributes: attrs, Params: params}, p.spanFrom(start))
		default:
			return base
		}
	}
}

// startsAbstractDeclaratorInsideParen disambiguates a parenthesized
// sub-declarator (`(*)[3]`) from the start of this declarator's own
// parameter list (`(int)`, `(void)`): the former's `(` is followed by
// `*`, `^`, `(`, or `[`.
func (p *parser) startsAbstractDeclaratorInsideParen() bool {
	t := p.peek(1)
	return t.IsPunctuator("*") || t.IsPunctuator("^") || t.IsPunctuator("(") || t.IsPunctuator("[")
}

// parseTypeName parses 6.7.7's type-name: a specifier-qualifier-list
// optionally followed by an abstract declarator.
func (p *parser) parseTypeName() ast.TypeName {
	start := p.pos
	if !p.startsTypeSpecifierQualifier() {
		p.errf(p.cur().Span, "expected type name, got %s", p.cur())
		return finish(&ast.ErrorTypeName{}, p.spanFrom(start))
	}

	sq := p.parseSpecifierQualifierList()

	var abstract ast.AbstractDeclarator
	if p.atPunct("*") || p.atPunct("^") || p.atPunct("(") || p.atPunct("[") {
		abstract = p.parseAbstractDeclarator()
	}

	return finish(&ast.TypeNameNode{Specifiers: sq, Abstract: abstract}, p.spanFrom(start))
}

// --- Initializers -----------------------------------------------------

func (p *parser) parseInitializer() ast.Initializer {
	start := p.pos
	if p.atPunct("{") {
		return p.parseBracedInitializer()
	}
	expr := p.parseAssignmentExpression()
	return finish(&ast.ExprInitializer{Expr: expr}, p.spanFrom(start))
}

func (p *parser) parseBracedInitializer() *ast.BracedInitializerNode {
	start := p.pos
	p.expectPunct("{")

	var items []*ast.DesignatedInitializerNode
	for !p.atPunct("}") && !p.atEOF() {
		items = append(items, p.parseDesignatedInitializer())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("}")

	return finish(&ast.BracedInitializerNode{Items: items}, p.spanFrom(start))
}

func (p *parser) parseDesignatedInitializer() *ast.DesignatedInitializerNode {
	start := p.pos

	var designators []ast.Designator
	for p.atPunct("[") || p.atPunct(".") {
		designators = append(designators, p.parseDesignator())
	}
	if len(designators) > 0 {
		p.expectPunct("=")
	}

	init := p.parseInitializer()
	return finish(&ast.DesignatedInitializerNode{Designators: designators, Init: init}, p.spanFrom(start))
}

// parseDesignator parses one designator, including the non-standard GNU
// range-designator extension `[lo ... hi]` (spec §4.D algorithmic notes).
func (p *parser) parseDesignator() ast.Designator {
	start := p.pos

	if p.eatPunct(".") {
		name := p.expectIdentifierText()
		return finish(&ast.MemberDesignator{Name: name}, p.spanFrom(start))
	}

	p.expectPunct("[")
	low := p.parseConditionalExpression()

	if p.eatPunct("...") {
		p.warnf(p.spanFrom(start), "range designator is a non-standard extension")
		high := p.parseConditionalExpression()
		p.expectPunct("]")
		return finish(&ast.RangeDesignator{Low: low, High: high}, p.spanFrom(start))
	}

	p.expectPunct("]")
	return finish(&ast.ArrayDesignator{Index: low}, p.spanFrom(start))
}
