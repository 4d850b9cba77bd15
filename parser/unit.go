package parser

import "github.com/c23fe/c23/ast"

// parseExternalDeclaration parses one top-level item (6.9): a function
// definition or an ordinary declaration. Both start identically
// (attributes, declaration-specifiers, a declarator), so this parses
// that common prefix once and only then decides which production it
// landed in, by checking what follows the first declarator.
func (p *parser) parseExternalDeclaration() ast.ExternalDeclaration {
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

	firstStart := p.pos
	first := p.parseDeclarator()
	if name, ok := ast.DeclaratorName(first); ok {
		if p.state.IsTypedefNameInCurrentScope(name) {
			p.errf(first.Span(), "redeclaration of %q as a variable (previously declared as a typedef name)", name)
		}
		p.state.AddOrdinaryName(name)
	}

	if fd, ok := asFunctionDeclarator(first); ok && (p.atPunct("{") || p.startsDeclarationSpecifier()) {
		mergeKRParameters(p, fd)
		body := p.parseCompoundStatement()
		return finish(&ast.FunctionDefinition{
			Attributes: leadingAttrs,
			Specifiers: specifiers,
			Declarator: first,
			Body:       body,
		}, p.spanFrom(start))
	}

	var firstInit ast.Initializer
	if p.eatPunct("=") {
		firstInit = p.parseInitializer()
	}
	inits := []*ast.InitDeclarator{finish(&ast.InitDeclarator{Declarator: first, Initializer: firstInit}, p.spanFrom(firstStart))}

	for p.eatPunct(",") {
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
	}
	p.expectPunct(";")

	return finish(&ast.NormalDecl{Attributes: leadingAttrs, Specifiers: specifiers, Declarators: inits}, p.spanFrom(start))
}

// asFunctionDeclarator reports whether d's outermost derivation (after
// unwrapping the pointer/paren layers a return-type pointer or
// parenthesization can add) is a function declarator, which is what
// distinguishes a function-definition's declarator from an ordinary one.
func asFunctionDeclarator(d ast.Declarator) (*ast.FunctionDeclaratorNode, bool) {
	switch n := d.(type) {
	case *ast.FunctionDeclaratorNode:
		return n, true
	case *ast.PointerDeclaratorNode:
		return asFunctionDeclarator(n.Inner)
	case *ast.ParenDeclarator:
		return asFunctionDeclarator(n.Inner)
	default:
		return nil, false
	}
}

// mergeKRParameters converts a K&R identifier-list parameter list into
// prototype form by consuming the old-style declaration-list between the
// closing `)` and the function body and matching each declared name back
// to its parameter slot (spec's K&R-as-prototype supplement, mirrored in
// FunctionDefinition's doc comment in ast/unit.go). A no-op when the
// parameter list was already a typed prototype.
func mergeKRParameters(p *parser, fd *ast.FunctionDeclaratorNode) {
	if fd.Params == nil || len(fd.Params.Parameters) == 0 {
		return
	}

	needsMerge := false
	for _, param := range fd.Params.Parameters {
		if param.Specifiers == nil {
			needsMerge = true
			break
		}
	}
	if !needsMerge {
		return
	}

	byName := make(map[string]*ast.ParameterDeclaration)
	for !p.atPunct("{") && !p.atEOF() {
		declStart := p.pos
		specifiers, _ := p.parseDeclarationSpecifiers()
		for {
			d := p.parseDeclarator()
			if name, ok := ast.DeclaratorName(d); ok {
				byName[name] = finish(&ast.ParameterDeclaration{Specifiers: specifiers, Declarator: d}, p.spanFrom(declStart))
			}
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectPunct(";")
	}

	for i, param := range fd.Params.Parameters {
		name, _ := ast.DeclaratorName(param.Declarator)
		if real, ok := byName[name]; ok {
			fd.Params.Parameters[i] = real
		}
	}
}
