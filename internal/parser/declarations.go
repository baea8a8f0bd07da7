// Declaration grammar: namespaces, the six
// type-declaration shapes, and the member dispatch that tells apart
// fields, properties, indexers, events, methods, constructors,
// destructors, operators, and nested types sharing a common
// attribute/modifier/type prefix.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/span"
	"github.com/cwbudde/csharpfront/internal/token"
)

// parseNamespaceDeclaration parses both the block form (`namespace N {
// decls }`) and the file-scoped form (`namespace N;`); in the
// file-scoped case every subsequent top-level declaration belongs to it,
// so the caller (ParseCompilationUnit) is responsible
// for routing the remainder of the file into Members.
func (p *Parser) parseNamespaceDeclaration() (*ast.NamespaceDeclaration, bool) {
	start := p.advance() // `namespace`
	name, ok := p.parseQualifiedName()
	if !ok {
		return nil, false
	}
	if p.at(token.SEMICOLON) {
		end := p.advance()
		return &ast.NamespaceDeclaration{Name: name, FileScoped: true, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	}
	if _, ok := p.expect(token.LBRACE); !ok {
		return nil, false
	}
	var members []ast.Declaration
	for !p.at(token.RBRACE) && !p.atEOF() {
		decl, ok := p.parseNamespaceMember()
		if !ok {
			p.synchronizeBrace(token.RBRACE)
			continue
		}
		members = append(members, decl)
	}
	end, _ := p.expect(token.RBRACE)
	return &ast.NamespaceDeclaration{Name: name, Members: members, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

// parseNamespaceMember parses one entry of a namespace body: a nested
// namespace, a using directive, or a type declaration.
func (p *Parser) parseNamespaceMember() (ast.Declaration, bool) {
	if p.at(token.NAMESPACE) {
		return p.parseNamespaceDeclaration()
	}
	if p.at(token.USING) {
		_, ok := p.parseUsingDirective()
		if !ok {
			return nil, false
		}
		// A using directive is not itself a member; re-enter to get the
		// actual declaration it precedes, or fail if none follows.
		return p.parseNamespaceMember()
	}
	return p.parseTypeDeclaration()
}

// parseUsingDirective parses one `[global] using [static] [alias =]
// name;` line.
func (p *Parser) parseUsingDirective() (*ast.UsingDirective, bool) {
	start := p.curTok()
	global := false
	if p.keywordText("global") {
		global = true
		p.advance()
	}
	if _, ok := p.expect(token.USING); !ok {
		return nil, false
	}
	static := false
	if p.at(token.STATIC) {
		static = true
		p.advance()
	}
	var alias *ast.Identifier
	if p.at(token.IDENT) && p.peekTok(1).Type == token.ASSIGN {
		alias, _ = p.parseIdentifier()
		p.advance() // `=`
	}
	name, ok := p.parseQualifiedName()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.SEMICOLON)

	kind := ast.UsingNamespace
	switch {
	case alias != nil && global:
		kind = ast.UsingGlobalAlias
	case alias != nil:
		kind = ast.UsingAlias
	case static && global:
		kind = ast.UsingGlobalStatic
	case static:
		kind = ast.UsingStatic
	case global:
		kind = ast.UsingGlobalNamespace
	}
	return &ast.UsingDirective{Kind: kind, Alias: alias, Name: name, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

var typeDeclKeywords = map[token.Type]ast.TypeDeclKind{
	token.CLASS: ast.TypeDeclClass,
	token.STRUCT: ast.TypeDeclStruct,
	token.INTERFACE: ast.TypeDeclInterface,
	token.ENUM: ast.TypeDeclEnum,
}

// parseTypeDeclaration parses one class/struct/interface/record/enum/
// delegate declaration, including its leading attributes and modifiers
// ("TypeDeclaration").
func (p *Parser) parseTypeDeclaration() (ast.Declaration, bool) {
	start := p.curTok()
	attrs := p.parseAttributeLists()
	mods := p.parseModifiers()

	// `delegate` has its own shape (`delegate ReturnType Name<T>(params);`)
	// that does not fit the `keyword Name<T>` prefix every other type
	// declaration shares, so it is special-cased before the name is read.
	if p.at(token.DELEGATE) {
		p.advance()
		return p.parseDelegateTail(start, attrs, mods)
	}

	isRecord := p.keywordText("record")
	if isRecord {
		p.advance()
	}

	kind, ok := typeDeclKeywords[p.curTok().Type]
	isStruct := false
	switch {
	case isRecord && p.at(token.STRUCT):
		p.advance()
		kind, ok, isStruct = ast.TypeDeclRecord, true, true
	case isRecord && p.at(token.CLASS):
		p.advance()
		kind, ok = ast.TypeDeclRecord, true
	case isRecord:
		kind, ok = ast.TypeDeclRecord, true
	case ok:
		p.advance()
	default:
		p.errorf(combinator.KindExpected, "expected a type declaration, found %s", p.curTok().Type.Name())
		return nil, false
	}

	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	typeParams := p.parseTypeParameterList()

	var positional []ast.RecordPositionalParameter
	if kind == ast.TypeDeclRecord && p.at(token.LPAREN) {
		params, ok := p.parseParameterList()
		if !ok {
			return nil, false
		}
		for _, pr := range params {
			positional = append(positional, ast.RecordPositionalParameter{Type: pr.Type, Name: pr.Name})
		}
	}

	var baseTypes []ast.Type
	if p.at(token.COLON) {
		p.advance()
		for {
			t, ok := p.parseType()
			if !ok {
				break
			}
			baseTypes = append(baseTypes, t)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	constraints := p.parseTypeParameterConstraints()

	if kind == ast.TypeDeclEnum {
		return p.parseEnumTail(start, attrs, mods, name, baseTypes)
	}

	if p.at(token.SEMICOLON) {
		// Record with only a primary constructor, no body.
		end := p.advance()
		return &ast.TypeDeclaration{
			Kind: kind, IsStruct: isStruct, Attributes: attrs, Modifiers: mods, Name: name,
			TypeParams: typeParams, Positional: positional, BaseTypes: baseTypes, Constraints: constraints,
			NodeSpan: spanTok(start).Cover(spanTok(end)),
		}, true
	}

	if _, ok := p.expect(token.LBRACE); !ok {
		return nil, false
	}
	var members []ast.MemberDeclaration
	for !p.at(token.RBRACE) && !p.atEOF() {
		m, ok := p.parseMember(name)
		if !ok {
			p.synchronizeBrace(token.RBRACE)
			continue
		}
		members = append(members, m)
	}
	end, _ := p.expect(token.RBRACE)
	return &ast.TypeDeclaration{
		Kind: kind, IsStruct: isStruct, Attributes: attrs, Modifiers: mods, Name: name,
		TypeParams: typeParams, Positional: positional, BaseTypes: baseTypes, Constraints: constraints,
		Members: members, NodeSpan: spanTok(start).Cover(spanTok(end)),
	}, true
}

// parseDelegateTail parses `ReturnType Name<T>(params) constraints?;`
// after the `delegate` keyword has already been consumed by the caller
// — C# delegates put the return type before the name, unlike every
// other type-declaration form, so they don't share the common prefix.
func (p *Parser) parseDelegateTail(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier) (ast.Declaration, bool) {
	returnType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	typeParams := p.parseTypeParameterList()
	params, ok := p.parseParameterList()
	if !ok {
		return nil, false
	}
	constraints := p.parseTypeParameterConstraints()
	end, _ := p.expect(token.SEMICOLON)
	return &ast.TypeDeclaration{
		Kind: ast.TypeDeclDelegate, Attributes: attrs, Modifiers: mods, Name: name,
		TypeParams: typeParams, Constraints: constraints,
		DelegateReturnType: returnType, DelegateParameters: params,
		NodeSpan: spanTok(start).Cover(spanTok(end)),
	}, true
}

func (p *Parser) parseEnumTail(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, name *ast.Identifier, baseTypes []ast.Type) (ast.Declaration, bool) {
	var baseType ast.Type
	if len(baseTypes) > 0 {
		baseType = baseTypes[0]
	}
	if _, ok := p.expect(token.LBRACE); !ok {
		return nil, false
	}
	var members []ast.EnumMember
	for !p.at(token.RBRACE) && !p.atEOF() {
		p.parseAttributeLists()
		memberName, ok := p.parseIdentifier()
		if !ok {
			break
		}
		var val ast.Expression
		if p.at(token.ASSIGN) {
			p.advance()
			val, _ = p.parseExpression()
		}
		members = append(members, ast.EnumMember{Name: memberName, Value: val})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, _ := p.expect(token.RBRACE)
	return &ast.TypeDeclaration{
		Kind: ast.TypeDeclEnum, Attributes: attrs, Modifiers: mods, Name: name,
		EnumBaseType: baseType, EnumMembers: members, NodeSpan: spanTok(start).Cover(spanTok(end)),
	}, true
}

// parseMember implements the member-dispatch lookahead: given a
// leading run of attributes/modifiers and (usually) a type, decide
// between a destructor, a conversion/ordinary operator, an indexer, a
// property, a field, an event, a nested type, or a method/constructor —
// several of which share the exact same `Type Name` prefix and are only
// distinguished by what follows.
func (p *Parser) parseMember(enclosing *ast.Identifier) (ast.MemberDeclaration, bool) {
	start := p.curTok()
	attrs := p.parseAttributeLists()
	mods := p.parseModifiers()

	if p.at(token.TILDE) {
		return p.parseDestructor(start, attrs, mods)
	}

	if p.at(token.IMPLICIT) || p.at(token.EXPLICIT) {
		return p.parseConversionOperator(start, attrs, mods)
	}

	if isTypeDeclStart(p.curTok()) {
		return p.parseTypeDeclaration()
	}

	if p.at(token.EVENT) {
		return p.parseEventDeclaration(start, attrs, mods)
	}

	// Constructor: `Name(params)` with no return type before it. The name
	// is not compared with the enclosing type's name.
	if p.at(token.IDENT) && p.peekTok(1).Type == token.LPAREN {
		return p.parseConstructor(start, attrs, mods)
	}

	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}

	if p.at(token.OPERATOR) {
		return p.parseOperatorOverload(start, attrs, mods, typ)
	}

	if p.at(token.THIS) {
		return p.parseIndexer(start, attrs, mods, typ)
	}

	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}

	switch {
	case p.at(token.LBRACE):
		return p.parsePropertyBody(start, attrs, mods, typ, name)
	case p.at(token.ARROW):
		return p.parsePropertyExprBody(start, attrs, mods, typ, name)
	case p.at(token.LT) || p.at(token.LPAREN):
		return p.parseMethodDeclaration(start, attrs, mods, typ, name)
	default:
		return p.parseFieldDeclaration(start, attrs, mods, typ, name)
	}
}

func isTypeDeclStart(t token.Token) bool {
	if _, ok := typeDeclKeywords[t.Type]; ok {
		return true
	}
	return t.Type == token.IDENT && t.Literal == "record"
}

func (p *Parser) parseDestructor(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier) (ast.MemberDeclaration, bool) {
	p.advance() // `~`
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}
	return &ast.MethodDeclaration{
		Kind: ast.MethodDestructor, Attributes: attrs, Modifiers: mods, Name: name,
		Body: body, NodeSpan: spanTok(start).Cover(body.NodeSpan),
	}, true
}

func (p *Parser) parseConstructor(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier) (ast.MemberDeclaration, bool) {
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil, false
	}
	initKind := ast.CtorInitNone
	var initArgs []ast.Argument
	if p.at(token.COLON) {
		p.advance()
		switch {
		case p.at(token.BASE):
			initKind = ast.CtorInitBase
		case p.at(token.THIS):
			initKind = ast.CtorInitThis
		}
		p.advance()
		initArgs, _, _ = p.parseArgumentList()
	}
	var body *ast.BlockStatement
	var exprBody ast.Expression
	endSpan := name.NodeSpan
	switch {
	case p.at(token.LBRACE):
		body, ok = p.parseBlockStatement()
		if !ok {
			return nil, false
		}
		endSpan = body.NodeSpan
	case p.at(token.ARROW):
		p.advance()
		exprBody, ok = p.parseExpression()
		if !ok {
			return nil, false
		}
		end, _ := p.expect(token.SEMICOLON)
		endSpan = exprBody.Span().Cover(spanTok(end))
	default:
		end, _ := p.expect(token.SEMICOLON)
		endSpan = spanTok(end)
	}
	return &ast.MethodDeclaration{
		Kind: ast.MethodConstructor, Attributes: attrs, Modifiers: mods, Name: name, Parameters: params,
		CtorInitKind: initKind, CtorInitArgs: initArgs, Body: body, ExprBody: exprBody,
		NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

var overloadableOperators = map[token.Type]string{
	token.PLUS: "+", token.MINUS: "-", token.STAR: "*", token.SLASH: "/",
	token.PERCENT: "%", token.AMP: "&", token.PIPE: "|", token.CARET: "^",
	token.BANG: "!", token.TILDE: "~", token.PLUS_PLUS: "++", token.MINUS_MINUS: "--",
	token.EQ: "==", token.NOT_EQ: "!=", token.LT: "<", token.GT: ">",
	token.LE: "<=", token.GE: ">=", token.LSHIFT: "<<", token.RSHIFT: ">>",
	token.TRUE: "true", token.FALSE: "false",
}

func (p *Parser) parseOperatorOverload(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, returnType ast.Type) (ast.MemberDeclaration, bool) {
	p.advance() // `operator`
	sym, ok := overloadableOperators[p.curTok().Type]
	if !ok {
		p.errorf(combinator.KindExpected, "expected an overloadable operator symbol, found %s", p.curTok().Type.Name())
		return nil, false
	}
	p.advance()
	return p.parseOperatorTail(start, attrs, mods, ast.OperatorOverload, sym, returnType)
}

func (p *Parser) parseConversionOperator(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier) (ast.MemberDeclaration, bool) {
	kind := ast.OperatorConversionImplicit
	if p.at(token.EXPLICIT) {
		kind = ast.OperatorConversionExplicit
	}
	p.advance()
	if _, ok := p.expect(token.OPERATOR); !ok {
		return nil, false
	}
	target, ok := p.parseType()
	if !ok {
		return nil, false
	}
	return p.parseOperatorTail(start, attrs, mods, kind, "", target)
}

func (p *Parser) parseOperatorTail(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, kind ast.OperatorKind, sym string, target ast.Type) (ast.MemberDeclaration, bool) {
	params, ok := p.parseParameterList()
	if !ok {
		return nil, false
	}
	var body *ast.BlockStatement
	var exprBody ast.Expression
	endSpan := target.Span()
	switch {
	case p.at(token.LBRACE):
		body, ok = p.parseBlockStatement()
		if !ok {
			return nil, false
		}
		endSpan = body.NodeSpan
	case p.at(token.ARROW):
		p.advance()
		exprBody, ok = p.parseExpression()
		if !ok {
			return nil, false
		}
		end, _ := p.expect(token.SEMICOLON)
		endSpan = exprBody.Span().Cover(spanTok(end))
	default:
		end, _ := p.expect(token.SEMICOLON)
		endSpan = spanTok(end)
	}
	return &ast.OperatorDeclaration{
		Attributes: attrs, Modifiers: mods, Kind: kind, Symbol: sym, TargetType: target,
		Parameters: params, Body: body, ExprBody: exprBody, NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

func (p *Parser) parseIndexer(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, typ ast.Type) (ast.MemberDeclaration, bool) {
	p.advance() // `this`
	if _, ok := p.expect(token.LBRACKET); !ok {
		return nil, false
	}
	var params []*ast.Parameter
	for !p.at(token.RBRACKET) && !p.atEOF() {
		param, ok := p.parseParameter()
		if !ok {
			break
		}
		params = append(params, param)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, _ := p.expect(token.RBRACKET)
	accessors, endSpan, ok := p.parseAccessorBlock(spanTok(end))
	if !ok {
		return nil, false
	}
	return &ast.IndexerDeclaration{
		Attributes: attrs, Modifiers: mods, Type: typ, Parameters: params, Accessors: accessors,
		NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

func (p *Parser) parseEventDeclaration(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier) (ast.MemberDeclaration, bool) {
	p.advance() // `event`
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	if p.at(token.LBRACE) {
		accessors, endSpan, ok := p.parseAccessorBlock(name.NodeSpan)
		if !ok {
			return nil, false
		}
		return &ast.EventDeclaration{Attributes: attrs, Modifiers: mods, Type: typ, Accessors: accessors, NodeSpan: spanTok(start).Cover(endSpan)}, true
	}
	var decls []ast.VariableDeclarator
	d, ok := p.parseDeclaratorTail(name)
	if !ok {
		return nil, false
	}
	decls = append(decls, d)
	for p.at(token.COMMA) {
		p.advance()
		n, ok := p.parseIdentifier()
		if !ok {
			break
		}
		d, ok := p.parseDeclaratorTail(n)
		if !ok {
			break
		}
		decls = append(decls, d)
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.EventDeclaration{Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

// parseAccessorBlock parses `{ [mods] get|set|init|add|remove [body|;]... }`
// shared by indexers and accessor-form events; fallback is unused but
// kept so call sites read the same as parsePropertyBody's.
func (p *Parser) parseAccessorBlock(fallback span.Span) ([]ast.Accessor, span.Span, bool) {
	return p.parseAccessors()
}

func (p *Parser) parsePropertyBody(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, typ ast.Type, name *ast.Identifier) (ast.MemberDeclaration, bool) {
	accessors, endSpan, ok := p.parseAccessors()
	if !ok {
		return nil, false
	}
	var init ast.Expression
	if p.at(token.ASSIGN) {
		p.advance()
		init, _ = p.parseExpression()
		e, _ := p.expect(token.SEMICOLON)
		endSpan = spanTok(e)
	}
	return &ast.PropertyDeclaration{
		Attributes: attrs, Modifiers: mods, Type: typ, Name: name, Accessors: accessors, Initializer: init,
		NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

func (p *Parser) parsePropertyExprBody(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, typ ast.Type, name *ast.Identifier) (ast.MemberDeclaration, bool) {
	p.advance() // `=>`
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.PropertyDeclaration{
		Attributes: attrs, Modifiers: mods, Type: typ, Name: name, ExprBody: expr,
		NodeSpan: spanTok(start).Cover(spanTok(end)),
	}, true
}

// parseAccessors parses the `{... }` accessor list shared by
// properties, indexers, and accessor-form events, returning the
// accessors and the span of the closing brace.
func (p *Parser) parseAccessors() ([]ast.Accessor, span.Span, bool) {
	if _, ok := p.expect(token.LBRACE); !ok {
		return nil, span.Span{}, false
	}
	var accessors []ast.Accessor
	for !p.at(token.RBRACE) && !p.atEOF() {
		p.parseAttributeLists()
		accMods := p.parseModifiers()
		kind, ok := accessorKindFor(p.curTok())
		if !ok {
			break
		}
		p.advance()
		var body ast.Node
		switch {
		case p.at(token.LBRACE):
			block, ok := p.parseBlockStatement()
			if !ok {
				break
			}
			body = block
		case p.at(token.ARROW):
			p.advance()
			expr, ok := p.parseExpression()
			if !ok {
				break
			}
			p.expect(token.SEMICOLON)
			body = expr
		default:
			p.expect(token.SEMICOLON)
		}
		accessors = append(accessors, ast.Accessor{Modifiers: accMods, Kind: kind, Body: body})
	}
	end, _ := p.expect(token.RBRACE)
	return accessors, spanTok(end), true
}

func accessorKindFor(t token.Token) (ast.AccessorKind, bool) {
	if t.Type != token.IDENT {
		return 0, false
	}
	switch t.Literal {
	case "get":
		return ast.AccessorGet, true
	case "set":
		return ast.AccessorSet, true
	case "init":
		return ast.AccessorInit, true
	case "add":
		return ast.AccessorAdd, true
	case "remove":
		return ast.AccessorRemove, true
	default:
		return 0, false
	}
}

func (p *Parser) parseMethodDeclaration(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, returnType ast.Type, name *ast.Identifier) (ast.MemberDeclaration, bool) {
	typeParams := p.parseTypeParameterList()
	params, ok := p.parseParameterList()
	if !ok {
		return nil, false
	}
	constraints := p.parseTypeParameterConstraints()
	var body *ast.BlockStatement
	var exprBody ast.Expression
	endSpan := name.NodeSpan
	switch {
	case p.at(token.LBRACE):
		body, ok = p.parseBlockStatement()
		if !ok {
			return nil, false
		}
		endSpan = body.NodeSpan
	case p.at(token.ARROW):
		p.advance()
		exprBody, ok = p.parseExpression()
		if !ok {
			return nil, false
		}
		end, _ := p.expect(token.SEMICOLON)
		endSpan = exprBody.Span().Cover(spanTok(end))
	default:
		end, _ := p.expect(token.SEMICOLON)
		endSpan = spanTok(end)
	}
	return &ast.MethodDeclaration{
		Kind: ast.MethodOrdinary, Attributes: attrs, Modifiers: mods, ReturnType: returnType, Name: name,
		TypeParams: typeParams, Parameters: params, Constraints: constraints, Body: body, ExprBody: exprBody,
		NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

func (p *Parser) parseFieldDeclaration(start token.Token, attrs []*ast.Attribute, mods []ast.Modifier, typ ast.Type, first *ast.Identifier) (ast.MemberDeclaration, bool) {
	var decls []ast.VariableDeclarator
	d, ok := p.parseDeclaratorTail(first)
	if !ok {
		return nil, false
	}
	decls = append(decls, d)
	for p.at(token.COMMA) {
		p.advance()
		n, ok := p.parseIdentifier()
		if !ok {
			break
		}
		d, ok := p.parseDeclaratorTail(n)
		if !ok {
			break
		}
		decls = append(decls, d)
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.FieldDeclaration{
		Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls,
		NodeSpan: spanTok(start).Cover(spanTok(end)),
	}, true
}
