package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/span"
	"github.com/cwbudde/csharpfront/internal/token"
)

// parseNewExpr parses the `new` forms `new T(args){init}`, `new
// T[n]{init}` and the implicitly-typed array form `new[] {...}`. The
// anonymous-object form `new {...}` is not parsed: a `{` directly after
// `new` is reported as a missing type.
func (p *Parser) parseNewExpr() (ast.Expression, bool) {
	start := p.advance() // `new`

	if p.at(token.LBRACKET) {
		// `new[] {... }` — implicit array creation.
		p.advance()
		rank := 1
		for p.at(token.COMMA) {
			p.advance()
			rank++
		}
		if _, ok := p.expect(token.RBRACKET); !ok {
			return nil, false
		}
		elemType := &ast.ImplicitArrayType{Rank: rank, NodeSpan: spanTok(start)}
		init, end, ok := p.parseArrayInitializer()
		if !ok {
			return nil, false
		}
		return &ast.ArrayCreationExpr{Type: elemType, Initializer: init, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	}

	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}

	if p.at(token.LBRACKET) {
		return p.parseArrayCreationWithDims(start, typ)
	}

	if arrType, isArr := typ.(*ast.ArrayType); isArr && p.at(token.LBRACE) {
		init, end, ok := p.parseArrayInitializer()
		if !ok {
			return nil, false
		}
		return &ast.ArrayCreationExpr{Type: arrType.Element, Initializer: init, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	}

	var args []ast.Argument
	if p.at(token.LPAREN) {
		var endTok token.Token
		args, endTok, ok = p.parseArgumentList()
		if !ok {
			return nil, false
		}
		_ = endTok
	}
	var init []ast.InitializerEntry
	endSpan := typ.Span()
	if p.at(token.LBRACE) {
		var ok2 bool
		init, endSpan, ok2 = p.parseObjectInitializer()
		if !ok2 {
			return nil, false
		}
	}
	return &ast.ObjectCreationExpr{Type: typ, Arguments: args, Initializer: init, NodeSpan: spanTok(start).Cover(endSpan)}, true
}

// parseArrayCreationWithDims handles `new T[expr, expr] {...}` — the
// element type has already been parsed without its bracket suffix
// because a `[` followed by an expression (not directly `]` or commas
// then `]`) is not recognised as a type-suffix by parseTypeSuffixes.
func (p *Parser) parseArrayCreationWithDims(start token.Token, elemType ast.Type) (ast.Expression, bool) {
	p.advance() // `[`
	var dims []ast.Expression
	for !p.at(token.RBRACKET) && !p.atEOF() {
		d, ok := p.parseExpression()
		if !ok {
			break
		}
		dims = append(dims, d)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, _ := p.expect(token.RBRACKET)
	endSpan := spanTok(end)
	var init []ast.Expression
	if p.at(token.LBRACE) {
		var initEnd token.Token
		var ok bool
		init, initEnd, ok = p.parseArrayInitializer()
		if !ok {
			return nil, false
		}
		endSpan = spanTok(initEnd)
	}
	return &ast.ArrayCreationExpr{Type: elemType, Dimensions: dims, Initializer: init, NodeSpan: spanTok(start).Cover(endSpan)}, true
}

func (p *Parser) parseArrayInitializer() ([]ast.Expression, token.Token, bool) {
	p.advance() // `{`
	var elems []ast.Expression
	for !p.at(token.RBRACE) && !p.atEOF() {
		e, ok := p.parseExpression()
		if !ok {
			break
		}
		elems = append(elems, e)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, ok := p.expect(token.RBRACE)
	return elems, end, ok
}

// parseObjectInitializer parses `{ member = expr,... }` (object init)
// or `{ expr, expr,... }` (collection init) — the two are
// distinguished per-entry by whether an identifier is followed by `=`.
func (p *Parser) parseObjectInitializer() ([]ast.InitializerEntry, span.Span, bool) {
	start := p.advance() // `{`
	var entries []ast.InitializerEntry
	for !p.at(token.RBRACE) && !p.atEOF() {
		var name *ast.Identifier
		if p.at(token.IDENT) && p.peekTok(1).Type == token.ASSIGN {
			name, _ = p.parseIdentifier()
			p.advance() // `=`
		}
		val, ok := p.parseExpression()
		if !ok {
			break
		}
		entries = append(entries, ast.InitializerEntry{Name: name, Value: val})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, ok := p.expect(token.RBRACE)
	return entries, spanTok(start).Cover(spanTok(end)), ok
}
