// Lambda and anonymous-method expressions: both forms require a
// speculative parse with rollback, since `(` also introduces a
// parenthesized/tuple/cast expression and a bare identifier also
// introduces a plain variable reference.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/token"
)

// tryParseLambda attempts the three lambda-introducing shapes: `async`
// prefix, `(params) =>`, and `ident =>`. It rolls back cleanly on any
// mismatch so the caller can fall through to ordinary primary parsing.
func (p *Parser) tryParseLambda() (ast.Expression, bool) {
	save := p.cur
	saveErrs := len(p.errors)

	async := false
	start := p.curTok()
	if p.keywordText("async") && (p.peekTok(1).Type == token.LPAREN || (p.peekTok(1).Type == token.IDENT && p.peekTok(2).Type == token.ARROW)) {
		async = true
		p.advance()
	}

	var params []ast.LambdaParameter
	switch {
	case p.at(token.IDENT) && p.peekTok(1).Type == token.ARROW:
		name, _ := p.parseIdentifier()
		params = []ast.LambdaParameter{{Name: name}}
	case p.at(token.LPAREN):
		ps, ok := p.tryParseLambdaParamList()
		if !ok {
			p.cur = save
			p.errors = p.errors[:saveErrs]
			return nil, false
		}
		params = ps
	default:
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}

	if !p.at(token.ARROW) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	p.advance() // `=>`, commit — no more rollback past this point

	body, ok := p.parseLambdaBody()
	if !ok {
		return nil, false
	}
	return &ast.LambdaExpr{Async: async, Parameters: params, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

// tryParseLambdaParamList parses `(params)` where each parameter is
// either a bare name (`x`) or a typed `Type x`, optionally with a
// ref/out/in modifier. Returns false (without rollback of its own — the
// caller owns the snapshot) if the parenthesized group does not look
// like a parameter list at all.
func (p *Parser) tryParseLambdaParamList() ([]ast.LambdaParameter, bool) {
	p.advance() // `(`
	var params []ast.LambdaParameter
	for !p.at(token.RPAREN) && !p.atEOF() {
		param, ok := p.parseLambdaParameter()
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseLambdaParameter() (ast.LambdaParameter, bool) {
	// Skip an optional ref/out/in modifier — irrelevant to disambiguation.
	switch p.curTok().Type {
	case token.REF, token.OUT, token.IN:
		p.advance()
	}
	_, keywordType := primitiveKeywords[p.curTok().Type]
	if !p.at(token.IDENT) && !keywordType {
		return ast.LambdaParameter{}, false
	}
	// A keyword type (`int x`, `string[] s`) or two identifiers in a row
	// means `Type name`; a single identifier followed by `,`/`)` means an
	// implicitly-typed parameter. A type that starts with an identifier
	// and continues with `<`, `[`, `?` or `.` is not recognised here.
	if keywordType || p.peekTok(1).Type == token.IDENT {
		typ, ok := p.parseType()
		if !ok {
			return ast.LambdaParameter{}, false
		}
		name, ok := p.parseIdentifier()
		if !ok {
			return ast.LambdaParameter{}, false
		}
		return ast.LambdaParameter{Name: name, Typ: typ}, true
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return ast.LambdaParameter{}, false
	}
	return ast.LambdaParameter{Name: name}, true
}

// parseLambdaBody parses either `{ block }` or a bare expression.
func (p *Parser) parseLambdaBody() (ast.Node, bool) {
	if p.at(token.LBRACE) {
		return p.parseBlockStatement()
	}
	return p.parseExpression()
}

// parseAnonymousMethod parses `delegate (params)? { body }`.
func (p *Parser) parseAnonymousMethod(tok token.Token) (ast.Expression, bool) {
	p.advance() // `delegate`
	var params []ast.LambdaParameter
	if p.at(token.LPAREN) {
		ps, ok := p.tryParseLambdaParamList()
		if !ok {
			return nil, false
		}
		params = ps
	}
	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}
	return &ast.AnonymousMethodExpr{Parameters: params, Body: body, NodeSpan: spanTok(tok).Cover(body.Span())}, true
}
