package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/token"
)

// parsePattern parses the full pattern grammar ("Pattern"),
// starting at the `or`-combinator level and descending through `and`,
// then unary `not`, then the primary pattern forms — mirroring the
// expression grammar's precedence-climbing shape.
func (p *Parser) parsePattern() (ast.Pattern, bool) {
	return p.parsePatternOr()
}

func (p *Parser) parsePatternOr() (ast.Pattern, bool) {
	left, ok := p.parsePatternAnd()
	if !ok {
		return nil, false
	}
	for p.keywordText("or") {
		start := left.Span()
		p.advance()
		right, ok := p.parsePatternAnd()
		if !ok {
			return nil, false
		}
		left = &ast.LogicalPattern{Op: ast.PatternOr, Left: left, Right: right, NodeSpan: start.Cover(right.Span())}
	}
	return left, true
}

func (p *Parser) parsePatternAnd() (ast.Pattern, bool) {
	left, ok := p.parsePatternUnary()
	if !ok {
		return nil, false
	}
	for p.keywordText("and") {
		start := left.Span()
		p.advance()
		right, ok := p.parsePatternUnary()
		if !ok {
			return nil, false
		}
		left = &ast.LogicalPattern{Op: ast.PatternAnd, Left: left, Right: right, NodeSpan: start.Cover(right.Span())}
	}
	return left, true
}

func (p *Parser) parsePatternUnary() (ast.Pattern, bool) {
	if p.keywordText("not") {
		start := p.advance()
		inner, ok := p.parsePatternUnary()
		if !ok {
			return nil, false
		}
		return &ast.NotPattern{Inner: inner, NodeSpan: spanTok(start).Cover(inner.Span())}, true
	}
	return p.parsePatternPrimary()
}

func (p *Parser) parsePatternPrimary() (ast.Pattern, bool) {
	tok := p.curTok()

	if tok.Type == token.IDENT && tok.Literal == "_" {
		p.advance()
		return &ast.DiscardPattern{NodeSpan: spanTok(tok)}, true
	}

	if p.keywordText("var") {
		start := p.advance()
		name, ok := p.parseIdentifier()
		if !ok {
			return nil, false
		}
		return &ast.VarPattern{Name: name, NodeSpan: spanTok(start).Cover(name.NodeSpan)}, true
	}

	if tok.Type == token.LPAREN {
		return p.parsePositionalOrParenthesizedPattern()
	}

	if tok.Type == token.LT || tok.Type == token.LE || tok.Type == token.GT || tok.Type == token.GE {
		p.advance()
		op := map[token.Type]ast.RelationalOp{
			token.LT: ast.RelLt, token.GT: ast.RelGt, token.LE: ast.RelLe, token.GE: ast.RelGe,
		}[tok.Type]
		val, ok := p.parseUnaryExpr()
		if !ok {
			return nil, false
		}
		return &ast.RelationalPattern{Op: op, Value: val, NodeSpan: spanTok(tok).Cover(val.Span())}, true
	}

	// Either a type/declaration/recursive pattern (`Type name`, `Type {
	//... }`) or a bare constant expression pattern. Try the type route
	// first; if no type-shaped token starts here, fall back to a constant.
	if startsType(tok) {
		typ, ok := p.parseType()
		if ok {
			return p.parseAfterPatternType(typ)
		}
	}
	if tok.Type == token.LBRACE {
		return p.parseRecursivePatternBody(nil)
	}

	val, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}
	return &ast.ConstantPattern{Value: val, NodeSpan: val.Span()}, true
}

func startsType(t token.Token) bool {
	if t.Type == token.IDENT {
		return true
	}
	_, isPrim := primitiveKeywords[t.Type]
	return isPrim
}

// parseAfterPatternType decides, having already consumed a type, whether
// this is a recursive pattern (`Type {... }`), a declaration pattern
// (`Type name`), or a bare type-test (`Type`).
func (p *Parser) parseAfterPatternType(typ ast.Type) (ast.Pattern, bool) {
	if p.at(token.LBRACE) {
		return p.parseRecursivePatternBody(typ)
	}
	if p.at(token.IDENT) {
		name, _ := p.parseIdentifier()
		return &ast.DeclarationPattern{Type: typ, Name: name, NodeSpan: typ.Span().Cover(name.NodeSpan)}, true
	}
	return &ast.DeclarationPattern{Type: typ, NodeSpan: typ.Span()}, true
}

func (p *Parser) parseRecursivePatternBody(typ ast.Type) (ast.Pattern, bool) {
	start := p.advance() // `{`
	var props []ast.PropertySubpattern
	for !p.at(token.RBRACE) && !p.atEOF() {
		name, ok := p.parseIdentifier()
		if !ok {
			break
		}
		if _, ok := p.expect(token.COLON); !ok {
			break
		}
		sub, ok := p.parsePattern()
		if !ok {
			break
		}
		props = append(props, ast.PropertySubpattern{Name: name, Pattern: sub})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, _ := p.expect(token.RBRACE)
	var name *ast.Identifier
	if p.at(token.IDENT) {
		name, _ = p.parseIdentifier()
	}
	sp := spanFrom(start, end.Pos.Offset+end.Length)
	if typ != nil {
		sp = typ.Span().Cover(sp)
	}
	if name != nil {
		sp = sp.Cover(name.NodeSpan)
	}
	return &ast.RecursivePattern{Type: typ, Properties: props, Name: name, NodeSpan: sp}, true
}

// parsePositionalOrParenthesizedPattern disambiguates `(pattern)` from
// `(pattern, pattern,...)`.
func (p *Parser) parsePositionalOrParenthesizedPattern() (ast.Pattern, bool) {
	start := p.advance() // `(`
	first, ok := p.parsePattern()
	if !ok {
		return nil, false
	}
	if p.at(token.COMMA) {
		elems := []ast.Pattern{first}
		for p.at(token.COMMA) {
			p.advance()
			next, ok := p.parsePattern()
			if !ok {
				break
			}
			elems = append(elems, next)
		}
		end, _ := p.expect(token.RPAREN)
		return &ast.PositionalPattern{Elements: elems, NodeSpan: spanFrom(start, end.Pos.Offset+end.Length)}, true
	}
	end, _ := p.expect(token.RPAREN)
	return &ast.ParenthesizedPattern{Inner: first, NodeSpan: spanFrom(start, end.Pos.Offset+end.Length)}, true
}
