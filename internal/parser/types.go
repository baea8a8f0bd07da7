package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/token"
)

var primitiveKeywords = map[token.Type]ast.PrimitiveKind{
	token.BOOL: ast.PrimBool,
	token.BYTE: ast.PrimByte,
	token.SBYTE: ast.PrimSByte,
	token.SHORT: ast.PrimShort,
	token.USHORT: ast.PrimUShort,
	token.INT_KW: ast.PrimInt,
	token.UINT: ast.PrimUInt,
	token.LONG: ast.PrimLong,
	token.ULONG: ast.PrimULong,
	token.FLOAT_KW: ast.PrimFloat,
	token.DOUBLE: ast.PrimDouble,
	token.DECIMAL: ast.PrimDecimal,
	token.CHAR_KW: ast.PrimChar,
	token.OBJECT: ast.PrimObject,
	token.STRING_KW: ast.PrimString,
}

// parseType is the type grammar's entry point: a base type
// followed by zero or more left-associative suffixes (`?`, `[]`, `*`).
func (p *Parser) parseType() (ast.Type, bool) {
	base, ok := p.parseBaseType()
	if !ok {
		return nil, false
	}
	return p.parseTypeSuffixes(base), true
}

func (p *Parser) parseTypeSuffixes(base ast.Type) ast.Type {
	for {
		switch {
		case p.at(token.QUESTION):
			start := p.curTok()
			p.advance()
			base = &ast.NullableType{Inner: base, NodeSpan: base.Span().Cover(spanTok(start))}
		case p.at(token.LBRACKET) && p.isArraySuffix():
			startTok := p.advance()
			rank := 1
			for p.at(token.COMMA) {
				p.advance()
				rank++
			}
			end, _ := p.expect(token.RBRACKET)
			sp := base.Span().Cover(spanFrom(startTok, end.Pos.Offset+end.Length))
			base = &ast.ArrayType{Element: base, Rank: rank, NodeSpan: sp}
		case p.at(token.STAR):
			start := p.curTok()
			p.advance()
			base = &ast.PointerType{Inner: base, NodeSpan: base.Span().Cover(spanTok(start))}
		default:
			return base
		}
	}
}

// isArraySuffix looks past `[` for `]` or a run of commas then `]`,
// distinguishing an array-rank suffix from an indexer/attribute bracket
// that happens to follow a type in a different context.
func (p *Parser) isArraySuffix() bool {
	n := 1
	for p.peekTok(n).Type == token.COMMA {
		n++
	}
	return p.peekTok(n).Type == token.RBRACKET
}

func (p *Parser) parseBaseType() (ast.Type, bool) {
	tok := p.curTok()
	switch {
	case tok.Type == token.VOID:
		p.advance()
		return &ast.VoidType{NodeSpan: spanTok(tok)}, true
	case tok.Type == token.IDENT && tok.Literal == "var":
		p.advance()
		return &ast.VarType{NodeSpan: spanTok(tok)}, true
	case tok.Type == token.IDENT && tok.Literal == "dynamic":
		p.advance()
		return &ast.DynamicType{NodeSpan: spanTok(tok)}, true
	case tok.Type == token.REF:
		p.advance()
		readOnly := false
		if p.at(token.READONLY) {
			p.advance()
			readOnly = true
		}
		inner, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.RefType{Inner: inner, ReadOnly: readOnly, NodeSpan: spanTok(tok).Cover(inner.Span())}, true
	case tok.Type == token.LPAREN:
		return p.parseTupleType()
	}
	if kind, ok := primitiveKeywords[tok.Type]; ok {
		p.advance()
		return &ast.PrimitiveType{Kind: kind, NodeSpan: spanTok(tok)}, true
	}
	if tok.Type == token.IDENT {
		return p.parseNamedType()
	}
	p.errorf(combinator.KindExpected, "expected a type, found %s", tok.Type.Name())
	return nil, false
}

// parseTupleType parses `(T1 n1, T2 n2,...)` — at least two elements
// per the C# grammar (a single parenthesized type is just a grouped
// type, which this core does not otherwise need to represent).
func (p *Parser) parseTupleType() (ast.Type, bool) {
	start := p.advance() // `(`
	var elems []*ast.TupleElementType
	for {
		elemType, ok := p.parseType()
		if !ok {
			return nil, false
		}
		var name *ast.Identifier
		elemSpan := elemType.Span()
		if p.at(token.IDENT) {
			name, _ = p.parseIdentifier()
			elemSpan = elemSpan.Cover(name.NodeSpan)
		}
		elems = append(elems, &ast.TupleElementType{Elem: elemType, Name: name, NodeSpan: elemSpan})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	endTok, _ := p.expect(token.RPAREN)
	if len(elems) < 2 {
		p.errorf(combinator.KindExpected, "expected at least two tuple elements")
		return nil, false
	}
	return &ast.TupleType{Elements: elems, NodeSpan: spanFrom(start, endTok.Pos.Offset+endTok.Length)}, true
}

// parseNamedType parses a qualified name, then decides — via the
// generic/less-than tie-break below — whether a following `<...>`
// is a generic argument list.
func (p *Parser) parseNamedType() (ast.Type, bool) {
	qn, ok := p.parseQualifiedName()
	if !ok {
		return nil, false
	}
	var base ast.Type
	if len(qn.Parts) == 1 {
		base = &ast.ReferenceType{Name: qn.Parts[0], NodeSpan: qn.NodeSpan}
	} else {
		base = &ast.QualifiedType{Name: qn, NodeSpan: qn.NodeSpan}
	}
	if p.at(token.LT) && p.looksLikeGenericArgs() {
		start := qn.NodeSpan
		p.advance() // `<`
		var args []ast.Type
		if !p.at(token.GT) {
			for {
				argType, ok := p.parseType()
				if !ok {
					return nil, false
				}
				args = append(args, argType)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
		}
		end, _ := p.expect(token.GT)
		base = &ast.GenericType{Base: base, Args: args, NodeSpan: start.Cover(spanTok(end))}
	}
	return base, true
}

// looksLikeGenericArgs implements the tie-break rule: scan
// forward for a balanced `<...>` and check the token immediately after
// the matching `>` is one that can only follow a type, committing to
// the generic reading only then. On any ambiguity it returns false, so
// `<` falls back to being the less-than operator.
func isGenericArgFollower(t token.Type) bool {
	switch t {
	case token.LPAREN, token.RPAREN, token.RBRACKET, token.RBRACE,
		token.COLON, token.SEMICOLON, token.COMMA, token.DOT,
		token.QUESTION, token.EQ, token.NOT_EQ, token.EOF:
		return true
	default:
		return false
	}
}

func isGenericArgBodyToken(t token.Type) bool {
	if _, isPrim := primitiveKeywords[t]; isPrim {
		return true
	}
	switch t {
	case token.IDENT, token.COMMA, token.DOT, token.LBRACKET, token.RBRACKET,
		token.QUESTION, token.LT, token.GT, token.RSHIFT, token.STAR, token.VOID:
		return true
	default:
		return false
	}
}

func (p *Parser) looksLikeGenericArgs() bool {
	depth := 0
	for n := 0; n <= 64; n++ {
		t := p.peekTok(n)
		switch t.Type {
		case token.LT:
			depth++
			continue
		case token.GT:
			depth--
		case token.RSHIFT:
			// `>>` closes two nested generic levels at once (List<List<T>>).
			depth -= 2
		default:
			if !isGenericArgBodyToken(t.Type) {
				return false
			}
			continue
		}
		if depth <= 0 {
			return isGenericArgFollower(p.peekTok(n + 1).Type)
		}
	}
	return false
}
