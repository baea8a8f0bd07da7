package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/span"
	"github.com/cwbudde/csharpfront/internal/token"
)

// spanFrom builds the span covering [start.Pos.Offset, end) — end is
// normally the offset of the token just past the construct.
func spanFrom(start token.Token, end int) span.Span {
	return span.Span{Offset: start.Pos.Offset, Length: end - start.Pos.Offset}
}

// spanTok is the span of a single token.
func spanTok(t token.Token) span.Span {
	return span.Span{Offset: t.Pos.Offset, Length: t.Length}
}

// isIdentLike reports whether t is an IDENT token; contextual keywords
// qualify too, since the lexer emits them as IDENT.
func isIdentLike(t token.Token) bool {
	return t.Type == token.IDENT
}

// parseIdentifier consumes a bare identifier (contextual keywords count,
// since the lexer always emits them as IDENT).
func (p *Parser) parseIdentifier() (*ast.Identifier, bool) {
	tok, ok := p.expect(token.IDENT)
	if !ok {
		return nil, false
	}
	return &ast.Identifier{Name: tok.Literal, NodeSpan: spanTok(tok)}, true
}

// parseQualifiedName parses Identifier (`.` Identifier)*.
func (p *Parser) parseQualifiedName() (*ast.QualifiedName, bool) {
	first, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	parts := []*ast.Identifier{first}
	for p.at(token.DOT) && p.peekTok(1).Type == token.IDENT {
		p.advance()
		id, _ := p.parseIdentifier()
		parts = append(parts, id)
	}
	last := parts[len(parts)-1]
	return &ast.QualifiedName{Parts: parts, NodeSpan: first.NodeSpan.Cover(last.NodeSpan)}, true
}

// keywordText reports whether the current token is an IDENT whose text
// equals word, used for contextual keyword lookahead.
func (p *Parser) keywordText(word string) bool {
	t := p.curTok()
	return t.Type == token.IDENT && t.Literal == word
}

// consumeKeywordText consumes the current token if keywordText(word).
func (p *Parser) consumeKeywordText(word string) (token.Token, bool) {
	if !p.keywordText(word) {
		return token.Token{}, false
	}
	return p.advance(), true
}

// sepList0 parses a comma-separated list of item up to (not including)
// the term token, allowing one trailing comma; it is a plain loop over a
// Parser-bound item function.
func sepList0[T any](p *Parser, item func() (T, bool), term token.Type) []T {
	var out []T
	if p.at(term) {
		return out
	}
	v, ok := item()
	if !ok {
		return out
	}
	out = append(out, v)
	for p.at(token.COMMA) {
		p.advance()
		if p.at(term) {
			break // trailing comma
		}
		v, ok := item()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// run adapts the Parser's current cursor so call sites that
// want to reuse a raw internal/combinator.Recognizer (rather than a
// hand-written method) can do so and splice the result back in.
func (p *Parser) run(r combinator.Recognizer[token.Token]) (token.Token, bool) {
	nc, v, err := r(p.cur)
	if err != nil {
		if !err.Recoverable {
			p.errors = append(p.errors, err)
		}
		return token.Token{}, false
	}
	p.cur = nc
	return v, true
}
