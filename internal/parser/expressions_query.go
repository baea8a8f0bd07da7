// LINQ query expressions. The query keywords (from/let/where/join/on/
// equals/into/orderby/ascending/descending/select/group/by) are
// contextual — lexed as plain identifiers — so the clause loop
// recognises them positionally by their text, the same technique
// internal/parser/types.go uses for `var` and `dynamic`. `in` is a
// reserved keyword and arrives as its own IN token.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/span"
	"github.com/cwbudde/csharpfront/internal/token"
)

// tryParseQuery attempts a full query expression starting at `from`. It
// rolls back on any clause that fails to parse as a query clause, since
// a bare `from` identifier can also be an ordinary variable reference.
func (p *Parser) tryParseQuery() (ast.Expression, bool) {
	save := p.cur
	saveErrs := len(p.errors)

	start := p.curTok()
	body, ok := p.parseQueryBody()
	if !ok {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	setQuerySpans(body, spanTok(start).Cover(spanTok(p.peekTok(-1))))
	return body, true
}

// setQuerySpans assigns the covering span to q and, recursively, to
// every `into`-continuation — they all share the same outer text range
// since the continuation is only reachable by walking Continuation.
func setQuerySpans(q *ast.QueryExpr, sp span.Span) {
	for q != nil {
		q.NodeSpan = sp
		q = q.Continuation
	}
}

// parseQueryBody parses one `from... (clause)* (select|group) (into
// body)?` query, without touching the outer rollback snapshot — the
// caller (tryParseQuery, or a recursive call for an `into` continuation)
// owns that.
func (p *Parser) parseQueryBody() (*ast.QueryExpr, bool) {
	var clauses []ast.QueryClause

	from, ok := p.parseFromClause()
	if !ok {
		return nil, false
	}
	clauses = append(clauses, from)

	for {
		switch {
		case p.keywordText("let"):
			c, ok := p.parseLetClause()
			if !ok {
				return nil, false
			}
			clauses = append(clauses, c)
		case p.keywordText("where"):
			c, ok := p.parseWhereClause()
			if !ok {
				return nil, false
			}
			clauses = append(clauses, c)
		case p.keywordText("join"):
			c, ok := p.parseJoinClause()
			if !ok {
				return nil, false
			}
			clauses = append(clauses, c)
		case p.keywordText("orderby"):
			c, ok := p.parseOrderByClause()
			if !ok {
				return nil, false
			}
			clauses = append(clauses, c)
		case p.keywordText("from"):
			c, ok := p.parseFromClause()
			if !ok {
				return nil, false
			}
			clauses = append(clauses, c)
		default:
			goto terminal
		}
	}

terminal:
	var terminal ast.QueryClause
	switch {
	case p.keywordText("select"):
		p.advance()
		expr, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		terminal = ast.QueryClause{Kind: ast.QuerySelect, SelectExpr: expr}
	case p.keywordText("group"):
		p.advance()
		groupExpr, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		if !p.keywordText("by") {
			return nil, false
		}
		p.advance()
		byExpr, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		terminal = ast.QueryClause{Kind: ast.QueryGroupBy, GroupExpr: groupExpr, ByExpr: byExpr}
	default:
		return nil, false
	}
	clauses = append(clauses, terminal)

	result := &ast.QueryExpr{Clauses: clauses}

	if p.keywordText("into") {
		p.advance()
		name, ok := p.parseIdentifier()
		if !ok {
			return nil, false
		}
		cont, ok := p.parseQueryBody()
		if !ok {
			return nil, false
		}
		cont.Clauses = append([]ast.QueryClause{{Kind: ast.QueryInto, IntoName: name}}, cont.Clauses...)
		result.Continuation = cont
	}

	return result, true
}

func (p *Parser) parseFromClause() (ast.QueryClause, bool) {
	if !p.keywordText("from") {
		return ast.QueryClause{}, false
	}
	p.advance()
	var rangeType ast.Type
	if !p.at(token.IDENT) || p.peekTok(1).Type != token.IDENT {
		// bare `from name in expr`
	} else if t, ok := p.tryParseType(); ok {
		rangeType = t
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return ast.QueryClause{}, false
	}
	if !p.at(token.IN) {
		return ast.QueryClause{}, false
	}
	p.advance()
	src, ok := p.parseRange()
	if !ok {
		return ast.QueryClause{}, false
	}
	return ast.QueryClause{Kind: ast.QueryFrom, RangeVar: name, RangeType: rangeType, Source: src}, true
}

// tryParseType speculatively parses a type, rolling back if what
// follows does not look like a range-variable declaration.
func (p *Parser) tryParseType() (ast.Type, bool) {
	save := p.cur
	saveErrs := len(p.errors)
	typ, ok := p.parseType()
	if !ok || !p.at(token.IDENT) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	return typ, true
}

func (p *Parser) parseLetClause() (ast.QueryClause, bool) {
	p.advance() // `let`
	name, ok := p.parseIdentifier()
	if !ok {
		return ast.QueryClause{}, false
	}
	if _, ok := p.expect(token.ASSIGN); !ok {
		return ast.QueryClause{}, false
	}
	val, ok := p.parseExpression()
	if !ok {
		return ast.QueryClause{}, false
	}
	return ast.QueryClause{Kind: ast.QueryLet, RangeVar: name, Source: val}, true
}

func (p *Parser) parseWhereClause() (ast.QueryClause, bool) {
	p.advance() // `where`
	cond, ok := p.parseExpression()
	if !ok {
		return ast.QueryClause{}, false
	}
	return ast.QueryClause{Kind: ast.QueryWhere, Condition: cond}, true
}

func (p *Parser) parseJoinClause() (ast.QueryClause, bool) {
	p.advance() // `join`
	name, ok := p.parseIdentifier()
	if !ok {
		return ast.QueryClause{}, false
	}
	if !p.at(token.IN) {
		return ast.QueryClause{}, false
	}
	p.advance()
	src, ok := p.parseRange()
	if !ok {
		return ast.QueryClause{}, false
	}
	if !p.keywordText("on") {
		return ast.QueryClause{}, false
	}
	p.advance()
	onExpr, ok := p.parseRange()
	if !ok {
		return ast.QueryClause{}, false
	}
	if !p.keywordText("equals") {
		return ast.QueryClause{}, false
	}
	p.advance()
	eqExpr, ok := p.parseRange()
	if !ok {
		return ast.QueryClause{}, false
	}
	clause := ast.QueryClause{Kind: ast.QueryJoin, RangeVar: name, Source: src, JoinOn: onExpr, JoinEquals: eqExpr}
	if p.keywordText("into") {
		p.advance()
		into, ok := p.parseIdentifier()
		if !ok {
			return ast.QueryClause{}, false
		}
		clause.JoinInto = into
	}
	return clause, true
}

func (p *Parser) parseOrderByClause() (ast.QueryClause, bool) {
	p.advance() // `orderby`
	var orderings []ast.QueryOrdering
	for {
		key, ok := p.parseExpression()
		if !ok {
			return ast.QueryClause{}, false
		}
		desc := false
		if p.keywordText("descending") {
			p.advance()
			desc = true
		} else if p.keywordText("ascending") {
			p.advance()
		}
		orderings = append(orderings, ast.QueryOrdering{KeyExpr: key, Descending: desc})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return ast.QueryClause{Kind: ast.QueryOrderBy, Orderings: orderings}, true
}
