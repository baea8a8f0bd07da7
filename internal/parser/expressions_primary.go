package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/token"
)

// parsePrimary is Lprim: literals, names, grouped/tuple forms, and the
// keyword-introduced primary expressions. Lambdas and LINQ queries are
// attempted speculatively here since both can appear anywhere a primary
// expression can ("Lambda disambiguation").
func (p *Parser) parsePrimary() (ast.Expression, bool) {
	tok := p.curTok()

	if lam, ok := p.tryParseLambda(); ok {
		return lam, true
	}

	switch tok.Type {
	case token.INT:
		return p.parseIntLiteral(tok)
	case token.FLOAT:
		return p.parseFloatLiteral(tok)
	case token.STRING, token.VERBATIM_STRING:
		p.advance()
		return &ast.LiteralExpr{
			Literal: &ast.StringLiteral{Value: tok.Literal, Verbatim: tok.Type == token.VERBATIM_STRING, NodeSpan: spanTok(tok)},
			NodeSpan: spanTok(tok),
		}, true
	case token.INTERPOLATED_STRING:
		return p.parseInterpolatedString(tok)
	case token.CHAR:
		p.advance()
		r := rune(0)
		if len(tok.Literal) > 0 {
			r = []rune(tok.Literal)[0]
		}
		return &ast.LiteralExpr{Literal: &ast.CharLiteral{Value: r, NodeSpan: spanTok(tok)}, NodeSpan: spanTok(tok)}, true
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.LiteralExpr{Literal: &ast.BoolLiteral{Value: tok.Type == token.TRUE, NodeSpan: spanTok(tok)}, NodeSpan: spanTok(tok)}, true
	case token.NULL:
		p.advance()
		return &ast.LiteralExpr{Literal: &ast.NullLiteral{NodeSpan: spanTok(tok)}, NodeSpan: spanTok(tok)}, true
	case token.THIS:
		p.advance()
		return &ast.ThisExpr{NodeSpan: spanTok(tok)}, true
	case token.BASE:
		p.advance()
		return &ast.BaseExpr{NodeSpan: spanTok(tok)}, true
	case token.NEW:
		return p.parseNewExpr()
	case token.TYPEOF:
		return p.parseTypeOf(tok)
	case token.THROW:
		p.advance()
		operand, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		return &ast.ThrowExpr{Operand: operand, NodeSpan: spanTok(tok).Cover(operand.Span())}, true
	case token.STACKALLOC:
		return p.parseStackAlloc(tok)
	case token.DEFAULT:
		return p.parseDefault(tok)
	case token.CHECKED, token.UNCHECKED:
		return p.parseCheckedUnchecked(tok)
	case token.SIZEOF:
		p.advance()
		if _, ok := p.expect(token.LPAREN); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		end, _ := p.expect(token.RPAREN)
		return &ast.SizeOfExpr{Target: typ, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
	case token.DELEGATE:
		return p.parseAnonymousMethod(tok)
	case token.LPAREN:
		return p.parseParenOrTupleExpr(tok)
	case token.IDENT:
		if tok.Literal == "nameof" && p.peekTok(1).Type == token.LPAREN {
			return p.parseNameOf(tok)
		}
		if tok.Literal == "from" {
			if q, ok := p.tryParseQuery(); ok {
				return q, true
			}
		}
		id, _ := p.parseIdentifier()
		return &ast.IdentifierExpr{Name: id, NodeSpan: id.NodeSpan}, true
	}

	p.errorf(combinator.KindUnexpected, "unexpected token %s in expression", tok.Type.Name())
	return nil, false
}

func (p *Parser) parseIntLiteral(tok token.Token) (ast.Expression, bool) {
	p.advance()
	text := tok.Literal
	suffix := ""
	for len(text) > 0 {
		c := text[len(text)-1]
		if c == 'u' || c == 'U' || c == 'l' || c == 'L' {
			suffix = string(c) + suffix
			text = text[:len(text)-1]
			continue
		}
		break
	}
	base := 10
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base = 16
		text = text[2:]
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base = 2
		text = text[2:]
	}
	text = strings.ReplaceAll(text, "_", "")
	val, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		uval, uerr := strconv.ParseUint(text, base, 64)
		if uerr != nil {
			p.errorAt(tok.Pos.Offset, combinator.KindInvalidNumber, "invalid integer literal %q", tok.Literal)
			return nil, false
		}
		val = int64(uval)
	}
	return &ast.LiteralExpr{Literal: &ast.IntegerLiteral{Value: val, Suffix: suffix, NodeSpan: spanTok(tok)}, NodeSpan: spanTok(tok)}, true
}

func (p *Parser) parseFloatLiteral(tok token.Token) (ast.Expression, bool) {
	p.advance()
	text := tok.Literal
	suffix := ""
	if len(text) > 0 {
		switch text[len(text)-1] {
		case 'f', 'F', 'd', 'D', 'm', 'M':
			suffix = string(text[len(text)-1])
			text = text[:len(text)-1]
		}
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.errorAt(tok.Pos.Offset, combinator.KindInvalidNumber, "invalid real literal %q", tok.Literal)
		return nil, false
	}
	return &ast.LiteralExpr{Literal: &ast.RealLiteral{Value: val, Suffix: suffix, NodeSpan: spanTok(tok)}, NodeSpan: spanTok(tok)}, true
}

// parseInterpolatedString re-splits the lexer's raw $"..." token into
// text/expression parts by recursively invoking the expression parser on
// each `{... }` hole (the lexer only tracked brace depth; it did not
// decode the interior).
func (p *Parser) parseInterpolatedString(tok token.Token) (ast.Expression, bool) {
	p.advance()
	// Literal is the raw source text; drop the `$"`/`$@"` opener and the
	// closing quote before splitting.
	raw := strings.TrimPrefix(tok.Literal, "$")
	raw = strings.TrimPrefix(raw, "@")
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)
	var parts []ast.InterpolatedStringPart
	var textBuf strings.Builder
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c == '{' && i+1 < len(raw) && raw[i+1] == '{' {
			textBuf.WriteByte('{')
			i += 2
			continue
		}
		if c == '}' && i+1 < len(raw) && raw[i+1] == '}' {
			textBuf.WriteByte('}')
			i += 2
			continue
		}
		if c == '{' {
			if textBuf.Len() > 0 {
				parts = append(parts, ast.InterpolatedStringPart{Text: textBuf.String()})
				textBuf.Reset()
			}
			depth := 1
			j := i + 1
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						continue
					}
				}
				j++
			}
			inner := raw[i+1 : j]
			exprPart, format := splitInterpolationHole(inner)
			sub := New(exprPart)
			expr, ok := sub.parseExpression()
			if ok {
				parts = append(parts, ast.InterpolatedStringPart{Expr: expr, Format: format})
			}
			i = j + 1
			continue
		}
		textBuf.WriteByte(c)
		i++
	}
	if textBuf.Len() > 0 {
		parts = append(parts, ast.InterpolatedStringPart{Text: textBuf.String()})
	}
	return &ast.LiteralExpr{
		Literal: &ast.InterpolatedStringLiteral{Parts: parts, NodeSpan: spanTok(tok)},
		NodeSpan: spanTok(tok),
	}, true
}

// splitInterpolationHole splits the interior of a `{...}` interpolation
// hole into its expression and format-string parts, e.g. "x,10:F2" ->
// ("x", "F2"). The alignment clause (between the first top-level comma
// and the format colon, if any) is recognized but discarded: only the
// expression and the format specifier carry into the AST. Depth over
// ()/[]/{} and quoted string/char literals is tracked so a comma or
// colon belonging to the expression itself (a tuple, a multi-arg call,
// an indexer, or a parenthesized ternary) is never mistaken for a
// format separator.
func splitInterpolationHole(inner string) (exprPart, format string) {
	depth := 0
	colon, comma := -1, -1
	for i := 0; i < len(inner); i++ {
		switch c := inner[i]; c {
		case '"', '\'':
			i++
			for i < len(inner) && inner[i] != c {
				if inner[i] == '\\' {
					i++
				}
				i++
			}
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 && colon == -1 {
				colon = i
			}
		case ',':
			if depth == 0 && comma == -1 {
				comma = i
			}
		}
	}
	end := len(inner)
	if colon >= 0 {
		end = colon
		format = inner[colon+1:]
	}
	exprPart = inner[:end]
	if comma >= 0 && comma < end {
		exprPart = inner[:comma]
	}
	return exprPart, format
}

func (p *Parser) parseNameOf(tok token.Token) (ast.Expression, bool) {
	p.advance() // `nameof`
	p.advance() // `(`
	operand, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.RPAREN)
	return &ast.NameOfExpr{Operand: operand, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
}

func (p *Parser) parseStackAlloc(tok token.Token) (ast.Expression, bool) {
	p.advance()
	elemType, ok := p.parseBaseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBRACKET); !ok {
		return nil, false
	}
	length, _ := p.parseExpression()
	end, _ := p.expect(token.RBRACKET)
	return &ast.StackAllocExpr{ElementType: elemType, Length: length, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
}

// parseDefault handles both the bare `default` literal and the typed
// `default(T)` form.
func (p *Parser) parseDefault(tok token.Token) (ast.Expression, bool) {
	p.advance()
	if !p.at(token.LPAREN) {
		return &ast.LiteralExpr{Literal: &ast.DefaultLiteral{NodeSpan: spanTok(tok)}, NodeSpan: spanTok(tok)}, true
	}
	p.advance()
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.RPAREN)
	return &ast.DefaultExpr{Target: typ, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
}

func (p *Parser) parseCheckedUnchecked(tok token.Token) (ast.Expression, bool) {
	p.advance()
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	operand, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.RPAREN)
	return &ast.CheckedUncheckedExpr{Checked: tok.Type == token.CHECKED, Operand: operand, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
}

func (p *Parser) parseTypeOf(tok token.Token) (ast.Expression, bool) {
	p.advance()
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.RPAREN)
	return &ast.TypeOfExpr{Target: typ, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
}

// parseParenOrTupleExpr disambiguates `(expr)` from `(a, b,...)`,
// having already failed the cast and lambda speculative attempts.
func (p *Parser) parseParenOrTupleExpr(tok token.Token) (ast.Expression, bool) {
	p.advance()
	first, ok := p.parseArgumentForTuple()
	if !ok {
		return nil, false
	}
	if p.at(token.COMMA) {
		elems := []ast.TupleArgument{first}
		for p.at(token.COMMA) {
			p.advance()
			next, ok := p.parseArgumentForTuple()
			if !ok {
				break
			}
			elems = append(elems, next)
		}
		end, _ := p.expect(token.RPAREN)
		return &ast.TupleExpr{Elements: elems, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
	}
	end, _ := p.expect(token.RPAREN)
	return &ast.ParenthesizedExpr{Inner: first.Value, NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
}

func (p *Parser) parseArgumentForTuple() (ast.TupleArgument, bool) {
	var name *ast.Identifier
	if p.at(token.IDENT) && p.peekTok(1).Type == token.COLON {
		name, _ = p.parseIdentifier()
		p.advance()
	}
	val, ok := p.parseExpression()
	if !ok {
		return ast.TupleArgument{}, false
	}
	return ast.TupleArgument{Name: name, Value: val}, true
}
