// Expression grammar: the full precedence climb of
// the table, levels L16 down to Lprim. Each level's recogniser
// consumes the next-tighter level then folds with its own operators
// (the canonical fold_many0-over-a-higher-precedence-base shape), so no
// production is left-recursive.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/token"
)

// parseExpression is the top-level expression entry point (L16).
func (p *Parser) parseExpression() (ast.Expression, bool) {
	leave, ok := p.enterExpr()
	defer leave()
	if !ok {
		return nil, false
	}
	return p.parseAssignment()
}

var assignmentOps = map[token.Type]ast.AssignmentOp{
	token.ASSIGN: ast.AssignPlain,
	token.PLUS_EQ: ast.AssignAdd,
	token.MINUS_EQ: ast.AssignSub,
	token.STAR_EQ: ast.AssignMul,
	token.SLASH_EQ: ast.AssignDiv,
	token.PERCENT_EQ: ast.AssignMod,
	token.AMP_EQ: ast.AssignAnd,
	token.PIPE_EQ: ast.AssignOr,
	token.CARET_EQ: ast.AssignXor,
	token.LSHIFT_EQ: ast.AssignShl,
	token.RSHIFT_EQ: ast.AssignShr,
	token.QUESTION_QUESTION_EQ: ast.AssignCoalesce,
}

// parseAssignment is L16 (right-associative).
func (p *Parser) parseAssignment() (ast.Expression, bool) {
	left, ok := p.parseTernary()
	if !ok {
		return nil, false
	}
	if op, isAssign := assignmentOps[p.curTok().Type]; isAssign {
		p.advance()
		right, ok := p.parseAssignment()
		if !ok {
			return nil, false
		}
		return &ast.AssignmentExpr{Target: left, Op: op, Value: right, NodeSpan: left.Span().Cover(right.Span())}, true
	}
	return left, true
}

// parseTernary is L14 (L15 lambda is handled speculatively inside
// parsePrimary, since a lambda can appear anywhere a primary can, not
// only as a top-level RHS).
func (p *Parser) parseTernary() (ast.Expression, bool) {
	cond, ok := p.parseCoalesce()
	if !ok {
		return nil, false
	}
	if p.at(token.QUESTION) {
		p.advance()
		whenTrue, ok := p.parseAssignment()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.COLON); !ok {
			return nil, false
		}
		whenFalse, ok := p.parseAssignment()
		if !ok {
			return nil, false
		}
		return &ast.ConditionalExpr{Cond: cond, WhenTrue: whenTrue, WhenFalse: whenFalse, NodeSpan: cond.Span().Cover(whenFalse.Span())}, true
	}
	return cond, true
}

// parseCoalesce is L13 (right-associative).
func (p *Parser) parseCoalesce() (ast.Expression, bool) {
	left, ok := p.parseLogicalOr()
	if !ok {
		return nil, false
	}
	if p.at(token.QUESTION_QUESTION) {
		p.advance()
		right, ok := p.parseCoalesce()
		if !ok {
			return nil, false
		}
		return &ast.BinaryExpr{Left: left, Op: ast.OpCoalesce, Right: right, NodeSpan: left.Span().Cover(right.Span())}, true
	}
	return left, true
}

func (p *Parser) foldBinaryLeft(next func() (ast.Expression, bool), ops map[token.Type]ast.BinaryOp) (ast.Expression, bool) {
	left, ok := next()
	if !ok {
		return nil, false
	}
	for {
		op, match := ops[p.curTok().Type]
		if !match {
			return left, true
		}
		p.advance()
		right, ok := next()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right, NodeSpan: left.Span().Cover(right.Span())}
	}
}

func (p *Parser) parseLogicalOr() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseLogicalAnd, map[token.Type]ast.BinaryOp{token.OR_OR: ast.OpLogicalOr})
}

func (p *Parser) parseLogicalAnd() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseBitOr, map[token.Type]ast.BinaryOp{token.AND_AND: ast.OpLogicalAnd})
}

func (p *Parser) parseBitOr() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseBitXor, map[token.Type]ast.BinaryOp{token.PIPE: ast.OpBitOr})
}

func (p *Parser) parseBitXor() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseBitAnd, map[token.Type]ast.BinaryOp{token.CARET: ast.OpBitXor})
}

func (p *Parser) parseBitAnd() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseEquality, map[token.Type]ast.BinaryOp{token.AMP: ast.OpBitAnd})
}

func (p *Parser) parseEquality() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseRelational, map[token.Type]ast.BinaryOp{token.EQ: ast.OpEq, token.NOT_EQ: ast.OpNotEq})
}

// parseRelational is L6: `< > <= >=`, plus `is` pattern and `as` type,
// which are folded here since they share this precedence level.
func (p *Parser) parseRelational() (ast.Expression, bool) {
	left, ok := p.parseShift()
	if !ok {
		return nil, false
	}
	for {
		switch {
		case p.at(token.LT), p.at(token.GT), p.at(token.LE), p.at(token.GE):
			op := map[token.Type]ast.BinaryOp{token.LT: ast.OpLt, token.GT: ast.OpGt, token.LE: ast.OpLe, token.GE: ast.OpGe}[p.curTok().Type]
			p.advance()
			right, ok := p.parseShift()
			if !ok {
				return nil, false
			}
			left = &ast.BinaryExpr{Left: left, Op: op, Right: right, NodeSpan: left.Span().Cover(right.Span())}
		case p.at(token.IS):
			p.advance()
			pat, ok := p.parsePattern()
			if !ok {
				return nil, false
			}
			left = &ast.IsPatternExpr{Operand: left, Pattern: pat, NodeSpan: left.Span().Cover(pat.Span())}
		case p.at(token.AS):
			p.advance()
			typ, ok := p.parseType()
			if !ok {
				return nil, false
			}
			left = &ast.AsExpr{Operand: left, Target: typ, NodeSpan: left.Span().Cover(typ.Span())}
		default:
			return left, true
		}
	}
}

func (p *Parser) parseShift() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseAdditive, map[token.Type]ast.BinaryOp{token.LSHIFT: ast.OpShl, token.RSHIFT: ast.OpShr})
}

func (p *Parser) parseAdditive() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseMultiplicative, map[token.Type]ast.BinaryOp{token.PLUS: ast.OpAdd, token.MINUS: ast.OpSub})
}

func (p *Parser) parseMultiplicative() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseRange, map[token.Type]ast.BinaryOp{token.STAR: ast.OpMul, token.SLASH: ast.OpDiv, token.PERCENT: ast.OpMod})
}

// parseRange is L2 (`..`, non-associative in practice — chained ranges
// are not meaningful, but the fold is harmless if they appear).
func (p *Parser) parseRange() (ast.Expression, bool) {
	return p.foldBinaryLeft(p.parseSwitchLevel, map[token.Type]ast.BinaryOp{token.DOTDOT: ast.OpRange})
}

// parseSwitchLevel is L1: a switch-expression applies to the scrutinee
// parsed at the next-tighter (unary) level.
func (p *Parser) parseSwitchLevel() (ast.Expression, bool) {
	scrutinee, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	if p.at(token.SWITCH) {
		return p.parseSwitchExpr(scrutinee)
	}
	return scrutinee, true
}

func (p *Parser) parseSwitchExpr(scrutinee ast.Expression) (ast.Expression, bool) {
	p.advance() // `switch`
	if _, ok := p.expect(token.LBRACE); !ok {
		return nil, false
	}
	var arms []ast.SwitchArm
	for !p.at(token.RBRACE) && !p.atEOF() {
		pat, ok := p.parsePattern()
		if !ok {
			break
		}
		var guard ast.Expression
		if p.keywordText("when") {
			p.advance()
			guard, _ = p.parseExpression()
		}
		if _, ok := p.expect(token.ARROW); !ok {
			break
		}
		result, ok := p.parseExpression()
		if !ok {
			break
		}
		arms = append(arms, ast.SwitchArm{Pattern: pat, Guard: guard, Result: result})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, _ := p.expect(token.RBRACE)
	return &ast.SwitchExpr{Scrutinee: scrutinee, Arms: arms, NodeSpan: scrutinee.Span().Cover(spanTok(end))}, true
}

var unaryPrefixOps = map[token.Type]ast.UnaryOp{
	token.PLUS: ast.OpPlus,
	token.MINUS: ast.OpNeg,
	token.BANG: ast.OpNot,
	token.TILDE: ast.OpBitNot,
	token.PLUS_PLUS: ast.OpPreInc,
	token.MINUS_MINUS: ast.OpPreDec,
	token.AMP: ast.OpAddressOf,
	token.STAR: ast.OpDeref,
	token.CARET: ast.OpIndexFromEnd,
}

// parseUnary is L0: prefix operators, the `(T)` cast form, and `await`.
func (p *Parser) parseUnary() (ast.Expression, bool) {
	if p.keywordText("await") {
		start := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Op: ast.OpAwait, Operand: operand, NodeSpan: spanTok(start).Cover(operand.Span())}, true
	}
	if op, ok := unaryPrefixOps[p.curTok().Type]; ok {
		start := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Op: op, Operand: operand, NodeSpan: spanTok(start).Cover(operand.Span())}, true
	}
	if p.at(token.LPAREN) {
		if cast, ok := p.tryParseCast(); ok {
			return cast, true
		}
	}
	return p.parsePostfix()
}

// tryParseCast speculatively parses `(T) operand`, rolling back to a
// plain parenthesized/tuple expression if what follows `)` cannot start
// a unary expression (the classic cast-vs-parenthesized-expr ambiguity).
func (p *Parser) tryParseCast() (ast.Expression, bool) {
	save := p.cur
	saveErrs := len(p.errors)
	start := p.advance() // `(`
	typ, ok := p.parseType()
	if !ok || !p.at(token.RPAREN) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	p.advance() // `)`
	// After a parenthesized non-keyword type such as `(x)`, a following
	// `+ - * & ++ --` is read as an operator on `(x)`, so `(x) - 1` stays a
	// subtraction; after a keyword type such as `(int)` it is a cast.
	next := p.curTok().Type
	_, keywordType := typ.(*ast.PrimitiveType)
	binaryOrPostfix := next == token.PLUS || next == token.MINUS || next == token.STAR ||
		next == token.AMP || next == token.PLUS_PLUS || next == token.MINUS_MINUS
	if !startsUnaryOperand(next) || (binaryOrPostfix && !keywordType) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	operand, ok := p.parseUnary()
	if !ok {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	return &ast.CastExpr{Target: typ, Operand: operand, NodeSpan: spanTok(start).Cover(operand.Span())}, true
}

// startsUnaryOperand reports whether tt can begin a primary/unary
// expression, used to decide whether `(T)` was a cast.
func startsUnaryOperand(tt token.Type) bool {
	switch tt {
	case token.IDENT, token.INT, token.FLOAT, token.STRING, token.VERBATIM_STRING,
		token.INTERPOLATED_STRING, token.CHAR, token.TRUE, token.FALSE, token.NULL,
		token.LPAREN, token.THIS, token.BASE, token.NEW, token.TYPEOF, token.SIZEOF,
		token.DEFAULT, token.CHECKED, token.UNCHECKED, token.BANG, token.TILDE,
		token.PLUS, token.MINUS, token.PLUS_PLUS, token.MINUS_MINUS, token.STACKALLOC,
		token.AMP, token.STAR:
		return true
	default:
		return false
	}
}

// parsePostfix is Lp: the left-associative postfix chain (member
// access, invocation, indexer, null-conditional, null-forgiving, ++/--).
func (p *Parser) parsePostfix() (ast.Expression, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch {
		case p.at(token.DOT):
			p.advance()
			name, ok := p.parseIdentifier()
			if !ok {
				return nil, false
			}
			expr = &ast.MemberAccessExpr{Target: expr, Name: name, NodeSpan: expr.Span().Cover(name.NodeSpan)}
		case p.at(token.ARROW_PTR):
			p.advance()
			name, ok := p.parseIdentifier()
			if !ok {
				return nil, false
			}
			expr = &ast.MemberAccessExpr{Target: expr, Name: name, Arrow: true, NodeSpan: expr.Span().Cover(name.NodeSpan)}
		case p.at(token.LPAREN):
			args, end, ok := p.parseArgumentList()
			if !ok {
				return nil, false
			}
			expr = &ast.InvocationExpr{Callee: expr, Arguments: args, NodeSpan: expr.Span().Cover(spanTok(end))}
		case p.at(token.LBRACKET):
			p.advance()
			var indices []ast.Expression
			for {
				idx, ok := p.parseExpression()
				if !ok {
					break
				}
				indices = append(indices, idx)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
			end, _ := p.expect(token.RBRACKET)
			expr = &ast.ElementAccessExpr{Target: expr, Indices: indices, NodeSpan: expr.Span().Cover(spanTok(end))}
		case p.at(token.QUESTION_DOT):
			p.advance()
			name, ok := p.parseIdentifier()
			if !ok {
				return nil, false
			}
			expr = &ast.ConditionalAccessExpr{Target: expr, Kind: ast.CondAccessMember, Name: name, NodeSpan: expr.Span().Cover(name.NodeSpan)}
		case p.at(token.QUESTION_BRACKET):
			p.advance()
			var indices []ast.Expression
			for {
				idx, ok := p.parseExpression()
				if !ok {
					break
				}
				indices = append(indices, idx)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
			end, _ := p.expect(token.RBRACKET)
			expr = &ast.ConditionalAccessExpr{Target: expr, Kind: ast.CondAccessElement, Indices: indices, NodeSpan: expr.Span().Cover(spanTok(end))}
		case p.at(token.BANG):
			end := p.advance()
			expr = &ast.PostfixExpr{Operand: expr, Op: ast.OpNullForgiving, NodeSpan: expr.Span().Cover(spanTok(end))}
		case p.at(token.PLUS_PLUS):
			end := p.advance()
			expr = &ast.PostfixExpr{Operand: expr, Op: ast.OpPostInc, NodeSpan: expr.Span().Cover(spanTok(end))}
		case p.at(token.MINUS_MINUS):
			end := p.advance()
			expr = &ast.PostfixExpr{Operand: expr, Op: ast.OpPostDec, NodeSpan: expr.Span().Cover(spanTok(end))}
		default:
			return expr, true
		}
	}
}

// parseArgumentList parses `(args)` with optional named/ref-out-in
// argument forms ("Invocation arguments").
func (p *Parser) parseArgumentList() ([]ast.Argument, token.Token, bool) {
	p.advance() // `(`
	var args []ast.Argument
	for !p.at(token.RPAREN) && !p.atEOF() {
		arg, ok := p.parseArgument()
		if !ok {
			break
		}
		args = append(args, arg)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end, ok := p.expect(token.RPAREN)
	return args, end, ok
}

func (p *Parser) parseArgument() (ast.Argument, bool) {
	var name *ast.Identifier
	if p.at(token.IDENT) && p.peekTok(1).Type == token.COLON {
		name, _ = p.parseIdentifier()
		p.advance() // `:`
	}
	mod := ast.ArgNone
	switch {
	case p.at(token.REF):
		mod = ast.ArgRef
		p.advance()
	case p.at(token.OUT):
		mod = ast.ArgOut
		p.advance()
	case p.at(token.IN):
		mod = ast.ArgIn
		p.advance()
	}
	val, ok := p.parseExpression()
	if !ok {
		return ast.Argument{}, false
	}
	return ast.Argument{Name: name, Modifier: mod, Value: val}, true
}

// parseUnaryExpr exposes parseUnary to other grammar files (patterns,
// statements) that need a plain unary-level expression without pulling
// the whole precedence chain back in (e.g. relational pattern operands).
func (p *Parser) parseUnaryExpr() (ast.Expression, bool) {
	return p.parseUnary()
}
