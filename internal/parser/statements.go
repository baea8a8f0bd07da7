// Statement grammar: blocks, declarations, the
// control-flow forms, jump statements, and the local-declaration /
// local-function / expression-statement disambiguation that shares the
// same leading tokens.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/token"
)

// parseStatement is the statement grammar's entry point: it dispatches on
// the leading keyword, falling through to the declaration/expression
// disambiguation when none of the fixed-keyword forms match.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	tok := p.curTok()

	switch tok.Type {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		p.advance()
		return &ast.EmptyStatement{NodeSpan: spanTok(tok)}, true
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FOREACH:
		return p.parseForEachStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.USING:
		return p.parseUsingStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.BREAK:
		p.advance()
		end, _ := p.expect(token.SEMICOLON)
		return &ast.BreakStatement{NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
	case token.CONTINUE:
		p.advance()
		end, _ := p.expect(token.SEMICOLON)
		return &ast.ContinueStatement{NodeSpan: spanTok(tok).Cover(spanTok(end))}, true
	case token.GOTO:
		return p.parseGotoStatement()
	case token.LOCK:
		return p.parseLockStatement()
	case token.FIXED:
		return p.parseFixedStatement()
	case token.CHECKED, token.UNCHECKED:
		return p.parseCheckedUncheckedStatement()
	case token.UNSAFE:
		return p.parseUnsafeStatement()
	case token.CONST:
		return p.parseLocalDeclarationStatement()
	}

	if tok.Type == token.IDENT && tok.Literal == "yield" {
		return p.parseYieldStatement()
	}

	if tok.Type == token.IDENT && p.peekTok(1).Type == token.COLON {
		return p.parseLabeledStatement()
	}

	if decl, ok := p.tryParseLocalDeclarationOrFunction(); ok {
		return decl, true
	}

	if decon, ok := p.tryParseDeconstructionStatement(); ok {
		return decon, true
	}

	expr, ok := p.parseExpression()
	if !ok {
		p.synchronizeBrace(token.SEMICOLON)
		return nil, false
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.ExpressionStatement{Expr: expr, NodeSpan: expr.Span().Cover(spanTok(end))}, true
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, bool) {
	start, ok := p.expect(token.LBRACE)
	if !ok {
		return nil, false
	}
	var stmts []ast.Statement
	for !p.at(token.RBRACE) && !p.atEOF() {
		stmt, ok := p.parseStatement()
		if !ok {
			p.synchronizeBrace(token.SEMICOLON, token.RBRACE)
			continue
		}
		stmts = append(stmts, stmt)
	}
	end, _ := p.expect(token.RBRACE)
	return &ast.BlockStatement{Statements: stmts, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

// tryParseLocalDeclarationOrFunction speculatively parses a leading
// type (a leading `const` is handed to parseLocalDeclarationStatement),
// then decides between a local-function
// declaration (`Type name(...)...`), a local variable declaration
// (`Type name (= init)?,...;`), and — on failure — rolls back so the
// caller can fall through to an ordinary expression statement.
// tryParseLocalDeclarationOrFunction is reached for any statement (or
// for-loop initializer, or using-resource) that doesn't start with a
// fixed keyword — `using` is excluded here since parseStatement and
// parseUsingStatement both intercept that token before falling through.
func (p *Parser) tryParseLocalDeclarationOrFunction() (ast.Statement, bool) {
	if p.at(token.CONST) {
		return p.parseLocalDeclarationStatement()
	}
	save := p.cur
	saveErrs := len(p.errors)
	start := p.curTok()

	typ, ok := p.tryParseType()
	if !ok || !p.at(token.IDENT) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	name, _ := p.parseIdentifier()

	if p.at(token.LT) || p.at(token.LPAREN) {
		if fn, ok := p.tryParseLocalFunctionTail(start, typ, name); ok {
			return fn, true
		}
	}

	decl, ok := p.parseLocalDeclaratorsTail(start, false, false, typ, name)
	if !ok {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	return decl, true
}

func (p *Parser) tryParseLocalFunctionTail(start token.Token, returnType ast.Type, name *ast.Identifier) (ast.Statement, bool) {
	save := p.cur
	saveErrs := len(p.errors)

	typeParams := p.parseTypeParameterList()
	if !p.at(token.LPAREN) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	params, ok := p.parseParameterList()
	if !ok {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}

	var body ast.Node
	var endSpan = name.NodeSpan
	switch {
	case p.at(token.LBRACE):
		block, ok := p.parseBlockStatement()
		if !ok {
			p.cur = save
			p.errors = p.errors[:saveErrs]
			return nil, false
		}
		body = block
		endSpan = block.NodeSpan
	case p.at(token.ARROW):
		p.advance()
		expr, ok := p.parseExpression()
		if !ok {
			p.cur = save
			p.errors = p.errors[:saveErrs]
			return nil, false
		}
		end, _ := p.expect(token.SEMICOLON)
		body = expr
		endSpan = expr.Span().Cover(spanTok(end))
	default:
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}

	return &ast.LocalFunctionStatement{
		ReturnType: returnType, Name: name, TypeParams: typeParams, Parameters: params,
		Body: body, NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

func (p *Parser) parseLocalDeclarationStatement() (ast.Statement, bool) {
	start := p.curTok()
	isConst := false
	if p.at(token.CONST) {
		p.advance()
		isConst = true
	}
	usingKw := false
	if p.at(token.USING) {
		p.advance()
		usingKw = true
	}
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	return p.parseLocalDeclaratorsTail(start, usingKw, isConst, typ, name)
}

func (p *Parser) parseLocalDeclaratorsTail(start token.Token, usingKw, isConst bool, typ ast.Type, first *ast.Identifier) (ast.Statement, bool) {
	var decls []ast.VariableDeclarator
	decl, ok := p.parseDeclaratorTail(first)
	if !ok {
		return nil, false
	}
	decls = append(decls, decl)
	for p.at(token.COMMA) {
		p.advance()
		name, ok := p.parseIdentifier()
		if !ok {
			break
		}
		d, ok := p.parseDeclaratorTail(name)
		if !ok {
			break
		}
		decls = append(decls, d)
	}
	// A resource declaration inside `using (...)` is terminated by `)`,
	// not `;` — only consume the semicolon when one is actually present.
	endSpan := decls[len(decls)-1].Name.NodeSpan
	if decls[len(decls)-1].Initializer != nil {
		endSpan = endSpan.Cover(decls[len(decls)-1].Initializer.Span())
	}
	if p.at(token.SEMICOLON) {
		end := p.advance()
		endSpan = spanTok(end)
	} else if !p.at(token.RPAREN) {
		p.expect(token.SEMICOLON)
	}
	return &ast.LocalDeclarationStatement{
		Const: isConst, Using: usingKw, Type: typ, Declarators: decls,
		NodeSpan: spanTok(start).Cover(endSpan),
	}, true
}

func (p *Parser) parseDeclaratorTail(name *ast.Identifier) (ast.VariableDeclarator, bool) {
	var init ast.Expression
	if p.at(token.ASSIGN) {
		p.advance()
		var ok bool
		init, ok = p.parseExpression()
		if !ok {
			return ast.VariableDeclarator{}, false
		}
	}
	return ast.VariableDeclarator{Name: name, Initializer: init}, true
}

// tryParseDeconstructionStatement handles `(a, b) = expr;` and `var (a,
// b) = expr;`, the tuple-deconstruction assignment forms, since both
// begin with tokens an ordinary expression statement could also start
// with (a parenthesized expression, or a `var` identifier).
func (p *Parser) tryParseDeconstructionStatement() (ast.Statement, bool) {
	save := p.cur
	saveErrs := len(p.errors)
	start := p.curTok()

	implicitVar := false
	if p.keywordText("var") && p.peekTok(1).Type == token.LPAREN {
		p.advance()
		implicitVar = true
	}
	if !p.at(token.LPAREN) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	p.advance()
	var targets []ast.DeconstructionTarget
	for !p.at(token.RPAREN) && !p.atEOF() {
		t, ok := p.parseDeconstructionTarget(implicitVar)
		if !ok {
			p.cur = save
			p.errors = p.errors[:saveErrs]
			return nil, false
		}
		targets = append(targets, t)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	if !p.at(token.ASSIGN) {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	p.advance()
	val, ok := p.parseExpression()
	if !ok {
		p.cur = save
		p.errors = p.errors[:saveErrs]
		return nil, false
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.DeconstructionStatement{Targets: targets, Value: val, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

func (p *Parser) parseDeconstructionTarget(implicitVar bool) (ast.DeconstructionTarget, bool) {
	if implicitVar {
		name, ok := p.parseIdentifier()
		if !ok {
			return ast.DeconstructionTarget{}, false
		}
		return ast.DeconstructionTarget{IsVar: true, Name: name}, true
	}
	if p.keywordText("var") && p.peekTok(1).Type == token.IDENT {
		p.advance()
		name, ok := p.parseIdentifier()
		if !ok {
			return ast.DeconstructionTarget{}, false
		}
		return ast.DeconstructionTarget{IsVar: true, Name: name}, true
	}
	expr, ok := p.parseUnaryExpr()
	if !ok {
		return ast.DeconstructionTarget{}, false
	}
	return ast.DeconstructionTarget{Target: expr}, true
}

func (p *Parser) parseIfStatement() (ast.Statement, bool) {
	start := p.advance() // `if`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	then, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	endSpan := spanTok(start).Cover(then.Span())
	var elseStmt ast.Statement
	if p.at(token.ELSE) {
		p.advance()
		elseStmt, ok = p.parseStatement()
		if !ok {
			return nil, false
		}
		endSpan = endSpan.Cover(elseStmt.Span())
	}
	return &ast.IfStatement{Cond: cond, Then: then, Else: elseStmt, NodeSpan: endSpan}, true
}

func (p *Parser) parseForStatement() (ast.Statement, bool) {
	start := p.advance() // `for`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	var init ast.Statement
	var initExprs []ast.Expression
	if !p.at(token.SEMICOLON) {
		if decl, ok := p.tryParseLocalDeclarationOrFunction(); ok {
			init = decl
		} else {
			for {
				e, ok := p.parseExpression()
				if !ok {
					break
				}
				initExprs = append(initExprs, e)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
			p.expect(token.SEMICOLON)
		}
	} else {
		p.advance()
	}
	var cond ast.Expression
	if !p.at(token.SEMICOLON) {
		cond, _ = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	var post []ast.Expression
	if !p.at(token.RPAREN) {
		for {
			e, ok := p.parseExpression()
			if !ok {
				break
			}
			post = append(post, e)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.ForStatement{Init: init, InitExprs: initExprs, Cond: cond, Post: post, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

func (p *Parser) parseForEachStatement() (ast.Statement, bool) {
	start := p.advance() // `foreach`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	isVar := false
	var typ ast.Type
	if p.keywordText("var") {
		p.advance()
		isVar = true
	} else {
		var ok bool
		typ, ok = p.parseType()
		if !ok {
			return nil, false
		}
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	if !p.at(token.IN) {
		p.errorf(combinator.KindExpected, "expected 'in' in foreach statement")
		return nil, false
	}
	p.advance()
	src, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.ForEachStatement{IsVar: isVar, Type: typ, Name: name, Source: src, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

func (p *Parser) parseWhileStatement() (ast.Statement, bool) {
	start := p.advance() // `while`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.WhileStatement{Cond: cond, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, bool) {
	start := p.advance() // `do`
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.WHILE); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.DoWhileStatement{Body: body, Cond: cond, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

// parseSwitchStatement always sees `switch (` — the statement form is
// distinguished from the switch-expression by the fact that the latter
// is only reached from an expression-grammar position, never as the
// leading token of a statement, so the disambiguation is free at the
// statement boundary.
func (p *Parser) parseSwitchStatement() (ast.Statement, bool) {
	start := p.advance() // `switch`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	scrutinee, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBRACE); !ok {
		return nil, false
	}
	var sections []ast.SwitchSection
	for p.at(token.CASE) || p.at(token.DEFAULT) {
		section, ok := p.parseSwitchSection()
		if !ok {
			break
		}
		sections = append(sections, section)
	}
	end, _ := p.expect(token.RBRACE)
	return &ast.SwitchStatement{Scrutinee: scrutinee, Sections: sections, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

func (p *Parser) parseSwitchSection() (ast.SwitchSection, bool) {
	var labels []ast.SwitchLabel
	for p.at(token.CASE) || p.at(token.DEFAULT) {
		if p.at(token.DEFAULT) {
			p.advance()
			if _, ok := p.expect(token.COLON); !ok {
				return ast.SwitchSection{}, false
			}
			labels = append(labels, ast.SwitchLabel{IsDefault: true})
			continue
		}
		p.advance() // `case`
		pat, ok := p.parsePattern()
		if !ok {
			return ast.SwitchSection{}, false
		}
		var guard ast.Expression
		if p.keywordText("when") {
			p.advance()
			guard, ok = p.parseExpression()
			if !ok {
				return ast.SwitchSection{}, false
			}
		}
		if _, ok := p.expect(token.COLON); !ok {
			return ast.SwitchSection{}, false
		}
		labels = append(labels, ast.SwitchLabel{Pattern: pat, Guard: guard})
	}
	var stmts []ast.Statement
	for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) && !p.atEOF() {
		stmt, ok := p.parseStatement()
		if !ok {
			p.synchronizeBrace(token.CASE, token.DEFAULT, token.RBRACE)
			break
		}
		stmts = append(stmts, stmt)
	}
	return ast.SwitchSection{Labels: labels, Statements: stmts}, true
}

func (p *Parser) parseTryStatement() (ast.Statement, bool) {
	start := p.advance() // `try`
	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}
	var catches []ast.CatchClause
	for p.at(token.CATCH) {
		p.advance()
		var catch ast.CatchClause
		if p.at(token.LPAREN) {
			p.advance()
			typ, ok := p.parseType()
			if !ok {
				return nil, false
			}
			catch.Type = typ
			if p.at(token.IDENT) {
				catch.Name, _ = p.parseIdentifier()
			}
			if _, ok := p.expect(token.RPAREN); !ok {
				return nil, false
			}
		}
		if p.keywordText("when") {
			p.advance()
			if _, ok := p.expect(token.LPAREN); !ok {
				return nil, false
			}
			guard, ok := p.parseExpression()
			if !ok {
				return nil, false
			}
			catch.Guard = guard
			if _, ok := p.expect(token.RPAREN); !ok {
				return nil, false
			}
		}
		block, ok := p.parseBlockStatement()
		if !ok {
			return nil, false
		}
		catch.Body = block
		catches = append(catches, catch)
	}
	var finallyBlock *ast.BlockStatement
	endSpan := body.NodeSpan
	if len(catches) > 0 {
		endSpan = catches[len(catches)-1].Body.NodeSpan
	}
	if p.at(token.FINALLY) {
		p.advance()
		var ok bool
		finallyBlock, ok = p.parseBlockStatement()
		if !ok {
			return nil, false
		}
		endSpan = finallyBlock.NodeSpan
	}
	return &ast.TryStatement{Body: body, Catches: catches, Finally: finallyBlock, NodeSpan: spanTok(start).Cover(endSpan)}, true
}

// parseUsingStatement handles the resource-acquisition statement form
// `using (resource) body` and, when no `(` follows `using`, the
// `using var x =...;` declaration form via
// parseLocalDeclarationStatementAfterUsing.
func (p *Parser) parseUsingStatement() (ast.Statement, bool) {
	start := p.advance() // `using`
	if !p.at(token.LPAREN) {
		// `using var x =...;` or `using Type x =...;` without parens.
		return p.parseLocalDeclarationStatementAfterUsing(start)
	}
	p.advance()
	var resource ast.Node
	if decl, ok := p.tryParseLocalDeclarationOrFunction(); ok {
		resource = decl
	} else {
		expr, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		resource = expr
		p.expect(token.SEMICOLON)
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.UsingStatement{Resource: resource, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

func (p *Parser) parseLocalDeclarationStatementAfterUsing(start token.Token) (ast.Statement, bool) {
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	return p.parseLocalDeclaratorsTail(start, true, false, typ, name)
}

func (p *Parser) parseReturnStatement() (ast.Statement, bool) {
	start := p.advance() // `return`
	var val ast.Expression
	if !p.at(token.SEMICOLON) {
		var ok bool
		val, ok = p.parseExpression()
		if !ok {
			return nil, false
		}
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.ReturnStatement{Value: val, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

func (p *Parser) parseThrowStatement() (ast.Statement, bool) {
	start := p.advance() // `throw`
	var val ast.Expression
	if !p.at(token.SEMICOLON) {
		var ok bool
		val, ok = p.parseExpression()
		if !ok {
			return nil, false
		}
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.ThrowStatement{Value: val, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

func (p *Parser) parseGotoStatement() (ast.Statement, bool) {
	start := p.advance() // `goto`
	switch {
	case p.at(token.CASE):
		p.advance()
		val, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		end, _ := p.expect(token.SEMICOLON)
		return &ast.GotoStatement{Kind: ast.GotoCase, CaseValue: val, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	case p.at(token.DEFAULT):
		p.advance()
		end, _ := p.expect(token.SEMICOLON)
		return &ast.GotoStatement{Kind: ast.GotoDefault, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	default:
		label, ok := p.parseIdentifier()
		if !ok {
			return nil, false
		}
		end, _ := p.expect(token.SEMICOLON)
		return &ast.GotoStatement{Kind: ast.GotoLabel, Label: label, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	}
}

func (p *Parser) parseLockStatement() (ast.Statement, bool) {
	start := p.advance() // `lock`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.LockStatement{Expr: expr, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

func (p *Parser) parseFixedStatement() (ast.Statement, bool) {
	start := p.advance() // `fixed`
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.ASSIGN); !ok {
		return nil, false
	}
	val, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.FixedStatement{Type: typ, Name: name, Value: val, Body: body, NodeSpan: spanTok(start).Cover(body.Span())}, true
}

func (p *Parser) parseCheckedUncheckedStatement() (ast.Statement, bool) {
	start := p.advance()
	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}
	return &ast.CheckedUncheckedStatement{Checked: start.Type == token.CHECKED, Body: body, NodeSpan: spanTok(start).Cover(body.NodeSpan)}, true
}

func (p *Parser) parseUnsafeStatement() (ast.Statement, bool) {
	start := p.advance() // `unsafe`
	body, ok := p.parseBlockStatement()
	if !ok {
		return nil, false
	}
	return &ast.UnsafeStatement{Body: body, NodeSpan: spanTok(start).Cover(body.NodeSpan)}, true
}

func (p *Parser) parseYieldStatement() (ast.Statement, bool) {
	start := p.advance() // `yield`
	if p.at(token.BREAK) {
		p.advance()
		end, _ := p.expect(token.SEMICOLON)
		return &ast.YieldStatement{Kind: ast.YieldBreak, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
	}
	if _, ok := p.expect(token.RETURN); !ok {
		return nil, false
	}
	val, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	end, _ := p.expect(token.SEMICOLON)
	return &ast.YieldStatement{Kind: ast.YieldReturn, Value: val, NodeSpan: spanTok(start).Cover(spanTok(end))}, true
}

func (p *Parser) parseLabeledStatement() (ast.Statement, bool) {
	start := p.curTok()
	label, _ := p.parseIdentifier()
	p.advance() // `:`
	inner, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.LabeledStatement{Label: label, Inner: inner, NodeSpan: spanTok(start).Cover(inner.Span())}, true
}
