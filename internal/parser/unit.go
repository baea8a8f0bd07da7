// Compilation-unit driver: the top-level entry
// points that tie the type/expression/statement/declaration grammars
// together into a whole-file parse, plus the two public entry points
// names for the compliance harness.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/token"
)

// ParseFile is the strict end-to-end entry point:
// `parse_file(src) -> Result<CompilationUnit, ParseError>`. Trailing
// non-whitespace after a complete compilation unit is a hard error
// ("cut at EOF").
func ParseFile(src string) (*ast.CompilationUnit, *ParseError) {
	p := New(src)
	unit := p.ParseCompilationUnit()
	if len(p.errors) > 0 {
		return unit, p.errors[0]
	}
	return unit, nil
}

// ParseStatement is the statement-scoped entry point,
// used by harness cases that wrap a single statement rather than a
// whole file: `parse_statement(src) -> Result<Statement, ParseError>`.
func ParseStatement(src string) (ast.Statement, *ParseError) {
	p := New(src)
	stmt, _ := p.ParseTopLevelStatement()
	if len(p.errors) > 0 {
		return stmt, p.errors[0]
	}
	return stmt, nil
}

// ParseTopLevelStatement exposes the statement grammar's entry point on
// an already constructed Parser, so callers that need the accumulated
// Errors/DiagnosticCount alongside the result (the harness runner,
// in particular) don't have to go through the package-level
// ParseStatement, which discards its Parser.
func (p *Parser) ParseTopLevelStatement() (ast.Statement, bool) {
	stmt, ok := p.parseStatement()
	if !ok {
		return stmt, false
	}
	if !p.atEOF() {
		p.errorf(combinator.KindUnexpected, "unexpected trailing input after statement, found %s", p.curTok().Type.Name())
		return stmt, false
	}
	return stmt, true
}

// ParseCompilationUnit runs the full driver over an already
// constructed Parser and returns the CompilationUnit plus any
// diagnostics accumulated on p (the harness inspects p.Errors and
// p.DiagnosticCount() separately from the *ParseError returned by
// ParseFile, since recovery may still produce a usable tree).
func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	start := p.curTok()
	unit := &ast.CompilationUnit{}

	unit.GlobalAttributes = p.parseGlobalAttributeLists()
	unit.Usings = p.parseUsingDirectives()

	if p.at(token.NAMESPACE) && p.peekFileScopedNamespace() {
		ns, ok := p.parseNamespaceDeclaration()
		if ok {
			unit.FileScopedNamespace = ns
			unit.Usings = append(unit.Usings, p.parseUsingDirectives()...)
			ns.Members = p.parseTopLevelDeclarationsAndStatements(unit)
			unit.NodeSpan = spanFrom(start, p.curTok().Pos.Offset)
			p.expectEOF()
			return unit
		}
	}

	unit.Declarations = p.parseTopLevelDeclarationsAndStatements(unit)
	unit.NodeSpan = spanFrom(start, p.curTok().Pos.Offset)
	p.expectEOF()
	return unit
}

// peekFileScopedNamespace reports whether the `namespace` at the
// cursor is immediately followed by a qualified name and a `;` (the
// file-scoped form) rather than a `{` body, without consuming
// anything — a lightweight, non-backtracking lookahead since qualified
// names are a fixed alternating IDENT/DOT pattern.
func (p *Parser) peekFileScopedNamespace() bool {
	n := 1 // skip `namespace`
	if p.peekTok(n).Type != token.IDENT {
		return false
	}
	n++
	for p.peekTok(n).Type == token.DOT && p.peekTok(n+1).Type == token.IDENT {
		n += 2
	}
	return p.peekTok(n).Type == token.SEMICOLON
}

// parseGlobalAttributeLists parses zero or more `[assembly:...]` /
// `[module:...]` groups. Unlike parseAttributeLists
// (used inside declarations), this only consumes brackets that carry
// one of the two global targets, leaving a type declaration's leading
// `[Attr]` group untouched.
func (p *Parser) parseGlobalAttributeLists() []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.at(token.LBRACKET) && p.peekTok(1).Type == token.IDENT &&
		(p.peekTok(1).Literal == "assembly" || p.peekTok(1).Literal == "module") &&
		p.peekTok(2).Type == token.COLON {
		attrs = append(attrs, p.parseAttributeLists()...)
	}
	return attrs
}

// parseUsingDirectives parses zero or more leading `using` directives.
// Using directives must precede non-namespace, non-attribute
// declarations within their enclosing scope. The loop starts a directive
// only at a `using` token, so a `global using` line is not picked up here.
func (p *Parser) parseUsingDirectives() []*ast.UsingDirective {
	var usings []*ast.UsingDirective
	for p.at(token.USING) {
		u, ok := p.parseUsingDirective()
		if !ok {
			p.synchronizeBrace(token.USING, token.NAMESPACE, token.SEMICOLON)
			continue
		}
		usings = append(usings, u)
	}
	return usings
}

// parseTopLevelDeclarationsAndStatements loops attempting a top-level
// declaration, falling back to a top-level statement on failure. Top-level
// statements are accumulated onto
// unit.TopLevelStatements in source order rather than returned, since a
// single file interleaves declarations and statements in the AST as two
// separate lists ("CompilationUnit").
func (p *Parser) parseTopLevelDeclarationsAndStatements(unit *ast.CompilationUnit) []ast.Declaration {
	var decls []ast.Declaration
	for !p.atEOF() {
		if p.at(token.NAMESPACE) || isTypeDeclStart(p.curTok()) ||
			p.at(token.LBRACKET) || isModifierStart(p.curTok()) {
			save := p.cur
			saveErrs := len(p.errors)
			if p.at(token.NAMESPACE) {
				ns, ok := p.parseNamespaceDeclaration()
				if ok {
					decls = append(decls, ns)
					continue
				}
				p.cur = save
				p.errors = p.errors[:saveErrs]
			} else {
				decl, ok := p.parseTypeDeclaration()
				if ok {
					decls = append(decls, decl)
					continue
				}
				p.cur = save
				p.errors = p.errors[:saveErrs]
			}
		}
		stmt, ok := p.parseStatement()
		if !ok {
			p.synchronizeBrace(token.NAMESPACE, token.SEMICOLON)
			continue
		}
		unit.TopLevelStatements = append(unit.TopLevelStatements, stmt)
	}
	return decls
}

// isModifierStart reports whether t could begin a modifier-prefixed
// top-level type declaration (`public class C {}`), so the top-level
// loop tries the declaration path before falling back to a statement.
func isModifierStart(t token.Token) bool {
	if _, ok := modifierTokens[t.Type]; ok {
		return true
	}
	if t.Type == token.IDENT {
		_, ok := modifierKeywords[t.Literal]
		return ok
	}
	return false
}

// expectEOF treats trailing non-whitespace after the compilation unit
// as a hard, non-recoverable error.
func (p *Parser) expectEOF() {
	if !p.atEOF() {
		err := p.errorf(combinator.KindUnexpected, "unexpected trailing input, found %s", p.curTok().Type.Name())
		err.Recoverable = false
	}
}
