// Package parser implements the C# grammar: types, expressions,
// statements, declarations, and the compilation-unit driver, built on
// top of internal/lexer's token stream and internal/combinator's
// generic recognisers.
//
// The grammar itself is hand-written recursive descent (cursor with
// lookahead, precedence-leveled expression parsing, a context stack for
// diagnostics). Lists, optional parts and alternations are written as
// plain loops and conditionals inside each rule; internal/combinator
// supplies the token Cursor and the ParseError type.
package parser

import (
	"fmt"

	"github.com/cwbudde/csharpfront/internal/combinator"
	"github.com/cwbudde/csharpfront/internal/lexer"
	"github.com/cwbudde/csharpfront/internal/token"
)

// ParseError is the structured failure type surfaced to callers; it is
// internal/combinator's ParseError, which already carries offset, kind,
// message and a context-frame stack.
type ParseError = combinator.ParseError

// Parser holds the token cursor, the accumulated diagnostics, and the
// context-frame stack used to annotate errors with the grammar rule
// active when they occurred. No grammar rule in this package pushes a
// frame, so the Context of every recorded error is empty.
type Parser struct {
	cur combinator.Cursor
	src string
	errors []*ParseError
	contexts []string
	diagCount int
	depth int
}

const maxExpressionDepth = 256

// New creates a Parser over src, tokenizing it with internal/lexer.
func New(src string) *Parser {
	toks, lexErrs := lexer.Tokenize(src)
	p := &Parser{cur: combinator.NewCursor(toks), src: src}
	for _, le := range lexErrs {
		p.errors = append(p.errors, &ParseError{
			Offset: le.Offset,
			Kind: combinator.KindUnexpected,
			Message: le.Message,
			Recoverable: true,
		})
	}
	return p
}

// Errors returns every diagnostic recorded during parsing, lexer errors
// first, in source order.
func (p *Parser) Errors() []*ParseError { return p.errors }

// DiagnosticCount is the count of panic-mode recoveries engaged: the
// counter, not the individual diagnostic text, is what callers compare
// against an expected count.
func (p *Parser) DiagnosticCount() int { return p.diagCount }

func (p *Parser) curTok() token.Token { return p.cur.Cur() }
func (p *Parser) peekTok(n int) token.Token { return p.cur.Peek(n) }
func (p *Parser) at(tt token.Type) bool { return p.curTok().Type == tt }
func (p *Parser) atEOF() bool { return p.cur.AtEOF() }

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	t := p.curTok()
	p.cur = p.cur.Advance()
	return t
}

// expect consumes the current token if it matches tt, else records a
// recoverable "expected" diagnostic and leaves the cursor in place.
func (p *Parser) expect(tt token.Type) (token.Token, bool) {
	if p.at(tt) {
		return p.advance(), true
	}
	p.errorf(combinator.KindExpected, "expected %s, found %s", tt.Name(), p.curTok().Type.Name())
	return token.Token{}, false
}

// pushContext/popContext maintain the grammar-rule name stack attached
// to any error raised while active.
func (p *Parser) pushContext(name string) { p.contexts = append(p.contexts, name) }
func (p *Parser) popContext() {
	if len(p.contexts) > 0 {
		p.contexts = p.contexts[:len(p.contexts)-1]
	}
}

// context runs f with name pushed onto the context stack, guaranteeing
// it is popped afterward (mirrors combinator.Context but for the
// hand-written recursive-descent call sites that don't route through a
// Recognizer value).
func (p *Parser) context(name string, f func()) {
	p.pushContext(name)
	defer p.popContext()
	f()
}

func (p *Parser) contextStackCopy() []string {
	out := make([]string, len(p.contexts))
	copy(out, p.contexts)
	return out
}

func (p *Parser) errorf(kind combinator.ErrorKind, format string, args...any) *ParseError {
	err := &ParseError{
		Offset: p.curTok().Pos.Offset,
		Kind: kind,
		Message: fmt.Sprintf(format, args...),
		Context: p.contextStackCopy(),
		Recoverable: true,
	}
	p.errors = append(p.errors, err)
	return err
}

func (p *Parser) errorAt(offset int, kind combinator.ErrorKind, format string, args...any) *ParseError {
	err := &ParseError{
		Offset: offset,
		Kind: kind,
		Message: fmt.Sprintf(format, args...),
		Context: p.contextStackCopy(),
		Recoverable: true,
	}
	p.errors = append(p.errors, err)
	return err
}

// enterExpr guards against runaway recursion on pathological input:
// deeply nested expressions must not stack-overflow, up to an
// implementation-defined limit of at least 128. It returns a leave
// function to call via defer.
func (p *Parser) enterExpr() (func(), bool) {
	if p.depth >= maxExpressionDepth {
		p.errorf(combinator.KindUnexpected, "expression nesting exceeds limit of %d", maxExpressionDepth)
		return func() {}, false
	}
	p.depth++
	return func() { p.depth-- }, true
}

// synchronizeBrace implements bounded panic-mode recovery: upon a
// non-recoverable failure inside a braced body, consume tokens
// (tracking nested brace depth) until the body's brace level returns
// to baseline, then let the caller resume parsing siblings. Each call
// that actually skips tokens increments the diagnostic counter once.
func (p *Parser) synchronizeBrace(syncTokens...token.Type) {
	skipped := false
	defer func() {
		if skipped {
			p.diagCount++
		}
	}()
	depth := 0
	for !p.atEOF() {
		switch p.curTok().Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		}
		if depth == 0 {
			for _, tt := range syncTokens {
				if p.curTok().Type == tt {
					return
				}
			}
		}
		p.advance()
		skipped = true
	}
}
