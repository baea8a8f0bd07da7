// Package combinator is the generic combinator runtime: small recognisers
// compose into larger grammar rules with structured, context-annotated
// error reporting.
//
// A Recognizer[T] is a pure function from a Cursor to a new Cursor, a
// value, and an optional error, adapted to a token Cursor
// since lexical recognition already turned the byte stream into
// tokens before grammar composition begins. The hand-written recursive
// descent in internal/parser calls into these primitives for every
// repeated/optional/alternated/delimited shape instead of re-implementing
// list and choice logic ad hoc.
package combinator

import (
	"fmt"
	"strings"

	"github.com/cwbudde/csharpfront/internal/token"
)

// Cursor is an immutable view over a token stream plus a position. All
// Recognizer combinators take a Cursor by value and return a new one;
// nothing here mutates shared state, so speculative parses (lambda-vs-
// parenthesized-expression, generic-vs-less-than) can always roll back
// simply by discarding the returned Cursor.
type Cursor struct {
	toks []token.Token
	pos int
}

// NewCursor wraps a token slice (which must end in an EOF token).
func NewCursor(toks []token.Token) Cursor {
	return Cursor{toks: toks, pos: 0}
}

// Cur returns the token at the cursor.
func (c Cursor) Cur() token.Token {
	if c.pos >= len(c.toks) {
		return c.toks[len(c.toks)-1] // EOF
	}
	return c.toks[c.pos]
}

// Peek returns the token n positions ahead of the cursor (Peek(0) == Cur).
func (c Cursor) Peek(n int) token.Token {
	idx := c.pos + n
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[idx]
}

// Advance returns a cursor moved one token forward (clamped at EOF).
func (c Cursor) Advance() Cursor {
	if c.pos >= len(c.toks)-1 {
		return c
	}
	return Cursor{toks: c.toks, pos: c.pos + 1}
}

// AtEOF reports whether the cursor sits on the terminal EOF token.
func (c Cursor) AtEOF() bool { return c.Cur().Type == token.EOF }

// Offset returns the byte offset of the current token, used to report and
// compare error depth.
func (c Cursor) Offset() int { return c.Cur().Pos.Offset }

// ErrorKind taxonomizes parse failures.
type ErrorKind int

const (
	KindExpected ErrorKind = iota
	KindUnexpected
	KindUnterminatedComment
	KindUnterminatedString
	KindInvalidEscape
	KindInvalidNumber
	KindContextFailure
)

// ParseError is a structured failure: where it happened, what kind it is,
// and the stack of grammar-rule contexts (most specific first) active when
// it occurred. Recoverable is false once the failure has passed through
// Cut — such an error must not be swallowed by a surrounding Alt.
type ParseError struct {
	Offset int
	Kind ErrorKind
	Message string
	Context []string
	Recoverable bool
}

func (e *ParseError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
	}
	return fmt.Sprintf("%s (offset %d, in %s)", e.Message, e.Offset, strings.Join(e.Context, " > "))
}

func newErr(offset int, kind ErrorKind, msg string) *ParseError {
	return &ParseError{Offset: offset, Kind: kind, Message: msg, Recoverable: true}
}

// deepest returns whichever error reflects a failure further into the
// input — the Alt merge policy ("keeping the one whose failure is
// farthest in the input; ties merge the expectation sets").
func deepest(a, b *ParseError) *ParseError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Offset > b.Offset:
		return a
	case b.Offset > a.Offset:
		return b
	default:
		merged := *a
		merged.Message = a.Message + " or " + b.Message
		return &merged
	}
}

// Recognizer is a parsing step: given a Cursor, it either succeeds with a
// new Cursor and a value, or fails with a ParseError (the Cursor return is
// meaningless on failure and must not be used).
type Recognizer[T any] func(Cursor) (Cursor, T, *ParseError)

// Tag matches a single token of the given type verbatim: a literal match;
// TokenType already encodes the keyword boundary requirement since the
// lexer only ever emits one token per keyword, never a keyword as a
// prefix of a longer identifier.
func Tag(tt token.Type) Recognizer[token.Token] {
	return func(c Cursor) (Cursor, token.Token, *ParseError) {
		cur := c.Cur()
		if cur.Type != tt {
			return c, token.Token{}, newErr(c.Offset(), KindExpected, "expected "+tt.Name()+", found "+cur.Type.Name())
		}
		return c.Advance(), cur, nil
	}
}

// Keyword matches an IDENT token whose literal text equals word — the
// mechanism contextual keywords (var, when, async,...) are recognised by.
func Keyword(word string) Recognizer[token.Token] {
	return func(c Cursor) (Cursor, token.Token, *ParseError) {
		cur := c.Cur()
		if cur.Type != token.IDENT || cur.Literal != word {
			return c, token.Token{}, newErr(c.Offset(), KindExpected, "expected '"+word+"'")
		}
		return c.Advance(), cur, nil
	}
}

// Alt tries each option in order and returns the first success. On total
// failure it returns the deepest of the sibling failures.
func Alt[T any](opts...Recognizer[T]) Recognizer[T] {
	return func(c Cursor) (Cursor, T, *ParseError) {
		var best *ParseError
		for _, opt := range opts {
			nc, v, err := opt(c)
			if err == nil {
				return nc, v, nil
			}
			if !err.Recoverable {
				return c, v, err
			}
			best = deepest(best, err)
		}
		var zero T
		return c, zero, best
	}
}

// Map transforms a successful recognition's value.
func Map[T, U any](r Recognizer[T], f func(T) U) Recognizer[U] {
	return func(c Cursor) (Cursor, U, *ParseError) {
		nc, v, err := r(c)
		if err != nil {
			var zero U
			return c, zero, err
		}
		return nc, f(v), nil
	}
}

// Value discards r's value and always yields v on success.
func Value[T, U any](v U, r Recognizer[T]) Recognizer[U] {
	return Map(r, func(T) U { return v })
}

// Verify succeeds only if pred accepts the recognized value.
func Verify[T any](r Recognizer[T], pred func(T) bool, msg string) Recognizer[T] {
	return func(c Cursor) (Cursor, T, *ParseError) {
		nc, v, err := r(c)
		if err != nil {
			return c, v, err
		}
		if !pred(v) {
			return c, v, newErr(c.Offset(), KindUnexpected, msg)
		}
		return nc, v, nil
	}
}

// Option is the result of Opt: Present reports whether the wrapped
// recognizer matched.
type Option[T any] struct {
	Present bool
	Value T
}

// Opt never fails: if r fails (recoverably), Opt succeeds with an absent
// Option and the original cursor.
func Opt[T any](r Recognizer[T]) Recognizer[Option[T]] {
	return func(c Cursor) (Cursor, Option[T], *ParseError) {
		nc, v, err := r(c)
		if err != nil {
			if !err.Recoverable {
				return c, Option[T]{}, err
			}
			return c, Option[T]{}, nil
		}
		return nc, Option[T]{Present: true, Value: v}, nil
	}
}

// Many0 applies r zero or more times, stopping (without failing) at the
// first non-match or EOF.
func Many0[T any](r Recognizer[T]) Recognizer[[]T] {
	return func(c Cursor) (Cursor, []T, *ParseError) {
		var out []T
		cur := c
		for !cur.AtEOF() {
			nc, v, err := r(cur)
			if err != nil {
				if !err.Recoverable {
					return c, nil, err
				}
				break
			}
			if nc.pos == cur.pos {
				break // guard against zero-width infinite loop
			}
			out = append(out, v)
			cur = nc
		}
		return cur, out, nil
	}
}

// Many1 is Many0 but requires at least one success.
func Many1[T any](r Recognizer[T]) Recognizer[[]T] {
	return func(c Cursor) (Cursor, []T, *ParseError) {
		nc, items, err := Many0(r)(c)
		if err != nil {
			return c, nil, err
		}
		if len(items) == 0 {
			return c, nil, newErr(c.Offset(), KindExpected, "expected at least one item")
		}
		return nc, items, nil
	}
}

// SepList0 parses zero or more T separated by sep, stopping when sep is
// no longer found. trailing permits a trailing separator.
func SepList0[T any](item Recognizer[T], sep token.Type, trailing bool) Recognizer[[]T] {
	return func(c Cursor) (Cursor, []T, *ParseError) {
		nc, first, err := Opt(item)(c)
		if err != nil {
			return c, nil, err
		}
		if !first.Present {
			return nc, nil, nil
		}
		out := []T{first.Value}
		cur := nc
		for cur.Cur().Type == sep {
			afterSep := cur.Advance()
			nc2, v, err := Opt(item)(afterSep)
			if err != nil {
				return c, nil, err
			}
			if !v.Present {
				if trailing {
					cur = afterSep
				}
				break
			}
			out = append(out, v.Value)
			cur = nc2
		}
		return cur, out, nil
	}
}

// SepList1 is SepList0 requiring at least one item.
func SepList1[T any](item Recognizer[T], sep token.Type, trailing bool) Recognizer[[]T] {
	return func(c Cursor) (Cursor, []T, *ParseError) {
		nc, out, err := SepList0(item, sep, trailing)(c)
		if err != nil {
			return c, nil, err
		}
		if len(out) == 0 {
			return c, nil, newErr(c.Offset(), KindExpected, "expected at least one item")
		}
		return nc, out, nil
	}
}

// Preceded runs l then m, keeping only m's value.
func Preceded[O, M any](l Recognizer[O], m Recognizer[M]) Recognizer[M] {
	return func(c Cursor) (Cursor, M, *ParseError) {
		nc, _, err := l(c)
		if err != nil {
			var zero M
			return c, zero, err
		}
		return m(nc)
	}
}

// Terminated runs m then r, keeping only m's value.
func Terminated[M, C any](m Recognizer[M], r Recognizer[C]) Recognizer[M] {
	return func(c Cursor) (Cursor, M, *ParseError) {
		nc, v, err := m(c)
		if err != nil {
			return c, v, err
		}
		nc2, _, err := r(nc)
		if err != nil {
			var zero M
			return c, zero, err
		}
		return nc2, v, nil
	}
}

// Delimited runs l, then m, then r, keeping only m's value.
func Delimited[O, M, C any](l Recognizer[O], m Recognizer[M], r Recognizer[C]) Recognizer[M] {
	return Preceded(l, Terminated(m, r))
}

// Context annotates any failure from r with a named grammar-rule frame,
// pushed onto the front of the context stack (most specific first).
func Context[T any](name string, r Recognizer[T]) Recognizer[T] {
	return func(c Cursor) (Cursor, T, *ParseError) {
		nc, v, err := r(c)
		if err != nil {
			err.Context = append([]string{name}, err.Context...)
		}
		return nc, v, err
	}
}

// Cut marks any failure from r as non-recoverable: an enclosing Alt must
// not swallow it and try a sibling branch. Used once the parser has
// consumed an unambiguous token (e.g. after "{" the matching "}" is cut).
func Cut[T any](r Recognizer[T]) Recognizer[T] {
	return func(c Cursor) (Cursor, T, *ParseError) {
		nc, v, err := r(c)
		if err != nil {
			err.Recoverable = false
		}
		return nc, v, err
	}
}
