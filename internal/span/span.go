// Package span tracks byte offsets into source buffers and skips the
// lexically-insignificant trivia (whitespace, line comments, block
// comments) that sits between tokens.
//
// A Span never owns the bytes it describes; it is a pure (offset, length)
// pair that is only meaningful alongside the source string it was cut from.
package span

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range [Offset, Offset+Length) into a source
// buffer. Equality is structural; ordering is by Offset.
type Span struct {
	Offset int
	Length int
}

// New returns the span covering the whole of src.
func New(src string) Span {
	return Span{Offset: 0, Length: len(src)}
}

// At returns a zero-length span at offset.
func At(offset int) Span {
	return Span{Offset: offset, Length: 0}
}

// End returns the offset immediately after the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Fragment returns the text the span covers within src.
func (s Span) Fragment(src string) string {
	if s.Offset < 0 || s.End() > len(src) {
		return ""
	}
	return src[s.Offset:s.End()]
}

// Cover returns the smallest span that contains both s and other.
func (s Span) Cover(other Span) Span {
	if other.Length == 0 && other.Offset == 0 {
		return s
	}
	if s.Length == 0 && s.Offset == 0 {
		return other
	}
	start := min(s.Offset, other.Offset)
	end := max(s.End(), other.End())
	return Span{Offset: start, Length: end - start}
}

// Covers reports whether s lies entirely within parent — the child-span
// invariant every AST node with a span must satisfy against its parent.
func (s Span) Covers(parent Span) bool {
	return s.Offset >= parent.Offset && s.End() <= parent.End()
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Offset, s.End())
}

// UnterminatedCommentError reports a block comment that never saw its
// closing "*/" before EOF.
type UnterminatedCommentError struct {
	Offset int
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("unterminated block comment starting at offset %d", e.Offset)
}

// SkipTrivia advances pos over any run of whitespace, "//" line comments,
// and "/* */" block comments, returning the new position. It never fails
// on empty input or input with no trivia — it simply returns pos unchanged.
// It only fails when a block comment is opened but never closed.
func SkipTrivia(src string, pos int) (int, error) {
	for pos < len(src) {
		switch {
		case isSpace(src[pos]):
			pos++
		case strings.HasPrefix(src[pos:], "//"):
			nl := strings.IndexAny(src[pos:], "\n\r")
			if nl < 0 {
				return len(src), nil
			}
			pos += nl
		case strings.HasPrefix(src[pos:], "/*"):
			start := pos
			end := strings.Index(src[pos+2:], "*/")
			if end < 0 {
				return len(src), &UnterminatedCommentError{Offset: start}
			}
			pos += 2 + end + 2
		default:
			return pos, nil
		}
	}
	return pos, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// BWS ("bracketed whitespace-skip") runs SkipTrivia before and after p,
// so that higher-level recognisers never have to mention trivia directly.
// p reports the new position and whether it matched; BWS propagates a
// comment error from either surrounding skip.
func BWS(src string, pos int, p func(src string, pos int) (int, bool)) (int, bool, error) {
	pos, err := SkipTrivia(src, pos)
	if err != nil {
		return pos, false, err
	}
	newPos, ok := p(src, pos)
	if !ok {
		return pos, false, nil
	}
	newPos, err = SkipTrivia(src, newPos)
	if err != nil {
		return newPos, true, err
	}
	return newPos, true, nil
}
