// Package lexer implements the lexical recognisers for C#: identifiers,
// keywords, literals, and punctuators, each carrying a source span.
// Trivia (whitespace and comments) is consumed
// between tokens via internal/span and never appears in the token stream.
//
// # Unicode and column positions
//
// Column positions are rune counts, not byte offsets or display widths,
// matching the convention used throughout this codebase's lexical layer:
// multi-byte runes (e.g. "中", "Δ") count as a single column each. This
// keeps position arithmetic simple and reproducible at the cost of not
// matching terminal display width for wide characters.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/cwbudde/csharpfront/internal/span"
	"github.com/cwbudde/csharpfront/internal/token"
)

// Error is a lexical error: an unterminated comment/string or an invalid
// escape/number, each positioned at a byte offset.
type Error struct {
	Message string
	Offset int
}

func (e *Error) Error() string { return e.Message }

// Lexer scans C# source text into a stream of Tokens.
type Lexer struct {
	src string
	pos int // current byte offset
	line int
	column int // rune count on current line (1-based)
	errors []*Error
}

// New creates a Lexer over src. A leading UTF-8 BOM is stripped, matching
// how a file is read before lexing regardless of the caller's I/O layer.
func New(src string) *Lexer {
	if strings.HasPrefix(src, "\ufeff") {
		src = src[len("\ufeff"):]
	}
	return &Lexer{src: src, line: 1, column: 1}
}

// Errors returns lexical errors accumulated so far (unterminated comments,
// unterminated strings, invalid escapes/numbers).
func (l *Lexer) Errors() []*Error { return l.errors }

func (l *Lexer) addError(msg string, offset int) {
	l.errors = append(l.errors, &Error{Message: msg, Offset: offset})
}

func (l *Lexer) posAt(offset int) token.Position {
	return token.Position{Offset: offset, Line: l.line, Column: l.column}
}

// advanceTrivia skips whitespace/comments and keeps line/column in sync.
func (l *Lexer) advanceTrivia() {
	start := l.pos
	newPos, err := span.SkipTrivia(l.src, l.pos)
	if err != nil {
		if uce, ok := err.(*span.UnterminatedCommentError); ok {
			l.addError("unterminated block comment", uce.Offset)
		}
	}
	l.advanceLineTracking(start, newPos)
	l.pos = newPos
}

// advanceLineTracking updates line/column as if the lexer had scanned
// [from, to) one rune at a time.
func (l *Lexer) advanceLineTracking(from, to int) {
	for from < to {
		r, size := utf8.DecodeRuneInString(l.src[from:])
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		from += size
	}
}

// Next scans and returns the next token, skipping any leading trivia.
func (l *Lexer) Next() token.Token {
	l.advanceTrivia()
	start := l.pos
	pos := l.posAt(start)

	if l.pos >= len(l.src) {
		return token.Token{Type: token.EOF, Literal: "", Pos: pos}
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case isIdentStart(r):
		return l.scanIdentOrKeyword(start, pos)
	case unicode.IsDigit(r):
		return l.scanNumber(start, pos)
	case r == '"':
		return l.scanString(start, pos, false)
	case r == '\'':
		return l.scanChar(start, pos)
	case r == '@' && l.peekRune(1) == '"':
		return l.scanString(start, pos, true)
	case r == '$' && (l.peekRune(1) == '"' || (l.peekRune(1) == '@' && l.peekRune(2) == '"')):
		return l.scanInterpolatedString(start, pos)
	default:
		return l.scanPunctuator(start, pos)
	}
}

func (l *Lexer) peekRune(n int) rune {
	p := l.pos
	var r rune
	for i := 0; i <= n; i++ {
		if p >= len(l.src) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(l.src[p:])
		p += size
	}
	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// foldWidth normalises fullwidth/halfwidth Unicode variants (e.g. the
// fullwidth Latin letters used in some East-Asian source files) before
// the ASCII-superset identifier check, per the "UTF-8 identifiers
//... may be implemented as a superset" allowance.
func foldWidth(r rune) rune {
	if folded := width.LookupRune(r).Folded(); folded != 0 {
		return folded
	}
	return r
}

func (l *Lexer) scanIdentOrKeyword(start int, pos token.Position) token.Token {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPart(foldWidth(r)) {
			break
		}
		l.pos += size
		l.column++
	}
	lit := l.src[start:l.pos]
	if kw, ok := token.Keywords[lit]; ok {
		return token.Token{Type: kw, Literal: lit, Pos: pos, Length: len(lit)}
	}
	return token.Token{Type: token.IDENT, Literal: lit, Pos: pos, Length: len(lit)}
}

func (l *Lexer) scanNumber(start int, pos token.Position) token.Token {
	isFloat := false
	if strings.HasPrefix(l.src[l.pos:], "0x") || strings.HasPrefix(l.src[l.pos:], "0X") {
		l.advanceRunes(2)
		for l.pos < len(l.src) && isHexDigit(rune(l.src[l.pos])) {
			l.advanceRunes(1)
		}
	} else if strings.HasPrefix(l.src[l.pos:], "0b") || strings.HasPrefix(l.src[l.pos:], "0B") {
		l.advanceRunes(2)
		for l.pos < len(l.src) && (l.src[l.pos] == '0' || l.src[l.pos] == '1' || l.src[l.pos] == '_') {
			l.advanceRunes(1)
		}
	} else {
		for l.pos < len(l.src) && (unicode.IsDigit(rune(l.src[l.pos])) || l.src[l.pos] == '_') {
			l.advanceRunes(1)
		}
		if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && unicode.IsDigit(rune(l.src[l.pos+1])) {
			isFloat = true
			l.advanceRunes(1)
			for l.pos < len(l.src) && unicode.IsDigit(rune(l.src[l.pos])) {
				l.advanceRunes(1)
			}
		}
		if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
			isFloat = true
			l.advanceRunes(1)
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.advanceRunes(1)
			}
			for l.pos < len(l.src) && unicode.IsDigit(rune(l.src[l.pos])) {
				l.advanceRunes(1)
			}
		}
	}
	// Suffixes: u/l/ul (integer), f/d/m (real).
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case 'u', 'U', 'l', 'L':
			l.advanceRunes(1)
			continue
		case 'f', 'F', 'd', 'D', 'm', 'M':
			isFloat = true
			l.advanceRunes(1)
			continue
		}
		break
	}
	lit := l.src[start:l.pos]
	if _, err := strconv.ParseFloat(strings.Trim(lit, "uUlLfFdDmM"), 64); isFloat && err != nil {
		l.addError("invalid numeric literal: "+lit, start)
	}
	tt := token.INT
	if isFloat {
		tt = token.FLOAT
	}
	return token.Token{Type: tt, Literal: lit, Pos: pos, Length: len(lit)}
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '_'
}

func (l *Lexer) advanceRunes(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		l.column++
	}
}

// scanString scans a regular "..." string (escapes) or, if verbatim, a
// @"..." string (only "" is an escape, no backslash escapes).
func (l *Lexer) scanString(start int, pos token.Position, verbatim bool) token.Token {
	if verbatim {
		l.advanceRunes(1) // '@'
	}
	l.advanceRunes(1) // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '"' {
			if verbatim && l.pos+1 < len(l.src) && l.src[l.pos+1] == '"' {
				b.WriteByte('"')
				l.advanceRunes(2)
				continue
			}
			l.advanceRunes(1)
			tt := token.STRING
			if verbatim {
				tt = token.VERBATIM_STRING
			}
			return token.Token{Type: tt, Literal: b.String(), Pos: pos, Length: l.pos - start}
		}
		if !verbatim && c == '\\' {
			decoded, size, ok := l.decodeEscape(l.pos)
			if !ok {
				l.addError("invalid escape sequence", l.pos)
				l.advanceRunes(1)
				continue
			}
			b.WriteRune(decoded)
			for i := 0; i < size; {
				_, s := utf8.DecodeRuneInString(l.src[l.pos:])
				l.pos += s
				l.column++
				i += s
			}
			continue
		}
		if c == '\n' && !verbatim {
			l.addError("unterminated string literal", start)
			return token.Token{Type: token.STRING, Literal: b.String(), Pos: pos, Length: l.pos - start}
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		b.WriteRune(r)
		l.pos += size
		l.column++
	}
	l.addError("unterminated string literal", start)
	return token.Token{Type: token.STRING, Literal: b.String(), Pos: pos, Length: l.pos - start}
}

// scanInterpolatedString scans $"..." / $@"..." as a single raw token;
// the parser's expression grammar re-splits Literal into text segments
// and embedded expressions.
func (l *Lexer) scanInterpolatedString(start int, pos token.Position) token.Token {
	verbatim := false
	l.advanceRunes(1) // '$'
	if l.pos < len(l.src) && l.src[l.pos] == '@' {
		verbatim = true
		l.advanceRunes(1)
	}
	l.advanceRunes(1) // opening quote
	depth := 0
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '{' {
			depth++
			l.advanceRunes(1)
			continue
		}
		if c == '}' && depth > 0 {
			depth--
			l.advanceRunes(1)
			continue
		}
		if c == '"' && depth == 0 {
			if verbatim && l.pos+1 < len(l.src) && l.src[l.pos+1] == '"' {
				l.advanceRunes(2)
				continue
			}
			l.advanceRunes(1)
			return token.Token{Type: token.INTERPOLATED_STRING, Literal: l.src[start:l.pos], Pos: pos, Length: l.pos - start}
		}
		if c == '\\' && !verbatim && depth == 0 {
			l.advanceRunes(2)
			continue
		}
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.advanceRunes(utf8.RuneCountInString(l.src[l.pos : l.pos+size]))
	}
	l.addError("unterminated interpolated string literal", start)
	return token.Token{Type: token.INTERPOLATED_STRING, Literal: l.src[start:l.pos], Pos: pos, Length: l.pos - start}
}

func (l *Lexer) scanChar(start int, pos token.Position) token.Token {
	l.advanceRunes(1) // opening quote
	var value rune
	if l.pos < len(l.src) && l.src[l.pos] == '\\' {
		decoded, size, ok := l.decodeEscape(l.pos)
		if !ok {
			l.addError("invalid escape sequence", l.pos)
		}
		value = decoded
		for i := 0; i < size; {
			_, s := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += s
			l.column++
			i += s
		}
	} else if l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		value = r
		l.pos += size
		l.column++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '\'' {
		l.advanceRunes(1)
	} else {
		l.addError("unterminated char literal", start)
	}
	return token.Token{Type: token.CHAR, Literal: string(value), Pos: pos, Length: l.pos - start}
}

// decodeEscape decodes the escape sequence starting at the backslash at
// offset off, returning the decoded rune and the byte length consumed.
func (l *Lexer) decodeEscape(off int) (rune, int, bool) {
	if off+1 >= len(l.src) {
		return 0, 1, false
	}
	switch l.src[off+1] {
	case '\\':
		return '\\', 2, true
	case '"':
		return '"', 2, true
	case '\'':
		return '\'', 2, true
	case 'n':
		return '\n', 2, true
	case 'r':
		return '\r', 2, true
	case 't':
		return '\t', 2, true
	case '0':
		return 0, 2, true
	case 'u':
		if off+6 <= len(l.src) {
			if v, err := strconv.ParseUint(l.src[off+2:off+6], 16, 32); err == nil {
				return rune(v), 6, true
			}
		}
		return 0, 2, false
	default:
		return 0, 2, false
	}
}

var punctTrie = []struct {
	text string
	typ token.Type
}{
	// Longest first within each starting character so the greedy scan
	// below always finds the maximal munch ("longest-match required").
	{"??=", token.QUESTION_QUESTION_EQ},
	{"<<=", token.LSHIFT_EQ},
	{">>=", token.RSHIFT_EQ},
	{"??", token.QUESTION_QUESTION},
	{"?.", token.QUESTION_DOT},
	{"?[", token.QUESTION_BRACKET},
	{"=>", token.ARROW},
	{"->", token.ARROW_PTR},
	{"==", token.EQ},
	{"!=", token.NOT_EQ},
	{"<=", token.LE},
	{">=", token.GE},
	{"<<", token.LSHIFT},
	{">>", token.RSHIFT},
	{"&&", token.AND_AND},
	{"||", token.OR_OR},
	{"++", token.PLUS_PLUS},
	{"--", token.MINUS_MINUS},
	{"+=", token.PLUS_EQ},
	{"-=", token.MINUS_EQ},
	{"*=", token.STAR_EQ},
	{"/=", token.SLASH_EQ},
	{"%=", token.PERCENT_EQ},
	{"&=", token.AMP_EQ},
	{"|=", token.PIPE_EQ},
	{"^=", token.CARET_EQ},
	{"..", token.DOTDOT},
	{"{", token.LBRACE}, {"}", token.RBRACE},
	{"(", token.LPAREN}, {")", token.RPAREN},
	{"[", token.LBRACKET}, {"]", token.RBRACKET},
	{";", token.SEMICOLON}, {":", token.COLON}, {",", token.COMMA},
	{".", token.DOT}, {"?", token.QUESTION},
	{"+", token.PLUS}, {"-", token.MINUS}, {"*", token.STAR}, {"/", token.SLASH},
	{"%", token.PERCENT}, {"&", token.AMP}, {"|", token.PIPE}, {"^", token.CARET},
	{"~", token.TILDE}, {"!", token.BANG}, {"=", token.ASSIGN},
	{"<", token.LT}, {">", token.GT}, {"@", token.AT},
}

func (l *Lexer) scanPunctuator(start int, pos token.Position) token.Token {
	rest := l.src[l.pos:]
	for _, p := range punctTrie {
		if strings.HasPrefix(rest, p.text) {
			l.advanceRunes(utf8.RuneCountInString(p.text))
			return token.Token{Type: p.typ, Literal: p.text, Pos: pos, Length: len(p.text)}
		}
	}
	r, size := utf8.DecodeRuneInString(rest)
	l.pos += size
	l.column++
	l.addError("unexpected character '"+string(r)+"'", start)
	return token.Token{Type: token.ILLEGAL, Literal: string(r), Pos: pos, Length: size}
}

// Tokenize scans the whole input into a slice of tokens terminated by EOF,
// for callers (the parser's Cursor, tests) that want random-access lookahead.
func Tokenize(src string) ([]token.Token, []*Error) {
	l := New(src)
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Type == token.EOF {
			break
		}
	}
	return toks, l.Errors()
}
