// Package token defines the lexical token vocabulary of C#: keywords,
// punctuators, literal kinds, and the position/span metadata every token
// carries. Contextual keywords (var, when, async, from, where, into, on,
// equals, by, select, group, let, ascending, descending, yield, value,
// add, remove, get, set, init, partial, global, nameof) are deliberately
// NOT their own token types — they lex as plain IDENT and are recognised
// by literal text only where the grammar says they may be.
package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

const (
	ILLEGAL Type = iota
	EOF
	COMMENT

	IDENT
	INT
	FLOAT
	CHAR
	STRING
	VERBATIM_STRING
	INTERPOLATED_STRING

	literalEnd

	// Reserved keywords (cannot be used as identifiers).
	ABSTRACT
	AS
	BASE
	BOOL
	BREAK
	BYTE
	CASE
	CATCH
	CHAR_KW
	CHECKED
	CLASS
	CONST
	CONTINUE
	DECIMAL
	DEFAULT
	DELEGATE
	DO
	DOUBLE
	ELSE
	ENUM
	EVENT
	EXPLICIT
	EXTERN
	FALSE
	FINALLY
	FIXED
	FLOAT_KW
	FOR
	FOREACH
	GOTO
	IF
	IMPLICIT
	IN
	INT_KW
	INTERFACE
	INTERNAL
	IS
	LOCK
	LONG
	NAMESPACE
	NEW
	NULL
	OBJECT
	OPERATOR
	OUT
	OVERRIDE
	PARAMS
	PRIVATE
	PROTECTED
	PUBLIC
	READONLY
	REF
	RETURN
	SBYTE
	SEALED
	SHORT
	SIZEOF
	STACKALLOC
	STATIC
	STRING_KW
	STRUCT
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPEOF
	UINT
	ULONG
	UNCHECKED
	UNSAFE
	USHORT
	USING
	VIRTUAL
	VOID
	VOLATILE
	WHILE
	RECORD // not produced by the lexer: "record" is absent from Keywords, lexes as IDENT and is matched by its text

	keywordEnd

	// Punctuators and operators.
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	SEMICOLON
	COLON
	COMMA
	DOT
	DOTDOT
	QUESTION
	QUESTION_DOT
	QUESTION_BRACKET
	QUESTION_QUESTION
	QUESTION_QUESTION_EQ
	ARROW // =>
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	AMP
	PIPE
	CARET
	TILDE
	BANG
	ASSIGN
	EQ
	NOT_EQ
	LT
	GT
	LE
	GE
	LSHIFT
	RSHIFT
	AND_AND
	OR_OR
	PLUS_PLUS
	MINUS_MINUS
	PLUS_EQ
	MINUS_EQ
	STAR_EQ
	SLASH_EQ
	PERCENT_EQ
	AMP_EQ
	PIPE_EQ
	CARET_EQ
	LSHIFT_EQ
	RSHIFT_EQ
	AT // verbatim-string prefix
	ARROW_PTR // -> (pointer member access)
)

// Keywords maps reserved keyword text to its Type. Built once; identifier
// scanning consults it to decide whether a lexeme is IDENT or a keyword.
var Keywords = map[string]Type{
	"abstract": ABSTRACT, "as": AS, "base": BASE, "bool": BOOL, "break": BREAK,
	"byte": BYTE, "case": CASE, "catch": CATCH, "char": CHAR_KW, "checked": CHECKED, "class": CLASS,
	"const": CONST, "continue": CONTINUE, "decimal": DECIMAL, "default": DEFAULT,
	"delegate": DELEGATE, "do": DO, "double": DOUBLE, "else": ELSE, "enum": ENUM,
	"event": EVENT, "explicit": EXPLICIT, "extern": EXTERN, "false": FALSE,
	"finally": FINALLY, "fixed": FIXED, "float": FLOAT_KW, "for": FOR,
	"foreach": FOREACH, "goto": GOTO, "if": IF, "implicit": IMPLICIT, "in": IN,
	"int": INT_KW, "interface": INTERFACE, "internal": INTERNAL, "is": IS,
	"lock": LOCK, "long": LONG, "namespace": NAMESPACE, "new": NEW, "null": NULL,
	"object": OBJECT, "operator": OPERATOR, "out": OUT, "override": OVERRIDE,
	"params": PARAMS, "private": PRIVATE, "protected": PROTECTED, "public": PUBLIC,
	"readonly": READONLY, "ref": REF, "return": RETURN, "sbyte": SBYTE,
	"sealed": SEALED, "short": SHORT, "sizeof": SIZEOF, "stackalloc": STACKALLOC,
	"static": STATIC, "string": STRING_KW, "struct": STRUCT, "switch": SWITCH,
	"this": THIS, "throw": THROW, "true": TRUE, "try": TRY, "typeof": TYPEOF,
	"uint": UINT, "ulong": ULONG, "unchecked": UNCHECKED, "unsafe": UNSAFE,
	"ushort": USHORT, "using": USING, "virtual": VIRTUAL, "void": VOID,
	"volatile": VOLATILE, "while": WHILE,
}

// ContextualKeywords is not used for lexing (those lexemes are IDENT) — it
// documents the set the grammar may recognise positionally,.
var ContextualKeywords = map[string]bool{
	"var": true, "when": true, "async": true, "from": true, "where": true,
	"into": true, "on": true, "equals": true, "by": true, "select": true,
	"group": true, "let": true, "ascending": true, "descending": true,
	"yield": true, "value": true, "add": true, "remove": true, "get": true,
	"set": true, "init": true, "partial": true, "global": true, "nameof": true,
	"record": true, "required": true, "file": true, "with": true,
}

func (t Type) IsLiteral() bool { return t > ILLEGAL && t < literalEnd }
func (t Type) IsKeyword() bool { return t > literalEnd && t < keywordEnd }

// Position is a human-readable location: 1-based line, 1-based column
// (counted in runes, not bytes), plus the absolute byte offset.
type Position struct {
	Offset int
	Line int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexeme: its kind, literal text, and source position.
// Length is the byte length of Literal as it appeared in the source
// (distinct from Literal for decoded forms such as strings).
type Token struct {
	Type Type
	Literal string
	Pos Position
	Length int
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)@%s", t.Type.Name(), t.Literal, t.Pos)
}

var typeNames = map[Type]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", COMMENT: "COMMENT", IDENT: "IDENT",
	INT: "INT", FLOAT: "FLOAT", CHAR: "CHAR", CHAR_KW: "char", STRING: "STRING",
	VERBATIM_STRING: "VERBATIM_STRING", INTERPOLATED_STRING: "INTERPOLATED_STRING",
	LBRACE: "{", RBRACE: "}", LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	SEMICOLON: ";", COLON: ":", COMMA: ",", DOT: ".", DOTDOT: "..",
	QUESTION: "?", QUESTION_DOT: "?.", QUESTION_BRACKET: "?[",
	QUESTION_QUESTION: "??", QUESTION_QUESTION_EQ: "??=", ARROW: "=>",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~", BANG: "!",
	ASSIGN: "=", EQ: "==", NOT_EQ: "!=", LT: "<", GT: ">", LE: "<=", GE: ">=",
	LSHIFT: "<<", RSHIFT: ">>", AND_AND: "&&", OR_OR: "||",
	PLUS_PLUS: "++", MINUS_MINUS: "--",
	PLUS_EQ: "+=", MINUS_EQ: "-=", STAR_EQ: "*=", SLASH_EQ: "/=", PERCENT_EQ: "%=",
	AMP_EQ: "&=", PIPE_EQ: "|=", CARET_EQ: "^=", LSHIFT_EQ: "<<=", RSHIFT_EQ: ">>=",
	AT: "@", ARROW_PTR: "->",
}

// Name returns a human-readable name for the type, used in diagnostics.
func (t Type) Name() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	for text, kw := range Keywords {
		if kw == t {
			return text
		}
	}
	return fmt.Sprintf("Type(%d)", int(t))
}
