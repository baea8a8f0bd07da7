package lexer

import (
	"testing"

	"github.com/cwbudde/csharpfront/internal/token"
)

func TestTokenize_Punctuators(t *testing.T) {
	tests := []struct {
		name string
		src string
		want []token.Type
	}{
		{"shift assign before shift before gt", ">>=>>>", []token.Type{token.RSHIFT_EQ, token.RSHIFT, token.GT, token.EOF}},
		{"null coalescing assign before null coalescing", "??=??", []token.Type{token.QUESTION_QUESTION_EQ, token.QUESTION_QUESTION, token.EOF}},
		{"arrow", "=>", []token.Type{token.ARROW, token.EOF}},
		{"pointer arrow vs minus then greater-than", "->", []token.Type{token.ARROW_PTR, token.EOF}},
		{"pointer arrow before minus", "->-", []token.Type{token.ARROW_PTR, token.MINUS, token.EOF}},
		{"range vs dot", "1..2", []token.Type{token.INT, token.DOTDOT, token.INT, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := Tokenize(tt.src)
			if len(errs) != 0 {
				t.Fatalf("unexpected lexer errors: %v", errs)
			}
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tt.want), toks)
			}
			for i, w := range tt.want {
				if toks[i].Type != w {
					t.Errorf("token %d: got %s, want %s", i, toks[i].Type.Name(), w.Name())
				}
			}
		})
	}
}

func TestTokenize_ContextualKeywordsAreIdent(t *testing.T) {
	for _, word := range []string{"var", "when", "async", "from", "yield", "nameof"} {
		toks, _ := Tokenize(word)
		if toks[0].Type != token.IDENT {
			t.Errorf("%q: got %s, want IDENT", word, toks[0].Type.Name())
		}
	}
}

func TestTokenize_StringEscapes(t *testing.T) {
	toks, errs := Tokenize(`"a\nb\"c"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Literal != "a\nb\"c" {
		t.Errorf("got %q", toks[0].Literal)
	}
}

func TestTokenize_VerbatimString(t *testing.T) {
	toks, errs := Tokenize(`@"a""b"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Type != token.VERBATIM_STRING || toks[0].Literal != `a"b` {
		t.Errorf("got %#v", toks[0])
	}
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	_, errs := Tokenize("/* never closed")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestTokenize_BOMStripped(t *testing.T) {
	toks, errs := Tokenize("\ufeffclass C {}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Type != token.CLASS || toks[0].Pos.Offset != 0 {
		t.Errorf("got %#v", toks[0])
	}
}

func TestTokenize_UnicodeColumns(t *testing.T) {
	toks, _ := Tokenize("var Δ")
	// "var" is IDENT here (contextual keyword); "Δ" starts at rune column 5.
	if len(toks) < 2 {
		t.Fatalf("expected 2 tokens, got %d", len(toks))
	}
	if toks[1].Pos.Column != 5 {
		t.Errorf("got column %d, want 5", toks[1].Pos.Column)
	}
}
