package parser

import (
	"testing"

	"github.com/cwbudde/csharpfront/ast"
)

func parsePatternString(t *testing.T, src string) ast.Pattern {
	t.Helper()
	p := New(src)
	pat, ok := p.parsePattern()
	if !ok {
		t.Fatalf("parsePattern(%q) failed: %v", src, p.Errors())
	}
	return pat
}

func TestParsePattern_Discard(t *testing.T) {
	pat := parsePatternString(t, "_")
	if _, ok := pat.(*ast.DiscardPattern); !ok {
		t.Fatalf("got %T, want *ast.DiscardPattern", pat)
	}
}

func TestParsePattern_Var(t *testing.T) {
	pat := parsePatternString(t, "var n")
	v, ok := pat.(*ast.VarPattern)
	if !ok {
		t.Fatalf("got %T, want *ast.VarPattern", pat)
	}
	if v.Name.Name != "n" {
		t.Errorf("Name = %q, want n", v.Name.Name)
	}
}

func TestParsePattern_Declaration(t *testing.T) {
	t.Run("with binding", func(t *testing.T) {
		pat := parsePatternString(t, "int n")
		d, ok := pat.(*ast.DeclarationPattern)
		if !ok {
			t.Fatalf("got %T, want *ast.DeclarationPattern", pat)
		}
		if d.Name == nil || d.Name.Name != "n" {
			t.Errorf("Name = %v, want n", d.Name)
		}
		if _, ok := d.Type.(*ast.PrimitiveType); !ok {
			t.Errorf("Type = %T, want *ast.PrimitiveType", d.Type)
		}
	})
	t.Run("bare type test, no binding", func(t *testing.T) {
		pat := parsePatternString(t, "string")
		d, ok := pat.(*ast.DeclarationPattern)
		if !ok {
			t.Fatalf("got %T, want *ast.DeclarationPattern", pat)
		}
		if d.Name != nil {
			t.Errorf("Name = %v, want nil", d.Name)
		}
	})
}

func TestParsePattern_Constant(t *testing.T) {
	pat := parsePatternString(t, "42")
	c, ok := pat.(*ast.ConstantPattern)
	if !ok {
		t.Fatalf("got %T, want *ast.ConstantPattern", pat)
	}
	lit, ok := c.Value.(*ast.LiteralExpr)
	if !ok {
		t.Fatalf("Value = %T, want *ast.LiteralExpr", c.Value)
	}
	if _, ok := lit.Literal.(*ast.IntegerLiteral); !ok {
		t.Errorf("Literal = %T, want *ast.IntegerLiteral", lit.Literal)
	}
}

func TestParsePattern_Relational(t *testing.T) {
	tests := []struct {
		src string
		op  ast.RelationalOp
	}{
		{"< 0", ast.RelLt},
		{"<= 0", ast.RelLe},
		{"> 0", ast.RelGt},
		{">= 0", ast.RelGe},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			pat := parsePatternString(t, tt.src)
			r, ok := pat.(*ast.RelationalPattern)
			if !ok {
				t.Fatalf("got %T, want *ast.RelationalPattern", pat)
			}
			if r.Op != tt.op {
				t.Errorf("Op = %v, want %v", r.Op, tt.op)
			}
		})
	}
}

func TestParsePattern_LogicalAndOrNot(t *testing.T) {
	t.Run("or binds looser than and", func(t *testing.T) {
		pat := parsePatternString(t, "1 or 2 and 3")
		or, ok := pat.(*ast.LogicalPattern)
		if !ok || or.Op != ast.PatternOr {
			t.Fatalf("got %#v, want top-level PatternOr", pat)
		}
		if and, ok := or.Right.(*ast.LogicalPattern); !ok || and.Op != ast.PatternAnd {
			t.Fatalf("Right = %#v, want PatternAnd", or.Right)
		}
	})
	t.Run("not", func(t *testing.T) {
		pat := parsePatternString(t, "not null")
		n, ok := pat.(*ast.NotPattern)
		if !ok {
			t.Fatalf("got %T, want *ast.NotPattern", pat)
		}
		if _, ok := n.Inner.(*ast.ConstantPattern); !ok {
			t.Errorf("Inner = %T, want *ast.ConstantPattern", n.Inner)
		}
	})
}

func TestParsePattern_Recursive(t *testing.T) {
	pat := parsePatternString(t, "Point { X: 0, Y: var y }")
	r, ok := pat.(*ast.RecursivePattern)
	if !ok {
		t.Fatalf("got %T, want *ast.RecursivePattern", pat)
	}
	if _, ok := r.Type.(*ast.ReferenceType); !ok {
		t.Errorf("Type = %T, want *ast.ReferenceType", r.Type)
	}
	if len(r.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(r.Properties))
	}
	if r.Properties[0].Name.Name != "X" {
		t.Errorf("Properties[0].Name = %q, want X", r.Properties[0].Name.Name)
	}
	if _, ok := r.Properties[1].Pattern.(*ast.VarPattern); !ok {
		t.Errorf("Properties[1].Pattern = %T, want *ast.VarPattern", r.Properties[1].Pattern)
	}
}

func TestParsePattern_Positional(t *testing.T) {
	pat := parsePatternString(t, "(var a, var b)")
	pos, ok := pat.(*ast.PositionalPattern)
	if !ok {
		t.Fatalf("got %T, want *ast.PositionalPattern", pat)
	}
	if len(pos.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(pos.Elements))
	}
}

func TestParsePattern_Parenthesized(t *testing.T) {
	pat := parsePatternString(t, "(1 or 2)")
	paren, ok := pat.(*ast.ParenthesizedPattern)
	if !ok {
		t.Fatalf("got %T, want *ast.ParenthesizedPattern", pat)
	}
	if _, ok := paren.Inner.(*ast.LogicalPattern); !ok {
		t.Errorf("Inner = %T, want *ast.LogicalPattern", paren.Inner)
	}
}
