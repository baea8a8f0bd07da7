package parser

import (
	"testing"

	"github.com/cwbudde/csharpfront/ast"
)

func parseExprString(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := New(src)
	expr, ok := p.parseExpression()
	if !ok {
		t.Fatalf("parseExpression(%q): failed, errors=%v", src, p.Errors())
	}
	return expr
}

func TestParseExpression_Precedence(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3): the outer node is the lower
	// precedence level, confirming the fold chain climbs in the right
	// order from L3 up through additive.
	expr := parseExprString(t, "1 + 2 * 3")
	add, ok := expr.(*ast.BinaryExpr)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("got %#v, want top-level OpAdd", expr)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Op != ast.OpMul {
		t.Fatalf("Right = %#v, want OpMul", add.Right)
	}
}

func TestParseExpression_LogicalLevels(t *testing.T) {
	// a || b && c: && binds tighter, so the top node is the OR.
	expr := parseExprString(t, "a || b && c")
	or, ok := expr.(*ast.BinaryExpr)
	if !ok || or.Op != ast.OpLogicalOr {
		t.Fatalf("got %#v, want top-level OpLogicalOr", expr)
	}
	if and, ok := or.Right.(*ast.BinaryExpr); !ok || and.Op != ast.OpLogicalAnd {
		t.Fatalf("Right = %#v, want OpLogicalAnd", or.Right)
	}
}

func TestParseExpression_BitwiseLevels(t *testing.T) {
	// a | b ^ c & d: & tightest, then ^, then |.
	expr := parseExprString(t, "a | b ^ c & d")
	or, ok := expr.(*ast.BinaryExpr)
	if !ok || or.Op != ast.OpBitOr {
		t.Fatalf("got %#v, want top-level OpBitOr", expr)
	}
	xor, ok := or.Right.(*ast.BinaryExpr)
	if !ok || xor.Op != ast.OpBitXor {
		t.Fatalf("Right = %#v, want OpBitXor", or.Right)
	}
	if and, ok := xor.Right.(*ast.BinaryExpr); !ok || and.Op != ast.OpBitAnd {
		t.Fatalf("xor.Right = %#v, want OpBitAnd", xor.Right)
	}
}

func TestParseExpression_Assignment(t *testing.T) {
	expr := parseExprString(t, "a = b = c")
	outer, ok := expr.(*ast.AssignmentExpr)
	if !ok || outer.Op != ast.AssignPlain {
		t.Fatalf("got %#v, want top-level plain assignment", expr)
	}
	if inner, ok := outer.Value.(*ast.AssignmentExpr); !ok || inner.Op != ast.AssignPlain {
		t.Fatalf("Value = %#v, want nested assignment (right-associative)", outer.Value)
	}
}

func TestParseExpression_Ternary(t *testing.T) {
	expr := parseExprString(t, "a ? b : c")
	cond, ok := expr.(*ast.ConditionalExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.ConditionalExpr", expr)
	}
	if _, ok := cond.Cond.(*ast.IdentifierExpr); !ok {
		t.Errorf("Cond = %T", cond.Cond)
	}
}

func TestParseExpression_Literals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want func(t *testing.T, e ast.Expression)
	}{
		{"int", "42", func(t *testing.T, e ast.Expression) {
			lit := e.(*ast.LiteralExpr).Literal.(*ast.IntegerLiteral)
			if lit.Value != 42 {
				t.Errorf("Value = %d, want 42", lit.Value)
			}
		}},
		{"hex int", "0xFF", func(t *testing.T, e ast.Expression) {
			lit := e.(*ast.LiteralExpr).Literal.(*ast.IntegerLiteral)
			if lit.Value != 255 {
				t.Errorf("Value = %d, want 255", lit.Value)
			}
		}},
		{"float", "3.5", func(t *testing.T, e ast.Expression) {
			lit := e.(*ast.LiteralExpr).Literal.(*ast.RealLiteral)
			if lit.Value != 3.5 {
				t.Errorf("Value = %v, want 3.5", lit.Value)
			}
		}},
		{"bool", "true", func(t *testing.T, e ast.Expression) {
			lit := e.(*ast.LiteralExpr).Literal.(*ast.BoolLiteral)
			if !lit.Value {
				t.Errorf("Value = false, want true")
			}
		}},
		{"string", `"hi"`, func(t *testing.T, e ast.Expression) {
			lit := e.(*ast.LiteralExpr).Literal.(*ast.StringLiteral)
			if lit.Value != "hi" {
				t.Errorf("Value = %q, want hi", lit.Value)
			}
		}},
		{"null", "null", func(t *testing.T, e ast.Expression) {
			if _, ok := e.(*ast.LiteralExpr).Literal.(*ast.NullLiteral); !ok {
				t.Errorf("got %T, want *ast.NullLiteral", e.(*ast.LiteralExpr).Literal)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, parseExprString(t, tt.src))
		})
	}
}

func TestParseExpression_PostfixChain(t *testing.T) {
	expr := parseExprString(t, "a.b.c(1, 2)[0]")
	idx, ok := expr.(*ast.ElementAccessExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.ElementAccessExpr", expr)
	}
	inv, ok := idx.Target.(*ast.InvocationExpr)
	if !ok {
		t.Fatalf("Target = %T, want *ast.InvocationExpr", idx.Target)
	}
	if len(inv.Arguments) != 2 {
		t.Errorf("got %d arguments, want 2", len(inv.Arguments))
	}
	member, ok := inv.Callee.(*ast.MemberAccessExpr)
	if !ok {
		t.Fatalf("Callee = %T, want *ast.MemberAccessExpr", inv.Callee)
	}
	if member.Name.Name != "c" {
		t.Errorf("Name = %q, want c", member.Name.Name)
	}
}

func TestParseExpression_PointerMemberAccess(t *testing.T) {
	expr := parseExprString(t, "p->Field")
	member, ok := expr.(*ast.MemberAccessExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.MemberAccessExpr", expr)
	}
	if !member.Arrow {
		t.Errorf("Arrow = false, want true")
	}
	if member.Name.Name != "Field" {
		t.Errorf("Name = %q, want Field", member.Name.Name)
	}
}

func TestParseExpression_ConditionalAccessAndNullCoalesce(t *testing.T) {
	expr := parseExprString(t, "a?.b ?? c")
	or, ok := expr.(*ast.BinaryExpr)
	if !ok || or.Op != ast.OpCoalesce {
		t.Fatalf("got %#v, want top-level OpCoalesce", expr)
	}
	if _, ok := or.Left.(*ast.ConditionalAccessExpr); !ok {
		t.Errorf("Left = %T, want *ast.ConditionalAccessExpr", or.Left)
	}
}

func TestParseExpression_CastVsParenthesized(t *testing.T) {
	t.Run("cast", func(t *testing.T) {
		expr := parseExprString(t, "(int)x")
		cast, ok := expr.(*ast.CastExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.CastExpr", expr)
		}
		if _, ok := cast.Target.(*ast.PrimitiveType); !ok {
			t.Errorf("Target = %T", cast.Target)
		}
	})
	t.Run("parenthesized, not a cast", func(t *testing.T) {
		expr := parseExprString(t, "(x) - 1")
		bin, ok := expr.(*ast.BinaryExpr)
		if !ok || bin.Op != ast.OpSub {
			t.Fatalf("got %#v, want top-level OpSub", expr)
		}
		if _, ok := bin.Left.(*ast.ParenthesizedExpr); !ok {
			t.Errorf("Left = %T, want *ast.ParenthesizedExpr", bin.Left)
		}
	})
}

func TestParseExpression_Lambda(t *testing.T) {
	t.Run("single param, expr body", func(t *testing.T) {
		expr := parseExprString(t, "x => x + 1")
		lam, ok := expr.(*ast.LambdaExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.LambdaExpr", expr)
		}
		if len(lam.Parameters) != 1 || lam.Parameters[0].Name.Name != "x" {
			t.Fatalf("got params %v", lam.Parameters)
		}
	})
	t.Run("parenthesized params, block body", func(t *testing.T) {
		expr := parseExprString(t, "(int x, int y) => { return x + y; }")
		lam, ok := expr.(*ast.LambdaExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.LambdaExpr", expr)
		}
		if len(lam.Parameters) != 2 {
			t.Fatalf("got %d params, want 2", len(lam.Parameters))
		}
		if _, ok := lam.Body.(*ast.BlockStatement); !ok {
			t.Errorf("Body = %T, want *ast.BlockStatement", lam.Body)
		}
	})
}

func TestParseExpression_ObjectAndArrayCreation(t *testing.T) {
	t.Run("object creation with initializer", func(t *testing.T) {
		expr := parseExprString(t, "new Point { X = 1, Y = 2 }")
		oc, ok := expr.(*ast.ObjectCreationExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.ObjectCreationExpr", expr)
		}
		if len(oc.Initializer) != 2 {
			t.Fatalf("got %d initializer entries, want 2", len(oc.Initializer))
		}
	})
	t.Run("array creation with dims", func(t *testing.T) {
		expr := parseExprString(t, "new int[3]")
		ac, ok := expr.(*ast.ArrayCreationExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.ArrayCreationExpr", expr)
		}
		if len(ac.Dimensions) != 1 {
			t.Fatalf("got %d dimensions, want 1", len(ac.Dimensions))
		}
	})
}

func TestParseExpression_InterpolatedString(t *testing.T) {
	expr := parseExprString(t, `$"hello {name}!"`)
	lit := expr.(*ast.LiteralExpr).Literal.(*ast.InterpolatedStringLiteral)
	if len(lit.Parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(lit.Parts))
	}
	if lit.Parts[0].Text != "hello " {
		t.Errorf("Parts[0].Text = %q, want %q", lit.Parts[0].Text, "hello ")
	}
	if lit.Parts[1].Expr == nil {
		t.Fatalf("Parts[1].Expr is nil")
	}
	if id, ok := lit.Parts[1].Expr.(*ast.IdentifierExpr); !ok || id.Name.Name != "name" {
		t.Errorf("Parts[1].Expr = %#v, want identifier name", lit.Parts[1].Expr)
	}
	if lit.Parts[2].Text != "!" {
		t.Errorf("Parts[2].Text = %q, want !", lit.Parts[2].Text)
	}
}

func TestParseExpression_IsAndAsOperators(t *testing.T) {
	t.Run("is pattern", func(t *testing.T) {
		expr := parseExprString(t, "x is int n")
		isExpr, ok := expr.(*ast.IsPatternExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.IsPatternExpr", expr)
		}
		if _, ok := isExpr.Pattern.(*ast.DeclarationPattern); !ok {
			t.Errorf("Pattern = %T, want *ast.DeclarationPattern", isExpr.Pattern)
		}
	})
	t.Run("as cast", func(t *testing.T) {
		expr := parseExprString(t, "x as string")
		as, ok := expr.(*ast.AsExpr)
		if !ok {
			t.Fatalf("got %T, want *ast.AsExpr", expr)
		}
		if _, ok := as.Target.(*ast.PrimitiveType); !ok {
			t.Errorf("Target = %T", as.Target)
		}
	})
}

func TestParseExpression_SwitchExpr(t *testing.T) {
	expr := parseExprString(t, `x switch { 1 => "one", _ => "other" }`)
	sw, ok := expr.(*ast.SwitchExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.SwitchExpr", expr)
	}
	if len(sw.Arms) != 2 {
		t.Fatalf("got %d arms, want 2", len(sw.Arms))
	}
	if _, ok := sw.Arms[1].Pattern.(*ast.DiscardPattern); !ok {
		t.Errorf("arm 1 pattern = %T, want *ast.DiscardPattern", sw.Arms[1].Pattern)
	}
}

func TestParseExpression_QueryExpr(t *testing.T) {
	expr := parseExprString(t, "from x in xs where x > 0 select x")
	q, ok := expr.(*ast.QueryExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.QueryExpr", expr)
	}
	if len(q.Clauses) != 3 {
		t.Fatalf("got %d clauses, want 3 (from, where, select)", len(q.Clauses))
	}
	if q.Clauses[0].Kind != ast.QueryFrom || q.Clauses[1].Kind != ast.QueryWhere || q.Clauses[2].Kind != ast.QuerySelect {
		t.Errorf("got kinds %v, %v, %v", q.Clauses[0].Kind, q.Clauses[1].Kind, q.Clauses[2].Kind)
	}
}
