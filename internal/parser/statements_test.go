package parser

import (
	"testing"

	"github.com/cwbudde/csharpfront/ast"
)

func parseStatementString(t *testing.T, src string) ast.Statement {
	t.Helper()
	p := New(src)
	stmt, ok := p.parseStatement()
	if !ok {
		t.Fatalf("parseStatement(%q): failed, errors=%v", src, p.Errors())
	}
	return stmt
}

func TestParseStatement_Block(t *testing.T) {
	stmt := parseStatementString(t, "{ x = 1; y = 2; }")
	block, ok := stmt.(*ast.BlockStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStatement", stmt)
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(block.Statements))
	}
}

func TestParseStatement_Empty(t *testing.T) {
	stmt := parseStatementString(t, ";")
	if _, ok := stmt.(*ast.EmptyStatement); !ok {
		t.Fatalf("got %T, want *ast.EmptyStatement", stmt)
	}
}

func TestParseStatement_ExpressionStatement(t *testing.T) {
	stmt := parseStatementString(t, "foo();")
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ExpressionStatement", stmt)
	}
	if _, ok := es.Expr.(*ast.InvocationExpr); !ok {
		t.Errorf("Expr = %T, want *ast.InvocationExpr", es.Expr)
	}
}

func TestParseStatement_LocalDeclaration(t *testing.T) {
	t.Run("single declarator with initializer", func(t *testing.T) {
		stmt := parseStatementString(t, "int x = 1;")
		decl, ok := stmt.(*ast.LocalDeclarationStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.LocalDeclarationStatement", stmt)
		}
		if len(decl.Declarators) != 1 || decl.Declarators[0].Name.Name != "x" {
			t.Fatalf("got declarators %v", decl.Declarators)
		}
		if decl.Declarators[0].Initializer == nil {
			t.Errorf("Initializer is nil")
		}
	})
	t.Run("multiple declarators", func(t *testing.T) {
		stmt := parseStatementString(t, "int a, b = 2;")
		decl, ok := stmt.(*ast.LocalDeclarationStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.LocalDeclarationStatement", stmt)
		}
		if len(decl.Declarators) != 2 {
			t.Fatalf("got %d declarators, want 2", len(decl.Declarators))
		}
		if decl.Declarators[0].Initializer != nil {
			t.Errorf("declarator 0 initializer = %v, want nil", decl.Declarators[0].Initializer)
		}
	})
	t.Run("const", func(t *testing.T) {
		stmt := parseStatementString(t, "const int x = 1;")
		decl, ok := stmt.(*ast.LocalDeclarationStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.LocalDeclarationStatement", stmt)
		}
		if !decl.Const {
			t.Errorf("Const = false, want true")
		}
	})
}

func TestParseStatement_Deconstruction(t *testing.T) {
	stmt := parseStatementString(t, "var (a, b) = pair;")
	decon, ok := stmt.(*ast.DeconstructionStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.DeconstructionStatement", stmt)
	}
	if len(decon.Targets) != 2 || !decon.Targets[0].IsVar || decon.Targets[0].Name.Name != "a" {
		t.Fatalf("got targets %v", decon.Targets)
	}
}

func TestParseStatement_LocalFunction(t *testing.T) {
	stmt := parseStatementString(t, "int Add(int a, int b) => a + b;")
	fn, ok := stmt.(*ast.LocalFunctionStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.LocalFunctionStatement", stmt)
	}
	if fn.Name.Name != "Add" || len(fn.Parameters) != 2 {
		t.Fatalf("got Name=%s, %d params", fn.Name.Name, len(fn.Parameters))
	}
	if _, ok := fn.Body.(ast.Expression); !ok {
		t.Errorf("Body = %T, want an Expression", fn.Body)
	}
}

func TestParseStatement_If(t *testing.T) {
	t.Run("no else", func(t *testing.T) {
		stmt := parseStatementString(t, "if (a) b();")
		ifs, ok := stmt.(*ast.IfStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.IfStatement", stmt)
		}
		if ifs.Else != nil {
			t.Errorf("Else = %v, want nil", ifs.Else)
		}
	})
	t.Run("dangling else binds to nearest if", func(t *testing.T) {
		stmt := parseStatementString(t, "if (a) if (b) c(); else d();")
		outer := stmt.(*ast.IfStatement)
		if outer.Else != nil {
			t.Fatalf("outer.Else = %v, want nil", outer.Else)
		}
		inner, ok := outer.Then.(*ast.IfStatement)
		if !ok {
			t.Fatalf("outer.Then = %T, want *ast.IfStatement", outer.Then)
		}
		if inner.Else == nil {
			t.Errorf("inner.Else is nil, want the dangling else")
		}
	})
}

func TestParseStatement_For(t *testing.T) {
	stmt := parseStatementString(t, "for (int i = 0; i < 10; i++) body();")
	f, ok := stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ForStatement", stmt)
	}
	if _, ok := f.Init.(*ast.LocalDeclarationStatement); !ok {
		t.Errorf("Init = %T, want *ast.LocalDeclarationStatement", f.Init)
	}
	if f.Cond == nil {
		t.Errorf("Cond is nil")
	}
	if len(f.Post) != 1 {
		t.Errorf("got %d post-exprs, want 1", len(f.Post))
	}
}

func TestParseStatement_ForEach(t *testing.T) {
	t.Run("explicit type", func(t *testing.T) {
		stmt := parseStatementString(t, "foreach (int x in xs) body();")
		fe, ok := stmt.(*ast.ForEachStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.ForEachStatement", stmt)
		}
		if fe.IsVar {
			t.Errorf("IsVar = true, want false")
		}
		if _, ok := fe.Type.(*ast.PrimitiveType); !ok {
			t.Errorf("Type = %T", fe.Type)
		}
	})
	t.Run("var", func(t *testing.T) {
		stmt := parseStatementString(t, "foreach (var x in xs) body();")
		fe, ok := stmt.(*ast.ForEachStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.ForEachStatement", stmt)
		}
		if !fe.IsVar {
			t.Errorf("IsVar = false, want true")
		}
	})
}

func TestParseStatement_WhileAndDoWhile(t *testing.T) {
	t.Run("while", func(t *testing.T) {
		stmt := parseStatementString(t, "while (cond) body();")
		if _, ok := stmt.(*ast.WhileStatement); !ok {
			t.Fatalf("got %T, want *ast.WhileStatement", stmt)
		}
	})
	t.Run("do while", func(t *testing.T) {
		stmt := parseStatementString(t, "do body(); while (cond);")
		if _, ok := stmt.(*ast.DoWhileStatement); !ok {
			t.Fatalf("got %T, want *ast.DoWhileStatement", stmt)
		}
	})
}

func TestParseStatement_Switch(t *testing.T) {
	stmt := parseStatementString(t, `
		switch (x) {
			case 1:
			case 2:
				a();
				break;
			default:
				b();
				break;
		}`)
	sw, ok := stmt.(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.SwitchStatement", stmt)
	}
	if len(sw.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sw.Sections))
	}
	if len(sw.Sections[0].Labels) != 2 {
		t.Fatalf("got %d labels on section 0, want 2 (fallthrough case 1/case 2)", len(sw.Sections[0].Labels))
	}
	if !sw.Sections[1].Labels[0].IsDefault {
		t.Errorf("section 1 label IsDefault = false, want true")
	}
}

func TestParseStatement_Try(t *testing.T) {
	stmt := parseStatementString(t, `
		try {
			risky();
		} catch (InvalidOperationException ex) when (ex.Message != null) {
			handle();
		} finally {
			cleanup();
		}`)
	tr, ok := stmt.(*ast.TryStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.TryStatement", stmt)
	}
	if len(tr.Catches) != 1 {
		t.Fatalf("got %d catches, want 1", len(tr.Catches))
	}
	if tr.Catches[0].Name.Name != "ex" {
		t.Errorf("catch name = %q, want ex", tr.Catches[0].Name.Name)
	}
	if tr.Catches[0].Guard == nil {
		t.Errorf("catch Guard is nil, want the when-clause")
	}
	if tr.Finally == nil {
		t.Errorf("Finally is nil")
	}
}

func TestParseStatement_Using(t *testing.T) {
	t.Run("resource form", func(t *testing.T) {
		stmt := parseStatementString(t, "using (var r = Open()) { r.Read(); }")
		us, ok := stmt.(*ast.UsingStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.UsingStatement", stmt)
		}
		if _, ok := us.Resource.(*ast.LocalDeclarationStatement); !ok {
			t.Errorf("Resource = %T, want *ast.LocalDeclarationStatement", us.Resource)
		}
	})
	t.Run("declaration form", func(t *testing.T) {
		stmt := parseStatementString(t, "using var r = Open();")
		decl, ok := stmt.(*ast.LocalDeclarationStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.LocalDeclarationStatement", stmt)
		}
		if !decl.Using {
			t.Errorf("Using = false, want true")
		}
	})
}

func TestParseStatement_Lock(t *testing.T) {
	stmt := parseStatementString(t, "lock (obj) { critical(); }")
	if _, ok := stmt.(*ast.LockStatement); !ok {
		t.Fatalf("got %T, want *ast.LockStatement", stmt)
	}
}

func TestParseStatement_Fixed(t *testing.T) {
	stmt := parseStatementString(t, "fixed (int* p = &x) { use(p); }")
	fx, ok := stmt.(*ast.FixedStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.FixedStatement", stmt)
	}
	if _, ok := fx.Type.(*ast.PointerType); !ok {
		t.Errorf("Type = %T, want *ast.PointerType", fx.Type)
	}
}

func TestParseStatement_CheckedUncheckedUnsafe(t *testing.T) {
	t.Run("checked", func(t *testing.T) {
		stmt := parseStatementString(t, "checked { x++; }")
		cu, ok := stmt.(*ast.CheckedUncheckedStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.CheckedUncheckedStatement", stmt)
		}
		if !cu.Checked {
			t.Errorf("Checked = false, want true")
		}
	})
	t.Run("unchecked", func(t *testing.T) {
		stmt := parseStatementString(t, "unchecked { x++; }")
		cu := stmt.(*ast.CheckedUncheckedStatement)
		if cu.Checked {
			t.Errorf("Checked = true, want false")
		}
	})
	t.Run("unsafe", func(t *testing.T) {
		stmt := parseStatementString(t, "unsafe { p++; }")
		if _, ok := stmt.(*ast.UnsafeStatement); !ok {
			t.Fatalf("got %T, want *ast.UnsafeStatement", stmt)
		}
	})
}

func TestParseStatement_Yield(t *testing.T) {
	t.Run("yield return", func(t *testing.T) {
		stmt := parseStatementString(t, "yield return 1;")
		y, ok := stmt.(*ast.YieldStatement)
		if !ok {
			t.Fatalf("got %T, want *ast.YieldStatement", stmt)
		}
		if y.Kind != ast.YieldReturn || y.Value == nil {
			t.Errorf("got Kind=%v Value=%v", y.Kind, y.Value)
		}
	})
	t.Run("yield break", func(t *testing.T) {
		stmt := parseStatementString(t, "yield break;")
		y := stmt.(*ast.YieldStatement)
		if y.Kind != ast.YieldBreak {
			t.Errorf("Kind = %v, want YieldBreak", y.Kind)
		}
	})
}

func TestParseStatement_JumpStatements(t *testing.T) {
	t.Run("break", func(t *testing.T) {
		if _, ok := parseStatementString(t, "break;").(*ast.BreakStatement); !ok {
			t.Fatalf("want *ast.BreakStatement")
		}
	})
	t.Run("continue", func(t *testing.T) {
		if _, ok := parseStatementString(t, "continue;").(*ast.ContinueStatement); !ok {
			t.Fatalf("want *ast.ContinueStatement")
		}
	})
	t.Run("return with value", func(t *testing.T) {
		r := parseStatementString(t, "return 1;").(*ast.ReturnStatement)
		if r.Value == nil {
			t.Errorf("Value is nil")
		}
	})
	t.Run("return bare", func(t *testing.T) {
		r := parseStatementString(t, "return;").(*ast.ReturnStatement)
		if r.Value != nil {
			t.Errorf("Value = %v, want nil", r.Value)
		}
	})
	t.Run("throw", func(t *testing.T) {
		th := parseStatementString(t, "throw ex;").(*ast.ThrowStatement)
		if th.Value == nil {
			t.Errorf("Value is nil")
		}
	})
	t.Run("goto label", func(t *testing.T) {
		g := parseStatementString(t, "goto done;").(*ast.GotoStatement)
		if g.Kind != ast.GotoLabel || g.Label.Name != "done" {
			t.Errorf("got Kind=%v Label=%v", g.Kind, g.Label)
		}
	})
	t.Run("goto case", func(t *testing.T) {
		g := parseStatementString(t, "goto case 1;").(*ast.GotoStatement)
		if g.Kind != ast.GotoCase || g.CaseValue == nil {
			t.Errorf("got Kind=%v CaseValue=%v", g.Kind, g.CaseValue)
		}
	})
	t.Run("labeled", func(t *testing.T) {
		lbl := parseStatementString(t, "done: return;").(*ast.LabeledStatement)
		if lbl.Label.Name != "done" {
			t.Errorf("Label = %q, want done", lbl.Label.Name)
		}
		if _, ok := lbl.Inner.(*ast.ReturnStatement); !ok {
			t.Errorf("Inner = %T, want *ast.ReturnStatement", lbl.Inner)
		}
	})
}
