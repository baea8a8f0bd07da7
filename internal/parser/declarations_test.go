package parser

import (
	"testing"

	"github.com/cwbudde/csharpfront/ast"
)

func TestParseNamespaceDeclaration(t *testing.T) {
	t.Run("block form", func(t *testing.T) {
		p := New("namespace App.Models { class Foo {} }")
		ns, ok := p.parseNamespaceDeclaration()
		if !ok {
			t.Fatalf("parseNamespaceDeclaration failed: %v", p.Errors())
		}
		if ns.FileScoped {
			t.Errorf("FileScoped = true, want false")
		}
		if len(ns.Name.Parts) != 2 || ns.Name.Parts[1].Name != "Models" {
			t.Fatalf("got Name parts %v", ns.Name.Parts)
		}
		if len(ns.Members) != 1 {
			t.Fatalf("got %d members, want 1", len(ns.Members))
		}
	})
	t.Run("file-scoped form", func(t *testing.T) {
		p := New("namespace App.Models;")
		ns, ok := p.parseNamespaceDeclaration()
		if !ok {
			t.Fatalf("parseNamespaceDeclaration failed: %v", p.Errors())
		}
		if !ns.FileScoped {
			t.Errorf("FileScoped = false, want true")
		}
	})
}

func TestParseUsingDirective(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ast.UsingKind
	}{
		{"plain", "using System;", ast.UsingNamespace},
		{"static", "using static System.Math;", ast.UsingStatic},
		{"alias", "using Alias = System.Text.StringBuilder;", ast.UsingAlias},
		{"global", "global using System;", ast.UsingGlobalNamespace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.src)
			ud, ok := p.parseUsingDirective()
			if !ok {
				t.Fatalf("parseUsingDirective(%q) failed: %v", tt.src, p.Errors())
			}
			if ud.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ud.Kind, tt.kind)
			}
		})
	}
}

func TestParseTypeDeclaration_Class(t *testing.T) {
	p := New(`public class Foo<T> : Base, IFace where T : class {
		private int x;
	}`)
	decl, ok := p.parseTypeDeclaration()
	if !ok {
		t.Fatalf("parseTypeDeclaration failed: %v", p.Errors())
	}
	td, ok := decl.(*ast.TypeDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.TypeDeclaration", decl)
	}
	if td.Kind != ast.TypeDeclClass {
		t.Errorf("Kind = %v, want TypeDeclClass", td.Kind)
	}
	if td.Name.Name != "Foo" {
		t.Errorf("Name = %q, want Foo", td.Name.Name)
	}
	if len(td.TypeParams) != 1 || td.TypeParams[0].Name.Name != "T" {
		t.Fatalf("got TypeParams %v", td.TypeParams)
	}
	if len(td.BaseTypes) != 2 {
		t.Fatalf("got %d base types, want 2", len(td.BaseTypes))
	}
	if len(td.Constraints) != 1 || !td.Constraints[0].Class {
		t.Fatalf("got Constraints %v, want a single class constraint", td.Constraints)
	}
	if len(td.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(td.Members))
	}
}

func TestParseTypeDeclaration_Struct(t *testing.T) {
	decl := mustParseTypeDecl(t, "struct Point { public int X; public int Y; }")
	td := decl.(*ast.TypeDeclaration)
	if td.Kind != ast.TypeDeclStruct {
		t.Errorf("Kind = %v, want TypeDeclStruct", td.Kind)
	}
	if len(td.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(td.Members))
	}
}

func TestParseTypeDeclaration_Interface(t *testing.T) {
	decl := mustParseTypeDecl(t, "interface IFoo { void Bar(); }")
	td := decl.(*ast.TypeDeclaration)
	if td.Kind != ast.TypeDeclInterface {
		t.Errorf("Kind = %v, want TypeDeclInterface", td.Kind)
	}
}

func TestParseTypeDeclaration_Record(t *testing.T) {
	t.Run("record class with positional params", func(t *testing.T) {
		decl := mustParseTypeDecl(t, "record Point(int X, int Y);")
		td := decl.(*ast.TypeDeclaration)
		if td.Kind != ast.TypeDeclRecord || td.IsStruct {
			t.Fatalf("got Kind=%v IsStruct=%v", td.Kind, td.IsStruct)
		}
		if len(td.Positional) != 2 || td.Positional[0].Name.Name != "X" {
			t.Fatalf("got Positional %v", td.Positional)
		}
	})
	t.Run("record struct", func(t *testing.T) {
		decl := mustParseTypeDecl(t, "record struct Point(int X, int Y);")
		td := decl.(*ast.TypeDeclaration)
		if td.Kind != ast.TypeDeclRecord || !td.IsStruct {
			t.Fatalf("got Kind=%v IsStruct=%v", td.Kind, td.IsStruct)
		}
	})
}

func TestParseTypeDeclaration_Enum(t *testing.T) {
	decl := mustParseTypeDecl(t, "enum Color : byte { Red, Green = 5, Blue }")
	td := decl.(*ast.TypeDeclaration)
	if td.Kind != ast.TypeDeclEnum {
		t.Fatalf("Kind = %v, want TypeDeclEnum", td.Kind)
	}
	if _, ok := td.EnumBaseType.(*ast.PrimitiveType); !ok {
		t.Errorf("EnumBaseType = %T, want *ast.PrimitiveType", td.EnumBaseType)
	}
	if len(td.EnumMembers) != 3 {
		t.Fatalf("got %d enum members, want 3", len(td.EnumMembers))
	}
	if td.EnumMembers[1].Value == nil {
		t.Errorf("Green's Value is nil, want explicit 5")
	}
}

func TestParseTypeDeclaration_Delegate(t *testing.T) {
	decl := mustParseTypeDecl(t, "delegate int Comparer<T>(T a, T b);")
	td := decl.(*ast.TypeDeclaration)
	if td.Kind != ast.TypeDeclDelegate {
		t.Fatalf("Kind = %v, want TypeDeclDelegate", td.Kind)
	}
	if len(td.DelegateParameters) != 2 {
		t.Fatalf("got %d delegate params, want 2", len(td.DelegateParameters))
	}
}

func mustParseTypeDecl(t *testing.T, src string) ast.Declaration {
	t.Helper()
	p := New(src)
	decl, ok := p.parseTypeDeclaration()
	if !ok {
		t.Fatalf("parseTypeDeclaration(%q) failed: %v", src, p.Errors())
	}
	return decl
}

func parseMemberString(t *testing.T, enclosing string, src string) ast.MemberDeclaration {
	t.Helper()
	p := New(src)
	m, ok := p.parseMember(&ast.Identifier{Name: enclosing})
	if !ok {
		t.Fatalf("parseMember(%q) failed: %v", src, p.Errors())
	}
	return m
}

func TestParseMember_Field(t *testing.T) {
	m := parseMemberString(t, "Foo", "private int x = 1, y;")
	fd, ok := m.(*ast.FieldDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.FieldDeclaration", m)
	}
	if len(fd.Declarators) != 2 {
		t.Fatalf("got %d declarators, want 2", len(fd.Declarators))
	}
	if len(fd.Modifiers) != 1 || fd.Modifiers[0] != ast.ModPrivate {
		t.Errorf("got Modifiers %v", fd.Modifiers)
	}
}

func TestParseMember_PropertyAutoAndExprBody(t *testing.T) {
	t.Run("auto property", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "public int X { get; set; }")
		pd, ok := m.(*ast.PropertyDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.PropertyDeclaration", m)
		}
		if len(pd.Accessors) != 2 {
			t.Fatalf("got %d accessors, want 2", len(pd.Accessors))
		}
	})
	t.Run("expression-bodied property", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "public int X => 1;")
		pd, ok := m.(*ast.PropertyDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.PropertyDeclaration", m)
		}
		if pd.ExprBody == nil {
			t.Errorf("ExprBody is nil")
		}
	})
}

func TestParseMember_Indexer(t *testing.T) {
	m := parseMemberString(t, "Foo", "public int this[int i] { get; set; }")
	idx, ok := m.(*ast.IndexerDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.IndexerDeclaration", m)
	}
	if len(idx.Parameters) != 1 || len(idx.Accessors) != 2 {
		t.Fatalf("got %d params, %d accessors", len(idx.Parameters), len(idx.Accessors))
	}
}

func TestParseMember_EventBothForms(t *testing.T) {
	t.Run("field-like", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "public event EventHandler Changed;")
		ev, ok := m.(*ast.EventDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.EventDeclaration", m)
		}
		if len(ev.Declarators) != 1 {
			t.Fatalf("got %d declarators, want 1", len(ev.Declarators))
		}
	})
	t.Run("accessor form", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "public event EventHandler Changed { add { } remove { } }")
		ev, ok := m.(*ast.EventDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.EventDeclaration", m)
		}
		if len(ev.Accessors) != 2 {
			t.Fatalf("got %d accessors, want 2", len(ev.Accessors))
		}
	})
}

func TestParseMember_MethodAndConstructorAndDestructor(t *testing.T) {
	t.Run("method", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "public void Bar(int a) { return; }")
		md, ok := m.(*ast.MethodDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.MethodDeclaration", m)
		}
		if md.Kind != ast.MethodOrdinary || md.Name.Name != "Bar" {
			t.Errorf("got Kind=%v Name=%v", md.Kind, md.Name)
		}
	})
	t.Run("constructor with base initializer", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "public Foo(int a) : base(a) { }")
		md, ok := m.(*ast.MethodDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.MethodDeclaration", m)
		}
		if md.Kind != ast.MethodConstructor || md.CtorInitKind != ast.CtorInitBase {
			t.Errorf("got Kind=%v CtorInitKind=%v", md.Kind, md.CtorInitKind)
		}
	})
	t.Run("destructor", func(t *testing.T) {
		m := parseMemberString(t, "Foo", "~Foo() { }")
		md, ok := m.(*ast.MethodDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.MethodDeclaration", m)
		}
		if md.Kind != ast.MethodDestructor {
			t.Errorf("Kind = %v, want MethodDestructor", md.Kind)
		}
	})
}

func TestParseMember_OperatorOverloadAndConversion(t *testing.T) {
	t.Run("overload", func(t *testing.T) {
		m := parseMemberString(t, "Vec", "public static Vec operator +(Vec a, Vec b) { return a; }")
		od, ok := m.(*ast.OperatorDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.OperatorDeclaration", m)
		}
		if od.Kind != ast.OperatorOverload || od.Symbol != "+" {
			t.Errorf("got Kind=%v Symbol=%v", od.Kind, od.Symbol)
		}
	})
	t.Run("implicit conversion", func(t *testing.T) {
		m := parseMemberString(t, "Vec", "public static implicit operator int(Vec v) { return 0; }")
		od, ok := m.(*ast.OperatorDeclaration)
		if !ok {
			t.Fatalf("got %T, want *ast.OperatorDeclaration", m)
		}
		if od.Kind != ast.OperatorConversionImplicit {
			t.Errorf("Kind = %v, want OperatorConversionImplicit", od.Kind)
		}
	})
}

func TestParseMember_NestedType(t *testing.T) {
	m := parseMemberString(t, "Foo", "private class Nested { }")
	if _, ok := m.(*ast.TypeDeclaration); !ok {
		t.Fatalf("got %T, want *ast.TypeDeclaration", m)
	}
}
