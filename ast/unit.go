package ast

import "github.com/cwbudde/csharpfront/internal/span"

// UsingKind distinguishes the `using` directive forms: namespace, alias,
// and static, each with or without a leading `global`.
type UsingKind int

const (
	UsingNamespace UsingKind = iota
	UsingAlias
	UsingStatic
	UsingGlobalNamespace
	UsingGlobalAlias
	UsingGlobalStatic
)

// UsingDirective is one `using [global] [static] [alias =] name;` line.
type UsingDirective struct {
	Kind UsingKind
	Alias *Identifier // set when Kind is an alias form
	Name *QualifiedName
	NodeSpan span.Span
}

func (u *UsingDirective) Span() span.Span { return u.NodeSpan }

// CompilationUnit is the root of a parsed file: global
// attributes, using directives, at most one file-scoped namespace (with
// the rest of the file's declarations attached to it) or else top-level
// declarations directly, plus any top-level statements (C# 9 style).
type CompilationUnit struct {
	GlobalAttributes []*Attribute
	Usings []*UsingDirective
	FileScopedNamespace *NamespaceDeclaration // nil unless the file uses file-scoped form
	Declarations []Declaration
	TopLevelStatements []Statement
	NodeSpan span.Span
}

func (c *CompilationUnit) Span() span.Span { return c.NodeSpan }
