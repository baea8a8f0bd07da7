package ast

import "github.com/cwbudde/csharpfront/internal/span"

// DiscardPattern is `_`.
type DiscardPattern struct{ NodeSpan span.Span }

func (p *DiscardPattern) Span() span.Span { return p.NodeSpan }
func (p *DiscardPattern) patternNode() {}

// DeclarationPattern is `Type name` (binds name if the scrutinee's
// runtime type matches Type).
type DeclarationPattern struct {
	Type Type
	Name *Identifier // nil for a bare type-test pattern with no binding
	NodeSpan span.Span
}

func (p *DeclarationPattern) Span() span.Span { return p.NodeSpan }
func (p *DeclarationPattern) patternNode() {}

// ConstantPattern matches a constant expression, e.g. `case 0`.
type ConstantPattern struct {
	Value Expression
	NodeSpan span.Span
}

func (p *ConstantPattern) Span() span.Span { return p.NodeSpan }
func (p *ConstantPattern) patternNode() {}

// VarPattern is `var name`, always matching and binding.
type VarPattern struct {
	Name *Identifier
	NodeSpan span.Span
}

func (p *VarPattern) Span() span.Span { return p.NodeSpan }
func (p *VarPattern) patternNode() {}

// PropertySubpattern is one `Name: pattern` entry of a recursive pattern.
type PropertySubpattern struct {
	Name *Identifier
	Pattern Pattern
}

// RecursivePattern is `[Type] { Name: pattern,... } [name]`, C#'s
// property/positional pattern form.
type RecursivePattern struct {
	Type Type // optional
	Properties []PropertySubpattern
	Name *Identifier // optional `@` binding after the braces
	NodeSpan span.Span
}

func (p *RecursivePattern) Span() span.Span { return p.NodeSpan }
func (p *RecursivePattern) patternNode() {}

// PropertyPattern is `Name: pattern` used standalone within positional
// contexts distinct from RecursivePattern's bundled list.
type PropertyPattern struct {
	Name *Identifier
	Inner Pattern
	NodeSpan span.Span
}

func (p *PropertyPattern) Span() span.Span { return p.NodeSpan }
func (p *PropertyPattern) patternNode() {}

// PositionalPattern is `(pattern, pattern,...)`, matching via
// deconstruction.
type PositionalPattern struct {
	Elements []Pattern
	NodeSpan span.Span
}

func (p *PositionalPattern) Span() span.Span { return p.NodeSpan }
func (p *PositionalPattern) patternNode() {}

// RelationalOp enumerates the comparison operators a relational pattern
// may carry (`< 0`, `>= 10`,...).
type RelationalOp int

const (
	RelLt RelationalOp = iota
	RelGt
	RelLe
	RelGe
)

// RelationalPattern is `< expr`, `<= expr`, `> expr`, `>= expr`.
type RelationalPattern struct {
	Op RelationalOp
	Value Expression
	NodeSpan span.Span
}

func (p *RelationalPattern) Span() span.Span { return p.NodeSpan }
func (p *RelationalPattern) patternNode() {}

// LogicalPatternOp distinguishes `and`/`or` combinators.
type LogicalPatternOp int

const (
	PatternAnd LogicalPatternOp = iota
	PatternOr
)

// LogicalPattern is `left and right` or `left or right`.
type LogicalPattern struct {
	Op LogicalPatternOp
	Left, Right Pattern
	NodeSpan span.Span
}

func (p *LogicalPattern) Span() span.Span { return p.NodeSpan }
func (p *LogicalPattern) patternNode() {}

// NotPattern is `not pattern`.
type NotPattern struct {
	Inner Pattern
	NodeSpan span.Span
}

func (p *NotPattern) Span() span.Span { return p.NodeSpan }
func (p *NotPattern) patternNode() {}

// ParenthesizedPattern preserves an explicit `(pattern)` grouping so
// `and`/`or` precedence round-trips through re-formatting.
type ParenthesizedPattern struct {
	Inner Pattern
	NodeSpan span.Span
}

func (p *ParenthesizedPattern) Span() span.Span { return p.NodeSpan }
func (p *ParenthesizedPattern) patternNode() {}
