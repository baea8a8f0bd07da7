package ast

import "github.com/cwbudde/csharpfront/internal/span"

// BlockStatement is `{ stmt* }`; an empty block is legal.
type BlockStatement struct {
	Statements []Statement
	NodeSpan span.Span
}

func (s *BlockStatement) Span() span.Span { return s.NodeSpan }
func (s *BlockStatement) statementNode() {}

// ExpressionStatement is `expr;`.
type ExpressionStatement struct {
	Expr Expression
	NodeSpan span.Span
}

func (s *ExpressionStatement) Span() span.Span { return s.NodeSpan }
func (s *ExpressionStatement) statementNode() {}

// VariableDeclarator is one `name (= init)?` slot of a local declaration.
type VariableDeclarator struct {
	Name *Identifier
	Initializer Expression // nil if absent
}

// LocalDeclarationStatement is `[const] Type decl (, decl)*;`.
type LocalDeclarationStatement struct {
	Const bool
	Using bool // `using var x =...;` resource declaration
	Type Type
	Declarators []VariableDeclarator
	NodeSpan span.Span
}

func (s *LocalDeclarationStatement) Span() span.Span { return s.NodeSpan }
func (s *LocalDeclarationStatement) statementNode() {}

// DeconstructionTarget is one binding slot of a deconstruction statement:
// `var a` / `Type a` when Type/IsVar set, or a plain assignment target
// when both are zero (e.g. `(a, existing) = pair;`).
type DeconstructionTarget struct {
	IsVar bool
	Type Type // nil when IsVar or when Target is set instead
	Name *Identifier
	Target Expression // set instead of Name for a pre-existing lvalue
}

// DeconstructionStatement is `(targets) = expr;`.
type DeconstructionStatement struct {
	Targets []DeconstructionTarget
	Value Expression
	NodeSpan span.Span
}

func (s *DeconstructionStatement) Span() span.Span { return s.NodeSpan }
func (s *DeconstructionStatement) statementNode() {}

// LocalFunctionStatement is a function declared inside a method body.
type LocalFunctionStatement struct {
	Modifiers []string
	ReturnType Type
	Name *Identifier
	TypeParams []*TypeParameter
	Parameters []*Parameter
	Body Node // *BlockStatement or Expression (=> body)
	NodeSpan span.Span
}

func (s *LocalFunctionStatement) Span() span.Span { return s.NodeSpan }
func (s *LocalFunctionStatement) statementNode() {}

// IfStatement is `if (cond) then [else else_]`; dangling-else binds to
// the nearest preceding `if` by construction (the recursive-descent
// parser always attaches a trailing `else` to the innermost open `if`).
type IfStatement struct {
	Cond Expression
	Then Statement
	Else Statement // nil if absent
	NodeSpan span.Span
}

func (s *IfStatement) Span() span.Span { return s.NodeSpan }
func (s *IfStatement) statementNode() {}

// ForStatement is the C-style `for (init; cond; post) body`. Init may be
// a LocalDeclarationStatement or a list of expression statements.
type ForStatement struct {
	Init Statement // nil, *LocalDeclarationStatement, or *ExpressionStatement-list wrapper
	InitExprs []Expression
	Cond Expression // nil means "always true"
	Post []Expression
	Body Statement
	NodeSpan span.Span
}

func (s *ForStatement) Span() span.Span { return s.NodeSpan }
func (s *ForStatement) statementNode() {}

// ForEachStatement is `foreach (Type name in expr) body`; Type is nil
// when declared with `var`.
type ForEachStatement struct {
	IsVar bool
	Type Type
	Name *Identifier
	Source Expression
	Body Statement
	NodeSpan span.Span
}

func (s *ForEachStatement) Span() span.Span { return s.NodeSpan }
func (s *ForEachStatement) statementNode() {}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Cond Expression
	Body Statement
	NodeSpan span.Span
}

func (s *WhileStatement) Span() span.Span { return s.NodeSpan }
func (s *WhileStatement) statementNode() {}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	Body Statement
	Cond Expression
	NodeSpan span.Span
}

func (s *DoWhileStatement) Span() span.Span { return s.NodeSpan }
func (s *DoWhileStatement) statementNode() {}

// SwitchLabel is one `case pattern [when guard]:` or `default:` label
// heading a switch section.
type SwitchLabel struct {
	IsDefault bool
	Pattern Pattern // nil when IsDefault
	Guard Expression
}

// SwitchSection is one or more labels followed by one or more statements,
// distinguished from a switch-expression by the trailing `(` after
// `switch` at the statement grammar level.
type SwitchSection struct {
	Labels []SwitchLabel
	Statements []Statement
}

// SwitchStatement is `switch (expr) { section* }`.
type SwitchStatement struct {
	Scrutinee Expression
	Sections []SwitchSection
	NodeSpan span.Span
}

func (s *SwitchStatement) Span() span.Span { return s.NodeSpan }
func (s *SwitchStatement) statementNode() {}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Value Expression // nil if absent
	NodeSpan span.Span
}

func (s *ReturnStatement) Span() span.Span { return s.NodeSpan }
func (s *ReturnStatement) statementNode() {}

// ThrowStatement is `throw [expr];`.
type ThrowStatement struct {
	Value Expression // nil for a bare rethrow
	NodeSpan span.Span
}

func (s *ThrowStatement) Span() span.Span { return s.NodeSpan }
func (s *ThrowStatement) statementNode() {}

// CatchClause is one `catch (Type name?) [when (expr)] block` of a try
// statement; Type is nil for a bare `catch { }`.
type CatchClause struct {
	Type Type
	Name *Identifier
	Guard Expression
	Body *BlockStatement
}

// TryStatement is `try block catch* finally?`; at least one catch or
// finally is required by the grammar (enforced by the parser, not this
// type).
type TryStatement struct {
	Body *BlockStatement
	Catches []CatchClause
	Finally *BlockStatement
	NodeSpan span.Span
}

func (s *TryStatement) Span() span.Span { return s.NodeSpan }
func (s *TryStatement) statementNode() {}

// UsingStatement is the statement form `using (resource) body`; Resource
// is either a *LocalDeclarationStatement or an Expression.
type UsingStatement struct {
	Resource Node
	Body Statement
	NodeSpan span.Span
}

func (s *UsingStatement) Span() span.Span { return s.NodeSpan }
func (s *UsingStatement) statementNode() {}

// LockStatement is `lock (expr) body`.
type LockStatement struct {
	Expr Expression
	Body Statement
	NodeSpan span.Span
}

func (s *LockStatement) Span() span.Span { return s.NodeSpan }
func (s *LockStatement) statementNode() {}

// FixedStatement is `fixed (Type name = expr) body`.
type FixedStatement struct {
	Type Type
	Name *Identifier
	Value Expression
	Body Statement
	NodeSpan span.Span
}

func (s *FixedStatement) Span() span.Span { return s.NodeSpan }
func (s *FixedStatement) statementNode() {}

// CheckedUncheckedStatement is `checked { }` / `unchecked { }` as a
// statement (as opposed to the expression form in expressions.go).
type CheckedUncheckedStatement struct {
	Checked bool
	Body *BlockStatement
	NodeSpan span.Span
}

func (s *CheckedUncheckedStatement) Span() span.Span { return s.NodeSpan }
func (s *CheckedUncheckedStatement) statementNode() {}

// UnsafeStatement is `unsafe { }`.
type UnsafeStatement struct {
	Body *BlockStatement
	NodeSpan span.Span
}

func (s *UnsafeStatement) Span() span.Span { return s.NodeSpan }
func (s *UnsafeStatement) statementNode() {}

// YieldKind distinguishes `yield return` from `yield break`.
type YieldKind int

const (
	YieldReturn YieldKind = iota
	YieldBreak
)

// YieldStatement is `yield return expr;` or `yield break;`.
type YieldStatement struct {
	Kind YieldKind
	Value Expression // set only for YieldReturn
	NodeSpan span.Span
}

func (s *YieldStatement) Span() span.Span { return s.NodeSpan }
func (s *YieldStatement) statementNode() {}

// BreakStatement is `break;`.
type BreakStatement struct{ NodeSpan span.Span }

func (s *BreakStatement) Span() span.Span { return s.NodeSpan }
func (s *BreakStatement) statementNode() {}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ NodeSpan span.Span }

func (s *ContinueStatement) Span() span.Span { return s.NodeSpan }
func (s *ContinueStatement) statementNode() {}

// GotoKind distinguishes the three `goto` forms.
type GotoKind int

const (
	GotoLabel GotoKind = iota
	GotoCase
	GotoDefault
)

// GotoStatement is `goto ident;`, `goto case expr;`, or `goto default;`.
type GotoStatement struct {
	Kind GotoKind
	Label *Identifier // set for GotoLabel
	CaseValue Expression // set for GotoCase
	NodeSpan span.Span
}

func (s *GotoStatement) Span() span.Span { return s.NodeSpan }
func (s *GotoStatement) statementNode() {}

// LabeledStatement is `ident : stmt`.
type LabeledStatement struct {
	Label *Identifier
	Inner Statement
	NodeSpan span.Span
}

func (s *LabeledStatement) Span() span.Span { return s.NodeSpan }
func (s *LabeledStatement) statementNode() {}

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ NodeSpan span.Span }

func (s *EmptyStatement) Span() span.Span { return s.NodeSpan }
func (s *EmptyStatement) statementNode() {}
