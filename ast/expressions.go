package ast

import "github.com/cwbudde/csharpfront/internal/span"

// BinaryOp enumerates the operators folded at precedence levels L2-L13.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNotEq
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLogicalAnd
	OpLogicalOr
	OpCoalesce
	OpRange
)

// BinaryExpr is a resolved infix operation; parentheses never appear
// here because precedence climbing folds operators directly, never a
// flat token list.
type BinaryExpr struct {
	Left, Right Expression
	Op BinaryOp
	NodeSpan span.Span
}

func (e *BinaryExpr) Span() span.Span { return e.NodeSpan }
func (e *BinaryExpr) expressionNode() {}

// UnaryOp enumerates the L0 prefix operators.
type UnaryOp int

const (
	OpPlus UnaryOp = iota
	OpNeg
	OpNot
	OpBitNot
	OpPreInc
	OpPreDec
	OpAddressOf
	OpDeref
	OpAwait
	OpIndexFromEnd
)

// UnaryExpr is a prefix operator applied to its operand.
type UnaryExpr struct {
	Op UnaryOp
	Operand Expression
	NodeSpan span.Span
}

func (e *UnaryExpr) Span() span.Span { return e.NodeSpan }
func (e *UnaryExpr) expressionNode() {}

// PostfixOp enumerates postfix-chain operators that carry no payload of
// their own (`++`, `--`, null-forgiving `!`).
type PostfixOp int

const (
	OpPostInc PostfixOp = iota
	OpPostDec
	OpNullForgiving
)

// PostfixExpr applies a payload-free postfix operator.
type PostfixExpr struct {
	Operand Expression
	Op PostfixOp
	NodeSpan span.Span
}

func (e *PostfixExpr) Span() span.Span { return e.NodeSpan }
func (e *PostfixExpr) expressionNode() {}

// CastExpr is `(T) expr`.
type CastExpr struct {
	Target Type
	Operand Expression
	NodeSpan span.Span
}

func (e *CastExpr) Span() span.Span { return e.NodeSpan }
func (e *CastExpr) expressionNode() {}

// AssignmentOp enumerates L16 assignment operators.
type AssignmentOp int

const (
	AssignPlain AssignmentOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignAnd
	AssignOr
	AssignXor
	AssignShl
	AssignShr
	AssignCoalesce
)

// AssignmentExpr is a right-associative assignment, including the
// compound forms and `??=`.
type AssignmentExpr struct {
	Target Expression
	Op AssignmentOp
	Value Expression
	NodeSpan span.Span
}

func (e *AssignmentExpr) Span() span.Span { return e.NodeSpan }
func (e *AssignmentExpr) expressionNode() {}

// ConditionalExpr is the ternary `cond ? whenTrue : whenFalse`.
type ConditionalExpr struct {
	Cond, WhenTrue, WhenFalse Expression
	NodeSpan span.Span
}

func (e *ConditionalExpr) Span() span.Span { return e.NodeSpan }
func (e *ConditionalExpr) expressionNode() {}

// IdentifierExpr is a bare name used as a value (a variable, or a
// reference to an unqualified member resolved later).
type IdentifierExpr struct {
	Name *Identifier
	NodeSpan span.Span
}

func (e *IdentifierExpr) Span() span.Span { return e.NodeSpan }
func (e *IdentifierExpr) expressionNode() {}

// LiteralExpr wraps any Literal variant for use where an Expression is
// expected.
type LiteralExpr struct {
	Literal Expression // one of the *Literal types in literals.go
	NodeSpan span.Span
}

func (e *LiteralExpr) Span() span.Span { return e.NodeSpan }
func (e *LiteralExpr) expressionNode() {}

// ThisExpr is the `this` keyword used as an expression.
type ThisExpr struct{ NodeSpan span.Span }

func (e *ThisExpr) Span() span.Span { return e.NodeSpan }
func (e *ThisExpr) expressionNode() {}

// BaseExpr is the `base` keyword used as an expression.
type BaseExpr struct{ NodeSpan span.Span }

func (e *BaseExpr) Span() span.Span { return e.NodeSpan }
func (e *BaseExpr) expressionNode() {}

// ParenthesizedExpr preserves an explicit `(expr)` grouping when the
// grammar needs to distinguish it from its inner expression (e.g. cast
// disambiguation, tuple-vs-parenthesized lookahead).
type ParenthesizedExpr struct {
	Inner Expression
	NodeSpan span.Span
}

func (e *ParenthesizedExpr) Span() span.Span { return e.NodeSpan }
func (e *ParenthesizedExpr) expressionNode() {}

// TupleExpr is `(a, b,...)` with at least two elements (a single
// parenthesized expression parses as ParenthesizedExpr instead).
type TupleArgument struct {
	Name *Identifier // nil if unnamed
	Value Expression
}

type TupleExpr struct {
	Elements []TupleArgument
	NodeSpan span.Span
}

func (e *TupleExpr) Span() span.Span { return e.NodeSpan }
func (e *TupleExpr) expressionNode() {}

// ArgumentModifier annotates an invocation argument's passing mode.
type ArgumentModifier int

const (
	ArgNone ArgumentModifier = iota
	ArgRef
	ArgOut
	ArgIn
)

// Argument is one invocation/constructor argument: optionally named,
// optionally carrying a ref/out/in modifier ("Invocation
// arguments").
type Argument struct {
	Name *Identifier
	Modifier ArgumentModifier
	Value Expression
}

// InvocationExpr is `callee(args)`.
type InvocationExpr struct {
	Callee Expression
	Arguments []Argument
	NodeSpan span.Span
}

func (e *InvocationExpr) Span() span.Span { return e.NodeSpan }
func (e *InvocationExpr) expressionNode() {}

// MemberAccessExpr is `target.Name`, or `target->Name` (pointer member
// access, unsafe context only) when Arrow is set.
type MemberAccessExpr struct {
	Target Expression
	Name *Identifier
	Arrow bool
	NodeSpan span.Span
}

func (e *MemberAccessExpr) Span() span.Span { return e.NodeSpan }
func (e *MemberAccessExpr) expressionNode() {}

// ElementAccessExpr is `target[indices]`.
type ElementAccessExpr struct {
	Target Expression
	Indices []Expression
	NodeSpan span.Span
}

func (e *ElementAccessExpr) Span() span.Span { return e.NodeSpan }
func (e *ElementAccessExpr) expressionNode() {}

// ConditionalAccessKind distinguishes `?.` from `?[`.
type ConditionalAccessKind int

const (
	CondAccessMember ConditionalAccessKind = iota
	CondAccessElement
)

// ConditionalAccessExpr is a null-conditional access `target?.Name` or
// `target?[indices]`, kept as its own node so a lowering pass can expand
// the short-circuit semantics later.
type ConditionalAccessExpr struct {
	Target Expression
	Kind ConditionalAccessKind
	Name *Identifier // set when Kind == CondAccessMember
	Indices []Expression // set when Kind == CondAccessElement
	NodeSpan span.Span
}

func (e *ConditionalAccessExpr) Span() span.Span { return e.NodeSpan }
func (e *ConditionalAccessExpr) expressionNode() {}

// InitializerEntry is one member of an object/collection initializer:
// either `Name = Value` (object init) or a bare `Value` (collection init).
type InitializerEntry struct {
	Name *Identifier // nil for collection-initializer entries
	Value Expression
}

// ObjectCreationExpr is `new Type(args) { init }`; Arguments and
// Initializer are each optional (nil/empty) independently.
type ObjectCreationExpr struct {
	Type Type
	Arguments []Argument
	Initializer []InitializerEntry
	NodeSpan span.Span
}

func (e *ObjectCreationExpr) Span() span.Span { return e.NodeSpan }
func (e *ObjectCreationExpr) expressionNode() {}

// ArrayCreationExpr is `new T[n] {...}` or `new[] {...}` (implicit
// element type, Type is an *ImplicitArrayType in that case).
type ArrayCreationExpr struct {
	Type Type
	Dimensions []Expression // explicit sizes, e.g. new T[3, n]
	Initializer []Expression
	NodeSpan span.Span
}

func (e *ArrayCreationExpr) Span() span.Span { return e.NodeSpan }
func (e *ArrayCreationExpr) expressionNode() {}

// TypeOfExpr is `typeof(T)`.
type TypeOfExpr struct {
	Target Type
	NodeSpan span.Span
}

func (e *TypeOfExpr) Span() span.Span { return e.NodeSpan }
func (e *TypeOfExpr) expressionNode() {}

// SizeOfExpr is `sizeof(T)`.
type SizeOfExpr struct {
	Target Type
	NodeSpan span.Span
}

func (e *SizeOfExpr) Span() span.Span { return e.NodeSpan }
func (e *SizeOfExpr) expressionNode() {}

// DefaultExpr is the typed form `default(T)` (the bare `default` keyword
// is DefaultLiteral instead).
type DefaultExpr struct {
	Target Type
	NodeSpan span.Span
}

func (e *DefaultExpr) Span() span.Span { return e.NodeSpan }
func (e *DefaultExpr) expressionNode() {}

// CheckedUncheckedExpr is `checked(e)` or `unchecked(e)`.
type CheckedUncheckedExpr struct {
	Checked bool
	Operand Expression
	NodeSpan span.Span
}

func (e *CheckedUncheckedExpr) Span() span.Span { return e.NodeSpan }
func (e *CheckedUncheckedExpr) expressionNode() {}

// NameOfExpr is `nameof(e)`.
type NameOfExpr struct {
	Operand Expression
	NodeSpan span.Span
}

func (e *NameOfExpr) Span() span.Span { return e.NodeSpan }
func (e *NameOfExpr) expressionNode() {}

// StackAllocExpr is `stackalloc T[n]`.
type StackAllocExpr struct {
	ElementType Type
	Length Expression
	NodeSpan span.Span
}

func (e *StackAllocExpr) Span() span.Span { return e.NodeSpan }
func (e *StackAllocExpr) expressionNode() {}

// LambdaParameter is one lambda/anonymous-method parameter; Typ is nil
// for the implicitly-typed forms (`x =>...`, `(x, y) =>...`).
type LambdaParameter struct {
	Name *Identifier
	Typ Type
}

// LambdaExpr is `params => body`, where Body is either an Expression
// (expression-bodied lambda) or a *BlockStatement (statement body).
type LambdaExpr struct {
	Async bool
	Parameters []LambdaParameter
	Body Node // Expression or *BlockStatement
	NodeSpan span.Span
}

func (e *LambdaExpr) Span() span.Span { return e.NodeSpan }
func (e *LambdaExpr) expressionNode() {}

// AnonymousMethodExpr is `delegate (params) { body }` / bare `delegate { body }`.
type AnonymousMethodExpr struct {
	Async bool
	Parameters []LambdaParameter // nil if the parameter list was omitted
	Body *BlockStatement
	NodeSpan span.Span
}

func (e *AnonymousMethodExpr) Span() span.Span { return e.NodeSpan }
func (e *AnonymousMethodExpr) expressionNode() {}

// QueryClauseKind tags one LINQ query clause.
type QueryClauseKind int

const (
	QueryFrom QueryClauseKind = iota
	QueryLet
	QueryWhere
	QueryJoin
	QueryOrderBy
	QuerySelect
	QueryGroupBy
	QueryInto
)

// QueryOrdering is one comma-separated `orderby` key.
type QueryOrdering struct {
	KeyExpr Expression
	Descending bool
}

// QueryClause is one clause of a query expression body (
// "Query (LINQ) expression").
type QueryClause struct {
	Kind QueryClauseKind

	// From / Let / Join range variable and source.
	RangeVar *Identifier
	RangeType Type // optional explicit type on `from`/`join`
	Source Expression

	// Where.
	Condition Expression

	// Join.
	JoinOn Expression
	JoinEquals Expression
	JoinInto *Identifier

	// OrderBy.
	Orderings []QueryOrdering

	// Select.
	SelectExpr Expression

	// GroupBy.
	GroupExpr Expression
	ByExpr Expression

	// Into (query continuation).
	IntoName *Identifier
}

// QueryExpr is a full LINQ query: an initial `from`, zero or more
// intermediate clauses, and a terminal select/group, optionally
// continued with `into` and a further query body.
type QueryExpr struct {
	Clauses []QueryClause
	Continuation *QueryExpr // non-nil when the select/group clause is followed by `into`
	NodeSpan span.Span
}

func (e *QueryExpr) Span() span.Span { return e.NodeSpan }
func (e *QueryExpr) expressionNode() {}

// SwitchArm is one `pattern [when guard] => expr` arm of a switch
// expression.
type SwitchArm struct {
	Pattern Pattern
	Guard Expression // optional `when` clause
	Result Expression
}

// SwitchExpr is `scrutinee switch { arms }`.
type SwitchExpr struct {
	Scrutinee Expression
	Arms []SwitchArm
	NodeSpan span.Span
}

func (e *SwitchExpr) Span() span.Span { return e.NodeSpan }
func (e *SwitchExpr) expressionNode() {}

// IsPatternExpr is `expr is pattern` (L6).
type IsPatternExpr struct {
	Operand Expression
	Pattern Pattern
	NodeSpan span.Span
}

func (e *IsPatternExpr) Span() span.Span { return e.NodeSpan }
func (e *IsPatternExpr) expressionNode() {}

// AsExpr is `expr as T` (L6).
type AsExpr struct {
	Operand Expression
	Target Type
	NodeSpan span.Span
}

func (e *AsExpr) Span() span.Span { return e.NodeSpan }
func (e *AsExpr) expressionNode() {}

// ThrowExpr is the expression form `throw expr` (e.g. inside `??`).
type ThrowExpr struct {
	Operand Expression
	NodeSpan span.Span
}

func (e *ThrowExpr) Span() span.Span { return e.NodeSpan }
func (e *ThrowExpr) expressionNode() {}
