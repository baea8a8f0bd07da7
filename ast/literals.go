package ast

import "github.com/cwbudde/csharpfront/internal/span"

// IntegerLiteral is a decimal/hex/binary integer constant.
type IntegerLiteral struct {
	Value int64
	Suffix string // "", "u", "l", "ul",...
	NodeSpan span.Span
}

func (l *IntegerLiteral) Span() span.Span { return l.NodeSpan }
func (l *IntegerLiteral) expressionNode() {}

// RealLiteral is a floating-point constant; Suffix is one of "", "f",
// "d", "m" (the last meaning System.Decimal).
type RealLiteral struct {
	Value float64
	Suffix string
	NodeSpan span.Span
}

func (l *RealLiteral) Span() span.Span { return l.NodeSpan }
func (l *RealLiteral) expressionNode() {}

// StringLiteral is a decoded "..." or verbatim @"..." string value.
type StringLiteral struct {
	Value string
	Verbatim bool
	NodeSpan span.Span
}

func (l *StringLiteral) Span() span.Span { return l.NodeSpan }
func (l *StringLiteral) expressionNode() {}

// InterpolatedStringPart is one segment of an interpolated string: either
// literal text (Expr == nil) or an embedded expression with an optional
// format specifier (an alignment clause is parsed but not kept).
type InterpolatedStringPart struct {
	Text string
	Expr Expression
	Format string
}

// InterpolatedStringLiteral is $"..." split into text/expression parts.
type InterpolatedStringLiteral struct {
	Parts []InterpolatedStringPart
	Verbatim bool
	NodeSpan span.Span
}

func (l *InterpolatedStringLiteral) Span() span.Span { return l.NodeSpan }
func (l *InterpolatedStringLiteral) expressionNode() {}

// CharLiteral is a single-character constant.
type CharLiteral struct {
	Value rune
	NodeSpan span.Span
}

func (l *CharLiteral) Span() span.Span { return l.NodeSpan }
func (l *CharLiteral) expressionNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
	NodeSpan span.Span
}

func (l *BoolLiteral) Span() span.Span { return l.NodeSpan }
func (l *BoolLiteral) expressionNode() {}

// NullLiteral is `null`.
type NullLiteral struct {
	NodeSpan span.Span
}

func (l *NullLiteral) Span() span.Span { return l.NodeSpan }
func (l *NullLiteral) expressionNode() {}

// DefaultLiteral is the bare `default` keyword used as an expression
// (distinct from the typed DefaultExpr form `default(T)`).
type DefaultLiteral struct {
	NodeSpan span.Span
}

func (l *DefaultLiteral) Span() span.Span { return l.NodeSpan }
func (l *DefaultLiteral) expressionNode() {}
