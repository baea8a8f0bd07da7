package ast

import "github.com/cwbudde/csharpfront/internal/span"

// PrimitiveKind enumerates the built-in value-type keywords.
type PrimitiveKind int

const (
	PrimBool PrimitiveKind = iota
	PrimByte
	PrimSByte
	PrimShort
	PrimUShort
	PrimInt
	PrimUInt
	PrimLong
	PrimULong
	PrimFloat
	PrimDouble
	PrimDecimal
	PrimChar
	PrimObject
	PrimString
)

// PrimitiveType is a built-in value or reference keyword type.
type PrimitiveType struct {
	Kind PrimitiveKind
	NodeSpan span.Span
}

func (t *PrimitiveType) Span() span.Span { return t.NodeSpan }
func (t *PrimitiveType) typeNode() {}

// ReferenceType names a type by a single identifier (no generic args).
type ReferenceType struct {
	Name *Identifier
	NodeSpan span.Span
}

func (t *ReferenceType) Span() span.Span { return t.NodeSpan }
func (t *ReferenceType) typeNode() {}

// QualifiedType names a type through a dotted path, e.g. System.Text.
type QualifiedType struct {
	Name *QualifiedName
	NodeSpan span.Span
}

func (t *QualifiedType) Span() span.Span { return t.NodeSpan }
func (t *QualifiedType) typeNode() {}

// GenericType is base<args>, where base may itself be qualified.
type GenericType struct {
	Base Type
	Args []Type
	NodeSpan span.Span
}

func (t *GenericType) Span() span.Span { return t.NodeSpan }
func (t *GenericType) typeNode() {}

// ArrayType is element[,...], rank is comma-count + 1.
type ArrayType struct {
	Element Type
	Rank int
	NodeSpan span.Span
}

func (t *ArrayType) Span() span.Span { return t.NodeSpan }
func (t *ArrayType) typeNode() {}

// NullableType is Inner?.
type NullableType struct {
	Inner Type
	NodeSpan span.Span
}

func (t *NullableType) Span() span.Span { return t.NodeSpan }
func (t *NullableType) typeNode() {}

// PointerType is Inner*.
type PointerType struct {
	Inner Type
	NodeSpan span.Span
}

func (t *PointerType) Span() span.Span { return t.NodeSpan }
func (t *PointerType) typeNode() {}

// TupleElementType is one (type, optional-name) slot of a tuple type.
type TupleElementType struct {
	Elem Type
	Name *Identifier // nil if unnamed
	NodeSpan span.Span
}

func (t *TupleElementType) Span() span.Span { return t.NodeSpan }

// TupleType is (T1 n1, T2 n2,...).
type TupleType struct {
	Elements []*TupleElementType
	NodeSpan span.Span
}

func (t *TupleType) Span() span.Span { return t.NodeSpan }
func (t *TupleType) typeNode() {}

// RefType is `ref T` or `ref readonly T` in a return-type/local position.
type RefType struct {
	Inner Type
	ReadOnly bool
	NodeSpan span.Span
}

func (t *RefType) Span() span.Span { return t.NodeSpan }
func (t *RefType) typeNode() {}

// VarType is the implicitly-typed `var` placeholder.
type VarType struct {
	NodeSpan span.Span
}

func (t *VarType) Span() span.Span { return t.NodeSpan }
func (t *VarType) typeNode() {}

// DynamicType is `dynamic`.
type DynamicType struct {
	NodeSpan span.Span
}

func (t *DynamicType) Span() span.Span { return t.NodeSpan }
func (t *DynamicType) typeNode() {}

// VoidType is `void`, legal only as a method return type.
type VoidType struct {
	NodeSpan span.Span
}

func (t *VoidType) Span() span.Span { return t.NodeSpan }
func (t *VoidType) typeNode() {}

// ImplicitArrayType is the `[]` shape used in `new[] {... }`, where the
// element type is inferred rather than written.
type ImplicitArrayType struct {
	Rank int
	NodeSpan span.Span
}

func (t *ImplicitArrayType) Span() span.Span { return t.NodeSpan }
func (t *ImplicitArrayType) typeNode() {}
