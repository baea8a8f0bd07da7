package ast

import "github.com/cwbudde/csharpfront/internal/span"

// AttributeTarget names the position a global or member attribute
// applies to.
type AttributeTarget int

const (
	AttrTargetNone AttributeTarget = iota
	AttrTargetAssembly
	AttrTargetModule
	AttrTargetType
	AttrTargetMethod
	AttrTargetField
	AttrTargetParam
	AttrTargetProperty
	AttrTargetEvent
	AttrTargetReturn
)

// Attribute is one `[Target: Name(args)]` entry; several may share a
// single bracketed group and hence a single Target.
type Attribute struct {
	Target AttributeTarget
	Name *QualifiedName
	Arguments []Argument
	NodeSpan span.Span
}

func (a *Attribute) Span() span.Span { return a.NodeSpan }

// Modifier is a canonical declaration/member modifier keyword. The
// parser accepts any order and any combination — modifier compatibility
// is a semantic, not syntactic, check — and stores them sorted into
// this canonical order for stable comparison.
type Modifier int

const (
	ModPublic Modifier = iota
	ModPrivate
	ModProtected
	ModInternal
	ModStatic
	ModAbstract
	ModSealed
	ModVirtual
	ModOverride
	ModExtern
	ModUnsafe
	ModReadonly
	ModVolatile
	ModNew
	ModPartial
	ModRef
	ModOut
	ModIn
	ModParams
	ModAsync
	ModConst
	ModFixed
	ModRequired
	ModFile
)

// TypeParameter is one entry of a `<T, U,...>` type-parameter list,
// carrying its variance annotation and constraint clause.
type TypeParameterVariance int

const (
	VarianceNone TypeParameterVariance = iota
	VarianceIn
	VarianceOut
)

// TypeParameterConstraint is one element of a `where T :...` clause.
type TypeParameterConstraint struct {
	Class bool // `class` constraint
	Struct bool // `struct` constraint
	New bool // `new` constraint
	NotNull bool
	BaseType Type // a concrete type/interface bound, nil if unused
	Unmanaged bool
}

type TypeParameter struct {
	Name *Identifier
	Variance TypeParameterVariance
	Constraints []TypeParameterConstraint
}

// Parameter is one method/constructor/lambda parameter.
type Parameter struct {
	Modifier ArgumentModifier // ref/out/in, or ArgNone
	Params bool // `params T[] name`
	Type Type
	Name *Identifier
	DefaultValue Expression // nil if absent
}

// NamespaceDeclaration is `namespace Name { decls }` (block form) or
// `namespace Name;` (file-scoped; FileScoped is set and Members holds the
// remainder of the file).
type NamespaceDeclaration struct {
	Name *QualifiedName
	FileScoped bool
	Members []Declaration
	NodeSpan span.Span
}

func (d *NamespaceDeclaration) Span() span.Span { return d.NodeSpan }
func (d *NamespaceDeclaration) declarationNode() {}

// TypeDeclKind distinguishes the six type-declaration forms that share
// one grammar shape (attributes, modifiers, name, type params, base
// list, constraints, body).
type TypeDeclKind int

const (
	TypeDeclClass TypeDeclKind = iota
	TypeDeclStruct
	TypeDeclInterface
	TypeDeclRecord // IsStruct distinguishes `record` from `record struct`
	TypeDeclEnum
	TypeDeclDelegate
)

// RecordPositionalParameter is one parameter of a record's primary
// constructor; it also induces an implicit property of the same name
// (synthesis left to a later stage).
type RecordPositionalParameter struct {
	Type Type
	Name *Identifier
}

// TypeDeclaration unifies class/struct/interface/record/enum/delegate:
// each carries attributes, a canonical modifier set,
// optional generic parameters, an optional base-type list, and either a
// braced body of members or a semicolon (e.g. a record with only a
// primary constructor). Enums always take a braced body.
type TypeDeclaration struct {
	Kind TypeDeclKind
	IsStruct bool // record struct vs record class, when Kind == TypeDeclRecord
	Attributes []*Attribute
	Modifiers []Modifier
	Name *Identifier
	TypeParams []*TypeParameter
	Positional []RecordPositionalParameter // record only
	BaseTypes []Type
	Constraints []TypeParameterConstraint
	Members []MemberDeclaration

	// Delegate-only shape: return type + parameter list, no body/members.
	DelegateReturnType Type
	DelegateParameters []*Parameter

	// Enum-only shape.
	EnumBaseType Type
	EnumMembers []EnumMember

	NodeSpan span.Span
}

func (d *TypeDeclaration) Span() span.Span { return d.NodeSpan }
func (d *TypeDeclaration) declarationNode() {}

// memberNode lets a TypeDeclaration appear as a nested type member.
func (d *TypeDeclaration) memberNode() {}

// EnumMember is one `Name [= expr]` entry of an enum body.
type EnumMember struct {
	Name *Identifier
	Value Expression // nil if absent
}

// FieldDeclaration is `Type name (= init)? (, name (= init)?)*;`.
type FieldDeclaration struct {
	Attributes []*Attribute
	Modifiers []Modifier
	Type Type
	Declarators []VariableDeclarator
	NodeSpan span.Span
}

func (d *FieldDeclaration) Span() span.Span { return d.NodeSpan }
func (d *FieldDeclaration) declarationNode() {}
func (d *FieldDeclaration) memberNode() {}

// AccessorKind distinguishes get/set/init/add/remove accessor bodies.
type AccessorKind int

const (
	AccessorGet AccessorKind = iota
	AccessorSet
	AccessorInit
	AccessorAdd
	AccessorRemove
)

// Accessor is one `[modifiers] kind [body]` entry of a property/event
// body; Body is nil for an auto-property accessor (`get;`).
type Accessor struct {
	Modifiers []Modifier
	Kind AccessorKind
	Body Node // nil, *BlockStatement, or Expression (=> body)
}

// PropertyDeclaration is `Type Name { accessors } [= init;]`.
type PropertyDeclaration struct {
	Attributes []*Attribute
	Modifiers []Modifier
	Type Type
	Name *Identifier
	Accessors []Accessor
	Initializer Expression // nil if absent
	ExprBody Expression // set for `Type Name => expr;` shorthand
	NodeSpan span.Span
}

func (d *PropertyDeclaration) Span() span.Span { return d.NodeSpan }
func (d *PropertyDeclaration) declarationNode() {}
func (d *PropertyDeclaration) memberNode() {}

// IndexerDeclaration is `Type this[params] { accessors }`.
type IndexerDeclaration struct {
	Attributes []*Attribute
	Modifiers []Modifier
	Type Type
	Parameters []*Parameter
	Accessors []Accessor
	NodeSpan span.Span
}

func (d *IndexerDeclaration) Span() span.Span { return d.NodeSpan }
func (d *IndexerDeclaration) declarationNode() {}
func (d *IndexerDeclaration) memberNode() {}

// EventDeclaration is `event Type Name;` (field-like) or `event Type
// Name { add; remove; }` (accessor form).
type EventDeclaration struct {
	Attributes []*Attribute
	Modifiers []Modifier
	Type Type
	Declarators []VariableDeclarator // field-like form
	Accessors []Accessor // accessor form, nil if field-like
	NodeSpan span.Span
}

func (d *EventDeclaration) Span() span.Span { return d.NodeSpan }
func (d *EventDeclaration) declarationNode() {}
func (d *EventDeclaration) memberNode() {}

// MethodKind distinguishes the three callable-member shapes unified by
// the member dispatch (method, constructor, destructor).
type MethodKind int

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodDestructor
)

// ConstructorInitializerKind distinguishes `: base(...)` from `: this(...)`.
type ConstructorInitializerKind int

const (
	CtorInitNone ConstructorInitializerKind = iota
	CtorInitBase
	CtorInitThis
)

// MethodDeclaration unifies Method/Constructor/Destructor: each carries an
// optional return type, a name, optional type parameters, a parameter
// list, optional constraints, and a block or expression body.
type MethodDeclaration struct {
	Kind MethodKind
	Attributes []*Attribute
	Modifiers []Modifier
	ReturnType Type // nil for constructor/destructor
	Name *Identifier
	TypeParams []*TypeParameter
	Parameters []*Parameter
	Constraints []TypeParameterConstraint
	CtorInitKind ConstructorInitializerKind
	CtorInitArgs []Argument
	Body *BlockStatement // nil for abstract/interface/extern methods or expr-bodied
	ExprBody Expression // set for `=> expr;` bodies
	NodeSpan span.Span
}

func (d *MethodDeclaration) Span() span.Span { return d.NodeSpan }
func (d *MethodDeclaration) declarationNode() {}
func (d *MethodDeclaration) memberNode() {}

// OperatorKind distinguishes a user-defined operator overload from an
// implicit/explicit conversion operator.
type OperatorKind int

const (
	OperatorOverload OperatorKind = iota
	OperatorConversionImplicit
	OperatorConversionExplicit
)

// OperatorDeclaration is `operator SYMBOL(params) body` or
// `implicit|explicit operator T(params) body`.
type OperatorDeclaration struct {
	Attributes []*Attribute
	Modifiers []Modifier
	Kind OperatorKind
	Symbol string // set when Kind == OperatorOverload, e.g. "+", "=="
	TargetType Type // set when Kind is a conversion operator
	Parameters []*Parameter
	Body *BlockStatement
	ExprBody Expression
	NodeSpan span.Span
}

func (d *OperatorDeclaration) Span() span.Span { return d.NodeSpan }
func (d *OperatorDeclaration) declarationNode() {}
func (d *OperatorDeclaration) memberNode() {}
