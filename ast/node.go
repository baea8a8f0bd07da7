// Package ast defines the C# abstract syntax tree: a closed family of
// tagged node variants produced by internal/parser. Every variant is
// reachable from CompilationUnit; there are no back-edges and no
// interior mutability — nodes are built once by the parser and never
// mutated afterward.
package ast

import "github.com/cwbudde/csharpfront/internal/span"

// Node is the base of every AST value: something with a source span.
type Node interface {
	Span() span.Span
}

// expressionNode, statementNode, declarationNode, memberNode,
// patternNode, and typeNode are unexported marker interfaces: each
// variant implements the matching zero-width method so only that
// family's types satisfy Expression/Statement/Declaration/
// MemberDeclaration/Pattern/Type, closing each tagged union to the set
// defined in this package.
type expressionNode interface{ expressionNode() }
type statementNode interface{ statementNode() }
type declarationNode interface{ declarationNode() }
type memberNode interface{ memberNode() }
type patternNode interface{ patternNode() }
type typeNode interface{ typeNode() }

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode
}

// Statement is any node that performs an action without necessarily
// producing a value.
type Statement interface {
	Node
	statementNode
}

// Declaration is a namespace or type/member declaration.
type Declaration interface {
	Node
	declarationNode
}

// MemberDeclaration is a Declaration that may appear inside a type body.
type MemberDeclaration interface {
	Declaration
	memberNode
}

// Pattern is a `is`/switch pattern-matching sub-tree.
type Pattern interface {
	Node
	patternNode
}

// Type is the type-grammar tagged union.
type Type interface {
	Node
	typeNode
}

// Identifier is a non-empty name, excluding reserved keywords unless the
// production explicitly allows a contextual keyword in that position.
type Identifier struct {
	Name string
	NodeSpan span.Span
}

func (i *Identifier) Span() span.Span { return i.NodeSpan }

// QualifiedName is one or more dot-separated identifiers, as produced by
// the qualified-name recogniser.
type QualifiedName struct {
	Parts []*Identifier
	NodeSpan span.Span
}

func (q *QualifiedName) Span() span.Span { return q.NodeSpan }

// String renders the dotted form, e.g. "System.Collections.Generic".
func (q *QualifiedName) String() string {
	s := ""
	for i, p := range q.Parts {
		if i > 0 {
			s += "."
		}
		s += p.Name
	}
	return s
}
