// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/gobwas/glob"

	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// Statement is implemented by every disjoint statement variant.
type Statement interface {
	Node
	statementNode()
}

// IsStatement asserts variable identity: $a is $b.
type IsStatement struct {
	Left  Variable
	Right Variable
	Sp    span.Span
}

func (s IsStatement) statementNode()   {}
func (s IsStatement) Span() span.Span { return s.Sp }
func (s IsStatement) Display() string { return s.Left.Display() + " is " + s.Right.Display() }
func (s IsStatement) Pretty(indent int) string { return s.Display() }

// InStreamStatement binds one or more variables from a function call's
// output stream: $a, $b in my_func(...).
type InStreamStatement struct {
	Vars []Variable
	Call CallExpr
	Sp   span.Span
}

func (s InStreamStatement) statementNode()   {}
func (s InStreamStatement) Span() span.Span { return s.Sp }

func (s InStreamStatement) Display() string {
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = v.Display()
	}
	return joined(", ", parts) + " in " + s.Call.Display()
}

func (s InStreamStatement) Pretty(indent int) string { return s.Display() }

// ComparisonStatement compares two expressions: $a == $b, $n like "a*".
type ComparisonStatement struct {
	Left       Expr
	Comparator token.Comparator
	Right      Expr
	Sp         span.Span
}

func (s ComparisonStatement) statementNode()   {}
func (s ComparisonStatement) Span() span.Span { return s.Sp }

func (s ComparisonStatement) Display() string {
	return s.Left.Display() + " " + s.Comparator.String() + " " + s.Right.Display()
}

func (s ComparisonStatement) Pretty(indent int) string { return s.Display() }

// Compile compiles the right-hand operand as a gobwas/glob pattern for a
// "like" comparison. Callers must have already verified (at visit time)
// that Right is a string literal and that Comparator.IsSubstring() is true.
func (s ComparisonStatement) Compile() (glob.Glob, error) {
	lit, ok := s.Right.(LitExpr)
	if !ok || lit.Literal.Kind != LiteralString {
		return nil, errNotStringLiteral
	}
	return glob.Compile(lit.Literal.Str)
}

// AssignmentStatement binds a variable to the value of an expression:
// let $r = $a + $b.
type AssignmentStatement struct {
	Vars  []Variable
	Value Expr
	Sp    span.Span
}

func (s AssignmentStatement) statementNode()   {}
func (s AssignmentStatement) Span() span.Span { return s.Sp }

func (s AssignmentStatement) Display() string {
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = v.Display()
	}
	return "let " + joined(", ", parts) + " = " + s.Value.Display()
}

func (s AssignmentStatement) Pretty(indent int) string { return s.Display() }

// RolePlayer is one entry of a relation tuple: either a bare variable
// player or a "role: player" pair.
type RolePlayer struct {
	Role   *Label
	Player Variable
}

func (r RolePlayer) Display() string {
	if r.Role == nil {
		return r.Player.Display()
	}
	return r.Role.Display() + ": " + r.Player.Display()
}

// ThingHead is the subject of a ThingStatement: a named/anonymous variable,
// or an anonymous relation tuple.
type ThingHead struct {
	Variable *Variable
	Tuple    []RolePlayer
}

func (h ThingHead) Display() string {
	if h.Variable != nil {
		return h.Variable.Display()
	}
	parts := make([]string, len(h.Tuple))
	for i, rp := range h.Tuple {
		parts[i] = rp.Display()
	}
	return "(" + joined(", ", parts) + ")"
}

// ThingConstraintKind tags the variant held by a ThingConstraint.
type ThingConstraintKind int

const (
	ThingConstraintIsa ThingConstraintKind = iota
	ThingConstraintIID
	ThingConstraintHas
	ThingConstraintLinks
)

// ThingConstraint is one clause of a ThingStatement's constraint list.
type ThingConstraint struct {
	Kind ThingConstraintKind

	IsaType  TypeRef
	IsaExact bool

	IID string

	HasType  Label
	HasValue Expr // literal value or a bound variable, as an expression

	LinksRelation TypeRef
	LinksTuple    []RolePlayer

	Sp span.Span
}

func (c ThingConstraint) Display() string {
	switch c.Kind {
	case ThingConstraintIsa:
		kw := "isa"
		if c.IsaExact {
			kw = "isa!"
		}
		return kw + " " + c.IsaType.Display()
	case ThingConstraintIID:
		return "iid " + c.IID
	case ThingConstraintHas:
		return "has " + c.HasType.Display() + " " + c.HasValue.Display()
	case ThingConstraintLinks:
		parts := make([]string, len(c.LinksTuple))
		for i, rp := range c.LinksTuple {
			parts[i] = rp.Display()
		}
		return "links (" + joined(", ", parts) + ")"
	default:
		return ""
	}
}

// ThingStatement is a head plus an ordered list of thing constraints drawn
// from {isa, iid, has, links}. Repeated isa or iid is rejected by the
// visitor, not by this type.
type ThingStatement struct {
	Head        ThingHead
	Constraints []ThingConstraint
	Sp          span.Span
}

func (s ThingStatement) statementNode()   {}
func (s ThingStatement) Span() span.Span { return s.Sp }

func (s ThingStatement) Display() string {
	parts := make([]string, len(s.Constraints))
	for i, c := range s.Constraints {
		parts[i] = c.Display()
	}
	out := s.Head.Display()
	if len(parts) > 0 {
		out += " " + joined(", ", parts)
	}
	return out
}

func (s ThingStatement) Pretty(indent int) string { return s.Display() }

// TypeConstraintKind tags the variant held by a TypeConstraint.
type TypeConstraintKind int

const (
	TypeConstraintSub TypeConstraintKind = iota
	TypeConstraintLabel
	TypeConstraintValueType
	TypeConstraintOwns
	TypeConstraintRelates
	TypeConstraintPlays
)

// TypeConstraint is one clause of a TypeStatement's constraint list, each
// carrying its own annotation list.
type TypeConstraint struct {
	Kind TypeConstraintKind

	SubType  TypeRef
	SubExact bool

	LabelValue Label

	ValueType TypeRef

	OwnsType TypeRef
	As       *TypeRef // optional specialiser for owns/relates/plays

	RelatesRole Label

	PlaysRole ScopedLabel

	Annotations []Annotation

	Sp span.Span
}

func (c TypeConstraint) Display() string {
	var out string
	switch c.Kind {
	case TypeConstraintSub:
		kw := "sub"
		if c.SubExact {
			kw = "sub!"
		}
		out = kw + " " + c.SubType.Display()
	case TypeConstraintLabel:
		out = "label " + c.LabelValue.Display()
	case TypeConstraintValueType:
		out = "value " + c.ValueType.Display()
	case TypeConstraintOwns:
		out = "owns " + c.OwnsType.Display()
		if c.As != nil {
			out += " as " + c.As.Display()
		}
	case TypeConstraintRelates:
		out = "relates " + c.RelatesRole.Display()
		if c.As != nil {
			out += " as " + c.As.Display()
		}
	case TypeConstraintPlays:
		out = "plays " + c.PlaysRole.Display()
		if c.As != nil {
			out += " as " + c.As.Display()
		}
	}
	if len(c.Annotations) > 0 {
		out += " " + AnnotationList(c.Annotations)
	}
	return out
}

// TypeStatement is a type reference plus a list of type constraints.
type TypeStatement struct {
	Head        TypeRef
	Constraints []TypeConstraint
	Sp          span.Span
}

func (s TypeStatement) statementNode()   {}
func (s TypeStatement) Span() span.Span { return s.Sp }

func (s TypeStatement) Display() string {
	parts := make([]string, len(s.Constraints))
	for i, c := range s.Constraints {
		parts[i] = c.Display()
	}
	out := s.Head.Display()
	if len(parts) > 0 {
		out += " " + joined(", ", parts)
	}
	return out
}

func (s TypeStatement) Pretty(indent int) string { return s.Display() }
