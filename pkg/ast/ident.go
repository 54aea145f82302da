// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// Identifier is a validated UTF-8 name: no leading underscore; letters,
// digits, '-', '_'.
type Identifier struct {
	Name string
	Sp   span.Span
}

func (i Identifier) Span() span.Span            { return i.Sp }
func (i Identifier) Display() string             { return i.Name }
func (i Identifier) Pretty(indent int) string     { return i.Name }

// Label is either a plain Identifier or a reserved kind label (entity,
// relation, attribute, role).
type Label struct {
	Ident    Identifier
	Reserved token.Kind
	IsKind   bool
	Sp       span.Span
}

func (l Label) Span() span.Span { return l.Sp }

func (l Label) Display() string {
	if l.IsKind {
		return l.Reserved.String()
	}
	return l.Ident.Name
}

func (l Label) Pretty(indent int) string { return l.Display() }

// ScopedLabel is a pair of labels written "scope:name".
type ScopedLabel struct {
	Scope Label
	Name  Label
	Sp    span.Span
}

func (s ScopedLabel) Span() span.Span { return s.Sp }
func (s ScopedLabel) Display() string { return s.Scope.Display() + ":" + s.Name.Display() }
func (s ScopedLabel) Pretty(indent int) string { return s.Display() }

// Namespace distinguishes the two disjoint variable reference spaces that
// share "$name" spelling: concept variables (types, things) and value
// variables (computed scalars). The visitor never disambiguates between
// them; later semantic layers can.
type Namespace int

const (
	NamespaceConcept Namespace = iota
	NamespaceValue
)

// Variable is either anonymous ($_) or named ($name), and may carry an
// optional marker for use in patterns where absence is permitted.
type Variable struct {
	Name      string // empty for anonymous
	Anonymous bool
	Optional  bool
	Namespace Namespace
	Sp        span.Span
}

func (v Variable) Span() span.Span { return v.Sp }

func (v Variable) Display() string {
	out := "$"
	if v.Anonymous {
		out += "_"
	} else {
		out += v.Name
	}
	if v.Optional {
		out += "?"
	}
	return out
}

func (v Variable) Pretty(indent int) string { return v.Display() }

// AsRef wraps v in the tagged VariableRef corresponding to its namespace.
func (v Variable) AsRef() VariableRef {
	if v.Namespace == NamespaceValue {
		return VariableRef{Value: &v}
	}
	return VariableRef{Concept: &v}
}

// VariableRef is a borrowing tagged union over Concept(Variable) |
// Value(Variable), used where code needs to iterate either namespace
// without committing to one.
type VariableRef struct {
	Concept *Variable
	Value   *Variable
}

// Variable returns the wrapped variable regardless of which namespace it
// came from.
func (r VariableRef) Variable() *Variable {
	if r.Concept != nil {
		return r.Concept
	}
	return r.Value
}
