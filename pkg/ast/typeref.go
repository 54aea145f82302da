// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "github.com/tql-lang/tql/pkg/span"

// TypeRefKind tags the variant held by a TypeRef.
type TypeRefKind int

const (
	TypeRefLabel TypeRefKind = iota
	TypeRefScopedLabel
	TypeRefVariable
	TypeRefList
	TypeRefValueType
)

// TypeRef is one of: a bare Label, a ScopedLabel, a Variable, a "list" form
// wrapping any of the above, or a value-type name. An Optional wrapper is
// permitted on function return positions only.
type TypeRef struct {
	Kind        TypeRefKind
	Label       Label
	ScopedLabel ScopedLabel
	Variable    Variable
	ValueType   string
	Elem        *TypeRef // set when Kind == TypeRefList
	Optional    bool
	Sp          span.Span
}

func (t TypeRef) Span() span.Span { return t.Sp }

func (t TypeRef) Display() string {
	var inner string
	switch t.Kind {
	case TypeRefLabel:
		inner = t.Label.Display()
	case TypeRefScopedLabel:
		inner = t.ScopedLabel.Display()
	case TypeRefVariable:
		inner = t.Variable.Display()
	case TypeRefValueType:
		inner = t.ValueType
	case TypeRefList:
		inner = "[" + t.Elem.Display() + "]"
	}
	if t.Optional {
		inner += "?"
	}
	return inner
}

func (t TypeRef) Pretty(indent int) string { return t.Display() }
