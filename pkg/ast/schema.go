// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// StructField is one field of a struct definition.
type StructField struct {
	Name     Identifier
	Type     TypeRef
	Optional bool
}

func (f StructField) Display() string {
	out := f.Name.Display() + ": " + f.Type.Display()
	if f.Optional {
		out += "?"
	}
	return out
}

// StructDef is a named struct type definition: struct Name: field: type, ...
type StructDef struct {
	Name   Identifier
	Fields []StructField
	Sp     span.Span
}

func (s StructDef) Span() span.Span { return s.Sp }

func (s StructDef) Display() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Display()
	}
	return "struct " + s.Name.Display() + ": " + joined(", ", parts)
}

func (s StructDef) Pretty(indent int) string { return s.Display() }

// SchemaKind tags the variant held by a SchemaQuery.
type SchemaKind int

const (
	SchemaDefine SchemaKind = iota
	SchemaRedefine
	SchemaUndefine
)

func (k SchemaKind) String() string {
	switch k {
	case SchemaDefine:
		return "define"
	case SchemaRedefine:
		return "redefine"
	case SchemaUndefine:
		return "undefine"
	default:
		return "unknown"
	}
}

// UndefineTargetKind tags the finer-grained target of an undefine entry.
type UndefineTargetKind int

const (
	UndefineAnnotationOfType UndefineTargetKind = iota
	UndefineAnnotationOfCapability
	UndefineCapabilityOfType
	UndefineOverride
	UndefineFunction
	UndefineStruct
)

// UndefineTarget is one entry of an Undefine schema query's finer-grained
// removal list.
type UndefineTarget struct {
	Kind UndefineTargetKind

	Annotation token.Annotation
	Type       Label

	CapabilityKeyword string // "owns", "relates", "plays", "sub", "value"
	CapabilityArg     TypeRef

	OverrideOf TypeRef

	FuncName   string
	StructName string

	Sp span.Span
}

func (t UndefineTarget) Display() string {
	switch t.Kind {
	case UndefineAnnotationOfType:
		return "@" + t.Annotation.String() + " of " + t.Type.Display()
	case UndefineAnnotationOfCapability:
		return "@" + t.Annotation.String() + " of " + t.CapabilityKeyword + " " + t.CapabilityArg.Display()
	case UndefineCapabilityOfType:
		return t.CapabilityKeyword + " " + t.CapabilityArg.Display() + " of " + t.Type.Display()
	case UndefineOverride:
		return "as " + t.OverrideOf.Display() + " of " + t.Type.Display()
	case UndefineFunction:
		return "fun " + t.FuncName
	case UndefineStruct:
		return "struct " + t.StructName
	default:
		return ""
	}
}

// SchemaQuery is a Define, Redefine, or Undefine query. Define and Redefine
// carry an ordered list of definables (type declarations, function
// definitions, struct definitions); Undefine carries finer-grained targets.
type SchemaQuery struct {
	Kind            SchemaKind
	Definables      []Node
	UndefineTargets []UndefineTarget
	Sp              span.Span
}

func (q SchemaQuery) queryNode()      {}
func (q SchemaQuery) Span() span.Span { return q.Sp }

func (q SchemaQuery) Display() string {
	out := q.Kind.String() + "\n"
	if q.Kind == SchemaUndefine {
		parts := make([]string, len(q.UndefineTargets))
		for i, t := range q.UndefineTargets {
			parts[i] = t.Display() + ";"
		}
		out += joined("\n", parts)
	} else {
		parts := make([]string, len(q.Definables))
		for i, d := range q.Definables {
			parts[i] = d.Display() + ";"
		}
		out += joined("\n", parts)
	}
	return out
}

func (q SchemaQuery) Pretty(indent int) string { return q.Display() }
