// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// Stage is implemented by every pipeline stage variant: Match, Insert, Put,
// Update, Delete, Fetch, Reduce, and the stream operators Select, Sort,
// Offset, Limit, Require, Distinct. Fetch and Reduce are terminal: they may
// only appear as the last stage of a pipeline, a rule enforced by the
// visitor rather than this type.
type Stage interface {
	Node
	stageNode()
}

// MatchStage retrieves rows satisfying a pattern.
type MatchStage struct {
	Pattern Conjunction
	Sp      span.Span
}

func (s MatchStage) stageNode()   {}
func (s MatchStage) Span() span.Span { return s.Sp }
func (s MatchStage) Display() string { return "match " + s.Pattern.Display() }

func (s MatchStage) Pretty(indent int) string {
	return pad(indent) + "match\n" + s.Pattern.Pretty(indent+1)
}

// InsertStage, PutStage, and UpdateStage carry an ordered statement list
// applied as a write.
type InsertStage struct {
	Statements []Statement
	Sp         span.Span
}

func (s InsertStage) stageNode()   {}
func (s InsertStage) Span() span.Span { return s.Sp }
func (s InsertStage) Display() string { return "insert " + joined("; ", displayAll(s.Statements)) }
func (s InsertStage) Pretty(indent int) string { return s.Display() }

type PutStage struct {
	Statements []Statement
	Sp         span.Span
}

func (s PutStage) stageNode()   {}
func (s PutStage) Span() span.Span { return s.Sp }
func (s PutStage) Display() string { return "put " + joined("; ", displayAll(s.Statements)) }
func (s PutStage) Pretty(indent int) string { return s.Display() }

type UpdateStage struct {
	Statements []Statement
	Sp         span.Span
}

func (s UpdateStage) stageNode()   {}
func (s UpdateStage) Span() span.Span { return s.Sp }
func (s UpdateStage) Display() string { return "update " + joined("; ", displayAll(s.Statements)) }
func (s UpdateStage) Pretty(indent int) string { return s.Display() }

// DeleteTargetKind tags the variant held by a DeleteTarget.
type DeleteTargetKind int

const (
	DeleteTargetVariable DeleteTargetKind = iota
	DeleteTargetHas
	DeleteTargetLinks
)

// DeleteTarget is one of the three forms a delete clause may take: a bare
// variable, "has <attrVar> of <ownerVar>", or "links (...) of <relationVar>".
type DeleteTarget struct {
	Kind DeleteTargetKind

	Variable Variable

	HasAttr  Variable
	HasOwner Variable

	LinksTuple    []RolePlayer
	LinksRelation Variable
}

func (t DeleteTarget) Display() string {
	switch t.Kind {
	case DeleteTargetHas:
		return "has " + t.HasAttr.Display() + " of " + t.HasOwner.Display()
	case DeleteTargetLinks:
		parts := make([]string, len(t.LinksTuple))
		for i, rp := range t.LinksTuple {
			parts[i] = rp.Display()
		}
		return "links (" + joined(", ", parts) + ") of " + t.LinksRelation.Display()
	default:
		return t.Variable.Display()
	}
}

// DeleteStage removes the targeted variables, attribute ownerships, or
// role-player links.
type DeleteStage struct {
	Targets []DeleteTarget
	Sp      span.Span
}

func (s DeleteStage) stageNode()   {}
func (s DeleteStage) Span() span.Span { return s.Sp }

func (s DeleteStage) Display() string {
	parts := make([]string, len(s.Targets))
	for i, t := range s.Targets {
		parts[i] = t.Display()
	}
	return "delete " + joined(", ", parts)
}

func (s DeleteStage) Pretty(indent int) string { return s.Display() }

// SelectStage narrows the retrieved row set to the named variables.
type SelectStage struct {
	Vars []Variable
	Sp   span.Span
}

func (s SelectStage) stageNode()   {}
func (s SelectStage) Span() span.Span { return s.Sp }

func (s SelectStage) Display() string {
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = v.Display()
	}
	return "select " + joined(", ", parts)
}

func (s SelectStage) Pretty(indent int) string { return s.Display() }

// SortKey pairs a sort variable with its direction.
type SortKey struct {
	Variable Variable
	Order    token.SortOrder
}

func (k SortKey) Display() string { return k.Variable.Display() + " " + k.Order.String() }

// SortStage orders rows by one or more variables.
type SortStage struct {
	Keys []SortKey
	Sp   span.Span
}

func (s SortStage) stageNode()   {}
func (s SortStage) Span() span.Span { return s.Sp }

func (s SortStage) Display() string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = k.Display()
	}
	return "sort " + joined(", ", parts)
}

func (s SortStage) Pretty(indent int) string { return s.Display() }

// OffsetStage skips the first N rows.
type OffsetStage struct {
	N  int64
	Sp span.Span
}

func (s OffsetStage) stageNode()   {}
func (s OffsetStage) Span() span.Span { return s.Sp }
func (s OffsetStage) Display() string { return "offset " + itoa(int(s.N)) }
func (s OffsetStage) Pretty(indent int) string { return s.Display() }

// LimitStage caps the row count to N.
type LimitStage struct {
	N  int64
	Sp span.Span
}

func (s LimitStage) stageNode()   {}
func (s LimitStage) Span() span.Span { return s.Sp }
func (s LimitStage) Display() string { return "limit " + itoa(int(s.N)) }
func (s LimitStage) Pretty(indent int) string { return s.Display() }

// RequireStage asserts that the named variables are bound, discarding rows
// that leave any of them unset.
type RequireStage struct {
	Vars []Variable
	Sp   span.Span
}

func (s RequireStage) stageNode()   {}
func (s RequireStage) Span() span.Span { return s.Sp }

func (s RequireStage) Display() string {
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = v.Display()
	}
	return "require " + joined(", ", parts)
}

func (s RequireStage) Pretty(indent int) string { return s.Display() }

// DistinctStage removes duplicate rows.
type DistinctStage struct {
	Sp span.Span
}

func (s DistinctStage) stageNode()   {}
func (s DistinctStage) Span() span.Span { return s.Sp }
func (s DistinctStage) Display() string { return "distinct" }
func (s DistinctStage) Pretty(indent int) string { return s.Display() }
