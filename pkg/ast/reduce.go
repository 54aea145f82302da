// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// ReductionKind tags the variant held by a Reduction.
type ReductionKind int

const (
	ReductionCheck ReductionKind = iota
	ReductionFirst
	ReductionStats
)

// ReduceStat is one per-variable statistic in a stats reduction. Count may
// carry a variable list; every other operator takes exactly one variable,
// a rule the visitor enforces rather than this type.
type ReduceStat struct {
	Op   token.ReduceOp
	Vars []Variable
}

func (s ReduceStat) Display() string {
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = v.Display()
	}
	return s.Op.String() + "(" + joined(", ", parts) + ")"
}

// Reduction is a terminal stage collapsing the row set to an aggregate:
// Check, First(variables), or a list of per-variable statistics.
type Reduction struct {
	Kind      ReductionKind
	FirstVars []Variable
	Last      bool // true selects "last" instead of "first" when Kind == ReductionFirst
	Stats     []ReduceStat
	Sp        span.Span
}

func (r Reduction) Span() span.Span { return r.Sp }

func (r Reduction) Display() string {
	switch r.Kind {
	case ReductionCheck:
		return "check"
	case ReductionFirst:
		kw := "first"
		if r.Last {
			kw = "last"
		}
		parts := make([]string, len(r.FirstVars))
		for i, v := range r.FirstVars {
			parts[i] = v.Display()
		}
		return kw + " " + joined(", ", parts)
	case ReductionStats:
		parts := make([]string, len(r.Stats))
		for i, s := range r.Stats {
			parts[i] = s.Display()
		}
		return joined(", ", parts)
	default:
		return ""
	}
}

func (r Reduction) Pretty(indent int) string { return r.Display() }

// ReduceStage is a terminal stage wrapping a Reduction.
type ReduceStage struct {
	Reduction Reduction
	Sp        span.Span
}

func (s ReduceStage) stageNode()   {}
func (s ReduceStage) Span() span.Span { return s.Sp }
func (s ReduceStage) Display() string { return "reduce " + s.Reduction.Display() }
func (s ReduceStage) Pretty(indent int) string { return s.Display() }
