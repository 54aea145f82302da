// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "github.com/tql-lang/tql/pkg/span"

// FetchValueKind tags the shape of a fetch projection's value: a single
// value per key, a list of values per key, or a bracketed object.
type FetchValueKind int

const (
	FetchSingle FetchValueKind = iota
	FetchListOf
	FetchObject
)

// FetchProjection is one key/value entry of a Fetch stage.
type FetchProjection struct {
	Key  string
	Kind FetchValueKind

	// FetchSingle: exactly one of SingleAttr, SingleExpr, SingleSub is set.
	SingleAttr *Label
	SingleExpr Expr
	SingleSub  *Pipeline

	// FetchListOf: exactly one of ListAttr, ListCall, ListSub is set.
	ListAttr *Label
	ListCall *CallExpr
	ListSub  *Pipeline

	// FetchObject: either Entries is populated, or AllAttrsOf holds the
	// special "var.*" form.
	Entries    []FetchProjection
	AllAttrsOf *Variable

	Sp span.Span
}

func (p FetchProjection) Display() string {
	switch p.Kind {
	case FetchSingle:
		return p.Key + ": " + singleValueDisplay(p)
	case FetchListOf:
		return p.Key + ": [" + listValueDisplay(p) + "]"
	case FetchObject:
		if p.AllAttrsOf != nil {
			return p.Key + ": " + p.AllAttrsOf.Display() + ".*"
		}
		parts := make([]string, len(p.Entries))
		for i, e := range p.Entries {
			parts[i] = e.Display()
		}
		return p.Key + ": {" + joined(", ", parts) + "}"
	default:
		return p.Key
	}
}

func singleValueDisplay(p FetchProjection) string {
	switch {
	case p.SingleAttr != nil:
		return p.SingleAttr.Display()
	case p.SingleExpr != nil:
		return p.SingleExpr.Display()
	case p.SingleSub != nil:
		return "{ " + p.SingleSub.Display() + " }"
	default:
		return ""
	}
}

func listValueDisplay(p FetchProjection) string {
	switch {
	case p.ListAttr != nil:
		return p.ListAttr.Display()
	case p.ListCall != nil:
		return p.ListCall.Display()
	case p.ListSub != nil:
		return "{ " + p.ListSub.Display() + " }"
	default:
		return ""
	}
}

// FetchStage is a terminal stage projecting rows into a bracketed object
// per row.
type FetchStage struct {
	Projections []FetchProjection
	Sp          span.Span
}

func (s FetchStage) stageNode()   {}
func (s FetchStage) Span() span.Span { return s.Sp }

func (s FetchStage) Display() string {
	parts := make([]string, len(s.Projections))
	for i, p := range s.Projections {
		parts[i] = p.Display()
	}
	return "fetch {" + joined(", ", parts) + "}"
}

func (s FetchStage) Pretty(indent int) string {
	parts := make([]string, len(s.Projections))
	for i, p := range s.Projections {
		parts[i] = pad(indent+1) + p.Display()
	}
	return pad(indent) + "fetch {\n" + joined(",\n", parts) + "\n" + pad(indent) + "}"
}
