// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "github.com/tql-lang/tql/pkg/span"

// Pattern is implemented by every pattern-tree node: conjunction,
// disjunction, negation, try, and the Statement leaf.
type Pattern interface {
	Node
	patternNode()
}

// Conjunction is a set of patterns joined implicitly by "and" (the grammar's
// "{ ... }" block). Statements are separated by ";" in source.
type Conjunction struct {
	Patterns []Pattern
	Sp       span.Span
}

func (c Conjunction) patternNode()   {}
func (c Conjunction) Span() span.Span { return c.Sp }

func (c Conjunction) Display() string {
	parts := make([]string, len(c.Patterns))
	for i, p := range c.Patterns {
		if nested, ok := p.(Conjunction); ok {
			parts[i] = "{ " + nested.Display() + "; }"
			continue
		}
		parts[i] = p.Display()
	}
	return joined("; ", parts)
}

func (c Conjunction) Pretty(indent int) string {
	parts := make([]string, len(c.Patterns))
	for i, p := range c.Patterns {
		if nested, ok := p.(Conjunction); ok {
			parts[i] = pad(indent) + "{ " + nested.Display() + "; }"
			continue
		}
		parts[i] = pad(indent) + p.Pretty(indent)
	}
	return joined(";\n", parts)
}

// Children implements the optional Node.Children hook used by Walk.
func (c Conjunction) Children() []Node {
	out := make([]Node, len(c.Patterns))
	for i, p := range c.Patterns {
		out[i] = p
	}
	return out
}

// Disjunction is a list of branch-groups separated by "or"; every branch is
// itself a pattern list and must be non-empty.
type Disjunction struct {
	Branches []Conjunction
	Sp       span.Span
}

func (d Disjunction) patternNode()   {}
func (d Disjunction) Span() span.Span { return d.Sp }

func (d Disjunction) Display() string {
	parts := make([]string, len(d.Branches))
	for i, b := range d.Branches {
		parts[i] = "{ " + b.Display() + "; }"
	}
	return joined(" or ", parts)
}

func (d Disjunction) Pretty(indent int) string { return d.Display() }

// Negation wraps a single pattern: not { ... }. Negation directly under
// another Negation is rejected by the visitor; this type places no such
// restriction itself.
type Negation struct {
	Inner Pattern
	Sp    span.Span
}

func (n Negation) patternNode()   {}
func (n Negation) Span() span.Span { return n.Sp }
func (n Negation) Display() string { return "not { " + n.Inner.Display() + "; }" }
func (n Negation) Pretty(indent int) string { return n.Display() }

// Try wraps a single optional pattern: try { ... }.
type Try struct {
	Inner Pattern
	Sp    span.Span
}

func (t Try) patternNode()   {}
func (t Try) Span() span.Span { return t.Sp }
func (t Try) Display() string { return "try { " + t.Inner.Display() + "; }" }
func (t Try) Pretty(indent int) string { return t.Display() }

// StatementPattern adapts a Statement to the Pattern interface as a tree
// leaf.
type StatementPattern struct {
	Statement Statement
}

func (s StatementPattern) patternNode()   {}
func (s StatementPattern) Span() span.Span { return s.Statement.Span() }
func (s StatementPattern) Display() string { return s.Statement.Display() }
func (s StatementPattern) Pretty(indent int) string { return s.Statement.Pretty(indent) }
