// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// visitConjunction visits a ';'-terminated pattern list, collecting every
// independent defect across its elements before returning.
func (c *ctx) visitConjunction(g *grammar.Conjunction) (ast.Conjunction, error) {
	patterns := make([]ast.Pattern, 0, len(g.Elements))
	agg := &tqlerr.Aggregate{}
	for _, el := range g.Elements {
		p, err := c.visitPatternElement(el)
		if err != nil {
			agg.Add(err)
			continue
		}
		patterns = append(patterns, p)
	}
	if err := agg.AsError(); err != nil {
		return ast.Conjunction{}, err
	}
	return ast.Conjunction{Patterns: patterns, Sp: c.spanOf(g.Pos, 0)}, nil
}

// visitTopConjunction visits a match stage's unbraced pattern list, sharing
// visitPatternElement with the braced Conjunction form.
func (c *ctx) visitTopConjunction(g *grammar.TopConjunction) (ast.Conjunction, error) {
	patterns := make([]ast.Pattern, 0, len(g.Elements))
	agg := &tqlerr.Aggregate{}
	for _, el := range g.Elements {
		p, err := c.visitPatternElement(el)
		if err != nil {
			agg.Add(err)
			continue
		}
		patterns = append(patterns, p)
	}
	if err := agg.AsError(); err != nil {
		return ast.Conjunction{}, err
	}
	return ast.Conjunction{Patterns: patterns, Sp: c.spanOf(g.Pos, 0)}, nil
}

func (c *ctx) visitPatternElement(g *grammar.PatternElement) (ast.Pattern, error) {
	switch {
	case g.Negation != nil:
		return c.visitNegation(g.Negation)
	case g.Try != nil:
		return c.visitTry(g.Try)
	case g.Disjunction != nil:
		return c.visitDisjunction(g.Disjunction)
	case g.Nested != nil:
		conj, err := c.visitConjunction(g.Nested)
		if err != nil {
			return nil, err
		}
		return conj, nil
	case g.Statement != nil:
		stmt, err := c.visitStatement(g.Statement)
		if err != nil {
			return nil, err
		}
		return ast.StatementPattern{Statement: stmt}, nil
	default:
		return nil, c.illegalGrammar(g.Pos, "<empty pattern element>")
	}
}

// visitNegation visits "not { ... }", rejecting a body that is itself a
// single, directly nested negation (not { not { ... } }), which is always
// redundant: it simplifies to the inner pattern.
func (c *ctx) visitNegation(g *grammar.Negation) (ast.Pattern, error) {
	sp := c.spanOf(g.Pos, 0)
	body, err := c.visitConjunction(g.Body)
	if err != nil {
		return nil, err
	}
	if len(body.Patterns) == 1 {
		if _, ok := body.Patterns[0].(ast.Negation); ok {
			return nil, tqlerr.New(tqlerr.CodeRedundantNestedNegation, sp,
				"negation directly nested in another negation is redundant")
		}
	}
	return ast.Negation{Inner: body, Sp: sp}, nil
}

func (c *ctx) visitTry(g *grammar.TryPattern) (ast.Pattern, error) {
	sp := c.spanOf(g.Pos, 0)
	body, err := c.visitConjunction(g.Body)
	if err != nil {
		return nil, err
	}
	return ast.Try{Inner: body, Sp: sp}, nil
}

func (c *ctx) visitDisjunction(g *grammar.Disjunction) (ast.Pattern, error) {
	sp := c.spanOf(g.Pos, 0)
	branches := make([]ast.Conjunction, 0, len(g.Branches))
	agg := &tqlerr.Aggregate{}
	for _, b := range g.Branches {
		conj, err := c.visitConjunction(b)
		if err != nil {
			agg.Add(err)
			continue
		}
		if len(conj.Patterns) == 0 {
			agg.Add(tqlerr.New(tqlerr.CodeMissingPatterns, c.spanOf(b.Pos, 0),
				"a disjunction branch must contain at least one pattern"))
			continue
		}
		branches = append(branches, conj)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.Disjunction{Branches: branches, Sp: sp}, nil
}
