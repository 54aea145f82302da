// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// visitPipeline visits a non-empty stage sequence, rejecting a Fetch or
// Reduce stage that is not the last one.
func (c *ctx) visitPipeline(g *grammar.Pipeline) (ast.Pipeline, error) {
	sp := c.spanOf(g.Pos, 0)
	agg := &tqlerr.Aggregate{}

	preambles := make([]ast.Function, 0, len(g.Preambles))
	for _, p := range g.Preambles {
		fn, err := c.visitFunction(p)
		if err != nil {
			agg.Add(err)
			continue
		}
		preambles = append(preambles, fn)
	}

	stages := make([]ast.Stage, 0, len(g.Stages))
	bound := variableSet{}
	for i, s := range g.Stages {
		st, err := c.visitStage(s)
		if err != nil {
			agg.Add(err)
			continue
		}
		if isTerminalStage(st) && i != len(g.Stages)-1 {
			agg.Add(tqlerr.New(tqlerr.CodeIllegalGrammar, st.Span(),
				"fetch and reduce may only appear as the last stage of a pipeline"))
			continue
		}
		checkStageScope(st, bound, agg)
		bound.addAll(stageRetrievedVariables(st))
		stages = append(stages, st)
	}

	if err := agg.AsError(); err != nil {
		return ast.Pipeline{}, err
	}
	return ast.Pipeline{Preambles: preambles, Stages: stages, HasEnd: g.End, Sp: sp}, nil
}

func isTerminalStage(s ast.Stage) bool {
	switch s.(type) {
	case ast.FetchStage, ast.ReduceStage:
		return true
	default:
		return false
	}
}

// visitQuery visits a single top-level entry: either a schema query or a
// data-manipulation pipeline.
func (c *ctx) visitQuery(g *grammar.Query) (ast.Query, error) {
	switch {
	case g.Schema != nil:
		return c.visitSchemaQuery(g.Schema)
	case g.Pipeline != nil:
		p, err := c.visitPipeline(g.Pipeline)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, c.illegalGrammar(g.Pos, "<empty query>")
	}
}
