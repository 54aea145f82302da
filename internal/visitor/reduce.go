// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

func (c *ctx) visitReduceStage(g *grammar.ReduceStage, sp span.Span) (ast.Stage, error) {
	r, err := c.visitReduction(g.Reduction)
	if err != nil {
		return nil, err
	}
	return ast.ReduceStage{Reduction: r, Sp: sp}, nil
}

func (c *ctx) visitReduction(g *grammar.Reduction) (ast.Reduction, error) {
	sp := c.spanOf(g.Pos, 0)

	switch {
	case g.Check:
		return ast.Reduction{Kind: ast.ReductionCheck, Sp: sp}, nil

	case g.First != nil:
		vars, err := c.visitRawVariables(g.First.Vars, g.First.Pos)
		if err != nil {
			return ast.Reduction{}, err
		}
		return ast.Reduction{
			Kind: ast.ReductionFirst, FirstVars: vars, Last: g.First.Kw == "last", Sp: sp,
		}, nil

	case len(g.Stats) > 0:
		stats, err := c.visitReduceStats(g.Stats)
		if err != nil {
			return ast.Reduction{}, err
		}
		return ast.Reduction{Kind: ast.ReductionStats, Stats: stats, Sp: sp}, nil

	default:
		return ast.Reduction{}, c.illegalGrammar(g.Pos, "<empty reduction>")
	}
}

func (c *ctx) visitReduceStats(gs []*grammar.ReduceStat) ([]ast.ReduceStat, error) {
	out := make([]ast.ReduceStat, 0, len(gs))
	agg := &tqlerr.Aggregate{}
	for _, g := range gs {
		op, ok := token.ParseReduceOp(g.Op)
		if !ok {
			agg.Add(c.illegalGrammar(g.Pos, g.Op))
			continue
		}
		vars, err := c.visitRawVariables(g.Vars, g.Pos)
		if err != nil {
			agg.Add(err)
			continue
		}
		if op != token.ReduceCount && len(vars) != 1 {
			agg.Add(tqlerr.New(tqlerr.CodeInvalidCountVariableArgument, c.spanOf(g.Pos, 0),
				"%s takes exactly one variable, got %d", op, len(vars)))
			continue
		}
		out = append(out, ast.ReduceStat{Op: op, Vars: vars})
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}
