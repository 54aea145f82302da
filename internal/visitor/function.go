// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

func (c *ctx) visitFunction(g *grammar.Function) (ast.Function, error) {
	sp := c.spanOf(g.Pos, 0)
	agg := &tqlerr.Aggregate{}

	name, err := c.visitIdentifier(g.Name, g.Pos)
	agg.Add(err)

	params := make([]ast.Param, 0, len(g.Params))
	for _, p := range g.Params {
		ap, err := c.visitParam(p)
		if err != nil {
			agg.Add(err)
			continue
		}
		params = append(params, ap)
	}

	output, isStream, err := c.visitOutput(g.Output)
	agg.Add(err)

	body := make([]ast.Stage, 0, len(g.Body))
	for _, s := range g.Body {
		st, err := c.visitStage(s)
		if err != nil {
			agg.Add(err)
			continue
		}
		body = append(body, st)
	}

	ret, err := c.visitReturn(g.Return)
	agg.Add(err)

	if err := agg.AsError(); err != nil {
		return ast.Function{}, err
	}

	return ast.Function{
		Name: name, Params: params, Output: output, OutputIsStream: isStream,
		Body: body, Return: ret, Sp: sp,
	}, nil
}

func (c *ctx) visitParam(g *grammar.Param) (ast.Param, error) {
	v, err1 := c.visitVariable(g.Variable, g.Pos)
	t, err2 := c.visitTypeRef(g.Type)
	if err := tqlerr.Collect(err1, err2); err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Variable: v, Type: t}, nil
}

func (c *ctx) visitOutput(g *grammar.Output) ([]ast.TypeRef, bool, error) {
	items := g.Stream
	isStream := len(g.Stream) > 0
	if !isStream {
		items = g.Single
	}
	out := make([]ast.TypeRef, 0, len(items))
	agg := &tqlerr.Aggregate{}
	for _, t := range items {
		tr, err := c.visitTypeRef(t)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, tr)
	}
	if err := agg.AsError(); err != nil {
		return nil, false, err
	}
	return out, isStream, nil
}

func (c *ctx) visitReturn(g *grammar.Return) (ast.Return, error) {
	sp := c.spanOf(g.Pos, 0)

	switch {
	case g.Vars != nil:
		vars, err := c.visitRawVariables(g.Vars, g.Pos)
		if err != nil {
			return ast.Return{}, err
		}
		return ast.Return{Kind: ast.ReturnStream, Vars: vars, Sp: sp}, nil

	case g.First != nil:
		vars, err := c.visitRawVariables(g.First.Vars, g.First.Pos)
		if err != nil {
			return ast.Return{}, err
		}
		kind := ast.ReturnFirst
		if g.First.Kw == "last" {
			kind = ast.ReturnLast
		}
		return ast.Return{Kind: kind, Vars: vars, Sp: sp}, nil

	case len(g.Stats) > 0:
		stats, err := c.visitReduceStats(g.Stats)
		if err != nil {
			return ast.Return{}, err
		}
		reduction := ast.Reduction{Kind: ast.ReductionStats, Stats: stats, Sp: sp}
		return ast.Return{Kind: ast.ReturnReduction, Reduction: &reduction, Sp: sp}, nil

	default:
		return ast.Return{}, c.illegalGrammar(g.Pos, "<empty return>")
	}
}
