// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

func (c *ctx) visitFetchStage(g *grammar.FetchStage, sp span.Span) (ast.Stage, error) {
	projections, err := c.visitFetchProjections(g.Projections)
	if err != nil {
		return nil, err
	}
	return ast.FetchStage{Projections: projections, Sp: sp}, nil
}

func (c *ctx) visitFetchProjections(gs []*grammar.FetchProjection) ([]ast.FetchProjection, error) {
	out := make([]ast.FetchProjection, 0, len(gs))
	agg := &tqlerr.Aggregate{}
	for _, g := range gs {
		p, err := c.visitFetchProjection(g)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, p)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ctx) visitFetchProjection(g *grammar.FetchProjection) (ast.FetchProjection, error) {
	sp := c.spanOf(g.Pos, 0)
	key := unquote(g.Key)

	switch {
	case g.SingleVal != nil:
		p, err := c.visitFetchSingle(g.SingleVal)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		p.Key, p.Sp = key, sp
		return p, nil

	case g.ListVal != nil:
		p, err := c.visitFetchList(g.ListVal)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		p.Key, p.Sp = key, sp
		return p, nil

	case g.ObjVal != nil:
		p, err := c.visitFetchObject(g.ObjVal)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		p.Key, p.Sp = key, sp
		return p, nil

	default:
		return ast.FetchProjection{}, c.illegalGrammar(g.Pos, "<empty fetch projection>")
	}
}

func (c *ctx) visitFetchSingle(g *grammar.FetchSingleValue) (ast.FetchProjection, error) {
	switch {
	case g.Sub != nil:
		sub, err := c.visitPipeline(g.Sub)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		return ast.FetchProjection{Kind: ast.FetchSingle, SingleSub: &sub}, nil

	case g.Attr != "":
		lbl, err := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Attr})
		if err != nil {
			return ast.FetchProjection{}, err
		}
		return ast.FetchProjection{Kind: ast.FetchSingle, SingleAttr: &lbl}, nil

	case g.Expr != nil:
		e, err := c.visitExpr(g.Expr)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		return ast.FetchProjection{Kind: ast.FetchSingle, SingleExpr: e}, nil

	default:
		return ast.FetchProjection{}, c.illegalGrammar(g.Pos, "<empty fetch single value>")
	}
}

func (c *ctx) visitFetchList(g *grammar.FetchListValue) (ast.FetchProjection, error) {
	switch {
	case g.Sub != nil:
		sub, err := c.visitPipeline(g.Sub)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		return ast.FetchProjection{Kind: ast.FetchListOf, ListSub: &sub}, nil

	case g.Call != nil:
		call, err := c.visitCall(g.Call)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		ce := call.(ast.CallExpr)
		return ast.FetchProjection{Kind: ast.FetchListOf, ListCall: &ce}, nil

	case g.Attr != "":
		lbl, err := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Attr})
		if err != nil {
			return ast.FetchProjection{}, err
		}
		return ast.FetchProjection{Kind: ast.FetchListOf, ListAttr: &lbl}, nil

	default:
		return ast.FetchProjection{}, c.illegalGrammar(g.Pos, "<empty fetch list value>")
	}
}

func (c *ctx) visitFetchObject(g *grammar.FetchObjectValue) (ast.FetchProjection, error) {
	if g.AllOf != "" {
		v, err := c.visitVariable(g.AllOf, g.Pos)
		if err != nil {
			return ast.FetchProjection{}, err
		}
		return ast.FetchProjection{Kind: ast.FetchObject, AllAttrsOf: &v}, nil
	}
	entries, err := c.visitFetchProjections(g.Entries)
	if err != nil {
		return ast.FetchProjection{}, err
	}
	return ast.FetchProjection{Kind: ast.FetchObject, Entries: entries}, nil
}
