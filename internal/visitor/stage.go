// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

func (c *ctx) visitStatements(gs []*grammar.Statement) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(gs))
	agg := &tqlerr.Aggregate{}
	for _, g := range gs {
		s, err := c.visitStatement(g)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, s)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

// visitRawVariables visits a list of bare "$name" tokens sharing one
// grammar-node position, as used by select/require/reduce/return variable lists.
// A variable repeated within the same list is rejected.
func (c *ctx) visitRawVariables(raws []string, pos lexer.Position) ([]ast.Variable, error) {
	out := make([]ast.Variable, 0, len(raws))
	agg := &tqlerr.Aggregate{}
	seen := map[string]bool{}
	for _, raw := range raws {
		v, err := c.visitVariable(raw, pos)
		if err != nil {
			agg.Add(err)
			continue
		}
		if !v.Anonymous && v.Name != "" {
			if seen[v.Name] {
				agg.Add(tqlerr.New(tqlerr.CodeRepeatingFilterVariable, v.Sp,
					"variable %s repeats in the same filter list", v.Display()))
				continue
			}
			seen[v.Name] = true
		}
		out = append(out, v)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

// visitStage visits one pipeline stage. Fetch/Reduce terminal placement is
// enforced by the caller (visitPipeline), which has the full stage sequence.
func (c *ctx) visitStage(g *grammar.Stage) (ast.Stage, error) {
	sp := c.spanOf(g.Pos, 0)
	switch {
	case g.Match != nil:
		pattern, err := c.visitTopConjunction(g.Match.Pattern)
		if err != nil {
			return nil, err
		}
		boundAgg := &tqlerr.Aggregate{}
		checkMatchBounding(pattern, boundAgg)
		if err := boundAgg.AsError(); err != nil {
			return nil, err
		}
		return ast.MatchStage{Pattern: pattern, Sp: sp}, nil

	case g.Insert != nil:
		stmts, err := c.visitStatements(g.Insert.Statements)
		if err != nil {
			return nil, err
		}
		return ast.InsertStage{Statements: stmts, Sp: sp}, nil

	case g.Put != nil:
		stmts, err := c.visitStatements(g.Put.Statements)
		if err != nil {
			return nil, err
		}
		return ast.PutStage{Statements: stmts, Sp: sp}, nil

	case g.Update != nil:
		stmts, err := c.visitStatements(g.Update.Statements)
		if err != nil {
			return nil, err
		}
		return ast.UpdateStage{Statements: stmts, Sp: sp}, nil

	case g.Delete != nil:
		return c.visitDeleteStage(g.Delete, sp)

	case g.Select != nil:
		vars, err := c.visitRawVariables(g.Select.Vars, g.Select.Pos)
		if err != nil {
			return nil, err
		}
		return ast.SelectStage{Vars: vars, Sp: sp}, nil

	case g.Sort != nil:
		return c.visitSortStage(g.Sort, sp)

	case g.Offset != nil:
		n, err := strconv.ParseInt(g.Offset.N, 10, 64)
		if err != nil {
			return nil, c.illegalGrammar(g.Offset.Pos, g.Offset.N)
		}
		return ast.OffsetStage{N: n, Sp: sp}, nil

	case g.Limit != nil:
		n, err := strconv.ParseInt(g.Limit.N, 10, 64)
		if err != nil {
			return nil, c.illegalGrammar(g.Limit.Pos, g.Limit.N)
		}
		return ast.LimitStage{N: n, Sp: sp}, nil

	case g.Require != nil:
		vars, err := c.visitRawVariables(g.Require.Vars, g.Require.Pos)
		if err != nil {
			return nil, err
		}
		return ast.RequireStage{Vars: vars, Sp: sp}, nil

	case g.Distinct != nil:
		return ast.DistinctStage{Sp: sp}, nil

	case g.Fetch != nil:
		return c.visitFetchStage(g.Fetch, sp)

	case g.Reduce != nil:
		return c.visitReduceStage(g.Reduce, sp)

	default:
		return nil, c.illegalGrammar(g.Pos, "<empty stage>")
	}
}

func (c *ctx) visitDeleteStage(g *grammar.DeleteStage, sp span.Span) (ast.Stage, error) {
	targets := make([]ast.DeleteTarget, 0, len(g.Targets))
	agg := &tqlerr.Aggregate{}
	for _, t := range g.Targets {
		dt, err := c.visitDeleteTarget(t)
		if err != nil {
			agg.Add(err)
			continue
		}
		targets = append(targets, dt)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.DeleteStage{Targets: targets, Sp: sp}, nil
}

func (c *ctx) visitDeleteTarget(g *grammar.DeleteTarget) (ast.DeleteTarget, error) {
	switch {
	case g.Variable != "":
		v, err := c.visitVariable(g.Variable, g.Pos)
		if err != nil {
			return ast.DeleteTarget{}, err
		}
		return ast.DeleteTarget{Kind: ast.DeleteTargetVariable, Variable: v}, nil

	case g.Has != nil:
		attr, err1 := c.visitVariable(g.Has.Attr, g.Has.Pos)
		owner, err2 := c.visitVariable(g.Has.Owner, g.Has.Pos)
		if err := tqlerr.Collect(err1, err2); err != nil {
			return ast.DeleteTarget{}, err
		}
		return ast.DeleteTarget{Kind: ast.DeleteTargetHas, HasAttr: attr, HasOwner: owner}, nil

	case g.Links != nil:
		tuple, err1 := c.visitRoleTuple(g.Links.Tuple)
		relation, err2 := c.visitVariable(g.Links.Relation, g.Links.Pos)
		if err := tqlerr.Collect(err1, err2); err != nil {
			return ast.DeleteTarget{}, err
		}
		return ast.DeleteTarget{Kind: ast.DeleteTargetLinks, LinksTuple: tuple, LinksRelation: relation}, nil

	default:
		return ast.DeleteTarget{}, c.illegalGrammar(g.Pos, "<empty delete target>")
	}
}

func (c *ctx) visitSortStage(g *grammar.SortStage, sp span.Span) (ast.Stage, error) {
	keys := make([]ast.SortKey, 0, len(g.Keys))
	agg := &tqlerr.Aggregate{}
	seen := map[string]bool{}
	for _, k := range g.Keys {
		v, err := c.visitVariable(k.Variable, k.Pos)
		if err != nil {
			agg.Add(err)
			continue
		}
		if !v.Anonymous && v.Name != "" {
			if seen[v.Name] {
				agg.Add(tqlerr.New(tqlerr.CodeRepeatingFilterVariable, v.Sp,
					"variable %s repeats in the same sort list", v.Display()))
				continue
			}
			seen[v.Name] = true
		}
		order := token.SortAsc
		if k.Order != "" {
			o, ok := token.ParseSortOrder(k.Order)
			if !ok {
				agg.Add(c.illegalGrammar(k.Pos, k.Order))
				continue
			}
			order = o
		}
		keys = append(keys, ast.SortKey{Variable: v, Order: order})
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.SortStage{Keys: keys, Sp: sp}, nil
}
