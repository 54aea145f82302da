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

// visitExpr visits a flat primary-then-operator token stream and runs a
// Pratt (operator-precedence) parser over it to build the precedence tree.
// Left-associative: + - (lowest), * / %. Right-associative: ^ (highest).
func (c *ctx) visitExpr(g *grammar.Expr) (ast.Expr, error) {
	first, err := c.visitPrimary(g.First)
	if err != nil {
		return nil, err
	}
	if len(g.Rest) == 0 {
		return first, nil
	}

	values := make([]ast.Expr, 0, len(g.Rest)+1)
	ops := make([]token.ArithOp, 0, len(g.Rest))
	values = append(values, first)

	agg := &tqlerr.Aggregate{}
	for _, r := range g.Rest {
		op, ok := token.ParseArithOp(r.Op)
		if !ok {
			agg.Add(c.illegalGrammar(r.Pos, r.Op))
			continue
		}
		operand, err := c.visitPrimary(r.Operand)
		if err != nil {
			agg.Add(err)
			continue
		}
		ops = append(ops, op)
		values = append(values, operand)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}

	p := &prattParser{values: values, ops: ops}
	return p.parse(values[0], 0), nil
}

// prattParser implements precedence climbing over a flat array
// representation: values[i] and values[i+1] are joined by ops[i].
type prattParser struct {
	values []ast.Expr
	ops    []token.ArithOp
	pos    int
}

func (p *prattParser) parse(lhs ast.Expr, minPrec int) ast.Expr {
	for p.pos < len(p.ops) && p.ops[p.pos].Precedence() >= minPrec {
		op := p.ops[p.pos]
		rhs := p.values[p.pos+1]
		p.pos++
		for p.pos < len(p.ops) {
			next := p.ops[p.pos]
			if next.Precedence() > op.Precedence() ||
				(next.Precedence() == op.Precedence() && next.RightAssociative()) {
				rhs = p.parse(rhs, next.Precedence())
			} else {
				break
			}
		}
		lhs = ast.BinaryExpr{Op: op, Left: lhs, Right: rhs}
	}
	return lhs
}

// visitPrimary visits a single expression primary: a variable reference,
// function call, list constructor, literal, or parenthesised expression,
// followed by an optional list index or index-range suffix.
func (c *ctx) visitPrimary(g *grammar.Primary) (ast.Expr, error) {
	var base ast.Expr
	var sp = c.spanOf(g.Pos, 0)

	switch {
	case g.Variable != "":
		v, err := c.visitVariable(g.Variable, g.Pos)
		if err != nil {
			return nil, err
		}
		base = ast.VarExpr{Variable: v}
	case g.Call != nil:
		call, err := c.visitCall(g.Call)
		if err != nil {
			return nil, err
		}
		base = call
	case g.ListLit != nil:
		list, err := c.visitListLiteral(g.ListLit)
		if err != nil {
			return nil, err
		}
		base = list
	case g.Literal != nil:
		lit, err := c.visitLiteral(g.Literal)
		if err != nil {
			return nil, err
		}
		base = ast.LitExpr{Literal: lit}
	case g.Paren != nil:
		inner, err := c.visitExpr(g.Paren)
		if err != nil {
			return nil, err
		}
		base = ast.ParenExpr{Inner: inner, Sp: sp}
	default:
		return nil, c.illegalGrammar(g.Pos, "<empty primary>")
	}

	if g.Index == nil {
		return base, nil
	}
	return c.visitIndexSuffix(base, g.Index, sp)
}

func (c *ctx) visitIndexSuffix(base ast.Expr, g *grammar.IndexSuffix, sp span.Span) (ast.Expr, error) {
	if !g.IsRange {
		if g.From == nil {
			return nil, c.illegalGrammar(g.Pos, "[]")
		}
		idx, err := c.visitExpr(g.From)
		if err != nil {
			return nil, err
		}
		return ast.IndexExpr{List: base, Index: idx, Sp: sp}, nil
	}
	var from, to ast.Expr
	var err error
	if g.From != nil {
		from, err = c.visitExpr(g.From)
		if err != nil {
			return nil, err
		}
	}
	if g.To != nil {
		to, err = c.visitExpr(g.To)
		if err != nil {
			return nil, err
		}
	}
	return ast.RangeExpr{List: base, From: from, To: to, Sp: sp}, nil
}

func (c *ctx) visitCall(g *grammar.Call) (ast.Expr, error) {
	args := make([]ast.Expr, 0, len(g.Args))
	agg := &tqlerr.Aggregate{}
	for _, a := range g.Args {
		e, err := c.visitExpr(a)
		if err != nil {
			agg.Add(err)
			continue
		}
		args = append(args, e)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	sp := c.spanOf(g.Pos, len(g.Name))
	if b, ok := token.ParseBuiltin(g.Name); ok {
		return ast.CallExpr{IsBuiltin: true, Builtin: b, Args: args, Sp: sp}, nil
	}
	return ast.CallExpr{Name: g.Name, Args: args, Sp: sp}, nil
}

func (c *ctx) visitListLiteral(g *grammar.ListLiteral) (ast.Expr, error) {
	elems := make([]ast.Expr, 0, len(g.Elements))
	agg := &tqlerr.Aggregate{}
	for _, e := range g.Elements {
		v, err := c.visitExpr(e)
		if err != nil {
			agg.Add(err)
			continue
		}
		elems = append(elems, v)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.ListExpr{Elements: elems, Sp: c.spanOf(g.Pos, 0)}, nil
}
