// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/token"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// visitStatement visits one of the six disjoint statement variants and
// adapts it to ast.Statement.
func (c *ctx) visitStatement(g *grammar.Statement) (ast.Statement, error) {
	switch {
	case g.Is != nil:
		return c.visitIsStatement(g.Is)
	case g.InStream != nil:
		return c.visitInStatement(g.InStream)
	case g.Assignment != nil:
		return c.visitAssignStatement(g.Assignment)
	case g.Comparison != nil:
		return c.visitComparisonStatement(g.Comparison)
	case g.Thing != nil:
		return c.visitThingStatement(g.Thing)
	case g.Type != nil:
		return c.visitTypeStatement(g.Type)
	default:
		return nil, c.illegalGrammar(g.Pos, "<empty statement>")
	}
}

func (c *ctx) visitIsStatement(g *grammar.IsStatement) (ast.Statement, error) {
	left, err1 := c.visitVariable(g.Left, g.Pos)
	right, err2 := c.visitVariable(g.Right, g.Pos)
	if err := tqlerr.Collect(err1, err2); err != nil {
		return nil, err
	}
	return ast.IsStatement{Left: left, Right: right, Sp: c.spanOf(g.Pos, 0)}, nil
}

func (c *ctx) visitInStatement(g *grammar.InStatement) (ast.Statement, error) {
	vars := make([]ast.Variable, 0, len(g.Vars))
	agg := &tqlerr.Aggregate{}
	for _, raw := range g.Vars {
		v, err := c.visitVariable(raw, g.Pos)
		if err != nil {
			agg.Add(err)
			continue
		}
		vars = append(vars, v)
	}
	call, err := c.visitCall(g.Call)
	if err != nil {
		agg.Add(err)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.InStreamStatement{Vars: vars, Call: call.(ast.CallExpr), Sp: c.spanOf(g.Pos, 0)}, nil
}

func (c *ctx) visitAssignStatement(g *grammar.AssignStatement) (ast.Statement, error) {
	vars := make([]ast.Variable, 0, len(g.Vars))
	agg := &tqlerr.Aggregate{}
	for _, raw := range g.Vars {
		v, err := c.visitVariable(raw, g.Pos)
		if err != nil {
			agg.Add(err)
			continue
		}
		vars = append(vars, v)
	}
	value, err := c.visitExpr(g.Value)
	if err != nil {
		agg.Add(err)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.AssignmentStatement{Vars: vars, Value: value, Sp: c.spanOf(g.Pos, 0)}, nil
}

func (c *ctx) visitComparisonStatement(g *grammar.ComparisonStatement) (ast.Statement, error) {
	sp := c.spanOf(g.Pos, 0)
	left, err1 := c.visitExpr(g.Left)
	right, err2 := c.visitExpr(g.Right)
	cmp, ok := token.ParseComparator(g.Comparator)
	var err3 error
	if !ok {
		err3 = c.illegalGrammar(g.Pos, g.Comparator)
	}
	if err := tqlerr.Collect(err1, err2, err3); err != nil {
		return nil, err
	}

	if cmp.IsSubstring() {
		lit, ok := right.(ast.LitExpr)
		if !ok || lit.Literal.Kind != ast.LiteralString {
			return nil, tqlerr.New(tqlerr.CodeInvalidConstraintPredicate, sp,
				"%q requires a string literal operand", cmp.String())
		}
	}

	return ast.ComparisonStatement{Left: left, Comparator: cmp, Right: right, Sp: sp}, nil
}

func (c *ctx) visitRoleTuple(g *grammar.RoleTuple) ([]ast.RolePlayer, error) {
	out := make([]ast.RolePlayer, 0, len(g.Players))
	agg := &tqlerr.Aggregate{}
	for _, p := range g.Players {
		rp, err := c.visitRolePlayer(p)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, rp)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ctx) visitRolePlayer(g *grammar.RolePlayer) (ast.RolePlayer, error) {
	player, err1 := c.visitVariable(g.Player, g.Pos)
	var role *ast.Label
	var err2 error
	if g.Role != "" {
		lbl, err := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Role})
		if err != nil {
			err2 = err
		} else {
			role = &lbl
		}
	}
	if err := tqlerr.Collect(err1, err2); err != nil {
		return ast.RolePlayer{}, err
	}
	return ast.RolePlayer{Role: role, Player: player}, nil
}

func (c *ctx) visitThingStatement(g *grammar.ThingStatement) (ast.Statement, error) {
	sp := c.spanOf(g.Pos, 0)
	var head ast.ThingHead
	agg := &tqlerr.Aggregate{}

	switch {
	case g.Variable != "":
		v, err := c.visitVariable(g.Variable, g.Pos)
		if err != nil {
			agg.Add(err)
		} else {
			head.Variable = &v
		}
	case g.Tuple != nil:
		tuple, err := c.visitRoleTuple(g.Tuple)
		if err != nil {
			agg.Add(err)
		} else {
			head.Tuple = tuple
		}
	default:
		agg.Add(c.illegalGrammar(g.Pos, "<empty thing head>"))
	}

	constraints := make([]ast.ThingConstraint, 0, len(g.Constraints))
	sawIsa, sawIID := false, false
	for _, gc := range g.Constraints {
		tc, dup, err := c.visitThingConstraint(gc, &sawIsa, &sawIID)
		if err != nil {
			agg.Add(err)
			continue
		}
		if dup {
			agg.Add(tqlerr.New(tqlerr.CodeDuplicateConstraint, tc.Sp,
				"a thing statement may carry at most one isa and one iid constraint"))
			continue
		}
		constraints = append(constraints, tc)
	}

	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.ThingStatement{Head: head, Constraints: constraints, Sp: sp}, nil
}

func (c *ctx) visitThingConstraint(g *grammar.ThingConstraint, sawIsa, sawIID *bool) (ast.ThingConstraint, bool, error) {
	sp := c.spanOf(g.Pos, 0)
	switch {
	case g.Isa != nil:
		dup := *sawIsa
		*sawIsa = true
		typ, err := c.visitTypeRef(g.Isa.Type)
		if err != nil {
			return ast.ThingConstraint{}, false, err
		}
		return ast.ThingConstraint{
			Kind: ast.ThingConstraintIsa, IsaType: typ, IsaExact: g.Isa.Exact, Sp: sp,
		}, dup, nil

	case g.IID != "":
		dup := *sawIID
		*sawIID = true
		return ast.ThingConstraint{Kind: ast.ThingConstraintIID, IID: g.IID, Sp: sp}, dup, nil

	case g.Has != nil:
		label, err1 := c.visitLabel(&grammar.Label{Pos: g.Has.Pos, Name: g.Has.Attr})
		var value ast.Expr
		var err2 error
		switch {
		case g.Has.Variable != "":
			v, err := c.visitVariable(g.Has.Variable, g.Has.Pos)
			if err != nil {
				err2 = err
			} else {
				value = ast.VarExpr{Variable: v}
			}
		case g.Has.Literal != nil:
			lit, err := c.visitLiteral(g.Has.Literal)
			if err != nil {
				err2 = err
			} else {
				value = ast.LitExpr{Literal: lit}
			}
		}
		if err := tqlerr.Collect(err1, err2); err != nil {
			return ast.ThingConstraint{}, false, err
		}
		return ast.ThingConstraint{Kind: ast.ThingConstraintHas, HasType: label, HasValue: value, Sp: sp}, false, nil

	case g.Links != nil:
		tuple, err := c.visitRoleTuple(g.Links.Tuple)
		if err != nil {
			return ast.ThingConstraint{}, false, err
		}
		return ast.ThingConstraint{Kind: ast.ThingConstraintLinks, LinksTuple: tuple, Sp: sp}, false, nil

	default:
		return ast.ThingConstraint{}, false, c.illegalGrammar(g.Pos, "<empty thing constraint>")
	}
}

func (c *ctx) visitTypeStatement(g *grammar.TypeStatement) (ast.Statement, error) {
	sp := c.spanOf(g.Pos, 0)
	head, err := c.visitTypeRef(g.Head)
	agg := &tqlerr.Aggregate{}
	agg.Add(err)

	constraints := make([]ast.TypeConstraint, 0, len(g.Constraints))
	for _, gc := range g.Constraints {
		tc, err := c.visitTypeConstraint(gc)
		if err != nil {
			agg.Add(err)
			continue
		}
		constraints = append(constraints, tc)
	}

	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return ast.TypeStatement{Head: head, Constraints: constraints, Sp: sp}, nil
}

func (c *ctx) visitTypeConstraint(g *grammar.TypeConstraint) (ast.TypeConstraint, error) {
	sp := c.spanOf(g.Pos, 0)
	anns, errAnn := c.visitAnnotationList(g.Annotations)

	var tc ast.TypeConstraint
	var err error
	switch {
	case g.Sub != nil:
		var typ ast.TypeRef
		typ, err = c.visitTypeRef(g.Sub.Type)
		tc = ast.TypeConstraint{Kind: ast.TypeConstraintSub, SubType: typ, SubExact: g.Sub.Exact, Sp: sp}

	case g.LabelValue != "":
		var lbl ast.Label
		lbl, err = c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.LabelValue})
		tc = ast.TypeConstraint{Kind: ast.TypeConstraintLabel, LabelValue: lbl, Sp: sp}

	case g.ValueType != nil:
		var typ ast.TypeRef
		typ, err = c.visitTypeRef(g.ValueType)
		tc = ast.TypeConstraint{Kind: ast.TypeConstraintValueType, ValueType: typ, Sp: sp}

	case g.Owns != nil:
		var typ ast.TypeRef
		typ, err = c.visitTypeRef(g.Owns.Type)
		var as *ast.TypeRef
		if g.Owns.As != nil {
			v, aerr := c.visitTypeRef(g.Owns.As)
			if aerr != nil {
				err = tqlerr.Collect(err, aerr)
			} else {
				as = &v
			}
		}
		tc = ast.TypeConstraint{Kind: ast.TypeConstraintOwns, OwnsType: typ, As: as, Sp: sp}

	case g.Relates != nil:
		var role ast.Label
		role, err = c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Relates.Role})
		tc = ast.TypeConstraint{Kind: ast.TypeConstraintRelates, RelatesRole: role, Sp: sp}
		if g.Relates.As != "" {
			as, aerr := c.visitTypeRef(&grammar.TypeRef{Pos: g.Pos, Label: g.Relates.As})
			if aerr != nil {
				err = tqlerr.Collect(err, aerr)
			} else {
				tc.As = &as
			}
		}

	case g.Plays != nil:
		var role ast.ScopedLabel
		role, err = c.visitScopedLabel(g.Plays.Role)
		tc = ast.TypeConstraint{Kind: ast.TypeConstraintPlays, PlaysRole: role, Sp: sp}
		if g.Plays.As != "" {
			as, aerr := c.visitTypeRef(&grammar.TypeRef{Pos: g.Pos, Label: g.Plays.As})
			if aerr != nil {
				err = tqlerr.Collect(err, aerr)
			} else {
				tc.As = &as
			}
		}

	default:
		err = c.illegalGrammar(g.Pos, "<empty type constraint>")
	}

	if cerr := tqlerr.Collect(err, errAnn); cerr != nil {
		return ast.TypeConstraint{}, cerr
	}
	tc.Annotations = anns
	return tc, nil
}
