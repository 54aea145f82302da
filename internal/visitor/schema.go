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

func (c *ctx) visitSchemaQuery(g *grammar.SchemaQuery) (ast.Query, error) {
	sp := c.spanOf(g.Pos, 0)

	switch {
	case g.Define != nil:
		defs, err := c.visitDefinables(g.Define, sp)
		if err != nil {
			return nil, err
		}
		return ast.SchemaQuery{Kind: ast.SchemaDefine, Definables: defs, Sp: sp}, nil

	case g.Redefine != nil:
		defs, err := c.visitDefinables(g.Redefine, sp)
		if err != nil {
			return nil, err
		}
		return ast.SchemaQuery{Kind: ast.SchemaRedefine, Definables: defs, Sp: sp}, nil

	case g.Undefine != nil:
		targets, err := c.visitUndefineTargets(g.Undefine)
		if err != nil {
			return nil, err
		}
		return ast.SchemaQuery{Kind: ast.SchemaUndefine, UndefineTargets: targets, Sp: sp}, nil

	default:
		return nil, c.illegalGrammar(g.Pos, "<empty schema query>")
	}
}

func (c *ctx) visitDefinables(gs []*grammar.Definable, sp span.Span) ([]ast.Node, error) {
	if len(gs) == 0 {
		return nil, tqlerr.New(tqlerr.CodeMissingDefinables, sp,
			"a define or redefine query must contain at least one definable")
	}
	out := make([]ast.Node, 0, len(gs))
	agg := &tqlerr.Aggregate{}
	for _, g := range gs {
		n, err := c.visitDefinable(g)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, n)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ctx) visitDefinable(g *grammar.Definable) (ast.Node, error) {
	switch {
	case g.Type != nil:
		stmt, err := c.visitTypeStatement(g.Type)
		if err != nil {
			return nil, err
		}
		return stmt.(ast.TypeStatement), nil
	case g.Fun != nil:
		return c.visitFunction(g.Fun)
	case g.Struct != nil:
		return c.visitStructDef(g.Struct)
	default:
		return nil, c.illegalGrammar(g.Pos, "<empty definable>")
	}
}

func (c *ctx) visitStructDef(g *grammar.StructDef) (ast.StructDef, error) {
	sp := c.spanOf(g.Pos, 0)
	name, err1 := c.visitIdentifier(g.Name, g.Pos)

	fields := make([]ast.StructField, 0, len(g.Fields))
	agg := &tqlerr.Aggregate{}
	agg.Add(err1)
	for _, f := range g.Fields {
		fname, err1 := c.visitIdentifier(f.Name, f.Pos)
		ftype, err2 := c.visitTypeRef(f.Type)
		if err := tqlerr.Collect(err1, err2); err != nil {
			agg.Add(err)
			continue
		}
		fields = append(fields, ast.StructField{Name: fname, Type: ftype, Optional: f.Optional})
	}
	if err := agg.AsError(); err != nil {
		return ast.StructDef{}, err
	}
	return ast.StructDef{Name: name, Fields: fields, Sp: sp}, nil
}

func (c *ctx) visitUndefineTargets(gs []*grammar.UndefineTarget) ([]ast.UndefineTarget, error) {
	out := make([]ast.UndefineTarget, 0, len(gs))
	agg := &tqlerr.Aggregate{}
	for _, g := range gs {
		t, err := c.visitUndefineTarget(g)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, t)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ctx) visitUndefineTarget(g *grammar.UndefineTarget) (ast.UndefineTarget, error) {
	sp := c.spanOf(g.Pos, 0)

	switch {
	case g.Annotation != "":
		ann, ok := token.ParseAnnotation(g.Annotation)
		if !ok {
			return ast.UndefineTarget{}, c.illegalGrammar(g.Pos, "@"+g.Annotation)
		}
		typ, err := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.AnnOfType})
		if err != nil {
			return ast.UndefineTarget{}, err
		}
		return ast.UndefineTarget{Kind: ast.UndefineAnnotationOfType, Annotation: ann, Type: typ, Sp: sp}, nil

	case g.Override != nil:
		overrideOf, err1 := c.visitTypeRef(g.Override)
		typ, err2 := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.OverrideOf})
		if err := tqlerr.Collect(err1, err2); err != nil {
			return ast.UndefineTarget{}, err
		}
		return ast.UndefineTarget{Kind: ast.UndefineOverride, OverrideOf: overrideOf, Type: typ, Sp: sp}, nil

	case g.Capability != "":
		arg, err1 := c.visitTypeRef(g.CapArg)
		typ, err2 := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.CapOf})
		if err := tqlerr.Collect(err1, err2); err != nil {
			return ast.UndefineTarget{}, err
		}
		return ast.UndefineTarget{
			Kind: ast.UndefineCapabilityOfType, CapabilityKeyword: g.Capability,
			CapabilityArg: arg, Type: typ, Sp: sp,
		}, nil

	case g.FuncName != "":
		return ast.UndefineTarget{Kind: ast.UndefineFunction, FuncName: g.FuncName, Sp: sp}, nil

	case g.StructName != "":
		return ast.UndefineTarget{Kind: ast.UndefineStruct, StructName: g.StructName, Sp: sp}, nil

	default:
		return ast.UndefineTarget{}, c.illegalGrammar(g.Pos, "<empty undefine target>")
	}
}
