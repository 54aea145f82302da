// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/token"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

var errEmptyCardBound = fmt.Errorf("cardinality bound must be a non-negative integer")

// reservedKindLabels maps the four kind keywords to their token.Kind, since
// the grammar lexes them as plain Ident tokens like any other label.
var reservedKindLabels = map[string]token.Kind{
	"entity":    token.KindEntity,
	"relation":  token.KindRelation,
	"attribute": token.KindAttribute,
	"role":      token.KindRole,
}

func (c *ctx) visitLabel(g *grammar.Label) (ast.Label, error) {
	sp := c.spanOf(g.Pos, len(g.Name))
	if k, ok := reservedKindLabels[g.Name]; ok {
		return ast.Label{IsKind: true, Reserved: k, Sp: sp}, nil
	}
	ident, err := c.visitIdentifier(g.Name, g.Pos)
	if err != nil {
		return ast.Label{}, err
	}
	return ast.Label{Ident: ident, Sp: sp}, nil
}

func (c *ctx) visitIdentifier(name string, pos lexer.Position) (ast.Identifier, error) {
	sp := c.spanOf(pos, len(name))
	if err := validIdentBody(name); err != nil {
		return ast.Identifier{}, tqlerr.New(tqlerr.CodeInvalidTypeLabel, sp, "invalid label %q: %v", name, err)
	}
	return ast.Identifier{Name: name, Sp: sp}, nil
}

func (c *ctx) visitScopedLabel(g *grammar.ScopedLabel) (ast.ScopedLabel, error) {
	sp := c.spanOf(g.Pos, len(g.Scope)+1+len(g.Name))
	scope, err1 := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Scope})
	name, err2 := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Name})
	if err := tqlerr.Collect(err1, err2); err != nil {
		return ast.ScopedLabel{}, err
	}
	return ast.ScopedLabel{Scope: scope, Name: name, Sp: sp}, nil
}

// visitTypeRef visits a type reference in any of its four surface shapes:
// a scoped label, a bare variable, a list-wrapped type, or a plain label.
func (c *ctx) visitTypeRef(g *grammar.TypeRef) (ast.TypeRef, error) {
	sp := c.spanOf(g.Pos, 0)
	switch {
	case g.ScopedLabel != nil:
		sl, err := c.visitScopedLabel(g.ScopedLabel)
		if err != nil {
			return ast.TypeRef{}, err
		}
		return ast.TypeRef{Kind: ast.TypeRefScopedLabel, ScopedLabel: sl, Optional: g.Optional, Sp: sp}, nil

	case g.Variable != "":
		v, err := c.visitVariable(g.Variable, g.Pos)
		if err != nil {
			return ast.TypeRef{}, err
		}
		return ast.TypeRef{Kind: ast.TypeRefVariable, Variable: v, Optional: g.Optional, Sp: sp}, nil

	case g.List != nil:
		elem, err := c.visitTypeRef(g.List)
		if err != nil {
			return ast.TypeRef{}, err
		}
		return ast.TypeRef{Kind: ast.TypeRefList, Elem: &elem, Optional: g.Optional, Sp: sp}, nil

	case g.Label != "":
		if vt, ok := token.ParseValueType(g.Label); ok {
			return ast.TypeRef{Kind: ast.TypeRefValueType, ValueType: vt.String(), Optional: g.Optional, Sp: sp}, nil
		}
		lbl, err := c.visitLabel(&grammar.Label{Pos: g.Pos, Name: g.Label})
		if err != nil {
			return ast.TypeRef{}, err
		}
		return ast.TypeRef{Kind: ast.TypeRefLabel, Label: lbl, Optional: g.Optional, Sp: sp}, nil

	default:
		return ast.TypeRef{}, c.illegalGrammar(g.Pos, "<empty type reference>")
	}
}

// visitAnnotationList visits the zero-or-more trailing capability
// annotations, collecting every malformed annotation rather than stopping
// at the first.
func (c *ctx) visitAnnotationList(g *grammar.AnnotationList) ([]ast.Annotation, error) {
	if g == nil {
		return nil, nil
	}
	out := make([]ast.Annotation, 0, len(g.Items))
	agg := &tqlerr.Aggregate{}
	for _, item := range g.Items {
		a, err := c.visitAnnotation(item)
		if err != nil {
			agg.Add(err)
			continue
		}
		out = append(out, a)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ctx) visitAnnotation(g *grammar.Annotation) (ast.Annotation, error) {
	sp := c.spanOf(g.Pos, 0)
	tag, ok := token.ParseAnnotation(g.Tag)
	if !ok {
		return ast.Annotation{}, c.illegalGrammar(g.Pos, "@"+g.Tag)
	}

	a := ast.Annotation{Tag: tag, CardHi: -1, Sp: sp}

	switch {
	case tag == token.AnnotationCard:
		lo, err := parseCardBound(g.CardLo)
		if err != nil {
			return ast.Annotation{}, tqlerr.New(tqlerr.CodeIllegalGrammar, sp, "invalid @card lower bound %q", g.CardLo)
		}
		a.CardLo = lo
		if g.CardHi == "*" {
			a.CardHi = -1
		} else {
			hi, err := parseCardBound(g.CardHi)
			if err != nil {
				return ast.Annotation{}, tqlerr.New(tqlerr.CodeIllegalGrammar, sp, "invalid @card upper bound %q", g.CardHi)
			}
			a.CardHi = hi
		}
		if a.CardHi >= 0 && a.CardHi < a.CardLo {
			return ast.Annotation{}, tqlerr.New(tqlerr.CodeIllegalGrammar, sp,
				"@card upper bound %d is less than lower bound %d", a.CardHi, a.CardLo)
		}

	case tag == token.AnnotationRegex:
		a.RegexPattern = unquote(g.Str)

	case len(g.List) > 0:
		a.Values = g.List
	}

	return a, nil
}

func parseCardBound(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errEmptyCardBound
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errEmptyCardBound
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
