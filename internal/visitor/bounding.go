// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// variableSet is a set of named variables, keyed by name. Anonymous
// variables carry no identity and are never added.
type variableSet map[string]struct{}

func (s variableSet) add(v ast.Variable) {
	if v.Anonymous || v.Name == "" {
		return
	}
	s[v.Name] = struct{}{}
}

func (s variableSet) addAll(other variableSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

func (s variableSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// disjointFrom reports whether s shares no member with other. An empty
// other is vacuously disjoint from anything, including an empty s.
func (s variableSet) disjointFrom(other variableSet) bool {
	for name := range other {
		if s.has(name) {
			return false
		}
	}
	return true
}

// conjunctionOwnVariables returns the variables a conjunction "retrieves"
// directly: those named by its own statement patterns and by any nested,
// unguarded conjunction ("{ ... }" groups not wrapped in not/try/or),
// recursively. A disjunction, negation, or try branch contributes nothing
// to its enclosing conjunction's own set, matching the asymmetry that lets
// a negated or optional pattern fail to hold without the whole match
// failing to be bounded.
func conjunctionOwnVariables(conj ast.Conjunction) variableSet {
	out := variableSet{}
	for _, p := range conj.Patterns {
		switch pp := p.(type) {
		case ast.StatementPattern:
			statementVariables(pp.Statement, out)
		case ast.Conjunction:
			out.addAll(conjunctionOwnVariables(pp))
		}
	}
	return out
}

func statementVariables(s ast.Statement, out variableSet) {
	switch st := s.(type) {
	case ast.IsStatement:
		out.add(st.Left)
		out.add(st.Right)

	case ast.InStreamStatement:
		for _, v := range st.Vars {
			out.add(v)
		}
		exprVariables(st.Call, out)

	case ast.ComparisonStatement:
		exprVariables(st.Left, out)
		exprVariables(st.Right, out)

	case ast.AssignmentStatement:
		for _, v := range st.Vars {
			out.add(v)
		}
		exprVariables(st.Value, out)

	case ast.ThingStatement:
		if st.Head.Variable != nil {
			out.add(*st.Head.Variable)
		}
		for _, rp := range st.Head.Tuple {
			out.add(rp.Player)
		}
		for _, c := range st.Constraints {
			switch c.Kind {
			case ast.ThingConstraintIsa:
				typeRefVariables(c.IsaType, out)
			case ast.ThingConstraintHas:
				if c.HasValue != nil {
					exprVariables(c.HasValue, out)
				}
			case ast.ThingConstraintLinks:
				typeRefVariables(c.LinksRelation, out)
				for _, rp := range c.LinksTuple {
					out.add(rp.Player)
				}
			}
		}

	case ast.TypeStatement:
		typeRefVariables(st.Head, out)
		for _, c := range st.Constraints {
			switch c.Kind {
			case ast.TypeConstraintSub:
				typeRefVariables(c.SubType, out)
			case ast.TypeConstraintValueType:
				typeRefVariables(c.ValueType, out)
			case ast.TypeConstraintOwns:
				typeRefVariables(c.OwnsType, out)
				if c.As != nil {
					typeRefVariables(*c.As, out)
				}
			}
		}
	}
}

func typeRefVariables(t ast.TypeRef, out variableSet) {
	switch t.Kind {
	case ast.TypeRefVariable:
		out.add(t.Variable)
	case ast.TypeRefList:
		if t.Elem != nil {
			typeRefVariables(*t.Elem, out)
		}
	}
}

func exprVariables(e ast.Expr, out variableSet) {
	switch ex := e.(type) {
	case ast.VarExpr:
		out.add(ex.Variable)
	case ast.CallExpr:
		for _, a := range ex.Args {
			exprVariables(a, out)
		}
	case ast.ParenExpr:
		exprVariables(ex.Inner, out)
	case ast.BinaryExpr:
		exprVariables(ex.Left, out)
		exprVariables(ex.Right, out)
	case ast.ListExpr:
		for _, el := range ex.Elements {
			exprVariables(el, out)
		}
	case ast.IndexExpr:
		exprVariables(ex.List, out)
		exprVariables(ex.Index, out)
	case ast.RangeExpr:
		exprVariables(ex.List, out)
		if ex.From != nil {
			exprVariables(ex.From, out)
		}
		if ex.To != nil {
			exprVariables(ex.To, out)
		}
	}
}

// checkMatchBounding validates the bounding invariant over a match stage's
// top-level conjunction: the conjunction itself must retrieve at least one
// named variable, and every nested disjunction, negation, try, or braced
// sub-conjunction must share a variable with the bound set accumulated so
// far from its enclosing conjunction.
func checkMatchBounding(conj ast.Conjunction, agg *tqlerr.Aggregate) {
	own := conjunctionOwnVariables(conj)
	if len(own) == 0 {
		agg.Add(tqlerr.New(tqlerr.CodeMatchNoBoundingVariable, conj.Sp,
			"match has no bounding named variable: every pattern is nested inside a disjunction, negation, or try"))
	}
	for _, p := range conj.Patterns {
		checkPatternBounded(p, own, agg)
	}
}

func checkPatternBounded(p ast.Pattern, bounds variableSet, agg *tqlerr.Aggregate) {
	switch pp := p.(type) {
	case ast.Conjunction:
		checkNestedConjunctionBounded(pp, bounds, agg)
	case ast.Disjunction:
		for _, b := range pp.Branches {
			checkNestedConjunctionBounded(b, bounds, agg)
		}
	case ast.Negation:
		checkPatternBounded(pp.Inner, bounds, agg)
	case ast.Try:
		checkPatternBounded(pp.Inner, bounds, agg)
	}
}

func checkNestedConjunctionBounded(conj ast.Conjunction, bounds variableSet, agg *tqlerr.Aggregate) {
	own := conjunctionOwnVariables(conj)
	if bounds.disjointFrom(own) {
		agg.Add(tqlerr.New(tqlerr.CodeMatchUnboundedNestedPattern, conj.Sp,
			"match has unbounded nested pattern: shares no variable with the surrounding conjunction"))
	}
	combined := variableSet{}
	combined.addAll(bounds)
	combined.addAll(own)
	for _, p := range conj.Patterns {
		checkPatternBounded(p, combined, agg)
	}
}

// stageRetrievedVariables returns the named variables a stage contributes
// to the pipeline's scope for every stage after it: a match contributes the
// variables it retrieves, and a write stage contributes the variables its
// statements mention. Stream operators and terminal stages contribute
// nothing; they only consume scope.
func stageRetrievedVariables(st ast.Stage) variableSet {
	out := variableSet{}
	switch s := st.(type) {
	case ast.MatchStage:
		out.addAll(conjunctionOwnVariables(s.Pattern))
	case ast.InsertStage:
		for _, stmt := range s.Statements {
			statementVariables(stmt, out)
		}
	case ast.PutStage:
		for _, stmt := range s.Statements {
			statementVariables(stmt, out)
		}
	case ast.UpdateStage:
		for _, stmt := range s.Statements {
			statementVariables(stmt, out)
		}
	}
	return out
}

// checkStageScope validates that every variable a stage references is
// already in scope, i.e. was retrieved by a preceding stage. Stages that
// only bind new variables (Match, Insert, Put, Update) reference nothing
// that needs checking here.
func checkStageScope(st ast.Stage, bound variableSet, agg *tqlerr.Aggregate) {
	switch s := st.(type) {
	case ast.SelectStage:
		checkVarsInScope(s.Vars, bound, agg)
	case ast.RequireStage:
		checkVarsInScope(s.Vars, bound, agg)
	case ast.SortStage:
		vars := make([]ast.Variable, len(s.Keys))
		for i, k := range s.Keys {
			vars[i] = k.Variable
		}
		checkVarsInScope(vars, bound, agg)
	case ast.DeleteStage:
		for _, t := range s.Targets {
			checkVarsInScope(deleteTargetVariables(t), bound, agg)
		}
	case ast.ReduceStage:
		checkVarsInScope(reductionVariables(s.Reduction), bound, agg)
	}
}

func checkVarsInScope(vars []ast.Variable, bound variableSet, agg *tqlerr.Aggregate) {
	for _, v := range vars {
		if v.Anonymous || v.Name == "" {
			continue
		}
		if !bound.has(v.Name) {
			agg.Add(tqlerr.New(tqlerr.CodeVariableOutOfScope, v.Sp,
				"variable %s is out of scope of the preceding match", v.Display()))
		}
	}
}

func deleteTargetVariables(t ast.DeleteTarget) []ast.Variable {
	switch t.Kind {
	case ast.DeleteTargetHas:
		return []ast.Variable{t.HasAttr, t.HasOwner}
	case ast.DeleteTargetLinks:
		vars := make([]ast.Variable, 0, len(t.LinksTuple)+1)
		for _, rp := range t.LinksTuple {
			vars = append(vars, rp.Player)
		}
		return append(vars, t.LinksRelation)
	default:
		return []ast.Variable{t.Variable}
	}
}

func reductionVariables(r ast.Reduction) []ast.Variable {
	switch r.Kind {
	case ast.ReductionFirst:
		return r.FirstVars
	case ast.ReductionStats:
		var vars []ast.Variable
		for _, stat := range r.Stats {
			vars = append(vars, stat.Vars...)
		}
		return vars
	default:
		return nil
	}
}
