// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/internal/visitor"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

func parseAndVisit(text string) (ast.Query, error) {
	g, err := grammar.ParseQuery(text)
	if err != nil {
		return nil, err
	}
	return visitor.VisitQuery(text, g)
}

var _ = Describe("fetch stage projections", func() {
	It("builds a single expression projection", func() {
		q, err := parseAndVisit(`match $p isa person has name $n; fetch { "name": $n };`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		fetch := pipeline.Stages[len(pipeline.Stages)-1].(ast.FetchStage)
		Expect(fetch.Projections).To(HaveLen(1))
		Expect(fetch.Projections[0].SingleExpr).NotTo(BeNil())
	})

	It("builds a list-of-subquery projection", func() {
		q, err := parseAndVisit(
			`match $p isa person; fetch { "friends": [ { match $p has friend $f; select $f; } ] };`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		fetch := pipeline.Stages[len(pipeline.Stages)-1].(ast.FetchStage)
		Expect(fetch.Projections).To(HaveLen(1))
		Expect(fetch.Projections[0].Kind).To(Equal(ast.FetchListOf))
		Expect(fetch.Projections[0].ListSub).NotTo(BeNil())
	})

	It("builds a nested object projection", func() {
		q, err := parseAndVisit(
			`match $p isa person has name $n has age $a; fetch { "profile": { "name": $n, "age": $a } };`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		fetch := pipeline.Stages[len(pipeline.Stages)-1].(ast.FetchStage)
		Expect(fetch.Projections).To(HaveLen(1))
		obj := fetch.Projections[0]
		Expect(obj.Kind).To(Equal(ast.FetchObject))
		Expect(obj.Entries).To(HaveLen(2))
	})

	It("builds the all-attributes-of shorthand", func() {
		q, err := parseAndVisit(`match $p isa person; fetch { "all": $p.* };`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		fetch := pipeline.Stages[len(pipeline.Stages)-1].(ast.FetchStage)
		obj := fetch.Projections[0]
		Expect(obj.Kind).To(Equal(ast.FetchObject))
		Expect(obj.AllAttrsOf).NotTo(BeNil())
		Expect(obj.AllAttrsOf.Display()).To(Equal("$p"))
	})

	It("rejects a fetch stage that is not the pipeline's last stage", func() {
		_, err := parseAndVisit(
			`match $p isa person; fetch { "id": $p }; select $p;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0002"))
	})
})

var _ = Describe("reduce stage reductions", func() {
	It("visits a check reduction", func() {
		q, err := parseAndVisit(`match $p isa person; reduce check;`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		reduce := pipeline.Stages[len(pipeline.Stages)-1].(ast.ReduceStage)
		Expect(reduce.Reduction.Kind).To(Equal(ast.ReductionCheck))
	})

	It("visits a first reduction over multiple variables", func() {
		q, err := parseAndVisit(`match $p isa person has name $n; reduce first $p, $n;`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		reduce := pipeline.Stages[len(pipeline.Stages)-1].(ast.ReduceStage)
		Expect(reduce.Reduction.Kind).To(Equal(ast.ReductionFirst))
		Expect(reduce.Reduction.FirstVars).To(HaveLen(2))
		Expect(reduce.Reduction.Last).To(BeFalse())
	})

	It("visits a stats reduction with count taking several variables", func() {
		q, err := parseAndVisit(`match $p isa person has name $n; reduce count($p, $n);`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		reduce := pipeline.Stages[len(pipeline.Stages)-1].(ast.ReduceStage)
		Expect(reduce.Reduction.Kind).To(Equal(ast.ReductionStats))
		Expect(reduce.Reduction.Stats).To(HaveLen(1))
	})

	It("rejects a non-count stat given more than one variable", func() {
		_, err := parseAndVisit(`match $p isa person has age $a; reduce sum($a, $p);`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0013"))
	})
})

var _ = Describe("schema query definitions", func() {
	It("visits a define query introducing sub, owns, and relates constraints", func() {
		q, err := parseAndVisit(
			`define person sub entity, owns name; friendship sub relation, relates friend;`)
		Expect(err).NotTo(HaveOccurred())
		schema := q.(ast.SchemaQuery)
		Expect(schema.Kind).To(Equal(ast.SchemaDefine))
		Expect(schema.Definables).To(HaveLen(2))
		first := schema.Definables[0].(ast.TypeStatement)
		Expect(first.Head.Display()).To(Equal("person"))
		Expect(first.Constraints).To(HaveLen(2))
	})

	It("visits an undefine query removing a capability", func() {
		q, err := parseAndVisit(`undefine owns name of person;`)
		Expect(err).NotTo(HaveOccurred())
		schema := q.(ast.SchemaQuery)
		Expect(schema.Kind).To(Equal(ast.SchemaUndefine))
		Expect(schema.UndefineTargets).To(HaveLen(1))
	})
})

var _ = Describe("pattern nesting", func() {
	It("visits a disjunction of two branches", func() {
		q, err := parseAndVisit(
			`match $p isa person; { $p has name "Ada"; } or { $p has name "Bo"; }; select $p;`)
		Expect(err).NotTo(HaveOccurred())
		pipeline := q.(ast.Pipeline)
		match := pipeline.Stages[0].(ast.MatchStage)
		Expect(match.Pattern.Patterns).To(HaveLen(2))
		disj, ok := match.Pattern.Patterns[1].(ast.Disjunction)
		Expect(ok).To(BeTrue())
		Expect(disj.Branches).To(HaveLen(2))
	})

	It("rejects a negation directly nested in another negation", func() {
		_, err := parseAndVisit(`match $p isa person; not { not { $p has name "Ada"; }; }; select $p;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0016"))
	})

	It("rejects a nested pattern sharing no variable with the enclosing match", func() {
		_, err := parseAndVisit(`match $x isa person; { not { $y isa person; }; }; end;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0008"))
	})

	It("accepts a negation sharing a variable with the enclosing match", func() {
		_, err := parseAndVisit(`match $p isa person; not { $p has name "Ada"; }; select $p;`)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("match bounding", func() {
	It("rejects a match whose patterns are all nested inside a negation", func() {
		_, err := parseAndVisit(`match not { $y isa person; }; end;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0007"))
	})
})

var _ = Describe("pipeline scope soundness", func() {
	It("rejects selecting a variable the match never binds", func() {
		_, err := parseAndVisit(`match $p isa person; select $q;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0012"))
	})

	It("rejects a select variable list that repeats a variable", func() {
		_, err := parseAndVisit(`match $p isa person; select $p, $p;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0011"))
	})

	It("rejects a sort variable list that repeats a variable", func() {
		_, err := parseAndVisit(`match $p isa person; sort $p asc, $p desc;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0011"))
	})

	It("rejects a delete target out of scope", func() {
		_, err := parseAndVisit(`match $p isa person; delete $q;`)
		Expect(err).To(HaveOccurred())
		code, ok := tqlerr.CodeOf(err)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal("TQL0012"))
	})
})
