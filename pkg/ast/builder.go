// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

// Builder constructs AST nodes programmatically, without a source span.
// Every node it returns has an invalid Span, identifying it as
// builder-constructed rather than parsed.
type Builder struct{}

// NewBuilder returns a Builder.
func NewBuilder() Builder { return Builder{} }

// NamedVariable builds a named concept variable $name.
func (Builder) NamedVariable(name string) Variable {
	return Variable{Name: name, Namespace: NamespaceConcept}
}

// AnonymousVariable builds the anonymous variable $_.
func (Builder) AnonymousVariable() Variable {
	return Variable{Anonymous: true, Namespace: NamespaceConcept}
}

// Label builds a plain identifier label.
func (Builder) Label(name string) Label {
	return Label{Ident: Identifier{Name: name}}
}

// IntLiteral builds an integer literal.
func (Builder) IntLiteral(v int64) Literal {
	return Literal{Kind: LiteralInteger, Int: v}
}

// BoolLiteral builds a boolean literal.
func (Builder) BoolLiteral(v bool) Literal {
	return Literal{Kind: LiteralBoolean, Bool: v}
}

// StringLiteral builds a string literal; raw is the printed (quoted, escaped)
// form and decoded is its escape-decoded value.
func (Builder) StringLiteral(decoded, raw string) Literal {
	return Literal{Kind: LiteralString, Str: decoded, StrRaw: raw}
}

// Isa builds a single-constraint thing statement: $v isa label.
func (b Builder) Isa(v Variable, label Label) ThingStatement {
	return ThingStatement{
		Head: ThingHead{Variable: &v},
		Constraints: []ThingConstraint{
			{Kind: ThingConstraintIsa, IsaType: TypeRef{Kind: TypeRefLabel, Label: label}},
		},
	}
}

// MatchOf wraps the given statements in a single Conjunction inside a
// MatchStage.
func (Builder) MatchOf(stmts ...Statement) MatchStage {
	patterns := make([]Pattern, len(stmts))
	for i, s := range stmts {
		patterns[i] = StatementPattern{Statement: s}
	}
	return MatchStage{Pattern: Conjunction{Patterns: patterns}}
}

// PipelineOf builds a Pipeline from an ordered stage list, with no
// preambles and no trailing end marker.
func (Builder) PipelineOf(stages ...Stage) Pipeline {
	return Pipeline{Stages: stages}
}
