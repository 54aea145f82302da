// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Statement is the parse-tree node for any of the disjoint statement
// variants: single (is | in | comparison | assignment), multi (thing/type
// forms), or an anonymous relation.
type Statement struct {
	Pos        lexer.Position       `parser:""`
	Is         *IsStatement         `parser:"( @@"`
	InStream   *InStatement         `parser:"| @@"`
	Assignment *AssignStatement     `parser:"| @@"`
	Comparison *ComparisonStatement `parser:"| @@"`
	Thing      *ThingStatement      `parser:"| @@"`
	Type       *TypeStatement       `parser:"| @@ )"`
}

// IsStatement: $a is $b.
type IsStatement struct {
	Pos   lexer.Position `parser:""`
	Left  string         `parser:"@Variable 'is'"`
	Right string         `parser:"@Variable"`
}

// InStatement: $a, $b in my_func(...).
type InStatement struct {
	Pos  lexer.Position `parser:""`
	Vars []string       `parser:"@Variable (',' @Variable)* 'in'"`
	Call *Call          `parser:"@@"`
}

// AssignStatement: let $r = expr.
type AssignStatement struct {
	Pos   lexer.Position `parser:""`
	Vars  []string       `parser:"'let' @Variable (',' @Variable)* '='"`
	Value *Expr          `parser:"@@"`
}

// ComparisonStatement: expr cmp expr.
type ComparisonStatement struct {
	Pos        lexer.Position `parser:""`
	Left       *Expr          `parser:"@@"`
	Comparator string         `parser:"@(OpEq | OpAssignEq | OpNe | OpGe | OpLe | OpGt | OpLt | 'contains' | 'like')"`
	Right      *Expr          `parser:"@@"`
}

// RolePlayer is one entry of a relation tuple: (role ':')? $player.
type RolePlayer struct {
	Pos    lexer.Position `parser:""`
	Role   string         `parser:"(@Ident ':')?"`
	Player string         `parser:"@Variable"`
}

// RoleTuple is a parenthesised, comma-separated list of role players.
type RoleTuple struct {
	Pos     lexer.Position `parser:""`
	Players []*RolePlayer  `parser:"'(' @@ (',' @@)* ')'"`
}

// ThingStatement: head plus an ordered list of thing constraints.
type ThingStatement struct {
	Pos         lexer.Position     `parser:""`
	Variable    string             `parser:"( @Variable"`
	Tuple       *RoleTuple         `parser:"| @@ )"`
	Constraints []*ThingConstraint `parser:"(@@ (','? @@)*)?"`
}

// ThingConstraint: isa, iid, has, or links.
type ThingConstraint struct {
	Pos   lexer.Position   `parser:""`
	Isa   *IsaConstraint   `parser:"( @@"`
	IID   string           `parser:"| 'iid' @Ident"`
	Has   *HasConstraint   `parser:"| @@"`
	Links *LinksConstraint `parser:"| @@ )"`
}

// IsaConstraint: isa | isa! followed by a type reference.
type IsaConstraint struct {
	Pos   lexer.Position `parser:""`
	Exact bool           `parser:"( @IsaExact"`
	Plain bool           `parser:"| @'isa' )"`
	Type  *TypeRef       `parser:"@@"`
}

// HasConstraint: has <attrLabel> <value>.
type HasConstraint struct {
	Pos      lexer.Position `parser:""`
	Attr     string         `parser:"'has' @Ident"`
	Variable string         `parser:"( @Variable"`
	Literal  *Literal       `parser:"| @@ )"`
}

// LinksConstraint: links <roleTuple>.
type LinksConstraint struct {
	Pos   lexer.Position `parser:""`
	Tuple *RoleTuple     `parser:"'links' @@"`
}

// TypeStatement: head type reference plus an ordered list of type
// constraints, each with its own annotation list.
type TypeStatement struct {
	Pos         lexer.Position    `parser:""`
	Head        *TypeRef          `parser:"@@"`
	Constraints []*TypeConstraint `parser:"(@@ (','? @@)*)?"`
}

// TypeConstraint: sub/sub!, label, value, owns, relates, plays.
type TypeConstraint struct {
	Pos         lexer.Position  `parser:""`
	Sub         *SubConstraint  `parser:"( @@"`
	LabelValue  string          `parser:"| 'label' @Ident"`
	ValueType   *TypeRef        `parser:"| 'value' @@"`
	Owns        *OwnsConstraint `parser:"| @@"`
	Relates     *RelatesConstraint `parser:"| @@"`
	Plays       *PlaysConstraint   `parser:"| @@ )"`
	Annotations *AnnotationList    `parser:"@@"`
}

// SubConstraint: sub | sub! followed by a type reference.
type SubConstraint struct {
	Pos   lexer.Position `parser:""`
	Exact bool           `parser:"( @SubExact"`
	Plain bool           `parser:"| @'sub' )"`
	Type  *TypeRef       `parser:"@@"`
}

// OwnsConstraint: owns <type> (as <type>)?
type OwnsConstraint struct {
	Pos  lexer.Position `parser:""`
	Type *TypeRef       `parser:"'owns' @@"`
	As   *TypeRef       `parser:"('as' @@)?"`
}

// RelatesConstraint: relates <role> (as <role>)?
type RelatesConstraint struct {
	Pos  lexer.Position `parser:""`
	Role string         `parser:"'relates' @Ident"`
	As   string         `parser:"('as' @Ident)?"`
}

// PlaysConstraint: plays <scope:role> (as <role>)?
type PlaysConstraint struct {
	Pos  lexer.Position `parser:""`
	Role *ScopedLabel   `parser:"'plays' @@"`
	As   string         `parser:"('as' @Ident)?"`
}
