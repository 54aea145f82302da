// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Conjunction is a ';'-terminated list of pattern elements, used for the
// body of a nested "{ ... }", "not { ... }", "try { ... }", or disjunction
// branch block: the closing '}' immediately follows the last element's
// trailing ';', so every element (including the last) consumes one.
type Conjunction struct {
	Pos      lexer.Position    `parser:""`
	Elements []*PatternElement `parser:"(@@ ';')*"`
}

// TopConjunction is the unbraced pattern list used directly by a match
// stage. Unlike Conjunction, its last element does not consume a trailing
// ';': that ';' belongs to the enclosing pipeline's stage separator.
type TopConjunction struct {
	Pos      lexer.Position    `parser:""`
	Elements []*PatternElement `parser:"@@ (';' @@)*"`
}

// PatternElement is one element of a Conjunction: a negation, a try block,
// a disjunction, a nested block, or a statement.
type PatternElement struct {
	Pos         lexer.Position `parser:""`
	Negation    *Negation      `parser:"( @@"`
	Try         *TryPattern    `parser:"| @@"`
	Disjunction *Disjunction   `parser:"| @@"`
	Nested      *Conjunction   `parser:"| '{' @@ '}'"`
	Statement   *Statement     `parser:"| @@ )"`
}

// Negation: not { ... }.
type Negation struct {
	Pos  lexer.Position `parser:""`
	Body *Conjunction   `parser:"'not' '{' @@ '}'"`
}

// TryPattern: try { ... }.
type TryPattern struct {
	Pos  lexer.Position `parser:""`
	Body *Conjunction   `parser:"'try' '{' @@ '}'"`
}

// Disjunction: a list of branch-groups separated by "or"; every branch must
// be non-empty, a rule the visitor enforces since a bare trailing "or" with
// no following group is simply a grammar error here.
type Disjunction struct {
	Pos      lexer.Position `parser:""`
	Branches []*Conjunction `parser:"'{' @@ '}' ('or' '{' @@ '}')+"`
}
