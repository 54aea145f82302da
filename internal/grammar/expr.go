// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Expr is the parse-tree node for an arithmetic expression. participle has
// no built-in precedence-climbing construct, so the grammar captures a flat
// primary-then-operator token stream here; internal/visitor runs a Pratt
// parser over First/Rest to build the precedence tree.
type Expr struct {
	Pos  lexer.Position `parser:""`
	First *Primary      `parser:"@@"`
	Rest  []*OpPrimary  `parser:"@@*"`
}

// OpPrimary is one (operator, operand) pair following the first primary in
// a flat expression token stream.
type OpPrimary struct {
	Pos     lexer.Position `parser:""`
	Op      string         `parser:"@Arith"`
	Operand *Primary       `parser:"@@"`
}

// Primary is an expression primary: a variable reference, function call,
// list constructor, literal, or parenthesised expression, optionally
// followed by a list index or index-range suffix.
type Primary struct {
	Pos      lexer.Position `parser:""`
	Variable string         `parser:"( @Variable"`
	Call     *Call          `parser:"| @@"`
	ListLit  *ListLiteral   `parser:"| @@"`
	Literal  *Literal       `parser:"| @@"`
	Paren    *Expr          `parser:"| '(' @@ ')' )"`
	Index    *IndexSuffix   `parser:"@@?"`
}

// Call is a builtin or user-defined function call: name(arg, arg, ...).
type Call struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
	Args []*Expr        `parser:"'(' (@@ (',' @@)*)? ')'"`
}

// ListLiteral is a bracketed list constructor: [a, b, c].
type ListLiteral struct {
	Pos      lexer.Position `parser:""`
	Elements []*Expr        `parser:"'[' (@@ (',' @@)*)? ']'"`
}

// IndexSuffix is a trailing "[index]" or "[from..to]" suffix on a primary.
// IsRange distinguishes a single index from a range; From/To are nil when
// the corresponding bound was omitted in a range.
type IndexSuffix struct {
	Pos     lexer.Position `parser:""`
	From    *Expr          `parser:"'[' @@?"`
	IsRange bool           `parser:"( @Range"`
	To      *Expr          `parser:"  @@? )?"`
	Close   string         `parser:"']'"`
}
