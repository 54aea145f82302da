// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// Expr is implemented by every expression variant: variable reference,
// literal, function call, parenthesised expression, binary arithmetic
// operation, list constructor, list index, and list index-range.
type Expr interface {
	Node
	exprNode()
}

// VarExpr references a variable as an expression operand.
type VarExpr struct {
	Variable Variable
}

func (e VarExpr) exprNode()             {}
func (e VarExpr) Span() span.Span       { return e.Variable.Sp }
func (e VarExpr) Display() string       { return e.Variable.Display() }
func (e VarExpr) Pretty(indent int) string { return e.Display() }

// LitExpr wraps a value literal as an expression operand.
type LitExpr struct {
	Literal Literal
}

func (e LitExpr) exprNode()             {}
func (e LitExpr) Span() span.Span       { return e.Literal.Sp }
func (e LitExpr) Display() string       { return e.Literal.Display() }
func (e LitExpr) Pretty(indent int) string { return e.Display() }

// CallExpr is a function call, either to a builtin (abs, ceil, floor, max,
// min, round, length) or a user-defined function by name.
type CallExpr struct {
	Builtin    token.Builtin
	IsBuiltin  bool
	Name       string
	Args       []Expr
	Sp         span.Span
}

func (e CallExpr) exprNode()       {}
func (e CallExpr) Span() span.Span { return e.Sp }

func (e CallExpr) Display() string {
	name := e.Name
	if e.IsBuiltin {
		name = e.Builtin.String()
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.Display()
	}
	return name + "(" + joined(", ", parts) + ")"
}

func (e CallExpr) Pretty(indent int) string { return e.Display() }

// ParenExpr is an explicitly parenthesised sub-expression, as written in
// source. Binary expressions add their own parentheses based on precedence
// regardless of whether the source used an explicit ParenExpr.
type ParenExpr struct {
	Inner Expr
	Sp    span.Span
}

func (e ParenExpr) exprNode()       {}
func (e ParenExpr) Span() span.Span { return e.Sp }
func (e ParenExpr) Display() string { return "(" + e.Inner.Display() + ")" }
func (e ParenExpr) Pretty(indent int) string { return e.Display() }

// BinaryExpr is a binary arithmetic operation. Its span covers
// Left.Span().Begin .. Right.Span().End.
type BinaryExpr struct {
	Op    token.ArithOp
	Left  Expr
	Right Expr
}

func (e BinaryExpr) exprNode() {}

func (e BinaryExpr) Span() span.Span {
	return span.Cover(e.Left.Span(), e.Right.Span())
}

func (e BinaryExpr) Display() string {
	return exprChild(e.Left, e.Op.Precedence(), false) + " " + e.Op.String() + " " +
		exprChild(e.Right, e.Op.Precedence(), true)
}

func (e BinaryExpr) Pretty(indent int) string { return e.Display() }

// exprChild renders a child expression of a binary operator at the given
// parent precedence, parenthesising it when required to preserve meaning: a
// child of strictly lower precedence always needs parens; a child of equal
// precedence needs parens only on the non-associative side (the right side
// of a left-associative parent, the left side of a right-associative one).
func exprChild(e Expr, parentPrec int, isRightChild bool) string {
	bin, ok := e.(BinaryExpr)
	if !ok {
		return e.Display()
	}
	childPrec := bin.Op.Precedence()
	needsParen := childPrec < parentPrec
	if childPrec == parentPrec {
		rightAssoc := bin.Op.RightAssociative()
		if rightAssoc && !isRightChild {
			needsParen = true
		}
		if !rightAssoc && isRightChild {
			needsParen = true
		}
	}
	if needsParen {
		return "(" + bin.Display() + ")"
	}
	return bin.Display()
}

// ListExpr is a bracketed list constructor: [a, b, c].
type ListExpr struct {
	Elements []Expr
	Sp       span.Span
}

func (e ListExpr) exprNode()       {}
func (e ListExpr) Span() span.Span { return e.Sp }

func (e ListExpr) Display() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.Display()
	}
	return "[" + joined(", ", parts) + "]"
}

func (e ListExpr) Pretty(indent int) string { return e.Display() }

// IndexExpr is a single-element list index: list[i].
type IndexExpr struct {
	List  Expr
	Index Expr
	Sp    span.Span
}

func (e IndexExpr) exprNode()       {}
func (e IndexExpr) Span() span.Span { return e.Sp }
func (e IndexExpr) Display() string { return e.List.Display() + "[" + e.Index.Display() + "]" }
func (e IndexExpr) Pretty(indent int) string { return e.Display() }

// RangeExpr is a list index-range: list[from..to]. From and To are nil when
// the bound was omitted.
type RangeExpr struct {
	List Expr
	From Expr
	To   Expr
	Sp   span.Span
}

func (e RangeExpr) exprNode()       {}
func (e RangeExpr) Span() span.Span { return e.Sp }

func (e RangeExpr) Display() string {
	from, to := "", ""
	if e.From != nil {
		from = e.From.Display()
	}
	if e.To != nil {
		to = e.To.Display()
	}
	return e.List.Display() + "[" + from + ".." + to + "]"
}

func (e RangeExpr) Pretty(indent int) string { return e.Display() }
