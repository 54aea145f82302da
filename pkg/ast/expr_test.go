// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/token"
)

func v(name string) ast.Expr {
	return ast.VarExpr{Variable: ast.Variable{Name: name, Namespace: ast.NamespaceConcept}}
}

func bin(op token.ArithOp, l, r ast.Expr) ast.BinaryExpr {
	return ast.BinaryExpr{Op: op, Left: l, Right: r}
}

func TestPrecedencePrintsWithoutRedundantParens(t *testing.T) {
	// a + b * c ^ d  ==  Add(a, Mul(b, Pow(c, d)))
	expr := bin(token.ArithAdd, v("a"), bin(token.ArithMul, v("b"), bin(token.ArithPow, v("c"), v("d"))))
	assert.Equal(t, "$a + $b * $c ^ $d", expr.Display())
}

func TestEqualPrecedenceLeftAssociativeNoParens(t *testing.T) {
	// (a + b) - c prints without parens since + and - are equal precedence,
	// left associative, and the grouping is already left-leaning.
	expr := bin(token.ArithSub, bin(token.ArithAdd, v("a"), v("b")), v("c"))
	assert.Equal(t, "$a + $b - $c", expr.Display())
}

func TestEqualPrecedenceRightSideNeedsParens(t *testing.T) {
	// a - (b + c) must keep parens: left-associative parent, right child.
	expr := bin(token.ArithSub, v("a"), bin(token.ArithAdd, v("b"), v("c")))
	assert.Equal(t, "$a - ($b + $c)", expr.Display())
}

func TestPowRightAssociativeNeedsParensOnLeft(t *testing.T) {
	// (a ^ b) ^ c must keep parens on the left since ^ is right-associative.
	expr := bin(token.ArithPow, bin(token.ArithPow, v("a"), v("b")), v("c"))
	assert.Equal(t, "($a ^ $b) ^ $c", expr.Display())
}

func TestLowerPrecedenceChildAlwaysParenthesised(t *testing.T) {
	// (a + b) * c
	expr := bin(token.ArithMul, bin(token.ArithAdd, v("a"), v("b")), v("c"))
	assert.Equal(t, "($a + $b) * $c", expr.Display())
}
