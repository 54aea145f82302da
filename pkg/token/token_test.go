// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tql-lang/tql/pkg/token"
)

func TestComparatorDeprecatedEqualRendersAsCanonical(t *testing.T) {
	c, ok := token.ParseComparator("=")
	assert.True(t, ok)
	assert.Equal(t, "==", c.String())
	assert.Equal(t, "=", c.Surface())
}

func TestComparatorPredicates(t *testing.T) {
	eq, _ := token.ParseComparator("==")
	assert.True(t, eq.IsEquality())
	assert.False(t, eq.IsSubstring())

	like, _ := token.ParseComparator("like")
	assert.False(t, like.IsEquality())
	assert.True(t, like.IsSubstring())
}

func TestParseUnknownFails(t *testing.T) {
	_, ok := token.ParseComparator("~=")
	assert.False(t, ok)
}

func TestValueTypeIntegerAlias(t *testing.T) {
	vt, ok := token.ParseValueType("integer")
	assert.True(t, ok)
	assert.Equal(t, token.ValueTypeLong, vt)
	assert.Equal(t, "long", vt.String())
}

func TestArithOpPrecedenceTable(t *testing.T) {
	add, _ := token.ParseArithOp("+")
	mul, _ := token.ParseArithOp("*")
	pow, _ := token.ParseArithOp("^")

	assert.Less(t, add.Precedence(), mul.Precedence())
	assert.Less(t, mul.Precedence(), pow.Precedence())
	assert.False(t, add.RightAssociative())
	assert.True(t, pow.RightAssociative())
}

func TestRoundTripAllVocabularies(t *testing.T) {
	for _, s := range []string{"entity", "relation", "attribute", "role"} {
		k, ok := token.ParseKind(s)
		assert.True(t, ok)
		assert.Equal(t, s, k.String())
	}
	for _, s := range []string{"count", "max", "mean", "median", "min", "std", "sum", "list"} {
		r, ok := token.ParseReduceOp(s)
		assert.True(t, ok)
		assert.Equal(t, s, r.String())
	}
}
