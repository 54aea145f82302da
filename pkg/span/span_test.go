// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tql-lang/tql/pkg/span"
)

func TestExtract(t *testing.T) {
	src := "match $x isa movie;"
	s := span.New(6, 8)
	assert.Equal(t, "$x", span.Extract(src, s))
}

func TestExtractClampsToBounds(t *testing.T) {
	src := "abc"
	assert.Equal(t, "abc", span.Extract(src, span.New(-5, 50)))
}

func TestLineCol(t *testing.T) {
	src := "match $x\nisa movie;"
	start, end := span.LineCol(src, span.New(9, 12))
	assert.Equal(t, span.Pos{Line: 2, Col: 1}, start)
	assert.Equal(t, span.Pos{Line: 2, Col: 4}, end)
}

func TestCover(t *testing.T) {
	a := span.New(2, 5)
	b := span.New(10, 20)
	c := span.Cover(a, b)
	assert.Equal(t, span.New(2, 20), c)
}

func TestCoverWithInvalid(t *testing.T) {
	var a span.Span
	b := span.New(1, 2)
	assert.Equal(t, b, span.Cover(a, b))
	assert.Equal(t, b, span.Cover(b, a))
}

func TestAnnotate(t *testing.T) {
	src := "match $x\nisa 5movie;\nend;"
	out := span.Annotate(src, 2, 5, 1, 1)
	assert.Contains(t, out, "> isa 5movie;")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "match $x")
	assert.Contains(t, out, "end;")
}
