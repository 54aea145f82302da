// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package tqlerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

func TestNewCarriesCode(t *testing.T) {
	err := tqlerr.New(tqlerr.CodeInvalidIID, span.New(0, 3), "invalid iid %q", "0xZZ")
	code, ok := tqlerr.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, "TQL0009", code)
	assert.Contains(t, err.Error(), "0xZZ")
}

func TestNewSyntaxCarriesSnippet(t *testing.T) {
	src := "match $n like 5;\nend;"
	err := tqlerr.NewSyntax(src, span.New(14, 15), 1, 15, "invalid constraint predicate")
	snippet, ok := tqlerr.Snippet(err)
	require.True(t, ok)
	assert.Contains(t, snippet, "match $n like 5;")
	assert.Contains(t, snippet, "^")
}

func TestFormatRendersCodeAndKind(t *testing.T) {
	err := tqlerr.New(tqlerr.CodeInvalidTypeLabel, span.New(0, 1), "bad label %q", "_x")
	out := tqlerr.Format(err)
	assert.Contains(t, out, "[TQL0003]")
	assert.Contains(t, out, "invalid_type_label")
}

func TestCollectAggregatesAndPreservesOrder(t *testing.T) {
	e1 := tqlerr.New(tqlerr.CodeInvalidIID, span.New(0, 1), "first")
	e2 := tqlerr.New(tqlerr.CodeInvalidTypeLabel, span.New(2, 3), "second")
	err := tqlerr.Collect(nil, e1, nil, e2)
	require.Error(t, err)

	var agg *tqlerr.Aggregate
	require.True(t, errors.As(err, &agg))
	require.Len(t, agg.Errors, 2)
	assert.Same(t, e1, agg.Errors[0])
	assert.Same(t, e2, agg.Errors[1])
}

func TestCollectReturnsNilWhenAllNil(t *testing.T) {
	assert.NoError(t, tqlerr.Collect(nil, nil))
}

func TestCollectSeqVisitsEveryItem(t *testing.T) {
	items := []int{1, 2, 3}
	var visited []int
	err := tqlerr.CollectSeq(items, func(i int) error {
		visited = append(visited, i)
		if i == 2 {
			return tqlerr.New(tqlerr.CodeNameConflict, span.Span{}, "bad item %d", i)
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, items, visited)
}
