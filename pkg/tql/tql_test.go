// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package tql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/errutil"
	"github.com/tql-lang/tql/pkg/tql"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseQueryMatchFetch(t *testing.T) {
	q, err := tql.ParseQuery(`match $p isa person has name $n; fetch { "name": $n };`)
	require.NoError(t, err)
	pipeline, ok := q.(ast.Pipeline)
	require.True(t, ok)
	require.Len(t, pipeline.Stages, 2)
}

func TestParseQueryRejectsFetchNotLast(t *testing.T) {
	_, err := tql.ParseQuery(`match $p isa person; fetch { "id": $p }; select $p;`)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "TQL0002")
}

func TestParseQueriesSplitsOnEndMarker(t *testing.T) {
	src := `match $p isa person; select $p; end; match $c isa company; select $c;`
	qs, err := tql.ParseQueries(src)
	require.NoError(t, err)
	require.Len(t, qs, 2)
}

func TestParseQueriesIgnoresEndInsideStringLiteral(t *testing.T) {
	src := `match $p isa person has name "end; not a marker"; select $p;`
	qs, err := tql.ParseQueries(src)
	require.NoError(t, err)
	require.Len(t, qs, 1)
}

func TestParseDefinitionFunctionParsesSignature(t *testing.T) {
	fn, err := tql.ParseDefinitionFunction(
		`fun age_of($p: person) -> integer: match $p has age $a; return first $a;`)
	require.NoError(t, err)
	assert.Equal(t, "age_of", fn.Name.Display())
	assert.NotEmpty(t, fn.Display())
}

func TestParseDefinitionStructParsesFields(t *testing.T) {
	sd, err := tql.ParseDefinitionStruct(`struct point: x: integer, y: integer`)
	require.NoError(t, err)
	assert.Equal(t, "point", sd.Name.Display())
	assert.Len(t, sd.Fields, 2)
}

func TestParseLabelAcceptsBareIdentifier(t *testing.T) {
	lbl, err := tql.ParseLabel(`person`)
	require.NoError(t, err)
	assert.Equal(t, "person", lbl.Display())
}

func TestParseLabelRejectsTrailingGarbage(t *testing.T) {
	_, err := tql.ParseLabel(`person extra`)
	assert.Error(t, err)
}
