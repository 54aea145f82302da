// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package tql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tql-lang/tql/pkg/tql"
)

// roundTripCases covers one example per query family: a data pipeline, a
// schema definition, and an undefine query.
var roundTripCases = []string{
	`match $p isa person has name $n; select $p, $n; sort $n asc; limit 10;`,
	`match $p isa person has name $n; fetch { "name": $n };`,
	`match $p isa person has age $a; reduce sum($a);`,
	`define person sub entity, owns name; friendship sub relation, relates friend;`,
	`undefine owns name of person;`,
}

// TestPrettyReparses asserts that Pretty-printing a query and re-parsing the
// result produces a structurally equal query, per the Display-equivalence
// invariant: Display is the canonical minimal form, so re-parsing Pretty
// output must yield the same Display string as the original parse.
func TestPrettyReparses(t *testing.T) {
	for _, src := range roundTripCases {
		q, err := tql.ParseQuery(src)
		require.NoError(t, err, src)

		pretty := q.Pretty(0)
		reparsed, err := tql.ParseQuery(pretty)
		require.NoError(t, err, "re-parsing pretty output: %s", pretty)

		require.Equal(t, q.Display(), reparsed.Display(), "pretty output: %s", pretty)
	}
}

// TestPrettyIsIdempotent asserts that pretty-printing a second time, after a
// round trip through the parser, produces byte-identical output.
func TestPrettyIsIdempotent(t *testing.T) {
	for _, src := range roundTripCases {
		q, err := tql.ParseQuery(src)
		require.NoError(t, err, src)

		first := q.Pretty(0)
		reparsed, err := tql.ParseQuery(first)
		require.NoError(t, err, "re-parsing pretty output: %s", first)

		second := reparsed.Pretty(0)
		require.Equal(t, first, second)
	}
}
