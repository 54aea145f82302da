// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package tql_test

import (
	"testing"

	"github.com/tql-lang/tql/pkg/tql"
)

// FuzzParseQuery tests ParseQuery against arbitrary input to ensure the
// grammar/visitor pair never panics, only ever returning a value or an
// error.
func FuzzParseQuery(f *testing.F) {
	seeds := []string{
		`match $p isa person has name $n; select $p, $n;`,
		`match $p isa person has name $n; fetch { "name": $n };`,
		`match $p isa person; not { $p has name "Ada"; }; select $p;`,
		`match $p isa person; try { $p has nickname $n; }; select $p;`,
		`match $p isa person; { $p has name "Ada"; } or { $p has name "Bo"; }; select $p;`,
		`match $p isa person has age $a; reduce sum($a);`,
		`match $p isa person; reduce count($p);`,
		`match $p isa person; reduce first $p;`,
		`match $p isa person; sort $p asc; offset 5; limit 10;`,
		`match $p isa person; require $p; distinct; select $p;`,
		`insert $p isa person has name "Ada";`,
		`put $p isa person has name "Ada";`,
		`update $p isa person has name "Ada";`,
		`match $p isa person has name $n; delete has $n of $p;`,
		`match $p isa person has name $n; match $q isa person has name $n; select $p, $q;`,
		`define person sub entity, owns name; friendship sub relation, relates friend;`,
		`redefine person owns age @card(0, 1);`,
		`undefine owns name of person;`,
		`undefine fun age_of;`,
		`undefine struct point;`,
		`match $p isa person; fetch { "all": $p.* };`,
		`match $p isa person; fetch { "friends": [ { match $p has friend $f; select $f; } ] };`,
		`match $x isa movie; end;`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, _ = tql.ParseQuery(input)
	})
}
