// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// FetchStage: fetch { projection, projection, ... } ;
type FetchStage struct {
	Pos         lexer.Position     `parser:""`
	Projections []*FetchProjection `parser:"'fetch' '{' @@ (',' @@)* '}'"`
}

// FetchProjection: key ':' value, where value is one of the three
// projection shapes (single, list, object).
type FetchProjection struct {
	Pos       lexer.Position    `parser:""`
	Key       string            `parser:"@(Ident | String) ':'"`
	ListVal   *FetchListValue   `parser:"( @@"`
	ObjVal    *FetchObjectValue `parser:"| @@"`
	SingleVal *FetchSingleValue `parser:"| @@ )"`
}

// FetchSingleValue: an attribute projection, an expression projection, or a
// subquery pipeline.
type FetchSingleValue struct {
	Pos  lexer.Position `parser:""`
	Sub  *Pipeline      `parser:"( '{' @@ '}'"`
	Attr string         `parser:"| @Ident"`
	Expr *Expr          `parser:"| @@ )"`
}

// FetchListValue: a list of attribute projections, a function-call stream,
// or a subquery pipeline, bracketed.
type FetchListValue struct {
	Pos  lexer.Position `parser:""`
	Sub  *Pipeline      `parser:"'[' ( '{' @@ '}'"`
	Call *Call          `parser:"| @@"`
	Attr string         `parser:"| @Ident ) ']'"`
}

// FetchObjectValue: either an explicit list of key/value pairs, or the
// special "var.*" all-attributes form.
type FetchObjectValue struct {
	Pos     lexer.Position     `parser:""`
	AllOf   string             `parser:"( @Variable '.' '*'"`
	Entries []*FetchProjection `parser:"| '{' @@ (',' @@)* '}' )"`
}
