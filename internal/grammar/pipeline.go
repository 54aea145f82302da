// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Pipeline: zero or more function preambles, then a non-empty ordered
// sequence of stages, optionally terminated by an explicit "end;" marker.
type Pipeline struct {
	Pos       lexer.Position `parser:""`
	Preambles []*Function    `parser:"@@*"`
	Stages    []*Stage       `parser:"@@ (';' @@)* ';'"`
	End       bool           `parser:"@('end' ';')?"`
}

// Query: a schema query or a pipeline.
type Query struct {
	Pos      lexer.Position `parser:""`
	Schema   *SchemaQuery   `parser:"( @@"`
	Pipeline *Pipeline      `parser:"| @@ )"`
}
