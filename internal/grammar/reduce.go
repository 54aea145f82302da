// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Reduction: check, a first/last selector, or a comma-separated list of
// per-variable statistics.
type Reduction struct {
	Pos   lexer.Position    `parser:""`
	Check bool              `parser:"( @'check'"`
	First *FirstReduction   `parser:"| @@"`
	Stats []*ReduceStat     `parser:"| @@ (',' @@)* )"`
}

// FirstReduction: (first | last) var (',' var)*
type FirstReduction struct {
	Pos  lexer.Position `parser:""`
	Kw   string         `parser:"@('first' | 'last')"`
	Vars []string       `parser:"@Variable (',' @Variable)*"`
}

// ReduceStat: op(var, var, ...)
type ReduceStat struct {
	Pos  lexer.Position `parser:""`
	Op   string         `parser:"@('count' | 'max' | 'mean' | 'median' | 'min' | 'std' | 'sum' | 'list')"`
	Vars []string       `parser:"'(' @Variable (',' @Variable)* ')'"`
}

// ReduceStage: reduce <reduction> ;
type ReduceStage struct {
	Pos       lexer.Position `parser:""`
	Reduction *Reduction     `parser:"'reduce' @@"`
}
