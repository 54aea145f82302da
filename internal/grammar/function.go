// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Param: $var ':' type.
type Param struct {
	Pos      lexer.Position `parser:""`
	Variable string         `parser:"@Variable ':'"`
	Type     *TypeRef       `parser:"@@"`
}

// Output: either a stream form "{ T1, T2 }" or a bare "T1, T2, ..." list.
type Output struct {
	Pos    lexer.Position `parser:""`
	Stream []*TypeRef     `parser:"( '{' @@ (',' @@)* '}'"`
	Single []*TypeRef     `parser:"| @@ (',' @@)* )"`
}

// Return: a stream of variables, a first/last selector, or a reduction.
type Return struct {
	Pos   lexer.Position  `parser:""`
	Vars  []string        `parser:"'return' ( ('{' @Variable (',' @Variable)* '}')"`
	First *FirstReduction `parser:"| @@"`
	Stats []*ReduceStat   `parser:"| @@ (',' @@)* )"`
}

// Function: fun name(params) -> output : body return ... ;
type Function struct {
	Pos    lexer.Position `parser:""`
	Name   string         `parser:"'fun' @Ident"`
	Params []*Param       `parser:"'(' (@@ (',' @@)*)? ')'"`
	Output *Output        `parser:"'->' @@ ':'"`
	Body   []*Stage       `parser:"(@@ ';')*"`
	Return *Return        `parser:"@@ ';'"`
}
