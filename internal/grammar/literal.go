// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Literal is the parse-tree node for any value literal. Exactly one field is
// populated, identifying the matched alternative; the visitor switches on
// which is non-empty/non-nil.
type Literal struct {
	Pos lexer.Position `parser:""`

	Bool     string `parser:"( @('true' | 'false')"`
	Integer  string `parser:"| @Integer"`
	Decimal  string `parser:"| @Decimal"`
	Datetime string `parser:"| @DatetimeTZOffset | @Datetime"`
	Date     string `parser:"| @Date"`
	Duration string `parser:"| @Duration"`
	Str      string `parser:"| @String"`
	Struct   *StructLiteral `parser:"| @@ )"`
}

// StructLiteral is a bracketed key/value list: { key: value, key: value }.
type StructLiteral struct {
	Pos     lexer.Position  `parser:""`
	Entries []*StructEntry  `parser:"'{' @@ (',' @@)* '}'"`
}

// StructEntry is one "key: value" entry of a StructLiteral.
type StructEntry struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@Ident"`
	Value *Literal       `parser:"':' @@"`
}
