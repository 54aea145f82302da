// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Label is a bare identifier or reserved kind label in the parse tree.
type Label struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
}

// ScopedLabel is "scope:name".
type ScopedLabel struct {
	Pos   lexer.Position `parser:""`
	Scope string         `parser:"@Ident"`
	Name  string         `parser:"':' @Ident"`
}

// TypeRef is a label, scoped label, variable, or list-wrapped form, with an
// optional trailing "?" permitted on function return positions.
type TypeRef struct {
	Pos         lexer.Position `parser:""`
	ScopedLabel *ScopedLabel   `parser:"( @@"`
	Variable    string         `parser:"| @Variable"`
	List        *TypeRef       `parser:"| '[' @@ ']'"`
	Label       string         `parser:"| @Ident )"`
	Optional    bool           `parser:"@'?'?"`
}

// Annotation is a single "@tag(...)" capability annotation.
type Annotation struct {
	Pos     lexer.Position `parser:""`
	Tag     string         `parser:"'@' @Ident"`
	CardLo  string         `parser:"( '(' @Integer"`
	CardHi  string         `parser:"  ',' @(Integer | '*')"`
	CardEnd string         `parser:"  ')'"`
	Str     string         `parser:"| '(' @String ')'"`
	List    []string       `parser:"| '(' @(Ident | String) (',' @(Ident | String))* ')' )?"`
}

// AnnotationList is zero or more trailing annotations after a capability.
type AnnotationList struct {
	Pos   lexer.Position `parser:""`
	Items []*Annotation  `parser:"@@*"`
}
