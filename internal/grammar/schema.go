// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// StructField: name ':' type '?'?
type StructField struct {
	Pos      lexer.Position `parser:""`
	Name     string         `parser:"@Ident ':'"`
	Type     *TypeRef       `parser:"@@"`
	Optional bool           `parser:"@'?'?"`
}

// StructDef: struct Name: field, field, ...
type StructDef struct {
	Pos    lexer.Position  `parser:""`
	Name   string          `parser:"'struct' @Ident ':'"`
	Fields []*StructField  `parser:"@@ (',' @@)*"`
}

// Definable is one entry of a define/redefine definables list: a type
// declaration, a function definition, or a struct definition.
type Definable struct {
	Pos    lexer.Position  `parser:""`
	Type   *TypeStatement  `parser:"( @@"`
	Fun    *Function       `parser:"| @@"`
	Struct *StructDef      `parser:"| @@ )"`
}

// UndefineTarget is one entry of an undefine query's finer-grained removal
// list: an annotation of a type, an annotation of a capability, a
// capability of a type, an override removal, a function, or a struct.
type UndefineTarget struct {
	Pos         lexer.Position `parser:""`
	Annotation  string         `parser:"( '@' @Ident"`
	AnnOfType   string         `parser:"  'of' @Ident"`
	Override    *TypeRef       `parser:"| ('as' @@"`
	OverrideOf  string         `parser:"  'of' @Ident)"`
	Capability  string         `parser:"| (@('owns' | 'relates' | 'plays' | 'sub' | 'value')"`
	CapArg      *TypeRef       `parser:"  @@"`
	CapOf       string         `parser:"  'of' @Ident)"`
	FuncName    string         `parser:"| 'fun' @Ident"`
	StructName  string         `parser:"| 'struct' @Ident )"`
}

// SchemaQuery: define/redefine/undefine over a definables or targets list.
type SchemaQuery struct {
	Pos        lexer.Position    `parser:""`
	Define     []*Definable      `parser:"( 'define' @@ (';' @@)* ';'"`
	Redefine   []*Definable      `parser:"| 'redefine' @@ (';' @@)* ';'"`
	Undefine   []*UndefineTarget `parser:"| 'undefine' @@ (';' @@)* ';' )"`
}
