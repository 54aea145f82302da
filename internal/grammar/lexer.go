// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package grammar is the declarative PEG-style grammar covering the whole
// surface syntax: schema queries, data-manipulation pipelines, patterns,
// statements, the flat arithmetic-expression token stream, literals, type
// capabilities, and function definitions. It turns source text into a
// concrete parse tree; internal/visitor turns that parse tree into the
// strongly typed AST of pkg/ast.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// tqlLexer tokenizes the Language's surface syntax. Order matters: longer
// patterns must come before shorter ones that share a prefix (">=" before
// ">", "isa!" before "isa", "$_" is matched by the same rule as "$name").
var tqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`},
	{Name: "DatetimeTZOffset", Pattern: `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?[+-]\d{2}:\d{2}`},
	{Name: "Datetime", Pattern: `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?`},
	{Name: "Date", Pattern: `\d{4}-\d{2}-\d{2}`},
	{Name: "Duration", Pattern: `P(?:\d+Y)?(?:\d+M)?(?:\d+W)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+(?:\.\d+)?S)?)?`},
	{Name: "Decimal", Pattern: `-?\d+\.\d+`},
	{Name: "Integer", Pattern: `-?\d+`},
	{Name: "IsaExact", Pattern: `isa!`},
	{Name: "SubExact", Pattern: `sub!`},
	{Name: "Variable", Pattern: `\$(_|[A-Za-z][A-Za-z0-9_-]*)\??`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "OpEq", Pattern: `==`},
	{Name: "OpNe", Pattern: `!=`},
	{Name: "OpGe", Pattern: `>=`},
	{Name: "OpLe", Pattern: `<=`},
	{Name: "OpGt", Pattern: `>`},
	{Name: "OpLt", Pattern: `<`},
	{Name: "OpAssignEq", Pattern: `=`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Arith", Pattern: `[+\-*/%^]`},
	{Name: "Punct", Pattern: `[(){}\[\]:;,.@]`},
	{Name: "Whitespace", Pattern: `\s+`},
})
