// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package visitor converts a grammar parse tree into the strongly typed AST
// of pkg/ast. Every visitXxx function is total: given a well-formed parse
// node it returns an AST node; given a malformed one (grammar/visitor
// desynchronisation, or a semantic defect caught during visiting) it
// returns a zero value and a tqlerr diagnostic, never panics.
//
// Validation errors are collected, not short-circuited: visiting continues
// over sibling subtrees so a single run surfaces every independent defect.
package visitor

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// ctx carries the original source text through a visit so spans and
// annotated snippets can be derived from parse-tree positions.
type ctx struct {
	source string
}

func newCtx(source string) *ctx { return &ctx{source: source} }

// spanOf converts a participle lexer.Position plus a token length into a
// pkg/span.Span over the original source.
func (c *ctx) spanOf(pos lexer.Position, length int) span.Span {
	return span.New(pos.Offset, pos.Offset+length)
}

// illegalGrammar builds a CodeIllegalGrammar diagnostic: a grammar/visitor
// desynchronisation, not a user input error, but still surfaced as a normal
// error rather than a process abort.
func (c *ctx) illegalGrammar(pos lexer.Position, text string) error {
	sp := c.spanOf(pos, len(text))
	return tqlerr.New(tqlerr.CodeIllegalGrammar, sp, "illegal grammar: unexpected %q", text)
}
