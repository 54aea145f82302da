// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package ast defines the strongly typed, immutable abstract syntax tree for
// the Language: patterns, statements, expressions, stage operators,
// reductions, fetch projections, type capabilities, and top-level queries.
//
// Every node is immutable once constructed, carries an optional source span,
// and implements both a compact Display and an indented Pretty rendering.
// Re-parsing a node's Pretty or Display output yields a structurally equal
// node, modulo spans.
package ast

import (
	"github.com/Masterminds/semver/v3"

	"github.com/tql-lang/tql/pkg/span"
)

// GrammarVersion identifies the surface-syntax revision this package
// implements. Callers that embed the AST contract in another wire format
// can pin against it.
const GrammarVersion = 1

// SemVer is the semantic version of the grammar exposed for tooling that
// wants richer compatibility checks than the bare GrammarVersion int.
var SemVer = semver.MustParse("1.0.0")

// Node is implemented by every AST node. Span returns the node's location in
// the original input, or an invalid Span for a builder-constructed node.
type Node interface {
	Span() span.Span
	Display() string
	Pretty(indent int) string
}

// Query is the top-level result of parse_query: either a schema query or a
// data-manipulation pipeline.
type Query interface {
	Node
	queryNode()
}
