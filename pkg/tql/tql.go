// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package tql is the library's public surface: five parse entry points
// wiring the declarative grammar (internal/grammar) to the visitor
// (internal/visitor) that builds the typed AST (pkg/ast). Parsing is a
// pure, single-threaded computation from input text to AST: no shared
// mutable state, no cancellation, safe to call concurrently provided
// callers own their input strings.
package tql

import (
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"

	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/internal/metrics"
	"github.com/tql-lang/tql/internal/visitor"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// recordOutcome observes entry point latency and, on failure, the
// diagnostic's code, for the Prometheus metrics exposed by internal/metrics.
func recordOutcome(entryPoint string, start time.Time, err error) {
	metrics.Observe(entryPoint, start)(&err)
	if err == nil {
		return
	}
	if code, ok := tqlerr.CodeOf(err); ok {
		metrics.RecordErrorCode(code)
	}
}

// wrapGrammarError converts a participle parse error, which always carries
// a source position, into the library's own diagnostic with an annotated
// snippet.
func wrapGrammarError(text string, err error) error {
	perr, ok := err.(participle.Error)
	if !ok {
		return tqlerr.New(tqlerr.CodeSyntaxError, span.Span{}, "%v", err)
	}
	pos := perr.Position()
	sp := span.New(pos.Offset, pos.Offset)
	return tqlerr.NewSyntax(text, sp, pos.Line, pos.Column, "%s", perr.Message())
}

// ParseQuery parses a single schema query or pipeline.
func ParseQuery(input string) (q ast.Query, err error) {
	defer func(start time.Time) { recordOutcome("query", start, err) }(time.Now())
	text := strings.TrimRight(input, " \t\r\n")
	tree, perr := grammar.ParseQuery(text)
	if perr != nil {
		err = wrapGrammarError(text, perr)
		return nil, err
	}
	q, err = visitor.VisitQuery(text, tree)
	return q, err
}

// ParseQueries parses a sequence of one or more top-level queries from a
// single input. Consecutive queries must be separated by an explicit "end;"
// marker; a trailing "end;" is optional for the final (or only) query.
func ParseQueries(input string) (qs []ast.Query, err error) {
	defer func(start time.Time) { recordOutcome("queries", start, err) }(time.Now())
	text := strings.TrimRight(input, " \t\r\n")
	chunks := splitOnEndMarker(text)

	queries := make([]ast.Query, 0, len(chunks))
	agg := &tqlerr.Aggregate{}
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		q, err := ParseQuery(chunk)
		if err != nil {
			agg.Add(err)
			continue
		}
		queries = append(queries, q)
	}
	if err := agg.AsError(); err != nil {
		return nil, err
	}
	return queries, nil
}

// ParseDefinitionFunction parses a single standalone function definition.
func ParseDefinitionFunction(input string) (f ast.Function, err error) {
	defer func(start time.Time) { recordOutcome("definition_function", start, err) }(time.Now())
	text := strings.TrimRight(input, " \t\r\n")
	tree, perr := grammar.ParseDefinitionFunction(text)
	if perr != nil {
		err = wrapGrammarError(text, perr)
		return ast.Function{}, err
	}
	f, err = visitor.VisitFunction(text, tree)
	return f, err
}

// ParseDefinitionStruct parses a single standalone struct definition.
func ParseDefinitionStruct(input string) (sd ast.StructDef, err error) {
	defer func(start time.Time) { recordOutcome("definition_struct", start, err) }(time.Now())
	text := strings.TrimRight(input, " \t\r\n")
	tree, perr := grammar.ParseDefinitionStruct(text)
	if perr != nil {
		err = wrapGrammarError(text, perr)
		return ast.StructDef{}, err
	}
	sd, err = visitor.VisitStructDef(text, tree)
	return sd, err
}

// ParseLabel parses a single label, matching the whole input exactly.
func ParseLabel(input string) (l ast.Label, err error) {
	defer func(start time.Time) { recordOutcome("label", start, err) }(time.Now())
	text := strings.TrimRight(input, " \t\r\n")
	tree, perr := grammar.ParseLabel(text)
	if perr != nil {
		err = wrapGrammarError(text, perr)
		return ast.Label{}, err
	}
	l, err = visitor.VisitLabel(text, tree)
	return l, err
}

// splitOnEndMarker splits text into query chunks at each top-level "end;"
// marker, skipping over string literals, comments, and bracketed nesting so
// an "end;" appearing inside a value or a block is never mistaken for a
// query boundary. The marker itself is not included in either chunk.
func splitOnEndMarker(text string) []string {
	var chunks []string
	depth := 0
	start := 0
	i := 0
	for i < len(text) {
		switch c := text[i]; {
		case c == '#':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			continue
		case c == '"' || c == '\'':
			quote := c
			i++
			for i < len(text) && text[i] != quote {
				if text[i] == '\\' && i+1 < len(text) {
					i++
				}
				i++
			}
			i++
			continue
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == '}' || c == ']':
			depth--
		case depth == 0 && matchesEndMarker(text, i):
			chunks = append(chunks, text[start:i])
			i += markerLen(text, i)
			start = i
			continue
		}
		i++
	}
	chunks = append(chunks, text[start:])
	return chunks
}

// matchesEndMarker reports whether text[i:] begins with the keyword "end"
// (on a word boundary) followed by optional whitespace and ";".
func matchesEndMarker(text string, i int) bool {
	if !strings.HasPrefix(text[i:], "end") {
		return false
	}
	if i > 0 && isIdentByte(text[i-1]) {
		return false
	}
	j := i + 3
	if j < len(text) && isIdentByte(text[j]) {
		return false
	}
	for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
		j++
	}
	return j < len(text) && text[j] == ';'
}

func markerLen(text string, i int) int {
	j := i + 3
	for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
		j++
	}
	return j - i + 1 // include the trailing ';'
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
