// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package tqlerr

import (
	"fmt"

	"github.com/samber/oops"

	"github.com/tql-lang/tql/pkg/span"
)

// New builds a diagnostic with the given code and source span. The message
// is formatted printf-style. Callers that have the original source text
// should prefer NewSyntax for errors that benefit from an annotated
// snippet.
func New(code Code, sp span.Span, format string, args ...any) error {
	return oops.
		Code(code.String()).
		With("kind", code.Name()).
		With("span", sp).
		Errorf(format, args...)
}

// NewSyntax builds a syntax-error diagnostic with an annotated source
// snippet attached as context. line and col are 1-based.
func NewSyntax(source string, sp span.Span, line, col int, format string, args ...any) error {
	snippet := span.Annotate(source, line, col, 2, 2)
	return oops.
		Code(CodeSyntaxError.String()).
		With("kind", CodeSyntaxError.Name()).
		With("span", sp).
		With("snippet", snippet).
		Errorf(format, args...)
}

// Wrap attaches code to an existing error, preserving its message and
// chaining it as the cause.
func Wrap(code Code, sp span.Span, err error) error {
	if err == nil {
		return nil
	}
	return oops.
		Code(code.String()).
		With("kind", code.Name()).
		With("span", sp).
		Wrapf(err, "%s", code.Name())
}

// CodeOf extracts the Code attached to err, if any. The second return value
// is false for errors that were not produced by this package.
func CodeOf(err error) (string, bool) {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return "", false
	}
	code := oopsErr.Code()
	if code == "" {
		return "", false
	}
	return code, true
}

// Snippet extracts the annotated snippet attached to err by NewSyntax, if
// present.
func Snippet(err error) (string, bool) {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return "", false
	}
	ctx := oopsErr.Context()
	snippet, ok := ctx["snippet"].(string)
	return snippet, ok
}

// Format renders err the way the library's error surface documents:
// "[TQLnnnn] <kind>: <message>\n<optional annotated snippet>".
func Format(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return err.Error()
	}
	code := oopsErr.Code()
	ctx := oopsErr.Context()
	kind, _ := ctx["kind"].(string)
	out := fmt.Sprintf("[%s] %s: %s", code, kind, oopsErr.Error())
	if snippet, ok := ctx["snippet"].(string); ok && snippet != "" {
		out += "\n" + snippet
	}
	return out
}
