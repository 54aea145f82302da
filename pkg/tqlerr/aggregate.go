// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package tqlerr

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Aggregate holds every defect discovered during a single visit, in the
// order a depth-first traversal of the parse tree found them. A parse
// function returns an Aggregate, never a single bare error, once more than
// one error has been collected.
type Aggregate struct {
	ID     ulid.ULID
	Errors []error
}

// NewAggregate builds an Aggregate from one or more errors. A nil entropy
// source yields a zero ULID, which is acceptable for tests; production
// callers should supply ulid.Monotonic(rand.Reader, 0) via WithEntropy.
func NewAggregate(errs ...error) *Aggregate {
	return &Aggregate{Errors: nonNil(errs)}
}

// WithEntropy assigns a fresh correlation ID to the aggregate, generated
// from the given entropy source and timestamp.
func (a *Aggregate) WithEntropy(ms uint64, entropy ulid.MonotonicReader) *Aggregate {
	id, err := ulid.New(ms, entropy)
	if err == nil {
		a.ID = id
	}
	return a
}

func nonNil(errs []error) []error {
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Add appends a non-nil error to the aggregate.
func (a *Aggregate) Add(err error) {
	if err != nil {
		a.Errors = append(a.Errors, err)
	}
}

// Empty reports whether the aggregate holds no errors.
func (a *Aggregate) Empty() bool { return len(a.Errors) == 0 }

// AsError returns nil if the aggregate is empty, a itself otherwise, so
// callers can write `return result, agg.AsError()`.
func (a *Aggregate) AsError() error {
	if a.Empty() {
		return nil
	}
	return a
}

// Error joins every collected error's formatted diagnostic with blank-line
// separators, matching the library's multi-error error surface.
func (a *Aggregate) Error() string {
	parts := make([]string, len(a.Errors))
	for i, e := range a.Errors {
		parts[i] = Format(e)
	}
	return strings.Join(parts, "\n\n")
}

// Unwrap exposes the individual errors for errors.Is / errors.As traversal.
func (a *Aggregate) Unwrap() []error { return a.Errors }

// Collect folds a slice of results into a single aggregated error. Every
// non-nil error is collected; sibling items are never short-circuited, so
// multiple independent defects are reported from one run. Returns nil if
// every result was nil.
func Collect(results ...error) error {
	agg := NewAggregate(results...)
	return agg.AsError()
}

// CollectSeq folds the results of calling fn over each item in items,
// visiting every item (never short-circuiting on the first failure) and
// returning a single aggregated error if any failed.
func CollectSeq[T any](items []T, fn func(T) error) error {
	agg := &Aggregate{}
	for _, item := range items {
		agg.Add(fn(item))
	}
	return agg.AsError()
}
