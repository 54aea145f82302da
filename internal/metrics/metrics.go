// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package metrics exposes Prometheus instrumentation for the parser's entry
// points: how long each parse takes, and how often it fails.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ParseDuration tracks the latency of a single parse entry point call,
	// labelled by entry point name (query, queries, definition_function,
	// definition_struct, label).
	ParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tql_parse_duration_seconds",
		Help:    "Histogram of parse entry point latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"entry_point"})

	// ParseTotal counts parse attempts by entry point and outcome ("ok" or
	// "error").
	ParseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tql_parse_total",
		Help: "Total number of parse entry point invocations",
	}, []string{"entry_point", "outcome"})

	// ParseErrorsByCode counts parse failures by their tqlerr.Code, so a
	// dashboard can show which diagnostics fire most often.
	ParseErrorsByCode = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tql_parse_errors_total",
		Help: "Total number of parse errors by diagnostic code",
	}, []string{"code"})
)

// Observe records the outcome of one parse entry point call. Call it with
// defer and a closure capturing the named return error:
//
//	defer metrics.Observe("query", time.Now())(&err)
func Observe(entryPoint string, start time.Time) func(errp *error) {
	return func(errp *error) {
		ParseDuration.WithLabelValues(entryPoint).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if errp != nil && *errp != nil {
			outcome = "error"
		}
		ParseTotal.WithLabelValues(entryPoint, outcome).Inc()
	}
}

// RecordErrorCode increments the per-code error counter. Called by callers
// that have already classified an error via tqlerr.CodeOf.
func RecordErrorCode(code string) {
	ParseErrorsByCode.WithLabelValues(code).Inc()
}
