// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package tqlerr is the diagnostic model: numbered, located error kinds with
// annotated source snippets, and an aggregate that collects multiple
// independent defects from a single parse.
package tqlerr

import "fmt"

// Code is a stable, numbered diagnostic kind. Every Code renders with the
// "TQL" prefix and a zero-padded four-digit number, e.g. "TQL0001".
type Code int

const (
	CodeSyntaxError Code = iota + 1
	CodeIllegalGrammar
	CodeInvalidTypeLabel
	CodeInvalidVariableName
	CodeMissingPatterns
	CodeMissingDefinables
	CodeMatchNoBoundingVariable
	CodeMatchUnboundedNestedPattern
	CodeInvalidIID
	CodeInvalidAttributeTypeRegex
	CodeRepeatingFilterVariable
	CodeVariableOutOfScope
	CodeInvalidCountVariableArgument
	CodeInvalidConstraintPredicate
	CodeInvalidDatetimePrecision
	CodeRedundantNestedNegation
	CodeInvalidRuleStructure
	CodeNameConflict
	CodeDuplicateConstraint
)

var codeNames = [...]string{
	"",
	"syntax_error",
	"illegal_grammar",
	"invalid_type_label",
	"invalid_variable_name",
	"missing_patterns",
	"missing_definables",
	"match_no_bounding_variable",
	"match_unbounded_nested_pattern",
	"invalid_iid",
	"invalid_attribute_type_regex",
	"repeating_filter_variable",
	"variable_out_of_scope",
	"invalid_count_variable_argument",
	"invalid_constraint_predicate",
	"invalid_datetime_precision",
	"redundant_nested_negation",
	"invalid_rule_structure",
	"name_conflict",
	"duplicate_constraint",
}

// Name returns the snake_case identifier for c, e.g. "invalid_type_label".
func (c Code) Name() string {
	if int(c) >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// String renders c as the stable "TQLnnnn" diagnostic code used both in
// error prefixes and as the samber/oops error code.
func (c Code) String() string {
	return fmt.Sprintf("TQL%04d", int(c))
}
