// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Package token defines the closed vocabularies of keywords, operators,
// punctuation, value-type tags, and annotation tags that make up the
// Language's lexical surface. Every vocabulary is a small integer type
// with a bidirectional mapping to its canonical surface form.
package token

import (
	"fmt"
)

// Kind is the type-system kind vocabulary: entity, relation, attribute, role.
type Kind int

const (
	KindEntity Kind = iota
	KindRelation
	KindAttribute
	KindRole
)

var kindSurface = [...]string{"entity", "relation", "attribute", "role"}

func (k Kind) String() string { return enumString(int(k), kindSurface[:]) }

// ParseKind maps a surface form to its Kind.
func ParseKind(s string) (Kind, bool) {
	i, ok := enumParse(s, kindSurface[:])
	return Kind(i), ok
}

// Clause is the top-level query clause vocabulary.
type Clause int

const (
	ClauseDefine Clause = iota
	ClauseRedefine
	ClauseUndefine
	ClauseInsert
	ClausePut
	ClauseUpdate
	ClauseDelete
	ClauseMatch
	ClauseFetch
	ClauseWith
)

var clauseSurface = [...]string{
	"define", "redefine", "undefine", "insert", "put",
	"update", "delete", "match", "fetch", "with",
}

func (c Clause) String() string { return enumString(int(c), clauseSurface[:]) }

func ParseClause(s string) (Clause, bool) {
	i, ok := enumParse(s, clauseSurface[:])
	return Clause(i), ok
}

// StreamOp is the stream-modifier stage vocabulary.
type StreamOp int

const (
	StreamSelect StreamOp = iota
	StreamSort
	StreamOffset
	StreamLimit
	StreamReduce
	StreamRequire
	StreamDistinct
)

var streamOpSurface = [...]string{
	"select", "sort", "offset", "limit", "reduce", "require", "distinct",
}

func (s StreamOp) String() string { return enumString(int(s), streamOpSurface[:]) }

func ParseStreamOp(s string) (StreamOp, bool) {
	i, ok := enumParse(s, streamOpSurface[:])
	return StreamOp(i), ok
}

// LogicOp is the pattern logic-connective vocabulary.
type LogicOp int

const (
	LogicAnd LogicOp = iota
	LogicOr
	LogicNot
)

var logicOpSurface = [...]string{"and", "or", "not"}

func (l LogicOp) String() string { return enumString(int(l), logicOpSurface[:]) }

func ParseLogicOp(s string) (LogicOp, bool) {
	i, ok := enumParse(s, logicOpSurface[:])
	return LogicOp(i), ok
}

// Comparator is the comparison-operator vocabulary. ComparatorEqual is the
// canonical "==" form; ComparatorDeprecatedEqual is the legacy "=" alias, accepted but
// always printed as "==".
type Comparator int

const (
	ComparatorEqual Comparator = iota
	ComparatorDeprecatedEqual
	ComparatorNotEqual
	ComparatorGreater
	ComparatorGreaterOrEqual
	ComparatorLess
	ComparatorLessOrEqual
	ComparatorContains
	ComparatorLike
)

var comparatorSurface = [...]string{
	"==", "=", "!=", ">", ">=", "<", "<=", "contains", "like",
}

// comparatorCanonical is the printed form; the deprecated "=" alias always
// renders as "==".
var comparatorCanonical = [...]string{
	"==", "==", "!=", ">", ">=", "<", "<=", "contains", "like",
}

func (c Comparator) String() string { return enumString(int(c), comparatorCanonical[:]) }

// Surface returns the exact surface form the comparator was parsed from,
// preserving the distinction between "==" and the deprecated "=".
func (c Comparator) Surface() string { return enumString(int(c), comparatorSurface[:]) }

func ParseComparator(s string) (Comparator, bool) {
	i, ok := enumParse(s, comparatorSurface[:])
	return Comparator(i), ok
}

// IsEquality reports whether c is one of the equality/ordering comparators:
// ==, =, !=, >, >=, <, <=.
func (c Comparator) IsEquality() bool {
	return c >= ComparatorEqual && c <= ComparatorLessOrEqual
}

// IsSubstring reports whether c is one of the substring comparators:
// contains, like. A substring comparator may only be applied to a string
// literal operand.
func (c Comparator) IsSubstring() bool {
	return c == ComparatorContains || c == ComparatorLike
}

// Keyword is the reserved-word vocabulary used in statement and capability
// grammar, distinct from clause/stream-op/comparator keywords that have
// their own typed vocabularies.
type Keyword int

const (
	KeywordAbstract Keyword = iota
	KeywordAs
	KeywordAlias
	KeywordCheck
	KeywordFirst
	KeywordFrom
	KeywordFun
	KeywordHas
	KeywordIID
	KeywordIn
	KeywordIsa
	KeywordIsaExact
	KeywordLabel
	KeywordLast
	KeywordLinks
	KeywordNot
	KeywordOf
	KeywordOr
	KeywordOwns
	KeywordPlays
	KeywordRelates
	KeywordReturn
	KeywordStruct
	KeywordSub
	KeywordSubExact
	KeywordTry
	KeywordValue
	KeywordWithin
)

var keywordSurface = [...]string{
	"abstract", "as", "alias", "check", "first", "from", "fun", "has",
	"iid", "in", "isa", "isa!", "label", "last", "links", "not", "of",
	"or", "owns", "plays", "relates", "return", "struct", "sub", "sub!",
	"try", "value", "within",
}

func (k Keyword) String() string { return enumString(int(k), keywordSurface[:]) }

func ParseKeyword(s string) (Keyword, bool) {
	i, ok := enumParse(s, keywordSurface[:])
	return Keyword(i), ok
}

// Annotation is the capability-annotation tag vocabulary.
type Annotation int

const (
	AnnotationAbstract Annotation = iota
	AnnotationCard
	AnnotationCascade
	AnnotationDistinct
	AnnotationIndependent
	AnnotationKey
	AnnotationRange
	AnnotationRegex
	AnnotationSubkey
	AnnotationUnique
	AnnotationValues
)

var annotationSurface = [...]string{
	"abstract", "card", "cascade", "distinct", "independent", "key",
	"range", "regex", "subkey", "unique", "values",
}

func (a Annotation) String() string { return enumString(int(a), annotationSurface[:]) }

func ParseAnnotation(s string) (Annotation, bool) {
	i, ok := enumParse(s, annotationSurface[:])
	return Annotation(i), ok
}

// ReduceOp is the reduction-statistic vocabulary.
type ReduceOp int

const (
	ReduceCount ReduceOp = iota
	ReduceMax
	ReduceMean
	ReduceMedian
	ReduceMin
	ReduceStd
	ReduceSum
	ReduceList
)

var reduceOpSurface = [...]string{
	"count", "max", "mean", "median", "min", "std", "sum", "list",
}

func (r ReduceOp) String() string { return enumString(int(r), reduceOpSurface[:]) }

func ParseReduceOp(s string) (ReduceOp, bool) {
	i, ok := enumParse(s, reduceOpSurface[:])
	return ReduceOp(i), ok
}

// ValueType is the attribute value-type vocabulary.
type ValueType int

const (
	ValueTypeBoolean ValueType = iota
	ValueTypeDate
	ValueTypeDatetime
	ValueTypeDatetimeTZ
	ValueTypeDecimal
	ValueTypeDouble
	ValueTypeDuration
	ValueTypeLong
	ValueTypeString
)

var valueTypeSurface = [...]string{
	"boolean", "date", "datetime", "datetime-tz", "decimal", "double",
	"duration", "long", "string",
}

func (v ValueType) String() string { return enumString(int(v), valueTypeSurface[:]) }

// ParseValueType maps a surface form to ValueType. "integer" is accepted as
// an alias of "long".
func ParseValueType(s string) (ValueType, bool) {
	if s == "integer" {
		return ValueTypeLong, true
	}
	i, ok := enumParse(s, valueTypeSurface[:])
	return ValueType(i), ok
}

// SortOrder is the sort-direction vocabulary.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

var sortOrderSurface = [...]string{"asc", "desc"}

func (s SortOrder) String() string { return enumString(int(s), sortOrderSurface[:]) }

func ParseSortOrder(s string) (SortOrder, bool) {
	i, ok := enumParse(s, sortOrderSurface[:])
	return SortOrder(i), ok
}

// ArithOp is the binary arithmetic-operator vocabulary, ordered by
// ascending precedence tier: {+,-} < {*,/,%} < {^}.
type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithMod
	ArithPow
)

var arithOpSurface = [...]string{"+", "-", "*", "/", "%", "^"}

func (a ArithOp) String() string { return enumString(int(a), arithOpSurface[:]) }

func ParseArithOp(s string) (ArithOp, bool) {
	i, ok := enumParse(s, arithOpSurface[:])
	return ArithOp(i), ok
}

// Precedence returns the operator's precedence tier: 1 for +/-, 2 for
// */\/%, 3 for ^ (highest).
func (a ArithOp) Precedence() int {
	switch a {
	case ArithAdd, ArithSub:
		return 1
	case ArithMul, ArithDiv, ArithMod:
		return 2
	case ArithPow:
		return 3
	default:
		return 0
	}
}

// RightAssociative reports whether the operator groups right-to-left at
// equal precedence. Only ^ is right-associative.
func (a ArithOp) RightAssociative() bool { return a == ArithPow }

// Builtin is the builtin scalar-function vocabulary.
type Builtin int

const (
	BuiltinAbs Builtin = iota
	BuiltinCeil
	BuiltinFloor
	BuiltinMax
	BuiltinMin
	BuiltinRound
	BuiltinLength
)

var builtinSurface = [...]string{
	"abs", "ceil", "floor", "max", "min", "round", "length",
}

func (b Builtin) String() string { return enumString(int(b), builtinSurface[:]) }

func ParseBuiltin(s string) (Builtin, bool) {
	i, ok := enumParse(s, builtinSurface[:])
	return Builtin(i), ok
}

func enumString(i int, surface []string) string {
	if i >= 0 && i < len(surface) {
		return surface[i]
	}
	return fmt.Sprintf("unknown(%d)", i)
}

func enumParse(s string, surface []string) (int, bool) {
	for i, form := range surface {
		if form == s {
			return i, true
		}
	}
	return -1, false
}
