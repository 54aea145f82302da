// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/token"
)

// Annotation is a tagged sum over the fixed capability-annotation set.
type Annotation struct {
	Tag token.Annotation

	CardLo int
	CardHi int // -1 means unbounded ("*")

	RegexPattern string
	Values       []string // values(...) operand, or range(...) bounds

	Sp span.Span
}

func (a Annotation) Span() span.Span { return a.Sp }

func (a Annotation) Display() string {
	switch a.Tag {
	case token.AnnotationCard:
		hi := "*"
		if a.CardHi >= 0 {
			hi = itoa(a.CardHi)
		}
		return "@card(" + itoa(a.CardLo) + ", " + hi + ")"
	case token.AnnotationRegex:
		return "@regex(\"" + a.RegexPattern + "\")"
	case token.AnnotationValues:
		return "@values(" + joined(", ", a.Values) + ")"
	case token.AnnotationRange:
		return "@range(" + joined(", ", a.Values) + ")"
	case token.AnnotationSubkey:
		return "@subkey(" + joined(", ", a.Values) + ")"
	default:
		return "@" + a.Tag.String()
	}
}

func (a Annotation) Pretty(indent int) string { return a.Display() }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// AnnotationList renders a sequence of annotations space-separated, as they
// appear after a capability in source.
func AnnotationList(anns []Annotation) string {
	parts := make([]string, len(anns))
	for i, a := range anns {
		parts[i] = a.Display()
	}
	return joined(" ", parts)
}
