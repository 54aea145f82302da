// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tql-lang/tql/pkg/span"
)

// LiteralKind tags the variant held by a Literal.
type LiteralKind int

const (
	LiteralBoolean LiteralKind = iota
	LiteralInteger
	LiteralDecimal
	LiteralDate
	LiteralDatetime
	LiteralDatetimeTZ
	LiteralDuration
	LiteralString
	LiteralStruct
)

// Duration holds the date-part and/or time-part of a duration literal,
// mirroring the source grammar's two-component representation (years,
// months, weeks, days are the date part; hours, minutes, seconds,
// nanoseconds are the time part). Components absent from the source are
// zero; a literal whose components are all zero is accepted.
type Duration struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Nanos   int
}

func (d Duration) String() string {
	var b strings.Builder
	b.WriteByte('P')
	writeComp(&b, d.Years, "Y")
	writeComp(&b, d.Months, "M")
	writeComp(&b, d.Weeks, "W")
	writeComp(&b, d.Days, "D")
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 || d.Nanos != 0 {
		b.WriteByte('T')
		writeComp(&b, d.Hours, "H")
		writeComp(&b, d.Minutes, "M")
		if d.Seconds != 0 || d.Nanos != 0 {
			if d.Nanos != 0 {
				fmt.Fprintf(&b, "%d.%09dS", d.Seconds, d.Nanos)
			} else {
				fmt.Fprintf(&b, "%dS", d.Seconds)
			}
		}
	}
	return b.String()
}

func writeComp(b *strings.Builder, v int, suffix string) {
	if v != 0 {
		fmt.Fprintf(b, "%d%s", v, suffix)
	}
}

// StructEntry is one key/value pair of a struct literal. Struct literals
// preserve declaration order; they are not sorted.
type StructEntry struct {
	Key   string
	Value Literal
}

// Literal is a tagged sum over the Language's value literal forms.
type Literal struct {
	Kind LiteralKind

	Bool     bool
	Int      int64
	DecRaw   string // printed as written, e.g. "1.50" keeps trailing zero
	Date     time.Time
	Datetime time.Time
	TZName   string // IANA name, or "" when an explicit offset was given
	TZOffset string // ISO offset form, e.g. "+01:00"; empty when TZName set
	Duration Duration
	Str      string // decoded value
	StrRaw   string // original quoted+escaped source text, for Display
	Struct   []StructEntry

	Sp span.Span
}

func (l Literal) Span() span.Span { return l.Sp }

func (l Literal) Display() string {
	switch l.Kind {
	case LiteralBoolean:
		if l.Bool {
			return "true"
		}
		return "false"
	case LiteralInteger:
		return strconv.FormatInt(l.Int, 10)
	case LiteralDecimal:
		return l.DecRaw
	case LiteralDate:
		return l.Date.Format("2006-01-02")
	case LiteralDatetime:
		return l.Datetime.Format("2006-01-02T15:04:05.999")
	case LiteralDatetimeTZ:
		base := l.Datetime.Format("2006-01-02T15:04:05.999")
		if l.TZName != "" {
			return base + " " + l.TZName
		}
		return base + l.TZOffset
	case LiteralDuration:
		return l.Duration.String()
	case LiteralString:
		return l.StrRaw
	case LiteralStruct:
		parts := make([]string, len(l.Struct))
		for i, e := range l.Struct {
			parts[i] = e.Key + ": " + e.Value.Display()
		}
		return "{" + joined(", ", parts) + "}"
	default:
		return ""
	}
}

func (l Literal) Pretty(indent int) string { return l.Display() }
