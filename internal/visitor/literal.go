// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
	"github.com/tql-lang/tql/pkg/span"
	"github.com/tql-lang/tql/pkg/tqlerr"
)

// visitVariable parses a lexed "$name", "$name?", or "$_" token into an
// ast.Variable. The concept/value namespace is left unresolved, matching the
// library's contract that later semantic layers disambiguate it.
func (c *ctx) visitVariable(raw string, pos lexer.Position) (ast.Variable, error) {
	body := strings.TrimPrefix(raw, "$")
	optional := strings.HasSuffix(body, "?")
	body = strings.TrimSuffix(body, "?")
	sp := c.spanOf(pos, len(raw))
	if body == "_" {
		return ast.Variable{Anonymous: true, Optional: optional, Sp: sp}, nil
	}
	if err := validIdentBody(body); err != nil {
		return ast.Variable{}, tqlerr.NewSyntax(c.source, sp, pos.Line, pos.Column,
			"invalid variable name %q: %v", raw, err)
	}
	return ast.Variable{Name: body, Optional: optional, Sp: sp}, nil
}

func validIdentBody(s string) error {
	if s == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if s[0] == '_' {
		return fmt.Errorf("identifier must not start with '_'")
	}
	for _, r := range s {
		ok := r == '-' || r == '_' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
		if !ok {
			return fmt.Errorf("invalid identifier character %q", r)
		}
	}
	return nil
}

// visitLiteral visits a value literal, decoding string escapes and
// enforcing millisecond-precision datetimes.
func (c *ctx) visitLiteral(g *grammar.Literal) (ast.Literal, error) {
	sp := c.spanOf(g.Pos, 0)
	switch {
	case g.Bool != "":
		return ast.Literal{Kind: ast.LiteralBoolean, Bool: g.Bool == "true", Sp: sp}, nil

	case g.Integer != "":
		n, err := strconv.ParseInt(g.Integer, 10, 64)
		if err != nil {
			return ast.Literal{}, tqlerr.NewSyntax(c.source, sp, g.Pos.Line, g.Pos.Column,
				"invalid integer literal %q", g.Integer)
		}
		return ast.Literal{Kind: ast.LiteralInteger, Int: n, Sp: sp}, nil

	case g.Decimal != "":
		return ast.Literal{Kind: ast.LiteralDecimal, DecRaw: g.Decimal, Sp: sp}, nil

	case g.Duration != "":
		d, err := parseDuration(g.Duration)
		if err != nil {
			return ast.Literal{}, tqlerr.NewSyntax(c.source, sp, g.Pos.Line, g.Pos.Column,
				"invalid duration literal %q: %v", g.Duration, err)
		}
		return ast.Literal{Kind: ast.LiteralDuration, Duration: d, Sp: sp}, nil

	case g.Datetime != "":
		return c.visitDatetime(g.Datetime, g.Pos, sp)

	case g.Date != "":
		t, err := time.Parse("2006-01-02", g.Date)
		if err != nil {
			return ast.Literal{}, tqlerr.NewSyntax(c.source, sp, g.Pos.Line, g.Pos.Column,
				"invalid date literal %q", g.Date)
		}
		return ast.Literal{Kind: ast.LiteralDate, Date: t, Sp: sp}, nil

	case g.Str != "":
		decoded, err := decodeEscapes(unquote(g.Str))
		if err != nil {
			return ast.Literal{}, tqlerr.NewSyntax(c.source, sp, g.Pos.Line, g.Pos.Column,
				"invalid escape in string literal %q: %v", g.Str, err)
		}
		return ast.Literal{Kind: ast.LiteralString, Str: decoded, StrRaw: g.Str, Sp: sp}, nil

	case g.Struct != nil:
		return c.visitStructLiteral(g.Struct)

	default:
		return ast.Literal{}, c.illegalGrammar(g.Pos, "<empty literal>")
	}
}

// datetimeLayout is the one layout used for the whole-second part of a
// datetime; fractional digits are split off and counted separately in
// visitDatetime, so the millisecond cap does not depend on layout choice.
const datetimeLayout = "2006-01-02T15:04:05"

// visitDatetime parses both the plain and offset-qualified datetime
// surface forms, rejecting fractional seconds beyond millisecond precision
// (more than three digits).
func (c *ctx) visitDatetime(raw string, pos lexer.Position, sp span.Span) (ast.Literal, error) {
	base := raw
	tzOffset := ""
	if tIdx := strings.IndexByte(raw, 'T'); tIdx >= 0 {
		if idx := strings.IndexAny(raw[tIdx:], "+-"); idx >= 0 {
			base, tzOffset = raw[:tIdx+idx], raw[tIdx+idx:]
		}
	}

	frac := ""
	core := base
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		core = base[:dot]
		frac = base[dot+1:]
	}
	if len(frac) > 3 {
		return ast.Literal{}, tqlerr.New(tqlerr.CodeInvalidDatetimePrecision, sp,
			"datetime literal %q exceeds millisecond precision", raw)
	}

	t, err := time.Parse(datetimeLayout, core)
	if err != nil {
		return ast.Literal{}, tqlerr.NewSyntax(c.source, sp, pos.Line, pos.Column,
			"invalid datetime literal %q", raw)
	}
	if frac != "" {
		nanos, _ := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		t = t.Add(time.Duration(nanos) * time.Nanosecond)
	}

	if tzOffset != "" {
		return ast.Literal{Kind: ast.LiteralDatetimeTZ, Datetime: t, TZOffset: tzOffset, Sp: sp}, nil
	}
	return ast.Literal{Kind: ast.LiteralDatetime, Datetime: t, Sp: sp}, nil
}

// unquote strips a matching pair of surrounding quote characters, if raw has
// them; a bare unquoted token (e.g. a fetch key spelled as a plain Ident) is
// returned unchanged.
func unquote(raw string) string {
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' || first == '\'') && first == last {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

// decodeEscapes decodes the fixed escape set the grammar supports:
// \b \t \n \f \r \" \' \\. \uXXXX is reserved and rejected.
func decodeEscapes(raw string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			continue
		}
		if i+1 >= len(raw) {
			return "", fmt.Errorf("dangling escape at end of string")
		}
		i++
		switch raw[i] {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		case 'u':
			return "", fmt.Errorf("\\u escapes are reserved, not yet supported")
		default:
			return "", fmt.Errorf("unknown escape sequence \\%c", raw[i])
		}
	}
	return b.String(), nil
}

// parseDuration parses an ISO-8601-ish duration with separate date and time
// parts, e.g. "P1Y2M3DT4H5M6S".
func parseDuration(raw string) (ast.Duration, error) {
	if len(raw) == 0 || raw[0] != 'P' {
		return ast.Duration{}, fmt.Errorf("duration must start with 'P'")
	}
	rest := raw[1:]
	datePart, timePart := rest, ""
	if idx := strings.IndexByte(rest, 'T'); idx >= 0 {
		datePart, timePart = rest[:idx], rest[idx+1:]
	}

	var d ast.Duration
	var err error
	if datePart != "" {
		d.Years, d.Months, d.Weeks, d.Days, err = parseDateComponents(datePart)
		if err != nil {
			return ast.Duration{}, err
		}
	}
	if timePart != "" {
		d.Hours, d.Minutes, d.Seconds, d.Nanos, err = parseTimeComponents(timePart)
		if err != nil {
			return ast.Duration{}, err
		}
	}
	return d, nil
}

func parseDateComponents(s string) (years, months, weeks, days int, err error) {
	for len(s) > 0 {
		n, unit, rest, e := takeNumberAndUnit(s)
		if e != nil {
			return 0, 0, 0, 0, e
		}
		switch unit {
		case 'Y':
			years = n
		case 'M':
			months = n
		case 'W':
			weeks = n
		case 'D':
			days = n
		default:
			return 0, 0, 0, 0, fmt.Errorf("unexpected date-part unit %q", unit)
		}
		s = rest
	}
	return years, months, weeks, days, nil
}

func parseTimeComponents(s string) (hours, minutes, seconds, nanos int, err error) {
	for len(s) > 0 {
		n, frac, unit, rest, e := takeNumberFracAndUnit(s)
		if e != nil {
			return 0, 0, 0, 0, e
		}
		switch unit {
		case 'H':
			hours = n
		case 'M':
			minutes = n
		case 'S':
			seconds = n
			if frac != "" {
				padded := frac + strings.Repeat("0", 9-len(frac))
				nanos, _ = strconv.Atoi(padded[:9])
			}
		default:
			return 0, 0, 0, 0, fmt.Errorf("unexpected time-part unit %q", unit)
		}
		s = rest
	}
	return hours, minutes, seconds, nanos, nil
}

func takeNumberAndUnit(s string) (n int, unit byte, rest string, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) {
		return 0, 0, "", fmt.Errorf("malformed duration component %q", s)
	}
	n, _ = strconv.Atoi(s[:i])
	return n, s[i], s[i+1:], nil
}

func takeNumberFracAndUnit(s string) (n int, frac string, unit byte, rest string, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", 0, "", fmt.Errorf("malformed duration component %q", s)
	}
	n, _ = strconv.Atoi(s[:i])
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		frac = s[i+1 : j]
		i = j
	}
	if i >= len(s) {
		return 0, "", 0, "", fmt.Errorf("malformed duration component %q", s)
	}
	return n, frac, s[i], s[i+1:], nil
}

// visitStructLiteral visits a bracketed key/value struct literal,
// preserving declaration order.
func (c *ctx) visitStructLiteral(g *grammar.StructLiteral) (ast.Literal, error) {
	entries := make([]ast.StructEntry, 0, len(g.Entries))
	agg := &tqlerr.Aggregate{}
	for _, e := range g.Entries {
		v, err := c.visitLiteral(e.Value)
		if err != nil {
			agg.Add(err)
			continue
		}
		entries = append(entries, ast.StructEntry{Key: e.Key, Value: v})
	}
	if err := agg.AsError(); err != nil {
		return ast.Literal{}, err
	}
	return ast.Literal{Kind: ast.LiteralStruct, Struct: entries, Sp: c.spanOf(g.Pos, 0)}, nil
}
