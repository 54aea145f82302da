// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "github.com/tql-lang/tql/pkg/span"

// Param is one (variable, type) pair of a function signature.
type Param struct {
	Variable Variable
	Type     TypeRef
}

func (p Param) Display() string { return p.Variable.Display() + ": " + p.Type.Display() }

// ReturnKind tags the shape of a function's return statement.
type ReturnKind int

const (
	ReturnStream ReturnKind = iota
	ReturnFirst
	ReturnLast
	ReturnReduction
)

// Return is a function body's trailing return statement: a stream of
// variables, a single first/last selector over variables, or a reduction.
type Return struct {
	Kind      ReturnKind
	Vars      []Variable
	Reduction *Reduction
	Sp        span.Span
}

func (r Return) Span() span.Span { return r.Sp }

func (r Return) Display() string {
	switch r.Kind {
	case ReturnStream:
		parts := make([]string, len(r.Vars))
		for i, v := range r.Vars {
			parts[i] = v.Display()
		}
		return "return { " + joined(", ", parts) + " }"
	case ReturnFirst, ReturnLast:
		kw := "first"
		if r.Kind == ReturnLast {
			kw = "last"
		}
		parts := make([]string, len(r.Vars))
		for i, v := range r.Vars {
			parts[i] = v.Display()
		}
		return "return " + kw + " " + joined(", ", parts)
	case ReturnReduction:
		return "return " + r.Reduction.Display()
	default:
		return ""
	}
}

// Function is a full signature-plus-body function definition:
// fun name(args) -> output: body return ...;
type Function struct {
	Name           Identifier
	Params         []Param
	Output         []TypeRef
	OutputIsStream bool // true when Output was written as "{ T1, T2 }"
	Body           []Stage // a Match followed by modifier stages
	Return         Return
	Sp             span.Span
}

func (f Function) Span() span.Span { return f.Sp }

func (f Function) Display() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Display()
	}
	outputs := make([]string, len(f.Output))
	for i, o := range f.Output {
		outputs[i] = o.Display()
	}
	outputStr := joined(", ", outputs)
	if f.OutputIsStream {
		outputStr = "{ " + outputStr + " }"
	}
	body := make([]string, len(f.Body))
	for i, s := range f.Body {
		body[i] = s.Display()
	}
	return "fun " + f.Name.Display() + "(" + joined(", ", params) + ") -> " +
		outputStr + ": " + joined("; ", body) + "; " + f.Return.Display() + ";"
}

func (f Function) Pretty(indent int) string { return f.Display() }
