// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "github.com/tql-lang/tql/pkg/span"

// Pipeline is an optional sequence of function-definition preambles followed
// by a non-empty ordered sequence of stages, optionally terminated by an
// explicit "end;" marker. It implements Query.
type Pipeline struct {
	Preambles []Function
	Stages    []Stage
	HasEnd    bool
	Sp        span.Span
}

func (p Pipeline) queryNode()      {}
func (p Pipeline) Span() span.Span { return p.Sp }

func (p Pipeline) Display() string {
	var out string
	for _, fn := range p.Preambles {
		out += fn.Display() + " "
	}
	stages := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		stages[i] = s.Display()
	}
	out += joined("; ", stages) + ";"
	if p.HasEnd {
		out += " end;"
	}
	return out
}

func (p Pipeline) Pretty(indent int) string {
	var out string
	for _, fn := range p.Preambles {
		out += pad(indent) + fn.Display() + "\n"
	}
	for _, s := range p.Stages {
		out += s.Pretty(indent) + ";\n"
	}
	if p.HasEnd {
		out += pad(indent) + "end;"
	}
	return out
}

// Children exposes the pipeline's stages for Walk.
func (p Pipeline) Children() []Node {
	out := make([]Node, len(p.Stages))
	for i, s := range p.Stages {
		out[i] = s
	}
	return out
}
