// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor

import (
	"github.com/tql-lang/tql/internal/grammar"
	"github.com/tql-lang/tql/pkg/ast"
)

// VisitQuery converts a parsed query tree into an ast.Query, the entry
// point used by pkg/tql.ParseQuery.
func VisitQuery(source string, g *grammar.Query) (ast.Query, error) {
	return newCtx(source).visitQuery(g)
}

// VisitFunction converts a parsed standalone function definition into an
// ast.Function, the entry point used by pkg/tql.ParseDefinitionFunction.
func VisitFunction(source string, g *grammar.Function) (ast.Function, error) {
	return newCtx(source).visitFunction(g)
}

// VisitStructDef converts a parsed standalone struct definition into an
// ast.StructDef, the entry point used by pkg/tql.ParseDefinitionStruct.
func VisitStructDef(source string, g *grammar.StructDef) (ast.StructDef, error) {
	return newCtx(source).visitStructDef(g)
}

// VisitLabel converts a parsed label into an ast.Label, the entry point
// used by pkg/tql.ParseLabel.
func VisitLabel(source string, g *grammar.Label) (ast.Label, error) {
	return newCtx(source).visitLabel(g)
}
