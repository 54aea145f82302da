// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "github.com/invopop/jsonschema"

// SchemaFor exports a JSON Schema describing the wire shape of the given
// AST node type, for tooling that embeds the AST contract in another
// system's schema registry.
func SchemaFor[T any]() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: false,
		ExpandedStruct: true,
	}
	return reflector.Reflect(new(T))
}

// ExportSchemas returns a map of node-name to JSON Schema for the top-level
// AST contract types a caller is most likely to need: Pipeline,
// SchemaQuery, and Function.
func ExportSchemas() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"Pipeline":    SchemaFor[Pipeline](),
		"SchemaQuery": SchemaFor[SchemaQuery](),
		"Function":    SchemaFor[Function](),
	}
}
