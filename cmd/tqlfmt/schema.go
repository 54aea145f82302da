// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tql-lang/tql/pkg/ast"
)

// newSchemaCmd creates the schema subcommand.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the AST contract's JSON Schema to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(ast.ExportSchemas(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshalling schema: %w", err)
			}
			cmd.Println(string(out))
			return nil
		},
	}
}
