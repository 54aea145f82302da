// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tql-lang/tql/internal/config"
)

// Global flags available to all subcommands.
var configFile string

// newRootCmd creates the root command for the tqlfmt CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tqlfmt",
		Short: "tqlfmt - check and format Language source files",
		Long: `tqlfmt parses and pretty-prints query and schema definition
files written in the Language, and exports the library's AST contract as
JSON Schema.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: ./.tqlfmt.yaml)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

// loadConfig resolves the layered presentation configuration for the given
// command, following defaults -> optional file -> CLI flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := configFile
	if path == "" {
		path = ".tqlfmt.yaml"
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	return config.Load(path, cmd.Flags())
}
