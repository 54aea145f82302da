// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tql-lang/tql/pkg/tql"
)

// newFmtCmd creates the fmt subcommand.
func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Parse and pretty-print files, optionally rewriting them in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing to stdout")
	return cmd
}

func runFmt(cmd *cobra.Command, files []string, write bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	failed := false
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			cmd.PrintErrf("%s: %v\n", path, err)
			failed = true
			continue
		}
		queries, err := tql.ParseQueries(string(data))
		if err != nil {
			cmd.PrintErrf("%s:\n%s\n", path, err)
			failed = true
			continue
		}

		rendered := make([]string, len(queries))
		for i, q := range queries {
			rendered[i] = q.Pretty(cfg.Indent)
		}
		out := strings.Join(rendered, "\nend;\n")
		if len(queries) > 1 {
			out += "\n"
		}

		if write {
			if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
				cmd.PrintErrf("%s: %v\n", path, err)
				failed = true
				continue
			}
			continue
		}
		cmd.Println(out)
	}
	if failed {
		return fmt.Errorf("one or more files failed to format")
	}
	return nil
}
