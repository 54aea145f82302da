// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tql-lang/tql/pkg/errutil"
	"github.com/tql-lang/tql/pkg/tql"
)

// newCheckCmd creates the check subcommand.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse each file, reporting every diagnostic found",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, files []string) error {
	failed := false
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			cmd.PrintErrf("%s: %v\n", path, err)
			failed = true
			continue
		}
		if _, err := tql.ParseQueries(string(data)); err != nil {
			errutil.LogError(slog.Default(), "parse failed", err)
			cmd.PrintErrf("%s:\n%s\n", path, err)
			failed = true
			continue
		}
		cmd.Printf("%s: ok\n", path)
	}
	if failed {
		return fmt.Errorf("one or more files failed to parse")
	}
	return nil
}
