// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

// Command tqlfmt checks and pretty-prints query/schema source files, and
// exports the library's AST contract as JSON Schema.
package main

import (
	"fmt"
	"os"

	"github.com/tql-lang/tql/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	logging.SetDefault("tqlfmt", version, "text")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
