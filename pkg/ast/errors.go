// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package ast

import "errors"

// errNotStringLiteral is returned by ComparisonStatement.Compile when the
// right-hand operand is not a string literal. The visitor is expected to
// have already rejected this shape with a tqlerr diagnostic; this error
// only guards the package's own internal invariant.
var errNotStringLiteral = errors.New("ast: like comparator operand is not a string literal")
