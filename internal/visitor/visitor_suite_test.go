// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package visitor_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestVisitor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "internal/visitor scenario suite")
}
