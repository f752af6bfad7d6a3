// Package testutils provides test infrastructure for datagrade integration tests.
package testutils

import (
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"
)

// Setup creates a test case for driving the built CLI binaries.
func Setup() *test.Case {
	return &test.Case{}
}

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed

	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// Datagrade builds an invocation of the datagrade binary.
func Datagrade(helpers test.Helpers, args ...string) test.TestableCommand {
	return helpers.Custom(filepath.Join(projectRoot(), "bin", "datagrade"), args...)
}

// DgReport builds an invocation of the dg-report binary.
func DgReport(helpers test.Helpers, args ...string) test.TestableCommand {
	return helpers.Custom(filepath.Join(projectRoot(), "bin", "dg-report"), args...)
}

// Fixture returns the absolute path of a committed testdata file. An empty
// name returns the testdata directory itself.
func Fixture(name string) string {
	return filepath.Join(projectRoot(), "tests", "testdata", name)
}
