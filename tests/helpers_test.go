package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectNotContains returns a comparator verifying the output does NOT contain a substring.
func expectNotContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectGrade returns a comparator verifying the reported letter grade.
// It looks for the summary line: grade <letter> (<score>/100).
func expectGrade(grade string) test.Comparator {
	return expectContains(fmt.Sprintf("grade %s (", grade))
}

// expectDimensionStatus returns a comparator verifying a dimension line with
// the given status: [<status>] <dimension>:.
func expectDimensionStatus(dimension, status string) test.Comparator {
	return expectContains(fmt.Sprintf("[%s] %s:", status, dimension))
}
