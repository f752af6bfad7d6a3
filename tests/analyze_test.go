package tests_test

import (
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/expect"
	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/datagrade/datagrade/tests/testutils"
)

func TestAnalyze(t *testing.T) {
	testCase := testutils.Setup()

	testCase.SubTests = []*test.Case{
		{
			Description: "no arguments fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers, "analyze")
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "nonexistent file fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers, "analyze", "no-such-file.csv")
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "unknown dimension fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers,
					"analyze", "--dimensions", "sparkle", testutils.Fixture("clean.csv"))
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "clean dataset grades A and is ML ready",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers, "analyze", testutils.Fixture("clean.csv"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output: expect.All(
						expectGrade("A"),
						expectContains("ML readiness: ready"),
						expectDimensionStatus("completeness", "pass"),
						expectDimensionStatus("uniqueness", "pass"),
						expectDimensionStatus("accuracy", "pass"),
					),
				}
			},
		},
		{
			Description: "dimension selection restricts the report",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers,
					"analyze", "--dimensions", "completeness", testutils.Fixture("clean.csv"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output: expect.All(
						expectDimensionStatus("completeness", "pass"),
						expectNotContains("uniqueness"),
					),
				}
			},
		},
		{
			Description: "duplicated rows fail uniqueness",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers, "analyze", testutils.Fixture("messy.csv"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output: expect.All(
						expectDimensionStatus("uniqueness", "fail"),
						expectContains("duplicate rows"),
						expectContains("ML readiness: needs_improvement"),
					),
				}
			},
		},
		{
			Description: "json format",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return testutils.Datagrade(helpers,
					"analyze", "--format", "json", testutils.Fixture("clean.csv"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output: expect.All(
						expectContains(`"summary"`),
						expectContains("grade A"),
					),
				}
			},
		},
	}

	testCase.Run(t)
}
