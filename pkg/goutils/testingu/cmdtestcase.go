/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package testingu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// Test case for command line tool.
type CmdTestCase struct {
	Name                   string
	Args                   []string
	ExpectedErr            error
	ExpectedErrPatterns    []string
	ExpectedStdoutPatterns []string
	NotExpectedStdout      []string
	ExpectedStderrPatterns []string
}

// Executes function which runs command line tool with specified arguments.
type CmdExecuteFunc func(args []string, stdout, stderr io.Writer) error

// Runs test cases as subtests.
//
// Stdout and stderr are captured and checked against patterns.
func RunCmdTestCases(t *testing.T, execute CmdExecuteFunc, testCases []CmdTestCase) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Helper()
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

			err := execute(tc.Args, stdout, stderr)
			t.Log("stdout:", stdout.String())
			t.Log("stderr:", stderr.String())

			checkOutput(t, tc.ExpectedStdoutPatterns, stdout.String(), "stdout")
			checkNoOutput(t, tc.NotExpectedStdout, stdout.String(), "stdout")
			checkOutput(t, tc.ExpectedStderrPatterns, stderr.String(), "stderr")

			checkError(t, tc.ExpectedErr, tc.ExpectedErrPatterns, err)
		})
	}
}

func checkError(t *testing.T, expectedErr error, expectedErrPatterns []string, actualErr error) {
	t.Helper()
	if expectedErr == nil && len(expectedErrPatterns) == 0 {
		if actualErr != nil {
			t.Errorf("unexpected error was returned: %v", actualErr)
		}
		return
	}
	if actualErr == nil {
		t.Errorf("error was not returned as expected")
		return
	}
	if expectedErr != nil && !errors.Is(actualErr, expectedErr) {
		t.Errorf("wrong error was returned: expected `%v`, got `%v`", expectedErr, actualErr)
	}
	for _, p := range expectedErrPatterns {
		if !strings.Contains(actualErr.Error(), p) {
			t.Errorf("wrong error was returned: expected pattern `%v`, got `%v`", p, actualErr.Error())
		}
	}
}

func checkOutput(t *testing.T, expectedPatterns []string, actual, outputTitle string) {
	t.Helper()
	for _, expectedPattern := range expectedPatterns {
		switch {
		case len(actual) == 0 && len(expectedPattern) > 0:
			t.Errorf("%s: expected pattern `%v`, actual is nothing", outputTitle, expectedPattern)
		case !strings.Contains(actual, expectedPattern) && len(expectedPattern) > 0:
			t.Errorf("%s: expected pattern `%v`, actual `%v`", outputTitle, expectedPattern, actual)
		case len(actual) > 0 && len(expectedPattern) == 0:
			t.Errorf("%s: expected nothing, got `%v`", outputTitle, actual)
		}
	}
}

func checkNoOutput(t *testing.T, patterns []string, actual, outputTitle string) {
	t.Helper()
	for _, p := range patterns {
		if strings.Contains(actual, p) {
			t.Errorf("%s: unexpected pattern `%v` in `%v`", outputTitle, p, actual)
		}
	}
}
