package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Results is the outcome of a full run of the test suite.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID TestID
	Errors []error

	// SetupFailure marks a failure caused by an unmet precondition (missing
	// configuration, no stored credentials) rather than by the system under
	// test. Such results still count as failures, but are reported as a
	// distinct category.
	SetupFailure bool

	Skipped     bool
	DebugOutput CapturedOutput
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// SetupFailures returns the subset of failures classified as setup failures.
func (r Results) SetupFailures() []TestResult {
	var ret []TestResult
	for _, f := range r.Failures {
		if f.SetupFailure {
			ret = append(ret, f)
		}
	}
	return ret
}

// TestID identifies a test as a path of subtest names, like "registration/new
// user can register".
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the run to dest, listing each failed test
// with its errors and a final counts line. Setup failures are listed and
// counted separately from assertion failures.
func PrintResults(dest io.Writer, results Results) {
	passed := color.New(color.FgGreen)
	failed := color.New(color.FgRed, color.Bold)
	warned := color.New(color.FgYellow)

	setupFailures := results.SetupFailures()
	testFailures := make([]TestResult, 0, len(results.Failures))
	for _, f := range results.Failures {
		if !f.SetupFailure {
			testFailures = append(testFailures, f)
		}
	}

	if len(testFailures) > 0 {
		failed.Fprintf(dest, "FAILED TESTS (%d):\n", len(testFailures))
		printFailureList(dest, testFailures)
	}
	if len(setupFailures) > 0 {
		warned.Fprintf(dest, "SETUP FAILURES (%d):\n", len(setupFailures))
		printFailureList(dest, setupFailures)
	}

	summary := fmt.Sprintf("Ran %d tests: %d passed, %d failed, %d setup failures",
		len(results.Tests),
		len(results.Tests)-len(results.Failures),
		len(testFailures),
		len(setupFailures),
	)
	if results.OK() {
		passed.Fprintf(dest, "%s\n", summary)
	} else {
		failed.Fprintf(dest, "%s\n", summary)
	}
}

func printFailureList(dest io.Writer, failures []TestResult) {
	for _, f := range failures {
		fmt.Fprintf(dest, "  %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(dest, "    %s\n", line)
			}
		}
	}
	fmt.Fprintln(dest)
}
