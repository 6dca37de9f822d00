package framework

import (
	"fmt"
	"io"
	"strings"
)

// Outcome is the final state of a single test.
type Outcome int

const (
	OutcomePassed Outcome = iota
	OutcomeFailed
	OutcomeSkipped
	OutcomeExpectedFailure
	OutcomeUnexpectedPass
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "PASSED"
	case OutcomeFailed:
		return "FAILED"
	case OutcomeSkipped:
		return "SKIPPED"
	case OutcomeExpectedFailure:
		return "XFAIL"
	case OutcomeUnexpectedPass:
		return "XPASS"
	default:
		return "UNKNOWN"
	}
}

type Results struct {
	Tests            []TestResult
	Failures         []TestResult
	ExpectedFailures []TestResult
	UnexpectedPasses []TestResult
}

type TestResult struct {
	TestID                TestID
	Errors                []error
	Outcome               Outcome
	ExpectedFailureReason string
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	switch result.Outcome {
	case OutcomeFailed:
		r.Failures = append(r.Failures, result)
	case OutcomeExpectedFailure:
		r.ExpectedFailures = append(r.ExpectedFailures, result)
	case OutcomeUnexpectedPass:
		r.UnexpectedPasses = append(r.UnexpectedPasses, result)
	}
}

// OK is true if no test failed, other than tests that were expected to fail.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Count returns the number of tests with the given outcome.
func (r Results) Count(outcome Outcome) int {
	n := 0
	for _, t := range r.Tests {
		if t.Outcome == outcome {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of a test run.
func PrintResults(out io.Writer, results Results) {
	fmt.Fprintf(out, "Ran %d tests: %d passed, %d failed, %d skipped, %d expected failures, %d unexpected passes\n",
		len(results.Tests),
		results.Count(OutcomePassed),
		results.Count(OutcomeFailed),
		results.Count(OutcomeSkipped),
		results.Count(OutcomeExpectedFailure),
		results.Count(OutcomeUnexpectedPass),
	)
	if len(results.ExpectedFailures) > 0 {
		fmt.Fprintln(out, "Expected failures (known service defects):")
		for _, t := range results.ExpectedFailures {
			fmt.Fprintf(out, "  %s (%s)\n", t.TestID, t.ExpectedFailureReason)
		}
	}
	if len(results.UnexpectedPasses) > 0 {
		fmt.Fprintln(out, "Unexpected passes (a known defect may have been fixed):")
		for _, t := range results.UnexpectedPasses {
			fmt.Fprintf(out, "  %s (%s)\n", t.TestID, t.ExpectedFailureReason)
		}
	}
	if len(results.Failures) > 0 {
		fmt.Fprintln(out, "Failed tests:")
		for _, t := range results.Failures {
			fmt.Fprintf(out, "  %s\n", t.TestID)
		}
	}
}
