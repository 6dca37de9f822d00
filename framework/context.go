package framework

import (
	"errors"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework's equivalent of *testing.T for a single test or group of tests.
// It satisfies the TestingT interfaces of the assert and require packages.
type Context struct {
	env                   *environment
	id                    TestID
	debugLogger           CapturingLogger
	failed                bool
	skipped               bool
	skipReason            string
	expectedFailureReason string
	errors                []error
}

// Run executes a test tree. The action receives the root Context, whose Run method is used
// to start each individual test.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

func (c *Context) outcome() Outcome {
	switch {
	case c.skipped:
		return OutcomeSkipped
	case c.expectedFailureReason != "" && c.failed:
		return OutcomeExpectedFailure
	case c.expectedFailureReason != "":
		return OutcomeUnexpectedPass
	case c.failed:
		return OutcomeFailed
	default:
		return OutcomePassed
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a single test, unless the filter excludes it.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.results.add(TestResult{TestID: id, Outcome: OutcomeSkipped})
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)

	result := TestResult{
		TestID:                id,
		Errors:                c1.errors,
		Outcome:               c1.outcome(),
		ExpectedFailureReason: c1.expectedFailureReason,
	}
	c.env.results.add(result)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, result, c1.debugLogger.Output())
	}
}

// RunGroup runs a group of subtests. The filter applies to the tests inside the group rather
// than to the group itself, and the group only gets a result of its own if its code fails
// outside of any subtest.
func (c *Context) RunGroup(name string, action func(*Context)) {
	id := c.id.Plus(name)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	switch {
	case c1.skipped:
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	case c1.failed:
		result := TestResult{TestID: id, Errors: c1.errors, Outcome: OutcomeFailed}
		c.env.results.add(result)
		c.env.testLogger.TestFinished(id, result, c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// ExpectFailure marks a test that is known to fail because of a defect in the service. The
// test still runs and its errors are still reported, but a failure does not make the run fail.
// If the test passes anyway, the result is reported as an unexpected pass.
func (c *Context) ExpectFailure(reason string) {
	c.expectedFailureReason = reason
}

// CancelExpectedFailure undoes ExpectFailure, so that a failure is reported as a normal one.
// It is used when the test failed for a reason unrelated to the known defect.
func (c *Context) CancelExpectedFailure() {
	c.expectedFailureReason = ""
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

var testifyContinuationLine = regexp.MustCompile(`^\t +\t`)

// reformatError removes the "Error Trace" section that testify puts in assertion messages;
// source positions inside the test suite are noise in a console report.
func reformatError(err error) error {
	lines := strings.Split(strings.Trim(err.Error(), "\n"), "\n")
	out := make([]string, 0, len(lines))
	inTrace := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Error Trace:") {
			inTrace = true
			continue
		}
		if inTrace && testifyContinuationLine.MatchString(line) {
			continue
		}
		inTrace = false
		out = append(out, strings.TrimPrefix(line, "\t"))
	}
	return errors.New(strings.Join(out, "\n"))
}
