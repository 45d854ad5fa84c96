package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context tracks the state of a single test while it is running. It fills the
// same role as Go's *testing.T, but outside of the Go test runner: test logic
// accumulates errors and debug output against a TestID, and FailNow/Skip use a
// panic that is recovered by the runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	setupFailed bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a top-level test action and returns the accumulated results.
// The action normally just calls Context.Run for each named test.
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
		// The root context only reports a result if suite-level code itself
		// failed; otherwise results come from the named tests under it.
		if len(c.id.Path) == 0 && !c.failed {
			return
		}
		result := TestResult{
			TestID:       c.id,
			Errors:       c.errors,
			SetupFailure: c.setupFailed,
			DebugOutput:  c.debugLogger.Output(),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest under this context, like the Run method of testing.T.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a test failure without stopping the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// SetupErrorf records a failure and classifies this test's result as a setup
// failure rather than an assertion failure. A setup failure means a
// precondition of the test (environment, stored data from a prior flow) was
// not met, not that the system under test misbehaved; results report the two
// separately.
func (c *Context) SetupErrorf(format string, args ...interface{}) {
	c.setupFailed = true
	c.Errorf(format, args...)
}

// FailNow stops the test immediately. The methods in testify's require package
// call this.
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

// Debug records debug output for the test. Whether it is shown at the end of
// the test is up to the test logger.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
