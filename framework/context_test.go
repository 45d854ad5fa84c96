package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNames(results []TestResult) []string {
	var names []string
	for _, r := range results {
		names = append(names, r.TestID.String())
	}
	return names
}

func TestRunCollectsPassAndFailResults(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) {
			c.Errorf("something went wrong")
		})
	})

	assert.Equal(t, []string{"passes", "fails"}, runNames(results.Tests))
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "fails", results.Failures[0].TestID.String())
	assert.False(t, results.OK())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "something went wrong", results.Failures[0].Errors[0].Error())
}

func TestFailNowStopsTestButNotSuite(t *testing.T) {
	reachedAfterFailNow := false
	ranNextTest := false

	results := Run(nil, nil, func(c *Context) {
		c.Run("stops early", func(c *Context) {
			c.Errorf("fatal problem")
			c.FailNow()
			reachedAfterFailNow = true
		})
		c.Run("still runs", func(c *Context) {
			ranNextTest = true
		})
	})

	assert.False(t, reachedAfterFailNow)
	assert.True(t, ranNextTest)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "stops early", results.Failures[0].TestID.String())
}

func TestSetupErrorfClassifiesResult(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("missing precondition", func(c *Context) {
			c.SetupErrorf("no stored credentials")
			c.FailNow()
		})
		c.Run("real failure", func(c *Context) {
			c.Errorf("wrong page")
		})
	})

	require.Len(t, results.Failures, 2)
	setup := results.SetupFailures()
	require.Len(t, setup, 1)
	assert.Equal(t, "missing precondition", setup[0].TestID.String())
	assert.True(t, setup[0].SetupFailure)
	assert.False(t, results.Failures[1].SetupFailure)
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable here")
			c.Errorf("never reached")
		})
	})

	assert.Empty(t, results.Tests)
	assert.True(t, results.OK())
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic("boom")
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test")
}

func TestFilterExcludesTests(t *testing.T) {
	var ran []string
	filter := func(id TestID) bool { return id.String() != "excluded" }

	results := Run(filter, nil, func(c *Context) {
		c.Run("included", func(c *Context) {
			ran = append(ran, "included")
		})
		c.Run("excluded", func(c *Context) {
			ran = append(ran, "excluded")
		})
	})

	assert.Equal(t, []string{"included"}, ran)
	assert.Equal(t, []string{"included"}, runNames(results.Tests))
}

func TestSubtestIDsAreHierarchical(t *testing.T) {
	var seen []string
	results := Run(nil, nil, func(c *Context) {
		c.Run("flow", func(c *Context) {
			c.Run("case", func(c *Context) {
				seen = append(seen, c.ID().String())
			})
		})
	})

	assert.Equal(t, []string{"flow/case"}, seen)
	assert.Contains(t, runNames(results.Tests), "flow/case")
}

func TestDebugOutputIsCaptured(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("logs", func(c *Context) {
			c.Debug("step %d done", 1)
		})
	})

	require.Len(t, results.Tests, 1)
	require.Len(t, results.Tests[0].DebugOutput, 1)
	assert.Equal(t, "step 1 done", results.Tests[0].DebugOutput[0].Message)
}
