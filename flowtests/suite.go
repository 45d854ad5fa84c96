// Package flowtests is the domain test suite: the registration,
// authentication and web-input flows run against the demo application, built
// on the generic framework layer.
package flowtests

import (
	"github.com/qaflows/webapp-flow-tests/framework"
)

// RunTestSuite runs every flow and returns the accumulated results.
//
// Registration runs before authentication. That ordering is the
// scheduling-level contract the credential store relies on: the store itself
// never sequences its callers, so the suite must persist before anything
// retrieves. Keep these two flows in this order even if the surrounding
// execution is otherwise parallelized.
func RunTestSuite(
	deps SuiteDeps,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     &suiteEnv{deps: deps},
		}

		t.Run("registration", DoRegistrationTests)
		t.Run("authentication", DoAuthenticationTests)
		t.Run("web inputs", DoWebInputTests)
	})
}
