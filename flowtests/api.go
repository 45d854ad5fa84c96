package flowtests

import (
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/qaflows/webapp-flow-tests/client"
	"github.com/qaflows/webapp-flow-tests/config"
	"github.com/qaflows/webapp-flow-tests/credstore"
	"github.com/qaflows/webapp-flow-tests/framework"
	"github.com/qaflows/webapp-flow-tests/userdata"
)

const birthDateLayout = "2006-01-02"

// SuiteDeps is everything the flow suite consumes: the resolved environment,
// the credential store (over a provisioned workspace), the data generator and
// the run's identifier.
type SuiteDeps struct {
	Environment *config.Environment
	Store       *credstore.Store
	Generator   *userdata.Generator
	RunID       string
}

type suiteEnv struct {
	deps SuiteDeps
}

// T represents a test or subtest in the flow suite.
//
// It implements the same basic functionality as Go's testing.T, but outside
// the Go test runner, on top of the framework package's test context. To make
// assertions, pass the *T to the assert and require packages as if it were a
// *testing.T.
//
// It also provides the flow-specific operations: creating a browsing session
// against the application, persisting a confirmed registration, and requiring
// previously stored credentials.
type T struct {
	context *framework.Context
	env     *suiteEnv
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Environment returns the run's resolved configuration.
func (t *T) Environment() *config.Environment {
	return t.env.deps.Environment
}

// Generator returns the synthetic-data generator.
func (t *T) Generator() *userdata.Generator {
	return t.env.deps.Generator
}

// Client returns a fresh browsing session against the application, wired to
// this test's debug logger. Each test gets its own session so a login in one
// test never leaks into another.
func (t *T) Client() *client.AppClient {
	return client.New(t.env.deps.Environment, t.context.DebugLogger())
}

// PersistConfirmedUser writes the user to the credential store as the current
// entry. Call it only after the application has confirmed the registration;
// persisting an unconfirmed account would poison later login runs.
func (t *T) PersistConfirmedUser(user userdata.User) credstore.Record {
	rec := credstore.Record{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.Password,
		BirthDate: ldvalue.NewOptionalString(user.BirthDate.Format(birthDateLayout)),
		CreatedAt: time.Now().UTC(),
		Status:    credstore.StatusValid,
		RunID:     t.env.deps.RunID,
	}
	require.NoError(t, t.env.deps.Store.Persist(rec), "could not persist confirmed registration")
	t.Debug("persisted credentials for %q as the current entry", rec.Username)
	return rec
}

// RequireStoredCredentials retrieves the current credential entry, failing
// the test immediately when none exists. That failure is classified as a
// setup failure, not an assertion failure: it means the registration flow has
// not yet succeeded in this environment, not that login is broken.
func (t *T) RequireStoredCredentials() credstore.Record {
	rec, err := t.env.deps.Store.Retrieve()
	if err != nil {
		t.context.SetupErrorf("login flow cannot start: %s", err)
		t.FailNow()
	}
	t.Debug("using stored credentials for %q (persisted %s)",
		rec.Username, rec.CreatedAt.Format(time.RFC3339))
	return rec
}
