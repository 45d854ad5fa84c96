// Package framework contains the generic test-execution layer of the harness,
// independent of what is being tested.
//
// The model is:
//
// 1. A Context is a testing.T-alike for tests that run outside the Go test
// runner. Test logic accumulates errors and debug output against a TestID;
// FailNow and Skip exit early via a panic that the runner recovers.
//
// 2. Run walks a tree of named tests, applying run/skip filters and reporting
// progress through a TestLogger, and returns Results.
//
// 3. Failures carry a classification: an assertion failure means the system
// under test misbehaved, a setup failure means a precondition of the test was
// not met (for example, no credentials stored by an earlier flow). The two are
// reported and counted separately.
//
// The domain-specific flow suite builds its own test API on top of Context.
package framework
