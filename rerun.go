package main

import (
	"regexp"

	"github.com/qaflows/webapp-flow-tests/framework"
)

// rerunCommand builds a copy-pastable command that repeats this invocation
// filtered down to the failed tests.
func rerunCommand(argv0 string, params commandParams, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(argv0)
	if params.configPath != "" {
		b.add("-config", params.configPath)
	} else if params.envName != "" {
		b.add("-env", params.envName)
	}
	if params.baseDir != "" && params.baseDir != "." {
		b.add("-base-dir", params.baseDir)
	}
	b.add("-debug")
	for _, f := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}
