package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/qaflows/webapp-flow-tests/client"
	"github.com/qaflows/webapp-flow-tests/config"
	"github.com/qaflows/webapp-flow-tests/credstore"
	"github.com/qaflows/webapp-flow-tests/flowtests"
	"github.com/qaflows/webapp-flow-tests/framework"
	"github.com/qaflows/webapp-flow-tests/userdata"
	"github.com/qaflows/webapp-flow-tests/workspace"
)

// Exit codes distinguish why a run failed, so CI and reporting layers can
// classify setup problems separately from real test failures.
const (
	exitTestsFailed  = 1
	exitSetupProblem = 2
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return exitSetupProblem
	}

	env, err := config.Resolve(config.Options{
		Name: params.envName,
		Path: params.configPath,
		Dir:  filepath.Join(params.baseDir, config.DefaultDir),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return exitSetupProblem
	}

	layout := workspace.NewLayout(params.baseDir)
	if err := layout.Provision(); err != nil {
		fmt.Fprintf(os.Stderr, "Workspace error: %s\n", err)
		return exitSetupProblem
	}

	printBanner(env)

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	appClient := client.New(env, mainDebugLogger)
	if err := appClient.WaitForSite(params.siteTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Site availability error: %s\n", err)
		return exitSetupProblem
	}

	fmt.Println()
	params.filters.PrintDescription(os.Stdout)
	fmt.Println("Running test suite")

	runID := uuid.NewString()
	deps := flowtests.SuiteDeps{
		Environment: env,
		Store:       credstore.New(layout.CredentialFile()),
		Generator:   userdata.New(),
		RunID:       runID,
	}
	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := flowtests.RunTestSuite(deps, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	if logPath, err := writeRunLog(layout, runID, results); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write run log: %s\n", err)
	} else {
		fmt.Printf("Run log written to %s\n", logPath)
	}

	if !results.OK() {
		fmt.Printf("\nTo rerun just the failed tests:\n  %s\n", rerunCommand(args[0], params, results.Failures))
		return exitTestsFailed
	}
	return 0
}

func printBanner(env *config.Environment) {
	name := env.Name
	if name == "" {
		name = env.SourcePath
	}
	fmt.Printf("Environment: %s (%s)\n", name, env.BaseURL)
	fmt.Printf("  Trello reporting enabled: %t\n", env.Trello.Enabled)
	fmt.Printf("  Jira reporting enabled:   %t\n", env.Jira.Enabled)
}

// writeRunLog dumps every test's outcome and captured debug output into a
// per-run file under the reports/logs directory, so failures remain
// inspectable after the console scrolls away.
func writeRunLog(layout workspace.Layout, runID string, results framework.Results) (string, error) {
	path := filepath.Join(layout.Logs, "run-"+runID+".log")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	for _, res := range results.Tests {
		status := "PASSED"
		switch {
		case res.SetupFailure:
			status = "SETUP FAILURE"
		case len(res.Errors) > 0:
			status = "FAILED"
		}
		fmt.Fprintf(f, "[%s] %s\n", res.TestID, status)
		for _, e := range res.Errors {
			fmt.Fprintf(f, "  error: %s\n", e)
		}
		res.DebugOutput.Dump(f, "  ")
	}
	return path, nil
}
