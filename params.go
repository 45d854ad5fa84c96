package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/qaflows/webapp-flow-tests/framework"
)

const defaultSiteTimeout = time.Second * 30

type commandParams struct {
	envName     string
	configPath  string
	baseDir     string
	filters     framework.RegexFilters
	siteTimeout time.Duration
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.envName, "env", "", "named environment to run against (default: $ENVIRONMENT, then \"qa\")")
	fs.StringVar(&c.configPath, "config", "", "explicit environment file path (overrides -env)")
	fs.StringVar(&c.baseDir, "base-dir", ".", "workspace root for environments, reports and data")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.DurationVar(&c.siteTimeout, "timeout", defaultSiteTimeout, "how long to wait for the site to become reachable")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
