package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prilavok/user-api-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	serviceURL string
	envFile    string
	timeout    time.Duration
	filters    framework.RegexFilters
	mock       bool
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "user service base URL (overrides USER_API_BASE_URL)")
	fs.StringVar(&c.envFile, "env-file", "", "file to load USER_API_* variables from (default: .env if present)")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each request (overrides USER_API_TIMEOUT_SECONDS)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.mock, "mock", false, "run against an in-process imitation of the user service")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.mock && c.serviceURL != "" {
		fmt.Fprintln(os.Stderr, "-url and -mock cannot be used together")
		fs.Usage()
		return false
	}
	if c.timeout < 0 {
		fmt.Fprintln(os.Stderr, "-timeout must not be negative")
		return false
	}
	return true
}

// rerunCommand builds a command line that repeats the run for just the given tests.
func (c *commandParams) rerunCommand(program, serviceURL string, tests []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.mock {
		b.add("-mock")
	} else {
		b.add("-url", serviceURL)
	}
	if c.envFile != "" {
		b.add("-env-file", c.envFile)
	}
	if c.timeout > 0 {
		b.add("-timeout", c.timeout.String())
	}
	for _, t := range tests {
		b.add("-run", framework.ExactMatch(t.TestID))
	}
	b.add("-debug")
	return b.String()
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
