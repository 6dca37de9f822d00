package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/prilavok/user-api-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	failedColor   = color.New(color.FgRed, color.Bold)
	expectedColor = color.New(color.FgYellow)
	skippedColor  = color.New(color.FgCyan)
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, result framework.TestResult, debugOutput framework.CapturedOutput) {
	failed := false
	switch result.Outcome {
	case framework.OutcomeFailed:
		failed = true
		failedColor.Printf("  FAILED: %s\n", id)
	case framework.OutcomeExpectedFailure:
		failed = true
		expectedColor.Printf("  XFAIL: %s (%s)\n", id, result.ExpectedFailureReason)
	case framework.OutcomeUnexpectedPass:
		expectedColor.Printf("  XPASS: %s (%s)\n", id, result.ExpectedFailureReason)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skippedColor.Printf("  SKIPPED: %s\n", id)
	} else {
		skippedColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}
