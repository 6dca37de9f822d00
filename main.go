package main

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"

	"github.com/prilavok/user-api-contract-tests/client"
	"github.com/prilavok/user-api-contract-tests/config"
	"github.com/prilavok/user-api-contract-tests/framework"
	"github.com/prilavok/user-api-contract-tests/mockservice"
	"github.com/prilavok/user-api-contract-tests/usertests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(params))
}

func run(params commandParams) int {
	cfg, err := config.Load(params.envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}
	if params.serviceURL != "" {
		cfg = cfg.WithBaseURL(params.serviceURL)
	}
	if params.timeout > 0 {
		cfg = cfg.WithRequestTimeout(params.timeout)
	}

	logLevel := cfg.LogLevel
	if params.debugAll {
		logLevel = "debug"
	}
	mainDebugLogger, zapLogger, err := framework.NewZapLogger(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %s\n", err)
		return 1
	}
	defer zapLogger.Sync() //nolint:errcheck

	if params.mock {
		server := httptest.NewServer(mockservice.New(mockservice.OptionsFromConfig(cfg)).Handler())
		defer server.Close()
		cfg = cfg.WithBaseURL(server.URL)
		fmt.Printf("Using in-process mock user service at %s\n", server.URL)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}

	userClient := client.NewUserServiceClient(cfg)

	fmt.Printf("Connecting to user service at %s\n", cfg.BaseURL)
	resp, err := userClient.ListUsers(context.Background(), framework.PrefixedLogger(mainDebugLogger, "preflight: "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "User service error: %s\n", err)
		return 1
	}
	if resp.StatusCode != 200 {
		fmt.Fprintf(os.Stderr, "User service error: users table returned status %d\n", resp.StatusCode)
		return 1
	}
	fmt.Printf("Users table currently has %d rows\n", resp.Listing().RowCount())

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := usertests.RunTestSuite(userClient, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun the failed tests:")
		fmt.Printf("  %s\n", params.rerunCommand(os.Args[0], cfg.BaseURL, results.Failures))
		return 1
	}
	return 0
}
