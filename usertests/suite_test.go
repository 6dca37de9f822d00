package usertests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prilavok/user-api-contract-tests/client"
	"github.com/prilavok/user-api-contract-tests/config"
	"github.com/prilavok/user-api-contract-tests/framework"
	"github.com/prilavok/user-api-contract-tests/mockservice"
	"github.com/prilavok/user-api-contract-tests/servicedef"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAgainst(handler http.Handler, filter framework.Filter) framework.Results {
	var results framework.Results
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := client.NewUserServiceClient(config.Default().WithBaseURL(server.URL))
		results = RunTestSuite(c, filter, nil)
	})
	return results
}

func resultNames(results []framework.TestResult) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.TestID.String())
	}
	return ret
}

func TestSuiteAgainstServiceWithKnownDefects(t *testing.T) {
	svc := mockservice.New(mockservice.Options{})
	results := runAgainst(svc.Handler(), nil)

	assert.True(t, results.OK(), "failures: %v", resultNames(results.Failures))
	assert.Len(t, results.Tests, 20)
	assert.Equal(t, 16, results.Count(framework.OutcomePassed))
	assert.Equal(t, []string{
		"first name/invalid format/12: Leading space",
		"first name/invalid format/13: Middle space",
		"first name/invalid format/14: Trailing space",
		"first name/wrong type/20: Integer",
	}, resultNames(results.ExpectedFailures))
	assert.Empty(t, results.UnexpectedPasses)

	// the 7 valid names plus the 3 accepted names with spaces
	assert.Len(t, svc.Users(), 10)
}

func TestSuiteAgainstFixedService(t *testing.T) {
	results := runAgainst(mockservice.New(mockservice.Options{Strict: true}).Handler(), nil)

	assert.True(t, results.OK())
	assert.Empty(t, results.ExpectedFailures)
	assert.Len(t, results.UnexpectedPasses, 4)
}

func TestSuiteDetectsDuplicateRows(t *testing.T) {
	svc := mockservice.New(mockservice.Options{})
	users := svc.Handler()
	duplicating := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			for _, u := range svc.Users() {
				svc.AddRow(u)
			}
		}
		users.ServeHTTP(w, r)
	})

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^first name/valid/"))
	results := runAgainst(duplicating, filters.AsFilter)

	assert.False(t, results.OK())
	assert.Len(t, results.Failures, 7)
}

func TestSuiteDetectsWrongMessage(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(400, nil,
		[]byte(`{"code":400,"message":"`+servicedef.MessageInvalidFirstNameFormat+`"}`))

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^first name/missing/"))
	results := runAgainst(handler, filters.AsFilter)

	assert.Len(t, results.Failures, 3)
	assert.Equal(t, 17, results.Count(framework.OutcomeSkipped))
}

func TestSuiteReportsUnreachableService(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	cfg := config.Default().WithBaseURL(url).WithRequestTimeout(time.Second)
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set(framework.ExactMatch(framework.TestID{
		Path: []string{"first name", "valid", "1: 2 chars"},
	})))
	results := RunTestSuite(client.NewUserServiceClient(cfg), filters.AsFilter, nil)

	require.Len(t, results.Failures, 1)
	require.NotEmpty(t, results.Failures[0].Errors)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "request failed before receiving a response")
}

func TestUnreachableServiceIsNotAnExpectedFailure(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	cfg := config.Default().WithBaseURL(url).WithRequestTimeout(time.Second)
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set(framework.ExactMatch(framework.TestID{
		Path: []string{"first name", "wrong type", "20: Integer"},
	})))
	results := RunTestSuite(client.NewUserServiceClient(cfg), filters.AsFilter, nil)

	assert.Empty(t, results.ExpectedFailures)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, framework.OutcomeFailed, results.Failures[0].Outcome)
	assert.Empty(t, results.Failures[0].ExpectedFailureReason)
	assert.False(t, results.OK())
}
