package usertests

import (
	"context"
	"errors"

	"github.com/prilavok/user-api-contract-tests/client"
	"github.com/prilavok/user-api-contract-tests/config"
	"github.com/prilavok/user-api-contract-tests/framework"
	"github.com/prilavok/user-api-contract-tests/servicedef"

	"github.com/stretchr/testify/require"
)

// T represents a test or subtest in the user service test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging and expected failures.
// Those features are provided by the lower-level framework package.
//
// It also knows how to talk to the user service. The Require methods send a request built from a
// firstName input, then check the responses, causing the test to immediately exit if the service
// could not be reached at all.
//
// To make additional assertions, you can use the assert and require packages, passing the *T as if
// it were a *testing.T.
type T struct {
	context *framework.Context
	client  *client.UserServiceClient
}

func newTestScope(context *framework.Context, client *client.UserServiceClient) *T {
	return &T{context: context, client: client}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a single test. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.client))
	})
}

// RunGroup runs a group of subtests. Filters apply to the tests inside the group.
func (t *T) RunGroup(name string, action func(*T)) {
	t.context.RunGroup(name, func(c *framework.Context) {
		action(newTestScope(c, t.client))
	})
}

// ID returns the full name of the test.
func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// ExpectFailure records that this test fails because of a known service defect.
func (t *T) ExpectFailure(reason string) {
	t.context.ExpectFailure(reason)
}

// Config returns the configuration of the service under test.
func (t *T) Config() config.Config {
	return t.client.Config()
}

// UserBody builds a user creation body from the configured template.
func (t *T) UserBody(firstName servicedef.FirstNameInput) servicedef.UserBody {
	return servicedef.BuildUserBody(t.Config().User, firstName)
}

// CreateUser sends a user creation request. The test fails and immediately exits if no response
// was received.
func (t *T) CreateUser(body servicedef.UserBody) *client.Response {
	resp, err := t.client.CreateUser(context.Background(), body, t.context.DebugLogger())
	t.requireResponse(err)
	return resp
}

// ListUsers fetches the users table. The test fails and immediately exits if no response was
// received.
func (t *T) ListUsers() *client.Response {
	resp, err := t.client.ListUsers(context.Background(), t.context.DebugLogger())
	t.requireResponse(err)
	return resp
}

func (t *T) requireResponse(err error) {
	if err == nil {
		return
	}
	// a known service defect never explains a missing response
	t.context.CancelExpectedFailure()
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Timeout() {
			require.FailNow(t, "request timed out before receiving a response", "%s", reqErr)
		}
		require.FailNow(t, "request failed before receiving a response", "%s", reqErr)
	}
	require.NoError(t, err)
}

// RequireUserCreated checks that a user with a valid first name is created, and that it then
// appears exactly once in the users table.
func (t *T) RequireUserCreated(firstName servicedef.FirstNameInput) {
	body := t.UserBody(firstName)
	token, ok := CheckUserCreated(t, t.CreateUser(body))
	if !ok {
		t.FailNow()
	}
	CheckRowListedOnce(t, body, token, t.ListUsers())
}

// RequireInvalidFirstNameFormat checks that a first name with an invalid format is rejected
// with the invalid-format message.
func (t *T) RequireInvalidFirstNameFormat(firstName servicedef.FirstNameInput) {
	CheckRejected(t, t.CreateUser(t.UserBody(firstName)), servicedef.MessageInvalidFirstNameFormat)
}

// RequireMissingFirstName checks that a null, empty, or omitted first name is rejected with the
// missing-parameters message.
func (t *T) RequireMissingFirstName(firstName servicedef.FirstNameInput) {
	CheckRejected(t, t.CreateUser(t.UserBody(firstName)), servicedef.MessageMissingParameters)
}

// RequireWrongTypeRejected checks that a first name of the wrong JSON type gets a 400 status.
// The message is not checked.
func (t *T) RequireWrongTypeRejected(firstName servicedef.FirstNameInput) {
	CheckStatus(t, t.CreateUser(t.UserBody(firstName)), servicedef.StatusBadRequest)
}
