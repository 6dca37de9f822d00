package usertests

import (
	"github.com/prilavok/user-api-contract-tests/client"
	"github.com/prilavok/user-api-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

// The functions in this file only inspect a request body and the responses to it; they do
// not talk to the service. Each one reports problems through t and returns false if any
// check failed.

// CheckUserCreated verifies a successful creation response and returns the auth token.
func CheckUserCreated(t assert.TestingT, resp *client.Response) (string, bool) {
	if !assert.Equal(t, servicedef.StatusCreated, resp.StatusCode, "unexpected status for user creation; body: %s", resp.Body) {
		return "", false
	}
	cr, err := resp.CreationResponse()
	if !assert.NoError(t, err) {
		return "", false
	}
	if !assert.True(t, cr.AuthToken.IsDefined(), "response did not contain %q", servicedef.FieldAuthToken) ||
		!assert.NotEqual(t, "", cr.AuthToken.StringValue(), "auth token was empty") {
		return "", false
	}
	return cr.AuthToken.StringValue(), true
}

// CheckRowListedOnce verifies that the users table contains the row for body and authToken
// exactly once. Zero means the user was not stored; more than one means a duplicate insert.
func CheckRowListedOnce(t assert.TestingT, body servicedef.UserBody, authToken string, listing *client.Response) bool {
	if !assert.Equal(t, 200, listing.StatusCode, "unexpected status for users table") {
		return false
	}
	row, err := servicedef.ExpectedRow(body, authToken)
	if !assert.NoError(t, err) {
		return false
	}
	count := listing.Listing().Count(row)
	return assert.Equal(t, 1, count, "expected row %q to appear exactly once in the users table", row)
}

// CheckRejected verifies a 400 response whose body has code 400 and the given message.
func CheckRejected(t assert.TestingT, resp *client.Response, expectedMessage string) bool {
	if !CheckStatus(t, resp, servicedef.StatusBadRequest) {
		return false
	}
	cr, err := resp.CreationResponse()
	if !assert.NoError(t, err) {
		return false
	}
	ok := assert.True(t, cr.Code.IsDefined(), "response did not contain %q", servicedef.FieldCode) &&
		assert.Equal(t, servicedef.StatusBadRequest, cr.Code.IntValue(), "unexpected %q in response", servicedef.FieldCode)
	return assert.Equal(t, expectedMessage, cr.Message.StringValue(), "unexpected %q in response", servicedef.FieldMessage) && ok
}

// CheckStatus verifies only the status code.
func CheckStatus(t assert.TestingT, resp *client.Response, status int) bool {
	return assert.Equal(t, status, resp.StatusCode, "unexpected status; body: %s", resp.Body)
}
