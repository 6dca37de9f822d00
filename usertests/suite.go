package usertests

import (
	"github.com/prilavok/user-api-contract-tests/client"
	"github.com/prilavok/user-api-contract-tests/framework"
)

func RunTestSuite(
	client *client.UserServiceClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, client)

		t.RunGroup("first name", DoFirstNameTests)
	})
}
