// Package framework contains the low-level implementation of test runner infrastructure that
// is not specific to the user service.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing pieces
// of test logic to be associated with a test identifier and to accumulate success/failure
// results. Assertions from testify's assert and require packages can be used with it.
//
// 2. Each test gets its own capturing debug logger, so that the requests it made can be shown
// when it fails.
//
// 3. A test can be marked as expected to fail. It still runs, and its outcome is reported
// separately from ordinary failures.
//
// The domain-specific code that knows what is being tested is responsible for talking to the
// service and for providing a domain-specific test API on top of the test context.
package framework
