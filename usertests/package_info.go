// Package usertests contains the user service contract tests themselves and their supporting API.
//
// Test runner infrastructure that is not specific to the user service, such as test contexts,
// filtering, and result reporting, is in the lower-level framework package.
package usertests
