// Package servicedef describes what goes over the wire between the test suite and the user
// service: field names, expected messages, the user creation body, and the shapes of the two
// responses.
package servicedef
