// Package client is the HTTP client for the two endpoints of the user service: user creation
// and the users table.
package client
