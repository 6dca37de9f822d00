package main

import (
	"testing"
	"time"

	"github.com/prilavok/user-api-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog", "-url", "http://localhost:1", "-timeout", "2s",
		"-run", "valid", "-skip", "space", "-debug"}))
	assert.Equal(t, "http://localhost:1", p.serviceURL)
	assert.Equal(t, 2*time.Second, p.timeout)
	assert.True(t, p.filters.MustMatch.IsDefined())
	assert.True(t, p.filters.MustNotMatch.AnyMatch("first name/invalid format/12: Leading space"))
	assert.True(t, p.debug)
	assert.False(t, p.mock)
}

func TestReadParamsRejectsURLWithMock(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{"prog", "-url", "http://localhost:1", "-mock"}))
}

func TestRerunCommandQuotesArguments(t *testing.T) {
	p := commandParams{timeout: 5 * time.Second}
	failures := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"first name", "valid", "1: 2 chars"}}},
	}
	assert.Equal(t,
		`./contract-tests -url http://host:8080 -timeout 5s -run '^first name/valid/1: 2 chars$' -debug`,
		p.rerunCommand("./contract-tests", "http://host:8080", failures))

	p = commandParams{mock: true}
	assert.Equal(t, `prog -mock -debug`, p.rerunCommand("prog", "http://ignored", nil))
}

func TestRunAgainstMockService(t *testing.T) {
	t.Setenv("USER_API_BASE_URL", "")
	assert.Equal(t, 0, run(commandParams{mock: true}))
}

func TestRunFailsWhenServiceIsUnreachable(t *testing.T) {
	assert.Equal(t, 1, run(commandParams{serviceURL: "http://127.0.0.1:1", timeout: time.Second}))
}
