package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"USER_API_BASE_URL",
		"USER_API_CREATE_USER_PATH",
		"USER_API_USERS_TABLE_PATH",
		"USER_API_TIMEOUT_SECONDS",
		"USER_API_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL+"/api/v1/users/", cfg.CreateUserURL())
	assert.Equal(t, DefaultBaseURL+"/api/db/resources/user_model.csv", cfg.UsersTableURL())
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "application/json", cfg.ContentType)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("USER_API_BASE_URL", "http://localhost:9000/")
	t.Setenv("USER_API_TIMEOUT_SECONDS", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api/v1/users/", cfg.CreateUserURL())
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, Default().User, cfg.User)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path,
		[]byte("USER_API_BASE_URL=http://example.test\nUSER_API_USERS_TABLE_PATH=/dump.csv\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("USER_API_BASE_URL")
		os.Unsetenv("USER_API_USERS_TABLE_PATH")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/dump.csv", cfg.UsersTableURL())
}

func TestLoadRejectsMissingEnvFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("USER_API_TIMEOUT_SECONDS", "ten")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Default().WithBaseURL("not a url").Validate())
	assert.Error(t, Default().WithRequestTimeout(0).Validate())

	cfg := Default()
	cfg.CreateUserPath = "api/v1/users/"
	assert.Error(t, cfg.Validate())
}

func TestWithMethodsDoNotModifyOriginal(t *testing.T) {
	cfg := Default()
	other := cfg.WithBaseURL("http://other").WithRequestTimeout(time.Second)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "http://other", other.BaseURL)
}
