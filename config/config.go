// Package config holds the settings that describe the user service under test: where it is,
// which paths it serves, how long to wait for it, and what a default user looks like.
//
// A Config is a plain value. Nothing in this package keeps process-wide state; callers load
// one Config at startup and pass it explicitly to the client and the test suite.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the sample service host. These hosts are generated per session and
	// expire, so a real run normally overrides it with -url or USER_API_BASE_URL.
	DefaultBaseURL = "https://eca5334b-2082-462f-a753-3cc5c3a51c6a.serverhub.praktikum-services.ru"

	DefaultCreateUserPath = "/api/v1/users/"
	DefaultUsersTablePath = "/api/db/resources/user_model.csv"
	DefaultRequestTimeout = time.Second * 10

	// JSONContentType is sent as the Content-Type of every user creation request.
	JSONContentType = "application/json"
)

// Config aggregates everything the client and the test suite need to know about the service.
type Config struct {
	BaseURL        string
	CreateUserPath string
	UsersTablePath string
	RequestTimeout time.Duration
	ContentType    string
	LogLevel       string
	User           UserTemplate
}

// UserTemplate is the user that every creation request starts from. Only the first name
// varies between test cases; phone and address are always sent as given here.
type UserTemplate struct {
	FirstName string
	Phone     string
	Address   string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		CreateUserPath: DefaultCreateUserPath,
		UsersTablePath: DefaultUsersTablePath,
		RequestTimeout: DefaultRequestTimeout,
		ContentType:    JSONContentType,
		LogLevel:       "info",
		User: UserTemplate{
			FirstName: "Иван",
			Phone:     "+74441231234",
			Address:   "г. Москва, ул. Большая Роща, д. 92",
		},
	}
}

// Load starts from Default and applies any USER_API_* environment variables. If envFile is
// non-empty it must exist; otherwise an optional ".env" in the working directory is read.
// Variables already set in the environment win over values from the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("could not read environment file %q: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := Default()
	cfg.BaseURL = getEnv("USER_API_BASE_URL", cfg.BaseURL)
	cfg.CreateUserPath = getEnv("USER_API_CREATE_USER_PATH", cfg.CreateUserPath)
	cfg.UsersTablePath = getEnv("USER_API_USERS_TABLE_PATH", cfg.UsersTablePath)
	cfg.LogLevel = getEnv("USER_API_LOG_LEVEL", cfg.LogLevel)

	if s := os.Getenv("USER_API_TIMEOUT_SECONDS"); s != "" {
		seconds, err := strconv.Atoi(s)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("invalid USER_API_TIMEOUT_SECONDS %q: must be a positive integer", s)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithBaseURL returns a copy of the configuration pointing at a different service host.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithRequestTimeout returns a copy of the configuration with a different per-request timeout.
func (c Config) WithRequestTimeout(timeout time.Duration) Config {
	c.RequestTimeout = timeout
	return c
}

// Validate reports the first setting that would make requests impossible.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL %q", c.BaseURL)
	}
	for _, p := range []string{c.CreateUserPath, c.UsersTablePath} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("endpoint path %q must start with a slash", p)
		}
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// CreateUserURL is the full URL of the user creation endpoint.
func (c Config) CreateUserURL() string {
	return strings.TrimSuffix(c.BaseURL, "/") + c.CreateUserPath
}

// UsersTableURL is the full URL of the users table dump.
func (c Config) UsersTableURL() string {
	return strings.TrimSuffix(c.BaseURL, "/") + c.UsersTablePath
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
