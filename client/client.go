package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prilavok/user-api-contract-tests/config"
	"github.com/prilavok/user-api-contract-tests/framework"
	"github.com/prilavok/user-api-contract-tests/servicedef"
)

// UserServiceClient sends requests to the user service under test. It does not interpret
// responses and never retries; that is left to the test suite.
type UserServiceClient struct {
	cfg        config.Config
	httpClient *http.Client
}

// Response is the raw result of a request that reached the service.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// RequestError means that a request did not produce an HTTP response at all, because of a
// timeout, a refused connection, or a similar transport problem.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Timeout() {
		return fmt.Sprintf("%s %s timed out: %s", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout is true if the request was abandoned because a deadline passed.
func (e *RequestError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// NewUserServiceClient creates a client for the service described by cfg. Every request is
// bounded by cfg.RequestTimeout.
func NewUserServiceClient(cfg config.Config) *UserServiceClient {
	return &UserServiceClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// Config returns the configuration the client was created with.
func (c *UserServiceClient) Config() config.Config {
	return c.cfg
}

// CreateUser posts a user creation body as JSON.
func (c *UserServiceClient) CreateUser(
	ctx context.Context,
	body servicedef.UserBody,
	logger framework.Logger,
) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.CreateUserURL(), bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", c.cfg.ContentType)
	return c.do(req, data, logger)
}

// ListUsers fetches the users table.
func (c *UserServiceClient) ListUsers(ctx context.Context, logger framework.Logger) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.UsersTableURL(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, nil, logger)
}

func (c *UserServiceClient) do(req *http.Request, requestBody []byte, logger framework.Logger) (*Response, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	if requestBody != nil {
		logger.Printf("%s %s: %s", req.Method, req.URL, string(requestBody))
	} else {
		logger.Printf("%s %s", req.Method, req.URL)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := &RequestError{Method: req.Method, URL: req.URL.String(), Err: err}
		logger.Printf("Request error after %s: %s", time.Since(startTime), reqErr)
		return nil, reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		reqErr := &RequestError{Method: req.Method, URL: req.URL.String(), Err: err}
		logger.Printf("Error reading response body: %s", reqErr)
		return nil, reqErr
	}
	logger.Printf("Response status %d after %s: %s", resp.StatusCode, time.Since(startTime), string(data))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// CreationResponse decodes the body as a user creation response.
func (r *Response) CreationResponse() (servicedef.CreationResponse, error) {
	return servicedef.ParseCreationResponse(r.Body)
}

// Listing returns the body as a users table.
func (r *Response) Listing() servicedef.Listing {
	return servicedef.NewListing(string(r.Body))
}
