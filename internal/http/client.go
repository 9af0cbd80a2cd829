package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/irvingpop/honeycomb-go/internal/constants"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// Credentials holds the API keys attached to outgoing requests. The header
// each key travels in is dictated by the remote service: the environment
// key as X-Honeycomb-Team on v1 paths, the management key as a Bearer token
// on v2 paths.
type Credentials struct {
	APIKey        string
	ManagementKey string
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client executes requests against the API: it attaches auth headers, runs
// the call, and maps the response status to a typed result. It performs no
// caching and, unless retry options are supplied, no retries.
type Client struct {
	baseURL               string
	credentials           Credentials
	httpClient            *http.Client
	logger                Logger
	debug                 bool
	userAgent             string
	allowUnexpectedStatus bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the HTTP layer.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries on transient failures (5xx, 429,
// connection errors) via retryablehttp.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = waitMin
		retryClient.RetryWaitMax = waitMax
		retryClient.Logger = nil
		c.httpClient = retryClient.StandardClient()
	}
}

// WithAllowUnexpectedStatus makes the client return responses with
// unregistered status codes as-is instead of producing an
// UnexpectedStatusError.
func WithAllowUnexpectedStatus(allow bool) Option {
	return func(c *Client) {
		c.allowUnexpectedStatus = allow
	}
}

// NewClient creates a new API HTTP client.
func NewClient(baseURL string, credentials Credentials, opts ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		httpClient:  &http.Client{Timeout: constants.DefaultHTTPTimeout},
		userAgent:   "honeycomb-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// HasManagementKey reports whether a management key was configured. The v2
// clients check this before issuing requests so a missing key fails locally
// instead of as a server 401.
func (c *Client) HasManagementKey() bool {
	return c.credentials.ManagementKey != ""
}

// Do executes a request and dispatches on the response status code: 2xx
// returns the body; a registered error status decodes into a typed
// DetailedError; anything else produces an UnexpectedStatusError unless the
// client allows unexpected statuses. Network errors propagate wrapped.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"path":   req.Path,
		})
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	if honeycomb.IsRegisteredErrorStatus(resp.StatusCode) {
		return resp, honeycomb.DecodeErrorResponse(resp.StatusCode, body)
	}

	if c.allowUnexpectedStatus {
		return resp, nil
	}

	return resp, &honeycomb.UnexpectedStatusError{
		StatusCode: resp.StatusCode,
		Body:       body,
	}
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.setAuthHeader(httpReq, req.Path)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// setAuthHeader selects the auth header by API generation: v2 management
// paths use a Bearer token, everything else the team key header.
func (c *Client) setAuthHeader(httpReq *http.Request, path string) {
	if strings.HasPrefix(path, "/2/") {
		if c.credentials.ManagementKey != "" {
			httpReq.Header.Set("Authorization", "Bearer "+c.credentials.ManagementKey)
		}

		return
	}

	if c.credentials.APIKey != "" {
		httpReq.Header.Set(constants.TeamKeyHeader, c.credentials.APIKey)
	}
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch executes a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
