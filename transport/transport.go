// Package transport wraps outbound HTTP requests to the board backend.
// It attaches the bearer token from the persisted credentials at send time and
// applies the global unauthorized policy: any 401 tears the session down,
// regardless of which call triggered it.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	contentTypeJSON = "application/json"
	requestIDHeader = "X-Request-ID"

	defaultTimeout = 30 * time.Second
)

// ErrSessionExpired is returned when the backend rejects the bearer token.
// By the time a caller sees this error the session teardown has already run.
var ErrSessionExpired = errors.New("session expired")

// APIError is any non-2xx backend response other than an unauthorized one.
// Message carries the body's "message" field when the backend provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// TokenSource yields the bearer token to attach to outgoing requests.
// An empty token means the request is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// UnauthorizedHandler is invoked once per 401 response, before the error is
// returned to the caller. It owns clearing the session and steering the user
// back to the login entry point.
type UnauthorizedHandler func()

// Client dispatches JSON requests against the backend REST API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	logger         zerolog.Logger
}

// Option modifies a Client instance.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource sets the source of the bearer token.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the given API base URL (e.g. "http://localhost:5000/api").
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// HandleUnauthorized registers the global 401 handler. Registered after
// construction because the session store that performs the teardown is itself
// built on top of this client.
func (c *Client) HandleUnauthorized(handler UnauthorizedHandler) {
	c.onUnauthorized = handler
}

// Get issues a GET request. query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body. body may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body. body may be nil.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// PostMultipart uploads a file as a multipart form under the given field name.
// This is the one non-JSON request the backend accepts.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return errors.Wrap(err, "[Client.PostMultipart] CreateFormFile")
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrap(err, "[Client.PostMultipart] copy file")
	}
	if err := mw.Close(); err != nil {
		return errors.Wrap(err, "[Client.PostMultipart] close writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return errors.Wrap(err, "[Client.PostMultipart] NewRequest")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "[Client.do] marshal %s %s body", method, path)
		}
		reader = bytes.NewReader(encoded)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] NewRequest %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set(requestIDHeader, uuid.New().String())

	// The token is read from persisted storage at send time, not captured at
	// construction, so a login or logout between calls takes effect immediately.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.send] %s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status", resp.StatusCode).Msg("response")

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrSessionExpired
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "[Client.send] read %s %s body", req.Method, req.URL.Path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(payload, resp.StatusCode),
		}
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "[Client.send] decode %s %s response", req.Method, req.URL.Path)
	}
	return nil
}

// extractMessage pulls the backend's human-readable "message" out of an error
// body, falling back to the HTTP status text.
func extractMessage(payload []byte, statusCode int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(statusCode)
}
