package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/log"
)

// BasePath is the versioned prefix of the marketplace REST surface
const BasePath = "/api/v1"

// DefaultTimeout bounds every request; there is no other deadline and no
// automatic retry anywhere in the client.
const DefaultTimeout = 30 * time.Second

// Client is the marketplace API client. Every request goes through the same
// pipeline: JSON encoding, bearer-token injection, canonical envelope
// decoding, and global 401 interception.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the connection timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new marketplace API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer token, or "" when anonymous
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnUnauthorized registers the handler invoked whenever any request receives
// a 401. The handler runs before the error is returned to the caller, so a
// 401 anywhere in the app uniformly invalidates the session.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// envelope is the canonical response shape of every endpoint:
// data on success, message/error on failure. Anything else is a
// contract violation and fails the decode loudly.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (e envelope) failureMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// do executes a request and decodes the envelope's data into target.
// A nil target discards the response data.
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	return c.doWithHeaders(ctx, method, path, body, target, nil)
}

func (c *Client) doWithHeaders(ctx context.Context, method, path string, body, target any, headers map[string]string) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAPIRequest, "failed to marshal request body", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+BasePath+path, reqBody)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPIRequest, "failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPINetwork, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPINetwork, "failed to read response", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireUnauthorized()
		return errors.New(errors.ErrCodeAPIUnauthorized, "authorization denied")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp.StatusCode, respBody)
	}

	if target != nil {
		var env envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "response is not a valid envelope", err)
		}
		if len(env.Data) == 0 {
			return errors.Newf(errors.ErrCodeAPIDecode, "envelope has no data for %s %s", method, path)
		}
		if err := json.Unmarshal(env.Data, target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "failed to decode response data", err)
		}
	}

	return nil
}

// statusError maps a non-401 failure status to the error taxonomy:
// 4xx with a server message surfaces that message verbatim, everything
// else collapses to a generic server failure.
func (c *Client) statusError(status int, body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && status >= 400 && status < 500 {
		if msg := env.failureMessage(); msg != "" {
			return errors.New(errors.ErrCodeAPIValidation, msg)
		}
	}
	return errors.Newf(errors.ErrCodeAPIServer, "request failed with status %d", status)
}

func (c *Client) fireUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()

	if fn != nil {
		c.logger.Debug("authorization denied, invalidating session")
		fn()
	}
}

// pathf builds an API path, escaping every interpolated segment
func pathf(format string, segments ...string) string {
	escaped := make([]any, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, escaped...)
}
