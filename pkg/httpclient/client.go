package httpclient

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Config holds HTTP client configuration.
type Config struct {
	// BaseURL is the root relative request paths are joined onto.
	BaseURL string
	// Timeout bounds a whole request, including reading the body. Zero means no timeout.
	Timeout time.Duration
	// DefaultHeaders are sent with every request.
	DefaultHeaders map[string]string
}

// DefaultConfig returns a configuration with a 30 second timeout.
func DefaultConfig() Config {
	return Config{
		Timeout:        30 * time.Second,
		DefaultHeaders: make(map[string]string),
	}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
// Useful for injecting httptest clients or custom transports.
// The configured Timeout is not applied to a client passed this way.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client issues HTTP requests against a base URL with sticky defaults.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu      sync.RWMutex
	headers http.Header
	query   url.Values
}

// New creates a new Client.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		headers:    make(http.Header),
		query:      make(url.Values),
	}
	for k, v := range cfg.DefaultHeaders {
		c.headers.Set(k, v)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the URL relative paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetDefaultHeader sets a header sent with every subsequent request.
// An empty value removes the header.
func (c *Client) SetDefaultHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		c.headers.Del(key)
		return
	}
	c.headers.Set(key, value)
}

// SetDefaultQuery sets a query parameter sent with every subsequent request.
// An empty value removes the parameter.
func (c *Client) SetDefaultQuery(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		c.query.Del(key)
		return
	}
	c.query.Set(key, value)
}

// DefaultHeaders returns a copy of the default headers.
func (c *Client) DefaultHeaders() http.Header {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers.Clone()
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts...)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts...)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts...)
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, opts...)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts...)
}

// Head performs a HEAD request.
func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodHead, path, opts...)
}

// Do performs a request with the given method.
// The returned error is either a transport error or a *StatusError; in the latter
// case the response is returned as well.
func (c *Client) Do(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	r := newRequest(opts)
	if r.err != nil {
		return nil, r.err
	}

	target, err := c.resolve(path, r.query)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, r.body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}

	c.mu.RLock()
	for k, vs := range c.headers {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	c.mu.RUnlock()
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}
	for k, vs := range r.header {
		httpReq.Header[k] = vs
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := readBody(httpResp)
	if err != nil {
		return nil, err
	}

	resp := &Response{Response: httpResp, body: body}
	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, &StatusError{
			Method:     method,
			URL:        redactURL(httpReq.URL),
			StatusCode: httpResp.StatusCode,
			Body:       body,
		}
	}
	return resp, nil
}

// resolve joins path onto the base URL and merges default and per-request query values.
// Per-request values win over defaults; both win over values already present in path.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", errors.Join(ErrInvalidURL, err)
	}

	if !u.IsAbs() {
		if c.baseURL == "" {
			return "", errors.Join(ErrInvalidURL, fmt.Errorf("relative path %q without base url", path))
		}
		base, err := url.Parse(c.baseURL)
		if err != nil {
			return "", errors.Join(ErrInvalidURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		rel, err := url.Parse(strings.TrimPrefix(path, "/"))
		if err != nil {
			return "", errors.Join(ErrInvalidURL, err)
		}
		u = base.ResolveReference(rel)
	}

	q := u.Query()
	c.mu.RLock()
	for k, vs := range c.query {
		q[k] = append([]string(nil), vs...)
	}
	c.mu.RUnlock()
	for k, vs := range query {
		q[k] = vs
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// sensitiveParams are query parameters whose values never appear in errors.
var sensitiveParams = []string{
	"access_token", "refresh_token", "id_token", "oauth_token",
	"client_secret", "code", "key", "api_key",
}

// redactURL hides the user-info password and the values of sensitive query parameters.
func redactURL(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Redacted()
	}
	q := u.Query()
	for _, k := range sensitiveParams {
		if _, ok := q[k]; ok {
			q.Set(k, "xxxxx")
		}
	}
	r := *u
	r.RawQuery = q.Encode()
	return r.Redacted()
}

// readBody drains the response body. The standard transport only decompresses
// gzip when it negotiated the encoding itself, so an explicitly requested gzip
// body is decompressed here.
func readBody(resp *http.Response) ([]byte, error) {
	var src io.Reader = resp.Body
	if !resp.Uncompressed && strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Join(ErrReadBody, err)
		}
		if len(raw) == 0 {
			return raw, nil
		}
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Join(ErrReadBody, err)
		}
		defer zr.Close()
		src = zr
		resp.Header.Del("Content-Encoding")
		resp.Header.Del("Content-Length")
		resp.ContentLength = -1
		resp.Uncompressed = true
	}

	body, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Join(ErrReadBody, err)
	}
	return body, nil
}
