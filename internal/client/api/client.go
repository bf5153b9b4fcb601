// Package api implements the HTTP client for the FocusDeck REST API.
//
// Every call targets a single base origin, sends and receives JSON, and
// attaches `Authorization: Bearer <token>` when a token is supplied. All
// failures are normalized: transport errors wrap common.ErrUnavailable,
// non-2xx responses become *Error carrying the server's detail message.
package api

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

	"github.com/google/uuid"

	"github.com/mkorolev/focusdeck/internal/common"
)

const defaultTimeout = 15 * time.Second

// HTTPClient is the concrete API client. It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	// newRequestID is a seam for tests; defaults to uuid.NewString.
	newRequestID func() string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithRequestIDFunc replaces the X-Request-ID generator.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *HTTPClient) { c.newRequestID = fn }
}

// New builds a client for the given base origin, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		hc:           &http.Client{Timeout: defaultTimeout},
		newRequestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do performs one JSON round-trip. token may be empty for public endpoints;
// body and out may be nil. A 204 response leaves out untouched.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", c.newRequestID())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError reads a failed response into the normalized *Error shape.
// The server is expected to send {"detail": "<reason>"}; anything else
// falls back to a generic message carrying the status code.
func (c *HTTPClient) decodeError(resp *http.Response) error {
	msg := fmt.Sprintf("HTTP error, status %d", resp.StatusCode)

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		msg = payload.Detail
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
