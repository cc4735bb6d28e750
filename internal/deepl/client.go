package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	proServerURL  = "https://api.deepl.com"
	freeServerURL = "https://api-free.deepl.com"

	userAgent = "deepl-mcp/" + Version
)

// Version is the client version reported in the User-Agent header.
const Version = "0.1.0"

// Client talks to the DeepL REST API v2.
type Client struct {
	serverURL  string
	authKey    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithServerURL overrides the API endpoint. Useful for tests and for the
// DEEPL_SERVER_URL configuration override.
func WithServerURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.serverURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// IsFreeAccountAuthKey reports whether the auth key belongs to a DeepL
// API Free account. Free keys carry a ":fx" suffix.
func IsFreeAccountAuthKey(key string) bool {
	return strings.HasSuffix(key, ":fx")
}

// NewClient creates a client for the given auth key. The endpoint is
// selected from the key unless overridden with WithServerURL.
func NewClient(authKey string, opts ...Option) *Client {
	c := &Client{
		serverURL:  proServerURL,
		authKey:    authKey,
		httpClient: &http.Client{},
	}
	if IsFreeAccountAuthKey(authKey) {
		c.serverURL = freeServerURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ServerURL returns the endpoint this client targets.
func (c *Client) ServerURL() string {
	return c.serverURL
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// callForm issues a form-encoded request and decodes the JSON response into
// out (which may be nil for empty responses).
func (c *Client) callForm(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return c.do(req, out)
}

// do sends the request with auth headers and decodes the response.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if w, ok := out.(io.Writer); ok {
		if _, err := io.Copy(w, resp.Body); err != nil {
			return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
		}
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:       KindServer,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("decoding response: %v", err),
			cause:      err,
		}
	}
	return nil
}

// errorBody is the JSON shape of DeepL error responses.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// errorFromResponse converts a non-2xx response into a typed *Error.
func errorFromResponse(resp *http.Response) *Error {
	msg := resp.Status

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(data) > 0 {
		var body errorBody
		if json.Unmarshal(data, &body) == nil && body.Message != "" {
			msg = body.Message
			if body.Detail != "" {
				msg += ", detail: " + body.Detail
			}
		}
	}

	return &Error{
		Kind:       kindFromStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
