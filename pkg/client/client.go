// Package client is a typed Go client for the mimarfolio API. The bearer
// token lives behind a TokenProvider collaborator so callers choose the
// persistence mechanism (memory, keychain, file, ...).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
)

// TokenProvider supplies and persists the bearer token attached to
// authenticated requests.
type TokenProvider interface {
	Token() string
	SetToken(token string)
}

// MemoryTokenStore is a TokenProvider keeping the token in memory.
type MemoryTokenStore struct {
	token string
}

// Token returns the stored token.
func (s *MemoryTokenStore) Token() string { return s.token }

// SetToken stores the token.
func (s *MemoryTokenStore) SetToken(token string) { s.token = token }

// APIError is the uniform error for every non-2xx response. Message comes
// from the JSON "error" field when the body parses, otherwise the raw text.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

// FieldError describes one failing field of a rejected payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the mimarfolio API.
type Client struct {
	rest   *resty.Client
	tokens TokenProvider
}

// New creates a Client for the server at baseURL (scheme and host, no /api
// suffix). A nil tokens provider gets an in-memory store.
func New(baseURL string, tokens TokenProvider) *Client {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	return &Client{
		rest:   resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		tokens: tokens,
	}
}

// do performs one JSON request. The authed flag controls whether the bearer
// token is attached.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if body != nil {
		req.SetBody(body)
	}
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.SetAuthToken(token)
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return parseAPIError(resp)
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Upload sends a multipart file to the admin upload endpoint and returns the
// stored file's URL. Content type is left to the multipart encoder; the
// bearer token and error handling match the JSON path.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetFileReader("file", filename, r)

	if token := c.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post("/api/admin/upload")
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if resp.IsError() {
		return "", parseAPIError(resp)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.URL, nil
}

func parseAPIError(resp *resty.Response) *APIError {
	var body struct {
		Error  string       `json:"error"`
		Fields []FieldError `json:"fields"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    body.Error,
			Fields:     body.Fields,
		}
	}

	message := strings.TrimSpace(string(resp.Body()))
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", resp.StatusCode())
	}
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    message,
	}
}
