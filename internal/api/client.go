// ABOUTME: HTTP client core for the Atrium backend REST API
// ABOUTME: Attaches the session bearer token and maps errors to a typed Error

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// TokenSource supplies the current session token. An empty token means the
// Authorization header is omitted.
type TokenSource interface {
	Token() string
}

// Error is a non-2xx backend response. Message comes from the response body
// when the backend supplies one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client issues requests against the versioned REST API. It performs pure
// request/response mapping: no retries, no caching.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// New creates a client rooted at baseURL (the /api prefix is appended to
// every path). Pass nil httpClient for a default with a 30s timeout; pass
// nil tokens to send unauthenticated requests.
func New(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		tokens:  tokens,
		logger:  slog.Default().With("component", "api"),
	}
}

// do issues one request and decodes the JSON response into out (skipped when
// out is nil). Non-2xx responses become *Error; transport failures wrap.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	url := c.baseURL + "/api" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// errorFromResponse builds an *Error from a non-2xx response, pulling a
// human-readable message out of the body when the backend provides one.
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	apiErr.Message = extractErrorMessage(data)

	c.logger.Debug("request failed",
		"status", resp.StatusCode,
		"message", apiErr.Message)
	return apiErr
}

// extractErrorMessage pulls a message from common backend error body shapes:
// {"error": ...}, {"detail": ...} or {"message": ...}.
func extractErrorMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"error", "detail", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return msg
		}
	}
	return ""
}
