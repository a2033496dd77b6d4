package Backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// BypassHeader skips the ngrok browser interstitial when the backend is
// exposed through a tunnel. The value just has to be non-empty.
const BypassHeader = "ngrok-skip-browser-warning"

// APIError is a non-2xx response from the backend. Message comes from the
// server's JSON error body when one is present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the inventory REST backend. No retries, no backoff: every
// failure surfaces to the caller and is handled at the UI layer.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient reads the backend base URL from the environment.
func NewClient() *Client {
	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// doRequest performs an HTTP request against the backend with the bypass
// header set. Non-2xx responses are turned into an *APIError carrying the
// server-provided message or a generic fallback.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, fallbackMsg string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(BypassHeader, "69420")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()

		message := fallbackMsg
		var errorData struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errorData); err == nil && errorData.Message != "" {
			message = errorData.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return resp, nil
}
