package Gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client talks to the remote Horizon REST backend. The cookie jar holds
// the jwt session cookie set by the login endpoint, so every later call
// is credentialed the way the web client's fetch(credentials:"include")
// was. Requests carry a timeout; a call that never resolves must not
// leave a loading state stuck.
type Client struct {
	BaseURL    string
	HttpClient *http.Client
}

// ClientConfig holds configuration for creating a gateway client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// NewClient creates a gateway client with a fresh cookie jar.
func NewClient(config ClientConfig) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	customTransport := http.DefaultTransport.(*http.Transport).Clone()

	httpClient := &http.Client{
		Jar:       jar,
		Transport: customTransport,
		Timeout:   timeout,
	}

	return &Client{
		BaseURL:    strings.TrimRight(config.BaseURL, "/"),
		HttpClient: httpClient,
	}, nil
}

// SessionCookie returns the backend's jwt session cookie, or nil when not
// logged in.
func (c *Client) SessionCookie() *http.Cookie {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil
	}
	for _, cookie := range c.HttpClient.Jar.Cookies(u) {
		if cookie.Name == "jwt" {
			return cookie
		}
	}
	return nil
}

// do sends a JSON request and decodes the JSON response into out when out
// is non-nil. Non-2xx responses come back as *APIError carrying the body
// text, matching the web client's fetch wrapper.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
