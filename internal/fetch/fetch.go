package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client wraps http.Client for manual page fetches. A single GET per call,
// no retry and no response caching; redirect and timeout behavior is
// whatever the underlying client does by default.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
}

// StatusError reports a non-2xx response from GetOK.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Status, e.URL)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Get issues one GET and returns the body and status code. Non-2xx statuses
// are not an error here; callers that branch on 404 (version discovery)
// need the code either way. The body is fully read even on error statuses
// so the connection can be reused.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, 0, fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return b, resp.StatusCode, nil
}

// GetOK issues one GET and fails on any non-2xx status. This is the
// raise-for-status path used for command pages: a 404 manual page is a
// fatal fetch, not a soft miss.
func (c *Client) GetOK(ctx context.Context, rawURL string) ([]byte, error) {
	body, status, err := c.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &StatusError{URL: rawURL, Status: status}
	}
	return body, nil
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
