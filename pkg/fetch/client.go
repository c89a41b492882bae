package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL hosts the Material icon zip archives.
const DefaultBaseURL = "https://storage.googleapis.com/material-icons/external-assets/v4/icons/zip/"

// DefaultTimeout bounds a whole archive download.
const DefaultTimeout = 2 * time.Minute

// maxErrorBody limits how much of an error response ends up in StatusError.
const maxErrorBody = 512

// StatusError is returned when the host answers with a non-2xx status,
// which usually means no archive exists for the requested name, color and size.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client downloads archives from a static host.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout uses DefaultTimeout.
// The transport keeps a small idle pool; a single run issues one request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        2,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 15 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// URL returns the full download URL of fileName.
func (c *Client) URL(fileName string) string {
	if strings.HasSuffix(c.baseURL, "/") {
		return c.baseURL + fileName
	}
	return c.baseURL + "/" + fileName
}

// Download fetches fileName and writes the body to destPath.
// On any failure the partially written destPath is removed.
func (c *Client) Download(ctx context.Context, fileName, destPath string) (n int64, err error) {
	url := c.URL(fileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return 0, &StatusError{URL: url, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	f, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file %q: %w", destPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file %q: %w", destPath, cerr)
		}
		if err != nil {
			os.Remove(destPath)
		}
	}()

	n, err = io.Copy(f, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to write file %q: %w", destPath, err)
	}

	if resp.ContentLength > 0 && n != resp.ContentLength {
		return n, fmt.Errorf("short download: got %d of %d bytes", n, resp.ContentLength)
	}

	return n, nil
}
